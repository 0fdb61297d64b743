package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/query"
)

// UsersAPI is the remote side of user management.
type UsersAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UsersState struct {
	Users    []domain.User
	Filtered []domain.User
	Query    string
	Loading  bool
}

// Users mirrors the remote user list and filters it locally. Failed calls
// leave the local list as it was.
type Users struct {
	Observable[UsersState]

	api    UsersAPI
	logger *zap.Logger

	mu    sync.RWMutex
	state UsersState
}

func NewUsers(api UsersAPI, logger *zap.Logger) *Users {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Users{
		api:    api,
		logger: logger,
		state: UsersState{
			Users:    []domain.User{},
			Filtered: []domain.User{},
		},
	}
}

func (s *Users) State() UsersState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Users) Filtered() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.state.Filtered...)
}

func (s *Users) Fetch(ctx context.Context) error {
	s.update(func(st *UsersState) { st.Loading = true })

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.logger.Error("failed to fetch users", zap.Error(err))
		s.update(func(st *UsersState) { st.Loading = false })
		return fmt.Errorf("s.api.ListUsers -> %w", err)
	}
	if err := checkUnique(users); err != nil {
		s.logger.Error("fetched users are not unique", zap.Error(err))
		s.update(func(st *UsersState) { st.Loading = false })
		return err
	}

	s.update(func(st *UsersState) {
		st.Users = users
		st.Loading = false
	})
	return nil
}

func (s *Users) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := s.api.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("failed to create user", zap.String("email", user.Email), zap.Error(err))
		return domain.User{}, fmt.Errorf("s.api.CreateUser -> %w", err)
	}

	s.update(func(st *UsersState) {
		st.Users = append(append([]domain.User(nil), st.Users...), created)
	})
	return created, nil
}

func (s *Users) Update(ctx context.Context, id string, update domain.UserUpdate) (domain.User, error) {
	updated, err := s.api.UpdateUser(ctx, id, update)
	if err != nil {
		s.logger.Error("failed to update user", zap.String("user_id", id), zap.Error(err))
		return domain.User{}, fmt.Errorf("s.api.UpdateUser -> %w", err)
	}

	s.update(func(st *UsersState) {
		users := make([]domain.User, len(st.Users))
		for i, u := range st.Users {
			if u.ID == id {
				u = updated
			}
			users[i] = u
		}
		st.Users = users
	})
	return updated, nil
}

func (s *Users) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.logger.Error("failed to delete user", zap.String("user_id", id), zap.Error(err))
		return fmt.Errorf("s.api.DeleteUser -> %w", err)
	}

	s.update(func(st *UsersState) {
		users := make([]domain.User, 0, len(st.Users))
		for _, u := range st.Users {
			if u.ID != id {
				users = append(users, u)
			}
		}
		st.Users = users
	})
	return nil
}

func (s *Users) Get(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Users) SetSearchQuery(q string) {
	s.update(func(st *UsersState) { st.Query = q })
}

// ActiveCount counts active users over the whole list, not the filtered view.
func (s *Users) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.state.Users {
		if u.IsActive {
			n++
		}
	}
	return n
}

func (s *Users) update(fn func(*UsersState)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.Filtered = query.Users(s.state.Users, s.state.Query)
	snap := s.snapshot()
	s.mu.Unlock()

	s.Publish(snap)
}

func (s *Users) snapshot() UsersState {
	snap := s.state
	snap.Users = append([]domain.User(nil), s.state.Users...)
	snap.Filtered = append([]domain.User(nil), s.state.Filtered...)
	return snap
}
