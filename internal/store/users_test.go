package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kravdojo/gym-api/internal/domain"
)

type fakeUsersAPI struct {
	users []domain.User
	err   error
	next  int
}

func (f *fakeUsersAPI) ListUsers(context.Context) ([]domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.User(nil), f.users...), nil
}

func (f *fakeUsersAPI) CreateUser(_ context.Context, u domain.User) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	f.next++
	u.ID = "new-" + string(rune('0'+f.next))
	u.IsActive = true
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUsersAPI) UpdateUser(_ context.Context, id string, update domain.UserUpdate) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	for i, u := range f.users {
		if u.ID == id {
			f.users[i] = update.Apply(u)
			return f.users[i], nil
		}
	}
	return domain.User{}, errors.New("not found")
}

func (f *fakeUsersAPI) DeleteUser(_ context.Context, id string) error {
	return f.err
}

func seededAPI() *fakeUsersAPI {
	return &fakeUsersAPI{users: []domain.User{
		{ID: "1", Name: "Bruno Alves", Email: "bruno@dojo.com", IsActive: true},
		{ID: "2", Name: "Clara Dias", Email: "clara@dojo.com", IsActive: false},
		{ID: "3", Name: "Diego Reis", Email: "diego@dojo.com", IsActive: true},
	}}
}

func TestUsersFetchAndSearch(t *testing.T) {
	ctx := context.Background()
	s := NewUsers(seededAPI(), nil)

	require.NoError(t, s.Fetch(ctx))
	assert.Len(t, s.Filtered(), 3)
	assert.Equal(t, 2, s.ActiveCount())

	s.SetSearchQuery("CLARA")
	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, "2", s.Filtered()[0].ID)
	assert.False(t, s.State().Loading)
}

func TestUsersCRUDKeepsFilteredViewInSync(t *testing.T) {
	ctx := context.Background()
	s := NewUsers(seededAPI(), nil)
	require.NoError(t, s.Fetch(ctx))
	s.SetSearchQuery("dojo")

	created, err := s.Create(ctx, domain.User{Name: "Eva Lopes", Email: "eva@dojo.com"})
	require.NoError(t, err)
	assert.Len(t, s.Filtered(), 4)

	name := "Eva Lopes Souza"
	_, err = s.Update(ctx, created.ID, domain.UserUpdate{Name: &name})
	require.NoError(t, err)
	got, ok := s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, name, got.Name)

	require.NoError(t, s.Delete(ctx, "1"))
	_, ok = s.Get("1")
	assert.False(t, ok)
	assert.Len(t, s.Filtered(), 3)
}

func TestUsersFailuresLeaveStateIntact(t *testing.T) {
	ctx := context.Background()
	api := seededAPI()
	s := NewUsers(api, nil)
	require.NoError(t, s.Fetch(ctx))

	boom := errors.New("network down")
	api.err = boom

	assert.ErrorIs(t, s.Fetch(ctx), boom)
	_, err := s.Create(ctx, domain.User{Name: "X"})
	assert.ErrorIs(t, err, boom)
	_, err = s.Update(ctx, "1", domain.UserUpdate{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Delete(ctx, "1"), boom)

	assert.Len(t, s.State().Users, 3)
	assert.False(t, s.State().Loading)
}
