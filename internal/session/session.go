// Package session holds the signed-in identity, drives login and sign-up
// through an Authenticator and persists the result across restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/storage"
	"github.com/kravdojo/gym-api/internal/store"
)

// StorageKey is the key the session blob is persisted under.
const StorageKey = "auth-storage"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrSuperseded         = errors.New("authentication attempt superseded")
	ErrInvalidIdentity    = errors.New("authenticator returned an invalid identity")
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Credentials struct {
	Email    string
	Password string
}

type SignUpForm struct {
	Name      string
	Surname   string
	Email     string
	Password  string
	Belt      string
	Phone     string
	BirthDate *time.Time
}

// Result is what a successful authentication yields. Token is empty for
// authenticators that do not issue one.
type Result struct {
	Member domain.Member
	Token  string
}

type Authenticator interface {
	Login(ctx context.Context, c Credentials) (Result, error)
	SignUp(ctx context.Context, f SignUpForm) (Result, error)
}

type Snapshot struct {
	State  State
	Member *domain.Member
	Token  string
}

type blob struct {
	User            *domain.Member `json:"user"`
	Token           string         `json:"token,omitempty"`
	IsAuthenticated bool           `json:"isAuthenticated"`
}

// Store is the session state machine. Only the latest Login or SignUp may
// establish a session: starting a new attempt, or logging out, cancels the
// one in flight.
type Store struct {
	store.Observable[Snapshot]

	auth   Authenticator
	kv     storage.KV
	logger *zap.Logger

	// kvMu orders storage writes; it is never taken while holding mu.
	kvMu sync.Mutex

	mu      sync.Mutex
	state   State
	member  *domain.Member
	token   string
	attempt uint64
	cancel  context.CancelFunc
}

func NewStore(auth Authenticator, kv storage.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{auth: auth, kv: kv, logger: logger}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Member returns the signed-in identity.
func (s *Store) Member() (domain.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.member == nil {
		return domain.Member{}, false
	}
	return *s.member, true
}

// Token returns the bearer token of the session, or "".
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) Login(ctx context.Context, c Credentials) (domain.Member, error) {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return domain.Member{}, ErrMissingCredentials
	}

	return s.authenticate(ctx, "login", func(ctx context.Context) (Result, error) {
		return s.auth.Login(ctx, c)
	})
}

func (s *Store) SignUp(ctx context.Context, f SignUpForm) (domain.Member, error) {
	if strings.TrimSpace(f.Email) == "" || f.Password == "" {
		return domain.Member{}, ErrMissingCredentials
	}

	return s.authenticate(ctx, "signup", func(ctx context.Context) (Result, error) {
		return s.auth.SignUp(ctx, f)
	})
}

func (s *Store) authenticate(ctx context.Context, op string, call func(context.Context) (Result, error)) (domain.Member, error) {
	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.attempt++
	attempt := s.attempt
	s.cancel = cancel
	s.state = Authenticating
	snap := s.snapshot()
	s.mu.Unlock()
	s.Publish(snap)

	res, err := call(attemptCtx)
	if err == nil && !res.Member.Valid() {
		err = ErrInvalidIdentity
	}

	s.mu.Lock()
	if attempt != s.attempt {
		s.mu.Unlock()
		s.logger.Debug("authentication superseded", zap.String("op", op))
		return domain.Member{}, ErrSuperseded
	}
	s.cancel = nil

	if err != nil {
		s.state = Anonymous
		if s.member != nil {
			s.state = Authenticated
		}
		snap = s.snapshot()
		s.mu.Unlock()
		s.Publish(snap)

		s.logger.Info("authentication failed", zap.String("op", op), zap.Error(err))
		return domain.Member{}, fmt.Errorf("s.auth.%s -> %w", op, err)
	}

	member := res.Member
	s.member = &member
	s.token = res.Token
	s.state = Authenticated
	snap = s.snapshot()
	s.mu.Unlock()
	s.Publish(snap)

	s.persist(context.WithoutCancel(ctx), attempt)

	s.logger.Info("authenticated", zap.String("op", op), zap.String("member_id", member.ID()))
	return member, nil
}

// Logout clears the session and forgets the persisted copy. It cannot fail.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.attempt++
	s.member = nil
	s.token = ""
	s.state = Anonymous
	snap := s.snapshot()
	s.mu.Unlock()
	s.Publish(snap)

	s.kvMu.Lock()
	defer s.kvMu.Unlock()
	if err := s.kv.Delete(ctx, StorageKey); err != nil {
		s.logger.Error("failed to delete persisted session", zap.Error(err))
	}
}

// Rehydrate restores a persisted session. A blob that cannot be decoded is
// deleted. Only a failing read is reported.
func (s *Store) Rehydrate(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("s.kv.Get -> %w", err)
	}
	if !ok {
		return nil
	}

	var b blob
	if err := json.Unmarshal([]byte(raw), &b); err != nil || (b.IsAuthenticated && (b.User == nil || !b.User.Valid())) {
		s.logger.Warn("discarding corrupt persisted session", zap.Error(err))
		s.kvMu.Lock()
		defer s.kvMu.Unlock()
		if err := s.kv.Delete(ctx, StorageKey); err != nil {
			s.logger.Error("failed to delete persisted session", zap.Error(err))
		}
		return nil
	}
	if !b.IsAuthenticated {
		return nil
	}

	s.mu.Lock()
	if s.state != Anonymous {
		s.mu.Unlock()
		return nil
	}
	member := *b.User
	s.member = &member
	s.token = b.Token
	s.state = Authenticated
	snap := s.snapshot()
	s.mu.Unlock()
	s.Publish(snap)

	return nil
}

// persist stores the session established by attempt, unless a later login
// or logout has replaced it by the time the write is due.
func (s *Store) persist(ctx context.Context, attempt uint64) {
	s.kvMu.Lock()
	defer s.kvMu.Unlock()

	s.mu.Lock()
	if attempt != s.attempt {
		s.mu.Unlock()
		return
	}
	raw, err := json.Marshal(blob{User: s.member, Token: s.token, IsAuthenticated: true})
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("failed to encode session", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, StorageKey, string(raw)); err != nil {
		s.logger.Error("failed to persist session", zap.Error(err))
	}
}

func (s *Store) snapshot() Snapshot {
	snap := Snapshot{State: s.state, Token: s.token}
	if s.member != nil {
		m := *s.member
		snap.Member = &m
	}
	return snap
}
