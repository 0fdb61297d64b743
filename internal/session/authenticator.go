package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kravdojo/gym-api/internal/apiclient"
	"github.com/kravdojo/gym-api/internal/catalog"
	"github.com/kravdojo/gym-api/internal/domain"
)

// MockAuthenticator accepts any non-empty credentials after Delay and signs
// in as the catalog's current student. It is not a security mechanism.
type MockAuthenticator struct {
	Delay time.Duration
	Now   func() time.Time
	NewID func() string
}

func (m MockAuthenticator) Login(ctx context.Context, c Credentials) (Result, error) {
	if err := m.wait(ctx); err != nil {
		return Result{}, err
	}
	return Result{Member: domain.StudentMember(catalog.CurrentStudent(m.now()))}, nil
}

// SignUp builds a fresh white-belt student whose first month is paid.
func (m MockAuthenticator) SignUp(ctx context.Context, f SignUpForm) (Result, error) {
	if err := m.wait(ctx); err != nil {
		return Result{}, err
	}

	newID := m.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	name := strings.TrimSpace(f.Name + " " + f.Surname)
	student := catalog.NewStudent(newID(), name, f.Email, f.Phone, f.BirthDate, m.now())

	return Result{Member: domain.StudentMember(student)}, nil
}

func (m MockAuthenticator) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m MockAuthenticator) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AuthClient is the part of the API client the session needs.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (apiclient.AuthResult, error)
	SignUp(ctx context.Context, req apiclient.SignUpRequest) (apiclient.AuthResult, error)
}

// APIAuthenticator authenticates against the member API and keeps the
// bearer token it issues.
type APIAuthenticator struct {
	Client AuthClient
}

func (a APIAuthenticator) Login(ctx context.Context, c Credentials) (Result, error) {
	res, err := a.Client.Login(ctx, c.Email, c.Password)
	if err != nil {
		return Result{}, fmt.Errorf("a.Client.Login -> %w", err)
	}
	return Result{Member: domain.UserMember(res.User), Token: res.Token}, nil
}

func (a APIAuthenticator) SignUp(ctx context.Context, f SignUpForm) (Result, error) {
	res, err := a.Client.SignUp(ctx, apiclient.SignUpRequest{
		Nome:      f.Name,
		Sobrenome: f.Surname,
		Email:     f.Email,
		Password:  f.Password,
		Faixa:     f.Belt,
	})
	if err != nil {
		return Result{}, fmt.Errorf("a.Client.SignUp -> %w", err)
	}
	return Result{Member: domain.UserMember(res.User), Token: res.Token}, nil
}
