package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kravdojo/gym-api/internal/catalog"
	"github.com/kravdojo/gym-api/internal/domain"
	"github.com/kravdojo/gym-api/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
	ErrUserInactive    = errors.New("user is inactive")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
	now  func() time.Time
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
		now:  time.Now,
	}
}

// Signup registers a member. The membership level follows the belt when the
// belt is one of the known ranks.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	hash, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hash
	user.Email = normalizeEmail(user.Email)
	user.Role = domain.RoleMember
	user.IsActive = true
	user.JoinDate = s.now().UTC().Truncate(24 * time.Hour)
	user.MembershipLevel = domain.LevelBeginner
	if rank, ok := catalog.RankByBelt(user.Belt); ok {
		user.MembershipLevel = catalog.LevelForRank(rank)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}
	if !user.IsActive {
		return domain.User{}, ErrUserInactive
	}

	return user, nil
}

// EnsureAdmin creates the admin account unless a user with that email
// already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) (domain.User, error) {
	existing, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.repo.Create(ctx, domain.User{
		Name:            name,
		Email:           normalizeEmail(email),
		Password:        hash,
		MembershipLevel: domain.LevelInstructor,
		Belt:            catalog.Ranks()[len(catalog.Ranks())-1].Name,
		Role:            domain.RoleAdmin,
		JoinDate:        s.now().UTC().Truncate(24 * time.Hour),
		IsActive:        true,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
