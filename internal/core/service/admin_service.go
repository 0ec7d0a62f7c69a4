package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/ports"
)

// AdminService covers the administrative steps that happen outside the web
// handlers: creating users, creating their profiles and toggling accounts.
type AdminService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	now      func() time.Time
}

func NewAdminService(users ports.UserRepository, profiles ports.ProfileRepository) *AdminService {
	return &AdminService{
		users:    users,
		profiles: profiles,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// NewUser describes an account to create.
type NewUser struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Active    bool
}

func (s *AdminService) CreateUser(ctx context.Context, in NewUser) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsActive:     in.Active,
		DateJoined:   s.now(),
	}
	return s.users.Create(ctx, user)
}

// CreateProfile creates the empty profile of an existing user.
func (s *AdminService) CreateProfile(ctx context.Context, username string) (*domain.Profile, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	_, err = s.profiles.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		return nil, domain.ErrProfileExists
	case !errors.Is(err, domain.ErrProfileNotFound):
		return nil, err
	}

	return s.profiles.Create(ctx, &domain.Profile{UserID: user.ID, UpdatedAt: s.now()})
}

func (s *AdminService) SetActive(ctx context.Context, username string, active bool) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	user.IsActive = active
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	return nil
}

func (s *AdminService) SetPassword(ctx context.Context, username, password string) error {
	if password == "" {
		return domain.ErrInvalidCredentials
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return nil
}
