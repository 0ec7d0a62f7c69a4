package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/ports"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// timingHash returns a valid bcrypt hash used to spend comparable time on
// unknown usernames.
func timingHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("unusable-password"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// AuthService implements credential checks against stored bcrypt hashes.
type AuthService struct {
	users  ports.UserRepository
	events ports.LoginEventRepository
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(users ports.UserRepository, events ports.LoginEventRepository, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		events: events,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(timingHash(), []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, user *domain.User, remoteIP string) error {
	now := s.now()
	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		return err
	}
	user.LastLogin = &now

	s.log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Str("remote_ip", remoteIP).
		Msg("user logged in")
	return nil
}

func (s *AuthService) RecordAttempt(ctx context.Context, username string, outcome domain.LoginOutcome, remoteIP string) {
	if s.events == nil {
		return
	}
	event := &domain.LoginEvent{
		Username: username,
		Outcome:  outcome,
		RemoteIP: remoteIP,
		At:       s.now(),
	}
	// Audit trail is best effort.
	if err := s.events.InsertLoginEvent(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to insert login event")
	}
}
