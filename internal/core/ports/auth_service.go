package ports

import (
	"context"

	"github.com/bookmarks/account/internal/core/domain"
)

// AuthService checks credentials and manages accounts.
type AuthService interface {
	// Authenticate returns the user matching the credentials whether or not
	// the account is active. Unknown users and wrong passwords both yield
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	// CurrentUser resolves the user behind a session. Inactive or deleted
	// accounts yield domain.ErrUserNotFound.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	// Login records a successful login for user.
	Login(ctx context.Context, user *domain.User, remoteIP string) error
	// RecordAttempt stores the outcome of a login attempt. Failures are logged,
	// not returned.
	RecordAttempt(ctx context.Context, username string, outcome domain.LoginOutcome, remoteIP string)
}
