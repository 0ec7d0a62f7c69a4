package ports

import (
	"context"
	"time"

	"github.com/bookmarks/account/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update writes the editable account fields (names, email, active flag,
	// password hash) of an existing user.
	Update(ctx context.Context, user *domain.User) error
	// UpdateContact writes only the names and email of user, leaving the
	// active flag and password hash as stored.
	UpdateContact(ctx context.Context, user *domain.User) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}
