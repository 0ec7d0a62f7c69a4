package ports

import (
	"context"

	"github.com/bookmarks/account/internal/core/domain"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// FindByUserID returns domain.ErrProfileNotFound when the user has no profile.
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}
