package ports

import (
	"context"

	"github.com/bookmarks/account/internal/core/domain"
)

// LoginEventRepository persists the login audit trail.
type LoginEventRepository interface {
	InsertLoginEvent(ctx context.Context, event *domain.LoginEvent) error
}
