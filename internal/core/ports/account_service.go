package ports

import (
	"context"
	"io"
	"time"

	"github.com/bookmarks/account/internal/core/domain"
)

// PhotoUpload is a validated image submitted with the profile form.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// AccountChanges carries the cleaned data of both edit forms.
type AccountChanges struct {
	FirstName   string
	LastName    string
	Email       string
	DateOfBirth *time.Time
	Photo       *PhotoUpload // nil keeps the current photo
}

// AccountView is a user together with its profile.
type AccountView struct {
	User    *domain.User
	Profile *domain.Profile
	// PhotoURL is a browser-reachable URL of Profile.Photo, empty when unset.
	PhotoURL string
}

// AccountService loads and saves the records behind the profile edit page.
type AccountService interface {
	// Load returns domain.ErrProfileNotFound when the profile was never created.
	Load(ctx context.Context, userID string) (*AccountView, error)
	Save(ctx context.Context, view *AccountView, changes AccountChanges) error
}
