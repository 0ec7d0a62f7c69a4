package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookmarks/account/internal/core/ports"
)

// AccountService backs the profile edit page.
type AccountService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	media    ports.MediaStore
	log      zerolog.Logger
	now      func() time.Time
}

func NewAccountService(users ports.UserRepository, profiles ports.ProfileRepository, media ports.MediaStore, log zerolog.Logger) *AccountService {
	return &AccountService{
		users:    users,
		profiles: profiles,
		media:    media,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Load fetches the user and the profile associated with it. A missing
// profile is reported as domain.ErrProfileNotFound; it is not created here.
func (s *AccountService) Load(ctx context.Context, userID string) (*ports.AccountView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	view := &ports.AccountView{User: user, Profile: profile}
	if profile.Photo != "" && s.media != nil {
		url, err := s.media.URL(ctx, profile.Photo)
		if err != nil {
			// The page stays usable without the picture.
			s.log.Warn().Err(err).Str("key", profile.Photo).Msg("failed to resolve photo url")
		} else {
			view.PhotoURL = url
		}
	}
	return view, nil
}

// Save applies changes to both records. The photo is uploaded first so a
// failed upload leaves the stored records untouched.
func (s *AccountService) Save(ctx context.Context, view *ports.AccountView, changes ports.AccountChanges) error {
	user := *view.User
	profile := *view.Profile

	if changes.Photo != nil {
		if s.media == nil {
			return fmt.Errorf("save account: media store not configured")
		}
		key, err := s.media.Save(ctx, changes.Photo.Filename, changes.Photo.ContentType, changes.Photo.Body)
		if err != nil {
			return fmt.Errorf("save account: upload photo: %w", err)
		}
		profile.Photo = key
	}

	user.FirstName = changes.FirstName
	user.LastName = changes.LastName
	user.Email = changes.Email
	if err := s.users.UpdateContact(ctx, &user); err != nil {
		return fmt.Errorf("save account: update user: %w", err)
	}

	profile.DateOfBirth = changes.DateOfBirth
	profile.UpdatedAt = s.now()
	if err := s.profiles.Update(ctx, &profile); err != nil {
		return fmt.Errorf("save account: update profile: %w", err)
	}

	*view.User = user
	*view.Profile = profile
	if changes.Photo != nil {
		if url, err := s.media.URL(ctx, profile.Photo); err == nil {
			view.PhotoURL = url
		}
	}

	s.log.Info().Str("user_id", user.ID).Msg("profile updated")
	return nil
}
