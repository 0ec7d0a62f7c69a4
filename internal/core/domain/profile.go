package domain

import (
	"errors"
	"time"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

// DateLayout is the wire format of Profile.DateOfBirth in forms.
const DateLayout = "2006-01-02"

// Profile is the one-to-one extension of a User. It is created by an
// administrator, never by the web handlers.
type Profile struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	// Photo is the media store key of the uploaded picture, empty when unset.
	Photo     string    `json:"photo,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
