package forms

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/ports"
)

// UserEditForm edits the account fields of a user.
type UserEditForm struct {
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name"  validate:"max=150"`
	Email     string `form:"email"      validate:"omitempty,email,max=254"`

	Errors Errors `form:"-"`
}

// NewUserEditForm returns a form pre-filled from user.
func NewUserEditForm(user *domain.User) *UserEditForm {
	return &UserEditForm{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Errors:    Errors{},
	}
}

func (f *UserEditForm) Bind(c echo.Context) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, f); err != nil {
		return err
	}
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	return nil
}

func (f *UserEditForm) IsValid(v *Validator) bool {
	f.Errors = v.Check(f)
	return !f.Errors.Any()
}

// ProfileEditForm edits the profile fields, including an optional photo.
type ProfileEditForm struct {
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`

	// PhotoURL is the current picture, shown next to the file input.
	PhotoURL string `form:"-"`
	// MaxPhotoBytes bounds the accepted upload size; zero disables the check.
	MaxPhotoBytes int64 `form:"-"`

	Errors Errors `form:"-"`

	photo  *multipart.FileHeader
	dob    *time.Time
	upload *ports.PhotoUpload
}

// NewProfileEditForm returns a form pre-filled from profile.
func NewProfileEditForm(profile *domain.Profile, photoURL string) *ProfileEditForm {
	f := &ProfileEditForm{PhotoURL: photoURL, Errors: Errors{}}
	if profile.DateOfBirth != nil {
		f.DateOfBirth = profile.DateOfBirth.Format(domain.DateLayout)
	}
	return f
}

// Bind reads the form values and the optional "photo" file.
func (f *ProfileEditForm) Bind(c echo.Context) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, f); err != nil {
		return err
	}
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)

	f.photo = nil
	// Missing file part and non-multipart bodies both mean "keep the photo".
	if fh, err := c.FormFile("photo"); err == nil && fh.Filename != "" {
		f.photo = fh
	}
	return nil
}

// IsValid validates the fields and, when a photo was submitted, reads it and
// checks that it is an image within the size limit.
func (f *ProfileEditForm) IsValid(v *Validator) bool {
	f.Errors = v.Check(f)
	f.dob = nil
	f.upload = nil

	if f.DateOfBirth != "" && len(f.Errors.Get("date_of_birth")) == 0 {
		d, err := time.Parse(domain.DateLayout, f.DateOfBirth)
		if err != nil {
			f.Errors.Add("date_of_birth", "Enter a valid date.")
		} else {
			f.dob = &d
		}
	}

	if f.photo != nil {
		upload, msg := f.readPhoto()
		if msg != "" {
			f.Errors.Add("photo", msg)
		} else {
			f.upload = upload
		}
	}
	return !f.Errors.Any()
}

func (f *ProfileEditForm) readPhoto() (*ports.PhotoUpload, string) {
	if f.MaxPhotoBytes > 0 && f.photo.Size > f.MaxPhotoBytes {
		return nil, fmt.Sprintf("Ensure this file is at most %d bytes.", f.MaxPhotoBytes)
	}

	file, err := f.photo.Open()
	if err != nil {
		return nil, "The submitted file could not be read."
	}
	defer file.Close()

	var r io.Reader = file
	if f.MaxPhotoBytes > 0 {
		r = io.LimitReader(file, f.MaxPhotoBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "The submitted file could not be read."
	}
	if len(data) == 0 {
		return nil, "The submitted file is empty."
	}
	if f.MaxPhotoBytes > 0 && int64(len(data)) > f.MaxPhotoBytes {
		return nil, fmt.Sprintf("Ensure this file is at most %d bytes.", f.MaxPhotoBytes)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	}

	return &ports.PhotoUpload{
		Filename:    f.photo.Filename,
		ContentType: mt.String(),
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	}, ""
}

// Changes returns the cleaned data of both forms. Call only after both
// IsValid calls returned true.
func Changes(user *UserEditForm, profile *ProfileEditForm) ports.AccountChanges {
	return ports.AccountChanges{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		DateOfBirth: profile.dob,
		Photo:       profile.upload,
	}
}
