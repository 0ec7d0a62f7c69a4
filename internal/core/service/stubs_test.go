package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookmarks/account/internal/core/domain"
)

type stubUserRepo struct {
	users     map[string]*domain.User // by username
	findErr   error
	updateErr error
	updated   []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) seed(u *domain.User) *domain.User {
	if u.ID == "" {
		u.ID = "id-" + u.Username
	}
	r.users[u.Username] = cloneUser(u)
	return u
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	return cloneUser(r.seed(cloneUser(user))), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.users[user.Username] = cloneUser(user)
	r.updated = append(r.updated, user.ID)
	return nil
}

func (r *stubUserRepo) UpdateContact(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.users[user.Username]
	if !ok {
		return domain.ErrUserNotFound
	}
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Email = user.Email
	r.updated = append(r.updated, user.ID)
	return nil
}

func (r *stubUserRepo) SetLastLogin(_ context.Context, id string, at time.Time) error {
	for _, u := range r.users {
		if u.ID == id {
			u.LastLogin = &at
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubProfileRepo struct {
	profiles  map[string]*domain.Profile // by user id
	updateErr error
	updated   int
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) Create(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if _, ok := r.profiles[profile.UserID]; ok {
		return nil, domain.ErrProfileExists
	}
	clone := *profile
	clone.ID = "profile-" + profile.UserID
	r.profiles[profile.UserID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *profile
	r.profiles[profile.UserID] = &clone
	r.updated++
	return nil
}

type stubLoginEvents struct {
	err      error
	inserted []*domain.LoginEvent
}

func (s *stubLoginEvents) InsertLoginEvent(_ context.Context, e *domain.LoginEvent) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, e)
	return nil
}

type stubMedia struct {
	saveErr error
	saved   map[string][]byte
}

func newStubMedia() *stubMedia {
	return &stubMedia{saved: make(map[string][]byte)}
}

func (m *stubMedia) Save(_ context.Context, filename, _ string, body io.ReadSeeker) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}
	key := "users/2026/10/19/" + filename
	m.saved[key] = buf.Bytes()
	return key, nil
}

func (m *stubMedia) URL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	return "https://media.example.com/" + key, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}
