package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookmarks/account/internal/core/domain"
)

func TestAdminService_CreateUser(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAdminService(users, newStubProfileRepo())

	user, err := svc.CreateUser(context.Background(), NewUser{Username: "alice", Password: "pass123", Active: true})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.IsActive || user.DateJoined.IsZero() {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.CreateUser(context.Background(), NewUser{Username: "alice", Password: "x"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), NewUser{Username: "bob"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminService_CreateProfile(t *testing.T) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo()
	svc := NewAdminService(users, profiles)
	users.seed(&domain.User{ID: "u1", Username: "alice"})

	profile, err := svc.CreateProfile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("CreateProfile returned error: %v", err)
	}
	if profile.UserID != "u1" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := svc.CreateProfile(context.Background(), "alice"); !errors.Is(err, domain.ErrProfileExists) {
		t.Fatalf("expected ErrProfileExists, got %v", err)
	}
	if _, err := svc.CreateProfile(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_SetActiveAndPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAdminService(users, newStubProfileRepo())
	users.seed(&domain.User{ID: "u1", Username: "alice", IsActive: true})

	if err := svc.SetActive(context.Background(), "alice", false); err != nil {
		t.Fatalf("SetActive returned error: %v", err)
	}
	if users.users["alice"].IsActive {
		t.Fatalf("expected account disabled")
	}

	if err := svc.SetPassword(context.Background(), "alice", "n3w"); err != nil {
		t.Fatalf("SetPassword returned error: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(users.users["alice"].PasswordHash), []byte("n3w")) != nil {
		t.Fatalf("password not updated")
	}
	if err := svc.SetPassword(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
