package ports

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Message levels understood by the templates.
const (
	MessageSuccess = "success"
	MessageError   = "error"
	MessageInfo    = "info"
)

// Message is a one-shot notification shown on the next rendered page.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Session is the server-side record of an authenticated identity.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Messages  []Message `json:"messages,omitempty"`
}

// SessionStore persists sessions across requests.
type SessionStore interface {
	Create(ctx context.Context, userID string) (*Session, error)
	// Get returns ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	AddMessage(ctx context.Context, id string, msg Message) error
	// PopMessages returns and clears the pending messages.
	PopMessages(ctx context.Context, id string) ([]Message, error)
}
