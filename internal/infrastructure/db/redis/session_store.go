package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bookmarks/account/internal/core/ports"
)

// SessionStore keeps sessions in Redis.
// Key format: session:<id> holds the JSON record, session:<id>:messages the
// pending flash messages. Both expire with the session.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionStore creates a SessionStore whose sessions live for ttl.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *SessionStore) Create(ctx context.Context, userID string) (*ports.Session, error) {
	now := s.now()
	sess := &ports.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), raw, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*ports.Session, error) {
	if id == "" {
		return nil, ports.ErrSessionNotFound
	}

	var (
		rec  *redis.StringCmd
		msgs *redis.StringSliceCmd
	)
	_, err := s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		rec = p.Get(ctx, s.key(id))
		msgs = p.LRange(ctx, s.messagesKey(id), 0, -1)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get session: %w", err)
	}

	raw, err := rec.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess ports.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if !sess.ExpiresAt.IsZero() && !s.now().Before(sess.ExpiresAt) {
		return nil, ports.ErrSessionNotFound
	}

	sess.Messages, err = decodeMessages(msgs.Val())
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id), s.messagesKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) AddMessage(ctx context.Context, id string, msg ports.Message) error {
	ttl, err := s.client.PTTL(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("add message: %w", err)
	}
	// go-redis passes PTTL's -2 (missing key) through unscaled.
	if ttl == -2 {
		return ports.ErrSessionNotFound
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, s.messagesKey(id), raw)
		if ttl > 0 {
			p.PExpire(ctx, s.messagesKey(id), ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("add message: %w", err)
	}
	return nil
}

func (s *SessionStore) PopMessages(ctx context.Context, id string) ([]ports.Message, error) {
	var msgs *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		msgs = p.LRange(ctx, s.messagesKey(id), 0, -1)
		p.Del(ctx, s.messagesKey(id))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pop messages: %w", err)
	}
	return decodeMessages(msgs.Val())
}

func decodeMessages(raw []string) ([]ports.Message, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ports.Message, 0, len(raw))
	for _, r := range raw {
		var m ports.Message
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}

func (s *SessionStore) messagesKey(id string) string {
	return "session:" + id + ":messages"
}
