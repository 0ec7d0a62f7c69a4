package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bookmarks/account/internal/api/metrics"
	"github.com/bookmarks/account/internal/api/middleware"
	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/ports"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn        func(ctx context.Context, user *domain.User, remoteIP string) error
	attempts       []domain.LoginOutcome
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubAuthService) CurrentUser(_ context.Context, id string) (*domain.User, error) {
	return &domain.User{ID: id, IsActive: true}, nil
}

func (s *stubAuthService) Login(ctx context.Context, user *domain.User, remoteIP string) error {
	if s.loginFn == nil {
		return nil
	}
	return s.loginFn(ctx, user, remoteIP)
}

func (s *stubAuthService) RecordAttempt(_ context.Context, _ string, outcome domain.LoginOutcome, _ string) {
	s.attempts = append(s.attempts, outcome)
}

type stubAccountService struct {
	loadFn func(ctx context.Context, userID string) (*ports.AccountView, error)
	saveFn func(ctx context.Context, view *ports.AccountView, changes ports.AccountChanges) error
	saved  int
}

func (s *stubAccountService) Load(ctx context.Context, userID string) (*ports.AccountView, error) {
	return s.loadFn(ctx, userID)
}

func (s *stubAccountService) Save(ctx context.Context, view *ports.AccountView, changes ports.AccountChanges) error {
	s.saved++
	if s.saveFn == nil {
		return nil
	}
	return s.saveFn(ctx, view, changes)
}

// memSessions keeps sessions in memory.
type memSessions struct {
	sessions map[string]*ports.Session
	next     int
	deleted  []string
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]*ports.Session)}
}

func (m *memSessions) Create(_ context.Context, userID string) (*ports.Session, error) {
	m.next++
	sess := &ports.Session{ID: fmt.Sprintf("sid-%d", m.next), UserID: userID, CreatedAt: time.Now()}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *memSessions) Get(_ context.Context, id string) (*ports.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.sessions, id)
	return nil
}

func (m *memSessions) AddMessage(_ context.Context, id string, msg ports.Message) error {
	sess, ok := m.sessions[id]
	if !ok {
		return ports.ErrSessionNotFound
	}
	sess.Messages = append(sess.Messages, msg)
	return nil
}

func (m *memSessions) PopMessages(_ context.Context, id string) ([]ports.Message, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	msgs := sess.Messages
	sess.Messages = nil
	return msgs, nil
}

// captureRenderer records the last rendered template and its data.
type captureRenderer struct {
	name string
	data map[string]any
}

func (r *captureRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name = name
	r.data, _ = data.(map[string]any)
	_, err := io.WriteString(w, "rendered "+name)
	return err
}

func testCookie() *middleware.SessionCookie {
	return &middleware.SessionCookie{Name: "sessionid", Secret: []byte("secret"), TTL: time.Hour}
}

type handlerFixture struct {
	e        *echo.Echo
	renderer *captureRenderer
	auth     *stubAuthService
	accounts *stubAccountService
	sessions *memSessions
	cookie   *middleware.SessionCookie
	handler  *AccountHandler
}

func newFixture(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		e:        echo.New(),
		renderer: &captureRenderer{},
		auth:     &stubAuthService{},
		accounts: &stubAccountService{},
		sessions: newMemSessions(),
		cookie:   testCookie(),
	}
	f.e.Renderer = f.renderer
	f.handler = NewAccountHandler(f.auth, f.accounts, f.sessions, f.cookie, metrics.New(prometheus.NewRegistry()), zerolog.Nop())
	return f
}

// loggedIn returns a context carrying what LoginRequired would inject.
func (f *handlerFixture) loggedIn(req *http.Request, user *domain.User) (echo.Context, *httptest.ResponseRecorder, *ports.Session) {
	sess, _ := f.sessions.Create(context.Background(), user.ID)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.Set(middleware.ContextSession, sess)
	c.Set(middleware.ContextUser, user)
	return c, rec, sess
}
