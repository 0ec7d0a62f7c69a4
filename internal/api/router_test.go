package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bookmarks/account/internal/api/handler"
	"github.com/bookmarks/account/internal/api/middleware"
	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/ports"
	"github.com/bookmarks/account/internal/web"
)

type routerAuth struct{}

func (routerAuth) Authenticate(_ context.Context, username, password string) (*domain.User, error) {
	if username == "alice" && password == "pw" {
		return &domain.User{ID: "u1", Username: "alice", IsActive: true}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func (routerAuth) CurrentUser(_ context.Context, id string) (*domain.User, error) {
	return &domain.User{ID: id, Username: "alice", IsActive: true}, nil
}

func (routerAuth) Login(context.Context, *domain.User, string) error { return nil }

func (routerAuth) RecordAttempt(context.Context, string, domain.LoginOutcome, string) {}

type routerAccounts struct{}

func (routerAccounts) Load(context.Context, string) (*ports.AccountView, error) {
	return nil, domain.ErrProfileNotFound
}

func (routerAccounts) Save(context.Context, *ports.AccountView, ports.AccountChanges) error {
	return nil
}

type routerSessions struct {
	sessions map[string]*ports.Session
}

func (s *routerSessions) Create(_ context.Context, userID string) (*ports.Session, error) {
	sess := &ports.Session{ID: "sid-" + userID, UserID: userID}
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *routerSessions) Get(_ context.Context, id string) (*ports.Session, error) {
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return nil, ports.ErrSessionNotFound
}

func (s *routerSessions) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *routerSessions) AddMessage(context.Context, string, ports.Message) error { return nil }

func (s *routerSessions) PopMessages(context.Context, string) ([]ports.Message, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) (*echo.Echo, *middleware.SessionCookie) {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	cookie := &middleware.SessionCookie{Name: "sessionid", Secret: []byte("secret"), TTL: time.Hour}

	e := NewRouter(Deps{
		Logger:   zerolog.Nop(),
		Renderer: renderer,
		Auth:     routerAuth{},
		Accounts: routerAccounts{},
		Sessions: &routerSessions{sessions: make(map[string]*ports.Session)},
		Cookie:   cookie,
		LoginURL: "/account/login/",
		Checks: map[string]handler.DependencyCheck{
			"mongodb": func(context.Context) error { return nil },
		},
		Registry: prometheus.NewRegistry(),
	})
	return e, cookie
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_DashboardRedirectsAnonymous(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/account/", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/account/login/?next=%2Faccount%2F" {
		t.Fatalf("unexpected Location %q", loc)
	}
}

func TestRouter_LoginThenDashboard(t *testing.T) {
	e, _ := newTestRouter(t)

	form := url.Values{"username": {"alice"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/account/login/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := serve(e, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "Authenticated successfully" {
		t.Fatalf("unexpected login response %d %q", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected session cookie, got %v", cookies)
	}

	req = httptest.NewRequest(http.MethodGet, "/account/", nil)
	req.AddCookie(cookies[0])
	rec = serve(e, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Welcome to your dashboard.") {
		t.Fatalf("unexpected dashboard response %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_InvalidLogin(t *testing.T) {
	e, _ := newTestRouter(t)

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/account/login/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := serve(e, req)

	if rec.Body.String() != "Invalid login" {
		t.Fatalf("expected Invalid login, got %q", rec.Body.String())
	}
}

func TestRouter_EditWithoutProfileIs404(t *testing.T) {
	e, cookie := newTestRouter(t)
	sessions := &routerSessions{sessions: map[string]*ports.Session{"sid-u1": {ID: "sid-u1", UserID: "u1"}}}
	e = NewRouter(Deps{
		Logger:   zerolog.Nop(),
		Renderer: e.Renderer,
		Auth:     routerAuth{},
		Accounts: routerAccounts{},
		Sessions: sessions,
		Cookie:   cookie,
		LoginURL: "/account/login/",
		Registry: prometheus.NewRegistry(),
	})

	value, err := cookie.Encode("sid-u1", time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/account/edit/", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: value})
	rec := serve(e, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no profile yet") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestRouter_TrailingSlashRedirect(t *testing.T) {
	e, _ := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := serve(e, httptest.NewRequest(method, "/account/login", nil))

		if rec.Code != http.StatusPermanentRedirect {
			t.Fatalf("%s: expected 308, got %d", method, rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/account/login/" {
			t.Fatalf("%s: unexpected Location %q", method, loc)
		}
	}
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	e, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/health/ready", "/metrics", "/swagger/doc.json"} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}
