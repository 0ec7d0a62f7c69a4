package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/ports"
)

// Context keys set by LoginRequired.
const (
	ContextSession = "session"
	ContextUser    = "user"
)

// UserLoader resolves the user a session belongs to.
type UserLoader interface {
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// LoginRequired lets the request through only when it carries a valid session
// of an active user. Otherwise it redirects to loginURL with the requested
// path in the "next" query parameter.
func LoginRequired(cookie *SessionCookie, sessions ports.SessionStore, users UserLoader, loginURL string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			sid, ok := cookie.Read(c)
			if !ok {
				return redirectToLogin(c, loginURL)
			}

			sess, err := sessions.Get(ctx, sid)
			if errors.Is(err, ports.ErrSessionNotFound) {
				cookie.Clear(c)
				return redirectToLogin(c, loginURL)
			}
			if err != nil {
				return err
			}

			user, err := users.CurrentUser(ctx, sess.UserID)
			if errors.Is(err, domain.ErrUserNotFound) {
				cookie.Clear(c)
				return redirectToLogin(c, loginURL)
			}
			if err != nil {
				return err
			}

			c.Set(ContextSession, sess)
			c.Set(ContextUser, user)
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context, loginURL string) error {
	target, err := url.Parse(loginURL)
	if err != nil {
		return err
	}
	q := target.Query()
	q.Set("next", c.Request().URL.RequestURI())
	target.RawQuery = q.Encode()
	return c.Redirect(http.StatusFound, target.String())
}
