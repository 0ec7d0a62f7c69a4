package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookmarks/account/internal/api/middleware"
	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/ports"
)

// currentSession returns the session and user injected by LoginRequired.
// Their absence means the route was registered without the guard.
func currentSession(c echo.Context) (*ports.Session, *domain.User, error) {
	sess, _ := c.Get(middleware.ContextSession).(*ports.Session)
	user, _ := c.Get(middleware.ContextUser).(*domain.User)
	if sess == nil || user == nil {
		return nil, nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated session")
	}
	return sess, user, nil
}
