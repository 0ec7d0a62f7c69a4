package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookmarks/account/internal/api/forms"
	"github.com/bookmarks/account/internal/api/metrics"
	"github.com/bookmarks/account/internal/api/middleware"
	"github.com/bookmarks/account/internal/core/domain"
	"github.com/bookmarks/account/internal/core/ports"
)

// Literal bodies of the login outcomes.
const (
	LoginSucceededBody = "Authenticated successfully"
	LoginDisabledBody  = "Disabled account"
	LoginInvalidBody   = "Invalid login"
)

// Flash messages queued by the edit page.
const (
	ProfileUpdatedMessage     = "Profile updated successfully"
	ProfileUpdateErrorMessage = "Error updating your profile"
)

// AccountHandler serves the dashboard, login, logout and profile edit pages.
type AccountHandler struct {
	auth      ports.AuthService
	accounts  ports.AccountService
	sessions  ports.SessionStore
	cookie    *middleware.SessionCookie
	validator *forms.Validator
	metrics   *metrics.Metrics
	log       zerolog.Logger

	// MaxPhotoBytes bounds profile photo uploads; zero disables the check.
	MaxPhotoBytes int64
}

func NewAccountHandler(
	auth ports.AuthService,
	accounts ports.AccountService,
	sessions ports.SessionStore,
	cookie *middleware.SessionCookie,
	m *metrics.Metrics,
	log zerolog.Logger,
) *AccountHandler {
	return &AccountHandler{
		auth:      auth,
		accounts:  accounts,
		sessions:  sessions,
		cookie:    cookie,
		validator: forms.NewValidator(),
		metrics:   m,
		log:       log,
	}
}

// Dashboard renders the landing page of a logged-in user.
//
// @Summary      Dashboard
// @Tags         account
// @Produce      html
// @Success      200  {string}  string  "account/dashboard.html"
// @Success      302  {string}  string  "redirect to the login page"
// @Router       /account/ [get]
func (h *AccountHandler) Dashboard(c echo.Context) error {
	sess, user, err := currentSession(c)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "account/dashboard.html", map[string]any{
		"section":  "dashboard",
		"user":     user,
		"messages": h.popMessages(c, sess),
	})
}

// Login renders the login form and checks submitted credentials.
//
// @Summary      Login
// @Tags         account
// @Accept       x-www-form-urlencoded
// @Produce      html,plain
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {string}  string  "Authenticated successfully | Disabled account | Invalid login, or the form with errors"
// @Failure      400  {string}  string
// @Failure      500  {string}  string
// @Router       /account/login/ [get]
// @Router       /account/login/ [post]
func (h *AccountHandler) Login(c echo.Context) error {
	form := forms.NewLoginForm()
	if c.Request().Method != http.MethodPost {
		return c.Render(http.StatusOK, "account/login.html", map[string]any{"form": form})
	}

	if err := form.Bind(c); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if !form.IsValid(h.validator) {
		h.metrics.LoginAttemptsTotal.WithLabelValues("form_invalid").Inc()
		return c.Render(http.StatusOK, "account/login.html", map[string]any{"form": form})
	}

	ctx := c.Request().Context()
	remoteIP := c.RealIP()

	user, err := h.auth.Authenticate(ctx, form.Username, form.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.recordAttempt(c, form.Username, domain.LoginInvalid)
		return c.String(http.StatusOK, LoginInvalidBody)
	case err != nil:
		return err
	case !user.IsActive:
		h.recordAttempt(c, form.Username, domain.LoginDisabled)
		return c.String(http.StatusOK, LoginDisabledBody)
	}

	// A failed stamp must not leave a session behind.
	if err := h.auth.Login(ctx, user, remoteIP); err != nil {
		return err
	}
	if err := h.startSession(c, user); err != nil {
		return err
	}
	h.recordAttempt(c, form.Username, domain.LoginSucceeded)
	return c.String(http.StatusOK, LoginSucceededBody)
}

// Logout ends the current session, if any.
//
// @Summary      Logout
// @Tags         account
// @Produce      html
// @Success      200  {string}  string  "registration/logged_out.html"
// @Router       /account/logout/ [get]
// @Router       /account/logout/ [post]
func (h *AccountHandler) Logout(c echo.Context) error {
	if sid, ok := h.cookie.Read(c); ok {
		if err := h.sessions.Delete(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	h.cookie.Clear(c)

	return c.Render(http.StatusOK, "registration/logged_out.html", map[string]any{
		"section": "logout",
	})
}

// Edit shows and saves the user and profile forms.
//
// @Summary      Edit profile
// @Tags         account
// @Accept       multipart/form-data
// @Produce      html
// @Param        first_name     formData  string  false  "First name"
// @Param        last_name      formData  string  false  "Last name"
// @Param        email          formData  string  false  "Email address"
// @Param        date_of_birth  formData  string  false  "Date of birth (YYYY-MM-DD)"
// @Param        photo          formData  file    false  "Profile photo"
// @Success      200  {string}  string  "account/edit.html"
// @Success      302  {string}  string  "redirect to the login page"
// @Failure      404  {string}  string  "the profile was never created"
// @Failure      500  {string}  string
// @Router       /account/edit/ [get]
// @Router       /account/edit/ [post]
func (h *AccountHandler) Edit(c echo.Context) error {
	sess, user, err := currentSession(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	view, err := h.accounts.Load(ctx, user.ID)
	if err != nil {
		return err
	}

	var (
		userForm    *forms.UserEditForm
		profileForm *forms.ProfileEditForm
	)

	if c.Request().Method == http.MethodPost {
		userForm = &forms.UserEditForm{}
		profileForm = &forms.ProfileEditForm{PhotoURL: view.PhotoURL, MaxPhotoBytes: h.MaxPhotoBytes}
		if err := userForm.Bind(c); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
		}
		if err := profileForm.Bind(c); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
		}

		// Both forms always validate so both carry their errors.
		userValid := userForm.IsValid(h.validator)
		profileValid := profileForm.IsValid(h.validator)

		if userValid && profileValid {
			if err := h.accounts.Save(ctx, view, forms.Changes(userForm, profileForm)); err != nil {
				h.metrics.ProfileUpdatesTotal.WithLabelValues("error").Inc()
				return err
			}
			profileForm.PhotoURL = view.PhotoURL
			h.metrics.ProfileUpdatesTotal.WithLabelValues("saved").Inc()
			h.addMessage(c, sess, ports.MessageSuccess, ProfileUpdatedMessage)
		} else {
			h.metrics.ProfileUpdatesTotal.WithLabelValues("invalid").Inc()
			h.addMessage(c, sess, ports.MessageError, ProfileUpdateErrorMessage)
		}
	} else {
		userForm = forms.NewUserEditForm(view.User)
		profileForm = forms.NewProfileEditForm(view.Profile, view.PhotoURL)
	}

	return c.Render(http.StatusOK, "account/edit.html", map[string]any{
		"section":      "edit",
		"user":         view.User,
		"user_form":    userForm,
		"profile_form": profileForm,
		"messages":     h.popMessages(c, sess),
	})
}

// startSession replaces any session the request carried with a fresh one for
// user and sets the cookie.
func (h *AccountHandler) startSession(c echo.Context, user *domain.User) error {
	ctx := c.Request().Context()

	if old, ok := h.cookie.Read(c); ok {
		if err := h.sessions.Delete(ctx, old); err != nil {
			h.log.Warn().Err(err).Str("session_id", old).Msg("failed to delete previous session")
		}
	}

	sess, err := h.sessions.Create(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := h.cookie.Set(c, sess.ID); err != nil {
		return err
	}
	h.metrics.SessionsCreatedTotal.Inc()
	return nil
}

func (h *AccountHandler) recordAttempt(c echo.Context, username string, outcome domain.LoginOutcome) {
	h.metrics.LoginAttemptsTotal.WithLabelValues(string(outcome)).Inc()
	h.auth.RecordAttempt(c.Request().Context(), username, outcome, c.RealIP())
}

func (h *AccountHandler) addMessage(c echo.Context, sess *ports.Session, level, text string) {
	msg := ports.Message{Level: level, Text: text}
	if err := h.sessions.AddMessage(c.Request().Context(), sess.ID, msg); err != nil {
		h.log.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to queue message")
	}
}

// popMessages consumes the pending messages of sess. A store failure only
// costs the messages, not the page.
func (h *AccountHandler) popMessages(c echo.Context, sess *ports.Session) []ports.Message {
	msgs, err := h.sessions.PopMessages(c.Request().Context(), sess.ID)
	if err != nil {
		h.log.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to read messages")
		return nil
	}
	return msgs
}
