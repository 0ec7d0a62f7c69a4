package forms

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// LoginForm carries the submitted credentials.
type LoginForm struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" validate:"required"`

	Errors Errors `form:"-"`
}

// NewLoginForm returns an unbound, empty form.
func NewLoginForm() *LoginForm {
	return &LoginForm{Errors: Errors{}}
}

// Bind reads the request body into the form.
func (f *LoginForm) Bind(c echo.Context) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, f); err != nil {
		return err
	}
	f.Username = strings.TrimSpace(f.Username)
	return nil
}

// IsValid validates the bound values and records the errors on the form.
func (f *LoginForm) IsValid(v *Validator) bool {
	f.Errors = v.Check(f)
	return !f.Errors.Any()
}
