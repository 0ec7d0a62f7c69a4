package domain

import "time"

// LoginOutcome classifies a login attempt.
type LoginOutcome string

const (
	LoginSucceeded LoginOutcome = "authenticated"
	LoginDisabled  LoginOutcome = "disabled"
	LoginInvalid   LoginOutcome = "invalid"
)

// LoginEvent is an audit record of a submitted, valid login form.
type LoginEvent struct {
	Username string
	Outcome  LoginOutcome
	RemoteIP string
	At       time.Time
}
