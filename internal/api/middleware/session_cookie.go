package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var ErrInvalidSessionCookie = errors.New("invalid session cookie")

// SessionCookie signs the session id into an HS256 JWT stored in a cookie.
type SessionCookie struct {
	Name   string
	Secret []byte
	TTL    time.Duration
	Secure bool
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (sc *SessionCookie) Encode(sid string, now time.Time) (string, error) {
	claims := sessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sc.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sc.Secret)
}

// Decode returns the session id carried by value. Expired, tampered or
// malformed values yield ErrInvalidSessionCookie.
func (sc *SessionCookie) Decode(value string) (string, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return sc.Secret, nil
	})
	if err != nil || !tkn.Valid || claims.SessionID == "" {
		return "", ErrInvalidSessionCookie
	}
	return claims.SessionID, nil
}

// Read returns the session id of the request, if it carries a valid cookie.
func (sc *SessionCookie) Read(c echo.Context) (string, bool) {
	ck, err := c.Cookie(sc.Name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	sid, err := sc.Decode(ck.Value)
	if err != nil {
		return "", false
	}
	return sid, true
}

func (sc *SessionCookie) Set(c echo.Context, sid string) error {
	now := time.Now()
	value, err := sc.Encode(sid, now)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    value,
		Path:     "/",
		Expires:  now.Add(sc.TTL),
		MaxAge:   int(sc.TTL.Seconds()),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the cookie in the browser.
func (sc *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
