// Package session issues the anonymous session ids that scope cart and
// checkout state. The id itself travels in a cookie; all server-side state
// keyed by it lives in Postgres or in the per-session stores, so nothing
// here needs to survive a restart.
package session

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidSession = errors.New("invalid session")

// CookieName is the storefront session cookie.
const CookieName = "dh_session"

// CookieMaxAge keeps carts around for thirty days of inactivity.
const CookieMaxAge = 30 * 24 * 60 * 60

type Service struct{}

func New() *Service {
	return &Service{}
}

// Issue mints a fresh session id.
func (s *Service) Issue() string {
	return uuid.NewString()
}

// Validate checks that a cookie value is one of our session ids and not an
// arbitrary client-chosen key.
func (s *Service) Validate(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidSession
	}
	return nil
}
