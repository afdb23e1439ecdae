package interfaces

import (
	"errors"
	"time"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// ISessionTokenIssuer signs and verifies resident session tokens.
type ISessionTokenIssuer interface {
	Issue(sessionID, email string) (token string, expiresAt time.Time, err error)
	Parse(token string) (sessionID string, err error)
}
