package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret          = errors.New("missing SESSION_SECRET")
	errInvalidSigningMethod   = errors.New("unexpected signing method")
	errMissingSessionIdentity = errors.New("token carries no session id")
)

type residentClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer signs resident session tokens with HS512. The token ID is the
// session ID.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

var _ interfaces.ISessionTokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration, clk clock.Clock) (*JWTIssuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, clock: clk}, nil
}

func (i *JWTIssuer) Issue(sessionID, email string) (string, time.Time, error) {
	now := i.clock.Now()
	expiresAt := now.Add(i.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &residentClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (i *JWTIssuer) Parse(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &residentClaims{}, func(t *jwt.Token) (interface{}, error) {
		switch t.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return i.secret, nil
		default:
			return nil, errInvalidSigningMethod
		}
	}, jwt.WithTimeFunc(i.clock.Now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", interfaces.ErrInvalidSessionToken, err)
	}

	claims, ok := parsed.Claims.(*residentClaims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return "", fmt.Errorf("%w: %w", interfaces.ErrInvalidSessionToken, errMissingSessionIdentity)
	}
	return claims.ID, nil
}
