package session

import (
	"errors"
	"testing"
	"time"

	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestJWTIssuer(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("missing secret", func(t *testing.T) {
		if _, err := NewJWTIssuer(" ", time.Hour, clock.Fake(now)); !errors.Is(err, ErrMissingSecret) {
			t.Fatalf("expected ErrMissingSecret, got %v", err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		issuer, _ := NewJWTIssuer("s3cret", time.Hour, clock.Fake(now))
		token, exp, err := issuer.Issue("sess-1", "john@example.com")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if !exp.Equal(now.Add(time.Hour)) {
			t.Fatalf("unexpected expiry %v", exp)
		}
		id, err := issuer.Parse(token)
		if err != nil || id != "sess-1" {
			t.Fatalf("unexpected parse %q %v", id, err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		clk := clock.Fake(now)
		issuer, _ := NewJWTIssuer("s3cret", time.Hour, clk)
		token, _, _ := issuer.Issue("sess-1", "john@example.com")
		clk.Advance(2 * time.Hour)
		if _, err := issuer.Parse(token); !errors.Is(err, interfaces.ErrInvalidSessionToken) {
			t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
		}
	})

	t.Run("other secret", func(t *testing.T) {
		a, _ := NewJWTIssuer("one", time.Hour, clock.Fake(now))
		b, _ := NewJWTIssuer("two", time.Hour, clock.Fake(now))
		token, _, _ := a.Issue("sess-1", "john@example.com")
		if _, err := b.Parse(token); !errors.Is(err, interfaces.ErrInvalidSessionToken) {
			t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
		}
	})

	t.Run("unsigned token", func(t *testing.T) {
		issuer, _ := NewJWTIssuer("s3cret", time.Hour, clock.Fake(now))
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			ID:        "sess-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := issuer.Parse(raw); !errors.Is(err, interfaces.ErrInvalidSessionToken) {
			t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
		}
	})
}
