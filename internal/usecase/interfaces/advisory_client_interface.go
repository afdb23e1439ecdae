package interfaces

import (
	"context"
	"errors"
)

// ErrAdvisoryUnavailable wraps every transport or provider failure of an
// advisory client.
var ErrAdvisoryUnavailable = errors.New("advisory unavailable")

// IAdvisoryClient turns a prompt into free-text advisory content. It does
// not retry.
type IAdvisoryClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
