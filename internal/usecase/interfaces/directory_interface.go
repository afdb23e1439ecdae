package interfaces

import (
	"context"
	"resident_service/internal/domain/entities"
)

// IAuthProvider looks up resident credentials. Callers normalize the email
// (trimmed, lowercased) before calling.
type IAuthProvider interface {
	Lookup(ctx context.Context, email string) (entities.Account, bool, error)
}

// ITenantDirectory lists tenancy records of a unit. Unit is passed
// uppercased.
type ITenantDirectory interface {
	ListByUnit(ctx context.Context, unit string) ([]entities.Tenant, error)
}
