package repository

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed seed/directory.yaml
var directorySeedYAML []byte

// DirectorySeed is the account and tenant data shipped with the service.
// It backs the static directory and seeds the DynamoDB tables.
type DirectorySeed struct {
	Accounts []entities.Account `yaml:"accounts"`
	Tenants  []entities.Tenant  `yaml:"tenants"`
}

func LoadDirectorySeed() (DirectorySeed, error) {
	var seed DirectorySeed
	if err := yaml.Unmarshal(directorySeedYAML, &seed); err != nil {
		return DirectorySeed{}, fmt.Errorf("parse directory seed: %w", err)
	}
	return seed, nil
}

// AccountStaticRepository serves credentials from an in-memory table.
type AccountStaticRepository struct {
	byEmail map[string]entities.Account
}

var _ interfaces.IAuthProvider = (*AccountStaticRepository)(nil)

func NewAccountStaticRepository(accounts []entities.Account) *AccountStaticRepository {
	byEmail := make(map[string]entities.Account, len(accounts))
	for _, a := range accounts {
		byEmail[strings.ToLower(strings.TrimSpace(a.Email))] = a
	}
	return &AccountStaticRepository{byEmail: byEmail}
}

func (r *AccountStaticRepository) Lookup(_ context.Context, email string) (entities.Account, bool, error) {
	a, ok := r.byEmail[email]
	return a, ok, nil
}

// TenantStaticRepository serves tenancy records from an in-memory table.
type TenantStaticRepository struct {
	byUnit map[string][]entities.Tenant
}

var _ interfaces.ITenantDirectory = (*TenantStaticRepository)(nil)

func NewTenantStaticRepository(tenants []entities.Tenant) *TenantStaticRepository {
	byUnit := make(map[string][]entities.Tenant)
	for _, t := range tenants {
		unit := strings.ToUpper(strings.TrimSpace(t.Unit))
		byUnit[unit] = append(byUnit[unit], t)
	}
	return &TenantStaticRepository{byUnit: byUnit}
}

func (r *TenantStaticRepository) ListByUnit(_ context.Context, unit string) ([]entities.Tenant, error) {
	src := r.byUnit[unit]
	out := make([]entities.Tenant, len(src))
	copy(out, src)
	return out, nil
}
