package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	"go.uber.org/zap"
)

var (
	ErrInvalidResetRequest = errors.New("unit, last name and the last 4 phone digits are required")
	ErrNoMatch             = errors.New("no matching tenant record")
)

// IResetTicketIssuer verifies a tenancy and issues a one-time reset code.
type IResetTicketIssuer interface {
	Issue(ctx context.Context, req entities.ResetRequest) (entities.ResetTicket, error)
}

type PasswordResetUseCase struct {
	directory interfaces.ITenantDirectory
	clock     clock.Clock
	newCode   func() string
}

var _ IResetTicketIssuer = (*PasswordResetUseCase)(nil)

func NewPasswordResetUseCase(directory interfaces.ITenantDirectory, clk clock.Clock) *PasswordResetUseCase {
	return &PasswordResetUseCase{directory: directory, clock: clk, newCode: randomResetCode}
}

// Issue matches unit, last name and phone digits against the directory.
// Unit and last name compare case-insensitively.
func (u *PasswordResetUseCase) Issue(ctx context.Context, req entities.ResetRequest) (entities.ResetTicket, error) {
	unit := NormalizeUnit(req.Unit)
	lastName := strings.ToLower(strings.TrimSpace(req.LastName))
	phone := strings.TrimSpace(req.PhoneLast4)
	if unit == "" || lastName == "" || !isFourDigits(phone) {
		return entities.ResetTicket{}, ErrInvalidResetRequest
	}

	tenants, err := u.directory.ListByUnit(ctx, unit)
	if err != nil {
		zap.L().Error("[reset][usecase] directory lookup failed", zap.String("unit", unit), zap.Error(err))
		return entities.ResetTicket{}, err
	}

	for _, t := range tenants {
		if strings.ToLower(strings.TrimSpace(t.LastName)) != lastName || strings.TrimSpace(t.PhoneLast4) != phone {
			continue
		}
		ticket := entities.ResetTicket{
			Code:      u.newCode(),
			ExpiresAt: u.clock.Now().Add(entities.ResetTicketTTL),
			Unit:      t.Unit,
			LastName:  t.LastName,
		}
		zap.L().Info("[reset][usecase] ticket issued", zap.String("unit", unit), zap.Time("expires_at", ticket.ExpiresAt))
		return ticket, nil
	}

	zap.L().Info("[reset][usecase] no matching tenant", zap.String("unit", unit), zap.Int("candidates", len(tenants)))
	return entities.ResetTicket{}, ErrNoMatch
}

// NormalizeUnit uppercases a unit and drops a leading "Unit" label, so
// "unit 204a" and "204A" name the same unit.
func NormalizeUnit(unit string) string {
	unit = strings.ToUpper(strings.TrimSpace(unit))
	if rest, ok := strings.CutPrefix(unit, "UNIT "); ok {
		unit = strings.TrimSpace(rest)
	}
	return unit
}

func isFourDigits(v string) bool {
	if len(v) != 4 {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func randomResetCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}
