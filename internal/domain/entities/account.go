package entities

import (
	"math"
	"time"
)

// Account is a resident credential record.
type Account struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"-" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	Unit     string `json:"unit" yaml:"unit"`
}

// Tenant is a tenancy record used to verify password reset requests.
type Tenant struct {
	Unit       string `json:"unit" yaml:"unit"`
	FirstName  string `json:"first_name" yaml:"first_name"`
	LastName   string `json:"last_name" yaml:"last_name"`
	PhoneLast4 string `json:"phone_last4" yaml:"phone_last4"`
}

type ResetRequest struct {
	Unit       string
	LastName   string
	PhoneLast4 string
}

const ResetTicketTTL = 15 * time.Minute

// ResetTicket is a short-lived password reset code.
type ResetTicket struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Unit      string    `json:"unit"`
	LastName  string    `json:"last_name"`
}

// RemainingMinutes rounds the time left up to whole minutes and never
// reports less than one.
func (t ResetTicket) RemainingMinutes(now time.Time) int {
	left := t.ExpiresAt.Sub(now)
	mins := int(math.Ceil(float64(left) / float64(time.Minute)))
	if mins < 1 {
		return 1
	}
	return mins
}
