package response

import (
	"fmt"
	"time"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase"
)

type AccountResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
}

type SessionResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Account   AccountResponse  `json:"account"`
	Workflow  WorkflowResponse `json:"workflow"`
}

func FromSignIn(r usecase.SignInResult) SessionResponse {
	return SessionResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		Account:   FromAccount(r.Account),
		Workflow:  FromWorkflowState(r.State),
	}
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{Email: a.Email, Name: a.Name, Unit: a.Unit}
}

type ResetTicketResponse struct {
	Code             string    `json:"code"`
	ExpiresAt        time.Time `json:"expires_at"`
	RemainingMinutes int       `json:"remaining_minutes"`
	Message          string    `json:"message"`
}

func FromResetTicket(t entities.ResetTicket, now time.Time) ResetTicketResponse {
	mins := t.RemainingMinutes(now)
	return ResetTicketResponse{
		Code:             t.Code,
		ExpiresAt:        t.ExpiresAt,
		RemainingMinutes: mins,
		Message:          fmt.Sprintf("This temporary password will expire in %d minutes.", mins),
	}
}
