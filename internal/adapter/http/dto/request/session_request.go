package request

import (
	"strings"

	"resident_service/internal/domain/entities"
)

type SignInRequest struct {
	Email    string `json:"email" binding:"required,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

type PasswordResetRequest struct {
	Unit       string `json:"unit" binding:"required,max=32"`
	LastName   string `json:"last_name" binding:"required,max=64"`
	PhoneLast4 string `json:"phone_last4" binding:"required,len=4,numeric"`
}

func (r PasswordResetRequest) ToResetRequest() entities.ResetRequest {
	return entities.ResetRequest{
		Unit:       strings.TrimSpace(r.Unit),
		LastName:   strings.TrimSpace(r.LastName),
		PhoneLast4: strings.TrimSpace(r.PhoneLast4),
	}
}
