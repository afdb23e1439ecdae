package handlers

import (
	"errors"
	"net/http"

	request "resident_service/internal/adapter/http/dto/request"
	response "resident_service/internal/adapter/http/dto/response"
	"resident_service/internal/usecase"
	"resident_service/pkg"
	"resident_service/pkg/clock"

	"github.com/gin-gonic/gin"
)

type PasswordResetHandler struct {
	issuer usecase.IResetTicketIssuer
	clock  clock.Clock
}

func NewPasswordResetHandler(issuer usecase.IResetTicketIssuer, clk clock.Clock) *PasswordResetHandler {
	return &PasswordResetHandler{issuer: issuer, clock: clk}
}

// CreateReset godoc
// @Summary  Issue a temporary password for a verified tenant
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    body  body      request.PasswordResetRequest  true  "Tenancy details"
// @Success  201   {object}  response.ResetTicketResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /password-resets [post]
func (h *PasswordResetHandler) CreateReset(c *gin.Context) {
	var payload request.PasswordResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	ticket, err := h.issuer.Issue(c.Request.Context(), payload.ToResetRequest())
	if err != nil {
		writeError(c, mapResetError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromResetTicket(ticket, h.clock.Now()))
}

func mapResetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidResetRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Unit, last name and the last 4 phone digits are required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoMatch):
		return pkg.NewDomainError("NO_MATCHING_TENANT", "We couldn’t find a matching tenant record.", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Unable to create temporary password.", err, http.StatusInternalServerError)
	}
}
