package handlers

import (
	"errors"
	"net/http"

	request "resident_service/internal/adapter/http/dto/request"
	response "resident_service/internal/adapter/http/dto/response"
	"resident_service/internal/usecase"
	"resident_service/pkg"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	manager usecase.ISessionManager
}

func NewSessionHandler(manager usecase.ISessionManager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// SignIn godoc
// @Summary  Sign in and open a booking session
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    body  body      request.SignInRequest  true  "Credentials"
// @Success  201   {object}  response.SessionResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  401   {object}  pkg.HTTPError
// @Router   /sessions [post]
func (h *SessionHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	res, err := h.manager.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapSignInError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromSignIn(res))
}

// SignOut godoc
// @Summary   Sign out and discard the session's orders
// @Tags      sessions
// @Security  Bearer
// @Success   204
// @Failure   401  {object}  pkg.HTTPError
// @Router    /sessions/current [delete]
func (h *SessionHandler) SignOut(c *gin.Context) {
	token := c.GetString(ctxTokenKey)
	if err := h.manager.SignOut(token); err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSignInError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return pkg.NewDomainError("INVALID_REQUEST", "Email and password are required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainError("ACCOUNT_NOT_FOUND", "Account not found. Please check your email.", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrIncorrectPassword):
		return pkg.NewDomainError("INCORRECT_PASSWORD", "Incorrect password. Please try again.", err, http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
