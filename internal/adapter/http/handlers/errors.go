package handlers

import (
	"errors"
	"net/http"

	"resident_service/internal/usecase"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Sign in to continue", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidSessionToken),
		errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrSessionClosed):
		return errUnauthorized
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrGuardFailed):
		return pkg.NewDomainError("STEP_INCOMPLETE", "Complete the required fields before continuing", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrStepActionNotAllowed),
		errors.Is(err, usecase.ErrFieldNotEditable),
		errors.Is(err, usecase.ErrNoActiveDraft):
		return pkg.NewDomainError("INVALID_TRANSITION", "Action not available on the current screen", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPhotoLimitReached):
		return pkg.NewDomainError("PHOTO_LIMIT_REACHED", "A request holds at most 4 photos", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownCategory),
		errors.Is(err, usecase.ErrUnknownFixture),
		errors.Is(err, usecase.ErrFixtureNotInCategory),
		errors.Is(err, usecase.ErrInvalidPhotoRef),
		errors.Is(err, usecase.ErrUnknownCondition),
		errors.Is(err, usecase.ErrFreeTextNotAccepted),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidSlot),
		errors.Is(err, usecase.ErrInvalidSwapPref),
		errors.Is(err, usecase.ErrSwapDisabled):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return mapSessionError(err)
	}
}
