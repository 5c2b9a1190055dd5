package handlers

import (
	"errors"
	"net/http"

	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase"
	"ecotech/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapDomainError translates use case and entity errors into HTTP errors.
// Domain rule violations keep their message, which names the offending
// field or state.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidParameter):
		return pkg.NewDomainError("INVALID_PARAMETER", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownKind):
		return pkg.NewDomainError("UNKNOWN_KIND", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Disposal request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPointNotFound):
		return pkg.NewDomainErrorSimple("POINT_NOT_FOUND", "Collection point not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrCapacityExceeded):
		return pkg.NewDomainError("CAPACITY_EXCEEDED", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrQuotaExceeded):
		return pkg.NewDomainError("QUOTA_EXCEEDED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTreatmentNotAssigned):
		return pkg.NewDomainErrorSimple("TREATMENT_NOT_ASSIGNED", "Treatment method not assigned", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
