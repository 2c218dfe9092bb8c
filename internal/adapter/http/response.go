package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/housing"
	"egov-portal-backend/internal/domain/project"
	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/domain/workflow"
	"egov-portal-backend/internal/domain/zoning"
	"egov-portal-backend/internal/usecase/auth"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func respondOK(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Response{Success: true, Message: message, Data: data})
}

func respondErr(c echo.Context, code int, message string, errs ...FieldError) error {
	return c.JSON(code, Response{Success: false, Message: message, Errors: errs})
}

// respondDomainErr maps usecase/domain errors onto status codes. Anything not
// recognized is a 500 with a generic message so internals never leak.
func respondDomainErr(c echo.Context, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return respondErr(c, http.StatusUnprocessableEntity, "validation failed", ToFieldErrors(err)...)
	}

	var pending *document.PendingError
	if errors.As(err, &pending) {
		return respondErr(c, http.StatusConflict, pending.Error())
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInactive),
		errors.Is(err, auth.ErrInvalidOTP):
		return respondErr(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, workflow.ErrForbidden),
		errors.Is(err, zoning.ErrNotOwner),
		errors.Is(err, housing.ErrNotOwner):
		return respondErr(c, http.StatusForbidden, err.Error())

	case errors.Is(err, zoning.ErrNotFound),
		errors.Is(err, housing.ErrNotFound),
		errors.Is(err, document.ErrNotFound),
		errors.Is(err, document.ErrOwnerMismatch),
		errors.Is(err, project.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return respondErr(c, http.StatusNotFound, err.Error())

	case errors.Is(err, zoning.ErrInvalidTransition),
		errors.Is(err, housing.ErrInvalidTransition),
		errors.Is(err, housing.ErrInspectionOpen),
		errors.Is(err, housing.ErrNoOpenInspection),
		errors.Is(err, document.ErrNotPending),
		errors.Is(err, document.ErrNotRejected):
		return respondErr(c, http.StatusConflict, err.Error())

	case errors.Is(err, zoning.ErrRemarksRequired),
		errors.Is(err, housing.ErrRemarksRequired),
		errors.Is(err, document.ErrRemarksRequired),
		errors.Is(err, zoning.ErrInvalidInput),
		errors.Is(err, housing.ErrInvalidInput):
		return respondErr(c, http.StatusUnprocessableEntity, err.Error())
	}

	c.Logger().Error(err)
	return respondErr(c, http.StatusInternalServerError, "internal error")
}
