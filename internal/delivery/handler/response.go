package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"task-service/internal/domain/apperr"
)

// envelope is the uniform response body: {success, message, data}.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func successResponse(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Message: message, Data: nil})
}

// failWith maps a service error onto the taxonomy's HTTP status. Unrecognized
// errors become a 500 with a generic message so internals do not leak.
func failWith(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperr.ErrDuplicateEmail):
		return errorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials),
		errors.Is(err, apperr.ErrExpiredToken),
		errors.Is(err, apperr.ErrMalformedToken),
		errors.Is(err, apperr.ErrWrongTokenType),
		errors.Is(err, apperr.ErrUnknownSubject):
		return errorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		return errorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrTaskNotFound):
		return errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrNoFieldsProvided),
		errors.Is(err, apperr.ErrEmptyBatch),
		errors.Is(err, apperr.ErrInvalidPeriod):
		return errorResponse(c, http.StatusBadRequest, err.Error())
	default:
		c.Logger().Error(err)
		return errorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
