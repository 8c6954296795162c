package handler

import (
	"errors"
	"net/http"

	"sopdocs/internal/sop/model"
	"sopdocs/internal/sop/service"

	"github.com/labstack/echo/v4"
)

// respondError writes the mapped error body, stamped with the request id.
func respondError(c echo.Context, err error) error {
	code, body := httpError(err)
	body.Error.RequestID = RequestID(c)
	return c.JSON(code, body)
}

// Helper to map errors to HTTP status and body
func httpError(err error) (int, model.ErrorResponse) {
	var code string
	var msg string
	var status int

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Invalid approver credentials or rate limit exceeded"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = "Operation or document not found"
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
		msg = "Operation has already been decided"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	case errors.Is(err, service.ErrExecutionFailed):
		status = http.StatusInternalServerError
		code = "execution_failed"
		msg = "Approved operation could not be executed; it remains pending"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

func validationError(err error) model.ErrorResponse {
	if detail, ok := err.(*model.ErrorDetail); ok {
		return model.ErrorResponse{Error: *detail}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}
