package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

// ErrorReply is sent for every failed request; the session id is always 0.
type ErrorReply struct {
	SessionID int64  `json:"session_id"`
	Error     string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrUnknownGame):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrIllegalMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrInvalidRequest),
		errors.Is(err, apperror.ErrOutOfRange),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sendError(ctx echo.Context, log *slog.Logger, err error) error {
	status := statusOf(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, ErrorReply{SessionID: 0, Error: message})
}
