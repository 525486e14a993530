package http

import (
	"errors"

	"tweet-insights-srv/internal/chat"
	pkgErrors "tweet-insights-srv/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errNoMessages = pkgErrors.NewHTTPError(
		400, "At least one message is required",
	)
	errLastTurnNotUser = pkgErrors.NewHTTPError(
		400, "The last message must have role \"user\"",
	)
	errEmptyMessage = pkgErrors.NewHTTPError(
		400, "Message is empty",
	)
	errMessageTooLong = pkgErrors.NewHTTPError(
		400, "Message too long (max 2000 characters)",
	)
	errTooManyTurns = pkgErrors.NewHTTPError(
		400, "Too many messages (max 20)",
	)
	errInvalidRole = pkgErrors.NewHTTPError(
		400, "Message role must be \"user\" or \"assistant\"",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrNoMessages):
		return errNoMessages
	case errors.Is(err, chat.ErrLastTurnNotUser):
		return errLastTurnNotUser
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, chat.ErrTooManyTurns):
		return errTooManyTurns
	case errors.Is(err, chat.ErrInvalidRole):
		return errInvalidRole
	default:
		return err
	}
}
