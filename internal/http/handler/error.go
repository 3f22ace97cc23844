package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"docsearch/internal/http/middleware"
)

// ErrNoFiles is returned when an upload request carries no "files" parts.
var ErrNoFiles = fiber.NewError(fiber.StatusBadRequest, "No files uploaded")

// errorPayload is the body of every error response.
type errorPayload struct {
	Error string `json:"error"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// ErrorHandler returns a Fiber global error handler that renders every error
// as {"error": message} without leaking internal details.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}

		switch status {
		case fiber.StatusNotFound:
			message = "Not found"
		case fiber.StatusMethodNotAllowed:
			message = "Method not allowed"
		case fiber.StatusInternalServerError:
			message = "Internal server error"
		}

		if status >= fiber.StatusInternalServerError {
			rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
			log.Error().Err(err).Str("request_id", rid).Str("path", c.Path()).Msg("request failed")
		}

		return writeError(c, status, message)
	}
}
