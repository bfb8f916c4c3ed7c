// Package response holds the error taxonomy and the central translation of
// application errors into HTTP responses.
package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type ErrorType string

const (
	TypeValidation   ErrorType = "VALIDATION_ERROR"
	TypeNotFound     ErrorType = "NOT_FOUND"
	TypeUnauthorized ErrorType = "UNAUTHORIZED"
	TypeInternal     ErrorType = "INTERNAL_ERROR"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error is an HTTP-mappable application error. Context entries are merged
// into the top level of the response body.
type Error struct {
	Type    ErrorType
	Status  int
	Message string
	Fields  []FieldError
	Context fiber.Map
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidation(message string, fields []FieldError) *Error {
	return &Error{Type: TypeValidation, Status: fiber.StatusBadRequest, Message: message, Fields: fields}
}

func NewNotFound(message string, context fiber.Map) *Error {
	return &Error{Type: TypeNotFound, Status: fiber.StatusNotFound, Message: message, Context: context}
}

func NewUnauthorized() *Error {
	return &Error{Type: TypeUnauthorized, Status: fiber.StatusUnauthorized, Message: "Unauthorized"}
}

// NewInternal wraps a backing-store or other unexpected failure. The cause
// is logged centrally, never sent to the client.
func NewInternal(err error) *Error {
	return &Error{Type: TypeInternal, Status: fiber.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// Body renders the structured error body for e.
func Body(e *Error) fiber.Map {
	body := fiber.Map{
		"status":  "error",
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Fields) > 0 {
		body["errors"] = e.Fields
	}
	for k, v := range e.Context {
		body[k] = v
	}
	return body
}

// ErrorHandler translates errors escaping route handlers. Unrecognized
// errors are logged and reduced to a safe internal-error body.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *Error
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				log.Error().Err(appErr.Err).Str("path", c.Path()).Msg(appErr.Message)
			}
			return c.Status(appErr.Status).JSON(Body(appErr))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"status":  "error",
				"message": fiberErr.Message,
			})
		}

		log.Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")

		return c.Status(fiber.StatusInternalServerError).JSON(Body(NewInternal(nil)))
	}
}
