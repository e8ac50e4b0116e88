package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes data as the JSON body with the given status
func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Error writes an error body carrying err's message
func Error(c *fiber.Ctx, status int, err error, details ...interface{}) error {
	response := ErrorResponse{
		Message: err.Error(),
	}

	if len(details) > 0 {
		response.Details = details[0]
	}

	return c.Status(status).JSON(response)
}

// ValidationError answers 422 with one entry per offending field
func ValidationError(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Message: "Validation failed",
		Details: errors,
	})
}

// Created answers 201 Created
func Created(c *fiber.Ctx, data interface{}) error {
	return Success(c, fiber.StatusCreated, data)
}

// NotFound answers 404 Not Found
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, fiber.NewError(fiber.StatusNotFound, message))
}

// BadRequest answers 400 Bad Request
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, fiber.NewError(fiber.StatusBadRequest, message))
}

// Unauthorized answers 401 Unauthorized
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, fiber.NewError(fiber.StatusUnauthorized, message))
}

// Conflict answers 409 Conflict
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, fiber.NewError(fiber.StatusConflict, message))
}

// InternalServerError answers 500 with a static message; the cause is never sent
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, fiber.NewError(fiber.StatusInternalServerError, message))
}

// ErrorHandler is the app-wide fallback for errors returned by handlers and
// recovered panics. Only *fiber.Error messages reach the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(ErrorResponse{Message: fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Message: "Internal server error"})
}
