package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"mentoring_backend/internals/logging"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// JsonError writes the {error} shape every failing endpoint uses.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "Internal server error"
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// JsonList: {data, pagination}
func JsonList(c *fiber.Ctx, data any, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":       data,
		"pagination": pagination,
	})
}

// JsonData: {data}
func JsonData(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: message})
}

// ErrorHandler is installed as fiber.Config.ErrorHandler. AppErrors map to their status,
// *fiber.Error keeps its code, anything else becomes a logged 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr == nil {
			// a typed nil leaked through an error interface
			logging.L().Error().Str("path", c.Path()).Msg("nil *AppError returned as error")
			return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if appErr.Kind == KindInternal {
			logError(c, appErr.Err)
		}
		return JsonError(c, appErr.Status(), appErr.Message)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			logError(c, fe)
		}
		return JsonError(c, fe.Code, fe.Message)
	}

	logError(c, err)
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

func logError(c *fiber.Ctx, err error) {
	reqID, _ := c.Locals("reqid").(string)
	logging.L().Error().
		Err(err).
		Str("request_id", reqID).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")
}
