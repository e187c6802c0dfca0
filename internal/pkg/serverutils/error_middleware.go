package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"ai-catalog-be/internal/apperror"
	"ai-catalog-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware turns errors bubbled out of controllers into JSON
// responses, using the apperror taxonomy for the status code. Internal
// faults are logged and masked.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		status := apperror.StatusCode(err)
		message := err.Error()
		if status == fiber.StatusInternalServerError {
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			message = "Internal server error"
		}

		if apperror.IsRateLimited(err) {
			// The chat widget reads remaining from the limit response.
			return ctx.Status(status).JSON(fiber.Map{"message": message, "remaining": 0})
		}

		return ctx.Status(status).JSON(fiber.Map{"message": message})
	}
}
