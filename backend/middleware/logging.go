package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware writes one line per request. Colours are used unless the
// logger was built for json output.
func LoggingMiddleware(logger *log.Logger, colors bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		method := c.Method()

		var statusColor, methodColor, resetColor string
		if colors {
			statusColor, methodColor, resetColor = getStatusColor(status), getMethodColor(method), "\033[0m"
		}

		logger.Printf("%s %s%s%s %s %s%d%s %s %q %v",
			c.IP(),
			methodColor, method, resetColor,
			c.Path(),
			statusColor, status, resetColor,
			time.Since(start),
			c.Get(fiber.HeaderUserAgent),
			err,
		)

		return err
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 500:
		return "\033[31m"
	case status >= 400:
		return "\033[33m"
	case status >= 300:
		return "\033[36m"
	case status >= 200:
		return "\033[32m"
	default:
		return "\033[37m"
	}
}

func getMethodColor(method string) string {
	switch method {
	case fiber.MethodGet:
		return "\033[34m"
	case fiber.MethodPost:
		return "\033[33m"
	case fiber.MethodPut:
		return "\033[36m"
	case fiber.MethodDelete:
		return "\033[31m"
	case fiber.MethodPatch:
		return "\033[32m"
	default:
		return "\033[37m"
	}
}
