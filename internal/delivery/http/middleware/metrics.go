package middleware

import (
	"errors"

	"tradeaskill/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
)

// Metrics counts requests by matched route so path parameters do not blow up
// label cardinality. It runs inside the error middleware and so sees handler
// errors before they are turned into responses.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var appErr *AppError
			var fiberErr *fiber.Error
			switch {
			case errors.As(err, &appErr) && appErr.StatusCode > 0:
				status = appErr.StatusCode
			case errors.As(err, &fiberErr):
				status = fiberErr.Code
			}
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		metrics.ObserveHTTP(c.Method(), route, status)
		return err
	}
}
