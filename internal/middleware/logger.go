package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger tags each request with a generated id, plants a request-scoped
// logger in the context so downstream layers inherit the id, and emits a
// single summary line once the handler returns.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		logger := log.With().Str("request_id", uuid.New().String()).Logger()
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		err := next(c)

		logger.Info().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Int64("bytes_out", c.Response().Size).
			Dur("latency", time.Since(start)).
			Msg("request completed")

		return err
	}
}
