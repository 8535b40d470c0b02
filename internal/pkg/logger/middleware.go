package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates request-logging middleware for Echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			logger.LogHTTPRequest(method, path, clientIP, requestID, statusCode, latency, err)

			return err
		}
	}
}
