package utility

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// GetRealIP is a helper function to get the user's real IP address
// It checks proxy headers first.
func GetRealIP(c echo.Context) string {
	// This header can be a list: "client, proxy1, proxy2"
	if xForwardedFor := c.Request().Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		return strings.TrimSpace(ips[0])
	}
	if xRealIP := c.Request().Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}
	return c.RealIP()
}

// GetUserIDFromContext safely retrieves user ID from Echo context
func GetUserIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// GetLogger returns the request-scoped logger set by the logger middleware,
// or the global logger outside a request.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get("logger").(*zerolog.Logger); ok && l != nil {
		return l
	}
	return &log.Logger
}
