package handlers

import (
	"fmt"
	"strings"
	"time"

	"budget-coach/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}

// parseAsOf reads the asOf query parameter. Without one the current UTC
// calendar day is used.
func parseAsOf(c echo.Context, now func() time.Time) (time.Time, error) {
	raw := c.QueryParam("asOf")
	if raw == "" {
		return models.Day(now()), nil
	}
	return models.ParseDay(raw)
}

func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
