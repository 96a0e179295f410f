package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"budget-coach/internal/errors"
	"budget-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. The panic is
// logged with the request's correlation id and counted per route when metrics
// is non-nil. Nothing is written if the handler already started its response.
func PanicRecovery(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				req := c.Request()
				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				route := c.Path()
				if route == "" {
					route = req.URL.Path
				}

				slog.ErrorContext(req.Context(), "panic recovered",
					"trace_id", traceID,
					"correlation_id", services.CorrelationID(req.Context()),
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"route", route,
					"method", req.Method,
				)
				if metrics != nil {
					metrics.IncrementCounter("http.panic", map[string]string{"method": req.Method, "route": route})
				}

				if c.Response().Committed {
					return
				}
				if err := c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID)); err != nil {
					slog.Error("failed to send panic response", "trace_id", traceID, "error", err)
				}
			}()

			return next(c)
		}
	}
}
