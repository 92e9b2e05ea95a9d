package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"nfc-transfer-service/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panic in a handler into a SYSTEM_001 response. The
// stack goes to the log, never to the client.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.ErrorContext(c.Request().Context(), "panic recovered",
					slog.String("trace_id", traceID),
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("stack_trace", string(debug.Stack())),
					slog.String("path", c.Request().URL.Path),
					slog.String("method", c.Request().Method),
				)

				if c.Response().Committed {
					return
				}

				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
