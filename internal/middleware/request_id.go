package middleware

import (
	"nfc-transfer-service/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"

	// audit_logs.trace_id is varchar(64)
	maxTraceIDLength = 64
)

// RequestID assigns each request a trace id. A caller-supplied X-Trace-ID is
// kept when it is short enough to store. The id is set on the echo context,
// the response header and the request context, where audit events pick it
// up as their correlation id.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" || len(traceID) > maxTraceIDLength {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))

			return next(c)
		}
	}
}

// GetTraceID returns the id set by RequestID, or "" outside that middleware
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
