package handlers

import (
	"log/slog"
	"net/http"

	"nfc-transfer-service/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers answer errors through SendError for client and business errors
// and SendSystemError for anything internal. Internal details never reach
// the response body.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic SYSTEM_001 response
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", traceID),
		slog.String("path", c.Path()),
		slog.Any("error", internal),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
