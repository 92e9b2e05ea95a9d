package middleware

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"nfc-transfer-service/internal/errors"
	"nfc-transfer-service/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewHTTPErrorHandler formats every error that escapes a handler as the
// standard error envelope and counts it in api_errors_total
func NewHTTPErrorHandler(logger *slog.Logger, reg prometheus.Registerer) echo.HTTPErrorHandler {
	apiErrorsTotal := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, httpStatus := toErrorResponse(err, traceID)

		level := slog.LevelWarn
		if httpStatus >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		logger.Log(c.Request().Context(), level, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		apiErrorsTotal.WithLabelValues(
			errorResponse.Error.Code,
			c.Path(),
			strconv.Itoa(httpStatus),
		).Inc()

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			logger.Error("failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

func toErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if goerrors.As(err, &echoErr) {
		code := mapHTTPStatusToErrorCode(echoErr.Code)
		response := errors.NewErrorResponse(code, traceID)
		if echoErr.Code < http.StatusInternalServerError {
			response.Error.Message = fmt.Sprintf("%v", echoErr.Message)
		}
		return response, echoErr.Code
	}

	var validationErrs validator.ValidationErrors
	if goerrors.As(err, &validationErrs) {
		return errors.NewValidationError(validation.FieldErrors(validationErrs), traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity,
		http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}
