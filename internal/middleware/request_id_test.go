package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nfc-transfer-service/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) run(header string) (string, *httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen, correlationID string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		correlationID = services.CorrelationID(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return seen, rec, correlationID
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesUUID() {
	traceID, rec, _ := s.run("")

	_, err := uuid.Parse(traceID)
	s.NoError(err)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	traceID, rec, _ := s.run("existing-trace-id-12345")

	s.Equal("existing-trace-id-12345", traceID)
	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ReplacesOversizedTraceID() {
	oversized := strings.Repeat("x", maxTraceIDLength+1)

	traceID, _, _ := s.run(oversized)

	s.NotEqual(oversized, traceID)
	_, err := uuid.Parse(traceID)
	s.NoError(err)
}

func (s *RequestIDTestSuite) TestRequestID_SetsCorrelationIDOnRequestContext() {
	traceID, _, correlationID := s.run("")

	s.Equal(traceID, correlationID)
}

func (s *RequestIDTestSuite) TestGetTraceID_ReturnsEmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
