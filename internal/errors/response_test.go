package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(CardNotFound, s.traceID)

	s.Equal("CARD_001", response.Error.Code)
	s.Equal("Card not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(
		TransferFailed,
		s.traceID,
		WithMessage("first"),
		WithMessage("second"),
		WithDetails("a", "b"),
		WithDetails("transfer_id: 42"),
	)

	s.Equal("second", response.Error.Message)
	s.Equal([]string{"transfer_id: 42"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"iv":         "is required",
		"ciphertext": "must be base64",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"ciphertext: must be base64", "iv: is required"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalError() {
	internalErr := errors.New("pq: relation \"transactions\" does not exist")

	response, original := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "transactions")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, original)
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	dbErr := errors.New("connection pool exhausted")

	response, original := WrapDatabaseError(dbErr, s.traceID)

	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal(dbErr, original)
}

func (s *ResponseTestSuite) TestToJSON_OmitsEmptyDetails() {
	jsonBytes, err := NewErrorResponse(AuthMissingToken, s.traceID).ToJSON()
	s.Require().NoError(err)

	var body map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &body))

	_, hasDetails := body["error"]["details"]
	s.False(hasDetails)
	s.Equal("AUTH_001", body["error"]["code"])
	s.Equal(s.traceID, body["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{TransferSameAccount, http.StatusBadRequest},
		{TransferDecryptionFailed, http.StatusBadRequest},
		{AuthExpiredToken, http.StatusUnauthorized},
		{CardNotOwned, http.StatusForbidden},
		{AccountNotFound, http.StatusNotFound},
		{ProfileNotFound, http.StatusNotFound},
		{TransferPending, http.StatusConflict},
		{TransferFailed, http.StatusConflict},
		{TransferInsufficientFunds, http.StatusUnprocessableEntity},
		{CardInactive, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerClassification() {
	s.True(NewErrorResponse(CardNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(CardNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemInternalError, s.traceID).IsServerError())
}

func (s *ResponseTestSuite) TestString() {
	str := NewErrorResponse(TransferNotFound, s.traceID).String()

	s.Contains(str, "TRANSFER_004")
	s.Contains(str, "Transfer not found")
	s.Contains(str, s.traceID)
}
