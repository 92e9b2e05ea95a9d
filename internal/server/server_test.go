package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nfc-transfer-service/internal/database"
	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/models"
	"nfc-transfer-service/internal/payload"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServerSuite struct {
	suite.Suite
	env     *TestEnv
	aliceID uuid.UUID
	alice   *models.Account
	bob     *models.Account
	card    *models.Card
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.env = SetupTestServer(s.T())

	s.aliceID = uuid.New()
	s.alice = database.CreateTestAccount(s.T(), s.env.DB, s.aliceID, "FR001", decimal.NewFromInt(100))
	s.bob = database.CreateTestAccount(s.T(), s.env.DB, uuid.New(), "FR002", decimal.Zero)
	s.card = database.CreateTestCard(s.T(), s.env.DB, s.aliceID, "04A224B1C2", true)
}

func (s *ServerSuite) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.env.Server.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) sealed(amount string) dto.EncryptedPayload {
	p, err := payload.NewEncryptor().Seal(models.TransferIntent{
		FromAccountID: s.alice.ID,
		ToAccountID:   s.bob.ID,
		Amount:        decimal.RequireFromString(amount),
		Type:          models.TransferTypeTransfer,
		CardID:        s.card.ID,
	}, payload.MustDeriveKey(TestPassphrase))
	s.Require().NoError(err)
	return p
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *ServerSuite) TestAPIRequiresToken() {
	rec := s.do(http.MethodGet, "/api/v1/cards", nil, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *ServerSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/nowhere", nil, "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *ServerSuite) TestProcessTransferEndToEnd() {
	token := s.env.TokenFor(s.T(), s.aliceID)
	body := s.sealed("50.00")

	first := s.do(http.MethodPost, "/api/v1/rpc/process_transfer", body, token)
	s.Require().Equal(http.StatusOK, first.Code, first.Body.String())

	var ack dto.ProcessTransferResponse
	s.Require().NoError(json.Unmarshal(first.Body.Bytes(), &ack))
	s.Equal(models.TransferStatusCompleted, ack.Status)
	s.Equal("50.00", ack.Amount)

	replay := s.do(http.MethodPost, "/api/v1/rpc/process_transfer", body, token)
	s.Require().Equal(http.StatusOK, replay.Code)

	var replayAck dto.ProcessTransferResponse
	s.Require().NoError(json.Unmarshal(replay.Body.Bytes(), &replayAck))
	s.Equal(ack.TransferID, replayAck.TransferID)

	var alice models.Account
	s.Require().NoError(s.env.DB.First(&alice, "id = ?", s.alice.ID).Error)
	s.True(alice.Balance.Equal(decimal.NewFromInt(50)), alice.Balance.String())

	lookup := s.do(http.MethodGet, "/api/v1/transfers/"+ack.TransferID, nil, token)
	s.Equal(http.StatusOK, lookup.Code)
}

func (s *ServerSuite) TestProcessTransferRejectsInvalidBody() {
	token := s.env.TokenFor(s.T(), s.aliceID)

	rec := s.do(http.MethodPost, "/api/v1/rpc/process_transfer", map[string]string{"ciphertext": "abc"}, token)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *ServerSuite) TestAccountLookupAndProfile() {
	token := s.env.TokenFor(s.T(), s.aliceID)

	rec := s.do(http.MethodGet, "/api/v1/accounts?account_number=FR002", nil, token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var lookup dto.AccountLookupResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &lookup))
	s.Require().Len(lookup.Accounts, 1)
	s.Equal(s.bob.ID, lookup.Accounts[0].ID)

	profile := database.CreateTestProfile(s.T(), s.env.DB)
	rec = s.do(http.MethodGet, "/api/v1/profiles/"+profile.ID.String(), nil, token)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerSuite) TestCardToggle() {
	token := s.env.TokenFor(s.T(), s.aliceID)

	rec := s.do(http.MethodPatch, "/api/v1/cards/"+s.card.ID.String(), map[string]bool{"is_active": false}, token)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/cards", nil, token)
	var cards dto.CardListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &cards))
	s.Require().Len(cards.Cards, 1)
	s.False(cards.Cards[0].IsActive)
}

func (s *ServerSuite) TestMetricsEndpoint() {
	token := s.env.TokenFor(s.T(), s.aliceID)
	s.do(http.MethodPost, "/api/v1/rpc/process_transfer", s.sealed("10.00"), token)

	rec := s.do(http.MethodGet, "/metrics", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "transfers_total")
}
