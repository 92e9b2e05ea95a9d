package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/models"
	"nfc-transfer-service/internal/services"
	"nfc-transfer-service/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CardHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	cardService *service_mocks.MockCardServiceInterface
	handler     *CardHandler
	echo        *echo.Echo
	userID      uuid.UUID
}

func (s *CardHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cardService = service_mocks.NewMockCardServiceInterface(s.ctrl)
	s.handler = NewCardHandler(s.cardService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *CardHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCardHandlerSuite(t *testing.T) {
	suite.Run(t, new(CardHandlerSuite))
}

func (s *CardHandlerSuite) patch(cardID string, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cards/"+cardID, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(cardID)
	return c, rec
}

func (s *CardHandlerSuite) TestListCards() {
	cards := []models.Card{
		{ID: uuid.New(), UserID: s.userID, UID: "04A1", IsActive: true},
		{ID: uuid.New(), UserID: s.userID, UID: "04B2", IsActive: false},
	}
	s.cardService.EXPECT().ListCards(gomock.Any(), s.userID).Return(cards, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cards", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.NoError(s.handler.ListCards(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CardListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Cards, 2)
	s.False(resp.Cards[1].IsActive)
}

func (s *CardHandlerSuite) TestUpdateCardStatus_Deactivate() {
	cardID := uuid.New()
	updated := &models.Card{ID: cardID, UserID: s.userID, UID: "04A1", IsActive: false}
	s.cardService.EXPECT().SetCardActive(gomock.Any(), s.userID, cardID, false).Return(updated, nil)

	c, rec := s.patch(cardID.String(), `{"is_active":false}`)

	s.NoError(s.handler.UpdateCardStatus(c))
	s.Equal(http.StatusOK, rec.Code)

	var card models.Card
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &card))
	s.False(card.IsActive)
}

func (s *CardHandlerSuite) TestUpdateCardStatus_MissingField() {
	c, rec := s.patch(uuid.New().String(), `{}`)

	s.NoError(s.handler.UpdateCardStatus(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "is_active: is required")
}

func (s *CardHandlerSuite) TestUpdateCardStatus_InvalidID() {
	c, rec := s.patch("not-a-uuid", `{"is_active":true}`)

	s.NoError(s.handler.UpdateCardStatus(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CardHandlerSuite) TestUpdateCardStatus_Errors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", services.ErrCardNotFound, http.StatusNotFound},
		{"not owned", services.ErrCardNotOwned, http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cardID := uuid.New()
			s.cardService.EXPECT().SetCardActive(gomock.Any(), s.userID, cardID, true).Return(nil, tt.err)

			c, rec := s.patch(cardID.String(), `{"is_active":true}`)

			s.NoError(s.handler.UpdateCardStatus(c))
			s.Equal(tt.status, rec.Code)
		})
	}
}
