package handlers

import (
	goerrors "errors"
	"net/http"

	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/errors"
	"nfc-transfer-service/internal/services"
	"nfc-transfer-service/internal/validation"

	"github.com/labstack/echo/v4"
)

// CardHandler lists and toggles the caller's NFC cards
type CardHandler struct {
	cardService services.CardServiceInterface
}

func NewCardHandler(cardService services.CardServiceInterface) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// ListCards returns all cards of the caller, active or not
// @Summary List cards
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CardListResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /cards [get]
func (h *CardHandler) ListCards(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	cards, err := h.cardService.ListCards(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CardListResponse{Cards: cards})
}

// UpdateCardStatus activates or deactivates a card and returns the stored card
// @Summary Toggle card
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Card ID (UUID)"
// @Param request body dto.UpdateCardStatusRequest true "New status"
// @Success 200 {object} models.Card
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 403 {object} errors.ErrorResponse "CARD_003 - Card belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "CARD_001 - Card not found"
// @Router /cards/{id} [patch]
func (h *CardHandler) UpdateCardStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	cardID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid card ID"))
	}

	var req dto.UpdateCardStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.Details(err)...))
	}

	card, err := h.cardService.SetCardActive(c.Request().Context(), userID, cardID, *req.IsActive)
	if err != nil {
		switch {
		case goerrors.Is(err, services.ErrCardNotFound):
			return SendError(c, errors.CardNotFound)
		case goerrors.Is(err, services.ErrCardNotOwned):
			return SendError(c, errors.CardNotOwned)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, card)
}
