package handlers

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/errors"
	"nfc-transfer-service/internal/models"
	"nfc-transfer-service/internal/services"
	"nfc-transfer-service/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransferHandler exposes the transfer RPC and transfer lookups
type TransferHandler struct {
	processor services.TransferProcessorInterface
}

func NewTransferHandler(processor services.TransferProcessorInterface) *TransferHandler {
	return &TransferHandler{
		processor: processor,
	}
}

// transferErrorCodes maps processor outcomes to API error codes
var transferErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrTransferPending, errors.TransferPending},
	{services.ErrTransferFailed, errors.TransferFailed},
	{services.ErrTransferNotFound, errors.TransferNotFound},
	{services.ErrDecryptionFailed, errors.TransferDecryptionFailed},
	{services.ErrMalformedIntent, errors.ValidationInvalidFormat},
	{services.ErrSameAccountTransfer, errors.TransferSameAccount},
	{services.ErrInvalidAmount, errors.TransferInvalidAmount},
	{services.ErrAmountOutOfRange, errors.TransferInvalidAmount},
	{services.ErrInvalidTransferType, errors.TransferInvalidType},
	{services.ErrAccountNotFound, errors.AccountNotFound},
	{services.ErrCurrencyMismatch, errors.AccountCurrencyMismatch},
	{services.ErrInsufficientFunds, errors.TransferInsufficientFunds},
	{services.ErrNotAccountOwner, errors.AuthInsufficientPermission},
	{services.ErrCardNotFound, errors.CardNotFound},
	{services.ErrCardInactive, errors.CardInactive},
	{services.ErrCardNotOwned, errors.CardNotOwned},
}

func transferErrorCode(err error) (errors.ErrorCode, bool) {
	for _, m := range transferErrorCodes {
		if goerrors.Is(err, m.err) {
			return m.code, true
		}
	}
	return "", false
}

// ProcessTransfer applies an encrypted transfer exactly once
// @Summary Process an encrypted transfer
// @Description Decrypts, authorizes and applies a transfer. Resubmitting the identical payload returns the stored outcome.
// @Tags Transfers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.EncryptedPayload true "Encrypted transfer"
// @Success 200 {object} dto.ProcessTransferResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / TRANSFER_001 / TRANSFER_006 / TRANSFER_008"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 / CARD_003"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 / CARD_001"
// @Failure 409 {object} errors.ErrorResponse "TRANSFER_002 / TRANSFER_003"
// @Failure 422 {object} errors.ErrorResponse "TRANSFER_005 / CARD_002 / ACCOUNT_002"
// @Router /rpc/process_transfer [post]
func (h *TransferHandler) ProcessTransfer(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.EncryptedPayload
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.Details(err)...))
	}

	record, err := h.processor.ProcessTransfer(c.Request().Context(), userID, req)
	if err != nil {
		return h.sendTransferError(c, record, err)
	}

	return c.JSON(http.StatusOK, dto.NewProcessTransferResponse(record))
}

// GetTransfer returns a transfer the caller takes part in
// @Summary Get transfer
// @Tags Transfers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transfer ID (UUID)"
// @Success 200 {object} models.TransferRecord
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transfer ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSFER_004 - Transfer not found"
// @Router /transfers/{id} [get]
func (h *TransferHandler) GetTransfer(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transferID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transfer ID"))
	}

	record, err := h.processor.GetTransfer(c.Request().Context(), userID, transferID)
	if err != nil {
		if goerrors.Is(err, services.ErrTransferNotFound) {
			return SendError(c, errors.TransferNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

func (h *TransferHandler) sendTransferError(c echo.Context, record *models.TransferRecord, err error) error {
	code, ok := transferErrorCode(err)
	if !ok {
		return SendSystemError(c, err)
	}

	if record != nil {
		return SendError(c, code, errors.WithDetails(fmt.Sprintf("transfer_id: %s", record.ID)))
	}
	return SendError(c, code)
}
