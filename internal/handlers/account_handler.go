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

// AccountHandler serves the read-only account and profile lookups
type AccountHandler struct {
	queryService services.AccountQueryServiceInterface
}

func NewAccountHandler(queryService services.AccountQueryServiceInterface) *AccountHandler {
	return &AccountHandler{
		queryService: queryService,
	}
}

// FindAccounts looks up accounts by exact account number
// @Summary Find accounts by number
// @Description Exact-match lookup. An unknown number yields an empty list.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param account_number query string true "Account number"
// @Success 200 {object} dto.AccountLookupResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Missing or malformed account number"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) FindAccounts(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	query := dto.AccountLookupQuery{AccountNumber: c.QueryParam("account_number")}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.Details(err)...))
	}

	accounts, err := h.queryService.FindAccountsByNumber(c.Request().Context(), query.AccountNumber)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountLookupResponse(accounts))
}

// ListMyAccounts returns the caller's own accounts with balances
// @Summary List own accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AccountListResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/mine [get]
func (h *AccountHandler) ListMyAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accounts, err := h.queryService.ListAccounts(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{Accounts: accounts})
}

// GetProfile returns the profile of an account owner
// @Summary Get profile
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid profile ID"
// @Failure 404 {object} errors.ErrorResponse "PROFILE_001 - Profile not found"
// @Router /profiles/{id} [get]
func (h *AccountHandler) GetProfile(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profileID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid profile ID"))
	}

	profile, err := h.queryService.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		if goerrors.Is(err, services.ErrProfileNotFound) {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}
