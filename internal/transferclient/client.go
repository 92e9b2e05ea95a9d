package transferclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"nfc-transfer-service/internal/config"
	"nfc-transfer-service/internal/dto"
	apierrors "nfc-transfer-service/internal/errors"
	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
)

// ErrTransport marks failures where the request may or may not have reached
// the server: connection errors, timeouts, unreadable responses and an open
// circuit.
var ErrTransport = errors.New("transport failure")

const maxErrorBody = 64 << 10

// APIClient talks JSON over HTTP to the transfer service
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *breaker
}

type ClientOption func(*APIClient)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *APIClient) {
		c.httpClient = httpClient
	}
}

func WithBreaker(cfg BreakerConfig) ClientOption {
	return func(c *APIClient) {
		c.breaker = newBreaker(cfg)
	}
}

func NewAPIClient(cfg *config.ClientConfig, opts ...ClientOption) *APIClient {
	c := &APIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    newBreaker(DefaultBreakerConfig()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *APIClient) FindAccountsByNumber(ctx context.Context, session Session, accountNumber string) ([]dto.AccountSummary, error) {
	var resp dto.AccountLookupResponse
	query := url.Values{"account_number": []string{accountNumber}}
	if err := c.do(ctx, session, http.MethodGet, "/api/v1/accounts?"+query.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

func (c *APIClient) AccountsByOwner(ctx context.Context, session Session) ([]models.Account, error) {
	var resp dto.AccountListResponse
	if err := c.do(ctx, session, http.MethodGet, "/api/v1/accounts/mine", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

func (c *APIClient) GetProfile(ctx context.Context, session Session, profileID uuid.UUID) (*dto.ProfileResponse, error) {
	var resp dto.ProfileResponse
	if err := c.do(ctx, session, http.MethodGet, "/api/v1/profiles/"+profileID.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) ListCards(ctx context.Context, session Session) ([]models.Card, error) {
	var resp dto.CardListResponse
	if err := c.do(ctx, session, http.MethodGet, "/api/v1/cards", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cards, nil
}

func (c *APIClient) SetCardActive(ctx context.Context, session Session, cardID uuid.UUID, active bool) (*models.Card, error) {
	var card models.Card
	body := dto.UpdateCardStatusRequest{IsActive: &active}
	if err := c.do(ctx, session, http.MethodPatch, "/api/v1/cards/"+cardID.String(), body, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *APIClient) ProcessTransfer(ctx context.Context, session Session, payload dto.EncryptedPayload) (*dto.ProcessTransferResponse, error) {
	var resp dto.ProcessTransferResponse
	if err := c.do(ctx, session, http.MethodPost, "/api/v1/rpc/process_transfer", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) do(ctx context.Context, session Session, method, path string, body, out interface{}) error {
	if !c.breaker.allow() {
		return fmt.Errorf("%w: %w", ErrTransport, ErrCircuitOpen)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.breaker.recordFailure()
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		c.breaker.recordFailure()
	} else {
		c.breaker.recordSuccess()
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrTransport, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope apierrors.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&envelope); err != nil || envelope.Error.Code == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Code = envelope.Error.Code
	apiErr.Message = envelope.Error.Message
	apiErr.Details = envelope.Error.Details
	apiErr.TraceID = envelope.Error.TraceID
	return apiErr
}
