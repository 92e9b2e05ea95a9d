package transferclient

import (
	"context"
	"sync/atomic"

	"nfc-transfer-service/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PreparedTransfer is an encrypted transfer ready to send. The payload is
// fixed at preparation time, so every resend carries the same bytes and the
// server applies it at most once.
type PreparedTransfer struct {
	Payload      dto.EncryptedPayload
	Amount       decimal.Decimal
	Counterparty Counterparty

	inFlight atomic.Bool
}

// InFlight reports whether a submission is currently running
func (p *PreparedTransfer) InFlight() bool {
	return p.inFlight.Load()
}

// SubmitAck is the server's acknowledgment of a processed transfer
type SubmitAck struct {
	TransferID uuid.UUID
	Status     string
	Amount     string
}

// Submitter sends prepared transfers. It never retries on its own.
type Submitter struct {
	api API
}

func NewSubmitter(api API) *Submitter {
	return &Submitter{api: api}
}

func (s *Submitter) Submit(ctx context.Context, session Session, prepared *PreparedTransfer) (*SubmitAck, error) {
	const op = "submit transfer"

	if !prepared.inFlight.CompareAndSwap(false, true) {
		return nil, newError(KindValidation, op, ErrSubmissionInFlight)
	}
	defer prepared.inFlight.Store(false)

	resp, err := s.api.ProcessTransfer(ctx, session, prepared.Payload)
	if err != nil {
		return nil, fromAPI(op, err)
	}

	transferID, err := uuid.Parse(resp.TransferID)
	if err != nil {
		return nil, &Error{Kind: KindServerRejected, Op: op, Message: "server returned an invalid transfer id", Err: err}
	}

	return &SubmitAck{
		TransferID: transferID,
		Status:     resp.Status,
		Amount:     resp.Amount,
	}, nil
}
