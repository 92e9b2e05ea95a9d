package transferclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure of the transfer pipeline
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindLookup
	KindCrypto
	KindNetwork
	KindServerRejected
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindLookup:
		return "lookup"
	case KindCrypto:
		return "crypto"
	case KindNetwork:
		return "network"
	case KindServerRejected:
		return "server rejected"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

var (
	ErrCardNotFound          = errors.New("card not found or inactive")
	ErrNoCardSelected        = errors.New("no card selected")
	ErrCodeMismatch          = errors.New("card code does not match")
	ErrSelfTransfer          = errors.New("account cannot receive transfers from its owner")
	ErrAccountNotFound       = errors.New("account not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrSenderAccountNotFound = errors.New("no sender account")
	ErrNoCounterparty        = errors.New("no counterparty resolved")
	ErrInvalidAmount         = errors.New("amount must be a positive number with at most two decimals")
	ErrEmptyAccountNumber    = errors.New("account number is required")
	ErrInvalidAccountNumber  = errors.New("account number must be 1-34 uppercase letters and digits")
	ErrSubmissionInFlight    = errors.New("transfer submission already in flight")
	ErrNoSession             = errors.New("no signed-in session")
)

// Error is returned by every client operation. Err holds one of the
// sentinels above or the underlying cause.
type Error struct {
	Kind    Kind
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s error [%s]: %s", e.Op, e.Kind, e.Code, msg)
	}
	return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether resending the same payload may succeed
func (e *Error) Retryable() bool {
	return e.Kind == KindNetwork
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of err, or 0 when err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// fromAPI classifies a failed API call. A 401 means the session expired.
// Anything without a structured server answer is a network failure.
func fromAPI(op string, err error) *Error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		kind := KindServerRejected
		if apiErr.Status == http.StatusUnauthorized {
			kind = KindUnauthorized
		}
		return &Error{Kind: kind, Op: op, Code: apiErr.Code, Message: apiErr.Message, Err: apiErr}
	}
	return newError(KindNetwork, op, err)
}
