package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound         ErrorCode = "ACCOUNT_001"
	AccountCurrencyMismatch ErrorCode = "ACCOUNT_002"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound ErrorCode = "PROFILE_001"
)

// Card error codes (CARD_*)
const (
	CardNotFound ErrorCode = "CARD_001"
	CardInactive ErrorCode = "CARD_002"
	CardNotOwned ErrorCode = "CARD_003"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount       ErrorCode = "TRANSFER_001"
	TransferPending           ErrorCode = "TRANSFER_002"
	TransferFailed            ErrorCode = "TRANSFER_003"
	TransferNotFound          ErrorCode = "TRANSFER_004"
	TransferInsufficientFunds ErrorCode = "TRANSFER_005"
	TransferInvalidAmount     ErrorCode = "TRANSFER_006"
	TransferInvalidType       ErrorCode = "TRANSFER_007"
	TransferDecryptionFailed  ErrorCode = "TRANSFER_008"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Account errors
	AccountNotFound:         "Account not found",
	AccountCurrencyMismatch: "Accounts must share the same currency",

	// Profile errors
	ProfileNotFound: "Profile not found",

	// Card errors
	CardNotFound: "Card not found",
	CardInactive: "Card is not active",
	CardNotOwned: "Card does not belong to the requesting user",

	// Transfer errors
	TransferSameAccount:       "Cannot transfer to the same account",
	TransferPending:           "A transfer with this payload is still processing",
	TransferFailed:            "A transfer with this payload previously failed",
	TransferNotFound:          "Transfer not found",
	TransferInsufficientFunds: "Source account has insufficient balance for this transfer",
	TransferInvalidAmount:     "Invalid transfer amount",
	TransferInvalidType:       "Invalid transfer type",
	TransferDecryptionFailed:  "Transfer payload could not be decrypted",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
