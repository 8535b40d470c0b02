package account

import "fmt"

// Error codes returned by account operations
const (
	CodeUserExistsEmail      = "USER_EXISTS_EMAIL"
	CodeUserExistsPhone      = "USER_EXISTS_PHONE"
	CodeDuplicateDraftEmail  = "DUPLICATE_DRAFT_EMAIL"
	CodeDuplicateDraftPhone  = "DUPLICATE_DRAFT_PHONE"
	CodeMissingDraft         = "MISSING_DRAFT"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodePersistenceError     = "PERSISTENCE_ERROR"
	CodePhoneChangeCooldown  = "PHONE_CHANGE_COOLDOWN"
	CodeOTPRequired          = "OTP_REQUIRED"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeTooManyAttempts      = "TOO_MANY_ATTEMPTS"
	CodeNotFound             = "NOT_FOUND"
)

// AccountError is a typed failure with a stable code the transport layer
// can map to a status, plus a human-readable message
type AccountError struct {
	Code    string
	Message string
}

func (e *AccountError) Error() string {
	return e.Message
}

// NewAccountError creates an account error with the given code and message
func NewAccountError(code, message string) *AccountError {
	return &AccountError{Code: code, Message: message}
}

// NewPersistenceError wraps a repository failure as a generic persistence error
func NewPersistenceError(err error) *AccountError {
	return &AccountError{
		Code:    CodePersistenceError,
		Message: fmt.Sprintf("persistence failure: %v", err),
	}
}
