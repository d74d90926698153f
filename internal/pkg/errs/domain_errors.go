package errs

import "errors"

// Sentinel errors shared by the command and query layers.
var (
	// Lookups
	ErrBookingNotFound = errors.New("booking not found")
	ErrStockNotFound   = errors.New("stock not found")
	ErrRuleNotFound    = errors.New("reimbursement rule not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOffererNotFound = errors.New("offerer not found")
	ErrOfferNotFound   = errors.New("offer not found")

	// Access
	ErrForbidden = errors.New("forbidden")

	// Validation
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrPublishFailed           = errors.New("message publish failed")
)
