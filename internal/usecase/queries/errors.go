package queries

import "pcapi/internal/pkg/errs"

var (
	ErrInvalidCursor   = errs.New("invalid cursor")
	ErrNotReimbursable = errs.New("booking has not been used")
	ErrUserInactive    = errs.New("user inactive")
)
