package subscription

import "fmt"

type RejectionReason string

const (
	ReasonJourneyOnHold    RejectionReason = "SubscriptionJourneyOnHold"
	ReasonNotEligible      RejectionReason = "BeneficiaryIsNotEligible"
	ReasonDuplicate        RejectionReason = "BeneficiaryIsADuplicate"
	ReasonSuspiciousFraud  RejectionReason = "SuspiciousFraudDetected"
	ReasonIDPieceDuplicate RejectionReason = "IdPieceNumberDuplicate"
)

// RejectionError is returned when a pre-subscription fails a check.
// errors.Is matches on the reason only.
type RejectionError struct {
	Reason  RejectionReason
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *RejectionError) Is(target error) bool {
	t, ok := target.(*RejectionError)
	return ok && t.Reason == e.Reason
}

func reject(reason RejectionReason, format string, args ...any) error {
	return &RejectionError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrSubscriptionJourneyOnHold = &RejectionError{Reason: ReasonJourneyOnHold}
	ErrBeneficiaryIsNotEligible  = &RejectionError{Reason: ReasonNotEligible}
	ErrBeneficiaryIsADuplicate   = &RejectionError{Reason: ReasonDuplicate}
	ErrSuspiciousFraudDetected   = &RejectionError{Reason: ReasonSuspiciousFraud}
	ErrIdPieceNumberDuplicate    = &RejectionError{Reason: ReasonIDPieceDuplicate}
)
