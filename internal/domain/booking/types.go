package booking

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusUsed       Status = "USED"
	StatusCancelled  Status = "CANCELLED"
	StatusReimbursed Status = "REIMBURSED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusUsed, StatusCancelled, StatusReimbursed:
		return true
	default:
		return false
	}
}

// IsActive: the booking still holds stock quantity and wallet credit.
func (s Status) IsActive() bool {
	return s.IsValid() && s != StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type CancellationReason string

const (
	CancellationByBeneficiary CancellationReason = "BENEFICIARY"
	CancellationByOfferer     CancellationReason = "OFFERER"
	CancellationExpired       CancellationReason = "EXPIRED"
	CancellationFraud         CancellationReason = "FRAUD"
)

func NewCancellationReason(s string) (CancellationReason, error) {
	switch r := CancellationReason(s); r {
	case CancellationByBeneficiary, CancellationByOfferer, CancellationExpired, CancellationFraud:
		return r, nil
	default:
		return "", ErrInvalidCancellationReason
	}
}

type DepositType string

const (
	DepositAge18    DepositType = "GRANT_18"
	DepositUnderage DepositType = "GRANT_15_17"
)
