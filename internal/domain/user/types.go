package user

type Role string

const (
	RoleUser                Role = "user"
	RoleUnderageBeneficiary Role = "underage_beneficiary"
	RoleBeneficiary         Role = "beneficiary"
	RolePro                 Role = "pro"
	RoleAdmin               Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleUnderageBeneficiary, RoleBeneficiary, RolePro, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsBeneficiary reports whether the role owns a wallet.
func (r Role) IsBeneficiary() bool {
	return r == RoleBeneficiary || r == RoleUnderageBeneficiary
}

// CanManageBookings reports whether the role may act on bookings it does not own.
func (r Role) CanManageBookings() bool {
	return r == RolePro || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Eligibility is the grant a beneficiary subscribes for.
type Eligibility string

const (
	EligibilityAge18    Eligibility = "AGE18"
	EligibilityUnderage Eligibility = "UNDERAGE"
)

func NewEligibility(s string) (Eligibility, error) {
	switch e := Eligibility(s); e {
	case EligibilityAge18, EligibilityUnderage:
		return e, nil
	default:
		return "", ErrInvalidEligibility
	}
}

func (e Eligibility) BeneficiaryRole() Role {
	if e == EligibilityUnderage {
		return RoleUnderageBeneficiary
	}
	return RoleBeneficiary
}
