package subscription

import (
	"context"
	"time"

	"pcapi/internal/domain/user"

	"github.com/google/uuid"
)

const (
	FeaturePauseSubscription             = "PAUSE_JEUNE_SUBSCRIPTION"
	FeatureDuplicateRuleWithoutBirthdate = "ENABLE_DUPLICATE_USER_RULE_WITHOUT_BIRTHDATE"

	similarUsersThreshold = 3
	similarUsersWindow    = 90 * 24 * time.Hour
)

// Lookup gives the validation chain read access to existing accounts.
type Lookup interface {
	IsFeatureActive(ctx context.Context, name string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// FindDuplicateBeneficiary matches names case and accent insensitively.
	FindDuplicateBeneficiary(ctx context.Context, firstName, lastName string, dateOfBirth time.Time, excludedUserID *uuid.UUID) (*uuid.UUID, error)
	CountSimilarRecentUsers(ctx context.Context, firstName, lastName string, since time.Time) (int, error)
	// IsIDPieceNumberTaken ignores the account being upgraded.
	IsIDPieceNumberTaken(ctx context.Context, idPieceNumber string, excludedUserID *uuid.UUID) (bool, error)
	HasInvalidIDPieceFraudCheck(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Request groups what the chain looks at.
type Request struct {
	PreSubscription          PreSubscription
	PreexistingAccount       *user.User
	IgnoreIDPieceNumberField bool
	Eligibility              user.Eligibility
}

func (r Request) preexistingID() *uuid.UUID {
	if r.PreexistingAccount == nil {
		return nil
	}
	id := r.PreexistingAccount.ID()
	return &id
}

type check func(ctx context.Context, v *Validator, r Request) error

// Validator runs the pre-subscription checks in order and stops at the first
// rejection. Lookup failures are returned as is.
type Validator struct {
	lookup Lookup
	now    func() time.Time
	checks []check
}

func NewValidator(lookup Lookup, now func() time.Time) *Validator {
	return &Validator{
		lookup: lookup,
		now:    now,
		checks: []check{
			checkJourneyNotOnHold,
			checkDepartmentIsEligible,
			checkEmailIsNotTaken,
			checkNotADuplicate,
			checkIDPieceNumberFormat,
			checkIDPieceNumberIsUnique,
		},
	}
}

func (v *Validator) Validate(ctx context.Context, r Request) error {
	for _, c := range v.checks {
		if err := c(ctx, v, r); err != nil {
			return err
		}
	}
	return nil
}

func checkJourneyNotOnHold(ctx context.Context, v *Validator, _ Request) error {
	onHold, err := v.lookup.IsFeatureActive(ctx, FeaturePauseSubscription)
	if err != nil {
		return err
	}
	if onHold {
		return reject(ReasonJourneyOnHold, "la souscription est temporairement suspendue")
	}
	return nil
}

func checkDepartmentIsEligible(_ context.Context, _ *Validator, r Request) error {
	dep := r.PreSubscription.DepartmentCode()
	if !IsEligibleDepartment(dep) {
		return reject(ReasonNotEligible, "département %s non éligible", dep)
	}
	return nil
}

func checkEmailIsNotTaken(ctx context.Context, v *Validator, r Request) error {
	if r.PreexistingAccount != nil {
		if r.PreexistingAccount.CanUpgradeBeneficiaryRole(r.Eligibility) {
			return nil
		}
		return reject(ReasonDuplicate, "le compte %s ne peut pas devenir bénéficiaire %s", r.PreexistingAccount.ID(), r.Eligibility)
	}
	email := r.PreSubscription.NormalizedEmail()
	taken, err := v.lookup.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return reject(ReasonDuplicate, "un compte existe déjà avec l'adresse e-mail %s", email)
	}
	return nil
}

func checkNotADuplicate(ctx context.Context, v *Validator, r Request) error {
	p := r.PreSubscription
	duplicateID, err := v.lookup.FindDuplicateBeneficiary(ctx, p.FirstName, p.LastName, p.DateOfBirth, r.preexistingID())
	if err != nil {
		return err
	}
	if duplicateID != nil {
		return reject(ReasonDuplicate, "l'utilisateur %s est un doublon", duplicateID)
	}

	withoutBirthdate, err := v.lookup.IsFeatureActive(ctx, FeatureDuplicateRuleWithoutBirthdate)
	if err != nil {
		return err
	}
	if !withoutBirthdate {
		return nil
	}
	count, err := v.lookup.CountSimilarRecentUsers(ctx, p.FirstName, p.LastName, v.now().Add(-similarUsersWindow))
	if err != nil {
		return err
	}
	if count >= similarUsersThreshold {
		return reject(ReasonDuplicate, "%d comptes récents portent le même nom", count)
	}
	return nil
}

func checkIDPieceNumberFormat(_ context.Context, _ *Validator, r Request) error {
	if r.IgnoreIDPieceNumberField {
		return nil
	}
	if !IsValidIDPieceNumber(r.PreSubscription.IDPieceNumber) {
		return reject(ReasonSuspiciousFraud, "numéro de pièce d'identité invalide")
	}
	return nil
}

func checkIDPieceNumberIsUnique(ctx context.Context, v *Validator, r Request) error {
	if r.IgnoreIDPieceNumberField {
		return nil
	}
	if r.PreexistingAccount != nil {
		flagged, err := v.lookup.HasInvalidIDPieceFraudCheck(ctx, r.PreexistingAccount.ID())
		if err != nil {
			return err
		}
		if flagged {
			return nil
		}
	}
	number := NormalizeIDPieceNumber(r.PreSubscription.IDPieceNumber)
	taken, err := v.lookup.IsIDPieceNumberTaken(ctx, number, r.preexistingID())
	if err != nil {
		return err
	}
	if taken {
		return reject(ReasonIDPieceDuplicate, "la pièce d'identité n°%s est déjà prise", number)
	}
	return nil
}
