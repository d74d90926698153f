package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/subscription"
	"pcapi/internal/domain/user"
	"pcapi/internal/infra"
	"pcapi/internal/pkg/clock"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/pkg/password"
	"pcapi/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	topicBeneficiarySubscribed = "beneficiary_subscribed"

	fraudCheckStatusOK         = "OK"
	fraudCheckStatusKO         = "KO"
	fraudCheckStatusSuspicious = "SUSPICIOUS"

	idPieceNumberConstraint = "users_id_piece_number_key"
)

var rejectionReasonCodes = map[subscription.RejectionReason]string{
	subscription.ReasonNotEligible:      "NOT_ELIGIBLE",
	subscription.ReasonDuplicate:        "DUPLICATE_USER",
	subscription.ReasonSuspiciousFraud:  "INVALID_ID_PIECE_NUMBER",
	subscription.ReasonIDPieceDuplicate: "DUPLICATE_ID_PIECE_NUMBER",
}

type SubscribeBeneficiaryInput struct {
	PreSubscription          subscription.PreSubscription
	Eligibility              user.Eligibility
	IgnoreIDPieceNumberField bool
}

type SubscriptionResult struct {
	UserID         uuid.UUID
	Role           user.Role
	Upgraded       bool
	DepositType    booking.DepositType
	DepositAmount  decimal.Decimal
	ExpirationDate time.Time
}

type SubscriptionCommands interface {
	SubscribeBeneficiary(ctx context.Context, in SubscribeBeneficiaryInput) (*SubscriptionResult, error)
}

type subscriptionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSubscriptionCommands(uow shared.UnitOfWork, clk clock.Clock) SubscriptionCommands {
	return &subscriptionCommandsImpl{uow: uow, clock: clk}
}

// SubscribeBeneficiary turns a vouched identity into a beneficiary account
// with its deposit. A rejected identity of a known account leaves a KO fraud
// check on that account.
func (uc *subscriptionCommandsImpl) SubscribeBeneficiary(ctx context.Context, in SubscribeBeneficiaryInput) (*SubscriptionResult, error) {
	p := in.PreSubscription
	now := uc.clock.Now()
	reads := uc.uow.CommandReads()

	preexisting, err := reads.UserByEmail(ctx, p.NormalizedEmail())
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		preexisting = nil
	}

	validator := subscription.NewValidator(reads.SubscriptionLookup(), uc.clock.Now)
	err = validator.Validate(ctx, subscription.Request{
		PreSubscription:          p,
		PreexistingAccount:       preexisting,
		IgnoreIDPieceNumberField: in.IgnoreIDPieceNumberField,
		Eligibility:              in.Eligibility,
	})
	if err != nil {
		var rejection *subscription.RejectionError
		if errors.As(err, &rejection) && preexisting != nil {
			uc.recordRejection(ctx, preexisting.ID(), p.Source, rejection.Reason, now)
		}
		return nil, err
	}

	grant, err := subscription.GrantFor(in.Eligibility, p.DateOfBirth, now)
	if err != nil {
		return nil, err
	}
	identity := identityOf(p, in.IgnoreIDPieceNumberField)

	result := &SubscriptionResult{
		DepositType:    grant.Type,
		DepositAmount:  grant.Amount,
		ExpirationDate: grant.ExpirationDate,
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		beneficiary, upgraded, err := uc.upsertBeneficiary(ctx, tx, p, preexisting, in.Eligibility, identity, now)
		if err != nil {
			return err
		}

		deposit, err := booking.NewDeposit(beneficiary.ID(), grant.Type, grant.Amount, &grant.ExpirationDate, now)
		if err != nil {
			return err
		}
		if err := tx.Deposits().Create(ctx, tx.DB(), deposit, string(p.Source)); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.FraudChecks().Create(ctx, tx.DB(), beneficiary.ID(), string(p.Source), fraudCheckStatusOK, nil, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result.UserID = beneficiary.ID()
		result.Role = beneficiary.Role()
		result.Upgraded = upgraded
		return enqueueEvent(ctx, tx, topicBeneficiarySubscribed, subscribedPayload{
			UserID:        beneficiary.ID(),
			Email:         beneficiary.Email().Value(),
			Eligibility:   string(in.Eligibility),
			DepositAmount: grant.Amount.StringFixed(2),
			Source:        string(p.Source),
			SourceID:      p.SourceID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *subscriptionCommandsImpl) upsertBeneficiary(
	ctx context.Context,
	tx shared.Tx,
	p subscription.PreSubscription,
	preexisting *user.User,
	eligibility user.Eligibility,
	identity user.Identity,
	now time.Time,
) (*user.User, bool, error) {
	if preexisting != nil {
		u, err := tx.Users().FindByIDForUpdate(ctx, tx.DB(), preexisting.ID())
		if err != nil {
			return nil, false, markNotFound(err, errs.ErrUserNotFound)
		}
		if err := u.UpgradeToBeneficiary(eligibility, identity, now); err != nil {
			return nil, false, err
		}
		if err := tx.Users().UpdateBeneficiary(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, false, duplicateRejection(err)
			}
			return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return u, true, nil
	}

	email, err := user.NewEmail(p.NormalizedEmail())
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrDomainValidation)
	}
	hash, err := password.Unusable()
	if err != nil {
		return nil, false, err
	}

	u := user.NewUser(email, hash, user.RoleUser, now)
	if err := u.UpgradeToBeneficiary(eligibility, identity, now); err != nil {
		return nil, false, err
	}
	if err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, false, duplicateRejection(err)
		}
		return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u, false, nil
}

// duplicateRejection turns a unique violation on users into the rejection a
// concurrent subscription would have met in the checks.
func duplicateRejection(err error) *subscription.RejectionError {
	if infra.ConstraintName(err) == idPieceNumberConstraint {
		return &subscription.RejectionError{
			Reason:  subscription.ReasonIDPieceDuplicate,
			Message: "la pièce d'identité est déjà prise",
		}
	}
	return &subscription.RejectionError{
		Reason:  subscription.ReasonDuplicate,
		Message: "un compte existe déjà avec cette adresse e-mail",
	}
}

// recordRejection is best effort: the rejection is returned either way.
func (uc *subscriptionCommandsImpl) recordRejection(ctx context.Context, userID uuid.UUID, source subscription.Source, reason subscription.RejectionReason, now time.Time) {
	code, ok := rejectionReasonCodes[reason]
	if !ok {
		return
	}
	status := fraudCheckStatusKO
	if reason == subscription.ReasonSuspiciousFraud {
		status = fraudCheckStatusSuspicious
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.FraudChecks().Create(ctx, tx.DB(), userID, string(source), status, []string{code}, now)
	})
	if err != nil {
		slog.Warn("failed to record rejected pre-subscription", "user_id", userID, "reason", reason, "error", err.Error())
	}
}

func identityOf(p subscription.PreSubscription, ignoreIDPiece bool) user.Identity {
	dob := p.DateOfBirth
	identity := user.Identity{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DateOfBirth:    &dob,
		PostalCode:     p.PostalCode,
		DepartmentCode: p.DepartmentCode(),
	}
	if number := subscription.NormalizeIDPieceNumber(p.IDPieceNumber); !ignoreIDPiece && number != "" {
		identity.IDPieceNumber = &number
	}
	return identity
}

type subscribedPayload struct {
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	Eligibility   string    `json:"eligibility"`
	DepositAmount string    `json:"deposit_amount"`
	Source        string    `json:"source"`
	SourceID      string    `json:"source_id"`
}
