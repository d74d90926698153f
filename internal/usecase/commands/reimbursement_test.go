//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/infra"
	"pcapi/internal/pkg/clock"
	"pcapi/internal/pkg/config"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/commands"
	"pcapi/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	financeNow = time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	usedOn     = time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)
)

type ReimbursementCommandsSuite struct {
	suite.Suite
	f         *uowFixture
	cmds      commands.ReimbursementCommands
	ctx       context.Context
	offererID uuid.UUID
}

func TestReimbursementCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReimbursementCommandsSuite))
}

func (s *ReimbursementCommandsSuite) SetupTest() {
	s.f = newUOWFixture(s.T())
	fallback, err := reimbursement.NewFallbackRule(decimal.NewFromInt(1))
	s.Require().NoError(err)
	s.cmds = commands.NewReimbursementCommands(
		s.f.uow,
		reimbursement.NewResolver(fallback),
		clock.NewMockClock(financeNow),
		config.FinanceConfig{ReimbursementChunkSize: 2},
	)
	s.ctx = context.Background()
	s.offererID = uuid.New()
}

func (s *ReimbursementCommandsSuite) usedBooking(id uuid.UUID, offerID uuid.UUID) *booking.Booking {
	return builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.ID = id }).
		WithOffer(offerID, s.offererID).
		UsedAt(usedOn).
		BuildDomain()
}

func ptr[T any](v T) *T { return &v }

func (s *ReimbursementCommandsSuite) TestCreateOffererRuleLocksTheOfferer() {
	in := commands.CreateCustomRuleInput{
		OffererID:     &s.offererID,
		Subcategories: []string{"LIVRE_PAPIER"},
		Rate:          ptr(decimal.RequireFromString("0.95")),
		ValidFrom:     ptr(financeNow),
	}

	gomock.InOrder(
		s.f.rules.EXPECT().LockOfferer(gomock.Any(), gomock.Any(), s.offererID).Return(nil),
		s.f.rules.EXPECT().ListInScope(gomock.Any(), gomock.Any(), gomock.Nil(), &s.offererID).Return(nil, nil),
		s.f.rules.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	view, err := s.cmds.CreateCustomRule(s.ctx, in)

	s.Require().NoError(err)
	s.Equal([]string{"LIVRE_PAPIER"}, view.Subcategories)
	s.Equal("Taux de remboursement : 95 %", view.Description)
	s.Nil(view.ValidUntil)
}

func (s *ReimbursementCommandsSuite) TestCreateRejectsOverlappingRule() {
	existing := builder.NewRuleBuilder().ForOfferer(s.offererID).BuildDomain()
	in := commands.CreateCustomRuleInput{
		OffererID: &s.offererID,
		Amount:    ptr(decimal.RequireFromString("5")),
		ValidFrom: ptr(financeNow),
	}

	s.f.rules.EXPECT().LockOfferer(gomock.Any(), gomock.Any(), s.offererID).Return(nil)
	s.f.rules.EXPECT().ListInScope(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*reimbursement.CustomRule{existing}, nil)

	_, err := s.cmds.CreateCustomRule(s.ctx, in)

	s.ErrorIs(err, reimbursement.ErrRuleOverlap)
}

func (s *ReimbursementCommandsSuite) TestCreateMapsStorageErrors() {
	offerID := uuid.New()
	cases := []struct {
		name     string
		kind     infra.RepositoryErrorKind
		expected error
	}{
		{"exclusion constraint", infra.KindConflict, reimbursement.ErrRuleOverlap},
		{"unknown offer", infra.KindForeignKeyViolated, errs.ErrOfferNotFound},
		{"other failure", infra.KindDBFailure, errs.ErrDatabaseOperationFailed},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.f.rules.EXPECT().ListInScope(gomock.Any(), gomock.Any(), &offerID, gomock.Nil()).Return(nil, nil)
			s.f.rules.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(infra.WrapRepoErr("insert rule", errors.New("pg error"), tc.kind))

			_, err := s.cmds.CreateCustomRule(s.ctx, commands.CreateCustomRuleInput{
				OfferID:   &offerID,
				Amount:    ptr(decimal.RequireFromString("5")),
				ValidFrom: ptr(financeNow),
			})

			s.True(errs.Is(err, tc.expected), "got %v", err)
		})
	}
}

func (s *ReimbursementCommandsSuite) TestCreateValidatesBeforeWriting() {
	_, err := s.cmds.CreateCustomRule(s.ctx, commands.CreateCustomRuleInput{
		OffererID: &s.offererID,
		Rate:      ptr(decimal.RequireFromString("1.5")),
		ValidFrom: ptr(financeNow),
	})
	s.ErrorIs(err, reimbursement.ErrRateOutOfRange)

	_, err = s.cmds.CreateCustomRule(s.ctx, commands.CreateCustomRuleInput{
		OffererID: &s.offererID,
		Rate:      ptr(decimal.RequireFromString("0.5")),
	})
	s.ErrorIs(err, reimbursement.ErrMissingStart)
}

func (s *ReimbursementCommandsSuite) TestCloseRule() {
	rule := builder.NewRuleBuilder().ForOfferer(s.offererID).BuildDomain()
	until := financeNow.AddDate(0, 1, 0)

	gomock.InOrder(
		s.f.rules.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rule.ID()).Return(rule, nil),
		s.f.rules.EXPECT().LockOfferer(gomock.Any(), gomock.Any(), s.offererID).Return(nil),
		s.f.rules.EXPECT().ListInScope(gomock.Any(), gomock.Any(), gomock.Nil(), &s.offererID).
			Return([]*reimbursement.CustomRule{rule}, nil),
		s.f.rules.EXPECT().UpdateTimespan(gomock.Any(), gomock.Any(), rule).Return(nil),
	)

	view, err := s.cmds.CloseCustomRule(s.ctx, rule.ID(), until)

	s.Require().NoError(err)
	s.Require().NotNil(view.ValidUntil)
	s.Equal(until, *view.ValidUntil)
}

func (s *ReimbursementCommandsSuite) TestCloseRuleCannotRunIntoTheNextRule() {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	current := builder.NewRuleBuilder().ForOfferer(s.offererID).
		Between(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), &march).BuildDomain()
	next := builder.NewRuleBuilder().ForOfferer(s.offererID).Between(march, nil).BuildDomain()
	cmds := commands.NewReimbursementCommands(
		s.f.uow,
		reimbursement.NewResolver(reimbursement.NewFullReimbursementRule()),
		clock.NewMockClock(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		config.FinanceConfig{},
	)

	s.f.rules.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), current.ID()).Return(current, nil)
	s.f.rules.EXPECT().LockOfferer(gomock.Any(), gomock.Any(), s.offererID).Return(nil)
	s.f.rules.EXPECT().ListInScope(gomock.Any(), gomock.Any(), gomock.Nil(), &s.offererID).
		Return([]*reimbursement.CustomRule{current, next}, nil)

	_, err := cmds.CloseCustomRule(s.ctx, current.ID(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	s.ErrorIs(err, reimbursement.ErrRuleOverlap)
}

func (s *ReimbursementCommandsSuite) TestCloseRuleMapsTheExclusionConstraint() {
	offerID := uuid.New()
	rule := builder.NewRuleBuilder().ForOffer(offerID).BuildDomain()

	s.f.rules.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rule.ID()).Return(rule, nil)
	s.f.rules.EXPECT().ListInScope(gomock.Any(), gomock.Any(), &offerID, gomock.Nil()).Return(nil, nil)
	s.f.rules.EXPECT().UpdateTimespan(gomock.Any(), gomock.Any(), rule).
		Return(infra.WrapRepoErr("update rule timespan", errors.New("pg error"), infra.KindConflict))

	_, err := s.cmds.CloseCustomRule(s.ctx, rule.ID(), financeNow.AddDate(0, 2, 0))

	s.True(errs.Is(err, reimbursement.ErrRuleOverlap), "got %v", err)
}

func (s *ReimbursementCommandsSuite) TestCloseRuleInThePast() {
	rule := builder.NewRuleBuilder().BuildDomain()

	s.f.rules.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rule.ID()).Return(rule, nil)

	_, err := s.cmds.CloseCustomRule(s.ctx, rule.ID(), financeNow.Add(-time.Hour))

	s.ErrorIs(err, reimbursement.ErrCloseInPast)
}

func (s *ReimbursementCommandsSuite) TestReimbursePrefersTheOfferRule() {
	bookingID, offerID := uuid.New(), uuid.New()
	offerRule := builder.NewRuleBuilder().ForOffer(offerID).WithAmount("4").BuildDomain()
	offererRule := builder.NewRuleBuilder().ForOfferer(s.offererID).WithRate("0.5").BuildDomain()

	gomock.InOrder(
		s.f.bookings.EXPECT().ListReimbursableIDs(gomock.Any(), gomock.Any(), s.offererID, financeNow, int32(2)).
			Return([]uuid.UUID{bookingID}, nil),
		s.f.bookings.EXPECT().ListReimbursableIDs(gomock.Any(), gomock.Any(), s.offererID, financeNow, int32(2)).
			Return(nil, nil),
	)
	s.f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), bookingID).
		Return(s.usedBooking(bookingID, offerID), nil)
	s.f.rules.EXPECT().ListInScope(gomock.Any(), gomock.Any(), &offerID, &s.offererID).
		Return([]*reimbursement.CustomRule{offererRule, offerRule}, nil)
	s.f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
			s.Equal(booking.StatusReimbursed, b.Status())
			s.Equal("4", b.ReimbursedAmount().String())
			s.Equal(offerRule.ID(), *b.ReimbursementRuleID())
			return nil
		})

	summary, err := s.cmds.ReimburseBookings(s.ctx, s.offererID, financeNow)

	s.Require().NoError(err)
	s.Equal(1, summary.Reimbursed)
	s.Empty(summary.Failed)
	s.Equal("4", summary.Total.String())
}

func (s *ReimbursementCommandsSuite) TestReimburseRetriesAFailedChunkOneByOne() {
	offerID := uuid.New()
	ok1, broken, ok2 := uuid.New(), uuid.New(), uuid.New()

	gomock.InOrder(
		s.f.bookings.EXPECT().ListReimbursableIDs(gomock.Any(), gomock.Any(), s.offererID, financeNow, int32(2)).
			Return([]uuid.UUID{ok1, broken}, nil),
		s.f.bookings.EXPECT().ListReimbursableIDs(gomock.Any(), gomock.Any(), s.offererID, financeNow, int32(3)).
			Return([]uuid.UUID{broken, ok2}, nil),
		s.f.bookings.EXPECT().ListReimbursableIDs(gomock.Any(), gomock.Any(), s.offererID, financeNow, int32(3)).
			Return([]uuid.UUID{broken}, nil),
	)

	fresh := func(id uuid.UUID) func(context.Context, any, uuid.UUID) (*booking.Booking, error) {
		return func(context.Context, any, uuid.UUID) (*booking.Booking, error) {
			return s.usedBooking(id, offerID), nil
		}
	}
	s.f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), ok1).DoAndReturn(fresh(ok1)).Times(2)
	s.f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), ok2).DoAndReturn(fresh(ok2)).Times(1)
	s.f.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), broken).
		Return(nil, infra.WrapRepoErr("lock booking", errors.New("deadlock detected"))).Times(2)
	s.f.rules.EXPECT().ListInScope(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
	s.f.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	summary, err := s.cmds.ReimburseBookings(s.ctx, s.offererID, financeNow)

	s.Require().NoError(err)
	s.Equal(2, summary.Reimbursed)
	s.Equal([]uuid.UUID{broken}, summary.Failed)
	s.Equal("20", summary.Total.String())
}

func (s *ReimbursementCommandsSuite) TestReimburseStopsWhenListingFails() {
	s.f.bookings.EXPECT().ListReimbursableIDs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	summary, err := s.cmds.ReimburseBookings(s.ctx, s.offererID, financeNow)

	s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	s.Equal(0, summary.Reimbursed)
}
