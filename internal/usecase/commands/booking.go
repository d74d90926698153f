package commands

import (
	"context"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/user"
	"pcapi/internal/infra"
	"pcapi/internal/pkg/clock"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	topicBookingCreated     = "booking_created"
	topicBookingCancelled   = "booking_cancelled"
	topicBookingUncancelled = "booking_uncancelled"
	topicBookingUsed        = "booking_used"
	topicBookingUnused      = "booking_unused"
	topicBookingConfirmed   = "booking_confirmed"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type BookingCommands interface {
	BookOffer(ctx context.Context, userID, stockID uuid.UUID, quantity int) (uuid.UUID, error)
	CancelBooking(ctx context.Context, actor Actor, bookingID uuid.UUID, reason booking.CancellationReason) error
	UncancelBooking(ctx context.Context, bookingID uuid.UUID) error
	MarkBookingAsUsed(ctx context.Context, bookingID uuid.UUID, token string) error
	MarkBookingAsUnused(ctx context.Context, bookingID uuid.UUID) error
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, tokens booking.TokenGenerator) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		services: &booking.Services{Clock: clk, TokenGenerator: tokens},
		clock:    clk,
	}
}

func (uc *bookingCommandsImpl) BookOffer(ctx context.Context, userID, stockID uuid.UUID, quantity int) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		beneficiary, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return markNotFound(err, errs.ErrUserNotFound)
		}
		stock, err := tx.Reads().StockByID(ctx, stockID)
		if err != nil {
			return markNotFound(err, errs.ErrStockNotFound)
		}

		b, err := booking.NewBooking(uc.services, booking.Beneficiary{
			ID:       beneficiary.ID(),
			IsActive: beneficiary.IsActive(),
		}, stock, quantity)
		if err != nil {
			return err
		}

		if err := uc.reserve(ctx, tx, b); err != nil {
			return err
		}
		if err := uc.checkWallet(ctx, tx, b, booking.Change{IsNew: true}); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		createdID = b.ID()
		return enqueueEvent(ctx, tx, topicBookingCreated, bookingEvent(b), uc.clock.Now())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, actor Actor, bookingID uuid.UUID, reason booking.CancellationReason) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !actor.Role.CanManageBookings() && b.UserID() != actor.ID {
			return errs.ErrForbidden
		}

		if err := b.Cancel(reason, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Stocks().Release(ctx, tx.DB(), b.StockID(), b.Quantity()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return uc.save(ctx, tx, b, topicBookingCancelled)
	})
}

// UncancelBooking runs every booking check again since the quantity and the
// credit may have been taken in the meantime.
func (uc *bookingCommandsImpl) UncancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		change, err := b.Uncancel()
		if err != nil {
			return err
		}
		stock, err := tx.Reads().StockByID(ctx, b.StockID())
		if err != nil {
			return markNotFound(err, errs.ErrStockNotFound)
		}
		if stock.IsSoftDeleted() {
			return booking.ErrStockDeleted
		}
		if err := uc.reserve(ctx, tx, b); err != nil {
			return err
		}
		if err := uc.checkWallet(ctx, tx, b, change); err != nil {
			return err
		}
		return uc.save(ctx, tx, b, topicBookingUncancelled)
	})
}

func (uc *bookingCommandsImpl) MarkBookingAsUsed(ctx context.Context, bookingID uuid.UUID, token string) error {
	t, err := booking.NewToken(token)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.MarkAsUsed(t, uc.clock.Now()); err != nil {
			return err
		}
		return uc.save(ctx, tx, b, topicBookingUsed)
	})
}

func (uc *bookingCommandsImpl) MarkBookingAsUnused(ctx context.Context, bookingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.MarkAsUnused(); err != nil {
			return err
		}
		return uc.save(ctx, tx, b, topicBookingUnused)
	})
}

func (uc *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.load(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if err := b.Confirm(); err != nil {
			return err
		}
		return uc.save(ctx, tx, b, topicBookingConfirmed)
	})
}

func (uc *bookingCommandsImpl) load(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
	if err != nil {
		return nil, markNotFound(err, errs.ErrBookingNotFound)
	}
	return b, nil
}

func (uc *bookingCommandsImpl) save(ctx context.Context, tx shared.Tx, b *booking.Booking, topic string) error {
	if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return enqueueEvent(ctx, tx, topic, bookingEvent(b), uc.clock.Now())
}

// reserve takes the booking quantity on the stock with a conditional update,
// so concurrent bookings cannot push the stock past its quantity.
func (uc *bookingCommandsImpl) reserve(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	ok, err := tx.Stocks().Reserve(ctx, tx.DB(), b.StockID(), b.Quantity())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !ok {
		return booking.ErrTooManyBookings
	}
	return nil
}

// checkWallet locks the deposit row so two bookings of the same user are
// checked one after the other.
func (uc *bookingCommandsImpl) checkWallet(ctx context.Context, tx shared.Tx, b *booking.Booking, change booking.Change) error {
	if !b.IsIndividual() {
		return nil
	}

	deposit, err := tx.Deposits().FindActiveByUserForUpdate(ctx, tx.DB(), b.UserID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	spent, err := tx.Bookings().SumActiveIndividualAmount(ctx, tx.DB(), b.UserID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	wallet := booking.NewWallet(deposit, spent, uc.clock.Now()).WithBooking(b.TotalAmount())
	return booking.CheckWalletBalance(b, change, wallet)
}

type bookingPayload struct {
	BookingID uuid.UUID `json:"booking_id"`
	UserID    uuid.UUID `json:"user_id"`
	StockID   uuid.UUID `json:"stock_id"`
	OffererID uuid.UUID `json:"offerer_id"`
	Status    string    `json:"status"`
	Quantity  int       `json:"quantity"`
	Amount    string    `json:"amount"`
	Created   time.Time `json:"date_created"`
}

func bookingEvent(b *booking.Booking) bookingPayload {
	return bookingPayload{
		BookingID: b.ID(),
		UserID:    b.UserID(),
		StockID:   b.StockID(),
		OffererID: b.OffererID(),
		Status:    b.Status().String(),
		Quantity:  b.Quantity(),
		Amount:    b.Amount().StringFixed(2),
		Created:   b.DateCreated(),
	}
}

func markNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return err
}
