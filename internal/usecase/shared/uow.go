package shared

import (
	"context"
	"time"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/domain/subscription"
	"pcapi/internal/domain/user"
	sqlc "pcapi/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Stocks() StockRepository
	Deposits() DepositRepository
	ReimbursementRules() ReimbursementRuleRepository
	Users() UserRepository
	FraudChecks() FraudCheckRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the reads a command needs to build its aggregates.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	StockByID(ctx context.Context, id uuid.UUID) (*booking.Stock, error)
	SubscriptionLookup() subscription.Lookup
}

// ReimbursementFacts is what the reimbursement query reads about a booking.
type ReimbursementFacts struct {
	BookingID uuid.UUID
	Status    booking.Status
	Booking   reimbursement.Booking
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	SumActiveIndividualAmount(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (decimal.Decimal, error)
	ListReimbursableIDs(ctx context.Context, tx sqlc.DBTX, offererID uuid.UUID, cutoff time.Time, limit int32) ([]uuid.UUID, error)
}

type StockRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Stock, error)
	// Reserve reports false when the stock cannot take quantity more bookings.
	Reserve(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, quantity int) (bool, error)
	Release(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, quantity int) error
}

type DepositRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *booking.Deposit, source string) error
	// FindActiveByUserForUpdate returns nil when the user never got a deposit.
	FindActiveByUserForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*booking.Deposit, error)
}

type ReimbursementRuleRepository interface {
	LockOfferer(ctx context.Context, tx sqlc.DBTX, offererID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, r *reimbursement.CustomRule) error
	UpdateTimespan(ctx context.Context, tx sqlc.DBTX, r *reimbursement.CustomRule) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reimbursement.CustomRule, error)
	// ListInScope returns the rules of the offer or of the offerer; either may be nil.
	ListInScope(ctx context.Context, tx sqlc.DBTX, offerID, offererID *uuid.UUID) ([]*reimbursement.CustomRule, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateBeneficiary(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type FraudCheckRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, checkType, status string, reasonCodes []string, at time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	// MarkFailed returns true once the job has used up its attempts.
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32, nextRunAt time.Time) (bool, error)
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}
