package components

import (
	"pcapi/internal/infra/readstore"
	sqlc "pcapi/internal/infra/sqlc/generated"
	"pcapi/internal/infra/uow"
	"pcapi/internal/pkg/config"
	"pcapi/internal/usecase/queries"
	"pcapi/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Write-side repositories are built per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		func(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
			return uow.NewPostgresUoW(pool, q, cfg.DB)
		},
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.UserReadStore { return readstore.NewUserReadStore(q, db) },
			fx.As(new(queries.UserReadStore)),
		),
		// Booking
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.BookingReadStore { return readstore.NewBookingReadStore(q, db) },
			fx.As(new(queries.BookingReadStore)),
		),
		// Wallet
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.WalletReadStore { return readstore.NewWalletReadStore(q, db) },
			fx.As(new(queries.WalletReadStore)),
		),
		// Reimbursement
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.ReimbursementReadStore {
				return readstore.NewReimbursementReadStore(q, db)
			},
			fx.As(new(queries.ReimbursementReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
