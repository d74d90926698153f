package components

import (
	"log/slog"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/infra/messaging"
	"pcapi/internal/pkg/clock"
	"pcapi/internal/pkg/config"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase"
	"pcapi/internal/usecase/commands"
	"pcapi/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewRandomTokenGenerator,
		fx.As(new(booking.TokenGenerator)),
	),
	NewResolver,
	func(cfg config.Config) config.RabbitMQConfig { return cfg.RabbitMQ },
	func(cfg config.Config) config.FinanceConfig { return cfg.Finance },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewReimbursementCommands,
		commands.NewSubscriptionCommands,
		commands.NewOutboxCommands,
		fx.Annotate(
			NewPublisher,
			fx.As(new(commands.Publisher)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewWalletQueries,
		queries.NewReimbursementQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewResolver builds the rule resolver with the configured fallback rate.
func NewResolver(cfg config.FinanceConfig) (*reimbursement.Resolver, error) {
	rate, err := decimal.NewFromString(cfg.FallbackRate)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid FINANCE_FALLBACK_RATE %q", cfg.FallbackRate)
	}
	fallback, err := reimbursement.NewFallbackRule(rate)
	if err != nil {
		return nil, err
	}
	return reimbursement.NewResolver(fallback), nil
}

func NewPublisher(lc fx.Lifecycle, cfg config.RabbitMQConfig, logger *slog.Logger) *messaging.Publisher {
	p := messaging.NewPublisher(cfg, logger)
	lc.Append(fx.StopHook(p.Close))
	return p
}
