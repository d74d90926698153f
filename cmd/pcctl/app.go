package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"pcapi/cmd/bootstrap"
	"pcapi/cmd/bootstrap/components"
	"pcapi/internal/usecase/commands"
	"pcapi/internal/usecase/queries"

	"go.uber.org/fx"
)

const startTimeout = 15 * time.Second

type deps struct {
	fx.In

	Reimbursement        commands.ReimbursementCommands
	ReimbursementQueries queries.ReimbursementQueries
	Outbox               commands.OutboxCommands
}

// withApp starts the persistence and use case graph, runs fn and stops it.
func withApp(ctx context.Context, fn func(ctx context.Context, d deps) error) error {
	var d deps
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.DBModule,
		bootstrap.CLILoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		fx.Populate(&d),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(ctx, startTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx, d)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
