package db

import (
	"context"
	"log/slog"

	"pcapi/internal/pkg/config"
	"pcapi/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

type MigrateOptions struct {
	// Dir holds the versioned SQL files and their atlas.sum.
	Dir    string
	Bin    string
	DryRun bool
}

type MigrateResult struct {
	Current string
	Target  string
	Applied []string
}

// Migrate applies pending migrations with the atlas binary.
func Migrate(ctx context.Context, cfg config.DBConfig, opts MigrateOptions, logger *slog.Logger) (*MigrateResult, error) {
	bin := opts.Bin
	if bin == "" {
		bin = "atlas"
	}
	client, err := atlasexec.NewClient(".", bin)
	if err != nil {
		return nil, errs.Wrap(err, "failed to init atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + opts.Dir,
		DryRun: opts.DryRun,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to apply migrations")
	}

	out := &MigrateResult{Current: res.Current, Target: res.Target}
	for _, f := range res.Applied {
		out.Applied = append(out.Applied, f.Name)
		logger.Info("migration applied", "file", f.Name, "version", f.Version)
	}
	return out, nil
}
