package main

import (
	"fmt"

	"pcapi/cmd/bootstrap"
	"pcapi/internal/infra/db"
	"pcapi/internal/pkg/config"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var opts db.MigrateOptions

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long:  `Apply the versioned SQL files with atlas.

Examples:
  pcctl migrate
  pcctl migrate --dir ./migrations --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			res, err := db.Migrate(cmd.Context(), cfg.DB, opts, bootstrap.NewCLILogger(cfg.Log))
			if err != nil {
				return err
			}
			if len(res.Applied) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (version %s)\n", res.Current)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s -> %s (%d files)\n", res.Current, res.Target, len(res.Applied))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "migrations", "migration directory")
	cmd.Flags().StringVar(&opts.Bin, "atlas", "atlas", "path to the atlas binary")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print pending files without applying them")

	return cmd
}
