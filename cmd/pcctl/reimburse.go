package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func reimburseCmd() *cobra.Command {
	var offerer, cutoff string

	cmd := &cobra.Command{
		Use:   "reimburse",
		Short: "Reimburse the used bookings of an offerer",
		Long:  `Mark every booking of the offerer used before the cutoff as reimbursed,
in chunks. Bookings that fail are reported and left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			offererID, err := uuid.Parse(offerer)
			if err != nil {
				return err
			}
			at := time.Now()
			if cutoff != "" {
				if at, err = time.Parse(time.RFC3339, cutoff); err != nil {
					return err
				}
			}
			return withApp(cmd.Context(), func(ctx context.Context, d deps) error {
				summary, err := d.Reimbursement.ReimburseBookings(ctx, offererID, at)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reimbursed %d bookings for %s\n", summary.Reimbursed, summary.Total.StringFixed(2))
				for _, id := range summary.Failed {
					fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s\n", id)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&offerer, "offerer", "", "offerer id")
	cmd.Flags().StringVar(&cutoff, "cutoff", "", "only bookings used before this instant (RFC 3339, default now)")
	_ = cmd.MarkFlagRequired("offerer")
	return cmd
}
