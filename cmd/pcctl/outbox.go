package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func outboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "Operate the event outbox",
	}
	cmd.AddCommand(outboxRelayCmd())
	return cmd
}

func outboxRelayCmd() *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Publish pending events to the broker",
		Long:  `Claim a batch of pending events and publish them. With --every the relay
keeps running until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, d deps) error {
				for {
					res, err := d.Outbox.RelayPendingJobs(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "claimed=%d sent=%d retried=%d failed=%d\n",
						res.Claimed, res.Sent, res.Retried, res.Failed)
					if every <= 0 {
						return nil
					}
					select {
					case <-ctx.Done():
						return nil
					case <-time.After(every):
					}
				}
			})
		},
	}

	cmd.Flags().DurationVar(&every, "every", 0, "relay interval, 0 runs once")
	return cmd
}
