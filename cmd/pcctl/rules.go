package main

import (
	"context"
	"time"

	"pcapi/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage custom reimbursement rules",
	}
	cmd.AddCommand(rulesListCmd(), rulesCreateCmd(), rulesCloseCmd())
	return cmd
}

func rulesListCmd() *cobra.Command {
	var offerer string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the rules of an offerer and its offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			offererID, err := uuid.Parse(offerer)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(ctx context.Context, d deps) error {
				views, err := d.ReimbursementQueries.ListCustomRules(ctx, offererID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), views)
			})
		},
	}

	cmd.Flags().StringVar(&offerer, "offerer", "", "offerer id")
	_ = cmd.MarkFlagRequired("offerer")
	return cmd
}

func rulesCreateCmd() *cobra.Command {
	var (
		offer, offerer, amount, rate, from, until string
		subcategories                             []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a rule for one offer or for an offerer",
		Long:  `Create a custom reimbursement rule. Exactly one of --offer and --offerer,
and exactly one of --amount and --rate must be given.

Examples:
  pcctl rules create --offer 6f1c... --amount 5.50 --from 2026-01-01T00:00:00Z
  pcctl rules create --offerer 0b2e... --subcategory LIVRE_PAPIER --rate 0.95 --from 2026-01-01T00:00:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := commands.CreateCustomRuleInput{Subcategories: subcategories}
			var err error
			if in.OfferID, err = optionalUUID(offer); err != nil {
				return err
			}
			if in.OffererID, err = optionalUUID(offerer); err != nil {
				return err
			}
			if in.Amount, err = optionalDecimal(amount); err != nil {
				return err
			}
			if in.Rate, err = optionalDecimal(rate); err != nil {
				return err
			}
			if in.ValidFrom, err = optionalTime(from); err != nil {
				return err
			}
			if in.ValidUntil, err = optionalTime(until); err != nil {
				return err
			}

			return withApp(cmd.Context(), func(ctx context.Context, d deps) error {
				view, err := d.Reimbursement.CreateCustomRule(ctx, in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), view)
			})
		},
	}

	cmd.Flags().StringVar(&offer, "offer", "", "offer id")
	cmd.Flags().StringVar(&offerer, "offerer", "", "offerer id")
	cmd.Flags().StringSliceVar(&subcategories, "subcategory", nil, "restrict an offerer rule to these subcategories")
	cmd.Flags().StringVar(&amount, "amount", "", "fixed amount reimbursed per unit")
	cmd.Flags().StringVar(&rate, "rate", "", "share of the booking amount, between 0 and 1")
	cmd.Flags().StringVar(&from, "from", "", "start of validity (RFC 3339)")
	cmd.Flags().StringVar(&until, "until", "", "end of validity (RFC 3339)")
	_ = cmd.MarkFlagRequired("from")
	cmd.MarkFlagsMutuallyExclusive("offer", "offerer")
	cmd.MarkFlagsMutuallyExclusive("amount", "rate")
	return cmd
}

func rulesCloseCmd() *cobra.Command {
	var until string

	cmd := &cobra.Command{
		Use:   "close [rule-id]",
		Short: "Set the end of validity of a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			end, err := time.Parse(time.RFC3339, until)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(ctx context.Context, d deps) error {
				view, err := d.Reimbursement.CloseCustomRule(ctx, ruleID, end)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), view)
			})
		},
	}

	cmd.Flags().StringVar(&until, "until", "", "end of validity (RFC 3339)")
	_ = cmd.MarkFlagRequired("until")
	return cmd
}

func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
