package main

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"companion/internal/watch/bolus"
)

// printEnactor stands in for the phone link and just reports the bolus.
type printEnactor struct {
	w io.Writer
}

func (p printEnactor) AddBolus(_ context.Context, amount decimal.Decimal) error {
	_, err := fmt.Fprintf(p.w, "bolus requested: %s U\n", amount.String())
	return err
}

func newBolusCmd(a *app) *cobra.Command {
	var (
		recommended string
		maxBolus    string
		increment   string
		steps       int
		enact       bool
	)
	cmd := &cobra.Command{
		Use:   "bolus",
		Short: "Preview the watch bolus entry screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []bolus.Option{
				bolus.WithLanguage(a.cfg.LanguageTag()),
				bolus.WithLogger(a.log),
				bolus.WithMetrics(a.metrics),
			}
			if recommended != "" {
				v, err := decimal.NewFromString(recommended)
				if err != nil {
					return fmt.Errorf("--recommended: %w", err)
				}
				opts = append(opts, bolus.WithRecommended(v))
			}
			if maxBolus != "" {
				v, err := decimal.NewFromString(maxBolus)
				if err != nil {
					return fmt.Errorf("--max: %w", err)
				}
				opts = append(opts, bolus.WithMaxBolus(&v))
			}
			if increment != "" {
				v, err := decimal.NewFromString(increment)
				if err != nil {
					return fmt.Errorf("--increment: %w", err)
				}
				opts = append(opts, bolus.WithIncrement(v))
			}

			out := cmd.OutOrStdout()
			s := bolus.New(printEnactor{w: out}, opts...)
			for ; steps > 0; steps-- {
				s.Increment()
			}
			for ; steps < 0; steps++ {
				s.Decrement()
			}
			fmt.Fprintf(out, "%s (step %d of %d)\n", s.Label(), s.Steps(), s.MaxSteps())

			if !enact {
				return nil
			}
			return s.Enact(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&recommended, "recommended", "", "recommended bolus in units")
	cmd.Flags().StringVar(&maxBolus, "max", "", "max bolus in units (default 5)")
	cmd.Flags().StringVar(&increment, "increment", "", "step size in units (default 0.5)")
	cmd.Flags().IntVar(&steps, "steps", 0, "press plus (positive) or minus (negative) this many times")
	cmd.Flags().BoolVar(&enact, "enact", false, "confirm the bolus")
	return cmd
}
