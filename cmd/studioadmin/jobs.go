package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-templates",
		Short: "Insert the built-in message templates that are missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.templates.SeedDefaults(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d template(s)\n", n)
			return nil
		},
	}
}

func newAutomationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "automation",
		Short: "Coupon expiry and deposit matching jobs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "run-once",
		Short: "Run one automation tick, ignoring the automation switch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.runner.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "expired coupons: %d\n", res.Expired)
			fmt.Fprintf(out, "deposit groups: %d, confirmed: %d, skipped: %d\n",
				res.Match.Groups, res.Match.Confirmed, res.Match.Skipped)
			return nil
		},
	})
	return cmd
}
