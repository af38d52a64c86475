package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrhq/tradewright/pkg/config"
	"github.com/entrhq/tradewright/pkg/driver"
)

func newCashCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cash",
		Short: "Show cash available to trade",
		Long: `Show the cash available to trade in an account.

Examples:
  tradewright cash --account 123456789`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				cash, err := session.CashAvailableToTrade(flags.account)
				if err != nil {
					return err
				}
				fmt.Println(cash)
				return nil
			})
		},
	}
	return cmd
}
