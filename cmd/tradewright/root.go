package main

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	account    string
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:     "tradewright",
		Short:   "Semi-automated trading on fidelity.com",
		Version: version,
		Long: `tradewright drives a browser through fidelity.com's order-entry forms.

It opens the login page and waits for you to log in manually. Orders are
never submitted without your confirmation at the prompt; an empty answer
or "y" confirms, "n" declines.

Account numbers, symbols, quantities, and prices are forwarded to the
website verbatim. The website's own validation is authoritative.`,
	}

	cmd.PersistentFlags().StringVarP(&flags.account, "account", "a", "", "Brokerage account number")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default ~/.tradewright/config.yaml)")

	cmd.AddCommand(
		newCashCmd(flags),
		newQuoteCmd(flags),
		newPositionsCmd(flags),
		newOrderCmd(flags),
		newFundCmd(flags),
	)

	cmd.SilenceUsage = true
	return cmd
}
