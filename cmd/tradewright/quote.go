package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrhq/tradewright/pkg/config"
	"github.com/entrhq/tradewright/pkg/driver"
)

func newQuoteCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote SYMBOL",
		Short: "Get a stock or ETF quote",
		Long: `Get the live quote for a stock or ETF.

Examples:
  tradewright quote SPY`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				quote, err := session.GetQuote(args[0])
				if err != nil {
					return err
				}
				printQuote(quote)
				return nil
			})
		},
	}
	return cmd
}

func printQuote(q *driver.Quote) {
	fmt.Printf("%s  %s\n", q.Symbol, q.Name)
	fmt.Printf("  Last:   %s (%s / %s%%)\n", q.Last, q.DollarChange, q.PercentChange)
	fmt.Printf("  Bid:    %s x %d\n", q.Bid, q.BidSize)
	fmt.Printf("  Ask:    %s x %d\n", q.Ask, q.AskSize)
	fmt.Printf("  Volume: %d\n", q.Volume)
}
