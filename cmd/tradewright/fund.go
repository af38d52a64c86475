package main

import (
	"github.com/spf13/cobra"

	"github.com/entrhq/tradewright/pkg/config"
	"github.com/entrhq/tradewright/pkg/driver"
)

func newFundCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Place mutual fund orders",
		Long: `Buy, sell, or exchange mutual funds. Every order shows a confirmation
prompt before it is submitted.`,
	}

	cmd.AddCommand(
		newFundBuyCmd(flags),
		newFundSellCmd(flags),
		newFundExchangeCmd(flags),
	)
	return cmd
}

func newFundBuyCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy SYMBOL DOLLARS",
		Short: "Buy a mutual fund",
		Long: `Place a dollar-denominated buy order for a mutual fund.

Examples:
  tradewright fund buy FXAIX 1000 --account 123456789`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				result, err := session.BuyMutualFund(flags.account, args[0], args[1])
				if err != nil {
					return err
				}
				return printResult(result)
			})
		},
	}
	return cmd
}

func newFundSellCmd(flags *rootFlags) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "sell SYMBOL QUANTITY",
		Short: "Sell a mutual fund",
		Long: `Place a sell order for a mutual fund.

Examples:
  tradewright fund sell FXAIX 10 --account 123456789
  tradewright fund sell FXAIX 1000 --unit dollars --account 123456789`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			u, err := parseUnit(unit)
			if err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				result, err := session.SellMutualFund(flags.account, args[0], u, args[1])
				if err != nil {
					return err
				}
				return printResult(result)
			})
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "shares", "Quantity unit: shares or dollars")
	return cmd
}

func newFundExchangeCmd(flags *rootFlags) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "exchange SELL_SYMBOL QUANTITY BUY_SYMBOL",
		Short: "Exchange one mutual fund for another",
		Long: `Place an exchange order: sell one mutual fund and buy another with the
proceeds in a single order.

Examples:
  tradewright fund exchange FXAIX 10 FSKAX --account 123456789`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			u, err := parseUnit(unit)
			if err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				result, err := session.ExchangeMutualFund(flags.account, args[0], u, args[1], args[2])
				if err != nil {
					return err
				}
				return printResult(result)
			})
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "shares", "Quantity unit: shares or dollars")
	return cmd
}
