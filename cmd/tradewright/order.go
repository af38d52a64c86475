package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/entrhq/tradewright/pkg/config"
	"github.com/entrhq/tradewright/pkg/driver"
)

// parseAction maps a CLI action argument onto the driver's closed enum.
func parseAction(s string) (driver.Action, error) {
	switch strings.ToLower(s) {
	case "buy":
		return driver.Buy, nil
	case "sell":
		return driver.Sell, nil
	default:
		return 0, fmt.Errorf("action must be buy or sell, got %q", s)
	}
}

// parseUnit maps a CLI unit flag onto the driver's closed enum.
func parseUnit(s string) (driver.Unit, error) {
	switch strings.ToLower(s) {
	case "shares":
		return driver.Shares, nil
	case "dollars":
		return driver.Dollars, nil
	default:
		return 0, fmt.Errorf("unit must be shares or dollars, got %q", s)
	}
}

func newOrderCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place stock and ETF orders",
		Long: `Place stock and ETF orders. Every order shows a confirmation prompt
before it is submitted; an empty answer or "y" confirms, "n" declines.`,
	}

	cmd.AddCommand(
		newMarketOrderCmd(flags),
		newLimitOrderCmd(flags),
		newMarketableOrderCmd(flags),
		newGTCOrderCmd(flags),
	)
	return cmd
}

func newMarketOrderCmd(flags *rootFlags) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "market buy|sell SYMBOL QUANTITY",
		Short: "Place a market order",
		Long: `Place a market order for a stock or ETF.

Examples:
  tradewright order market buy SPY 10 --account 123456789
  tradewright order market sell SPY 500 --unit dollars --account 123456789`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			action, err := parseAction(args[0])
			if err != nil {
				return err
			}
			u, err := parseUnit(unit)
			if err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				result, err := session.MarketOrder(flags.account, args[1], action, u, args[2])
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

func newLimitOrderCmd(flags *rootFlags) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "limit buy|sell SYMBOL QUANTITY PRICE",
		Short: "Place a day limit order",
		Long: `Place a day limit order for a stock or ETF.

Examples:
  tradewright order limit buy SPY 10 450.00 --account 123456789`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			action, err := parseAction(args[0])
			if err != nil {
				return err
			}
			u, err := parseUnit(unit)
			if err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				result, err := session.LimitOrder(flags.account, args[1], action, u, args[2], args[3])
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

func newMarketableOrderCmd(flags *rootFlags) *cobra.Command {
	var unit string
	var offset string

	cmd := &cobra.Command{
		Use:   "marketable buy|sell SYMBOL QUANTITY",
		Short: "Place a marketable limit order",
		Long: `Place a limit order priced to execute immediately: the live ask plus
the offset when buying, the live bid minus the offset when selling.

Examples:
  tradewright order marketable buy SPY 10 --account 123456789
  tradewright order marketable sell SPY 10 --offset 0.05 --account 123456789`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			action, err := parseAction(args[0])
			if err != nil {
				return err
			}
			u, err := parseUnit(unit)
			if err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, cfg *config.Config) error {
				off := cfg.OffsetDecimal()
				if offset != "" {
					off, err = decimal.NewFromString(offset)
					if err != nil {
						return fmt.Errorf("offset must be a decimal: %w", err)
					}
				}
				result, err := session.MarketableLimitOrder(flags.account, args[1], action, u, args[2], off)
				if err != nil {
					return err
				}
				return printResult(result)
			})
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "shares", "Quantity unit: shares or dollars")
	cmd.Flags().StringVarP(&offset, "offset", "o", "", "Price offset in currency units (default from config)")
	return cmd
}

func newGTCOrderCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gtc buy|sell SYMBOL SHARES PRICE",
		Short: "Place a good-til-canceled limit order",
		Long: `Place a good-til-canceled limit order for a stock or ETF. GTC orders
are share-denominated and always carry a limit price.

Examples:
  tradewright order gtc sell SPY 10 475.00 --account 123456789`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccount(flags); err != nil {
				return err
			}
			action, err := parseAction(args[0])
			if err != nil {
				return err
			}
			return withSession(flags, func(session *driver.Session, _ *config.Config) error {
				result, err := session.GTCOrder(flags.account, args[1], action, args[2], args[3])
				if err != nil {
					return err
				}
				return printResult(result)
			})
		},
	}
	return cmd
}
