package driver

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultOffset is the marketable limit price offset, in the quote's
// currency units, used when the caller does not supply one.
var DefaultOffset = decimal.RequireFromString("0.10")

// priceResolver derives a limit price from a live quote. The quote is read
// fresh on every call; a cached value could price a limit order away from
// the market.
type priceResolver struct {
	ext extractor
}

// resolveLimit reads the ticket's current bid/ask and returns a marketable
// limit price: ask + offset when buying, bid - offset when selling. The
// offset must be nonnegative.
func (r priceResolver) resolveLimit(action Action, offset decimal.Decimal) (decimal.Decimal, error) {
	if offset.IsNegative() {
		return decimal.Zero, fmt.Errorf("offset must be nonnegative, got %s", offset)
	}

	bid, ask, err := r.ext.bidAsk()
	if err != nil {
		return decimal.Zero, err
	}

	switch action {
	case Buy:
		return ask.Add(offset), nil
	case Sell:
		return bid.Sub(offset), nil
	default:
		return decimal.Zero, fmt.Errorf("action must be Buy or Sell")
	}
}
