package driver

// Action identifies the side of an order.
type Action int

const (
	// Buy opens or adds to a position
	Buy Action = iota

	// Sell closes or reduces a position
	Sell
)

// String returns the label the brokerage ticket uses for the action.
func (a Action) String() string {
	switch a {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "unknown"
	}
}

// valid reports whether the action is one of the closed set of values.
func (a Action) valid() bool {
	return a == Buy || a == Sell
}

// Unit identifies how an order quantity is denominated.
type Unit int

const (
	// Shares denominates the quantity in shares
	Shares Unit = iota

	// Dollars denominates the quantity in a currency amount
	Dollars
)

// String returns the label the brokerage ticket uses for the unit.
func (u Unit) String() string {
	switch u {
	case Shares:
		return "Shares"
	case Dollars:
		return "Dollars"
	default:
		return "unknown"
	}
}

func (u Unit) valid() bool {
	return u == Shares || u == Dollars
}

// Duration identifies how long an order remains working.
type Duration int

const (
	// Day expires the order at the end of the trading day
	Day Duration = iota

	// GTC keeps the order open until filled or canceled
	GTC
)

// Order describes a stock or ETF order to be entered on the ticket.
//
// Account, Symbol, Quantity and Limit are forwarded to the website verbatim.
// The website's own validation is authoritative; nothing here checks number
// formats or ranges.
type Order struct {
	// Account is the brokerage account number
	Account string

	// Symbol is the stock or ETF symbol
	Symbol string

	// Action is Buy or Sell
	Action Action

	// Unit is Shares or Dollars
	Unit Unit

	// Quantity is the amount, as entered into the quantity field
	Quantity string

	// Limit is the limit price. Empty for market orders; required for
	// limit and GTC orders.
	Limit string

	// Duration is Day or GTC. GTC orders always carry a limit price.
	Duration Duration
}

// Quote is a stock or ETF quote read live from the ticket's quote panel.
// Prices are reported as decimal strings exactly as normalized from the
// page; nothing is cached between calls.
type Quote struct {
	// Symbol is the symbol the quote was requested for
	Symbol string

	// Name is the company or fund title shown on the ticket
	Name string

	// Last is the last trade price
	Last string

	// DollarChange is the day's change in currency units
	DollarChange string

	// PercentChange is the day's change in percent
	PercentChange string

	// Bid is the best bid price
	Bid string

	// BidSize is the size at the bid
	BidSize int

	// Ask is the best ask price
	Ask string

	// AskSize is the size at the ask
	AskSize int

	// Volume is the day's traded volume
	Volume int
}

// OrderResult reports the brokerage's response to a submitted order.
//
// A rejected order is an expected business outcome, not a fault: it is
// reported here with Success false and the brokerage's verbatim message,
// never as an error.
type OrderResult struct {
	// Success is true when the brokerage confirmed the order was placed
	Success bool

	// Message is the verbatim banner text from the result page, or a
	// short note when the user declined confirmation
	Message string
}
