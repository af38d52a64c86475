package driver

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/shopspring/decimal"

	"github.com/entrhq/tradewright/pkg/logging"
)

// DefaultTimeout bounds every element wait and navigation.
const DefaultTimeout = 10 * time.Second

// Session drives one brokerage browser session through quote lookups and
// order entry. It owns a single page on the caller-supplied browser for its
// lifetime; the browser itself stays owned by the caller.
//
// Calls on a Session are strictly sequential. Invoking it from multiple
// goroutines races on the underlying page's navigation state and is not
// supported; callers needing parallel trading create one Session per
// browser.
//
// The user must finish logging in manually before calling any operation.
type Session struct {
	page   Page
	loc    locator
	nav    navigator
	filler ticketFiller
	ext    extractor
	prices priceResolver
	gate   *confirmationGate
	logger *logging.Logger

	closeOnce sync.Once
	closeErr  error
}

type sessionOptions struct {
	timeout   time.Duration
	promptIn  io.Reader
	promptOut io.Writer
	logger    *logging.Logger
}

// Option configures a Session.
type Option func(*sessionOptions)

// WithTimeout overrides the bound applied to element waits and
// navigations. It must be positive.
func WithTimeout(timeout time.Duration) Option {
	return func(o *sessionOptions) { o.timeout = timeout }
}

// WithPrompt redirects the confirmation prompt, which defaults to stdin
// and stdout.
func WithPrompt(in io.Reader, out io.Writer) Option {
	return func(o *sessionOptions) { o.promptIn = in; o.promptOut = out }
}

// WithLogger supplies the logger the session reports operations to.
func WithLogger(logger *logging.Logger) Option {
	return func(o *sessionOptions) { o.logger = logger }
}

// New opens a trading session on an already-launched browser and navigates
// to the login page. Log in manually, then call operations.
func New(browser playwright.Browser, opts ...Option) (*Session, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	page, err := newPlaywrightPage(browser, float64(o.timeout.Milliseconds()))
	if err != nil {
		return nil, err
	}

	session := newSession(page, o)
	if err := page.Goto(loginURL); err != nil {
		session.Close()
		return nil, &NavigationError{URL: page.URL(), Err: err}
	}
	return session, nil
}

func applyOptions(opts []Option) (sessionOptions, error) {
	o := sessionOptions{
		timeout:   DefaultTimeout,
		promptIn:  os.Stdin,
		promptOut: os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		return o, fmt.Errorf("timeout must be positive, got %s", o.timeout)
	}
	if o.logger == nil {
		// The fallback logger writes to stderr when file logging is
		// unavailable, so the error is non-fatal here.
		o.logger, _ = logging.NewLogger("driver")
	}
	return o, nil
}

func newSession(page Page, o sessionOptions) *Session {
	loc := locator{page: page}
	ext := extractor{loc: loc}
	return &Session{
		page:   page,
		loc:    loc,
		nav:    navigator{page: page, loc: loc},
		filler: ticketFiller{loc: loc},
		ext:    ext,
		prices: priceResolver{ext: ext},
		gate:   newConfirmationGate(o.promptIn, o.promptOut),
		logger: o.logger,
	}
}

// Close logs out and closes the session's page. It is idempotent and safe
// to call while an operation is waiting; closing the page aborts the
// outstanding wait. The browser is left running for its owner to close.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		// Best effort; the page may already be unreachable.
		if err := s.page.Goto(logoutURL); err != nil {
			s.logger.Warnf("logout navigation failed: %v", err)
		}
		s.closeErr = s.page.Close()
	})
	return s.closeErr
}

// CashAvailableToTrade returns the cash available to trade in the account,
// as a decimal string.
func (s *Session) CashAvailableToTrade(account string) (string, error) {
	s.logger.Infof("reading cash available to trade for account %s", account)
	if err := s.nav.reachStockTicket(account); err != nil {
		return "", err
	}
	cash, err := s.ext.cash()
	if err != nil {
		s.logger.Errorf("cash available to trade: %v", err)
		return "", err
	}
	return cash, nil
}

// GetQuote returns the live quote for a stock or ETF. Nothing is cached;
// every call re-reads the page.
func (s *Session) GetQuote(symbol string) (*Quote, error) {
	s.logger.Infof("reading quote for %s", symbol)
	if err := s.nav.reachQuoteView(); err != nil {
		return nil, err
	}
	if err := s.filler.setSymbol(selSymbolInput, symbol); err != nil {
		return nil, err
	}
	quote, err := s.ext.quote(symbol)
	if err != nil {
		s.logger.Errorf("quote for %s: %v", symbol, err)
		return nil, err
	}
	return quote, nil
}

// DownloadPositions exports the portfolio positions file and returns the
// path of the downloaded copy.
func (s *Session) DownloadPositions(account string) (string, error) {
	s.logger.Infof("downloading positions for account %s", account)
	if err := s.nav.reachPositions(account); err != nil {
		return "", err
	}
	path, err := s.page.ExpectDownload(func() error {
		return s.page.Click(selDownloadButton)
	})
	if err != nil {
		s.logger.Errorf("positions download: %v", err)
		return "", &DownloadError{Err: err}
	}
	return path, nil
}

// MarketOrder places a market order for a stock or ETF.
func (s *Session) MarketOrder(account, symbol string, action Action, unit Unit, quantity string) (*OrderResult, error) {
	if err := validateActionUnit(action, unit); err != nil {
		return nil, err
	}
	s.logger.Infof("market order: %s %s %s %s account %s", action, quantity, unit, symbol, account)
	return s.placeStock(Order{
		Account:  account,
		Symbol:   symbol,
		Action:   action,
		Unit:     unit,
		Quantity: quantity,
	})
}

// LimitOrder places a day limit order for a stock or ETF.
func (s *Session) LimitOrder(account, symbol string, action Action, unit Unit, quantity, limit string) (*OrderResult, error) {
	if err := validateActionUnit(action, unit); err != nil {
		return nil, err
	}
	s.logger.Infof("limit order: %s %s %s %s at %s account %s", action, quantity, unit, symbol, limit, account)
	return s.placeStock(Order{
		Account:  account,
		Symbol:   symbol,
		Action:   action,
		Unit:     unit,
		Quantity: quantity,
		Limit:    limit,
	})
}

// MarketableLimitOrder places a limit order priced to execute immediately:
// ask plus the offset when buying, bid minus the offset when selling. The
// quote is read live from the ticket just before pricing. The offset
// defaults to DefaultOffset and must be nonnegative.
func (s *Session) MarketableLimitOrder(account, symbol string, action Action, unit Unit, quantity string, offset ...decimal.Decimal) (*OrderResult, error) {
	if err := validateActionUnit(action, unit); err != nil {
		return nil, err
	}
	off := DefaultOffset
	if len(offset) > 0 {
		off = offset[0]
	}
	s.logger.Infof("marketable limit order: %s %s %s %s offset %s account %s", action, quantity, unit, symbol, off, account)

	if err := s.nav.reachStockTicket(account); err != nil {
		return nil, err
	}
	if err := s.filler.setSymbol(selSymbolInput, symbol); err != nil {
		return nil, err
	}

	limit, err := s.prices.resolveLimit(action, off)
	if err != nil {
		s.logger.Errorf("marketable limit price: %v", err)
		return nil, err
	}

	// From here the computed price is treated exactly like a caller
	// supplied limit.
	order := Order{
		Account:  account,
		Symbol:   symbol,
		Action:   action,
		Unit:     unit,
		Quantity: quantity,
		Limit:    limit.StringFixed(2),
	}
	if err := s.filler.fillStockAfterSymbol(order); err != nil {
		s.logger.Errorf("marketable limit order fill: %v", err)
		return nil, err
	}
	return s.submit()
}

// GTCOrder places a good-til-canceled limit order for a stock or ETF.
// GTC orders are always share-denominated and always carry a limit price.
func (s *Session) GTCOrder(account, symbol string, action Action, shares, limit string) (*OrderResult, error) {
	if !action.valid() {
		return nil, fmt.Errorf("action must be Buy or Sell")
	}
	s.logger.Infof("GTC order: %s %s shares %s at %s account %s", action, shares, symbol, limit, account)
	return s.placeStock(Order{
		Account:  account,
		Symbol:   symbol,
		Action:   action,
		Unit:     Shares,
		Quantity: shares,
		Limit:    limit,
		Duration: GTC,
	})
}

// BuyMutualFund places a dollar-denominated buy order for a mutual fund.
func (s *Session) BuyMutualFund(account, symbol, dollars string) (*OrderResult, error) {
	s.logger.Infof("mutual fund buy: %s dollars of %s account %s", dollars, symbol, account)
	if err := s.nav.reachMutualFundTicket(account); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetSymbol(symbol); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetAction("Buy"); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetQuantity(dollars); err != nil {
		return nil, err
	}
	return s.submit()
}

// SellMutualFund places a sell order for a mutual fund.
func (s *Session) SellMutualFund(account, symbol string, unit Unit, quantity string) (*OrderResult, error) {
	if !unit.valid() {
		return nil, fmt.Errorf("unit must be Shares or Dollars")
	}
	s.logger.Infof("mutual fund sell: %s %s of %s account %s", quantity, unit, symbol, account)
	if err := s.nav.reachMutualFundTicket(account); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetSymbol(symbol); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetAction("Sell"); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetUnit(unit); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetQuantity(quantity); err != nil {
		return nil, err
	}
	return s.submit()
}

// ExchangeMutualFund sells one mutual fund and buys another in a single
// exchange order.
func (s *Session) ExchangeMutualFund(account, sellSymbol string, unit Unit, quantity, buySymbol string) (*OrderResult, error) {
	if !unit.valid() {
		return nil, fmt.Errorf("unit must be Shares or Dollars")
	}
	s.logger.Infof("mutual fund exchange: %s %s of %s into %s account %s", quantity, unit, sellSymbol, buySymbol, account)
	if err := s.nav.reachMutualFundTicket(account); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetSymbol(sellSymbol); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetAction("Exchange"); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetUnit(unit); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := s.filler.fundSetBuySymbol(buySymbol); err != nil {
		return nil, err
	}
	return s.submit()
}

func (s *Session) placeStock(order Order) (*OrderResult, error) {
	if err := s.nav.reachStockTicket(order.Account); err != nil {
		return nil, err
	}
	if err := s.filler.fillStock(order); err != nil {
		s.logger.Errorf("order fill: %v", err)
		return nil, err
	}
	return s.submit()
}

// submit previews the filled ticket, gates on human confirmation, and
// places the order at most once. Declining is a normal outcome, reported
// as an unsuccessful OrderResult with no error and no submission attempt.
func (s *Session) submit() (*OrderResult, error) {
	if err := s.loc.click(selPreviewOrder); err != nil {
		return nil, err
	}

	if s.gate.ask("Place order?") == Declined {
		s.logger.Infof("order declined at confirmation; nothing submitted")
		return &OrderResult{Success: false, Message: "order not placed: declined at confirmation"}, nil
	}

	if err := s.loc.click(selPlaceOrder); err != nil {
		return nil, err
	}

	result, err := s.ext.orderResult(s.page)
	if err != nil {
		s.logger.Errorf("order result: %v", err)
		return nil, err
	}
	if result.Success {
		s.logger.Infof("order placed: %s", result.Message)
	} else {
		s.logger.Warnf("order rejected: %s", result.Message)
	}
	return result, nil
}

func validateActionUnit(action Action, unit Unit) error {
	if !action.valid() {
		return fmt.Errorf("action must be Buy or Sell")
	}
	if !unit.valid() {
		return fmt.Errorf("unit must be Shares or Dollars")
	}
	return nil
}
