// Package driver provides semi-automated trading on fidelity.com through a
// driven browser.
//
// The driver operates the site's order-entry forms on the user's behalf: it
// navigates to the right ticket, fills fields in the order the reactive form
// requires, derives limit prices from the live quote when asked, and parses
// the resulting page into typed values. The user logs in manually before any
// operation, and no order is ever submitted without the user confirming at a
// blocking prompt.
//
// # Session Lifecycle
//
// A Session is created from an already-launched Playwright browser and owns
// one page for its lifetime:
//
//	session, err := driver.New(browser)
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
//
//	// log in manually in the browser window, then:
//	result, err := session.MarketOrder("123456789", "SPY", driver.Buy, driver.Shares, "1")
//
// Close is idempotent and releases the page on every path; the browser
// itself stays owned by the caller. Calls on one Session must be sequential:
// they share the page's navigation state. For parallel trading, create one
// Session per browser.
//
// # Confirmation
//
// Before submission the driver asks "Place order? [Y/n]". An empty answer
// or "y" (any case) confirms; anything else declines, and declining returns
// an unsuccessful OrderResult without touching the order button.
//
// # Errors and Results
//
// A rejected order is a business outcome, reported as OrderResult with
// Success false and the brokerage's verbatim message. System faults are
// errors: ElementNotFoundError, NavigationError, TicketFillError,
// ParseError, and DownloadError, all matchable with errors.As.
//
// # Validation
//
// Account numbers, symbols, quantities, and prices are forwarded to the
// website verbatim. The site's own validation is authoritative; this keeps
// the driver working when the site changes its accepted formats.
package driver
