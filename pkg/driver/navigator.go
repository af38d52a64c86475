package driver

import "fmt"

// navigator drives the page through the site's section states until a
// ticket or view is ready for interaction. Readiness means the ticket's
// entry controls have rendered, not merely that the URL changed; the
// tickets render asynchronously after load.
type navigator struct {
	page Page
	loc  locator
}

// reachStockTicket opens the equity ticket with the account preselected and
// waits until the symbol input is interactive.
func (n navigator) reachStockTicket(account string) error {
	url := fmt.Sprintf("%s?ACCOUNT=%s", tradeStockURL, account)
	if err := n.page.Goto(url); err != nil {
		return &NavigationError{URL: n.page.URL(), Err: err}
	}
	if err := n.loc.waitVisible(selSymbolInput); err != nil {
		return &NavigationError{URL: n.page.URL(), Err: err}
	}
	return nil
}

// reachMutualFundTicket opens the mutual fund ticket with the account
// preselected and waits until the symbol input is interactive.
func (n navigator) reachMutualFundTicket(account string) error {
	url := fmt.Sprintf("%s?ACCOUNT=%s", tradeMutualFundURL, account)
	if err := n.page.Goto(url); err != nil {
		return &NavigationError{URL: n.page.URL(), Err: err}
	}
	if err := n.loc.waitVisible(selSymbolInput); err != nil {
		return &NavigationError{URL: n.page.URL(), Err: err}
	}
	return nil
}

// reachQuoteView opens the equity ticket without an account context, for
// read-only quote lookups.
func (n navigator) reachQuoteView() error {
	if err := n.page.Goto(tradeStockURL); err != nil {
		return &NavigationError{URL: n.page.URL(), Err: err}
	}
	if err := n.loc.waitVisible(selSymbolInput); err != nil {
		return &NavigationError{URL: n.page.URL(), Err: err}
	}
	return nil
}

// reachPositions opens the portfolio positions view scoped to the account.
func (n navigator) reachPositions(account string) error {
	url := fmt.Sprintf(positionsURL, account)
	if err := n.page.Goto(url); err != nil {
		return &NavigationError{URL: n.page.URL(), Err: err}
	}
	return nil
}
