package driver

import "fmt"

// ElementNotFoundError indicates a page element was absent or never reached
// the expected state within the session timeout.
type ElementNotFoundError struct {
	Selector string
	Err      error
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element not found: %s: %v", e.Selector, e.Err)
}

func (e *ElementNotFoundError) Unwrap() error { return e.Err }

// NavigationError indicates the target page state was not reached.
type NavigationError struct {
	// URL is the last URL the page reported before the failure
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation failed at %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// TicketFillError indicates a ticket field was unavailable or rejected a
// value during the fill sequence.
type TicketFillError struct {
	Field string
	Err   error
}

func (e *TicketFillError) Error() string {
	return fmt.Sprintf("ticket fill failed on %s: %v", e.Field, e.Err)
}

func (e *TicketFillError) Unwrap() error { return e.Err }

// ParseError indicates extracted page text did not match the expected
// numeric or status format.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DownloadError indicates a requested file export did not complete.
type DownloadError struct {
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download failed: %v", e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
