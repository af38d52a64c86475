package driver

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Page is the browser page surface the driver operates on. It is implemented
// by playwrightPage for a live browser; tests substitute a scripted fake.
//
// Every call is bounded by the page's default timeout; none blocks
// indefinitely.
type Page interface {
	// Goto navigates to the URL and waits for the page to load
	Goto(url string) error

	// URL returns the page's current URL
	URL() string

	// Click clicks the first element matching the selector
	Click(selector string) error

	// Fill replaces the value of the input matching the selector
	Fill(selector, value string) error

	// Press sends a key press to the element matching the selector
	Press(selector, key string) error

	// InnerText returns the rendered text of the matching element
	InnerText(selector string) (string, error)

	// InnerTexts returns the rendered text of every matching element
	InnerTexts(selector string) ([]string, error)

	// WaitVisible waits until the matching element is visible
	WaitVisible(selector string) error

	// Content returns the page's full HTML
	Content() (string, error)

	// ExpectDownload runs trigger, waits for the resulting download to
	// complete, and returns the local path of the downloaded file
	ExpectDownload(trigger func() error) (string, error)

	// Close closes the page, aborting any outstanding waits
	Close() error
}

// playwrightPage adapts a playwright.Page to the Page interface. The
// session timeout is installed as the page default timeout at construction,
// so every operation below inherits the same bound.
type playwrightPage struct {
	page playwright.Page
}

func newPlaywrightPage(browser playwright.Browser, timeoutMillis float64) (*playwrightPage, error) {
	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	page.SetDefaultTimeout(timeoutMillis)
	return &playwrightPage{page: page}, nil
}

func (p *playwrightPage) Goto(url string) error {
	_, err := p.page.Goto(url)
	if err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return nil
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

func (p *playwrightPage) Click(selector string) error {
	return p.page.Click(selector)
}

func (p *playwrightPage) Fill(selector, value string) error {
	return p.page.Fill(selector, value)
}

func (p *playwrightPage) Press(selector, key string) error {
	return p.page.Press(selector, key)
}

func (p *playwrightPage) InnerText(selector string) (string, error) {
	text, err := p.page.InnerText(selector)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (p *playwrightPage) InnerTexts(selector string) ([]string, error) {
	texts, err := p.page.Locator(selector).AllInnerTexts()
	if err != nil {
		return nil, err
	}
	trimmed := make([]string, 0, len(texts))
	for _, text := range texts {
		trimmed = append(trimmed, strings.TrimSpace(text))
	}
	return trimmed, nil
}

func (p *playwrightPage) WaitVisible(selector string) error {
	_, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	return err
}

func (p *playwrightPage) Content() (string, error) {
	return p.page.Content()
}

func (p *playwrightPage) ExpectDownload(trigger func() error) (string, error) {
	download, err := p.page.ExpectDownload(trigger)
	if err != nil {
		return "", err
	}
	path, err := download.Path()
	if err != nil {
		return "", err
	}
	return path, nil
}

func (p *playwrightPage) Close() error {
	return p.page.Close()
}
