package driver

// locator resolves ticket elements on a page and wraps failures in the
// driver's error taxonomy. Element waits are bounded by the page's default
// timeout; a locator never returns a handle in the wrong state, it either
// succeeds within the bound or reports ElementNotFoundError.
type locator struct {
	page Page
}

func (l locator) text(selector string) (string, error) {
	text, err := l.page.InnerText(selector)
	if err != nil {
		return "", &ElementNotFoundError{Selector: selector, Err: err}
	}
	return text, nil
}

func (l locator) texts(selector string) ([]string, error) {
	texts, err := l.page.InnerTexts(selector)
	if err != nil {
		return nil, &ElementNotFoundError{Selector: selector, Err: err}
	}
	return texts, nil
}

func (l locator) click(selector string) error {
	if err := l.page.Click(selector); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}

func (l locator) fill(selector, value string) error {
	if err := l.page.Fill(selector, value); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}

func (l locator) press(selector, key string) error {
	if err := l.page.Press(selector, key); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}

func (l locator) waitVisible(selector string) error {
	if err := l.page.WaitVisible(selector); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}
