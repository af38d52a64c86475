package driver

import (
	"fmt"
	"strings"
)

// fakePage is a scripted Page for driver tests. It serves canned element
// text, records every operation in order, and fails any selector listed in
// failures.
type fakePage struct {
	url          string
	texts        map[string]string
	textLists    map[string][]string
	content      string
	failures     map[string]error
	downloadPath string
	downloadErr  error
	ops          []string
	closed       int
}

func newFakePage() *fakePage {
	return &fakePage{
		texts:     make(map[string]string),
		textLists: make(map[string][]string),
		failures:  make(map[string]error),
	}
}

func (p *fakePage) op(entry string) {
	p.ops = append(p.ops, entry)
}

func (p *fakePage) Goto(url string) error {
	p.op("goto " + url)
	if err := p.failures["goto"]; err != nil {
		return err
	}
	p.url = url
	return nil
}

func (p *fakePage) URL() string { return p.url }

func (p *fakePage) Click(selector string) error {
	p.op("click " + selector)
	return p.failures[selector]
}

func (p *fakePage) Fill(selector, value string) error {
	p.op("fill " + selector + " = " + value)
	return p.failures[selector]
}

func (p *fakePage) Press(selector, key string) error {
	p.op("press " + selector + " " + key)
	return p.failures[selector]
}

func (p *fakePage) InnerText(selector string) (string, error) {
	p.op("text " + selector)
	if err := p.failures[selector]; err != nil {
		return "", err
	}
	text, ok := p.texts[selector]
	if !ok {
		return "", fmt.Errorf("no element matching %s", selector)
	}
	return text, nil
}

func (p *fakePage) InnerTexts(selector string) ([]string, error) {
	p.op("texts " + selector)
	if err := p.failures[selector]; err != nil {
		return nil, err
	}
	texts, ok := p.textLists[selector]
	if !ok {
		return nil, fmt.Errorf("no elements matching %s", selector)
	}
	return texts, nil
}

func (p *fakePage) WaitVisible(selector string) error {
	p.op("wait " + selector)
	return p.failures[selector]
}

func (p *fakePage) Content() (string, error) {
	return p.content, nil
}

func (p *fakePage) ExpectDownload(trigger func() error) (string, error) {
	if err := trigger(); err != nil {
		return "", err
	}
	if p.downloadErr != nil {
		return "", p.downloadErr
	}
	return p.downloadPath, nil
}

func (p *fakePage) Close() error {
	p.closed++
	return nil
}

// opIndex returns the position of the first recorded operation with the
// prefix, or -1.
func (p *fakePage) opIndex(prefix string) int {
	for i, entry := range p.ops {
		if strings.HasPrefix(entry, prefix) {
			return i
		}
	}
	return -1
}

// stockTicketPage returns a fake page scripted like a loaded equity ticket
// with bid 10.00 and ask 10.05.
func stockTicketPage() *fakePage {
	p := newFakePage()
	p.texts[selCash] = "$1,234.56"
	p.texts[selCompanyTitle] = "BCDE Corp"
	p.texts[selLastPrice] = "10.02"
	p.texts[selVolume] = "1,000"
	p.textLists[selChange] = []string{"+0.12", "+1.21%"}
	p.textLists[selBidAskPanel] = []string{"10.00 x 5", "10.05 x 7"}
	p.textLists[selBidAskNumber] = []string{"10.00", "10.05"}
	p.content = `<html><body><div class="order-confirmation">Order placed</div></body></html>`
	return p
}
