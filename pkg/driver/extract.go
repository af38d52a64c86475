package driver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// numericNoise holds the characters stripped from page text before numeric
// parsing: currency symbols, thousands separators, percent signs, and the
// parentheses the site uses for negative changes.
const numericNoise = "$,%()"

// cleanNumericText strips the formatting noise from page text such as
// "$1,234.56" or "(1.2%)" and verifies the remainder is numeric. The
// cleaned text is returned verbatim, so "10.00" stays "10.00". Text that
// is not numeric after cleaning is a ParseError.
func cleanNumericText(text string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(numericNoise, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(text))

	if _, err := decimal.NewFromString(cleaned); err != nil {
		return "", &ParseError{Text: text, Err: err}
	}
	return cleaned, nil
}

// parseDecimal converts loosely formatted page text into a decimal for
// arithmetic.
func parseDecimal(text string) (decimal.Decimal, error) {
	cleaned, err := cleanNumericText(text)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.RequireFromString(cleaned), nil
}

// parseInt converts page text such as "1,024" into an int.
func parseInt(text string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	return value, nil
}

// extractor reads typed values out of rendered ticket pages.
type extractor struct {
	loc locator
}

// cash reads the account's cash available to trade from the ticket's
// balance panel and returns it as a canonical decimal string.
func (e extractor) cash() (string, error) {
	text, err := e.loc.text(selCash)
	if err != nil {
		return "", err
	}
	return cleanNumericText(text)
}

// bidAsk reads the live bid and ask from the ticket's quote panel. The
// panel renders exactly two price cells; anything else means the panel has
// not settled for the current symbol.
func (e extractor) bidAsk() (bid, ask decimal.Decimal, err error) {
	texts, err := e.loc.texts(selBidAskNumber)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if len(texts) != 2 {
		return decimal.Zero, decimal.Zero, &ParseError{
			Text: strings.Join(texts, " "),
			Err:  fmt.Errorf("expected 2 bid/ask values, found %d", len(texts)),
		}
	}
	bid, err = parseDecimal(texts[0])
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	ask, err = parseDecimal(texts[1])
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return bid, ask, nil
}

// quote reads the full quote panel for the symbol currently on the ticket.
// Every field is read live; nothing is cached between calls.
func (e extractor) quote(symbol string) (*Quote, error) {
	name, err := e.loc.text(selCompanyTitle)
	if err != nil {
		return nil, err
	}

	lastText, err := e.loc.text(selLastPrice)
	if err != nil {
		return nil, err
	}
	last, err := cleanNumericText(lastText)
	if err != nil {
		return nil, err
	}

	changes, err := e.loc.texts(selChange)
	if err != nil {
		return nil, err
	}
	if len(changes) < 2 {
		return nil, &ParseError{
			Text: strings.Join(changes, " "),
			Err:  fmt.Errorf("expected dollar and percent change, found %d values", len(changes)),
		}
	}
	dollarChange, err := cleanNumericText(changes[0])
	if err != nil {
		return nil, err
	}
	percentChange, err := cleanNumericText(changes[1])
	if err != nil {
		return nil, err
	}

	// The bid and ask panels each render as "price x size".
	panels, err := e.loc.texts(selBidAskPanel)
	if err != nil {
		return nil, err
	}
	if len(panels) < 2 {
		return nil, &ParseError{
			Text: strings.Join(panels, " "),
			Err:  fmt.Errorf("expected bid and ask panels, found %d", len(panels)),
		}
	}
	bid, bidSize, err := parsePriceSize(panels[0])
	if err != nil {
		return nil, err
	}
	ask, askSize, err := parsePriceSize(panels[1])
	if err != nil {
		return nil, err
	}

	volumeText, err := e.loc.text(selVolume)
	if err != nil {
		return nil, err
	}
	volume, err := parseInt(volumeText)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Symbol:        symbol,
		Name:          name,
		Last:          last,
		DollarChange:  dollarChange,
		PercentChange: percentChange,
		Bid:           bid,
		BidSize:       bidSize,
		Ask:           ask,
		AskSize:       askSize,
		Volume:        volume,
	}, nil
}

// parsePriceSize splits a "price x size" panel value.
func parsePriceSize(text string) (string, int, error) {
	parts := strings.SplitN(text, "x", 2)
	if len(parts) != 2 {
		return "", 0, &ParseError{
			Text: text,
			Err:  fmt.Errorf("expected \"price x size\""),
		}
	}
	price, err := cleanNumericText(parts[0])
	if err != nil {
		return "", 0, err
	}
	size, err := parseInt(parts[1])
	if err != nil {
		return "", 0, err
	}
	return price, size, nil
}

// orderResult classifies the post-submission page as a brokerage success or
// failure and returns the banner text verbatim. The caller, not this
// package, interprets brokerage-specific wording.
func (e extractor) orderResult(page Page) (*OrderResult, error) {
	content, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read result page: %w", err)
	}
	banner, err := scanBanner(content)
	if err != nil {
		return nil, err
	}
	return &OrderResult{Success: banner.success, Message: banner.text}, nil
}
