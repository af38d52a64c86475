package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "currency with thousands separator", text: "$1,234.56", want: "1234.56"},
		{name: "plain number", text: "10.05", want: "10.05"},
		{name: "percent", text: "1.21%", want: "1.21"},
		{name: "parenthesized negative change", text: "(-0.5%)", want: "-0.5"},
		{name: "surrounding whitespace", text: "  $42.00 ", want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := parseDecimal(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value.String())
		})
	}
}

func TestParseDecimalRejectsJunk(t *testing.T) {
	for _, text := range []string{"", "n/a", "--", "ten dollars"} {
		_, err := parseDecimal(text)

		var parseErr *ParseError
		require.Error(t, err, "text %q", text)
		assert.True(t, errors.As(err, &parseErr), "text %q should yield ParseError", text)
	}
}

func TestParseInt(t *testing.T) {
	value, err := parseInt("1,024")
	require.NoError(t, err)
	assert.Equal(t, 1024, value)

	_, err = parseInt("many")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParsePriceSize(t *testing.T) {
	price, size, err := parsePriceSize("10.00 x 5")
	require.NoError(t, err)
	assert.Equal(t, "10.00", price)
	assert.Equal(t, 5, size)

	_, _, err = parsePriceSize("10.00")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestCashStripsFormatting(t *testing.T) {
	page := stockTicketPage()
	ext := extractor{loc: locator{page: page}}

	cash, err := ext.cash()
	require.NoError(t, err)
	assert.Equal(t, "1234.56", cash)
}

func TestQuoteReadsQuotePanel(t *testing.T) {
	page := stockTicketPage()
	ext := extractor{loc: locator{page: page}}

	quote, err := ext.quote("BCDE")
	require.NoError(t, err)

	assert.Equal(t, "BCDE", quote.Symbol)
	assert.Equal(t, "BCDE Corp", quote.Name)
	assert.Equal(t, "10.02", quote.Last)
	assert.Equal(t, "+0.12", quote.DollarChange)
	assert.Equal(t, "+1.21", quote.PercentChange)
	assert.Equal(t, "10.00", quote.Bid)
	assert.Equal(t, 5, quote.BidSize)
	assert.Equal(t, "10.05", quote.Ask)
	assert.Equal(t, 7, quote.AskSize)
	assert.Equal(t, 1000, quote.Volume)
}

func TestQuoteMissingElementIsElementNotFound(t *testing.T) {
	page := stockTicketPage()
	delete(page.texts, selCompanyTitle)
	ext := extractor{loc: locator{page: page}}

	_, err := ext.quote("BCDE")

	var notFound *ElementNotFoundError
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, selCompanyTitle, notFound.Selector)
}

func TestBidAskRequiresExactlyTwoValues(t *testing.T) {
	page := stockTicketPage()
	page.textLists[selBidAskNumber] = []string{"10.00"}
	ext := extractor{loc: locator{page: page}}

	_, _, err := ext.bidAsk()

	var parseErr *ParseError
	require.Error(t, err)
	assert.True(t, errors.As(err, &parseErr))
}

func TestScanBannerSuccess(t *testing.T) {
	content := `<html><body>
		<script>var noise = "Order placed";</script>
		<div class="order-confirmation"><h2>Order placed</h2></div>
	</body></html>`

	b, err := scanBanner(content)
	require.NoError(t, err)
	assert.True(t, b.success)
	assert.Equal(t, "Order placed", b.text)
}

func TestScanBannerError(t *testing.T) {
	content := `<html><body>
		<div role="alert" class="pvd-inline-alert">Insufficient funds for this order.</div>
	</body></html>`

	b, err := scanBanner(content)
	require.NoError(t, err)
	assert.False(t, b.success)
	assert.Equal(t, "Insufficient funds for this order.", b.text)
}

func TestScanBannerSuccessByText(t *testing.T) {
	// A neutral status container still counts as success when the text
	// says the order went through.
	content := `<html><body>
		<div role="status">Your order was placed successfully.</div>
	</body></html>`

	b, err := scanBanner(content)
	require.NoError(t, err)
	assert.True(t, b.success)
}

func TestScanBannerMissingIsParseError(t *testing.T) {
	_, err := scanBanner(`<html><body><p>nothing to see</p></body></html>`)

	var parseErr *ParseError
	require.Error(t, err)
	assert.True(t, errors.As(err, &parseErr))
}
