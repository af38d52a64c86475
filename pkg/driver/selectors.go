package driver

// fidelity.com URLs. The ticket pages accept an ACCOUNT query parameter to
// preselect the account context.
const (
	loginURL           = "https://digital.fidelity.com/prgw/digital/login/full-page"
	logoutURL          = "https://login.fidelity.com/ftgw/Fidelity/RtlCust/Logout/Init?AuthRedUrl=https://www.fidelity.com/customer-service/customer-logout"
	positionsURL       = "https://oltx.fidelity.com/ftgw/fbc/oftop/portfolio?ACCOUNT=%s#positions"
	tradeStockURL      = "https://digital.fidelity.com/ftgw/digital/trade-equity/index"
	tradeMutualFundURL = "https://digital.fidelity.com/ftgw/digital/trade-mutualfund"
)

// Selectors for the equity and mutual fund tickets. Playwright text= and
// :has-text() engines resolve against the rendered labels, which have been
// more stable across site revisions than generated ids.
const (
	selSymbolInput    = "text=Symbol"
	selFundToBuyInput = "text=Fund to Buy"

	selActionBuy  = "text=Buy"
	selActionSell = "text=Sell"

	selUnitShares  = "label:has-text('Shares')"
	selUnitDollars = "text=Dollars"

	selStockQuantity = "#eqt-shared-quantity"
	selFundQuantity  = "#mf-shared-quantity"

	selOrderTypeMarket = "label:has-text('Market')"
	selOrderTypeLimit  = "text=Limit"
	selLimitPrice      = "text=Limit Price"
	selDurationGTC     = "text=GTC"

	selFundAction = "text=Action"

	selPreviewOrder = "#previewOrderBtn"
	selPlaceOrder   = "#placeOrderBtn"

	selCash         = ".funds-cash"
	selCompanyTitle = ".company-title"
	selLastPrice    = ".last-price"
	selChange       = ".eq-ticket__symbol__dollar_percent_chg_font"
	selBidAskPanel  = ".block-price-layout"
	selBidAskNumber = ".number"
	selVolume       = ".block-volume"

	selFundQuoteDetail    = ".detail-value"
	selFundBuyQuoteDetail = "#mf-ticket__second-quote-box .detail-value"

	selDownloadButton = "button[title='Download']"
)
