package driver

// ticketFiller populates order tickets in the dependency order the site's
// reactive forms require: symbol, then action, then unit, then quantity,
// then price and duration. Selecting a symbol, action, or unit re-renders
// downstream controls, so the filler waits for the next control to become
// available before writing to it rather than writing blind.
type ticketFiller struct {
	loc locator
}

func (f ticketFiller) fail(field string, err error) error {
	return &TicketFillError{Field: field, Err: err}
}

// setSymbol types a symbol into the given symbol input and commits it with
// Enter, which triggers the ticket's quote lookup.
func (f ticketFiller) setSymbol(selector, symbol string) error {
	if err := f.loc.fill(selector, symbol); err != nil {
		return f.fail("symbol", err)
	}
	if err := f.loc.press(selector, "Enter"); err != nil {
		return f.fail("symbol", err)
	}
	return nil
}

// fillStock fills the equity ticket for the order, starting from the
// symbol. Each control is waited on before it is written.
func (f ticketFiller) fillStock(order Order) error {
	if err := f.setSymbol(selSymbolInput, order.Symbol); err != nil {
		return err
	}
	return f.fillStockAfterSymbol(order)
}

// fillStockAfterSymbol fills the equity ticket's remaining fields once the
// symbol has been committed. Split out so a marketable limit order can
// price itself off the live quote between committing the symbol and
// filling the rest.
func (f ticketFiller) fillStockAfterSymbol(order Order) error {
	// The action buttons are the first controls enabled after the quote
	// loads for the committed symbol.
	actionSel := selActionBuy
	if order.Action == Sell {
		actionSel = selActionSell
	}
	if err := f.loc.waitVisible(actionSel); err != nil {
		return f.fail("action", err)
	}
	if err := f.loc.click(actionSel); err != nil {
		return f.fail("action", err)
	}

	unitSel := selUnitShares
	if order.Unit == Dollars {
		unitSel = selUnitDollars
	}
	if err := f.loc.click(unitSel); err != nil {
		return f.fail("unit", err)
	}

	if err := f.loc.waitVisible(selStockQuantity); err != nil {
		return f.fail("quantity", err)
	}
	if err := f.loc.fill(selStockQuantity, order.Quantity); err != nil {
		return f.fail("quantity", err)
	}

	if order.Limit == "" {
		if err := f.loc.click(selOrderTypeMarket); err != nil {
			return f.fail("order type", err)
		}
	} else {
		if err := f.setLimit(order.Limit); err != nil {
			return err
		}
	}

	if order.Duration == GTC {
		if err := f.loc.click(selDurationGTC); err != nil {
			return f.fail("duration", err)
		}
	}
	return nil
}

// setLimit switches the ticket to a limit order and enters the price. The
// price input only exists once Limit is selected.
func (f ticketFiller) setLimit(limit string) error {
	if err := f.loc.click(selOrderTypeLimit); err != nil {
		return f.fail("order type", err)
	}
	if err := f.loc.waitVisible(selLimitPrice); err != nil {
		return f.fail("limit price", err)
	}
	if err := f.loc.fill(selLimitPrice, limit); err != nil {
		return f.fail("limit price", err)
	}
	return nil
}

// fundSetSymbol commits the fund symbol and waits for its quote box, which
// the mutual fund ticket requires before the action dropdown works.
func (f ticketFiller) fundSetSymbol(symbol string) error {
	if err := f.setSymbol(selSymbolInput, symbol); err != nil {
		return err
	}
	if err := f.loc.waitVisible(selFundQuoteDetail); err != nil {
		return f.fail("symbol", err)
	}
	return nil
}

// fundSetAction picks an entry from the mutual fund action dropdown:
// "Buy", "Sell", or "Exchange".
func (f ticketFiller) fundSetAction(action string) error {
	if err := f.loc.click(selFundAction); err != nil {
		return f.fail("action", err)
	}
	if err := f.loc.click("text=" + action); err != nil {
		return f.fail("action", err)
	}
	return nil
}

func (f ticketFiller) fundSetUnit(unit Unit) error {
	unitSel := selUnitShares
	if unit == Dollars {
		unitSel = selUnitDollars
	}
	if err := f.loc.click(unitSel); err != nil {
		return f.fail("unit", err)
	}
	return nil
}

func (f ticketFiller) fundSetQuantity(quantity string) error {
	if err := f.loc.waitVisible(selFundQuantity); err != nil {
		return f.fail("quantity", err)
	}
	if err := f.loc.fill(selFundQuantity, quantity); err != nil {
		return f.fail("quantity", err)
	}
	return nil
}

// fundSetBuySymbol fills the destination fund on an exchange ticket and
// waits for its quote box to load.
func (f ticketFiller) fundSetBuySymbol(symbol string) error {
	if err := f.loc.fill(selFundToBuyInput, symbol); err != nil {
		return f.fail("fund to buy", err)
	}
	if err := f.loc.press(selFundToBuyInput, "Enter"); err != nil {
		return f.fail("fund to buy", err)
	}
	if err := f.loc.waitVisible(selFundBuyQuoteDetail); err != nil {
		return f.fail("fund to buy", err)
	}
	return nil
}
