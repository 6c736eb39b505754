package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/actions"
	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/locator"
	"github.com/prianti29/swaglab-heist/internal/money"
	"github.com/prianti29/swaglab-heist/internal/wait"
)

// CheckoutOverviewPage drives the order summary step.
type CheckoutOverviewPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewCheckoutOverviewPage binds an overview page object to a browser page.
func NewCheckoutOverviewPage(page playwright.Page, cfg *config.Config) *CheckoutOverviewPage {
	return &CheckoutOverviewPage{page: page, cfg: cfg}
}

// VerifyOn asserts the browser is on the overview step.
func (p *CheckoutOverviewPage) VerifyOn() error {
	return VerifyOnScreen(p.page, PathCheckoutOverview, "checkout overview", p.cfg.Timeout)
}

// VerifyItemCount asserts the number of rendered order lines.
func (p *CheckoutOverviewPage) VerifyItemCount(expected int) error {
	count, err := p.page.Locator(locator.SelCartItem).Count()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "count overview lines", err)
	}
	if count != expected {
		return errs.Errorf(errs.AssertionMismatch,
			"overview lines: expected %d, actual %d", expected, count)
	}
	return nil
}

// VerifyProductInOverview asserts the named product renders with the
// expected price text. Pass an empty price to only check presence.
func (p *CheckoutOverviewPage) VerifyProductInOverview(name, expectedPrice string) error {
	row := locator.CartItem(p.page, name)
	if err := wait.Until(wait.Visible(row, "overview row for "+name), p.cfg.Timeout); err != nil {
		return err
	}
	text, err := row.Locator(locator.SelItemName).InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read overview row name for "+name, err)
	}
	if strings.TrimSpace(text) != name {
		return errs.Errorf(errs.AssertionMismatch,
			"overview row name: expected %q, actual %q", name, strings.TrimSpace(text))
	}
	if expectedPrice == "" {
		return nil
	}
	price, err := row.Locator(locator.SelItemPrice).InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read overview row price for "+name, err)
	}
	if strings.TrimSpace(price) != expectedPrice {
		return errs.Errorf(errs.AssertionMismatch,
			"price of %q: expected %q, actual %q", name, expectedPrice, strings.TrimSpace(price))
	}
	return nil
}

func (p *CheckoutOverviewPage) summaryText(sel, desc string) (string, error) {
	text, err := p.page.Locator(sel).InnerText()
	if err != nil {
		return "", errs.Wrap(errs.ElementNotFound, "read "+desc, err)
	}
	return strings.TrimSpace(text), nil
}

func (p *CheckoutOverviewPage) verifySummaryContains(sel, desc, expected string) error {
	text, err := p.summaryText(sel, desc)
	if err != nil {
		return err
	}
	if !strings.Contains(text, expected) {
		return errs.Errorf(errs.AssertionMismatch,
			"%s: expected text containing %q, actual %q", desc, expected, text)
	}
	return nil
}

// VerifySubtotal asserts the item total line, e.g. VerifySubtotal("39.98").
func (p *CheckoutOverviewPage) VerifySubtotal(expected string) error {
	return p.verifySummaryContains(locator.SelSubtotalLabel, "subtotal label", "Item total: $"+expected)
}

// VerifyTax asserts the tax line.
func (p *CheckoutOverviewPage) VerifyTax(expected string) error {
	return p.verifySummaryContains(locator.SelTaxLabel, "tax label", "Tax: $"+expected)
}

// VerifyTotal asserts the grand total line.
func (p *CheckoutOverviewPage) VerifyTotal(expected string) error {
	return p.verifySummaryContains(locator.SelTotalLabel, "total label", "Total: $"+expected)
}

// VerifyTotalsConsistent recomputes the order arithmetic from the
// rendered line prices: the subtotal must equal their sum and the total
// must equal subtotal plus tax, both exact in cents.
func (p *CheckoutOverviewPage) VerifyTotalsConsistent() error {
	linePrices, err := p.page.Locator(locator.SelCartItem).Locator(locator.SelItemPrice).AllInnerTexts()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read overview line prices", err)
	}
	lineSum, err := money.SumCents(linePrices)
	if err != nil {
		return errs.Wrap(errs.AssertionMismatch, "unparseable overview line price", err)
	}

	subtotalText, err := p.summaryText(locator.SelSubtotalLabel, "subtotal label")
	if err != nil {
		return err
	}
	subtotal, err := money.ParseCents(subtotalText)
	if err != nil {
		return errs.Wrap(errs.AssertionMismatch, "unparseable subtotal", err)
	}
	if subtotal != lineSum {
		return errs.Errorf(errs.AssertionMismatch,
			"subtotal: expected %s (sum of %d lines), actual %s",
			money.FormatCents(lineSum), len(linePrices), money.FormatCents(subtotal))
	}

	taxText, err := p.summaryText(locator.SelTaxLabel, "tax label")
	if err != nil {
		return err
	}
	tax, err := money.ParseCents(taxText)
	if err != nil {
		return errs.Wrap(errs.AssertionMismatch, "unparseable tax", err)
	}

	totalText, err := p.summaryText(locator.SelTotalLabel, "total label")
	if err != nil {
		return err
	}
	total, err := money.ParseCents(totalText)
	if err != nil {
		return errs.Wrap(errs.AssertionMismatch, "unparseable total", err)
	}

	if total != subtotal+tax {
		return errs.Errorf(errs.AssertionMismatch,
			"total: expected %s (subtotal %s + tax %s), actual %s",
			money.FormatCents(subtotal+tax), money.FormatCents(subtotal),
			money.FormatCents(tax), money.FormatCents(total))
	}
	return nil
}

// ShippingInfo returns the rendered shipping carrier line.
func (p *CheckoutOverviewPage) ShippingInfo() (string, error) {
	text, err := locator.SummaryValue(p.page, locator.SummaryShipIdx).InnerText()
	if err != nil {
		return "", errs.Wrap(errs.ElementNotFound, "read shipping information", err)
	}
	return strings.TrimSpace(text), nil
}

// VerifyPaymentMethodContains asserts the payment information line.
func (p *CheckoutOverviewPage) VerifyPaymentMethodContains(expected string) error {
	label := locator.SummaryValue(p.page, locator.SummaryPaymentIdx)
	if err := wait.Until(wait.Visible(label, "payment information"), p.cfg.Timeout); err != nil {
		return err
	}
	text, err := label.InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read payment information", err)
	}
	if !strings.Contains(text, expected) {
		return errs.Errorf(errs.AssertionMismatch,
			"payment information: expected text containing %q, actual %q", expected, text)
	}
	return nil
}

// VerifyAddressContains asserts the delivery address line.
func (p *CheckoutOverviewPage) VerifyAddressContains(expected string) error {
	label := locator.SummaryValue(p.page, locator.SummaryAddressIdx)
	if err := wait.Until(wait.Visible(label, "delivery address"), p.cfg.Timeout); err != nil {
		return err
	}
	text, err := label.InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read delivery address", err)
	}
	if !strings.Contains(text, expected) {
		return errs.Errorf(errs.AssertionMismatch,
			"delivery address: expected text containing %q, actual %q", expected, text)
	}
	return nil
}

// Finish completes the order.
func (p *CheckoutOverviewPage) Finish() error {
	return actions.Click(p.page.Locator(locator.SelFinishButton), "finish button")
}

// Cancel escapes back to the inventory.
func (p *CheckoutOverviewPage) Cancel() error {
	return actions.Click(p.page.Locator(locator.SelCancelButton), "cancel button")
}
