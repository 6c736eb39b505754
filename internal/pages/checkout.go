package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/actions"
	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/locator"
	"github.com/prianti29/swaglab-heist/internal/wait"
)

// CheckoutInfo is the data entered on the information step. Nil-able
// extras (Address, PaymentMethod) drive the exploratory checks for
// fields the reference deployment does not actually render.
type CheckoutInfo struct {
	FirstName  string
	LastName   string
	PostalCode string

	Address       *string
	PaymentMethod *string
}

// CheckoutPage drives the checkout information step. The transition to
// the overview is gated: it only happens when every required field is
// filled, otherwise an error renders and the screen stays put.
type CheckoutPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewCheckoutPage binds a checkout page object to a browser page.
func NewCheckoutPage(page playwright.Page, cfg *config.Config) *CheckoutPage {
	return &CheckoutPage{page: page, cfg: cfg}
}

// VerifyOn asserts the browser is on the information step.
func (p *CheckoutPage) VerifyOn() error {
	return VerifyOnScreen(p.page, PathCheckoutInfo, "checkout information", p.cfg.Timeout)
}

// FillInformation fills the given fields. Empty required strings are
// skipped so callers can exercise the missing-field gate.
func (p *CheckoutPage) FillInformation(info CheckoutInfo) error {
	fields := []struct {
		sel   string
		desc  string
		value string
		fill  bool
	}{
		{locator.SelFirstName, "first name input", info.FirstName, info.FirstName != ""},
		{locator.SelLastName, "last name input", info.LastName, info.LastName != ""},
		{locator.SelPostalCode, "postal code input", info.PostalCode, info.PostalCode != ""},
	}
	for _, f := range fields {
		if !f.fill {
			continue
		}
		if err := actions.Fill(p.page.Locator(f.sel), f.desc, f.value); err != nil {
			return err
		}
	}
	if info.Address != nil {
		if err := actions.Fill(p.page.Locator(locator.SelAddress), "address input", *info.Address); err != nil {
			return err
		}
	}
	if info.PaymentMethod != nil {
		if err := actions.SelectOption(p.page.Locator(locator.SelPaymentSelect), "payment method select", *info.PaymentMethod); err != nil {
			return err
		}
	}
	return nil
}

// ClearInformation empties the three required fields for reuse without
// a navigation in between.
func (p *CheckoutPage) ClearInformation() error {
	for _, f := range []struct{ sel, desc string }{
		{locator.SelFirstName, "first name input"},
		{locator.SelLastName, "last name input"},
		{locator.SelPostalCode, "postal code input"},
	} {
		if err := actions.ClearAndFill(p.page.Locator(f.sel), f.desc, ""); err != nil {
			return err
		}
	}
	return nil
}

// Continue submits the information step.
func (p *CheckoutPage) Continue() error {
	return actions.Click(p.page.Locator(locator.SelContinue), "continue button")
}

// Cancel escapes back to the cart.
func (p *CheckoutPage) Cancel() error {
	return actions.Click(p.page.Locator(locator.SelCancel), "cancel button")
}

// VerifyErrorContains asserts the field error banner is visible and
// contains the expected fragment.
func (p *CheckoutPage) VerifyErrorContains(expected string) error {
	errorBox := p.page.Locator(locator.SelErrorBox)
	if err := wait.Until(wait.Visible(errorBox, "checkout error"), p.cfg.Timeout); err != nil {
		return err
	}
	text, err := errorBox.InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read checkout error text", err)
	}
	if !strings.Contains(text, expected) {
		return errs.Errorf(errs.AssertionMismatch,
			"checkout error: expected text containing %q, actual %q", expected, text)
	}
	return nil
}
