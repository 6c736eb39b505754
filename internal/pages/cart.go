package pages

import (
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/actions"
	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/locator"
	"github.com/prianti29/swaglab-heist/internal/wait"
)

// CartPage drives the cart screen.
type CartPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewCartPage binds a cart page object to a browser page.
func NewCartPage(page playwright.Page, cfg *config.Config) *CartPage {
	return &CartPage{page: page, cfg: cfg}
}

// VerifyOn asserts the browser is on the cart screen.
func (p *CartPage) VerifyOn() error {
	return VerifyOnScreen(p.page, PathCart, "cart", p.cfg.Timeout)
}

// VerifyProductInCart asserts the named product has a visible cart row
// whose name cell matches exactly.
func (p *CartPage) VerifyProductInCart(name string) error {
	row := locator.CartItem(p.page, name)
	if err := wait.Until(wait.Visible(row, "cart row for "+name), p.cfg.Timeout); err != nil {
		return err
	}
	text, err := row.Locator(locator.SelItemName).InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read cart row name for "+name, err)
	}
	if strings.TrimSpace(text) != name {
		return errs.Errorf(errs.AssertionMismatch,
			"cart row name: expected %q, actual %q", name, strings.TrimSpace(text))
	}
	return nil
}

// CartLineNames returns the rendered cart line names in order.
func (p *CartPage) CartLineNames() ([]string, error) {
	names, err := p.page.Locator(locator.SelCartItem).Locator(locator.SelItemName).AllInnerTexts()
	if err != nil {
		return nil, errs.Wrap(errs.ElementNotFound, "read cart line names", err)
	}
	return names, nil
}

// VerifyCartItems asserts the cart renders exactly the expected name
// sequence, in order.
func (p *CartPage) VerifyCartItems(expected []string) error {
	observed, err := p.CartLineNames()
	if err != nil {
		return err
	}
	if !sequencesEqual(expected, observed) {
		return errs.Errorf(errs.AssertionMismatch, "cart lines:\n%s", sequenceDiff(expected, observed))
	}
	return nil
}

// VerifyRemoveButton asserts the named product's row offers a remove button.
func (p *CartPage) VerifyRemoveButton(name string) error {
	button := locator.RemoveButton(locator.CartItem(p.page, name))
	return wait.Until(wait.Visible(button, "remove button for "+name), p.cfg.Timeout)
}

// RemoveItemFromCart removes the named product via its row's button.
func (p *CartPage) RemoveItemFromCart(name string) error {
	row := locator.CartItem(p.page, name)
	return actions.Click(locator.RemoveButton(row), "remove button for "+name)
}

// Checkout proceeds to the information step.
func (p *CartPage) Checkout() error {
	return actions.Click(p.page.Locator(locator.SelCheckoutButton), "checkout button")
}

// ContinueShopping returns to the inventory screen.
func (p *CartPage) ContinueShopping() error {
	return actions.Click(p.page.Locator(locator.SelContinueShopping), "continue shopping button")
}

// VerifyProductQuantity asserts the rendered quantity of a cart line.
func (p *CartPage) VerifyProductQuantity(name string, expected int) error {
	qty := locator.CartItem(p.page, name).Locator(locator.SelCartQuantity)
	text, err := qty.InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read quantity of "+name, err)
	}
	if strings.TrimSpace(text) != strconv.Itoa(expected) {
		return errs.Errorf(errs.AssertionMismatch,
			"quantity of %q: expected %d, actual %q", name, expected, strings.TrimSpace(text))
	}
	return nil
}

// quantityCapability probes how a cart line's quantity is rendered: the
// element's tag and whether the row carries an increment control.
func (p *CartPage) quantityCapability(name string) (tag string, hasIncrement bool, err error) {
	row := locator.CartItem(p.page, name)
	qty := row.Locator(locator.SelCartQuantity)
	if werr := wait.Until(wait.Visible(qty, "quantity of "+name), p.cfg.Timeout); werr != nil {
		return "", false, werr
	}
	raw, eerr := qty.Evaluate("el => el.tagName.toLowerCase()", nil)
	if eerr != nil {
		return "", false, errs.Wrap(errs.Internal, "probe quantity element of "+name, eerr)
	}
	tag, _ = raw.(string)
	plus, cerr := row.Locator("button", playwright.LocatorLocatorOptions{HasText: "+"}).Count()
	if cerr != nil {
		return "", false, errs.Wrap(errs.Internal, "probe increment control of "+name, cerr)
	}
	return tag, plus > 0, nil
}

// VerifyQuantityReadOnly asserts the quantity is a plain display: not
// an input, and no increment control in the row. This is one of two
// opposite capability probes; callers pick the contract under test.
func (p *CartPage) VerifyQuantityReadOnly(name string) error {
	tag, hasIncrement, err := p.quantityCapability(name)
	if err != nil {
		return err
	}
	if tag == "input" {
		return errs.Errorf(errs.AssertionMismatch,
			"quantity of %q: expected a read-only display, actual an input field", name)
	}
	if hasIncrement {
		return errs.Errorf(errs.AssertionMismatch,
			"quantity of %q: expected no increment control, but one is present", name)
	}
	return nil
}

// VerifyQuantityEditable is the opposite probe: the quantity must be an
// input field or come with an increment control.
func (p *CartPage) VerifyQuantityEditable(name string) error {
	tag, hasIncrement, err := p.quantityCapability(name)
	if err != nil {
		return err
	}
	if tag != "input" && !hasIncrement {
		return errs.Errorf(errs.AssertionMismatch,
			"quantity of %q: expected an editable quantity (input field or '+' control), actual read-only %q",
			name, tag)
	}
	return nil
}
