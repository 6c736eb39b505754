package pages

import (
	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/actions"
	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/locator"
	"github.com/prianti29/swaglab-heist/internal/wait"
)

// CheckoutCompletePage drives the order confirmation screen.
type CheckoutCompletePage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewCheckoutCompletePage binds a completion page object to a browser page.
func NewCheckoutCompletePage(page playwright.Page, cfg *config.Config) *CheckoutCompletePage {
	return &CheckoutCompletePage{page: page, cfg: cfg}
}

// VerifyOn asserts the browser is on the completion screen.
func (p *CheckoutCompletePage) VerifyOn() error {
	return VerifyOnScreen(p.page, PathCheckoutComplete, "checkout complete", p.cfg.Timeout)
}

// VerifyComplete asserts the confirmation header rendered.
func (p *CheckoutCompletePage) VerifyComplete() error {
	header := p.page.Locator(locator.SelCompleteHeader)
	return wait.Until(wait.TextIs(header, "completion header", "Thank you for your order!"), p.cfg.Timeout)
}

// BackHome returns to the inventory screen.
func (p *CheckoutCompletePage) BackHome() error {
	return actions.Click(p.page.Locator(locator.SelBackHome), "back home button")
}
