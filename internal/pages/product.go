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

// ProductPage drives a single product's detail screen.
type ProductPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewProductPage binds a product detail page object to a browser page.
func NewProductPage(page playwright.Page, cfg *config.Config) *ProductPage {
	return &ProductPage{page: page, cfg: cfg}
}

// VerifyDetails asserts the detail screen renders a name, description,
// and price, at a detail URL with a numeric id. Pass an empty name to
// only check presence.
func (p *ProductPage) VerifyDetails(expectedName string) error {
	name := p.page.Locator(locator.SelDetailsName)
	if err := wait.Until(wait.Visible(name, "product detail name"), p.cfg.Timeout); err != nil {
		return err
	}
	if expectedName != "" {
		text, err := name.InnerText()
		if err != nil {
			return errs.Wrap(errs.ElementNotFound, "read product detail name", err)
		}
		if strings.TrimSpace(text) != expectedName {
			return errs.Errorf(errs.AssertionMismatch,
				"product detail name: expected %q, actual %q", expectedName, strings.TrimSpace(text))
		}
	}
	if err := wait.Until(wait.Visible(p.page.Locator(locator.SelDetailsDesc), "product detail description"), p.cfg.Timeout); err != nil {
		return err
	}
	if err := wait.Until(wait.Visible(p.page.Locator(locator.SelDetailsPrice), "product detail price"), p.cfg.Timeout); err != nil {
		return err
	}
	if url := p.page.URL(); !ProductDetailURLPattern.MatchString(url) {
		return errs.Errorf(errs.NavigationUnexpected,
			"expected a product detail URL matching %s, but at %s", ProductDetailURLPattern, url)
	}
	return nil
}

// BackToProducts returns to the inventory screen.
func (p *ProductPage) BackToProducts() error {
	return actions.Click(p.page.Locator(locator.SelBackHome), "back to products button")
}
