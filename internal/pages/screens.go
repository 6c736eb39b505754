package pages

import (
	"net/url"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/wait"
)

// The storefront's fixed path scheme. The checkout flow walks
// Cart -> InfoEntry -> Overview -> Complete, with cancel escapes back
// to Cart and Inventory respectively.
const (
	PathInventory        = "/inventory.html"
	PathCart             = "/cart.html"
	PathCheckoutInfo     = "/checkout-step-one.html"
	PathCheckoutOverview = "/checkout-step-two.html"
	PathCheckoutComplete = "/checkout-complete.html"
	PathProductDetail    = "/inventory-item.html"
)

// ProductDetailURLPattern matches a product detail URL with a numeric id.
var ProductDetailURLPattern = regexp.MustCompile(`inventory-item\.html\?id=\d+`)

func currentPath(page playwright.Page) string {
	u, err := url.Parse(page.URL())
	if err != nil {
		return page.URL()
	}
	return u.Path
}

// VerifyOnScreen asserts the page reaches the given path within the
// timeout. Transitions triggered by a just-dispatched click may still
// be in flight, so this waits rather than sampling the URL once.
func VerifyOnScreen(page playwright.Page, wantPath, screen string, timeout time.Duration) error {
	if err := wait.Until(wait.URLMatches(page, urlGlob(wantPath)), timeout); err != nil {
		return errs.Errorf(errs.NavigationUnexpected,
			"expected to be on the %s screen (%s), but at %s", screen, wantPath, page.URL())
	}
	return nil
}

// VerifyNotOnScreen asserts the page is anywhere but the given path.
func VerifyNotOnScreen(page playwright.Page, path, screen string) error {
	if got := currentPath(page); got == path {
		return errs.Errorf(errs.NavigationUnexpected,
			"unexpectedly reached the %s screen (%s)", screen, path)
	}
	return nil
}

// urlGlob builds a WaitForURL glob matching any origin plus the path.
func urlGlob(path string) string {
	return "**" + path
}
