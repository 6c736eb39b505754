package pages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/actions"
	"github.com/prianti29/swaglab-heist/internal/config"
	"github.com/prianti29/swaglab-heist/internal/errs"
	"github.com/prianti29/swaglab-heist/internal/locator"
	"github.com/prianti29/swaglab-heist/internal/money"
	"github.com/prianti29/swaglab-heist/internal/wait"
)

// ProductNamePrefix is the catalogue's fixed naming convention. One row
// ("Test.allTheThings() T-Shirt (Red)") deliberately violates it on the
// live deployment; the prefix check exists to flag exactly that.
const ProductNamePrefix = "Sauce Labs "

// descSyntaxLeak is the code-like fragment a known catalogue defect
// leaks into a product description.
const descSyntaxLeak = "carry.allTheThings()"

// InventoryPage drives the product catalogue screen.
type InventoryPage struct {
	page playwright.Page
	cfg  *config.Config
}

// NewInventoryPage binds an inventory page object to a browser page.
func NewInventoryPage(page playwright.Page, cfg *config.Config) *InventoryPage {
	return &InventoryPage{page: page, cfg: cfg}
}

// VerifyOn asserts the browser is on the inventory screen.
func (p *InventoryPage) VerifyOn() error {
	return VerifyOnScreen(p.page, PathInventory, "inventory", p.cfg.Timeout)
}

// VerifyHeaderLogo asserts the header reads "Swag Labs".
func (p *InventoryPage) VerifyHeaderLogo() error {
	logo := p.page.Locator(locator.SelAppLogo)
	return wait.Until(wait.TextIs(logo, "header logo", "Swag Labs"), p.cfg.Timeout)
}

// AddItemToCart clicks the add button inside the named product's row.
func (p *InventoryPage) AddItemToCart(name string) error {
	row := locator.InventoryItem(p.page, name)
	return actions.Click(locator.AddToCartButton(row), "add-to-cart button for "+name)
}

// RemoveItemFromCart clicks the remove button inside the named product's row.
func (p *InventoryPage) RemoveItemFromCart(name string) error {
	row := locator.InventoryItem(p.page, name)
	return actions.Click(locator.RemoveButton(row), "remove button for "+name)
}

// VerifyRemoveButton asserts the named product's button flipped to "Remove".
func (p *InventoryPage) VerifyRemoveButton(name string) error {
	button := locator.RemoveButton(locator.InventoryItem(p.page, name))
	if err := wait.Until(wait.Visible(button, "remove button for "+name), p.cfg.Timeout); err != nil {
		return err
	}
	text, err := button.InnerText()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read remove button text for "+name, err)
	}
	if strings.TrimSpace(text) != "Remove" {
		return errs.Errorf(errs.AssertionMismatch,
			"button for %q: expected %q, actual %q", name, "Remove", strings.TrimSpace(text))
	}
	return nil
}

// VerifyCartCount asserts the badge shows count, or is absent for zero.
func (p *InventoryPage) VerifyCartCount(count int) error {
	badge := p.page.Locator(locator.SelCartBadge)
	if count == 0 {
		return wait.Until(wait.Hidden(badge, "cart badge"), p.cfg.Timeout)
	}
	return wait.Until(wait.TextIs(badge, "cart badge", strconv.Itoa(count)), p.cfg.Timeout)
}

// NavigateToCart opens the cart screen via the cart icon.
func (p *InventoryPage) NavigateToCart() error {
	return actions.Click(p.page.Locator(locator.SelCartLink), "cart link")
}

// NavigateToProduct opens a product's detail page by clicking its name.
func (p *InventoryPage) NavigateToProduct(name string) error {
	item := p.page.Locator(locator.SelItemName, playwright.PageLocatorOptions{HasText: name})
	return actions.Click(item, "product name "+name)
}

// SelectSort picks a mode in the sort dropdown.
func (p *InventoryPage) SelectSort(mode SortMode) error {
	return actions.SelectOption(p.page.Locator(locator.SelSortContainer), "sort dropdown", string(mode))
}

// SortOption reads the dropdown's current value.
func (p *InventoryPage) SortOption() (SortMode, error) {
	value, err := p.page.Locator(locator.SelSortContainer).InputValue()
	if err != nil {
		return "", errs.Wrap(errs.ElementNotFound, "read sort dropdown value", err)
	}
	return SortMode(value), nil
}

// ProductNames returns the rendered product names in page order.
func (p *InventoryPage) ProductNames() ([]string, error) {
	names, err := p.page.Locator(locator.SelItemName).AllInnerTexts()
	if err != nil {
		return nil, errs.Wrap(errs.ElementNotFound, "read product names", err)
	}
	return names, nil
}

// ProductPrices returns the rendered prices in page order.
func (p *InventoryPage) ProductPrices() ([]string, error) {
	prices, err := p.page.Locator(locator.SelItemPrice).AllInnerTexts()
	if err != nil {
		return nil, errs.Wrap(errs.ElementNotFound, "read product prices", err)
	}
	return prices, nil
}

// VerifySortOrder asserts both that the dropdown shows the mode and
// that the rendered sequence equals a stably sorted copy of itself
// under the mode's comparator.
func (p *InventoryPage) VerifySortOrder(mode SortMode) error {
	current, err := p.SortOption()
	if err != nil {
		return err
	}
	if current != mode {
		return errs.Errorf(errs.AssertionMismatch,
			"sort dropdown: expected %q, actual %q", mode, current)
	}

	if mode.byPrice() {
		observed, err := p.ProductPrices()
		if err != nil {
			return err
		}
		expected, err := expectedPriceOrder(observed, mode)
		if err != nil {
			return errs.Wrap(errs.AssertionMismatch, "unparseable price in sorted sequence", err)
		}
		if !sequencesEqual(expected, observed) {
			return errs.Errorf(errs.AssertionMismatch,
				"products not sorted by price (%s):\n%s", mode, sequenceDiff(expected, observed))
		}
		return nil
	}

	observed, err := p.ProductNames()
	if err != nil {
		return err
	}
	expected := expectedNameOrder(observed, mode)
	if !sequencesEqual(expected, observed) {
		return errs.Errorf(errs.AssertionMismatch,
			"products not sorted by name (%s):\n%s", mode, sequenceDiff(expected, observed))
	}
	return nil
}

// VerifyProductNames asserts the catalogue renders exactly the expected
// names, in order.
func (p *InventoryPage) VerifyProductNames(expected []string) error {
	observed, err := p.ProductNames()
	if err != nil {
		return err
	}
	if !sequencesEqual(expected, observed) {
		return errs.Errorf(errs.AssertionMismatch,
			"product names:\n%s", sequenceDiff(expected, observed))
	}
	return nil
}

// VerifyProductNamePrefix asserts every product name starts with the
// catalogue's fixed prefix, naming the offenders otherwise.
func (p *InventoryPage) VerifyProductNamePrefix() error {
	names, err := p.ProductNames()
	if err != nil {
		return err
	}
	var mismatched []string
	for _, name := range names {
		if !strings.HasPrefix(name, ProductNamePrefix) {
			mismatched = append(mismatched, name)
		}
	}
	if len(mismatched) > 0 {
		return errs.Errorf(errs.AssertionMismatch,
			"products not following the %q format: %s", ProductNamePrefix, strings.Join(mismatched, ", "))
	}
	return nil
}

// VerifyProductPriceFormat asserts every rendered price matches $D.DD.
func (p *InventoryPage) VerifyProductPriceFormat() error {
	prices, err := p.ProductPrices()
	if err != nil {
		return err
	}
	for i, price := range prices {
		if !money.PricePattern.MatchString(strings.TrimSpace(price)) {
			return errs.Errorf(errs.AssertionMismatch,
				"price of row %d: expected format %s, actual %q", i, money.PricePattern, price)
		}
	}
	return nil
}

// VerifyProductDescriptions asserts every product has a non-empty
// description free of the known code-syntax leak.
func (p *InventoryPage) VerifyProductDescriptions() error {
	rows, err := p.page.Locator(locator.SelInventoryItem).All()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "resolve inventory rows", err)
	}
	for _, row := range rows {
		name, err := row.Locator(locator.SelItemName).InnerText()
		if err != nil {
			return errs.Wrap(errs.ElementNotFound, "read product name", err)
		}
		desc, err := row.Locator(locator.SelItemDesc).InnerText()
		if err != nil {
			return errs.Wrap(errs.ElementNotFound, "read description of "+name, err)
		}
		if strings.TrimSpace(desc) == "" {
			return errs.Errorf(errs.AssertionMismatch, "product %q has an empty description", name)
		}
		if strings.Contains(desc, descSyntaxLeak) {
			return errs.Errorf(errs.AssertionMismatch,
				"product %q has invalid syntax in its description: %q", name, desc)
		}
	}
	return nil
}

// VerifyProductImagesUnique asserts no image asset is reused across
// rows: the set of sources must be as large as the sequence.
func (p *InventoryPage) VerifyProductImagesUnique() error {
	raw, err := p.page.Locator(locator.SelItemImage).EvaluateAll("imgs => imgs.map(img => img.src)", nil)
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "read product image sources", err)
	}
	srcs, ok := raw.([]any)
	if !ok {
		return errs.Errorf(errs.Internal, "unexpected image source payload %T", raw)
	}
	seen := make(map[string]struct{}, len(srcs))
	for _, src := range srcs {
		seen[src.(string)] = struct{}{}
	}
	if len(seen) != len(srcs) {
		return errs.Errorf(errs.AssertionMismatch,
			"found %d unique images for %d products; duplicate assets across rows", len(seen), len(srcs))
	}
	return nil
}

// VerifyNoBrokenImages asserts every image on the page actually loaded.
// A broken image reports naturalWidth of zero.
func (p *InventoryPage) VerifyNoBrokenImages() error {
	images, err := p.page.Locator("img").All()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "resolve page images", err)
	}
	for _, img := range images {
		broken, err := img.Evaluate(
			"node => !node.complete || (typeof node.naturalWidth !== 'undefined' && node.naturalWidth === 0)",
			nil,
		)
		if err != nil {
			return errs.Wrap(errs.Internal, "probe image load state", err)
		}
		if b, ok := broken.(bool); ok && b {
			src, _ := img.GetAttribute("src")
			return errs.Errorf(errs.AssertionMismatch, "image with src %q is broken", src)
		}
	}
	return nil
}

func (p *InventoryPage) openMenu() error {
	return actions.Click(locator.MenuButton(p.page), "menu button")
}

func (p *InventoryPage) clickMenuLink(name string) error {
	if err := p.openMenu(); err != nil {
		return err
	}
	link := locator.MenuLink(p.page, name)
	if err := wait.Until(wait.Visible(link, name+" menu link"), p.cfg.Timeout); err != nil {
		return err
	}
	return actions.Click(link, name+" menu link")
}

// Logout opens the side menu and logs out.
func (p *InventoryPage) Logout() error {
	return p.clickMenuLink(locator.RoleNameLogout)
}

// NavigateToAbout opens the side menu and follows the About link.
func (p *InventoryPage) NavigateToAbout() error {
	return p.clickMenuLink(locator.RoleNameAbout)
}

// NavigateToResetAppState opens the side menu and resets app state.
func (p *InventoryPage) NavigateToResetAppState() error {
	return p.clickMenuLink(locator.RoleNameResetAppState)
}

// VerifySideMenuLabels opens the side menu and asserts all four links
// render with their expected labels.
func (p *InventoryPage) VerifySideMenuLabels() error {
	if err := p.openMenu(); err != nil {
		return err
	}
	for _, label := range []string{
		locator.RoleNameAllItems,
		locator.RoleNameAbout,
		locator.RoleNameLogout,
		locator.RoleNameResetAppState,
	} {
		link := locator.MenuLink(p.page, label)
		if err := wait.Until(wait.Visible(link, label+" menu link"), p.cfg.Timeout); err != nil {
			return err
		}
		text, err := link.InnerText()
		if err != nil {
			return errs.Wrap(errs.ElementNotFound, "read "+label+" menu link text", err)
		}
		if strings.TrimSpace(text) != label {
			return errs.Errorf(errs.AssertionMismatch,
				"menu link: expected %q, actual %q", label, strings.TrimSpace(text))
		}
	}
	return nil
}

// allItemsStyleProbe renders the computed properties a selection
// highlight would change into one comparable string.
const allItemsStyleProbe = `el => {
	const s = window.getComputedStyle(el);
	return s.color + "|" + s.fontWeight + "|" + s.backgroundColor;
}`

// VerifyAllItemsHighlight opens the side menu, clicks All Items, and
// asserts the link renders highlighted: its computed style must change
// on selection, and the menu must close afterwards. The reference
// deployment leaves the style untouched, which this flags.
func (p *InventoryPage) VerifyAllItemsHighlight() error {
	if err := p.openMenu(); err != nil {
		return err
	}
	link := locator.MenuLink(p.page, locator.RoleNameAllItems)
	if err := wait.Until(wait.Visible(link, locator.RoleNameAllItems+" menu link"), p.cfg.Timeout); err != nil {
		return err
	}

	before, err := link.Evaluate(allItemsStyleProbe, nil)
	if err != nil {
		return errs.Wrap(errs.Internal, "probe All Items style", err)
	}
	if err := actions.Click(link, locator.RoleNameAllItems+" menu link"); err != nil {
		return err
	}
	after, err := link.Evaluate(allItemsStyleProbe, nil)
	if err != nil {
		return errs.Wrap(errs.Internal, "probe All Items style after click", err)
	}
	if fmt.Sprint(before) == fmt.Sprint(after) {
		return errs.Errorf(errs.AssertionMismatch,
			"All Items link not highlighted on selection: computed style unchanged (%v)", before)
	}

	// The click must at least have closed the menu; a short budget so a
	// stuck menu fails fast.
	return wait.Until(wait.Hidden(link, locator.RoleNameAllItems+" menu link"), 2*time.Second)
}

// VerifyCartIcon asserts the cart icon behaves: link always visible,
// badge absent when empty, appearing with a count after an add, and
// gone again after the remove.
func (p *InventoryPage) VerifyCartIcon(probeProduct string) error {
	if err := wait.Until(wait.Visible(p.page.Locator(locator.SelCartLink), "cart link"), p.cfg.Timeout); err != nil {
		return err
	}
	if err := p.VerifyCartCount(0); err != nil {
		return err
	}
	if err := p.AddItemToCart(probeProduct); err != nil {
		return err
	}
	if err := p.VerifyCartCount(1); err != nil {
		return err
	}
	if err := p.RemoveItemFromCart(probeProduct); err != nil {
		return err
	}
	return p.VerifyCartCount(0)
}

// VerifyResetAppState changes state (one cart line, a non-default sort),
// resets, reloads, and asserts the defaults came back.
func (p *InventoryPage) VerifyResetAppState(probeProduct string) error {
	badge := p.page.Locator(locator.SelCartBadge)
	count, err := badge.Count()
	if err != nil {
		return errs.Wrap(errs.ElementNotFound, "probe cart badge", err)
	}
	if count == 0 {
		if err := p.AddItemToCart(probeProduct); err != nil {
			return err
		}
	}
	if err := p.SelectSort(SortPriceDesc); err != nil {
		return err
	}
	if err := wait.Until(wait.Visible(badge, "cart badge"), p.cfg.Timeout); err != nil {
		return err
	}

	if err := p.NavigateToResetAppState(); err != nil {
		return err
	}
	// The UI does not repaint everything on reset; force a refresh.
	if _, err := p.page.Reload(); err != nil {
		return errs.Wrap(errs.NavigationUnexpected, "reload after reset", err)
	}

	if err := p.VerifyCartCount(0); err != nil {
		return err
	}
	return p.VerifySortOrder(SortNameAsc)
}
