// Package locator resolves semantic UI references into Playwright
// locator handles. Resolution is lazy: building a handle never fails on
// zero matches, and handles are rebuilt on each access rather than
// cached across navigations. Text filters use substring containment so
// surrounding markup does not break a match.
package locator

import (
	"github.com/playwright-community/playwright-go"
)

// InventoryItem returns the single inventory row containing the product
// name. Scoping controls to the row keeps same-named buttons on other
// rows out of reach.
func InventoryItem(page playwright.Page, name string) playwright.Locator {
	return page.Locator(SelInventoryItem, playwright.PageLocatorOptions{HasText: name})
}

// CartItem returns the single cart row containing the product name.
func CartItem(page playwright.Page, name string) playwright.Locator {
	return page.Locator(SelCartItem, playwright.PageLocatorOptions{HasText: name})
}

// AddToCartButton returns the add button inside a product row.
func AddToCartButton(row playwright.Locator) playwright.Locator {
	return row.Locator(SelAddToCartByRow)
}

// RemoveButton returns the remove button inside a product or cart row.
func RemoveButton(row playwright.Locator) playwright.Locator {
	return row.Locator(SelRemoveByRow)
}

// UsernameInput resolves the login username field by accessible name.
func UsernameInput(page playwright.Page) playwright.Locator {
	return page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{Name: RoleNameUsername})
}

// PasswordInput resolves the login password field by accessible name.
func PasswordInput(page playwright.Page) playwright.Locator {
	return page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{Name: RoleNamePassword})
}

// MenuButton resolves the burger-menu toggle.
func MenuButton(page playwright.Page) playwright.Locator {
	return page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: RoleNameOpenMenu})
}

// MenuLink resolves a side-menu link by its accessible name.
func MenuLink(page playwright.Page, name string) playwright.Locator {
	return page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: name})
}

// SummaryValue resolves one of the overview summary value labels by
// position (payment, shipping, address).
func SummaryValue(page playwright.Page, idx int) playwright.Locator {
	return page.Locator(SelSummaryValue).Nth(idx)
}
