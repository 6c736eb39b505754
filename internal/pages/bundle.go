package pages

import (
	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/prianti29/swaglab-heist/internal/config"
)

// Bundle groups one page object per storefront screen, all bound to the
// same browser page. Construct one per test.
type Bundle struct {
	Login            *LoginPage
	Inventory        *InventoryPage
	Cart             *CartPage
	Checkout         *CheckoutPage
	CheckoutOverview *CheckoutOverviewPage
	CheckoutComplete *CheckoutCompletePage
	Product          *ProductPage
	Footer           *FooterPage
}

// NewBundle builds page objects for every screen against one page.
func NewBundle(page playwright.Page, cfg *config.Config) *Bundle {
	return &Bundle{
		Login:            NewLoginPage(page, cfg),
		Inventory:        NewInventoryPage(page, cfg),
		Cart:             NewCartPage(page, cfg),
		Checkout:         NewCheckoutPage(page, cfg),
		CheckoutOverview: NewCheckoutOverviewPage(page, cfg),
		CheckoutComplete: NewCheckoutCompletePage(page, cfg),
		Product:          NewProductPage(page, cfg),
		Footer:           NewFooterPage(page, cfg),
	}
}

// UniqueCheckoutInfo returns checkout data with a unique postal code so
// concurrent runs against a shared deployment never collide on identity.
func UniqueCheckoutInfo(firstName, lastName string) CheckoutInfo {
	return CheckoutInfo{
		FirstName:  firstName,
		LastName:   lastName,
		PostalCode: uuid.NewString()[:8],
	}
}
