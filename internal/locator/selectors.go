package locator

// CSS selectors for the storefront DOM, centralized so every screen's
// page object addresses the same markup the same way.

// Login screen.
const (
	SelLoginLogo   = ".login_logo"
	SelLoginButton = "#login-button"
	SelErrorBox    = `[data-test="error"]`
)

// Inventory screen.
const (
	SelAppLogo        = "div.app_logo"
	SelInventoryItem  = ".inventory_item"
	SelItemName       = ".inventory_item_name"
	SelItemDesc       = ".inventory_item_desc"
	SelItemPrice      = ".inventory_item_price"
	SelItemImage      = ".inventory_item_img img"
	SelSortContainer  = ".product_sort_container"
	SelCartBadge      = ".shopping_cart_badge"
	SelCartLink       = ".shopping_cart_link"
	SelAddToCartByRow = `button[id^="add-to-cart"]`
	SelRemoveByRow    = `button[id^="remove"]`
)

// Cart screen.
const (
	SelCartItem         = ".cart_item"
	SelCartQuantity     = ".cart_quantity"
	SelCheckoutButton   = "#checkout"
	SelContinueShopping = "#continue-shopping"
)

// Checkout information screen.
const (
	SelFirstName     = `[data-test="firstName"]`
	SelLastName      = `[data-test="lastName"]`
	SelPostalCode    = `[data-test="postalCode"]`
	SelAddress       = `[data-test="address"]`
	SelPaymentSelect = `[data-test="paymentMethod"]`
	SelContinue      = `[data-test="continue"]`
	SelCancel        = `[data-test="cancel"]`
)

// Checkout overview screen.
const (
	SelFinishButton   = "#finish"
	SelCancelButton   = "#cancel"
	SelSubtotalLabel  = ".summary_subtotal_label"
	SelTaxLabel       = ".summary_tax_label"
	SelTotalLabel     = ".summary_total_label"
	SelSummaryValue   = ".summary_value_label"
	SummaryPaymentIdx = 0
	SummaryShipIdx    = 1
	SummaryAddressIdx = 2
)

// Checkout complete screen.
const (
	SelCompleteHeader = ".complete-header"
	SelBackHome       = "#back-to-products"
)

// Product detail screen.
const (
	SelDetailsName  = ".inventory_details_name"
	SelDetailsDesc  = ".inventory_details_desc"
	SelDetailsPrice = ".inventory_details_price"
)

// Footer.
const (
	SelTwitterLink  = ".social_twitter a"
	SelFacebookLink = ".social_facebook a"
	SelLinkedInLink = ".social_linkedin a"
	SelCopyright    = ".footer_copy"
)

// Accessible names used with role lookups.
const (
	RoleNameUsername      = "Username"
	RoleNamePassword      = "Password"
	RoleNameOpenMenu      = "Open Menu"
	RoleNameLogout        = "Logout"
	RoleNameAllItems      = "All Items"
	RoleNameAbout         = "About"
	RoleNameResetAppState = "Reset App State"
)
