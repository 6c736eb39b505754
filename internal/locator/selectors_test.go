package locator

import (
	"strings"
	"testing"
)

// The selector table is the one place test markup addressing lives;
// these checks catch typos that would otherwise only surface as opaque
// wait timeouts against the live site.

func TestDataTestSelectors_WellFormed(t *testing.T) {
	for _, sel := range []string{
		SelErrorBox, SelFirstName, SelLastName, SelPostalCode,
		SelAddress, SelPaymentSelect, SelContinue, SelCancel,
	} {
		if !strings.HasPrefix(sel, `[data-test="`) || !strings.HasSuffix(sel, `"]`) {
			t.Errorf("selector %q is not a data-test attribute selector", sel)
		}
	}
}

func TestRowButtonSelectors_UseIDPrefixMatch(t *testing.T) {
	for _, sel := range []string{SelAddToCartByRow, SelRemoveByRow} {
		if !strings.HasPrefix(sel, `button[id^="`) {
			t.Errorf("selector %q should match buttons by id prefix", sel)
		}
	}
}

func TestClassSelectors_SingleClass(t *testing.T) {
	for _, sel := range []string{
		SelLoginLogo, SelInventoryItem, SelItemName, SelItemDesc,
		SelItemPrice, SelSortContainer, SelCartBadge, SelCartLink,
		SelCartItem, SelCartQuantity, SelSubtotalLabel, SelTaxLabel,
		SelTotalLabel, SelSummaryValue, SelCompleteHeader,
		SelDetailsName, SelDetailsDesc, SelDetailsPrice, SelCopyright,
	} {
		if !strings.HasPrefix(sel, ".") {
			t.Errorf("selector %q should be class-based", sel)
		}
		if strings.ContainsAny(sel, " >") {
			t.Errorf("selector %q should not be a compound selector", sel)
		}
	}
}

func TestSummaryIndexes_Distinct(t *testing.T) {
	idx := map[int]string{
		SummaryPaymentIdx: "payment",
		SummaryShipIdx:    "shipping",
		SummaryAddressIdx: "address",
	}
	if len(idx) != 3 {
		t.Fatalf("summary label indexes collide: %v", idx)
	}
}
