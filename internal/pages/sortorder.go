package pages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/prianti29/swaglab-heist/internal/money"
)

// SortMode is a value of the inventory sort dropdown.
type SortMode string

const (
	SortNameAsc   SortMode = "az"
	SortNameDesc  SortMode = "za"
	SortPriceAsc  SortMode = "lohi"
	SortPriceDesc SortMode = "hilo"
)

// AllSortModes lists every mode the dropdown offers.
var AllSortModes = []SortMode{SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}

// byPrice reports whether the mode orders rows by price rather than name.
func (m SortMode) byPrice() bool {
	return m == SortPriceAsc || m == SortPriceDesc
}

func (m SortMode) descending() bool {
	return m == SortNameDesc || m == SortPriceDesc
}

// expectedNameOrder returns a stably sorted copy of the observed names
// under the mode's lexicographic comparator. Ties keep their original
// relative order.
func expectedNameOrder(names []string, m SortMode) []string {
	expected := append([]string(nil), names...)
	sort.SliceStable(expected, func(i, j int) bool {
		if m.descending() {
			return expected[i] > expected[j]
		}
		return expected[i] < expected[j]
	})
	return expected
}

// expectedPriceOrder returns a stably sorted copy of the observed price
// texts, comparing the parsed amounts numerically.
func expectedPriceOrder(prices []string, m SortMode) ([]string, error) {
	cents := make([]int64, len(prices))
	for i, p := range prices {
		c, err := money.ParseCents(p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		cents[i] = c
	}
	type row struct {
		text  string
		cents int64
	}
	rows := make([]row, len(prices))
	for i := range prices {
		rows[i] = row{text: prices[i], cents: cents[i]}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if m.descending() {
			return rows[i].cents > rows[j].cents
		}
		return rows[i].cents < rows[j].cents
	})
	expected := make([]string, len(rows))
	for i, r := range rows {
		expected[i] = r.text
	}
	return expected, nil
}

// sequencesEqual compares two rendered sequences order-sensitively.
func sequencesEqual(expected, observed []string) bool {
	if len(expected) != len(observed) {
		return false
	}
	for i := range expected {
		if expected[i] != observed[i] {
			return false
		}
	}
	return true
}

// sequenceDiff renders a unified diff of expected vs observed for
// mismatch messages.
func sequenceDiff(expected, observed []string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(expected, "\n")),
		B:        difflib.SplitLines(strings.Join(observed, "\n")),
		FromFile: "Expected",
		ToFile:   "Observed",
		Context:  3,
	})
	if err != nil {
		return fmt.Sprintf("expected %v, observed %v", expected, observed)
	}
	return diff
}
