package pages

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestExpectedNameOrder(t *testing.T) {
	names := []string{
		"Sauce Labs Onesie",
		"Sauce Labs Backpack",
		"Sauce Labs Bolt T-Shirt",
	}

	asc := expectedNameOrder(names, SortNameAsc)
	require.Empty(t, cmp.Diff([]string{
		"Sauce Labs Backpack",
		"Sauce Labs Bolt T-Shirt",
		"Sauce Labs Onesie",
	}, asc))

	desc := expectedNameOrder(names, SortNameDesc)
	require.Empty(t, cmp.Diff([]string{
		"Sauce Labs Onesie",
		"Sauce Labs Bolt T-Shirt",
		"Sauce Labs Backpack",
	}, desc))

	// The input must not be reordered in place.
	require.Equal(t, "Sauce Labs Onesie", names[0])
}

func TestExpectedNameOrderProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOf(rapid.StringMatching(`[A-Za-z ]{0,12}`)).Draw(t, "names")
		mode := rapid.SampledFrom(AllSortModes).Draw(t, "mode")

		got := expectedNameOrder(names, mode)
		require.Len(t, got, len(names))

		for i := 1; i < len(got); i++ {
			if mode.descending() {
				require.GreaterOrEqual(t, got[i-1], got[i])
			} else {
				require.LessOrEqual(t, got[i-1], got[i])
			}
		}

		// Same multiset as the input.
		want := append([]string(nil), names...)
		sort.Strings(want)
		perm := append([]string(nil), got...)
		sort.Strings(perm)
		require.Equal(t, want, perm)
	})
}

func TestExpectedPriceOrderNumeric(t *testing.T) {
	// Lexicographic order would put $15.99 before $7.99.
	prices := []string{"$15.99", "$7.99", "$49.99", "$9.99"}

	asc, err := expectedPriceOrder(prices, SortPriceAsc)
	require.NoError(t, err)
	require.Equal(t, []string{"$7.99", "$9.99", "$15.99", "$49.99"}, asc)

	desc, err := expectedPriceOrder(prices, SortPriceDesc)
	require.NoError(t, err)
	require.Equal(t, []string{"$49.99", "$15.99", "$9.99", "$7.99"}, desc)
}

func TestExpectedPriceOrderStableOnTies(t *testing.T) {
	prices := []string{"$9.99", "$7.99", "$9.99", "$7.99"}

	asc, err := expectedPriceOrder(prices, SortPriceAsc)
	require.NoError(t, err)
	require.Equal(t, []string{"$7.99", "$7.99", "$9.99", "$9.99"}, asc)
}

func TestExpectedPriceOrderRejectsMalformedText(t *testing.T) {
	_, err := expectedPriceOrder([]string{"$9.99", "free"}, SortPriceAsc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 1")
}

func TestSequencesEqual(t *testing.T) {
	require.True(t, sequencesEqual(nil, nil))
	require.True(t, sequencesEqual([]string{"a", "b"}, []string{"a", "b"}))
	require.False(t, sequencesEqual([]string{"a", "b"}, []string{"b", "a"}))
	require.False(t, sequencesEqual([]string{"a"}, []string{"a", "a"}))
}

func TestSequenceDiffNamesBothSides(t *testing.T) {
	diff := sequenceDiff([]string{"a", "b", "c"}, []string{"a", "c", "b"})
	require.Contains(t, diff, "Expected")
	require.Contains(t, diff, "Observed")
	require.True(t, strings.Contains(diff, "+") && strings.Contains(diff, "-"))
}
