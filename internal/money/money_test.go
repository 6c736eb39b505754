package money

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func testParseFormat_Roundtrip(t *rapid.T) {
	cents := rapid.Int64Range(0, 99_999_99).Draw(t, "cents")
	parsed, err := ParseCents(FormatCents(cents))
	if err != nil {
		t.Fatalf("round trip of %d failed: %v", cents, err)
	}
	if parsed != cents {
		t.Fatalf("round trip of %d produced %d", cents, parsed)
	}
}

func TestParseFormat_Roundtrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testParseFormat_Roundtrip)
}

func testSumCents_MatchesScalarSum(t *rapid.T) {
	amounts := rapid.SliceOfN(rapid.Int64Range(0, 9999_99), 0, 12).Draw(t, "amounts")
	texts := make([]string, len(amounts))
	var want int64
	for i, cents := range amounts {
		texts[i] = FormatCents(cents)
		want += cents
	}
	got, err := SumCents(texts)
	if err != nil {
		t.Fatalf("SumCents failed: %v", err)
	}
	if got != want {
		t.Fatalf("SumCents = %d, want %d", got, want)
	}
}

func TestSumCents_MatchesScalarSum(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testSumCents_MatchesScalarSum)
}

func TestParseCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "$29.99", want: 2999},
		{in: "$9.99", want: 999},
		{in: "$0.00", want: 0},
		{in: " $15.99 ", want: 1599},
		{in: "Item total: $39.98", want: 3998},
		{in: "Tax: $3.20", want: 320},
		{in: "Total: $43.18", want: 4318},
		{in: "29.99", wantErr: true},
		{in: "$29.9", wantErr: true},
		{in: "$29.999", wantErr: true},
		{in: "$-1.00", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCents(%q) should fail, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCents(%q) failed: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseCents(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestKnownOrderArithmetic(t *testing.T) {
	t.Parallel()

	// Backpack + Bike Light: the reference order from the storefront.
	subtotal, err := SumCents([]string{"$29.99", "$9.99"})
	if err != nil {
		t.Fatalf("SumCents failed: %v", err)
	}
	if subtotal != 3998 {
		t.Fatalf("subtotal = %d, want 3998", subtotal)
	}
	tax := int64(320) // 8%, as rendered
	if got := FormatCents(subtotal + tax); got != "$43.18" {
		t.Fatalf("total = %s, want $43.18", got)
	}
}
