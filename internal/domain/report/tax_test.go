package report

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestCalculateTax_FirstBracket(t *testing.T) {
	// Entire first bracket taxed flat at 18%.
	if got := CalculateTax(100000); !almostEqual(got, 18000) {
		t.Fatalf("tax(100000) = %v, want 18000", got)
	}
	// Exactly on the first bound: 18% of 237100 = 42678, which equals
	// the second bracket's base tax — the schedule is continuous.
	if got := CalculateTax(237100); !almostEqual(got, 42678) {
		t.Fatalf("tax(237100) = %v, want 42678", got)
	}
}

func TestCalculateTax_SecondBracketProgressive(t *testing.T) {
	// 300000 → 42678 + 26% × (300000 − 237100).
	want := 42678 + 0.26*62900
	if got := CalculateTax(300000); !almostEqual(got, want) {
		t.Fatalf("tax(300000) = %v, want %v", got, want)
	}
	// The replaced system degenerated to base tax alone here (42678);
	// the progressive result must differ from it.
	if got := CalculateTax(300000); almostEqual(got, 42678) {
		t.Fatal("tax(300000) collapsed to base tax; marginal slice not applied")
	}
}

func TestCalculateTax_AllBracketLowerEdges(t *testing.T) {
	// Just above each bound the tax must equal that bracket's base tax
	// plus a vanishing marginal slice.
	cases := []struct {
		amount float64
		base   float64
	}{
		{237100, 42678},
		{370500, 77362},
		{512800, 121475},
		{673000, 179147},
		{857900, 251258},
		{1817000, 644489},
	}
	for _, tc := range cases {
		got := CalculateTax(tc.amount + 0.01)
		if math.Abs(got-tc.base) > 0.01 {
			t.Errorf("tax(%v+ε) = %v, want ≈ base %v", tc.amount, got, tc.base)
		}
	}
}

func TestCalculateTax_TopBracket(t *testing.T) {
	want := 644489 + 0.45*(2000000-1817000)
	if got := CalculateTax(2000000); !almostEqual(got, want) {
		t.Fatalf("tax(2000000) = %v, want %v", got, want)
	}
}

func TestCalculateTax_ZeroAndNegative(t *testing.T) {
	if got := CalculateTax(0); got != 0 {
		t.Fatalf("tax(0) = %v", got)
	}
	if got := CalculateTax(-50); got != 0 {
		t.Fatalf("tax(-50) = %v", got)
	}
}

func TestNetPay(t *testing.T) {
	gross := 450.0
	want := gross - 0.18*gross
	if got := NetPay(gross); !almostEqual(got, want) {
		t.Fatalf("NetPay(450) = %v, want %v", got, want)
	}
}
