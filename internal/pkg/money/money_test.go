package money

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0", "₱0.00"},
		{"5", "₱5.00"},
		{"200", "₱200.00"},
		{"1000", "₱1,000.00"},
		{"45000", "₱45,000.00"},
		{"1234567.891", "₱1,234,567.89"},
		{"-50.5", "-₱50.50"},
		{"0.005", "₱0.01"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.input)
		if err != nil {
			t.Fatalf("bad test input %q: %v", c.input, err)
		}
		got := FormatCurrency(d)
		if got != c.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", c.input, got, c.want)
		}
	}
}

// Formatting must be stable across a format -> parse -> format round trip.
func TestFormatCurrencyRoundTrip(t *testing.T) {
	inputs := []string{"0", "0.1", "1", "999.99", "1000", "50000", "123456.78", "45000"}
	for _, in := range inputs {
		d, _ := decimal.NewFromString(in)
		once := FormatCurrency(d)
		parsed, err := ParseCurrency(once)
		if err != nil {
			t.Fatalf("ParseCurrency(%q) failed: %v", once, err)
		}
		twice := FormatCurrency(parsed)
		if once != twice {
			t.Errorf("round trip not stable for %s: %q != %q", in, once, twice)
		}
	}
}

func TestParseCurrencyMalformed(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "12x", "₱", "NaN", "--5"} {
		_, err := ParseCurrency(in)
		if err == nil {
			t.Errorf("ParseCurrency(%q) = nil error, want FormatError", in)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("ParseCurrency(%q) error type = %T, want *FormatError", in, err)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	got, err := FormatAmount("1000")
	if err != nil {
		t.Fatalf("FormatAmount(1000) error: %v", err)
	}
	if got != "₱1,000.00" {
		t.Errorf("FormatAmount(1000) = %q", got)
	}

	if _, err := FormatAmount("oops"); err == nil {
		t.Error("FormatAmount(oops) should fail")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&d); got != "20/01/2024" {
		t.Errorf("FormatDate = %q, want 20/01/2024", got)
	}
	if got := FormatDate(nil); got != "N/A" {
		t.Errorf("FormatDate(nil) = %q, want N/A", got)
	}
	var zero time.Time
	if got := FormatDate(&zero); got != "N/A" {
		t.Errorf("FormatDate(zero) = %q, want N/A", got)
	}
}

func TestFormatPeriod(t *testing.T) {
	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	if got := FormatPeriod(&start, &end); got != "Jan 05 - Jan 20" {
		t.Errorf("FormatPeriod = %q, want Jan 05 - Jan 20", got)
	}
	if got := FormatPeriod(nil, &end); got != "N/A" {
		t.Errorf("FormatPeriod(nil, end) = %q, want N/A", got)
	}
	if got := FormatPeriod(&start, nil); got != "N/A" {
		t.Errorf("FormatPeriod(start, nil) = %q, want N/A", got)
	}
}

func TestFallback(t *testing.T) {
	if got := Fallback(""); got != "N/A" {
		t.Errorf("Fallback(\"\") = %q", got)
	}
	if got := Fallback("  "); got != "N/A" {
		t.Errorf("Fallback(blank) = %q", got)
	}
	if got := Fallback("value"); got != "value" {
		t.Errorf("Fallback(value) = %q", got)
	}
}
