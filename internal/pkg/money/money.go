// Package money holds the currency and date formatting helpers used by the
// payslip document. All amounts render in a single fixed currency (PHP) with
// exactly two decimal places.
package money

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the fixed display currency for every payslip.
const CurrencySymbol = "₱"

// FormatError reports a malformed numeric input to the formatters. Callers
// surface it instead of letting garbage amounts flow into a rendered payslip.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed amount %q", e.Input)
}

// FormatCurrency renders d as a localized currency string, e.g. "₱1,234.56".
// Always two decimal places.
func FormatCurrency(d decimal.Decimal) string {
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	grouped := groupThousands(intPart)

	if neg {
		return "-" + CurrencySymbol + grouped + "." + fracPart
	}
	return CurrencySymbol + grouped + "." + fracPart
}

// ParseCurrency parses a formatted currency string (or a bare numeric string)
// back into a decimal. Returns *FormatError on anything non-numeric.
func ParseCurrency(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, CurrencySymbol, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return decimal.Decimal{}, &FormatError{Input: s}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, &FormatError{Input: s}
	}
	return d, nil
}

// FormatAmount parses a numeric string and renders it as currency. The two
// steps are separate so a malformed amount fails loudly instead of rendering
// a NaN-like artifact.
func FormatAmount(s string) (string, error) {
	d, err := ParseCurrency(s)
	if err != nil {
		return "", err
	}
	return FormatCurrency(d), nil
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// NotAvailable is the placeholder shown wherever data is absent.
const NotAvailable = "N/A"

// FormatDate renders t as dd/MM/yyyy, or "N/A" when t is nil or zero.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}
	return t.Format("02/01/2006")
}

// FormatPeriod renders a date range as a short label, e.g. "Jan 05 - Jan 20".
// Either endpoint missing renders "N/A".
func FormatPeriod(start, end *time.Time) string {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return NotAvailable
	}
	return start.Format("Jan 02") + " - " + end.Format("Jan 02")
}

// Fallback substitutes "N/A" for empty strings.
func Fallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}
