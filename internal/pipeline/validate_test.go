package pipeline

import (
	"strings"
	"testing"
)

func TestValidateInvoiceTotalsConsistent(t *testing.T) {
	m := map[string]any{
		"subtotal": 100.0,
		"tax":      8.5,
		"total":    108.5,
		"lines": []any{
			map[string]any{"line_total": 60.0},
			map[string]any{"line_total": 40.0},
		},
	}
	if warnings := ValidateInvoiceTotals(m); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestValidateInvoiceTotalsWithinTolerance(t *testing.T) {
	// rounding drift under a cent either way is allowed
	m := map[string]any{
		"subtotal": 100.0,
		"tax":      8.50,
		"total":    108.51,
	}
	if warnings := ValidateInvoiceTotals(m); len(warnings) != 0 {
		t.Fatalf("unexpected warnings at tolerance boundary: %v", warnings)
	}
}

func TestValidateInvoiceTotalsBeyondTolerance(t *testing.T) {
	m := map[string]any{
		"subtotal": 100.0,
		"tax":      8.50,
		"total":    110.00,
	}
	warnings := ValidateInvoiceTotals(m)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	want := "Total validation warning: subtotal (100.00) + tax (8.50) = 108.50, but total is 110.00 (diff: 1.50)"
	if warnings[0] != want {
		t.Fatalf("warning = %q, want %q", warnings[0], want)
	}
}

func TestValidateInvoiceTotalsToleranceBoundary(t *testing.T) {
	// a drift of exactly two cents is silent, anything past it warns
	atBoundary := map[string]any{
		"subtotal": 100.0,
		"tax":      8.50,
		"total":    108.52,
	}
	if warnings := ValidateInvoiceTotals(atBoundary); len(warnings) != 0 {
		t.Fatalf("unexpected warnings at exactly 0.02: %v", warnings)
	}

	pastBoundary := map[string]any{
		"subtotal": 100.0,
		"tax":      0.0,
		"total":    100.0201,
	}
	warnings := ValidateInvoiceTotals(pastBoundary)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one past 0.02", warnings)
	}
	if !strings.HasPrefix(warnings[0], "Total validation warning:") {
		t.Fatalf("warning = %q", warnings[0])
	}
}

func TestValidateInvoiceTotalsNumericStrings(t *testing.T) {
	// models quote numbers sometimes; quoted totals are still checked
	m := map[string]any{
		"subtotal": "100.00",
		"tax":      "5.00",
		"total":    "90.00",
	}
	warnings := ValidateInvoiceTotals(m)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	want := "Total validation warning: subtotal (100.00) + tax (5.00) = 105.00, but total is 90.00 (diff: 15.00)"
	if warnings[0] != want {
		t.Fatalf("warning = %q, want %q", warnings[0], want)
	}
}

func TestValidateInvoiceTotalsEmptyLinesArray(t *testing.T) {
	// an empty lines array sums to zero, which disagrees with any
	// non-zero subtotal
	m := map[string]any{
		"subtotal": 100.0,
		"lines":    []any{},
	}
	warnings := ValidateInvoiceTotals(m)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	want := "Line items total (0.00) does not match subtotal (100.00) (diff: 100.00)"
	if warnings[0] != want {
		t.Fatalf("warning = %q, want %q", warnings[0], want)
	}
}

func TestValidateInvoiceTotalsAllNonNumericLines(t *testing.T) {
	m := map[string]any{
		"subtotal": 100.0,
		"lines": []any{
			map[string]any{"line_total": "n/a"},
			"free text",
		},
	}
	warnings := ValidateInvoiceTotals(m)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if !strings.HasPrefix(warnings[0], "Line items total (0.00)") {
		t.Fatalf("warning = %q", warnings[0])
	}
}

func TestValidateInvoiceTotalsLineMismatch(t *testing.T) {
	m := map[string]any{
		"subtotal": 100.0,
		"tax":      0.0,
		"total":    100.0,
		"lines": []any{
			map[string]any{"line_total": 30.0},
			map[string]any{"line_total": 30.0},
		},
	}
	warnings := ValidateInvoiceTotals(m)
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	want := "Line items total (60.00) does not match subtotal (100.00) (diff: 40.00)"
	if warnings[0] != want {
		t.Fatalf("warning = %q, want %q", warnings[0], want)
	}
}

func TestValidateInvoiceTotalsSkipsNonNumericLines(t *testing.T) {
	m := map[string]any{
		"subtotal": 50.0,
		"lines": []any{
			"free text the model hallucinated",
			map[string]any{"line_total": "n/a"},
			map[string]any{"line_total": 50.0},
		},
	}
	if warnings := ValidateInvoiceTotals(m); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestValidateInvoiceTotalsMissingFields(t *testing.T) {
	// nothing to check means nothing to warn about
	if warnings := ValidateInvoiceTotals(map[string]any{"vendor_name": "Acme"}); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestValidateInvoiceTotalsBothWarnings(t *testing.T) {
	m := map[string]any{
		"subtotal": 100.0,
		"tax":      5.0,
		"total":    90.0,
		"lines": []any{
			map[string]any{"line_total": 10.0},
		},
	}
	warnings := ValidateInvoiceTotals(m)
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want two", warnings)
	}
	if !strings.HasPrefix(warnings[0], "Total validation warning:") {
		t.Fatalf("first warning = %q", warnings[0])
	}
	if !strings.HasPrefix(warnings[1], "Line items total") {
		t.Fatalf("second warning = %q", warnings[1])
	}
}
