package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// totalTolerance is the absolute amount by which invoice arithmetic may
// drift before a warning is recorded. Vision models round, so exact
// equality is too strict.
const totalTolerance = 0.02

// ValidateInvoiceTotals cross-checks the numeric fields of a decoded
// invoice payload. It returns human-readable warnings and never fails
// the run: extraction output with inconsistent arithmetic is still
// persisted, warnings and all.
func ValidateInvoiceTotals(m map[string]any) []string {
	var warnings []string

	subtotal, hasSubtotal := asFloat(m["subtotal"])
	tax, hasTax := asFloat(m["tax"])
	total, hasTotal := asFloat(m["total"])

	if hasSubtotal && hasTax && hasTotal {
		sum := subtotal + tax
		if diff := abs(sum - total); diff > totalTolerance {
			warnings = append(warnings, fmt.Sprintf(
				"Total validation warning: subtotal (%.2f) + tax (%.2f) = %.2f, but total is %.2f (diff: %.2f)",
				subtotal, tax, sum, total, diff))
		}
	}

	if lines, ok := m["lines"].([]any); ok && hasSubtotal {
		// An empty or all-junk lines array still sums to 0.00 and is
		// checked against the subtotal, same as any other mismatch.
		var lineSum float64
		for _, item := range lines {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if v, ok := asFloat(entry["line_total"]); ok {
				lineSum += v
			}
		}
		if diff := abs(lineSum - subtotal); diff > totalTolerance {
			warnings = append(warnings, fmt.Sprintf(
				"Line items total (%.2f) does not match subtotal (%.2f) (diff: %.2f)",
				lineSum, subtotal, diff))
		}
	}

	return warnings
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		// quoted numbers survive field parsing, so they count here too
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
