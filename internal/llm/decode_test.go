package llm

import (
	"strings"
	"testing"
)

func TestDecodeFencedObject(t *testing.T) {
	raw := "```json\n{\"category\": \"invoice\"}\n```"
	m, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got := m["category"]; got != "invoice" {
		t.Fatalf("category = %v, want invoice", got)
	}
}

func TestDecodeObjectEmbeddedInProse(t *testing.T) {
	raw := `Sure! Here is the extracted data:
{"party_a": "Acme Corp", "party_b": "Globex", "effective_date": "2024-01-01"}
Let me know if you need anything else.`
	m, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got := m["party_a"]; got != "Acme Corp" {
		t.Fatalf("party_a = %v, want Acme Corp", got)
	}
	if got := m["party_b"]; got != "Globex" {
		t.Fatalf("party_b = %v, want Globex", got)
	}
}

func TestDecodeNestedBracesInsideStrings(t *testing.T) {
	raw := `prefix {"summary": "clause {a} applies \"always\"", "total": 12.5} suffix`
	m, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got := m["summary"]; got != `clause {a} applies "always"` {
		t.Fatalf("summary = %q", got)
	}
	if got := m["total"]; got != 12.5 {
		t.Fatalf("total = %v (%T), want 12.5 float64", got, got)
	}
}

func TestDecodeNumbersBecomeFloats(t *testing.T) {
	m, err := Decode(`{"subtotal": 100, "lines": [{"quantity": 2, "line_total": 50.5}]}`)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got, ok := m["subtotal"].(float64); !ok || got != 100 {
		t.Fatalf("subtotal = %v (%T), want float64 100", m["subtotal"], m["subtotal"])
	}
	lines, ok := m["lines"].([]any)
	if !ok || len(lines) != 1 {
		t.Fatalf("lines = %v", m["lines"])
	}
	entry := lines[0].(map[string]any)
	if got, ok := entry["quantity"].(float64); !ok || got != 2 {
		t.Fatalf("quantity = %v (%T), want float64 2", entry["quantity"], entry["quantity"])
	}
}

func TestDecodeGarbageReturnsSentinel(t *testing.T) {
	m, err := Decode("this is not json at all")
	if err != nil {
		t.Fatalf("Decode returned error for garbage input: %v", err)
	}
	if !IsDecodeFailure(m) {
		t.Fatalf("expected decode-failure sentinel, got %v", m)
	}
	if got, ok := m[SentinelRawKey].(string); !ok || !strings.Contains(got, "not json") {
		t.Fatalf("sentinel raw = %v", m[SentinelRawKey])
	}
}

func TestDecodeArrayIsAnError(t *testing.T) {
	if _, err := Decode(`[1, 2, 3]`); err == nil {
		t.Fatal("expected error for top-level array")
	}
}

func TestDecodeScalarIsAnError(t *testing.T) {
	if _, err := Decode(`"just a string"`); err == nil {
		t.Fatal("expected error for top-level scalar")
	}
}

func TestIsDecodeFailureOnCleanPayload(t *testing.T) {
	m, err := Decode(`{"vendor_name": "Acme"}`)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if IsDecodeFailure(m) {
		t.Fatal("clean payload flagged as decode failure")
	}
}
