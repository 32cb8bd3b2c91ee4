package llm

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Sentinel keys present in the mapping returned by Decode when the raw
// model output could not be parsed. The sentinel is stored on the
// document as llm_json for forensic inspection.
const (
	SentinelErrorKey     = "_error"
	SentinelRawKey       = "_raw"
	SentinelExceptionKey = "_exception"
)

// Decode extracts a single well-formed JSON object from free-form model
// output. Models routinely wrap JSON in markdown fences or prose, so the
// input is trimmed, fences are stripped, and if the remainder does not
// start with '{' or '[' the first balanced brace-delimited substring is
// used instead.
//
// A parse failure is a soft failure: Decode returns a sentinel mapping
// carrying the raw text and an error description, with a nil error.
// Output that parses but is not an object (a scalar or array) is a real
// error.
func Decode(raw string) (map[string]any, error) {
	cleaned := stripFences(strings.TrimSpace(raw))

	if !strings.HasPrefix(cleaned, "{") && !strings.HasPrefix(cleaned, "[") {
		if obj, ok := firstJSONObject(cleaned); ok {
			cleaned = obj
		}
	}

	var decoded any
	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()
	err := dec.Decode(&decoded)
	if err == nil {
		// strict parse: trailing tokens after the value are a failure
		if _, trailing := dec.Token(); trailing != io.EOF {
			err = fmt.Errorf("trailing data after JSON value")
		}
	}
	if err != nil {
		return map[string]any{
			SentinelErrorKey:     "failed to decode JSON response",
			SentinelRawKey:       cleaned,
			SentinelExceptionKey: err.Error(),
		}, nil
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoded JSON is not an object")
	}
	return normalizeNumbers(obj), nil
}

// IsDecodeFailure reports whether m is the sentinel produced by Decode.
func IsDecodeFailure(m map[string]any) bool {
	if m == nil {
		return false
	}
	_, ok := m[SentinelErrorKey]
	return ok
}

// stripFences removes leading/trailing markdown code-fence markers
// ("```json" or "```") line by line.
func stripFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "```" || t == "```json" || strings.HasPrefix(t, "```json ") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// firstJSONObject scans for the first balanced {...} substring, tracking
// string literals so braces inside quoted values don't break the count.
func firstJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// normalizeNumbers converts json.Number leaves to float64 so callers can
// type-assert numeric fields uniformly. Nested objects and arrays are
// walked in place.
func normalizeNumbers(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
	return m
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		return normalizeNumbers(t)
	case []any:
		for i, e := range t {
			t[i] = normalizeValue(e)
		}
		return t
	default:
		return v
	}
}
