package llm

// JSON-Schema (draft 2020-12 subset) documents describing the payloads we
// ask the model for. Validated locally after decoding; drift is logged as
// advisory only, since a payload with nulls in odd places is still
// persistable.

func BuildInvoiceJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vendor_name":    nullableProp("string"),
			"vendor_address": nullableProp("string"),
			"invoice_number": nullableProp("string"),
			"invoice_date":   nullableDateProp(),
			"due_date":       nullableDateProp(),
			"currency":       nullableProp("string"),
			"subtotal":       nullableProp("number"),
			"tax":            nullableProp("number"),
			"total":          nullableProp("number"),
			"lines": map[string]any{
				"type": []string{"array", "null"},
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": nullableProp("string"),
						"quantity":    nullableProp("number"),
						"unit_price":  nullableProp("number"),
						"line_total":  nullableProp("number"),
					},
				},
			},
			"confidence": map[string]any{
				"type":    []string{"number", "null"},
				"minimum": 0.0,
				"maximum": 1.0,
			},
		},
	}
}

func BuildContractJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"party_a":         nullableProp("string"),
			"party_b":         nullableProp("string"),
			"effective_date":  nullableDateProp(),
			"expiration_date": nullableDateProp(),
			"summary":         nullableProp("string"),
			"risk_score":      nullableProp("number"),
			"risk_notes":      nullableProp("string"),
		},
	}
}

func BuildClassificationJSONSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"category"},
		"properties": map[string]any{
			"category": map[string]any{
				"type": "string",
				"enum": []string{"general", "invoice", "contract"},
			},
		},
	}
}

func nullableProp(typ string) map[string]any {
	return map[string]any{"type": []string{typ, "null"}}
}

func nullableDateProp() map[string]any {
	return map[string]any{
		"type":    []string{"string", "null"},
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}
