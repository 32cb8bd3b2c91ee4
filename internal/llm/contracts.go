package llm

import (
	"context"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/internal/entity"
)

// DocumentAnalyzer is the model-backend contract the pipeline depends on.
// Classify is fail-open: an unrecognized or missing category from the
// model yields CategoryGeneral, not an error. Extract operations return
// the decoded mapping as-is, including the decode-failure sentinel.
type DocumentAnalyzer interface {
	Classify(ctx context.Context, doc *entity.Document) (constants.DocumentCategory, error)
	ExtractInvoice(ctx context.Context, doc *entity.Document) (map[string]any, error)
	ExtractContract(ctx context.Context, doc *entity.Document) (map[string]any, error)
}

// InvoiceFields is the normalized invoice shape pulled out of the decoded
// model output. Pointer fields are nil when the model omitted the value
// or emitted something unusable.
type InvoiceFields struct {
	VendorName    *string
	VendorAddress *string
	InvoiceNumber *string
	InvoiceDate   *string // free-form; parsed to a date at persistence
	DueDate       *string
	Subtotal      *float64
	Tax           *float64
	Total         *float64
	Currency      string // defaults to USD
	Lines         []InvoiceLineFields
}

type InvoiceLineFields struct {
	Description *string
	Quantity    float64 // defaults to 1
	UnitPrice   float64 // defaults to 0
	LineTotal   float64 // defaults to 0
}

// ContractFields is the normalized contract shape.
type ContractFields struct {
	PartyA         *string
	PartyB         *string
	EffectiveDate  *string
	ExpirationDate *string
	Summary        *string
}

// ParseInvoiceFields converts a decoded mapping into InvoiceFields,
// applying the documented defaults: currency USD, quantity 1,
// unit_price/line_total 0.
func ParseInvoiceFields(m map[string]any) InvoiceFields {
	f := InvoiceFields{
		VendorName:    getString(m, "vendor_name"),
		VendorAddress: getString(m, "vendor_address"),
		InvoiceNumber: getString(m, "invoice_number"),
		InvoiceDate:   getString(m, "invoice_date"),
		DueDate:       getString(m, "due_date"),
		Subtotal:      getFloat(m, "subtotal"),
		Tax:           getFloat(m, "tax"),
		Total:         getFloat(m, "total"),
		Currency:      "USD",
	}
	if cur := getString(m, "currency"); cur != nil && len(*cur) == 3 {
		f.Currency = strings.ToUpper(*cur)
	}
	if lines, ok := m["lines"].([]any); ok {
		for _, raw := range lines {
			lm, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			line := InvoiceLineFields{
				Description: getString(lm, "description"),
				Quantity:    1,
			}
			if q := getFloat(lm, "quantity"); q != nil {
				line.Quantity = *q
			}
			if p := getFloat(lm, "unit_price"); p != nil {
				line.UnitPrice = *p
			}
			if t := getFloat(lm, "line_total"); t != nil {
				line.LineTotal = *t
			}
			f.Lines = append(f.Lines, line)
		}
	}
	return f
}

// ParseContractFields converts a decoded mapping into ContractFields.
func ParseContractFields(m map[string]any) ContractFields {
	return ContractFields{
		PartyA:         getString(m, "party_a"),
		PartyB:         getString(m, "party_b"),
		EffectiveDate:  getString(m, "effective_date"),
		ExpirationDate: getString(m, "expiration_date"),
		Summary:        getString(m, "summary"),
	}
}

func getString(m map[string]any, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}

func getFloat(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	case string:
		// models occasionally quote numbers; accept "1,234.56" too
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}
