package utils

import (
	"strings"
	"time"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/gen/ent"
	"github.com/joseph-ayodele/docflow/internal/entity"
)

// dateLayouts are tried in order when coercing model output into a date.
// Vision models emit ISO dates most of the time but not always.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// ParseDate parses a free-form date string to midnight UTC. It returns
// nil for empty or unparseable input; a malformed date must never abort
// an extraction run.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:           e.ID,
		Category:     constants.DocumentCategory(e.Category),
		Status:       constants.DocumentStatus(e.Status),
		Filename:     e.Filename,
		StoragePath:  e.StoragePath,
		MIMEType:     e.MimeType,
		SizeBytes:    e.SizeBytes,
		LLMJSON:      e.LlmJSON,
		ErrorMessage: e.ErrorMessage,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:            e.ID,
		DocumentID:    e.DocumentID,
		VendorName:    e.VendorName,
		VendorAddress: e.VendorAddress,
		InvoiceNumber: e.InvoiceNumber,
		InvoiceDate:   e.InvoiceDate,
		DueDate:       e.DueDate,
		Subtotal:      e.Subtotal,
		Tax:           e.Tax,
		Total:         e.Total,
		Currency:      e.Currency,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToInvoiceLine(e *ent.InvoiceLine) entity.InvoiceLine {
	return entity.InvoiceLine{
		ID:          e.ID,
		InvoiceID:   e.InvoiceID,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		LineTotal:   e.LineTotal,
	}
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:             e.ID,
		DocumentID:     e.DocumentID,
		PartyA:         e.PartyA,
		PartyB:         e.PartyB,
		EffectiveDate:  e.EffectiveDate,
		ExpirationDate: e.ExpirationDate,
		Summary:        e.Summary,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
