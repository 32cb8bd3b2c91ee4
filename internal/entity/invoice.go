package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents extracted invoice data for data transfer between layers.
type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	DocumentID    uuid.UUID     `json:"document_id"`
	VendorName    *string       `json:"vendor_name,omitempty"`
	VendorAddress *string       `json:"vendor_address,omitempty"`
	InvoiceNumber *string       `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time    `json:"invoice_date,omitempty"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Subtotal      *float64      `json:"subtotal,omitempty"`
	Tax           *float64      `json:"tax,omitempty"`
	Total         *float64      `json:"total,omitempty"`
	Currency      string        `json:"currency"`
	Lines         []InvoiceLine `json:"lines,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// InvoiceLine is a single line item. Lines have no identity across
// extraction runs; the full set is replaced on every run.
type InvoiceLine struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	Description *string   `json:"description,omitempty"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
}
