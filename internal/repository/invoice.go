package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/gen/ent"
	"github.com/joseph-ayodele/docflow/gen/ent/invoice"
	"github.com/joseph-ayodele/docflow/gen/ent/invoiceline"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/llm"
	"github.com/joseph-ayodele/docflow/internal/utils"
)

// FinishInvoiceParams carries everything the invoice finisher writes in
// one transaction: the upserted header, the replacement line set, the
// raw decoded model output, and any validation warnings.
type FinishInvoiceParams struct {
	DocumentID uuid.UUID
	Fields     llm.InvoiceFields
	RawJSON    json.RawMessage
	Warnings   []string
}

// InvoiceExportRow joins an invoice with its document for exports.
type InvoiceExportRow struct {
	Invoice  entity.Invoice
	Filename string
}

type InvoiceRepository interface {
	// FinishInvoice atomically upserts the invoice header (keyed by
	// document id), replaces all line items, and flips the document to
	// extracted with its llm_json and warning text. Either all of it
	// commits or none of it does.
	FinishInvoice(ctx context.Context, p FinishInvoiceParams) (*entity.Invoice, error)
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Invoice, error)
	ListForExport(ctx context.Context) ([]InvoiceExportRow, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &invoiceRepository{client: client, logger: logger}
}

func (r *invoiceRepository) FinishInvoice(ctx context.Context, p FinishInvoiceParams) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	inv, err := r.finishInTx(ctx, tx, p)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("invoice finish rollback failed", "document_id", p.DocumentID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	r.logger.Info("invoice processed",
		"document_id", p.DocumentID,
		"invoice_id", inv.ID,
		"line_count", len(inv.Lines),
		"warnings", len(p.Warnings),
	)
	return inv, nil
}

func (r *invoiceRepository) finishInTx(ctx context.Context, tx *ent.Tx, p FinishInvoiceParams) (*entity.Invoice, error) {
	f := p.Fields

	// Document first: status, raw JSON, and advisory warnings. Warnings
	// ride in error_message but the document still counts as extracted.
	docUp := tx.Document.
		UpdateOneID(p.DocumentID).
		SetStatus(string(constants.StatusExtracted)).
		SetLlmJSON(p.RawJSON)
	if len(p.Warnings) > 0 {
		docUp = docUp.SetErrorMessage(strings.Join(p.Warnings, "; "))
	} else {
		docUp = docUp.ClearErrorMessage()
	}
	if _, err := docUp.Save(ctx); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	existing, err := tx.Invoice.Query().
		Where(invoice.DocumentID(p.DocumentID)).
		Only(ctx)
	var row *ent.Invoice
	switch {
	case err == nil:
		up := tx.Invoice.UpdateOneID(existing.ID).SetCurrency(f.Currency)
		if f.VendorName != nil {
			up = up.SetVendorName(*f.VendorName)
		} else {
			up = up.ClearVendorName()
		}
		if f.VendorAddress != nil {
			up = up.SetVendorAddress(*f.VendorAddress)
		} else {
			up = up.ClearVendorAddress()
		}
		if f.InvoiceNumber != nil {
			up = up.SetInvoiceNumber(*f.InvoiceNumber)
		} else {
			up = up.ClearInvoiceNumber()
		}
		if d := utils.ParseDate(deref(f.InvoiceDate)); d != nil {
			up = up.SetInvoiceDate(*d)
		} else {
			up = up.ClearInvoiceDate()
		}
		if d := utils.ParseDate(deref(f.DueDate)); d != nil {
			up = up.SetDueDate(*d)
		} else {
			up = up.ClearDueDate()
		}
		if f.Subtotal != nil {
			up = up.SetSubtotal(*f.Subtotal)
		} else {
			up = up.ClearSubtotal()
		}
		if f.Tax != nil {
			up = up.SetTax(*f.Tax)
		} else {
			up = up.ClearTax()
		}
		if f.Total != nil {
			up = up.SetTotal(*f.Total)
		} else {
			up = up.ClearTotal()
		}
		row, err = up.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update invoice: %w", err)
		}
	case ent.IsNotFound(err):
		row, err = tx.Invoice.Create().
			SetDocumentID(p.DocumentID).
			SetCurrency(f.Currency).
			SetNillableVendorName(f.VendorName).
			SetNillableVendorAddress(f.VendorAddress).
			SetNillableInvoiceNumber(f.InvoiceNumber).
			SetNillableInvoiceDate(utils.ParseDate(deref(f.InvoiceDate))).
			SetNillableDueDate(utils.ParseDate(deref(f.DueDate))).
			SetNillableSubtotal(f.Subtotal).
			SetNillableTax(f.Tax).
			SetNillableTotal(f.Total).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create invoice: %w", err)
		}
	default:
		return nil, fmt.Errorf("load invoice: %w", err)
	}

	// Lines have no identity across runs: drop and recreate.
	if _, err := tx.InvoiceLine.Delete().
		Where(invoiceline.InvoiceID(row.ID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete invoice lines: %w", err)
	}

	result := utils.ToInvoice(row)
	if len(f.Lines) > 0 {
		builders := make([]*ent.InvoiceLineCreate, len(f.Lines))
		for i, line := range f.Lines {
			builders[i] = tx.InvoiceLine.Create().
				SetInvoiceID(row.ID).
				SetNillableDescription(line.Description).
				SetQuantity(line.Quantity).
				SetUnitPrice(line.UnitPrice).
				SetLineTotal(line.LineTotal)
		}
		lines, err := tx.InvoiceLine.CreateBulk(builders...).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create invoice lines: %w", err)
		}
		for _, l := range lines {
			result.Lines = append(result.Lines, utils.ToInvoiceLine(l))
		}
	}
	return result, nil
}

func (r *invoiceRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().
		Where(invoice.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	result := utils.ToInvoice(row)
	lines, err := r.client.InvoiceLine.Query().
		Where(invoiceline.InvoiceID(row.ID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		result.Lines = append(result.Lines, utils.ToInvoiceLine(l))
	}
	return result, nil
}

func (r *invoiceRepository) ListForExport(ctx context.Context) ([]InvoiceExportRow, error) {
	rows, err := r.client.Invoice.Query().
		WithDocument().
		Order(ent.Asc(invoice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("invoice export query failed", "error", err)
		return nil, err
	}
	result := make([]InvoiceExportRow, 0, len(rows))
	for _, row := range rows {
		er := InvoiceExportRow{Invoice: *utils.ToInvoice(row)}
		if doc, err := row.Edges.DocumentOrErr(); err == nil {
			er.Filename = doc.Filename
		}
		result = append(result, er)
	}
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
