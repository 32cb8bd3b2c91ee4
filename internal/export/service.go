package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docflow/internal/repository"
)

// invoiceColumns is the column order shared by the CSV and XLSX
// invoice exports.
var invoiceColumns = []string{
	"document_id",
	"filename",
	"vendor_name",
	"vendor_address",
	"invoice_number",
	"invoice_date",
	"due_date",
	"currency",
	"subtotal",
	"tax",
	"total",
	"created_at",
}

// Service is a tiny façade over repositories that renders extraction
// results as CSV, XLSX, or JSON bytes.
type Service struct {
	docsRepo      repository.DocumentRepository
	invoicesRepo  repository.InvoiceRepository
	contractsRepo repository.ContractRepository
	logger        *slog.Logger
}

func NewService(docs repository.DocumentRepository, invoices repository.InvoiceRepository, contracts repository.ContractRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docsRepo: docs, invoicesRepo: invoices, contractsRepo: contracts, logger: logger}
}

// ExportInvoicesCSV returns every extracted invoice as a CSV with a
// header row, one invoice per row (lines are not flattened in).
func (s *Service) ExportInvoicesCSV(ctx context.Context) ([]byte, error) {
	start := time.Now()
	rows, err := s.invoicesRepo.ListForExport(ctx)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(invoiceColumns); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(invoiceRecord(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportInvoicesXLSX returns the same invoice rows as an XLSX workbook.
func (s *Service) ExportInvoicesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()
	rows, err := s.invoicesRepo.ListForExport(ctx)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range invoiceColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for rowIdx, r := range rows {
		for colIdx, v := range invoiceRecord(r) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // document id
	_ = f.SetColWidth(sheet, "B", "B", 28) // filename
	_ = f.SetColWidth(sheet, "C", "C", 28) // vendor
	_ = f.SetColWidth(sheet, "D", "D", 40) // address
	_ = f.SetColWidth(sheet, "E", "G", 14) // number + dates
	_ = f.SetColWidth(sheet, "I", "K", 12) // amounts

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportDocumentJSON bundles one document with whatever structured
// child it has into a single indented JSON object.
func (s *Service) ExportDocumentJSON(ctx context.Context, documentID uuid.UUID) ([]byte, error) {
	doc, err := s.docsRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	out := map[string]any{"document": doc}
	if inv, err := s.invoicesRepo.GetByDocumentID(ctx, documentID); err == nil {
		out["invoice"] = inv
	}
	if ct, err := s.contractsRepo.GetByDocumentID(ctx, documentID); err == nil {
		out["contract"] = ct
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	s.logger.Info("export.json.ok", "document_id", documentID)
	return raw, nil
}

func invoiceRecord(r repository.InvoiceExportRow) []string {
	inv := r.Invoice
	return []string{
		inv.DocumentID.String(),
		r.Filename,
		strOrEmpty(inv.VendorName),
		strOrEmpty(inv.VendorAddress),
		strOrEmpty(inv.InvoiceNumber),
		dateOrEmpty(inv.InvoiceDate),
		dateOrEmpty(inv.DueDate),
		inv.Currency,
		floatOrEmpty(inv.Subtotal),
		floatOrEmpty(inv.Tax),
		floatOrEmpty(inv.Total),
		inv.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}
