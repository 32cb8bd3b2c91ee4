package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/repository"
)

type fakeDocs struct {
	doc *entity.Document
}

func (f *fakeDocs) Create(context.Context, repository.CreateDocumentParams) (*entity.Document, error) {
	panic("not used")
}
func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if f.doc == nil || f.doc.ID != id {
		return nil, errors.New("not found")
	}
	return f.doc, nil
}
func (f *fakeDocs) List(context.Context, repository.ListFilter) ([]*entity.Document, error) {
	panic("not used")
}
func (f *fakeDocs) Delete(context.Context, uuid.UUID) error { panic("not used") }
func (f *fakeDocs) MarkProcessing(context.Context, uuid.UUID) error { panic("not used") }
func (f *fakeDocs) SetCategory(context.Context, uuid.UUID, constants.DocumentCategory) error {
	panic("not used")
}
func (f *fakeDocs) MarkFailed(context.Context, uuid.UUID, string) error { panic("not used") }
func (f *fakeDocs) ResetForRetry(context.Context, uuid.UUID) error { panic("not used") }
func (f *fakeDocs) FinishGeneral(context.Context, uuid.UUID, json.RawMessage) error {
	panic("not used")
}

type fakeInvoices struct {
	rows    []repository.InvoiceExportRow
	invoice *entity.Invoice
}

func (f *fakeInvoices) FinishInvoice(context.Context, repository.FinishInvoiceParams) (*entity.Invoice, error) {
	panic("not used")
}
func (f *fakeInvoices) GetByDocumentID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	if f.invoice == nil || f.invoice.DocumentID != id {
		return nil, errors.New("not found")
	}
	return f.invoice, nil
}
func (f *fakeInvoices) ListForExport(context.Context) ([]repository.InvoiceExportRow, error) {
	return f.rows, nil
}

type fakeContracts struct{}

func (f *fakeContracts) FinishContract(context.Context, repository.FinishContractParams) (*entity.Contract, error) {
	panic("not used")
}
func (f *fakeContracts) GetByDocumentID(context.Context, uuid.UUID) (*entity.Contract, error) {
	return nil, errors.New("not found")
}

func str(s string) *string    { return &s }
func num(f float64) *float64  { return &f }
func day(s string) *time.Time { t, _ := time.Parse("2006-01-02", s); return &t }

func sampleRows() []repository.InvoiceExportRow {
	docID := uuid.New()
	return []repository.InvoiceExportRow{
		{
			Filename: "acme-march.pdf",
			Invoice: entity.Invoice{
				ID:            uuid.New(),
				DocumentID:    docID,
				VendorName:    str("Acme Corp"),
				InvoiceNumber: str("INV-001"),
				InvoiceDate:   day("2024-03-01"),
				Subtotal:      num(100),
				Tax:           num(8.5),
				Total:         num(108.5),
				Currency:      "USD",
				CreatedAt:     time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			Filename: "sparse.pdf",
			Invoice: entity.Invoice{
				ID:         uuid.New(),
				DocumentID: uuid.New(),
				Currency:   "EUR",
				CreatedAt:  time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC),
			},
		},
	}
}

func newTestService(invoices *fakeInvoices, docs *fakeDocs) *Service {
	if docs == nil {
		docs = &fakeDocs{}
	}
	return NewService(docs, invoices, &fakeContracts{},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExportInvoicesCSV(t *testing.T) {
	svc := newTestService(&fakeInvoices{rows: sampleRows()}, nil)
	data, err := svc.ExportInvoicesCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportInvoicesCSV returned error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(records))
	}
	if records[0][0] != "document_id" || records[0][2] != "vendor_name" {
		t.Fatalf("header = %v", records[0])
	}
	first := records[1]
	if first[1] != "acme-march.pdf" || first[2] != "Acme Corp" || first[4] != "INV-001" {
		t.Fatalf("first row = %v", first)
	}
	if first[5] != "2024-03-01" {
		t.Errorf("invoice_date = %q", first[5])
	}
	if first[8] != "100.00" || first[9] != "8.50" || first[10] != "108.50" {
		t.Errorf("amounts = %v", first[8:11])
	}
	// sparse row: nil fields export as empty strings
	second := records[2]
	if second[2] != "" || second[8] != "" {
		t.Errorf("sparse row = %v", second)
	}
	if second[7] != "EUR" {
		t.Errorf("currency = %q", second[7])
	}
}

func TestExportInvoicesXLSX(t *testing.T) {
	svc := newTestService(&fakeInvoices{rows: sampleRows()}, nil)
	data, err := svc.ExportInvoicesXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportInvoicesXLSX returned error: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening exported workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	if got, _ := wb.GetCellValue("Invoices", "C1"); got != "vendor_name" {
		t.Errorf("C1 = %q", got)
	}
	if got, _ := wb.GetCellValue("Invoices", "C2"); got != "Acme Corp" {
		t.Errorf("C2 = %q", got)
	}
	if got, _ := wb.GetCellValue("Invoices", "B3"); got != "sparse.pdf" {
		t.Errorf("B3 = %q", got)
	}
}

func TestExportDocumentJSON(t *testing.T) {
	docID := uuid.New()
	doc := &entity.Document{
		ID:       docID,
		Category: constants.CategoryInvoice,
		Status:   constants.StatusExtracted,
		Filename: "acme.pdf",
	}
	inv := &entity.Invoice{
		ID:         uuid.New(),
		DocumentID: docID,
		VendorName: str("Acme Corp"),
		Currency:   "USD",
	}
	svc := newTestService(&fakeInvoices{invoice: inv}, &fakeDocs{doc: doc})

	data, err := svc.ExportDocumentJSON(context.Background(), docID)
	if err != nil {
		t.Fatalf("ExportDocumentJSON returned error: %v", err)
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if _, ok := out["document"]; !ok {
		t.Error("document missing from export")
	}
	if _, ok := out["invoice"]; !ok {
		t.Error("invoice missing from export")
	}
	if _, ok := out["contract"]; ok {
		t.Error("contract present for an invoice document")
	}
}

func TestExportDocumentJSONUnknownID(t *testing.T) {
	svc := newTestService(&fakeInvoices{}, &fakeDocs{})
	if _, err := svc.ExportDocumentJSON(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for unknown document")
	}
}
