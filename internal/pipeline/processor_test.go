package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/llm"
	"github.com/joseph-ayodele/docflow/internal/repository"
)

type fakeDocs struct {
	doc *entity.Document

	processing    bool
	setCategory   constants.DocumentCategory
	failedMessage string
	generalJSON   json.RawMessage
}

func (f *fakeDocs) Create(context.Context, repository.CreateDocumentParams) (*entity.Document, error) {
	panic("not used")
}
func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if f.doc == nil || f.doc.ID != id {
		return nil, errors.New("document not found")
	}
	cp := *f.doc
	return &cp, nil
}
func (f *fakeDocs) List(context.Context, repository.ListFilter) ([]*entity.Document, error) {
	panic("not used")
}
func (f *fakeDocs) Delete(context.Context, uuid.UUID) error { panic("not used") }
func (f *fakeDocs) MarkProcessing(context.Context, uuid.UUID) error {
	f.processing = true
	return nil
}
func (f *fakeDocs) SetCategory(_ context.Context, _ uuid.UUID, cat constants.DocumentCategory) error {
	f.setCategory = cat
	return nil
}
func (f *fakeDocs) MarkFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.failedMessage = message
	return nil
}
func (f *fakeDocs) ResetForRetry(context.Context, uuid.UUID) error { panic("not used") }
func (f *fakeDocs) FinishGeneral(_ context.Context, _ uuid.UUID, raw json.RawMessage) error {
	f.generalJSON = raw
	return nil
}

type fakeInvoices struct {
	finished *repository.FinishInvoiceParams
	err      error
}

func (f *fakeInvoices) FinishInvoice(_ context.Context, p repository.FinishInvoiceParams) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.finished = &p
	return &entity.Invoice{ID: uuid.New(), DocumentID: p.DocumentID}, nil
}
func (f *fakeInvoices) GetByDocumentID(context.Context, uuid.UUID) (*entity.Invoice, error) {
	panic("not used")
}
func (f *fakeInvoices) ListForExport(context.Context) ([]repository.InvoiceExportRow, error) {
	panic("not used")
}

type fakeContracts struct {
	finished *repository.FinishContractParams
}

func (f *fakeContracts) FinishContract(_ context.Context, p repository.FinishContractParams) (*entity.Contract, error) {
	f.finished = &p
	return &entity.Contract{ID: uuid.New(), DocumentID: p.DocumentID}, nil
}
func (f *fakeContracts) GetByDocumentID(context.Context, uuid.UUID) (*entity.Contract, error) {
	panic("not used")
}

type fakeAnalyzer struct {
	category    constants.DocumentCategory
	classifyErr error
	classified  bool

	invoicePayload  map[string]any
	contractPayload map[string]any
	extractErr      error
}

func (f *fakeAnalyzer) Classify(context.Context, *entity.Document) (constants.DocumentCategory, error) {
	f.classified = true
	return f.category, f.classifyErr
}
func (f *fakeAnalyzer) ExtractInvoice(context.Context, *entity.Document) (map[string]any, error) {
	return f.invoicePayload, f.extractErr
}
func (f *fakeAnalyzer) ExtractContract(context.Context, *entity.Document) (map[string]any, error) {
	return f.contractPayload, f.extractErr
}

func newTestProcessor(docs *fakeDocs, invoices *fakeInvoices, contracts *fakeContracts, analyzer *fakeAnalyzer) *Processor {
	return NewProcessor(docs, invoices, contracts, analyzer,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func pendingDoc(cat constants.DocumentCategory) *entity.Document {
	return &entity.Document{
		ID:       uuid.New(),
		Category: cat,
		Status:   constants.StatusPending,
		Filename: "doc.pdf",
	}
}

func TestProcessInvoiceHappyPath(t *testing.T) {
	docs := &fakeDocs{doc: pendingDoc("")}
	invoices := &fakeInvoices{}
	analyzer := &fakeAnalyzer{
		category: constants.CategoryInvoice,
		invoicePayload: map[string]any{
			"vendor_name": "Acme",
			"subtotal":    100.0,
			"tax":         8.5,
			"total":       108.5,
			"lines": []any{
				map[string]any{"description": "widget", "quantity": 2.0, "unit_price": 50.0, "line_total": 100.0},
			},
		},
	}
	p := newTestProcessor(docs, invoices, &fakeContracts{}, analyzer)

	if err := p.ProcessDocument(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("ProcessDocument returned error: %v", err)
	}
	if !docs.processing {
		t.Error("document was never marked processing")
	}
	if docs.setCategory != constants.CategoryInvoice {
		t.Errorf("stored category = %v", docs.setCategory)
	}
	if invoices.finished == nil {
		t.Fatal("invoice was not persisted")
	}
	if got := invoices.finished.Fields.VendorName; got == nil || *got != "Acme" {
		t.Errorf("vendor name = %v", got)
	}
	if len(invoices.finished.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", invoices.finished.Warnings)
	}
	if len(invoices.finished.Fields.Lines) != 1 {
		t.Errorf("lines = %d, want 1", len(invoices.finished.Fields.Lines))
	}
	if docs.failedMessage != "" {
		t.Errorf("document marked failed: %s", docs.failedMessage)
	}
}

func TestProcessTrustsAssignedCategory(t *testing.T) {
	docs := &fakeDocs{doc: pendingDoc(constants.CategoryContract)}
	contracts := &fakeContracts{}
	analyzer := &fakeAnalyzer{
		// would steer the run wrong if the classifier were consulted
		category:        constants.CategoryInvoice,
		contractPayload: map[string]any{"party_a": "Acme", "party_b": "Globex"},
	}
	p := newTestProcessor(docs, &fakeInvoices{}, contracts, analyzer)

	if err := p.ProcessDocument(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("ProcessDocument returned error: %v", err)
	}
	if analyzer.classified {
		t.Error("classifier ran for a document with an assigned category")
	}
	if contracts.finished == nil {
		t.Fatal("contract was not persisted")
	}
	if got := contracts.finished.Fields.PartyA; got == nil || *got != "Acme" {
		t.Errorf("party_a = %v", got)
	}
}

func TestProcessBackendFailureMarksFailed(t *testing.T) {
	docs := &fakeDocs{doc: pendingDoc(constants.CategoryInvoice)}
	invoices := &fakeInvoices{}
	analyzer := &fakeAnalyzer{extractErr: errors.New("inference backend unreachable")}
	p := newTestProcessor(docs, invoices, &fakeContracts{}, analyzer)

	err := p.ProcessDocument(context.Background(), docs.doc.ID)
	if err == nil {
		t.Fatal("expected error")
	}
	if docs.failedMessage == "" {
		t.Fatal("document was not marked failed")
	}
	if !strings.Contains(docs.failedMessage, "inference backend unreachable") {
		t.Errorf("failure message = %q", docs.failedMessage)
	}
	if invoices.finished != nil {
		t.Error("invoice written despite extraction failure")
	}
}

func TestProcessDecodeSentinelIsHardFailure(t *testing.T) {
	docs := &fakeDocs{doc: pendingDoc(constants.CategoryInvoice)}
	invoices := &fakeInvoices{}
	analyzer := &fakeAnalyzer{
		invoicePayload: map[string]any{
			llm.SentinelErrorKey:     "failed to decode JSON response",
			llm.SentinelRawKey:       "garbage",
			llm.SentinelExceptionKey: "invalid character 'g'",
		},
	}
	p := newTestProcessor(docs, invoices, &fakeContracts{}, analyzer)

	if err := p.ProcessDocument(context.Background(), docs.doc.ID); err == nil {
		t.Fatal("expected error for sentinel payload")
	}
	if invoices.finished != nil {
		t.Error("invoice written despite decode failure")
	}
	if !strings.Contains(docs.failedMessage, "unparseable") {
		t.Errorf("failure message = %q", docs.failedMessage)
	}
}

func TestProcessGeneralWritesSyntheticPayload(t *testing.T) {
	docs := &fakeDocs{doc: pendingDoc("")}
	analyzer := &fakeAnalyzer{category: constants.CategoryGeneral}
	p := newTestProcessor(docs, &fakeInvoices{}, &fakeContracts{}, analyzer)

	if err := p.ProcessDocument(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("ProcessDocument returned error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(docs.generalJSON, &payload); err != nil {
		t.Fatalf("general payload is not JSON: %v", err)
	}
	if payload["category"] != "general" {
		t.Errorf("payload category = %v", payload["category"])
	}
	if payload["processed_at"] == "" || payload["processed_at"] == nil {
		t.Error("processed_at missing")
	}
}

func TestProcessInvoiceWarningsArePassedThrough(t *testing.T) {
	docs := &fakeDocs{doc: pendingDoc(constants.CategoryInvoice)}
	invoices := &fakeInvoices{}
	analyzer := &fakeAnalyzer{
		invoicePayload: map[string]any{
			"subtotal": 100.0,
			"tax":      5.0,
			"total":    90.0,
		},
	}
	p := newTestProcessor(docs, invoices, &fakeContracts{}, analyzer)

	if err := p.ProcessDocument(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("ProcessDocument returned error: %v", err)
	}
	if invoices.finished == nil {
		t.Fatal("invoice was not persisted")
	}
	if len(invoices.finished.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one", invoices.finished.Warnings)
	}
	if !strings.HasPrefix(invoices.finished.Warnings[0], "Total validation warning:") {
		t.Errorf("warning = %q", invoices.finished.Warnings[0])
	}
}

func TestProcessClassifyErrorMarksFailed(t *testing.T) {
	docs := &fakeDocs{doc: pendingDoc("")}
	analyzer := &fakeAnalyzer{classifyErr: errors.New("backend down")}
	p := newTestProcessor(docs, &fakeInvoices{}, &fakeContracts{}, analyzer)

	if err := p.ProcessDocument(context.Background(), docs.doc.ID); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(docs.failedMessage, "classify") {
		t.Errorf("failure message = %q", docs.failedMessage)
	}
}

func TestProcessPersistFailureMarksFailed(t *testing.T) {
	docs := &fakeDocs{doc: pendingDoc(constants.CategoryInvoice)}
	invoices := &fakeInvoices{err: errors.New("tx aborted")}
	analyzer := &fakeAnalyzer{invoicePayload: map[string]any{"total": 10.0}}
	p := newTestProcessor(docs, invoices, &fakeContracts{}, analyzer)

	if err := p.ProcessDocument(context.Background(), docs.doc.ID); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(docs.failedMessage, "persist invoice") {
		t.Errorf("failure message = %q", docs.failedMessage)
	}
}
