package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/llm"
	"github.com/joseph-ayodele/docflow/internal/repository"
)

// Processor drives a single document through classification and
// extraction. It owns the status transitions; repositories own the
// writes and the model client owns the inference calls.
type Processor struct {
	docs      repository.DocumentRepository
	invoices  repository.InvoiceRepository
	contracts repository.ContractRepository
	analyzer  llm.DocumentAnalyzer
	logger    *slog.Logger
}

func NewProcessor(
	docs repository.DocumentRepository,
	invoices repository.InvoiceRepository,
	contracts repository.ContractRepository,
	analyzer llm.DocumentAnalyzer,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		docs:      docs,
		invoices:  invoices,
		contracts: contracts,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// ProcessDocument runs the full pipeline for one document. Any failure
// marks the document failed with the error text before returning; the
// failure write uses a detached context so a cancelled attempt still
// records why it died.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) error {
	start := time.Now()
	p.logger.Info("pipeline.start", "document_id", documentID)

	err := p.run(ctx, documentID)
	if err != nil {
		bg := context.WithoutCancel(ctx)
		if merr := p.docs.MarkFailed(bg, documentID, err.Error()); merr != nil {
			p.logger.Error("pipeline.mark_failed.error", "document_id", documentID, "err", merr)
		}
		p.logger.Error("pipeline.failed",
			"document_id", documentID,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"err", err,
		)
		return err
	}

	p.logger.Info("pipeline.done",
		"document_id", documentID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Processor) run(ctx context.Context, documentID uuid.UUID) error {
	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if err := p.docs.MarkProcessing(ctx, doc.ID); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	category := doc.Category
	// Operator-assigned invoice or contract labels are trusted; only
	// unlabeled or general documents go through the classifier.
	if category.NeedsClassification() {
		category, err = p.analyzer.Classify(ctx, doc)
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}
		if err := p.docs.SetCategory(ctx, doc.ID, category); err != nil {
			return fmt.Errorf("store category: %w", err)
		}
		p.logger.Info("pipeline.classified", "document_id", doc.ID, "category", category)
	}
	doc.Category = category

	switch category {
	case constants.CategoryInvoice:
		return p.handleInvoice(ctx, doc)
	case constants.CategoryContract:
		return p.handleContract(ctx, doc)
	case constants.CategoryGeneral:
		return p.handleGeneral(ctx, doc)
	default:
		return fmt.Errorf("unknown document category %q", category)
	}
}

func (p *Processor) handleInvoice(ctx context.Context, doc *entity.Document) error {
	payload, err := p.analyzer.ExtractInvoice(ctx, doc)
	if err != nil {
		return fmt.Errorf("extract invoice: %w", err)
	}
	if llm.IsDecodeFailure(payload) {
		return fmt.Errorf("invoice extraction returned unparseable output: %v", payload[llm.SentinelErrorKey])
	}

	warnings := ValidateInvoiceTotals(payload)
	for _, w := range warnings {
		p.logger.Warn("pipeline.invoice.validation", "document_id", doc.ID, "warning", w)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode invoice payload: %w", err)
	}
	fields := llm.ParseInvoiceFields(payload)
	if _, err := p.invoices.FinishInvoice(ctx, repository.FinishInvoiceParams{
		DocumentID: doc.ID,
		Fields:     fields,
		RawJSON:    raw,
		Warnings:   warnings,
	}); err != nil {
		return fmt.Errorf("persist invoice: %w", err)
	}
	return nil
}

func (p *Processor) handleContract(ctx context.Context, doc *entity.Document) error {
	payload, err := p.analyzer.ExtractContract(ctx, doc)
	if err != nil {
		return fmt.Errorf("extract contract: %w", err)
	}
	if llm.IsDecodeFailure(payload) {
		return fmt.Errorf("contract extraction returned unparseable output: %v", payload[llm.SentinelErrorKey])
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode contract payload: %w", err)
	}
	fields := llm.ParseContractFields(payload)
	if _, err := p.contracts.FinishContract(ctx, repository.FinishContractParams{
		DocumentID: doc.ID,
		Fields:     fields,
		RawJSON:    raw,
	}); err != nil {
		return fmt.Errorf("persist contract: %w", err)
	}
	return nil
}

// handleGeneral records a minimal completion payload. General documents
// carry no structured children, but the run still has to leave a trace.
func (p *Processor) handleGeneral(ctx context.Context, doc *entity.Document) error {
	payload := map[string]any{
		"category":     string(constants.CategoryGeneral),
		"processed_at": time.Now().UTC().Format(time.RFC3339),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode general payload: %w", err)
	}
	if err := p.docs.FinishGeneral(ctx, doc.ID, raw); err != nil {
		return fmt.Errorf("persist general result: %w", err)
	}
	return nil
}
