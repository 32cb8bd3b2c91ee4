package server

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	v1 "github.com/joseph-ayodele/docflow/gen/proto/docflow/v1"
	"github.com/joseph-ayodele/docflow/internal/async"
	"github.com/joseph-ayodele/docflow/internal/common"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/repository"
)

type DocumentService struct {
	v1.UnimplementedDocumentServiceServer
	docs      repository.DocumentRepository
	invoices  repository.InvoiceRepository
	contracts repository.ContractRepository
	queue     async.Queue
	logger    *slog.Logger
}

func NewDocumentService(
	docs repository.DocumentRepository,
	invoices repository.InvoiceRepository,
	contracts repository.ContractRepository,
	queue async.Queue,
	logger *slog.Logger,
) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{
		docs:      docs,
		invoices:  invoices,
		contracts: contracts,
		queue:     queue,
		logger:    logger,
	}
}

func (s *DocumentService) CreateDocument(ctx context.Context, req *v1.CreateDocumentRequest) (*v1.CreateDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	storagePath := strings.TrimSpace(req.GetStoragePath())
	if storagePath == "" {
		return nil, common.InvalidArgumentError("storage_path is required")
	}
	mimeType := strings.TrimSpace(req.GetMimeType())
	if !constants.SupportedMIME(mimeType) {
		return nil, common.InvalidArgumentErrorf("unsupported mime_type %q", mimeType)
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}

	category := constants.CategoryGeneral
	if c := strings.TrimSpace(req.GetCategory()); c != "" {
		parsed, ok := constants.ParseCategory(c)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown category %q", c)
		}
		category = parsed
	}

	doc, err := s.docs.Create(ctx, repository.CreateDocumentParams{
		Filename:    filename,
		StoragePath: storagePath,
		MIMEType:    mimeType,
		SizeBytes:   req.GetSizeBytes(),
		Category:    category,
	})
	if err != nil {
		s.logger.Error("document.create.failed", "filename", filename, "err", err)
		return nil, common.InternalError("failed to register document")
	}
	return &v1.CreateDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}

	resp := &v1.GetDocumentResponse{Document: toProtoDocument(doc)}
	switch doc.Category {
	case constants.CategoryInvoice:
		if inv, err := s.invoices.GetByDocumentID(ctx, id); err == nil {
			resp.Invoice = toProtoInvoice(inv)
		}
	case constants.CategoryContract:
		if ct, err := s.contracts.GetByDocumentID(ctx, id); err == nil {
			resp.Contract = toProtoContract(ct)
		}
	}
	return resp, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	filter := repository.ListFilter{
		Search: strings.TrimSpace(req.GetSearch()),
		Limit:  int(req.GetLimit()),
		Offset: int(req.GetOffset()),
	}
	if c := strings.TrimSpace(req.GetCategory()); c != "" {
		parsed, ok := constants.ParseCategory(c)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown category %q", c)
		}
		filter.Category = parsed
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		known := false
		for _, s := range constants.StatusStrings() {
			if s == st {
				known = true
				break
			}
		}
		if !known {
			return nil, common.InvalidArgumentErrorf("unknown status %q", st)
		}
		filter.Status = constants.DocumentStatus(st)
	}

	docs, err := s.docs.List(ctx, filter)
	if err != nil {
		s.logger.Error("document.list.failed", "err", err)
		return nil, common.InternalError("failed to list documents")
	}
	resp := &v1.ListDocumentsResponse{Documents: make([]*v1.Document, 0, len(docs))}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, toProtoDocument(d))
	}
	return resp, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, req *v1.DeleteDocumentRequest) (*v1.DeleteDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		s.logger.Error("document.delete.failed", "document_id", id, "err", err)
		return nil, common.InternalError("failed to delete document")
	}
	return &v1.DeleteDocumentResponse{}, nil
}

func (s *DocumentService) ProcessDocument(ctx context.Context, req *v1.ProcessDocumentRequest) (*v1.ProcessDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}
	if doc.Status.IsTerminal() && !req.GetForce() {
		return nil, common.InvalidArgumentErrorf("document already %s; use force to reprocess", doc.Status)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  id,
		Force:       req.GetForce(),
		SubmittedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("document.enqueue.failed", "document_id", id, "err", err)
		return nil, common.InternalError("failed to queue document")
	}
	return &v1.ProcessDocumentResponse{Status: "queued"}, nil
}

func (s *DocumentService) RetryDocument(ctx context.Context, req *v1.RetryDocumentRequest) (*v1.RetryDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if _, err := s.docs.GetByID(ctx, id); err != nil {
		return nil, common.NotFoundError("document not found")
	}
	// Retry is allowed from any state; the reset clears the previous
	// error and outcome so the document runs a fresh cycle.
	if err := s.docs.ResetForRetry(ctx, id); err != nil {
		s.logger.Error("document.retry.reset_failed", "document_id", id, "err", err)
		return nil, common.InternalError("failed to reset document")
	}
	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  id,
		SubmittedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("document.retry.enqueue_failed", "document_id", id, "err", err)
		return nil, common.InternalError("failed to queue document")
	}
	return &v1.RetryDocumentResponse{Status: "queued"}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("id must be a UUID")
	}
	return id, nil
}

func toProtoDocument(d *entity.Document) *v1.Document {
	out := &v1.Document{
		Id:          d.ID.String(),
		Category:    string(d.Category),
		Status:      string(d.Status),
		Filename:    d.Filename,
		StoragePath: d.StoragePath,
		MimeType:    d.MIMEType,
		SizeBytes:   d.SizeBytes,
		LlmJson:     string(d.LLMJSON),
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.ErrorMessage != nil {
		out.ErrorMessage = *d.ErrorMessage
	}
	return out
}

func toProtoInvoice(inv *entity.Invoice) *v1.Invoice {
	out := &v1.Invoice{
		Id:         inv.ID.String(),
		DocumentId: inv.DocumentID.String(),
		Currency:   inv.Currency,
	}
	if inv.VendorName != nil {
		out.VendorName = *inv.VendorName
	}
	if inv.VendorAddress != nil {
		out.VendorAddress = *inv.VendorAddress
	}
	if inv.InvoiceNumber != nil {
		out.InvoiceNumber = *inv.InvoiceNumber
	}
	if inv.InvoiceDate != nil {
		out.InvoiceDate = inv.InvoiceDate.Format("2006-01-02")
	}
	if inv.DueDate != nil {
		out.DueDate = inv.DueDate.Format("2006-01-02")
	}
	if inv.Subtotal != nil {
		out.Subtotal = *inv.Subtotal
	}
	if inv.Tax != nil {
		out.Tax = *inv.Tax
	}
	if inv.Total != nil {
		out.Total = *inv.Total
	}
	for _, l := range inv.Lines {
		pl := &v1.InvoiceLine{
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		}
		if l.Description != nil {
			pl.Description = *l.Description
		}
		out.Lines = append(out.Lines, pl)
	}
	return out
}

func toProtoContract(ct *entity.Contract) *v1.Contract {
	out := &v1.Contract{
		Id:         ct.ID.String(),
		DocumentId: ct.DocumentID.String(),
	}
	if ct.PartyA != nil {
		out.PartyA = *ct.PartyA
	}
	if ct.PartyB != nil {
		out.PartyB = *ct.PartyB
	}
	if ct.EffectiveDate != nil {
		out.EffectiveDate = ct.EffectiveDate.Format("2006-01-02")
	}
	if ct.ExpirationDate != nil {
		out.ExpirationDate = ct.ExpirationDate.Format("2006-01-02")
	}
	if ct.Summary != nil {
		out.Summary = *ct.Summary
	}
	return out
}
