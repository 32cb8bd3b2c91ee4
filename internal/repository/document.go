package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/gen/ent"
	"github.com/joseph-ayodele/docflow/gen/ent/document"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/utils"
)

// CreateDocumentParams wraps parameters for registering an uploaded file.
// The file itself has already been written by the upload collaborator;
// we only record where it lives.
type CreateDocumentParams struct {
	Filename    string
	StoragePath string
	MIMEType    string
	SizeBytes   int64
	Category    constants.DocumentCategory // empty means general
}

// ListFilter narrows ListDocuments. Zero values mean "no filter".
type ListFilter struct {
	Category constants.DocumentCategory
	Status   constants.DocumentStatus
	Search   string // substring match on filename
	Limit    int
	Offset   int
}

// DocumentRepository owns all Document row mutations. Status and
// category writes happen only here and in the invoice/contract
// repositories' transactional finishers.
type DocumentRepository interface {
	Create(ctx context.Context, p CreateDocumentParams) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	List(ctx context.Context, f ListFilter) ([]*entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	MarkProcessing(ctx context.Context, id uuid.UUID) error
	SetCategory(ctx context.Context, id uuid.UUID, cat constants.DocumentCategory) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	ResetForRetry(ctx context.Context, id uuid.UUID) error
	FinishGeneral(ctx context.Context, id uuid.UUID, raw json.RawMessage) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, p CreateDocumentParams) (*entity.Document, error) {
	cat := p.Category
	if cat == "" {
		cat = constants.CategoryGeneral
	}
	row, err := r.client.Document.
		Create().
		SetFilename(p.Filename).
		SetStoragePath(p.StoragePath).
		SetMimeType(p.MIMEType).
		SetSizeBytes(p.SizeBytes).
		SetCategory(string(cat)).
		SetStatus(string(constants.StatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("document create failed", "filename", p.Filename, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "filename", p.Filename, "category", cat)
	return utils.ToDocument(row), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepository) List(ctx context.Context, f ListFilter) ([]*entity.Document, error) {
	q := r.client.Document.Query()
	if f.Category != "" {
		q = q.Where(document.Category(string(f.Category)))
	}
	if f.Status != "" {
		q = q.Where(document.Status(string(f.Status)))
	}
	if f.Search != "" {
		q = q.Where(document.FilenameContainsFold(f.Search))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	rows, err := q.Order(ent.Desc(document.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("document list failed", "error", err)
		return nil, err
	}
	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDocument(row)
	}
	return result, nil
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Child invoice/contract rows go with it (cascade).
	if err := r.client.Document.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("document delete failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document deleted", "document_id", id)
	return nil
}

func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Document.
		UpdateOneID(id).
		SetStatus(string(constants.StatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("document mark processing failed", "document_id", id, "error", err)
		return err
	}
	return nil
}

func (r *documentRepository) SetCategory(ctx context.Context, id uuid.UUID, cat constants.DocumentCategory) error {
	_, err := r.client.Document.
		UpdateOneID(id).
		SetCategory(string(cat)).
		Save(ctx)
	if err != nil {
		r.logger.Error("document set category failed", "document_id", id, "category", cat, "error", err)
		return err
	}
	r.logger.Info("document classified", "document_id", id, "category", cat)
	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.client.Document.
		UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("document mark failed write error", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document marked failed", "document_id", id, "message", message)
	return nil
}

func (r *documentRepository) ResetForRetry(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Document.
		UpdateOneID(id).
		SetStatus(string(constants.StatusPending)).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("document retry reset failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document reset for retry", "document_id", id)
	return nil
}

func (r *documentRepository) FinishGeneral(ctx context.Context, id uuid.UUID, raw json.RawMessage) error {
	_, err := r.client.Document.
		UpdateOneID(id).
		SetStatus(string(constants.StatusExtracted)).
		SetLlmJSON(raw).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("document finish general failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("general document processed", "document_id", id)
	return nil
}
