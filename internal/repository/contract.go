package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/gen/ent"
	"github.com/joseph-ayodele/docflow/gen/ent/contract"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/llm"
	"github.com/joseph-ayodele/docflow/internal/utils"
)

// FinishContractParams carries the contract upsert and the document
// completion written together in one transaction.
type FinishContractParams struct {
	DocumentID uuid.UUID
	Fields     llm.ContractFields
	RawJSON    json.RawMessage
}

type ContractRepository interface {
	FinishContract(ctx context.Context, p FinishContractParams) (*entity.Contract, error)
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Contract, error)
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &contractRepository{client: client, logger: logger}
}

func (r *contractRepository) FinishContract(ctx context.Context, p FinishContractParams) (*entity.Contract, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	ct, err := r.finishInTx(ctx, tx, p)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("contract finish rollback failed", "document_id", p.DocumentID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	r.logger.Info("contract processed", "document_id", p.DocumentID, "contract_id", ct.ID)
	return ct, nil
}

func (r *contractRepository) finishInTx(ctx context.Context, tx *ent.Tx, p FinishContractParams) (*entity.Contract, error) {
	f := p.Fields

	if _, err := tx.Document.
		UpdateOneID(p.DocumentID).
		SetStatus(string(constants.StatusExtracted)).
		SetLlmJSON(p.RawJSON).
		ClearErrorMessage().
		Save(ctx); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	existing, err := tx.Contract.Query().
		Where(contract.DocumentID(p.DocumentID)).
		Only(ctx)
	var row *ent.Contract
	switch {
	case err == nil:
		up := tx.Contract.UpdateOneID(existing.ID)
		if f.PartyA != nil {
			up = up.SetPartyA(*f.PartyA)
		} else {
			up = up.ClearPartyA()
		}
		if f.PartyB != nil {
			up = up.SetPartyB(*f.PartyB)
		} else {
			up = up.ClearPartyB()
		}
		if d := utils.ParseDate(deref(f.EffectiveDate)); d != nil {
			up = up.SetEffectiveDate(*d)
		} else {
			up = up.ClearEffectiveDate()
		}
		if d := utils.ParseDate(deref(f.ExpirationDate)); d != nil {
			up = up.SetExpirationDate(*d)
		} else {
			up = up.ClearExpirationDate()
		}
		if f.Summary != nil {
			up = up.SetSummary(*f.Summary)
		} else {
			up = up.ClearSummary()
		}
		row, err = up.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update contract: %w", err)
		}
	case ent.IsNotFound(err):
		row, err = tx.Contract.Create().
			SetDocumentID(p.DocumentID).
			SetNillablePartyA(f.PartyA).
			SetNillablePartyB(f.PartyB).
			SetNillableEffectiveDate(utils.ParseDate(deref(f.EffectiveDate))).
			SetNillableExpirationDate(utils.ParseDate(deref(f.ExpirationDate))).
			SetNillableSummary(f.Summary).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create contract: %w", err)
		}
	default:
		return nil, fmt.Errorf("load contract: %w", err)
	}
	return utils.ToContract(row), nil
}

func (r *contractRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.Contract, error) {
	row, err := r.client.Contract.Query().
		Where(contract.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToContract(row), nil
}
