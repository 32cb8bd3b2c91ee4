package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
)

// Document represents an uploaded document for data transfer between layers.
type Document struct {
	ID           uuid.UUID                  `json:"id"`
	Category     constants.DocumentCategory `json:"category"`
	Status       constants.DocumentStatus   `json:"status"`
	Filename     string                     `json:"filename"`
	StoragePath  string                     `json:"storage_path"`
	MIMEType     string                     `json:"mime_type"`
	SizeBytes    int64                      `json:"size_bytes"`
	LLMJSON      json.RawMessage            `json:"llm_json,omitempty"`
	ErrorMessage *string                    `json:"error_message,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}
