package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/internal/common"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/llm"
)

// Classify sends the document image with the classification instruction
// and maps the answer onto the closed category set. This path is
// deliberately fail-open: bad JSON or an unrecognized label yields
// CategoryGeneral, never an error, so a flaky model can't wedge a
// document that would otherwise process fine as general.
func (c *Client) Classify(ctx context.Context, doc *entity.Document) (constants.DocumentCategory, error) {
	raw, err := c.generate(ctx, doc, llm.ClassifyPrompt)
	if err != nil {
		return "", err
	}

	result, err := llm.Decode(raw)
	if err != nil || llm.IsDecodeFailure(result) {
		c.log.Warn("ollama.classify.bad_json", "document_id", doc.ID, "raw_len", len(raw))
		return constants.CategoryGeneral, nil
	}

	label, _ := result["category"].(string)
	cat, recognized := constants.ParseCategory(label)
	if !recognized {
		c.log.Warn("ollama.classify.unrecognized_category", "document_id", doc.ID, "label", label)
		return constants.CategoryGeneral, nil
	}

	c.log.Info("ollama.classify.ok", "document_id", doc.ID, "category", cat)
	return cat, nil
}

// ExtractInvoice asks for structured invoice data. The decoded mapping is
// returned as-is; the caller decides what to do with a decode-failure
// sentinel.
func (c *Client) ExtractInvoice(ctx context.Context, doc *entity.Document) (map[string]any, error) {
	return c.extract(ctx, doc, llm.ExtractInvoicePrompt, llm.BuildInvoiceJSONSchema())
}

// ExtractContract asks for contract parties, dates, and a summary.
func (c *Client) ExtractContract(ctx context.Context, doc *entity.Document) (map[string]any, error) {
	return c.extract(ctx, doc, llm.ExtractContractPrompt, llm.BuildContractJSONSchema())
}

func (c *Client) extract(ctx context.Context, doc *entity.Document, prompt string, schema map[string]any) (map[string]any, error) {
	raw, err := c.generate(ctx, doc, prompt)
	if err != nil {
		return nil, err
	}

	result, err := llm.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}

	// Advisory only: a payload with nulls in odd places is still usable.
	if !llm.IsDecodeFailure(result) {
		if vErr := llm.ValidateMappingAgainstSchema(schema, result); vErr != nil {
			c.log.Warn("ollama.extract.schema_drift", "document_id", doc.ID, "error", vErr)
		}
	}
	return result, nil
}

// generateRequest is the /api/generate body. stream must be false; the
// decoder expects one complete response string.
type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
}

type generateResponse struct {
	Response *string `json:"response"`
}

// generate renders the document to a single PNG, base64-encodes it, and
// issues one /api/generate call. Transport errors, non-2xx statuses, and
// a missing response field all collapse into one backend failure; callers
// never need to tell them apart.
func (c *Client) generate(ctx context.Context, doc *entity.Document, prompt string) (string, error) {
	reqID := uuid.New().String()
	start := time.Now()

	png, err := c.raster.RenderPNG(ctx, doc.StoragePath, doc.MIMEType)
	if err != nil {
		return "", fmt.Errorf("render document image: %w", err)
	}

	body := generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Images: []string{base64.StdEncoding.EncodeToString(png)},
		Stream: false,
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("ollama.generate.request",
		"req_id", reqID,
		"document_id", doc.ID,
		"model", c.cfg.Model,
		"image_bytes", len(png),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ollama.generate.send_error", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("%w: %v", common.ErrBackend, err)
	}
	defer func(b io.ReadCloser) {
		if err := b.Close(); err != nil {
			c.log.Warn("ollama.generate.body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.log.Info("ollama.generate.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("%w: status %d: %s", common.ErrBackend, resp.StatusCode, truncate(string(raw), 512))
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("%w: malformed envelope: %v", common.ErrBackend, err)
	}
	if gr.Response == nil {
		return "", fmt.Errorf("%w: missing response field", common.ErrBackend)
	}
	return *gr.Response, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
