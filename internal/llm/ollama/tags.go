package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/joseph-ayodele/docflow/internal/common"
)

// ModelInfo is one entry from /api/tags.
type ModelInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

type tagsResponse struct {
	Models []ModelInfo `json:"models"`
}

// Ping checks connectivity to the inference backend. Not part of the
// extraction pipeline; used by startup checks and cmd/ollamacheck.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.tags(ctx)
	return err
}

// ListModels returns the models the backend advertises.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	tr, err := c.tags(ctx)
	if err != nil {
		return nil, err
	}
	return tr.Models, nil
}

// HasModel reports whether the configured model is available.
func (c *Client) HasModel(ctx context.Context) (bool, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range models {
		if m.Name == c.cfg.Model {
			return true, nil
		}
	}
	return false, nil
}

func (c *Client) tags(ctx context.Context) (*tagsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBackend, err)
	}
	defer func(b io.ReadCloser) {
		if err := b.Close(); err != nil {
			c.log.Warn("ollama.tags.body_close_error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: status %d", common.ErrBackend, resp.StatusCode)
	}
	var tr tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("%w: malformed envelope: %v", common.ErrBackend, err)
	}
	return &tr, nil
}
