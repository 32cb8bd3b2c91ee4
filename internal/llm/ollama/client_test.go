package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/internal/common"
	"github.com/joseph-ayodele/docflow/internal/entity"
)

type fakeRasterizer struct {
	png []byte
	err error
}

func (f *fakeRasterizer) RenderPNG(_ context.Context, _ string, _ string) ([]byte, error) {
	return f.png, f.err
}

func testDoc() *entity.Document {
	return &entity.Document{
		ID:          uuid.New(),
		Filename:    "invoice.pdf",
		StoragePath: "/tmp/invoice.pdf",
		MIMEType:    constants.MIMEPDF,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL: srv.URL,
		Model:   "qwen3-vl:8b",
		Timeout: 5 * time.Second,
	}, &fakeRasterizer{png: []byte("png-bytes")}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func generateReply(t *testing.T, response string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"response": response})
	}
}

func TestClassifyHappyPath(t *testing.T) {
	c := newTestClient(t, generateReply(t, `{"category": "invoice"}`))
	cat, err := c.Classify(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if cat != constants.CategoryInvoice {
		t.Fatalf("category = %v, want invoice", cat)
	}
}

func TestClassifyUnrecognizedLabelFallsOpen(t *testing.T) {
	c := newTestClient(t, generateReply(t, `{"category": "receipt"}`))
	cat, err := c.Classify(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if cat != constants.CategoryGeneral {
		t.Fatalf("category = %v, want general", cat)
	}
}

func TestClassifyBadJSONFallsOpen(t *testing.T) {
	c := newTestClient(t, generateReply(t, "the model rambled instead of answering"))
	cat, err := c.Classify(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if cat != constants.CategoryGeneral {
		t.Fatalf("category = %v, want general", cat)
	}
}

func TestClassifyBackendErrorIsHard(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	})
	_, err := c.Classify(context.Background(), testDoc())
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}
	if !errors.Is(err, common.ErrBackend) {
		t.Fatalf("error = %v, want ErrBackend", err)
	}
}

func TestGenerateRequestShape(t *testing.T) {
	var got struct {
		Model  string   `json:"model"`
		Prompt string   `json:"prompt"`
		Images []string `json:"images"`
		Stream bool     `json:"stream"`
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s, want /api/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"response": `{"category": "general"}`})
	})

	if _, err := c.Classify(context.Background(), testDoc()); err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if got.Model != "qwen3-vl:8b" {
		t.Errorf("model = %q", got.Model)
	}
	if got.Stream {
		t.Error("stream must be false")
	}
	if got.Prompt == "" {
		t.Error("prompt is empty")
	}
	if len(got.Images) != 1 {
		t.Fatalf("images len = %d, want 1", len(got.Images))
	}
	decoded, err := base64.StdEncoding.DecodeString(got.Images[0])
	if err != nil {
		t.Fatalf("image is not base64: %v", err)
	}
	if string(decoded) != "png-bytes" {
		t.Errorf("image payload = %q", decoded)
	}
}

func TestGenerateMissingResponseField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"done": true})
	})
	_, err := c.ExtractInvoice(context.Background(), testDoc())
	if !errors.Is(err, common.ErrBackend) {
		t.Fatalf("error = %v, want ErrBackend", err)
	}
}

func TestExtractInvoiceReturnsSentinelOnGarbage(t *testing.T) {
	c := newTestClient(t, generateReply(t, "no json here"))
	m, err := c.ExtractInvoice(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("ExtractInvoice returned error: %v", err)
	}
	if _, ok := m["_error"]; !ok {
		t.Fatalf("expected sentinel mapping, got %v", m)
	}
}

func TestExtractContractParsesFields(t *testing.T) {
	c := newTestClient(t, generateReply(t, "```json\n{\"party_a\": \"Acme\", \"party_b\": \"Globex\", \"summary\": \"supply agreement\"}\n```"))
	m, err := c.ExtractContract(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("ExtractContract returned error: %v", err)
	}
	if m["party_a"] != "Acme" || m["party_b"] != "Globex" {
		t.Fatalf("unexpected payload: %v", m)
	}
}

func TestRasterFailureAbortsGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be reached when rendering fails")
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{BaseURL: srv.URL, Model: "qwen3-vl:8b"},
		&fakeRasterizer{err: errors.New("gs exploded")},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	if _, err := c.ExtractInvoice(context.Background(), testDoc()); err == nil {
		t.Fatal("expected error when rendering fails")
	}
}
