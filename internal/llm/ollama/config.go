package ollama

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joseph-ayodele/docflow/internal/raster"
)

// Config for the Ollama client.
type Config struct {
	BaseURL string        // default http://127.0.0.1:11434, falls back to env OLLAMA_BASE_URL
	Model   string        // e.g. "qwen3-vl:8b"
	Timeout time.Duration // http client timeout; vision inference is slow
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	raster     raster.Rasterizer
	log        *slog.Logger
}

func NewClient(cfg Config, rz raster.Rasterizer, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("OLLAMA_BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "qwen3-vl:8b"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		raster:     rz,
		log:        logger,
	}
}
