package raster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/joseph-ayodele/docflow/constants"
)

// Rasterizer converts a stored document into a single PNG image. PDFs
// are rendered first-page-only; a document sends exactly one image to
// the model backend.
type Rasterizer interface {
	RenderPNG(ctx context.Context, storagePath, mimeType string) ([]byte, error)
}

// Config for the renderer.
type Config struct {
	PDFRenderer   string // ghostscript binary, e.g. "gs" or "gswin64c"
	MaxImageWidth int    // px; 0 disables downscaling
}

type Renderer struct {
	cfg Config
	log *slog.Logger
}

func NewRenderer(cfg Config, logger *slog.Logger) *Renderer {
	if cfg.PDFRenderer == "" {
		cfg.PDFRenderer = "gs"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{cfg: cfg, log: logger}
}

func (r *Renderer) RenderPNG(ctx context.Context, storagePath, mimeType string) ([]byte, error) {
	if _, err := os.Stat(storagePath); err != nil {
		return nil, fmt.Errorf("file not found at path %s: %w", storagePath, err)
	}

	switch {
	case mimeType == constants.MIMEPDF:
		return r.renderPDFFirstPage(ctx, storagePath)
	case constants.IsImageMIME(mimeType):
		return r.preparePNG(storagePath)
	default:
		return nil, fmt.Errorf("unsupported MIME type for image conversion: %s", mimeType)
	}
}

// renderPDFFirstPage shells out to ghostscript to render page 1 at 150dpi.
func (r *Renderer) renderPDFFirstPage(ctx context.Context, pdfPath string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "docflow_pdf_")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			r.log.Warn("raster.pdf.cleanup_failed", "dir", tmpDir, "error", err)
		}
	}()

	outPath := filepath.Join(tmpDir, "page1.png")
	cmd := exec.CommandContext(ctx, r.cfg.PDFRenderer,
		"-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE=png16m", "-r150",
		"-dFirstPage=1", "-dLastPage=1",
		"-sOutputFile="+outPath,
		pdfPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ghostscript render failed: %w: %s", err, string(out))
	}

	png, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("ghostscript produced no PNG output: %w", err)
	}
	if len(png) == 0 {
		return nil, fmt.Errorf("ghostscript produced empty PNG output")
	}

	r.log.Info("raster.pdf.ok", "path", pdfPath, "bytes", len(png))
	return r.downscale(png)
}

// preparePNG reads an image file, re-encodes it as PNG, and downscales it
// when wider than the configured maximum.
func (r *Renderer) preparePNG(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image bytes: %w", err)
	}
	out, err := r.downscale(b)
	if err != nil {
		return nil, err
	}
	return out, nil
}
