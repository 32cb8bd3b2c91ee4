package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/docflow/constants"
)

func newTestRenderer(maxWidth int) *Renderer {
	return NewRenderer(Config{MaxImageWidth: maxWidth},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func decodeWidth(t *testing.T, raw []byte) int {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if format != "png" {
		t.Fatalf("result format = %s, want png", format)
	}
	return img.Bounds().Dx()
}

func TestDownscaleWideImage(t *testing.T) {
	r := newTestRenderer(100)
	out, err := r.downscale(encodePNG(t, 400, 200))
	if err != nil {
		t.Fatalf("downscale returned error: %v", err)
	}
	if got := decodeWidth(t, out); got != 100 {
		t.Fatalf("width = %d, want 100", got)
	}
}

func TestDownscaleKeepsNarrowPNGUntouched(t *testing.T) {
	r := newTestRenderer(1600)
	in := encodePNG(t, 80, 40)
	out, err := r.downscale(in)
	if err != nil {
		t.Fatalf("downscale returned error: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatal("narrow PNG should pass through unchanged")
	}
}

func TestDownscaleReencodesJPEGAsPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 30))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding jpeg: %v", err)
	}

	r := newTestRenderer(1600)
	out, err := r.downscale(buf.Bytes())
	if err != nil {
		t.Fatalf("downscale returned error: %v", err)
	}
	if got := decodeWidth(t, out); got != 60 {
		t.Fatalf("width = %d, want 60", got)
	}
}

func TestDownscaleDisabledWhenMaxIsZero(t *testing.T) {
	r := newTestRenderer(0)
	in := encodePNG(t, 4000, 100)
	out, err := r.downscale(in)
	if err != nil {
		t.Fatalf("downscale returned error: %v", err)
	}
	if got := decodeWidth(t, out); got != 4000 {
		t.Fatalf("width = %d, want 4000", got)
	}
}

func TestRenderPNGMissingFile(t *testing.T) {
	r := newTestRenderer(1600)
	if _, err := r.RenderPNG(context.Background(), "/nonexistent/file.png", constants.MIMEPNG); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRenderPNGUnsupportedMIME(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := newTestRenderer(1600)
	if _, err := r.RenderPNG(context.Background(), path, "text/plain"); err == nil {
		t.Fatal("expected error for unsupported mime type")
	}
}

func TestRenderPNGImageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.png")
	if err := os.WriteFile(path, encodePNG(t, 300, 100), 0o644); err != nil {
		t.Fatal(err)
	}
	r := newTestRenderer(150)
	out, err := r.RenderPNG(context.Background(), path, constants.MIMEPNG)
	if err != nil {
		t.Fatalf("RenderPNG returned error: %v", err)
	}
	if got := decodeWidth(t, out); got != 150 {
		t.Fatalf("width = %d, want 150", got)
	}
}
