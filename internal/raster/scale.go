package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// downscale decodes the image and, if wider than MaxImageWidth, scales it
// down proportionally. The result is always PNG-encoded, whatever the
// input format was.
func (r *Renderer) downscale(raw []byte) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	if r.cfg.MaxImageWidth <= 0 || width <= r.cfg.MaxImageWidth {
		if format == "png" {
			return raw, nil
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, src); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), nil
	}

	height := bounds.Dy() * r.cfg.MaxImageWidth / width
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.cfg.MaxImageWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	r.log.Info("raster.downscale.ok",
		"from_width", width,
		"to_width", r.cfg.MaxImageWidth,
		"bytes", buf.Len(),
	)
	return buf.Bytes(), nil
}
