// Package qrcode renders Wi-Fi payloads as QR code images using go-qrcode.
package qrcode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/skip2/go-qrcode"

	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.QRRenderer     = (*Renderer)(nil)
	_ driven.QRTextRenderer = (*Renderer)(nil)
)

// Options controls the rendered image. Size is the side of the square image in
// pixels and Margin the quiet zone in modules.
type Options struct {
	Size   int
	Margin int
	Level  qrcode.RecoveryLevel
	Dark   color.Color
	Light  color.Color
}

// DefaultOptions returns a 400px image with a two-module margin, black modules
// and a transparent background.
func DefaultOptions() Options {
	return Options{
		Size:   400,
		Margin: 2,
		Level:  qrcode.Medium,
		Dark:   color.Black,
		Light:  color.Transparent,
	}
}

// Renderer implements the QR renderer ports.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer. A non-positive Size, a negative Margin and
// nil colors take their DefaultOptions values. Margin 0 and the zero Level
// (qrcode.Low) are kept as given.
func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Size <= 0 {
		opts.Size = def.Size
	}
	if opts.Margin < 0 {
		opts.Margin = def.Margin
	}
	if opts.Dark == nil {
		opts.Dark = def.Dark
	}
	if opts.Light == nil {
		opts.Light = def.Light
	}
	return &Renderer{opts: opts}
}

// PNG encodes payload and returns the PNG image bytes.
func (r *Renderer) PNG(ctx context.Context, payload string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := qrcode.New(payload, r.opts.Level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	q.DisableBorder = true

	var buf bytes.Buffer
	if err := png.Encode(&buf, r.draw(q.Bitmap())); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return buf.Bytes(), nil
}

// Text renders payload with half-height block characters for terminals.
func (r *Renderer) Text(payload string) (string, error) {
	q, err := qrcode.New(payload, r.opts.Level)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	return q.ToSmallString(false), nil
}

// draw scales bitmap to the configured size, centering it inside the margin.
// go-qrcode's own border is fixed at four modules, so the quiet zone is drawn here.
func (r *Renderer) draw(bitmap [][]bool) image.Image {
	modules := len(bitmap)
	total := modules + 2*r.opts.Margin

	size := r.opts.Size
	scale := size / total
	if scale < 1 {
		scale = 1
		size = total
	}
	offset := (size - modules*scale) / 2

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.opts.Light), image.Point{}, draw.Src)

	dark := image.NewUniform(r.opts.Dark)
	for y, row := range bitmap {
		for x, set := range row {
			if !set {
				continue
			}
			px := offset + x*scale
			py := offset + y*scale
			draw.Draw(img, image.Rect(px, py, px+scale, py+scale), dark, image.Point{}, draw.Src)
		}
	}

	return img
}
