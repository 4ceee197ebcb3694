// Package raster renders a payslip document's text lines into a bitmap
// image. The exporters embed that bitmap into a PDF or a print page, so the
// artifact looks identical regardless of which path produced it.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphWidth = 7  // basicfont.Face7x13 advance
	lineHeight = 16 // glyph height plus leading
	padding    = 12 // pixels around the text block, pre-scale
)

// Variant selects the background treatment during capture.
type Variant int

const (
	// VariantLight forces a white background regardless of theme.
	VariantLight Variant = iota
	// VariantTheme keeps the caller-supplied theme background.
	VariantTheme
)

type Options struct {
	// Scale is the pixel density multiplier. Both exporters capture at 2x.
	Scale int
	// Variant controls the background treatment.
	Variant Variant
	// ThemeBackground is used when Variant is VariantTheme. Defaults to white.
	ThemeBackground color.Color
	// ThemeForeground is the text color used when Variant is VariantTheme.
	// Dark backgrounds need a light foreground to stay legible. Defaults
	// to black.
	ThemeForeground color.Color
}

// Render draws lines of monospaced text into an RGBA bitmap at the requested
// pixel density. An empty document still produces a padded blank image.
func Render(lines []string, opts Options) *image.RGBA {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	bg := color.Color(color.White)
	fg := color.Color(color.Black)
	if opts.Variant == VariantTheme {
		if opts.ThemeBackground != nil {
			bg = opts.ThemeBackground
		}
		if opts.ThemeForeground != nil {
			fg = opts.ThemeForeground
		}
	}

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	w := maxLen*glyphWidth + 2*padding
	h := len(lines)*lineHeight + 2*padding

	base := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(base, base.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	drawer := &font.Drawer{
		Dst:  base,
		Src:  image.NewUniform(fg),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(padding, padding+i*lineHeight+basicfont.Face7x13.Ascent)
		drawer.DrawString(line)
	}

	if scale == 1 {
		return base
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return scaled
}

// EncodePNG serializes the bitmap for embedding into an export artifact.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
