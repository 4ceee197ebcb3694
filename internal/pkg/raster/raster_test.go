package raster

import (
	"image"
	"image/color"
	"testing"
)

func colorCounts(img *image.RGBA) map[color.RGBA]int {
	counts := make(map[color.RGBA]int)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			counts[img.RGBAAt(x, y)]++
		}
	}
	return counts
}

func TestRenderLightVariant(t *testing.T) {
	img := Render([]string{"NET PAY 45000.00"}, Options{Scale: 1, Variant: VariantLight})

	counts := colorCounts(img)
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	black := color.RGBA{0x00, 0x00, 0x00, 0xff}

	if counts[white] == 0 {
		t.Error("light variant has no white background pixels")
	}
	if counts[black] == 0 {
		t.Error("light variant has no black text pixels")
	}
}

// A dark theme background must come with a matching light foreground;
// black-on-dark text is unreadable on the printed page.
func TestRenderThemeVariantForeground(t *testing.T) {
	bg := color.RGBA{0x1f, 0x29, 0x37, 0xff}
	fg := color.RGBA{0xf9, 0xfa, 0xfb, 0xff}

	img := Render([]string{"NET PAY 45000.00"}, Options{
		Scale:           1,
		Variant:         VariantTheme,
		ThemeBackground: bg,
		ThemeForeground: fg,
	})

	counts := colorCounts(img)
	if counts[bg] == 0 {
		t.Error("theme variant has no theme background pixels")
	}
	if counts[fg] == 0 {
		t.Error("theme variant has no theme foreground pixels")
	}
	if counts[color.RGBA{0x00, 0x00, 0x00, 0xff}] != 0 {
		t.Error("theme variant drew black text despite a configured foreground")
	}
}

func TestRenderThemeVariantDefaults(t *testing.T) {
	img := Render([]string{"x"}, Options{Scale: 1, Variant: VariantTheme})

	counts := colorCounts(img)
	if counts[color.RGBA{0xff, 0xff, 0xff, 0xff}] == 0 {
		t.Error("theme variant without a background did not default to white")
	}
	if counts[color.RGBA{0x00, 0x00, 0x00, 0xff}] == 0 {
		t.Error("theme variant without a foreground did not default to black")
	}
}

func TestRenderScaleDoublesDimensions(t *testing.T) {
	base := Render([]string{"abc"}, Options{Scale: 1, Variant: VariantLight})
	scaled := Render([]string{"abc"}, Options{Scale: 2, Variant: VariantLight})

	if scaled.Bounds().Dx() != 2*base.Bounds().Dx() || scaled.Bounds().Dy() != 2*base.Bounds().Dy() {
		t.Errorf("2x render is %dx%d, base is %dx%d",
			scaled.Bounds().Dx(), scaled.Bounds().Dy(), base.Bounds().Dx(), base.Bounds().Dy())
	}
}
