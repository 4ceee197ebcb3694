package payslip

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/color"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/raster"
)

// Print export geometry: same A4 proportions as the PDF path but with a
// much thinner margin, and the whole image must land on a single page.
const printMargin = 1.2

// Theme selects the background carried into the print capture. The PDF
// path always forces light; the print path keeps the caller's theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var (
	darkBackground = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	darkForeground = color.RGBA{R: 0xf9, G: 0xfa, B: 0xfb, A: 0xff}
)

const printPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  html, body { margin: 0; padding: 0; }
  img {
    display: block;
    width: {{.WidthMM}}mm;
    height: {{.HeightMM}}mm;
    margin: {{.MarginMM}}mm;
    page-break-inside: avoid;
    break-inside: avoid;
  }
  @media print {
    @page { size: A4 portrait; margin: 0; }
  }
</style>
</head>
<body onload="window.print(); window.close();">
<img src="data:image/png;base64,{{.ImageData}}" alt="payslip">
</body>
</html>
`

var printPage = template.Must(template.New("print").Parse(printPageTemplate))

// ExportPrint rasterizes the document with the caller's theme background
// and wraps the bitmap in a self-printing HTML page. The image is scaled by
// the minimum of the width-fit and height-fit ratios so it always fits one
// page without cropping.
func ExportPrint(doc Document, theme Theme, filename string) (Artifact, error) {
	opts := raster.Options{
		Scale:   rasterScale,
		Variant: raster.VariantTheme,
	}
	if theme == ThemeDark {
		opts.ThemeBackground = darkBackground
		opts.ThemeForeground = darkForeground
	}

	img := raster.Render(doc.Lines(), opts)

	pngBytes, err := raster.EncodePNG(img)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	bounds := img.Bounds()
	layout := FitToPage(float64(bounds.Dx()), float64(bounds.Dy()), pdfPageWidth, pdfPageHeight, printMargin)

	var buf bytes.Buffer
	err = printPage.Execute(&buf, struct {
		Title     string
		WidthMM   string
		HeightMM  string
		MarginMM  string
		ImageData string
	}{
		Title:     filename,
		WidthMM:   fmt.Sprintf("%.2f", layout.ImageWidth),
		HeightMM:  fmt.Sprintf("%.2f", layout.ImageHeight),
		MarginMM:  fmt.Sprintf("%.1f", printMargin),
		ImageData: base64.StdEncoding.EncodeToString(pngBytes),
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	return Artifact{
		Filename:    filename,
		ContentType: "text/html; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}
