package payslip

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/raster"
)

// PDF export geometry: A4 portrait with a 10mm margin on every edge.
const (
	pdfPageWidth  = 210.0
	pdfPageHeight = 297.0
	pdfMargin     = 10.0
)

// rasterScale is the pixel density multiplier shared by both exporters.
const rasterScale = 2

// Artifact is a finished export: bytes plus the metadata the HTTP layer
// needs to serve it.
type Artifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportPDF rasterizes the document with a forced light background and
// paginates the bitmap into a portrait A4 PDF. A tall document continues
// across pages: each page shows the next vertical slice of the same image.
func ExportPDF(doc Document, filename string) (Artifact, error) {
	img := raster.Render(doc.Lines(), raster.Options{
		Scale:   rasterScale,
		Variant: raster.VariantLight,
	})

	pngBytes, err := raster.EncodePNG(img)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	bounds := img.Bounds()
	layout := Paginate(float64(bounds.Dx()), float64(bounds.Dy()), pdfPageWidth, pdfPageHeight, pdfMargin)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("payslip", opts, bytes.NewReader(pngBytes))

	for _, offset := range layout.Offsets {
		pdf.AddPage()
		pdf.ClipRect(pdfMargin, pdfMargin, layout.UsableWidth, layout.UsableHeight, false)
		pdf.ImageOptions("payslip", pdfMargin, offset, layout.ImageWidth, layout.ImageHeight, false, opts, 0, "")
		pdf.ClipEnd()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	return Artifact{
		Filename:    filename,
		ContentType: "application/pdf",
		Content:     buf.Bytes(),
	}, nil
}

// PDFFilename builds "{code}_{lastname}_{firstname}.pdf" with whitespace
// collapsed out of the name parts.
func PDFFilename(code, lastName, firstName string) string {
	clean := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	return fmt.Sprintf("%s_%s_%s.pdf", clean(code), clean(lastName), clean(firstName))
}
