package payslip

import "math"

// PageLayout describes how a rasterized document maps onto physical pages.
// All figures are in the page unit (millimeters); Scale converts image
// pixels to that unit.
type PageLayout struct {
	Scale        float64
	ImageWidth   float64
	ImageHeight  float64
	UsableWidth  float64
	UsableHeight float64
	// Offsets holds the vertical position of the image on each page. Page
	// one places the image at the top margin; later pages shift the same
	// image up by one usable height per page so the next slice shows.
	Offsets []float64
}

func (l PageLayout) Pages() int {
	return len(l.Offsets)
}

// Paginate computes the width-fit, multi-page layout: the image is scaled
// so its width fills the usable width, and its height spills onto as many
// pages as needed, ceil(scaledHeight / usableHeight) in total.
func Paginate(imgWidth, imgHeight, pageWidth, pageHeight, margin float64) PageLayout {
	usableWidth := pageWidth - 2*margin
	usableHeight := pageHeight - 2*margin

	scale := usableWidth / imgWidth
	scaledWidth := imgWidth * scale
	scaledHeight := imgHeight * scale

	pages := int(math.Ceil(scaledHeight / usableHeight))
	if pages < 1 {
		pages = 1
	}

	offsets := make([]float64, pages)
	for i := range offsets {
		offsets[i] = margin - float64(i)*usableHeight
	}

	return PageLayout{
		Scale:        scale,
		ImageWidth:   scaledWidth,
		ImageHeight:  scaledHeight,
		UsableWidth:  usableWidth,
		UsableHeight: usableHeight,
		Offsets:      offsets,
	}
}

// FitToPage computes the single-page layout: the scale is the minimum of
// the width-fit and height-fit ratios, so the whole image lands inside the
// usable area without cropping.
func FitToPage(imgWidth, imgHeight, pageWidth, pageHeight, margin float64) PageLayout {
	usableWidth := pageWidth - 2*margin
	usableHeight := pageHeight - 2*margin

	scale := math.Min(usableWidth/imgWidth, usableHeight/imgHeight)

	return PageLayout{
		Scale:        scale,
		ImageWidth:   imgWidth * scale,
		ImageHeight:  imgHeight * scale,
		UsableWidth:  usableWidth,
		UsableHeight: usableHeight,
		Offsets:      []float64{margin},
	}
}
