package payslip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateSinglePage(t *testing.T) {
	// Image narrower than tall but short enough to fit one A4 page.
	layout := Paginate(760, 500, 210, 297, 10)

	assert.Equal(t, 1, layout.Pages())
	assert.InDelta(t, 190.0, layout.ImageWidth, 0.001)
	assert.Equal(t, []float64{10}, layout.Offsets)
}

func TestPaginateMultiPage(t *testing.T) {
	// Scaled height: 3000 * (190/760) = 750mm over 277mm usable = 3 pages.
	layout := Paginate(760, 3000, 210, 297, 10)

	assert.Equal(t, 3, layout.Pages())

	// Each page starts exactly where the previous one left off.
	for i, offset := range layout.Offsets {
		assert.InDelta(t, 10-float64(i)*layout.UsableHeight, offset, 0.001)
	}

	// Total usable area covers the full scaled image.
	assert.GreaterOrEqual(t, float64(layout.Pages())*layout.UsableHeight, layout.ImageHeight)
	assert.Less(t, float64(layout.Pages()-1)*layout.UsableHeight, layout.ImageHeight)
}

func TestPaginateAlwaysAtLeastOnePage(t *testing.T) {
	layout := Paginate(760, 1, 210, 297, 10)
	assert.Equal(t, 1, layout.Pages())
}

func TestFitToPageNeverExceedsUsableArea(t *testing.T) {
	cases := []struct {
		name   string
		width  float64
		height float64
	}{
		{"tall", 760, 4000},
		{"wide", 4000, 760},
		{"square", 1000, 1000},
		{"tiny", 10, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			layout := FitToPage(c.width, c.height, 210, 297, 1.2)

			assert.LessOrEqual(t, layout.ImageWidth, layout.UsableWidth+0.001)
			assert.LessOrEqual(t, layout.ImageHeight, layout.UsableHeight+0.001)
			assert.Equal(t, 1, layout.Pages())

			// Aspect ratio is preserved.
			assert.InDelta(t, c.width/c.height, layout.ImageWidth/layout.ImageHeight, 0.001)
		})
	}
}
