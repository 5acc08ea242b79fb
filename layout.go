package main

import (
	"image"

	"gallery/internal/gallery"
)

// Grid layout constants
const (
	cardWidth   = gallery.PreviewWidth
	cardHeight  = gallery.PreviewHeight
	cardSpacing = 10
	gridPadding = 10
)

// gridLayout places cards in rows of equal-width columns, centered
// horizontally, scrolled vertically by scroll pixels.
type gridLayout struct {
	width, height int
	scroll        float64
}

func (l gridLayout) Columns() int {
	cols := (l.width - 2*gridPadding + cardSpacing) / (cardWidth + cardSpacing)
	if cols < 1 {
		return 1
	}
	return cols
}

func (l gridLayout) rows(n int) int {
	cols := l.Columns()
	return (n + cols - 1) / cols
}

// ContentHeight is the height of the whole grid of n cards.
func (l gridLayout) ContentHeight(n int) int {
	rows := l.rows(n)
	if rows == 0 {
		return 0
	}
	return 2*gridPadding + rows*(cardHeight+cardSpacing) - cardSpacing
}

// CellRect returns the screen rectangle of card i.
func (l gridLayout) CellRect(i int) image.Rectangle {
	cols := l.Columns()
	rowWidth := cols*(cardWidth+cardSpacing) - cardSpacing
	left := (l.width - rowWidth) / 2
	if left < gridPadding {
		left = gridPadding
	}
	x := left + (i%cols)*(cardWidth+cardSpacing)
	y := gridPadding + (i/cols)*(cardHeight+cardSpacing) - int(l.scroll)
	return image.Rect(x, y, x+cardWidth, y+cardHeight)
}

// VisibleRange returns the half-open range of card indexes that intersect
// the viewport.
func (l gridLayout) VisibleRange(n int) (first, last int) {
	if n == 0 || l.height <= 0 {
		return 0, 0
	}
	stride := cardHeight + cardSpacing
	scroll := int(l.scroll)
	// first row whose bottom edge is below the top of the viewport
	firstRow := 0
	if above := scroll - gridPadding - cardHeight; above >= 0 {
		firstRow = above/stride + 1
	}
	// rows whose top edge is above the bottom of the viewport
	lastRow := 0
	if below := scroll + l.height - gridPadding; below > 0 {
		lastRow = (below + stride - 1) / stride
	}
	if rows := l.rows(n); lastRow > rows {
		lastRow = rows
	}
	cols := l.Columns()
	first = firstRow * cols
	last = lastRow * cols
	if last > n {
		last = n
	}
	if first > last {
		first = last
	}
	return first, last
}

// HitTest returns the card under the screen point (x, y).
func (l gridLayout) HitTest(x, y, n int) (int, bool) {
	first, last := l.VisibleRange(n)
	pt := image.Pt(x, y)
	for i := first; i < last; i++ {
		if pt.In(l.CellRect(i)) {
			return i, true
		}
	}
	return 0, false
}

// ClampScroll limits scroll to the scrollable range of n cards.
func (l gridLayout) ClampScroll(scroll float64, n int) float64 {
	maxScroll := float64(l.ContentHeight(n) - l.height)
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

// ScrollToCard returns the scroll offset that brings card i into view.
func (l gridLayout) ScrollToCard(i, n int) float64 {
	rect := l.CellRect(i)
	scroll := l.scroll
	switch {
	case rect.Min.Y < 0:
		scroll += float64(rect.Min.Y - gridPadding)
	case rect.Max.Y > l.height:
		scroll += float64(rect.Max.Y - l.height + gridPadding)
	}
	return l.ClampScroll(scroll, n)
}
