package main

import (
	"image"
	"testing"
)

func TestGridColumns(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"Narrow window", 200, 1},
		{"Exactly one card", 2*gridPadding + cardWidth, 1},
		{"Two cards", 2*gridPadding + 2*cardWidth + cardSpacing, 2},
		{"Just short of three", 2*gridPadding + 3*cardWidth + 2*cardSpacing - 1, 2},
		{"Wide window", 1920, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := gridLayout{width: tt.width, height: 600}
			if got := l.Columns(); got != tt.expected {
				t.Errorf("Columns() for width %d = %d, want %d", tt.width, got, tt.expected)
			}
		})
	}
}

func TestGridCellRect(t *testing.T) {
	l := gridLayout{width: 2*gridPadding + 2*cardWidth + cardSpacing, height: 600}

	tests := []struct {
		index    int
		expected image.Rectangle
	}{
		{0, image.Rect(gridPadding, gridPadding, gridPadding+cardWidth, gridPadding+cardHeight)},
		{1, image.Rect(gridPadding+cardWidth+cardSpacing, gridPadding, gridPadding+2*cardWidth+cardSpacing, gridPadding+cardHeight)},
		{2, image.Rect(gridPadding, gridPadding+cardHeight+cardSpacing, gridPadding+cardWidth, gridPadding+2*cardHeight+cardSpacing)},
	}
	for _, tt := range tests {
		if got := l.CellRect(tt.index); got != tt.expected {
			t.Errorf("CellRect(%d) = %v, want %v", tt.index, got, tt.expected)
		}
	}

	l.scroll = 100
	if got := l.CellRect(0).Min.Y; got != gridPadding-100 {
		t.Errorf("Scrolled CellRect(0).Min.Y = %d, want %d", got, gridPadding-100)
	}
}

func TestGridVisibleRange(t *testing.T) {
	// two columns, row stride 370, viewport 600 tall
	width := 2*gridPadding + 2*cardWidth + cardSpacing
	stride := float64(cardHeight + cardSpacing)

	tests := []struct {
		name          string
		n             int
		scroll        float64
		expectedFirst int
		expectedLast  int
	}{
		{"Empty gallery", 0, 0, 0, 0},
		{"Top of gallery", 20, 0, 0, 4},
		{"Fewer cards than viewport", 3, 0, 0, 3},
		{"Scrolled one row", 20, stride, 2, 6},
		{"Scrolled to the end", 20, 3110, 16, 20}, // ContentHeight(20) - 600
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := gridLayout{width: width, height: 600, scroll: tt.scroll}
			first, last := l.VisibleRange(tt.n)
			if first != tt.expectedFirst || last != tt.expectedLast {
				t.Errorf("VisibleRange(%d) = [%d,%d), want [%d,%d)", tt.n, first, last, tt.expectedFirst, tt.expectedLast)
			}
			for i := first; i < last; i++ {
				r := l.CellRect(i)
				if r.Max.Y <= 0 || r.Min.Y >= l.height {
					t.Errorf("Card %d at %v is reported visible but lies outside the viewport", i, r)
				}
			}
		})
	}
}

func TestGridHitTest(t *testing.T) {
	l := gridLayout{width: 2*gridPadding + 2*cardWidth + cardSpacing, height: 800}

	if i, ok := l.HitTest(gridPadding+5, gridPadding+5, 4); !ok || i != 0 {
		t.Errorf("HitTest on first card = %d, %v", i, ok)
	}
	if i, ok := l.HitTest(gridPadding+cardWidth+cardSpacing+5, gridPadding+cardHeight+cardSpacing+5, 4); !ok || i != 3 {
		t.Errorf("HitTest on fourth card = %d, %v", i, ok)
	}
	if _, ok := l.HitTest(gridPadding+cardWidth+2, gridPadding+5, 4); ok {
		t.Error("HitTest in the gap between cards should miss")
	}
	if _, ok := l.HitTest(gridPadding+5, gridPadding+cardHeight+cardSpacing+5, 1); ok {
		t.Error("HitTest past the last card should miss")
	}
}

func TestGridClampScroll(t *testing.T) {
	l := gridLayout{width: 2*gridPadding + cardWidth, height: 500}
	content := float64(l.ContentHeight(5))

	if got := l.ClampScroll(-50, 5); got != 0 {
		t.Errorf("ClampScroll(-50) = %v, want 0", got)
	}
	if got := l.ClampScroll(1e9, 5); got != content-500 {
		t.Errorf("ClampScroll(1e9) = %v, want %v", got, content-500)
	}
	if got := l.ClampScroll(100, 1); got != 0 {
		t.Errorf("ClampScroll with short content = %v, want 0", got)
	}

	if got := l.ScrollToCard(4, 5); got != content-500 {
		t.Errorf("ScrollToCard(last) = %v, want %v", got, content-500)
	}
}
