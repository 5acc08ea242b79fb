package main

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"gallery/internal/gallery"
	"gallery/internal/source"
)

// Global font source for all text rendering
var globalFontSource *text.GoTextFaceSource

// InitGraphics initializes the global font source for text rendering
func InitGraphics() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	globalFontSource = s
	return nil
}

// newFace returns a face of the global font at size
func newFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: globalFontSource, Size: size}
}

// DrawText draws text with specified position and color
func DrawText(screen *ebiten.Image, textString string, font *text.GoTextFace, x, y float64, textColor color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, textString, font, op)
}

// DrawCenteredText draws text centered on (cx, cy)
func DrawCenteredText(screen *ebiten.Image, textString string, font *text.GoTextFace, cx, cy float64, textColor color.Color) {
	w, h := text.Measure(textString, font, 0)
	DrawText(screen, textString, font, cx-w/2, cy-h/2, textColor)
}

// DrawFilledRect draws filled rectangles with float64 coordinates
func DrawFilledRect(screen *ebiten.Image, x, y, w, h float64, bgColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)
}

// drawPlaceholder draws an empty card: the Loading state and failed thumbnails look the same
func drawPlaceholder(screen *ebiten.Image, rect image.Rectangle) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, colorCard, false)
	vector.StrokeRect(screen, x+0.5, y+0.5, w-1, h-1, 1, colorCardBorder, false)
}

// drawHoverOutline highlights the card under the cursor
func drawHoverOutline(screen *ebiten.Image, rect image.Rectangle) {
	vector.StrokeRect(screen, float32(rect.Min.X)-2, float32(rect.Min.Y)-2,
		float32(rect.Dx())+4, float32(rect.Dy())+4, 2, colorLightBlue, true)
}

// newImageHandle uploads a decoded buffer to the GPU. *ebiten.Image
// satisfies gallery.Handle and is deallocated when the cache drops it.
func newImageHandle(rgba source.Rgba) gallery.Handle {
	return ebiten.NewImageFromImage(rgba.Image())
}

// fitScale returns the scale that fits iw x ih within w x h without enlarging
func fitScale(iw, ih, w, h float64) float64 {
	if iw <= 0 || ih <= 0 {
		return 1
	}
	scale := w / iw
	if s := h / ih; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return scale
}
