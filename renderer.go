package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"gallery/internal/config"
	"gallery/internal/gallery"
)

// Common colors used in rendering
var (
	colorWhite      = color.RGBA{255, 255, 255, 255}
	colorGray       = color.RGBA{180, 180, 180, 255}
	colorLightGray  = color.RGBA{192, 192, 192, 255}
	colorYellow     = color.RGBA{255, 255, 100, 255}
	colorCyan       = color.RGBA{100, 255, 255, 255}
	colorLightBlue  = color.RGBA{200, 200, 255, 255}
	colorGreen      = color.RGBA{100, 255, 100, 255}
	colorOrange     = color.RGBA{255, 200, 100, 255}
	colorLightRed   = color.RGBA{255, 150, 150, 255}
	colorBackground = color.RGBA{24, 24, 28, 255}
	colorCard       = color.RGBA{40, 40, 46, 255}
	colorCardBorder = color.RGBA{60, 60, 68, 255}

	// Background colors for semi-transparent overlays
	bgColorLight  = color.RGBA{0, 0, 0, 128}
	bgColorMedium = color.RGBA{0, 0, 0, 160}
	bgColorDark   = color.RGBA{0, 0, 0, 200}
)

const (
	viewerMargin = 20.0
	statusFont   = 16.0
)

// Renderer handles all drawing operations
type Renderer struct {
	renderState RenderState
}

// NewRenderer creates a new Renderer. InitGraphics must have been called.
func NewRenderer(renderState RenderState) *Renderer {
	return &Renderer{renderState: renderState}
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	// SetScreenClearedEveryFrame(false) is enabled
	screen.Fill(colorBackground)

	now := r.renderState.GetFrameTime()
	viewer := r.renderState.GetViewer()

	r.drawGrid(screen, now)
	if viewer.IsOpen(now) {
		r.drawViewer(screen, viewer, now)
	} else {
		r.drawStatusBar(screen)
	}

	if r.renderState.IsShowingHelp() {
		r.drawHelpOverlay(screen)
	}

	if msg := r.renderState.GetOverlayMessage(); msg != "" && now.Sub(r.renderState.GetOverlayMessageTime()) < overlayMessageDuration {
		r.drawOverlayMessage(screen, msg)
	}
}

// drawGrid draws the visible cards. While a listing is in flight it shows
// a fixed number of empty cards.
func (r *Renderer) drawGrid(screen *ebiten.Image, now time.Time) {
	layout := r.renderState.GetLayout()
	images := r.renderState.GetImages()

	if r.renderState.IsListing() {
		first, last := layout.VisibleRange(gallery.PlaceholderLimit)
		for i := first; i < last; i++ {
			drawPlaceholder(screen, layout.CellRect(i))
		}
		return
	}

	if len(images) == 0 {
		msg := "Press O to open a directory"
		if dir := r.renderState.GetDirectory(); dir != "" {
			msg = "No images in " + dir
		}
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		DrawCenteredText(screen, msg, newFace(r.renderState.GetFontSize()), float64(w)/2, float64(h)/2, colorGray)
		return
	}

	hovered, hasHover := r.renderState.GetHovered()
	first, last := layout.VisibleRange(len(images))
	for i := first; i < last; i++ {
		rect := layout.CellRect(i)
		drawPlaceholder(screen, rect)

		preview, _ := r.renderState.GetPreview(images[i].ID)
		ready, ok := preview.(gallery.Ready)
		if !ok {
			continue
		}
		img, ok := ready.Thumbnail.Handle.(*ebiten.Image)
		if !ok {
			continue
		}

		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		scale := float64(ready.Thumbnail.Scale(now))
		cx := float64(rect.Min.X) + float64(rect.Dx())/2
		cy := float64(rect.Min.Y) + float64(rect.Dy())/2

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		op.GeoM.Translate(-iw/2, -ih/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(cx, cy)
		op.ColorScale.ScaleAlpha(ready.Thumbnail.Opacity(now))
		screen.DrawImage(img, op)

		if hasHover && hovered == images[i].ID {
			drawHoverOutline(screen, rect)
		}
	}
}

// drawViewer draws the dimmed backdrop and the full-resolution image
func (r *Renderer) drawViewer(screen *ebiten.Image, viewer *gallery.Viewer, now time.Time) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	DrawFilledRect(screen, 0, 0, w, h, color.RGBA{0, 0, 0, uint8(viewer.BackgroundAlpha(now) * 255)})

	handle := viewer.Image()
	if handle == nil {
		if _, waiting := viewer.Target(); waiting && !viewer.Failed() {
			DrawCenteredText(screen, "Loading…", newFace(r.renderState.GetFontSize()), w/2, h/2, colorLightGray)
		}
		return
	}
	img, ok := handle.(*ebiten.Image)
	if !ok {
		return
	}

	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	scale := fitScale(iw, ih, w-2*viewerMargin, h-2*viewerMargin) * float64(viewer.ImageScale(now))
	alpha := viewer.ImageAlpha(now)
	if !viewer.Showing() {
		// previous image while the next one decodes
		alpha *= 0.5
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(w/2, h/2)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)

	r.drawViewerCaption(screen, viewer)
}

// drawViewerCaption shows the position and name of the targeted image
func (r *Renderer) drawViewerCaption(screen *ebiten.Image, viewer *gallery.Viewer) {
	index, ok := viewer.Index()
	images := r.renderState.GetImages()
	if !ok || index >= len(images) {
		return
	}
	caption := fmt.Sprintf("%d / %d  %s", index+1, len(images), filepath.Base(images[index].Location.String()))
	r.drawInfoText(screen, caption)
}

// drawStatusBar shows the directory, image count and sort order
func (r *Renderer) drawStatusBar(screen *ebiten.Image) {
	dir := r.renderState.GetDirectory()
	if dir == "" {
		return
	}
	var status string
	if r.renderState.IsListing() {
		status = fmt.Sprintf("Loading %s…", dir)
	} else {
		status = fmt.Sprintf("%s  ·  %d images  ·  %s", dir, len(r.renderState.GetImages()), r.renderState.GetSortName())
	}
	r.drawInfoText(screen, status)
}

// drawInfoText draws one line at the bottom right corner
func (r *Renderer) drawInfoText(screen *ebiten.Image, infoText string) {
	infoFont := newFace(statusFont)
	textWidth, textHeight := text.Measure(infoText, infoFont, 0)

	padding := 10.0
	textX := float64(screen.Bounds().Dx()) - textWidth - padding
	textY := float64(screen.Bounds().Dy()) - textHeight - padding

	bgPadding := 5.0
	DrawFilledRect(screen, textX-bgPadding, textY-bgPadding, textWidth+bgPadding*2, textHeight+bgPadding*2, bgColorLight)
	DrawText(screen, infoText, infoFont, textX, textY, colorWhite)
}

func (r *Renderer) drawOverlayMessage(screen *ebiten.Image, message string) {
	messageFont := newFace(r.renderState.GetFontSize())
	textWidth, textHeight := text.Measure(message, messageFont, 0)

	padding := 20.0
	boxWidth := textWidth + padding*2
	boxHeight := textHeight + padding*2
	boxX := (float64(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := (float64(screen.Bounds().Dy()) - boxHeight) / 2

	DrawFilledRect(screen, boxX, boxY, boxWidth, boxHeight, bgColorDark)
	DrawText(screen, message, messageFont, boxX+padding, boxY+padding, colorWhite)
}

// helpRow is one line of the help table
type helpRow struct {
	action      string
	keys        string
	mouse       string
	description string
}

// helpRows returns the bound actions in definition order
func (r *Renderer) helpRows() []helpRow {
	keybindings := r.renderState.GetKeybindings()
	mousebindings := r.renderState.GetMousebindings()
	descriptions := config.GetActionDescriptions()

	var rows []helpRow
	for _, action := range config.ActionNames() {
		keys := keybindings[action]
		mouseActions := mousebindings[action]
		if len(keys) == 0 && len(mouseActions) == 0 {
			continue
		}
		description := descriptions[action]
		if description == "" {
			description = "No description available"
		}
		rows = append(rows, helpRow{
			action:      action,
			keys:        strings.Join(keys, ", "),
			mouse:       strings.Join(mouseActions, ", "),
			description: description,
		})
	}
	return rows
}

// helpWarnings returns at most two shortened config warnings
func (r *Renderer) helpWarnings() []string {
	var warnings []string
	for i, warning := range r.renderState.GetConfigStatus().Warnings {
		if i >= 2 {
			break
		}
		if len(warning) > 50 {
			warning = warning[:47] + "..."
		}
		warnings = append(warnings, "• "+warning)
	}
	return warnings
}

// helpColumns measures the action and input columns at font size
func helpColumns(rows []helpRow, font *text.GoTextFace) (actionWidth, inputWidth, descWidth float64) {
	for _, row := range rows {
		w, _ := text.Measure(row.action, font, 0)
		actionWidth = max(actionWidth, w)

		input := row.keys
		if row.keys != "" && row.mouse != "" {
			input += " | "
		}
		w, _ = text.Measure(input+row.mouse, font, 0)
		inputWidth = max(inputWidth, w)

		w, _ = text.Measure(row.description, font, 0)
		descWidth = max(descWidth, w)
	}
	return actionWidth, inputWidth, descWidth
}

const helpPadding = 40.0

// calculateRequiredDimensions calculates the size the help content needs at a given font size
func (r *Renderer) calculateRequiredDimensions(fontSize float64) (float64, float64) {
	rows := r.helpRows()
	warnings := r.helpWarnings()
	font := newFace(fontSize)
	lineHeight := fontSize * 1.5

	height := helpPadding * 2
	height += fontSize * 2     // title
	height += lineHeight * 1.5 // controls title
	height += float64(len(rows)) * lineHeight
	height += lineHeight * 3 // spacing, "System:" and config status
	height += float64(len(warnings)) * lineHeight

	actionWidth, inputWidth, descWidth := helpColumns(rows, font)
	width := 40 + actionWidth + 20 + 30 + 20 + inputWidth + 20 + descWidth + helpPadding

	for _, line := range append([]string{"Controls (Keyboard | Mouse):", r.configStatusText()}, warnings...) {
		w, _ := text.Measure(line, font, 0)
		width = max(width, w+helpPadding*2+80)
	}

	return width, height
}

func (r *Renderer) configStatusText() string {
	return fmt.Sprintf("Config Status: %s", r.renderState.GetConfigStatus().Status)
}

// calculateOptimalFontSize finds the largest font size that fits within the given dimensions
func (r *Renderer) calculateOptimalFontSize(availableWidth, availableHeight float64) (float64, bool) {
	maxFontSize := r.renderState.GetFontSize()
	minFontSize := 12.0

	fits := func(size float64) bool {
		w, h := r.calculateRequiredDimensions(size)
		return w <= availableWidth && h <= availableHeight
	}

	if !fits(minFontSize) {
		return minFontSize, false
	}
	if fits(maxFontSize) {
		return maxFontSize, true
	}

	// Binary search for optimal font size
	low, high := minFontSize, maxFontSize
	bestSize := minFontSize
	for high-low > 0.5 {
		mid := (low + high) / 2.0
		if fits(mid) {
			bestSize = mid
			low = mid
		} else {
			high = mid
		}
	}
	return bestSize, true
}

func (r *Renderer) drawHelpOverlay(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	fontSize, canFit := r.calculateOptimalFontSize(w-helpPadding*2, h-helpPadding*2)
	if !canFit {
		r.drawMarginTooSmallMessage(screen)
		return
	}

	DrawFilledRect(screen, 0, 0, w, h, bgColorLight)
	DrawFilledRect(screen, helpPadding, helpPadding, w-helpPadding*2, h-helpPadding*2, bgColorMedium)

	helpFont := newFace(fontSize)
	lineHeight := fontSize * 1.5

	titleY := helpPadding + 30
	DrawText(screen, "HELP:", helpFont, helpPadding+20, titleY, colorWhite)
	currentY := titleY + fontSize*2

	DrawText(screen, "Controls (Keyboard | Mouse):", helpFont, helpPadding+20, currentY, colorWhite)
	currentY += lineHeight * 1.5

	rows := r.helpRows()
	actionWidth, inputWidth, _ := helpColumns(rows, helpFont)
	actionColumnX := helpPadding + 40
	arrowColumnX := actionColumnX + actionWidth + 20
	inputColumnX := arrowColumnX + 30
	descColumnX := inputColumnX + inputWidth + 20

	for _, row := range rows {
		DrawText(screen, row.action, helpFont, actionColumnX, currentY, colorLightBlue)
		DrawText(screen, "→", helpFont, arrowColumnX, currentY, colorWhite)

		// keyboard in yellow, mouse in cyan
		x := inputColumnX
		if row.keys != "" {
			DrawText(screen, row.keys, helpFont, x, currentY, colorYellow)
			kw, _ := text.Measure(row.keys, helpFont, 0)
			x += kw
		}
		if row.keys != "" && row.mouse != "" {
			DrawText(screen, " | ", helpFont, x, currentY, colorWhite)
			sw, _ := text.Measure(" | ", helpFont, 0)
			x += sw
		}
		if row.mouse != "" {
			DrawText(screen, row.mouse, helpFont, x, currentY, colorCyan)
		}

		DrawText(screen, row.description, helpFont, descColumnX, currentY, colorGray)
		currentY += lineHeight
	}

	currentY += lineHeight
	DrawText(screen, "System:", helpFont, helpPadding+20, currentY, colorWhite)
	currentY += lineHeight

	statusColor := colorGreen
	if status := r.renderState.GetConfigStatus().Status; status == "Warning" || status == "Error" {
		statusColor = colorOrange
	}
	DrawText(screen, r.configStatusText(), helpFont, helpPadding+40, currentY, statusColor)
	currentY += lineHeight

	for _, warning := range r.helpWarnings() {
		DrawText(screen, warning, helpFont, helpPadding+40, currentY, colorLightRed)
		currentY += lineHeight
	}
}

// drawMarginTooSmallMessage displays Fermat's margin joke when help cannot fit
func (r *Renderer) drawMarginTooSmallMessage(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	DrawFilledRect(screen, 0, 0, w, h, bgColorLight)

	jokeFont := newFace(16.0)
	message := "Hanc marginis exiguitas non caperet."
	subtitle := "(This margin is too small to contain it.)"

	_, messageHeight := text.Measure(message, jokeFont, 0)
	DrawCenteredText(screen, message, jokeFont, w/2, h/2, colorWhite)
	DrawCenteredText(screen, subtitle, jokeFont, w/2, h/2+messageHeight+10, colorGray)
}
