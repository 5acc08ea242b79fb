package main

import (
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"k8s.io/klog/v2"

	"gallery/internal/config"
	"gallery/internal/gallery"
	"gallery/internal/source"
)

// maxMessagesPerFrame bounds the completions applied in one Update
const maxMessagesPerFrame = 64

// Game adapts the gallery controller to ebiten. Update runs on ebiten's
// game goroutine, which is the only goroutine that touches the controller.
type Game struct {
	controller *gallery.Controller
	loop       *gallery.Loop
	pool       *source.Pool
	desktop    Desktop
	watcher    *dirWatcher
	configPath string

	config       config.Config
	configStatus config.LoadResult

	renderer            *Renderer
	inputHandler        *InputHandler
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager

	width, height int
	shownDir      string
	scroll        float64
	hovered       source.ID
	hasHover      bool

	// announced visible range, so ImageVisible is sent only on change
	visibleFirst, visibleLast int
	visibleImages             []source.ImageRef

	showHelp           bool
	overlayMessage     string
	overlayMessageTime time.Time

	fullscreen           bool
	savedWinW, savedWinH int
	exiting              bool

	dirty  bool
	redraw redrawGate
}

// NewGame wires a controller, its event loop and the input and render layers.
func NewGame(controller *gallery.Controller, loop *gallery.Loop, pool *source.Pool, desktop Desktop, status config.LoadResult) *Game {
	g := &Game{
		controller:   controller,
		loop:         loop,
		pool:         pool,
		desktop:      desktop,
		config:       status.Config,
		configStatus: status,
		width:        status.Config.WindowWidth,
		height:       status.Config.WindowHeight,
		fullscreen:   status.Config.Fullscreen,
		dirty:        true,
	}
	g.keybindingManager = NewKeybindingManager(status.Config.Keybindings)
	g.mousebindingManager = NewMousebindingManager(status.Config.Mousebindings, status.Config.MouseSettings)
	g.inputHandler = NewInputHandler(g, g, g.keybindingManager, g.mousebindingManager)
	g.renderer = NewRenderer(g)
	return g
}

func (g *Game) Update() error {
	if g.exiting {
		return ebiten.Termination
	}

	g.controller.Update(gallery.Tick{Now: time.Now()})
	if g.loop.Pump(g.controller, maxMessagesPerFrame) > 0 {
		g.dirty = true
	}
	if dir := g.controller.Dir(); dir != g.shownDir {
		g.shownDir = dir
		g.scroll = 0
		g.hasHover = false
		ebiten.SetWindowTitle(windowTitle(dir))
		if g.watcher != nil && dir != "" {
			g.watcher.Watch(dir)
		}
	}
	if g.inputHandler.HandleInput() {
		g.dirty = true
	}

	g.scroll = g.GetLayout().ClampScroll(g.scroll, g.cardCount())
	g.announceVisible()
	return nil
}

// announceVisible reports cards entering the viewport to the controller.
func (g *Game) announceVisible() {
	if g.controller.Listing() {
		return
	}
	images := g.controller.Images()
	first, last := g.GetLayout().VisibleRange(len(images))
	if first == g.visibleFirst && last == g.visibleLast && sameList(images, g.visibleImages) {
		return
	}
	g.visibleFirst, g.visibleLast, g.visibleImages = first, last, images
	for i := first; i < last; i++ {
		g.controller.Update(gallery.ImageVisible{ID: images[i].ID})
	}
}

// sameList reports whether a and b share the same backing array and length.
func sameList(a, b []source.ImageRef) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func windowTitle(dir string) string {
	if dir == "" {
		return "Gallery"
	}
	return filepath.Base(dir) + " - Gallery"
}

// cardCount is the number of cards the grid lays out
func (g *Game) cardCount() int {
	if g.controller.Listing() {
		return gallery.PlaceholderLimit
	}
	return len(g.controller.Images())
}

// Draw redraws only when something changed or a transition is running.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := captureFrame(g, g.width, g.height, time.Now())
	animating := g.controller.IsAnimating()
	if !g.redraw.needed(frame, g.dirty, animating) {
		return
	}
	g.renderer.Draw(screen)
	g.dirty = false
	g.redraw.done(frame, animating)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}

// Shutdown stops background work and saves the window size.
func (g *Game) Shutdown() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			klog.Warningf("close watcher: %v", err)
		}
	}
	g.loop.Close()
	g.pool.Stop()
	stats := g.pool.Stats()
	klog.V(1).Infof("decode stats: %d requested, %d decoded, %d cache hits, %d failed",
		stats.Requested, stats.Decoded, stats.CacheHits, stats.Failed)

	if !g.fullscreen {
		g.config.WindowWidth, g.config.WindowHeight = ebiten.WindowSize()
		if err := config.SaveToPath(g.config, g.configPath); err != nil {
			klog.Warningf("Failed to save config: %v", err)
		}
	}
}

// RenderState

func (g *Game) GetImages() []source.ImageRef { return g.controller.Images() }
func (g *Game) IsListing() bool              { return g.controller.Listing() }
func (g *Game) GetPreview(id source.ID) (gallery.Preview, bool) {
	return g.controller.Preview(id)
}
func (g *Game) GetViewer() *gallery.Viewer { return g.controller.Viewer() }
func (g *Game) GetFrameTime() time.Time    { return g.controller.Now() }
func (g *Game) GetLayout() gridLayout {
	return gridLayout{width: g.width, height: g.height, scroll: g.scroll}
}
func (g *Game) GetHovered() (source.ID, bool)    { return g.hovered, g.hasHover }
func (g *Game) IsShowingHelp() bool              { return g.showHelp }
func (g *Game) GetOverlayMessage() string        { return g.overlayMessage }
func (g *Game) GetOverlayMessageTime() time.Time { return g.overlayMessageTime }
func (g *Game) GetDirectory() string             { return g.controller.Dir() }
func (g *Game) GetSortName() string              { return g.controller.Sort().Name() }
func (g *Game) GetFontSize() float64             { return g.config.HelpFontSize }
func (g *Game) GetConfigStatus() config.LoadResult {
	return g.configStatus
}
func (g *Game) GetKeybindings() map[string][]string {
	return g.keybindingManager.GetKeybindings()
}
func (g *Game) GetMousebindings() map[string][]string {
	return g.mousebindingManager.GetMousebindings()
}

// InputState

func (g *Game) IsViewerOpen() bool { return g.controller.ViewerOpen() }

func (g *Game) IsCardReady(id source.ID) bool {
	p, ok := g.controller.Preview(id)
	if !ok {
		return false
	}
	_, ready := p.(gallery.Ready)
	return ready
}

// InputActions

func (g *Game) Exit() { g.exiting = true }

func (g *Game) ToggleHelp() { g.showHelp = !g.showHelp }

func (g *Game) ToggleFullscreen() {
	if !g.fullscreen {
		g.savedWinW, g.savedWinH = ebiten.WindowSize()
		ebiten.SetFullscreen(true)
	} else {
		ebiten.SetFullscreen(false)
		if g.savedWinW > 0 && g.savedWinH > 0 {
			ebiten.SetWindowSize(g.savedWinW, g.savedWinH)
		}
	}
	g.fullscreen = !g.fullscreen
}

func (g *Game) NavigateNext() {
	g.controller.Update(gallery.Navigate{Direction: gallery.Next})
	g.followViewer()
}

func (g *Game) NavigatePrevious() {
	g.controller.Update(gallery.Navigate{Direction: gallery.Prev})
	g.followViewer()
}

// followViewer scrolls the grid so the viewed card is visible after closing
func (g *Game) followViewer() {
	if index, ok := g.controller.Viewer().Index(); ok {
		g.scroll = g.GetLayout().ScrollToCard(index, g.cardCount())
	}
}

func (g *Game) CloseViewer() { g.controller.Update(gallery.Close{}) }

func (g *Game) CopyPath() {
	ref, ok := g.controller.Current()
	if !ok {
		return
	}
	if err := g.desktop.CopyText(ref.Location.String()); err != nil {
		klog.Warningf("copy to clipboard: %v", err)
		g.ShowOverlayMessage("Clipboard unavailable")
		return
	}
	g.ShowOverlayMessage("Copied " + ref.Location.String())
}

func (g *Game) OpenCard(id source.ID) { g.controller.Update(gallery.Open{ID: id}) }

func (g *Game) HoverCard(id source.ID, ok bool) {
	if ok == g.hasHover && id == g.hovered {
		return
	}
	if g.hasHover {
		g.controller.Update(gallery.ThumbnailHovered{ID: g.hovered, Entered: false})
	}
	if ok {
		g.controller.Update(gallery.ThumbnailHovered{ID: id, Entered: true})
	}
	g.hovered, g.hasHover = id, ok
	g.dirty = true
}

func (g *Game) ScrollBy(pixels float64) {
	g.scroll = g.GetLayout().ClampScroll(g.scroll+pixels, g.cardCount())
}

func (g *Game) ScrollPages(pages float64) {
	g.ScrollBy(pages * float64(g.height-cardHeight/2))
}

func (g *Game) JumpToFirst() { g.scroll = 0 }

func (g *Game) JumpToLast() {
	g.scroll = g.GetLayout().ClampScroll(float64(g.GetLayout().ContentHeight(g.cardCount())), g.cardCount())
}

func (g *Game) CycleSortMethod() {
	next := source.NextSortStrategy(g.controller.Sort())
	g.controller.Update(gallery.SortChanged{Strategy: next})
	g.config.SortMethod = next.ID()
	g.scroll = 0
	g.ShowOverlayMessage("Sort: " + next.Name())
}

// Reload rescans the directory and drops every cached decode.
func (g *Game) Reload() {
	g.pool.Purge()
	g.controller.Update(gallery.Reload{})
}

// OpenDirectory asks for a directory without blocking the game loop; the
// choice comes back as a LoadDirectory message.
func (g *Game) OpenDirectory() {
	start := g.controller.Dir()
	go func() {
		dir, err := g.desktop.ChooseDirectory(start)
		if err != nil {
			klog.V(1).Infof("directory dialog: %v", err)
			return
		}
		g.loop.Send(gallery.LoadDirectory{Path: dir})
	}()
}

func (g *Game) ShowOverlayMessage(message string) {
	g.overlayMessage = message
	g.overlayMessageTime = time.Now()
	g.dirty = true
}
