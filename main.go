package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"k8s.io/klog/v2"

	"gallery/internal/config"
	"gallery/internal/gallery"
	"gallery/internal/source"
)

// loopBuffer is the number of pending background completions
const loopBuffer = 256

// CLI is the command line.
type CLI struct {
	Dir     string `arg:"" help:"Directory, or .zip/.rar/.7z archive, to browse." type:"path"`
	Config  string `help:"Configuration file (default ~/.gallery.json)." type:"path" placeholder:"FILE"`
	Sort    string `help:"Sort order: natural, simple or entry." placeholder:"ORDER"`
	Watch   bool   `help:"Reload when the directory changes."`
	Verbose int    `short:"v" type:"counter" help:"Increase log verbosity (repeatable)."`
}

// Validate rejects an unknown sort order before the window opens.
func (c *CLI) Validate() error {
	if c.Sort == "" {
		return nil
	}
	if _, ok := sortMethodByName(c.Sort); !ok {
		return fmt.Errorf("unknown sort order %q", c.Sort)
	}
	return nil
}

func sortMethodByName(name string) (int, bool) {
	for _, s := range source.GetAllSortStrategies() {
		if strings.EqualFold(s.Name(), name) {
			return s.ID(), true
		}
	}
	return 0, false
}

// initLogging routes klog to stderr at the requested verbosity.
func initLogging(verbosity int) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if err := fs.Set("v", strconv.Itoa(verbosity)); err != nil {
		klog.Warningf("set verbosity: %v", err)
	}
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("gallery"),
		kong.Description("Browse the images of a directory as a thumbnail grid."),
		kong.UsageOnError(),
	)
	initLogging(cli.Verbose)
	defer klog.Flush()

	configPath := cli.Config
	if configPath == "" {
		configPath = config.Path()
	}
	status := config.LoadFromPath(configPath)
	for _, w := range status.Warnings {
		klog.Warningf("config: %s", w)
	}
	cfg := status.Config
	if cli.Sort != "" {
		cfg.SortMethod, _ = sortMethodByName(cli.Sort)
	}
	if cli.Watch {
		cfg.Watch = true
	}
	status.Config = cfg

	if err := InitGraphics(); err != nil {
		klog.Exitf("failed to load font: %v", err)
	}

	loop := gallery.NewLoop(loopBuffer)
	pool := source.NewPool(source.PoolOptions{
		Workers:   cfg.DecodeWorkers,
		CacheSize: cfg.CacheSize,
		Resampler: cfg.Resampler(),
	}, loop)
	duration, easing := cfg.Animation()
	controller := gallery.New(gallery.Options{
		Requester: pool,
		NewHandle: newImageHandle,
		Duration:  duration,
		Easing:    easing,
		Sort:      cfg.SortStrategy(),
	})

	game := NewGame(controller, loop, pool, &systemDesktop{}, status)
	game.configPath = configPath
	if cfg.Watch {
		w, err := newDirWatcher(loop.Send)
		if err != nil {
			klog.Warningf("directory watch disabled: %v", err)
		} else {
			game.watcher = w
		}
	}

	klog.Infof("browsing %s (sort %s, resample %s)", cli.Dir, cfg.SortStrategy().Name(), cfg.Resampler().Name())
	controller.Update(gallery.LoadDirectory{Path: cli.Dir})

	ebiten.SetWindowTitle(windowTitle(cli.Dir))
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	// Draw skips frames where nothing changed
	ebiten.SetScreenClearedEveryFrame(false)

	err := ebiten.RunGame(game)
	game.Shutdown()
	if err != nil {
		klog.Exitf("%v", err)
	}
}
