// limnd is the overlay daemon. It owns the layer-shell surface, runs
// the render engine and exposes the control interface on the session
// bus for the limn CLI and other automation tools.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/limnkit/limn/internal/chime"
	"github.com/limnkit/limn/internal/config"
	"github.com/limnkit/limn/internal/ipc"
	"github.com/limnkit/limn/internal/theme"
	"github.com/limnkit/limn/pkg/overlay"
	"github.com/limnkit/limn/pkg/surface"
)

const appID = "com.github.limnkit.limnd"

// Set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

type daemon struct {
	logger *slog.Logger
	app    *adw.Application

	engine  *overlay.Engine
	driver  overlay.Driver
	server  *ipc.Server
	watcher *config.Watcher
	player  *chime.Player

	themeName  string
	surfaceCfg config.SurfaceConfig

	shutdownOnce sync.Once
}

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
		configPath  = flag.String("config", "", "config file path (default ~/.config/limn/limnd.toml)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("limnd %s (%s)\n", version, commit)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfgPath := *configPath
	if cfgPath == "" {
		p, err := config.Path()
		if err != nil {
			logger.Error("failed to resolve config path", "error", err)
			os.Exit(1)
		}
		cfgPath = p
	}
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	d := &daemon{logger: logger}
	d.app = adw.NewApplication(appID, 0)

	d.app.ConnectActivate(func() {
		if err := d.start(cfg, cfgPath); err != nil {
			logger.Error("failed to start daemon", "error", err)
			d.app.Quit()
		}
	})
	d.app.ConnectShutdown(func() {
		logger.Info("shutting down")
	})

	// Signal handling runs off the GTK loop so engine teardown, which
	// round-trips through the loop, cannot deadlock.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal", "signal", sig)
		d.shutdown()
	}()

	logger.Info("starting limnd", "version", version, "config", cfgPath)
	status := d.app.Run([]string{os.Args[0]})
	os.Exit(status)
}

// start wires the daemon together. Runs on the GTK main loop during
// activation; anything that blocks on the loop is deferred to a
// goroutine.
func (d *daemon) start(cfg *config.Config, cfgPath string) error {
	th, err := theme.Load(cfg.Theme.Name)
	if err != nil {
		d.logger.Warn("falling back to default theme", "theme", cfg.Theme.Name, "error", err)
	}
	d.themeName = cfg.Theme.Name
	d.surfaceCfg = cfg.Surface

	d.driver = surface.New(surface.Options{
		FPS:       cfg.Surface.FPS,
		Namespace: cfg.Surface.Namespace,
		Palette:   th.Palette,
		Logger:    d.logger,
	})
	d.engine = overlay.NewEngine(d.driver, overlay.Options{
		DefaultStyle:    cfg.HighlightStyle(),
		DefaultDuration: cfg.Defaults.HighlightDuration.Duration(),
		Logger:          d.logger,
	})

	d.player = chime.NewPlayer(d.logger)
	d.player.SetVolume(float64(cfg.Chime.Volume) / 100)

	d.server = ipc.NewServer(d.engine, d.logger)

	watcher, err := config.NewWatcher(cfgPath, cfg, d.logger)
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	d.watcher = watcher
	d.watcher.SetReloadCallback(d.applyConfig)

	d.server.SetPopupHook(func(kind overlay.PopupKind) {
		current := d.watcher.Current()
		if !current.Chime.Enabled {
			return
		}
		go func() {
			_ = d.player.Play(current.SoundFor(kind))
		}()
	})

	// Keeps the application alive with no visible windows. The overlay
	// surface itself is managed by the driver.
	keepAlive := gtk.NewWindow()
	keepAlive.SetApplication(&d.app.Application)
	keepAlive.SetDefaultSize(1, 1)
	keepAlive.SetDecorated(false)
	keepAlive.SetVisible(false)

	// Engine startup blocks on the GTK loop, so it cannot run inside
	// activation.
	go func() {
		if err := d.engine.Start(); err != nil {
			d.logger.Error("failed to start overlay engine", "error", err)
			glib.IdleAdd(func() { d.app.Quit() })
			return
		}
		if err := d.server.Start(); err != nil {
			d.logger.Error("failed to start control server", "error", err)
			_ = d.engine.Stop()
			glib.IdleAdd(func() { d.app.Quit() })
			return
		}
		if err := d.watcher.Start(); err != nil {
			d.logger.Warn("config hot reload disabled", "error", err)
		}
		d.logger.Info("limnd ready", "theme", d.themeName, "fps", cfg.Surface.FPS)
	}()

	return nil
}

// applyConfig pushes a reloaded config into the running components.
// Surface settings need a restart and are only logged.
func (d *daemon) applyConfig(cfg *config.Config) {
	d.engine.SetDefaults(cfg.HighlightStyle(), cfg.Defaults.HighlightDuration.Duration())
	d.player.SetVolume(float64(cfg.Chime.Volume) / 100)

	if cfg.Theme.Name != d.themeName {
		th, err := theme.Load(cfg.Theme.Name)
		if err != nil {
			d.logger.Warn("theme reload failed, keeping current", "theme", cfg.Theme.Name, "error", err)
		} else {
			if setter, ok := d.driver.(surface.PaletteSetter); ok {
				setter.SetPalette(th.Palette)
			}
			d.themeName = cfg.Theme.Name
			d.logger.Info("theme changed", "theme", th.Name)
		}
	}

	if cfg.Surface != d.surfaceCfg {
		d.logger.Info("surface settings changed, restart limnd to apply")
	}
}

// shutdown tears the daemon down once, in reverse start order, then
// quits the application. Must not run on the GTK main loop.
func (d *daemon) shutdown() {
	d.shutdownOnce.Do(func() {
		if d.watcher != nil {
			_ = d.watcher.Stop()
		}
		if d.server != nil {
			_ = d.server.Stop()
		}
		if d.engine != nil {
			if err := d.engine.Stop(); err != nil {
				d.logger.Warn("engine stop failed", "error", err)
			}
		}
		if d.player != nil {
			d.player.Close()
		}
		glib.IdleAdd(func() { d.app.Quit() })
	})
}
