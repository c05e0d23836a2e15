package main

import (
	"fmt"
	"time"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/spf13/cobra"

	"github.com/limnkit/limn/internal/theme"
	"github.com/limnkit/limn/pkg/overlay"
	"github.com/limnkit/limn/pkg/surface"
)

var demoOpts struct {
	themeName string
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a self-contained overlay demo",
	Long: `Run a scripted tour of the overlay without a daemon: borders, fills,
badges, animations and every popup style, drawn by an in-process
engine. Useful for checking compositor support and trying themes.

Stop limnd first; two overlay surfaces at once just stack.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoOpts.themeName, "theme", "",
		"Theme to preview (default: the bundled default)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	th, err := theme.Load(demoOpts.themeName)
	if err != nil {
		logger.Warn("falling back to default theme", "error", err)
	}

	driver := surface.New(surface.Options{
		Namespace: "limn-demo",
		Palette:   th.Palette,
		Logger:    logger,
	})
	engine := overlay.NewEngine(driver, overlay.Options{Logger: logger})

	app := adw.NewApplication("com.github.limnkit.limn.demo", 0)
	var runErr error

	app.ConnectActivate(func() {
		go func() {
			defer glib.IdleAdd(func() { app.Quit() })
			if err := engine.Start(); err != nil {
				runErr = err
				return
			}
			runErr = runDemoScript(engine)
			if err := engine.Stop(); err != nil && runErr == nil {
				runErr = err
			}
		}()
	})

	if status := app.Run([]string{"limn-demo"}); status != 0 {
		return fmt.Errorf("demo exited with status %d", status)
	}
	return runErr
}

// runDemoScript drives the engine through each visual in turn.
func runDemoScript(engine *overlay.Engine) error {
	step := func(text string, rects []overlay.Rect, opts overlay.HighlightOptions) error {
		if _, err := engine.ShowPopup(text, 3*time.Second, overlay.PopupStyle{}); err != nil {
			return err
		}
		if len(rects) > 0 {
			if _, err := engine.Highlight(rects, opts); err != nil {
				return err
			}
		}
		time.Sleep(3 * time.Second)
		return nil
	}

	base := overlay.Rect{X: 200, Y: 200, W: 400, H: 240}

	if err := step("border highlight",
		[]overlay.Rect{base},
		overlay.HighlightOptions{
			Style:    overlay.BorderStyle(4, overlay.ColorRed),
			HasStyle: true,
			Duration: 3 * time.Second,
		}); err != nil {
		return err
	}

	if err := step("fill highlight",
		[]overlay.Rect{base},
		overlay.HighlightOptions{
			Style:    overlay.FillStyle(overlay.ColorGreen, 0.3),
			HasStyle: true,
			Duration: 3 * time.Second,
		}); err != nil {
		return err
	}

	if _, err := engine.ShowPopup("numbered badges", 3*time.Second, overlay.PopupStyle{}); err != nil {
		return err
	}
	for i, r := range []overlay.Rect{base, base.Inset(-80), base.Inset(-160)} {
		if _, err := engine.Highlight([]overlay.Rect{r}, overlay.HighlightOptions{
			Style:    overlay.BadgeStyle(fmt.Sprint(i+1), overlay.CornerTopLeft, overlay.ColorBlue),
			HasStyle: true,
			Duration: 3 * time.Second,
		}); err != nil {
			return err
		}
	}
	time.Sleep(3 * time.Second)

	if err := step("pulse animation",
		[]overlay.Rect{base},
		overlay.HighlightOptions{
			Style:     overlay.BorderStyle(4, overlay.ColorYellow),
			HasStyle:  true,
			Duration:  3 * time.Second,
			Animation: overlay.Pulse(time.Second),
		}); err != nil {
		return err
	}

	if err := step("blink animation",
		[]overlay.Rect{base},
		overlay.HighlightOptions{
			Style:     overlay.BorderStyle(4, overlay.ColorRed),
			HasStyle:  true,
			Duration:  3 * time.Second,
			Animation: overlay.Blink(500 * time.Millisecond),
		}); err != nil {
		return err
	}

	for _, kind := range []overlay.PopupKind{
		overlay.PopupInfo, overlay.PopupSuccess, overlay.PopupWarning, overlay.PopupError,
	} {
		if _, err := engine.ShowPopup(
			fmt.Sprintf("%s popup", kind),
			4*time.Second,
			overlay.PopupStyle{Kind: kind},
		); err != nil {
			return err
		}
		time.Sleep(time.Second)
	}
	time.Sleep(4 * time.Second)

	return engine.Clear()
}
