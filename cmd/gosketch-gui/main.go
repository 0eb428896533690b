package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gosketch/internal/bootstrap"
	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/script"
	"github.com/philipparndt/gosketch/internal/viewer"
	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/version"
	"github.com/spf13/cobra"
)

type App struct {
	window     fyne.Window
	env        *bootstrap.Env
	canvas     *viewer.SketchCanvas
	sketchInfo *SketchInfo
}

type SketchInfo struct {
	modesLabel     *widget.Label
	sketchLabel    *widget.Label
	entitiesLabel  *widget.Label
	wiresLabel     *widget.Label
	selectionLabel *widget.Label
	cursorLabel    *widget.Label
	statusLabel    *widget.Label
}

var (
	configPath string
	keymapPath string
)

var rootCmd = &cobra.Command{
	Use:     "gosketch-gui [script]",
	Short:   "2D sketch editor with an inspector panel",
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetFullVersion(),
	RunE:    run,
}

func main() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVarP(&keymapPath, "keymap", "k", "", "keymap file (overrides the config)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if keymapPath != "" {
		cfg.Keymap = keymapPath
	}
	env, err := bootstrap.New(cfg, cfg.MetricsAddr != "")
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("GoSketch " + version.GetFullVersion())

	appInstance := &App{
		window: w,
		env:    env,
	}
	appInstance.setupMainUI()

	// Check if a script was provided as argument
	if len(args) > 0 {
		appInstance.replayFile(args[0])
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	env.Start(ctx)
	go appInstance.pollKeymap(ctx)

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
	return nil
}

func (a *App) setupMainUI() {
	a.sketchInfo = &SketchInfo{
		modesLabel:     widget.NewLabel(""),
		sketchLabel:    widget.NewLabel("Sketch: none"),
		entitiesLabel:  widget.NewLabel(""),
		wiresLabel:     widget.NewLabel(""),
		selectionLabel: widget.NewLabel("Selection: -"),
		cursorLabel:    widget.NewLabel(""),
		statusLabel:    widget.NewLabel(""),
	}
	a.sketchInfo.modesLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.sketchInfo.statusLabel.Wrapping = fyne.TextWrapWord

	a.canvas = viewer.NewSketchCanvas(a.env.Session)
	a.canvas.SetOnChange(a.updateInfo)
	a.canvas.SetOnError(func(err error) {
		a.sketchInfo.statusLabel.SetText(err.Error())
	})

	openButton := widget.NewButton("Replay Script", func() {
		a.showFileDialog()
	})
	fitButton := widget.NewButton("Fit View", func() {
		a.canvas.FitView()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• s or Enter enters a sketch\n" +
			"• p, l, c, a pick the point, line, circle and arc tools\n" +
			"• Click to place, Enter ends a line chain\n" +
			"• Escape cancels, Shift+Escape leaves the tool\n" +
			"• Click inside a closed wire to select it, Delete removes it\n" +
			"• Middle drag pans, scroll zooms",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Editor:"),
		widget.NewSeparator(),
		a.sketchInfo.modesLabel,
		a.sketchInfo.sketchLabel,
		a.sketchInfo.cursorLabel,
		widget.NewSeparator(),
		widget.NewLabel("Sketch Information:"),
		widget.NewSeparator(),
		a.sketchInfo.entitiesLabel,
		a.sketchInfo.wiresLabel,
		a.sketchInfo.selectionLabel,
		widget.NewSeparator(),
		a.sketchInfo.statusLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		fitButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.canvas,   // center
	)
	a.window.SetContent(content)
	a.window.Canvas().Focus(a.canvas)
	a.updateInfo(a.env.Session.Frame())
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		sc, err := script.Read(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to load script: %w", err), a.window)
			return
		}
		a.replay(sc)
	}, a.window)
}

func (a *App) replayFile(path string) {
	sc, err := script.Load(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.replay(sc)
}

func (a *App) replay(sc *script.Script) {
	res, err := sc.Run(a.env.Session)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	for _, e := range res.Errors {
		a.env.Logger.Warn("replayed event rejected", "error", e)
	}
	a.canvas.FitView()
	a.sketchInfo.statusLabel.SetText(fmt.Sprintf("Replayed %d events, %d rejected", res.Events, len(res.Errors)))
}

// pollKeymap hands reloaded keymaps to the session on the UI thread
func (a *App) pollKeymap(ctx context.Context) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fyne.Do(func() {
				if a.env.Session.Poll() {
					a.sketchInfo.statusLabel.SetText("Keymap reloaded")
					a.canvas.Sync()
				}
			})
		}
	}
}

func (a *App) updateInfo(f editor.Frame) {
	info := a.sketchInfo
	modes := make([]string, len(f.Modes))
	for i, m := range f.Modes {
		modes[i] = m.String()
	}
	info.modesLabel.SetText("Modes: " + strings.Join(modes, " > "))
	info.cursorLabel.SetText(fmt.Sprintf("Cursor: %s", analysis.FormatVector(f.Cursor)))
	if f.Status != "" {
		info.statusLabel.SetText(f.Status)
	}

	sk, err := a.env.Session.Document().Sketch(f.Active)
	if err != nil {
		info.sketchLabel.SetText("Sketch: none")
		info.entitiesLabel.SetText("")
		info.wiresLabel.SetText("")
		info.selectionLabel.SetText("Selection: -")
		return
	}

	result := analysis.AnalyzeSketch(sk.Store)
	info.sketchLabel.SetText(fmt.Sprintf("Sketch: %s (%s plane)", sk.Name, sk.Plane.Name()))
	info.entitiesLabel.SetText(fmt.Sprintf(
		"Points: %d\nLines: %d\nCircles: %d\nArcs: %d\nTotal length: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f",
		result.PointCount,
		result.LineCount,
		result.CircleCount,
		result.ArcCount,
		result.TotalLength,
		result.Dimensions.X,
		result.Dimensions.Y,
	))

	var area float64
	for _, w := range result.Wires {
		area += w.Area
	}
	info.wiresLabel.SetText(fmt.Sprintf("Closed wires: %d (area %.2f)", len(result.Wires), area))

	switch sel := f.Selection; {
	case sel.Entity != 0:
		kind, _ := sk.Store.Kind(sel.Entity)
		info.selectionLabel.SetText(fmt.Sprintf("Selection: %s %d", kind, sel.Entity))
	case len(sel.Region) > 0:
		info.selectionLabel.SetText(fmt.Sprintf("Selection: wire of %d edges", len(sel.Region)))
	default:
		info.selectionLabel.SetText("Selection: -")
	}
}
