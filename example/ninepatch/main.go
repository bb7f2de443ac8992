// Package example is a playground for toying with and showcasing 9-Patch
// layouts.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"git.sr.ht/~gioverse/ninepatch"
	"git.sr.ht/~gioverse/ninepatch/async"
	"git.sr.ht/~gioverse/ninepatch/atlas"
	"git.sr.ht/~gioverse/ninepatch/debug"
	"git.sr.ht/~gioverse/ninepatch/profile"
	"git.sr.ht/~gioverse/ninepatch/tiles"
	npwidget "git.sr.ht/~gioverse/ninepatch/widget"
	lorem "github.com/drhodes/golorem"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	// dir holds individual tile images addressed by template.
	dir string
	// template names the nine tiles, with "*" replaced by 1 through 9.
	template string
	// sheet is a 9-Patch image to slice into frames instead of loading tiles.
	sheet string
	// workers sizes the loader's worker pool.
	workers int
	// mode selects the scale mode.
	mode string
	// profileOpt specifies what to profile.
	profileOpt string
	// verbose enables debug logging.
	verbose bool
)

func init() {
	flag.StringVar(&dir, "dir", "", "directory holding the tile images")
	flag.StringVar(&template, "template", "tile*.png", "tile name template, * is replaced by 1..9")
	flag.StringVar(&sheet, "sheet", "", "9-Patch image to slice into tiles (overrides -dir)")
	flag.IntVar(&workers, "workers", async.DefaultWorkers, "number of tile decoding workers")
	flag.StringVar(&mode, "mode", "ninepatch", "scale mode, one of [ninepatch, default]")
	flag.StringVar(&profileOpt, "profile", "none", "create the provided kind of profile. Use one of [none, cpu, mem, block, goroutine, mutex, trace, gio]")
	flag.BoolVar(&verbose, "v", false, "log tile loading")
}

func main() {
	flag.Parse()
	if verbose {
		ninepatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	ui, err := NewUI()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	go func() {
		w := app.NewWindow(
			app.Title("9-Patch"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		if err := ui.Run(w); err != nil {
			fmt.Fprintf(os.Stderr, "error: premature window close: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

type (
	C = layout.Context
	D = layout.Dimensions
)

// th is the active theme object.
var th = material.NewTheme(gofont.Collection())

// UI manages the state for the entire application's UI.
type UI struct {
	// Loader decodes tile images off the UI goroutine.
	async.Loader
	Surface  npwidget.Surface
	Profiler profile.Profiler
	// Width and Height control the patch dimensions.
	Width, Height widget.Float
	// Debug toggles tile outlines.
	Debug widget.Bool
	// Reset restores the initial dimensions.
	Reset     widget.Clickable
	ResetIcon *widget.Icon
	// Text is laid atop the patch.
	Text string
	// Status reports loading progress.
	Status string
	// MinSize is the smallest patch the sheet supports. Zero when tiles are
	// loaded from a directory.
	MinSize image.Point
}

// NewUI constructs the UI from the command line flags.
func NewUI() (*UI, error) {
	pOpt, err := profile.Parse(profileOpt)
	if err != nil {
		return nil, err
	}
	sm := ninepatch.ModeNinePatch
	switch mode {
	case "ninepatch":
	case "default":
		sm = ninepatch.ModeDefault
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	icon, err := widget.NewIcon(icons.NavigationRefresh)
	if err != nil {
		return nil, fmt.Errorf("loading icon: %w", err)
	}
	ui := &UI{
		Loader:    async.Loader{Workers: workers},
		Profiler:  pOpt.NewProfiler(),
		Width:     widget.Float{Value: 240},
		Height:    widget.Float{Value: 120},
		ResetIcon: icon,
		Text:      lorem.Paragraph(1, 3),
		Status:    "loading",
	}
	var (
		a        atlas.Atlas
		provider = &tiles.Provider{Loader: &ui.Loader, Atlas: &a}
		opts     = ninepatch.Options{
			Width:    ui.Width.Value,
			Height:   ui.Height.Value,
			Template: template,
			Mode:     sm,
		}
	)
	switch {
	case sheet != "":
		src, err := decodeFile(sheet)
		if err != nil {
			return nil, err
		}
		s := atlas.DecodeNinePatch(src)
		a.AddSheet("sheet-*", s)
		opts.Template, opts.Frames = "sheet-*", true
		ui.Surface.Content = s.Content
		ui.MinSize = s.MinSize()
	case dir != "":
		provider.FS = os.DirFS(dir)
	default:
		s := atlas.DecodeNinePatch(builtinSheet())
		a.AddSheet("builtin-*", s)
		opts.Template, opts.Frames = "builtin-*", true
		ui.Surface.Content = s.Content
		ui.MinSize = s.MinSize()
	}
	ui.Surface.Patch = ninepatch.New(provider, opts).
		OnReady(func() { ui.Status = "ready" }).
		OnUpdate(func() {
			t := ui.Surface.Patch.Target()
			ui.Status = fmt.Sprintf("ready: %.0fx%.0f", t.X, t.Y)
		})
	return ui, nil
}

// decodeFile reads a png from disk.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sheet: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding sheet: %w", err)
	}
	return img, nil
}

// builtinSheet draws a 9-Patch speech bubble with 12px corners and 8px of
// content padding.
func builtinSheet() image.Image {
	const size = 34
	var (
		img   = image.NewNRGBA(image.Rect(0, 0, size, size))
		fill  = debug.ToNRGBA(colorful.FastHappyColor().Clamped())
		edge  = color.NRGBA{A: 200}
		inner = image.Rect(1, 1, size-1, size-1)
	)
	for yy := inner.Min.Y; yy < inner.Max.Y; yy++ {
		for xx := inner.Min.X; xx < inner.Max.X; xx++ {
			c := fill
			if xx < inner.Min.X+2 || xx >= inner.Max.X-2 || yy < inner.Min.Y+2 || yy >= inner.Max.Y-2 {
				c = edge
			}
			img.SetNRGBA(xx, yy, c)
		}
	}
	// Soften the corners.
	for _, pt := range []image.Point{
		inner.Min,
		{X: inner.Max.X - 1, Y: inner.Min.Y},
		{X: inner.Min.X, Y: inner.Max.Y - 1},
		inner.Max.Sub(image.Pt(1, 1)),
	} {
		img.SetNRGBA(pt.X, pt.Y, color.NRGBA{})
	}
	marker := color.NRGBA{A: 255}
	for ii := 13; ii < size-13; ii++ {
		img.SetNRGBA(ii, 0, marker)
		img.SetNRGBA(0, ii, marker)
	}
	for ii := 9; ii < size-9; ii++ {
		img.SetNRGBA(ii, size-1, marker)
		img.SetNRGBA(size-1, ii, marker)
	}
	return img
}

// Run handles window events and renders the application.
func (ui *UI) Run(w *app.Window) error {
	ui.Profiler.Start()
	var ops op.Ops
	for {
		select {
		case <-ui.Loader.Updated():
			ui.Loader.Dispatch()
			if !ui.Surface.Patch.IsReady() {
				ui.Status = fmt.Sprintf("loading: %d/9", ui.Surface.Patch.Loaded())
			}
			w.Invalidate()
		case e := <-w.Events():
			switch e := e.(type) {
			case system.DestroyEvent:
				ui.Loader.Close()
				ui.Profiler.Stop()
				return e.Err
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				ui.Profiler.Record(gtx)
				ui.Layout(gtx)
				e.Frame(gtx.Ops)
			}
		}
	}
}

// Layout the application UI.
func (ui *UI) Layout(gtx C) D {
	np := ui.Surface.Patch
	if ui.Reset.Clicked() {
		ui.Width.Value, ui.Height.Value = 240, 120
		np.Scale.X, np.Scale.Y = 1, 1
	}
	if np.Mode() == ninepatch.ModeDefault && (ui.Width.Changed() || ui.Height.Changed()) {
		np.SetWidth(ui.Width.Value)
		np.SetHeight(ui.Height.Value)
	}
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(
			gtx,
			layout.Rigid(func(gtx C) D {
				return layout.Center.Layout(gtx, func(gtx C) D {
					return material.H4(th, "9-Patch Demo").Layout(gtx)
				})
			}),
			layout.Rigid(ui.layoutControls),
			layout.Rigid(func(gtx C) D {
				return layout.Inset{Top: unit.Dp(10), Bottom: unit.Dp(10)}.Layout(gtx, func(gtx C) D {
					return component.Divider(th).Layout(gtx)
				})
			}),
			layout.Flexed(1, func(gtx C) D {
				return layout.Center.Layout(gtx, func(gtx C) D {
					return debug.Checker(gtx, unit.Dp(8), ui.layoutDemo)
				})
			}),
		)
	})
}

func (ui *UI) layoutControls(gtx C) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(
		gtx,
		layout.Rigid(func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("Width: %.0fpx", ui.Width.Value)),
				Slider: material.Slider(th, &ui.Width, float32(ui.MinSize.X), 700),
			}.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("Height: %.0fpx", ui.Height.Value)),
				Slider: material.Slider(th, &ui.Height, float32(ui.MinSize.Y), 500),
			}.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(
				gtx,
				layout.Rigid(material.CheckBox(th, &ui.Debug, "Outline tiles").Layout),
				layout.Rigid(material.Body2(th, ui.Status).Layout),
				layout.Rigid(func(gtx C) D {
					return material.Clickable(gtx, &ui.Reset, func(gtx C) D {
						return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
							return ui.ResetIcon.Layout(gtx, th.Palette.Fg)
						})
					})
				}),
			)
		}),
	)
}

func (ui *UI) layoutDemo(gtx C) D {
	var (
		np   = ui.Surface.Patch
		pad  = ui.Surface.Content
		want = image.Pt(
			int(ui.Width.Value)-pad.Left-pad.Right,
			int(ui.Height.Value)-pad.Top-pad.Bottom,
		)
	)
	return layout.Stack{}.Layout(
		gtx,
		layout.Stacked(func(gtx C) D {
			return ui.Surface.Layout(gtx, func(gtx C) D {
				if np.Mode() == ninepatch.ModeNinePatch {
					gtx.Constraints.Min = gtx.Constraints.Constrain(want)
					gtx.Constraints.Max.X = gtx.Constraints.Min.X
				}
				if !np.IsReady() {
					return component.Rect{
						Color: color.NRGBA{A: 40},
						Size:  gtx.Constraints.Min,
					}.Layout(gtx)
				}
				lb := material.Body1(th, ui.Text)
				lb.MaxLines = 4
				dims := lb.Layout(gtx)
				return D{Size: gtx.Constraints.Constrain(dims.Size)}
			})
		}),
		layout.Expanded(func(gtx C) D {
			if !ui.Debug.Value {
				return D{}
			}
			return debug.Outline(gtx, func(gtx C) D {
				return debug.Tiles(gtx, np)
			})
		}),
	)
}

// LabeledSliderStyle draws a slider with a label.
type LabeledSliderStyle struct {
	Label  material.LabelStyle
	Slider material.SliderStyle
}

func (slider LabeledSliderStyle) Layout(gtx C) D {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(
		gtx,
		layout.Rigid(slider.Label.Layout),
		layout.Rigid(slider.Slider.Layout),
	)
}
