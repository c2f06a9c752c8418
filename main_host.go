//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"wirecam/app"
	"wirecam/gfx/diag"
	"wirecam/hal"
	"wirecam/internal/buildinfo"
)

func main() {
	var (
		hcfg       hal.HeadlessConfig
		configPath string
		outPath    string
		scale      int
		axes       bool
		antialias  bool
		verbose    bool
		version    bool
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "frames", 1, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.StringVar(&configPath, "config", "", "Scene file (YAML).")
	flag.StringVar(&outPath, "out", "", "Write the last headless frame to this image file.")
	flag.IntVar(&scale, "scale", 1, "Snapshot and window scale factor.")
	flag.BoolVar(&axes, "axes", false, "Draw the axis reference points.")
	flag.BoolVar(&antialias, "aa", false, "Draw the window with anti-aliased vector strokes.")
	flag.BoolVar(&verbose, "v", false, "Debug logging.")
	flag.BoolVar(&version, "version", false, "Print the build identifier and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	d := diag.Init(diag.ForStderr(level, nil))

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		fail(d, err)
	}
	if axes {
		cfg.Axes = true
	}
	hcfg.Width, hcfg.Height = cfg.Width, cfg.Height

	var (
		a      *app.App
		vector bool
	)
	newApp := func(h hal.HAL) func() error {
		if verbose {
			d = diag.Init(diag.ForStderr(level, h.Logger()))
		}
		a, err = app.New(h, cfg, d)
		if err != nil {
			return func() error { return err }
		}
		a.SetVectorOutput(vector)
		return a.Step
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hcfg)
		if err != nil && !errors.Is(err, context.Canceled) {
			fail(d, err)
		}
		if outPath != "" && a != nil {
			if err := hal.SaveSnapshot(a.Framebuffer(), outPath, scale); err != nil {
				fail(d, err)
			}
			d.Info("snapshot written", "path", outPath)
		}
		d.Debug("done", "counters", d.Counters())
		return
	}

	wcfg := hal.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  scale,
	}
	vector = antialias && vectorWindow(&wcfg, func() *app.App { return a })
	if err := hal.RunWindow(newApp, wcfg); err != nil {
		fail(d, err)
	}
}

func fail(d *diag.Context, err error) {
	d.Error("wirecam failed", "err", err)
	os.Exit(1)
}
