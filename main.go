package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"renderdemon/app"
	"renderdemon/hal"
)

func main() {
	var (
		hcfg     hal.HeadlessConfig
		wcfg     hal.WindowConfig
		acfg     app.Config
		hold     string
		logLevel string
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&wcfg.Width, "width", hal.DefaultWidth, "Framebuffer width.")
	flag.IntVar(&wcfg.Height, "height", hal.DefaultHeight, "Framebuffer height.")
	flag.IntVar(&wcfg.Scale, "scale", 1, "Window zoom factor.")
	flag.StringVar(&acfg.Scene, "scene", "", "Scene shown first (primitives, portal).")
	flag.StringVar(&hold, "hold", "", "Comma-separated keys held down in headless mode, e.g. left,up.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	if err := acfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		fatal(err)
	}
	keys, err := hal.ParseKeys(hold)
	if err != nil {
		fatal(err)
	}
	hcfg.Width, hcfg.Height, hcfg.Hold = wcfg.Width, wcfg.Height, keys

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hcfg)
	} else {
		acfg.HoldOnPanic = true
		err = hal.RunWindow(wcfg, newApp)
	}
	if err == nil || errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
		return
	}
	fatal(err)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
