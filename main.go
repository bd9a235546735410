package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/iburimskiy/neural-sphere/internal/config"
	"github.com/iburimskiy/neural-sphere/internal/game"
	"github.com/iburimskiy/neural-sphere/internal/headless"
	"github.com/iburimskiy/neural-sphere/internal/logging"
	"github.com/iburimskiy/neural-sphere/internal/theme"
)

func main() {
	var (
		hcfg     headless.Config
		runHL    bool
		themeArg string
		seed     int64
		verbose  bool
	)
	flag.BoolVar(&runHL, "headless", false, "Render without a window.")
	flag.IntVar(&hcfg.Hz, "hz", config.TPS, "Frame rate in headless mode.")
	flag.Uint64Var(&hcfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.IntVar(&hcfg.Width, "width", config.WindowWidth, "Surface width.")
	flag.IntVar(&hcfg.Height, "height", config.WindowHeight, "Surface height.")
	flag.StringVar(&themeArg, "theme", "light", "Initial theme: light or dark.")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "Particle placement seed.")
	flag.StringVar(&hcfg.PNG, "png", "", "Headless: write the last frame to this PNG file.")
	flag.StringVar(&hcfg.GIF, "gif", "", "Headless: write an animated GIF to this file.")
	flag.IntVar(&hcfg.GIFEvery, "gif-every", 2, "Headless: record every Nth frame into the GIF.")
	flag.BoolVar(&verbose, "v", false, "Verbose logging.")
	flag.Parse()

	themes := theme.NewStore(theme.Parse(themeArg))

	if runHL {
		log := logging.New(os.Stderr, "HEADLESS", verbose)
		hcfg.Seed = seed
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := headless.Run(ctx, hcfg, themes, log); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	log := logging.New(os.Stderr, "GAME", verbose)
	wcfg := game.WindowConfig{Width: hcfg.Width, Height: hcfg.Height, Seed: seed}
	if err := game.RunWindow(wcfg, themes, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
