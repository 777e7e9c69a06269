package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/gogpu/gg"

	"life-ca/internal/render"
	"life-ca/internal/runner"
	"life-ca/internal/sims/life"
)

func main() {
	def := life.DefaultConfig()
	w := flag.Int("w", def.Width, "grid width in cells")
	h := flag.Int("h", def.Height, "grid height in cells")
	pattern := flag.String("pattern", string(def.Pattern), "initial pattern: checkerboard, empty or random")
	seed := flag.Int64("seed", def.Seed, "seed for the random pattern")
	counter := flag.String("counter", def.Counter, "neighbor counter: direct or fft")
	steps := flag.Int("steps", 100, "generations to simulate")
	sweep := flag.Int("sweep", 0, "run this many consecutive seeds and compare repeat runs")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines for -sweep")
	pngDir := flag.String("png-dir", "", "write PNG frames to this directory")
	pngEvery := flag.Int("png-every", 1, "write a frame every N generations")
	cellPx := flag.Int("cell-px", 8, "pixels per cell in PNG frames")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(log)

	p, ok := life.ParsePattern(*pattern)
	if !ok {
		log.Error("unknown pattern", "pattern", *pattern)
		os.Exit(2)
	}
	cfg := def
	cfg.Width, cfg.Height = *w, *h
	cfg.Pattern = p
	cfg.Seed = *seed
	cfg.Counter = *counter

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if *sweep > 0 {
		results, err := runner.Sweep(ctx, cfg, *steps, *sweep, *workers, log)
		if err != nil {
			log.Error("sweep failed", "err", err)
			os.Exit(1)
		}
		for _, r := range results {
			fmt.Println(r)
		}
		log.Info("sweep complete", "seeds", len(results), "elapsed", time.Since(start))
		return
	}

	frames := runner.Frames{Dir: *pngDir, Every: *pngEvery}
	if frames.Dir != "" {
		if err := os.MkdirAll(frames.Dir, 0o755); err != nil {
			log.Error("create frame dir", "dir", frames.Dir, "err", err)
			os.Exit(1)
		}
		frames.Options = render.DefaultSnapshotOptions()
		frames.Options.CellPx = *cellPx
	}
	res, err := runner.Run(ctx, cfg, *steps, frames, log)
	if err != nil {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(res)
	log.Info("run complete", "generation", res.Generation, "population", res.Population, "elapsed", time.Since(start))
}
