// cmd/simsvc/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	seed := flag.Int64("seed", 1, "seed of the first battle, following battles use seed+i")
	n := flag.Int("n", 16, "number of battles")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel battles")
	maxSeconds := flag.Float64("max-seconds", 1800, "simulated time limit per battle")
	out := flag.String("out", "", "write JSON summary to this file instead of stdout")
	verbose := flag.Bool("v", false, "keep battle logs")
	flag.Parse()

	tuning := config.DefaultTuning()
	if *configPath != "" {
		t, err := config.LoadTuning(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		tuning = t
	}
	if tuning.EnemiesFile != "" {
		if err := defs.LoadEnemyDefinitions(tuning.EnemiesFile); err != nil {
			log.Fatalf("Failed to load enemies: %v", err)
		}
	}
	tuning.Seed = *seed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	started := time.Now()
	summary, err := sim.RunBatch(ctx, tuning, *n, *workers, time.Duration(*maxSeconds*float64(time.Second)))
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatalf("Simulation aborted: %v", err)
	}
	log.Printf("Simulated %d battles in %v, mean final wave %.2f", summary.Runs, time.Since(started).Round(time.Millisecond), summary.MeanWave)

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}
}
