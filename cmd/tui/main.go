// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-wave-defense/internal/audio"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/tui"

	"github.com/gdamore/tcell/v2"
)

// setupLogging направляет log в файл: stdout занят терминалом.
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	enemiesPath := flag.String("enemies", "", "YAML enemy definitions override")
	logPath := flag.String("log", "", "write log output to this file")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if f := setupLogging(*logPath); f != nil {
		defer f.Close()
	}

	tuning := config.DefaultTuning()
	if *configPath != "" {
		t, err := config.LoadTuning(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		tuning = t
	}
	if *seed != 0 {
		tuning.Seed = *seed
	}
	if *enemiesPath != "" {
		tuning.EnemiesFile = *enemiesPath
	}
	if tuning.EnemiesFile != "" {
		if err := defs.LoadEnemyDefinitions(tuning.EnemiesFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load enemies: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var sound *audio.SoundManager
	if !*mute {
		sound = audio.NewSoundManager(-1)
		if err := sound.Initialize(); err != nil {
			// без звука игра работает
			log.Printf("Audio initialization failed: %v", err)
		}
		defer sound.Cleanup()
	}

	tui.NewApp(screen, tuning, sound).Run()
}
