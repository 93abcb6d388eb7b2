// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/audio"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

// Update передаёт в машину состояний реальное время кадра; обрезка до
// MaxDeltaTime и множитель скорости применяются внутри боя.
func (a *AppGame) Update() error {
	now := time.Now()
	delta := now.Sub(a.lastUpdateTime)
	a.lastUpdateTime = now
	a.stateMachine.Update(delta)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning := config.DefaultTuning()
	if *configPath != "" {
		t, err := config.LoadTuning(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}
	if tuning.EnemiesFile != "" {
		if err := defs.LoadEnemyDefinitions(tuning.EnemiesFile); err != nil {
			log.Fatal(err)
		}
	}

	var onBattle func(*app.Battle)
	if !*mute {
		sound := audio.NewSoundManager(-1)
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sound.Cleanup()
			onBattle = func(b *app.Battle) { sound.Subscribe(b.EventDispatcher) }
		}
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewBattleState(sm, tuning, onBattle))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          int(tuning.Width),
		height:         int(tuning.Height),
	}
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Wave Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
