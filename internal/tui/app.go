// internal/tui/app.go
package tui

import (
	"log"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/audio"
	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

// App — терминальный фронтенд: крутит бой в реальном времени и рисует его.
type App struct {
	screen  tcell.Screen
	tuning  config.Tuning
	battle  *app.Battle
	sound   *audio.SoundManager
	pending []defs.AbilityID
	paused  bool
	last    time.Time
}

// NewApp takes ownership of an initialized screen. sound may be nil.
func NewApp(screen tcell.Screen, tuning config.Tuning, sound *audio.SoundManager) *App {
	a := &App{screen: screen, tuning: tuning, sound: sound}
	a.newBattle(tuning.StartWave)
	return a
}

func (a *App) Battle() *app.Battle { return a.battle }

func (a *App) newBattle(startWave int) {
	t := a.tuning
	t.StartWave = startWave
	a.battle = app.NewBattle(t, clock.NewReal())
	if a.sound != nil {
		a.sound.Subscribe(a.battle.EventDispatcher)
	}
	a.pending = nil
	a.last = time.Now()
}

// Run блокируется до выхода пользователя.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Step(time.Now())
			Draw(a.screen, a.battle, a.paused)
			a.screen.Show()
		}
	}
}

// Step advances the battle to now unless paused.
func (a *App) Step(now time.Time) {
	delta := now.Sub(a.last)
	a.last = now
	if a.paused {
		return
	}
	in := a.battle.DefaultInputs()
	in.Fire.Mode = config.AimAuto
	in.Abilities = a.pending
	a.pending = nil
	a.battle.Tick(delta, in)
}

// HandleEvent returns false when the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if a.battle.Over() {
			log.Printf("Restarting from wave %d", a.battle.Checkpoint())
			a.newBattle(a.battle.Checkpoint())
		}
	case tcell.KeyRune:
		a.handleRune(r)
	}
	return true
}

func (a *App) handleRune(r rune) {
	switch r {
	case 'p', ' ':
		a.paused = !a.paused
	case '1':
		a.battle.SetSpeed(1)
	case '2':
		a.battle.SetSpeed(2)
	default:
		for _, id := range defs.AbilityOrder {
			if defs.AbilityLibrary[id].Hotkey == r {
				a.pending = append(a.pending, id)
				return
			}
		}
	}
}
