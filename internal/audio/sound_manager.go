// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"go-wave-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Не чаще одного звука убийства за этот интервал
	killThrottle = 40 * time.Millisecond
)

var (
	killCue       = []Tone{{Freq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare}}
	critCue       = []Tone{{Freq: 990, Duration: 30 * time.Millisecond, Wave: WaveSquare}, {Freq: 1320, Duration: 50 * time.Millisecond, Wave: WaveSquare}}
	baseHitCue    = []Tone{{Freq: 110, Duration: 150 * time.Millisecond, Wave: WaveSaw}}
	abilityCue    = []Tone{{Freq: 440, Duration: 60 * time.Millisecond, Wave: WaveSine}, {Freq: 880, Duration: 80 * time.Millisecond, Wave: WaveSine}}
	waveCue       = []Tone{{Freq: 523, Duration: 90 * time.Millisecond}, {Freq: 659, Duration: 90 * time.Millisecond}, {Freq: 784, Duration: 160 * time.Millisecond}}
	battleOverCue = []Tone{{Freq: 392, Duration: 200 * time.Millisecond, Wave: WaveSaw}, {Freq: 311, Duration: 200 * time.Millisecond, Wave: WaveSaw}, {Freq: 196, Duration: 400 * time.Millisecond, Wave: WaveSaw}}
)

// SoundManager озвучивает события боя синтезированными сигналами.
// Пока Initialize не вызван, OnEvent ничего не делает.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastKill    time.Time
	played      int
}

// NewSoundManager creates a manager; volume is in beep's log2 units, 0 is unchanged.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Subscribe подписывает менеджер на все озвучиваемые события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeMany(sm, event.EnemyKilled, event.BaseHit, event.AbilityActivated, event.WaveAdvanced, event.BattleOver)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		if data.IsCrit {
			sm.play(critCue, true)
		} else {
			sm.play(killCue, true)
		}
	case event.BaseHitData:
		if !data.Blocked {
			sm.play(baseHitCue, false)
		}
	case event.AbilityActivatedData:
		sm.play(abilityCue, false)
	case event.WaveAdvancedData:
		sm.play(waveCue, false)
	case event.BattleOverData:
		sm.play(battleOverCue, false)
	}
}

// Played returns how many cues have been queued.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

func (sm *SoundManager) play(cue []Tone, throttled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	now := time.Now()
	if throttled {
		if now.Sub(sm.lastKill) < killThrottle {
			return
		}
		sm.lastKill = now
	}

	s := &effects.Volume{Streamer: Sequence(sampleRate, cue...), Base: 2, Volume: sm.volume}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}
