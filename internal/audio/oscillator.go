// internal/audio/oscillator.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType — форма волны осциллятора.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator генерирует тон фиксированной длительности с линейным затуханием.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer that plays freq for duration and then drains.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		val *= 1 - float64(o.position)/float64(o.duration)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Tone is one step of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
}

// Sequence склеивает тоны в один поток.
func Sequence(rate beep.SampleRate, tones ...Tone) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		streamers = append(streamers, NewOscillator(t.Freq, t.Duration, t.Wave, rate))
	}
	return beep.Seq(streamers...)
}
