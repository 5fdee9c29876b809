// Package audio synthesizes the game's sound cues with beep and plays them
// through the local speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/herald/internal/sim"
)

// SampleRate is the rate all cues are synthesized at.
const SampleRate = beep.SampleRate(44100)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length wave, optionally gliding from freq to
// freq+glide over its duration.
type oscillator struct {
	freq     float64
	glide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a finite streamer of the given wave.
func NewOscillator(freq, glide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		glide:    glide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq) + 1)), //#nosec G404 -- noise timbre
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
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		f := o.freq + o.glide*float64(o.position)/float64(o.duration)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. A zero volume is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq, glide float64, d, attack, release time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, glide, d, wave, SampleRate), d, attack, release, SampleRate)
}

// hitSound is a short saw blip.
func hitSound() beep.Streamer {
	return tone(220, -120, 70*time.Millisecond, 2*time.Millisecond, 50*time.Millisecond, WaveSaw)
}

// dashSound is a noise whoosh over a rising sine.
func dashSound() beep.Streamer {
	return beep.Mix(
		newVolume(tone(0, 0, 150*time.Millisecond, 30*time.Millisecond, 100*time.Millisecond, WaveNoise), 0.4),
		newVolume(tone(300, 500, 150*time.Millisecond, 30*time.Millisecond, 100*time.Millisecond, WaveSine), 0.3),
	)
}

// summonSound is a low rising drone under a hiss.
func summonSound() beep.Streamer {
	return beep.Mix(
		newVolume(tone(90, 140, 400*time.Millisecond, 40*time.Millisecond, 250*time.Millisecond, WaveSquare), 0.25),
		newVolume(tone(0, 0, 400*time.Millisecond, 150*time.Millisecond, 200*time.Millisecond, WaveNoise), 0.15),
	)
}

// levelUpSound is a rising major arpeggio.
func levelUpSound() beep.Streamer {
	const note = 90 * time.Millisecond
	var seq []beep.Streamer
	for _, f := range []float64{523.25, 659.25, 783.99, 1046.5} {
		seq = append(seq, tone(f, 0, note, 5*time.Millisecond, 40*time.Millisecond, WaveSquare))
	}
	return newVolume(beep.Seq(seq...), 0.5)
}

// questSound is a two-note bell.
func questSound() beep.Streamer {
	return beep.Seq(
		beep.Mix(
			newVolume(tone(880, 0, 120*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, WaveSine), 0.7),
			newVolume(tone(1760, 0, 120*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, WaveSine), 0.3),
		),
		beep.Mix(
			newVolume(tone(1318.51, 0, 250*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond, WaveSine), 0.7),
			newVolume(tone(2637.02, 0, 250*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond, WaveSine), 0.3),
		),
	)
}

// Synth returns the streamer for a cue at the given intensity, or nil when
// the cue is unknown.
func Synth(cue string, intensity float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case sim.CueHit:
		s = hitSound()
	case sim.CueDash:
		s = dashSound()
	case sim.CueSummon:
		s = summonSound()
	case sim.CueLevelUp:
		s = levelUpSound()
	case sim.CueQuest:
		s = questSound()
	default:
		return nil
	}
	return newVolume(s, math.Max(0, math.Min(1, intensity)))
}
