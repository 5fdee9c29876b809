package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays cues on the local audio device. The zero value is not
// usable; create one with NewSpeaker.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	log         *log.Logger
	initialized bool
}

// NewSpeaker creates a speaker sink. Call Init before playing.
func NewSpeaker(logger *log.Logger) *Speaker {
	return &Speaker{
		mixer: &beep.Mixer{},
		log:   logger,
	}
}

// Init opens the audio device with a 100ms buffer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue into the output. Unknown cues and calls before Init are
// ignored.
func (s *Speaker) Play(cue string, intensity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := Synth(cue, intensity)
	if st == nil {
		s.log.Debug("unknown audio cue", "cue", cue)
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Silent discards every cue. It backs SSH sessions and muted play.
type Silent struct{}

// Play does nothing.
func (Silent) Play(string, float64) {}

// Close does nothing.
func (Silent) Close() {}

// Sink is a cue player with a lifetime.
type Sink interface {
	Play(cue string, intensity float64)
	Close()
}

// Open returns a speaker sink when enabled and the device opens, and a
// Silent sink otherwise. Audio failures are never fatal.
func Open(enabled bool, logger *log.Logger) Sink {
	if !enabled {
		return Silent{}
	}
	sp := NewSpeaker(logger)
	if err := sp.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return Silent{}
	}
	return sp
}
