package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// volumes are per-sound levels on a 0-255 scale.
var volumes = map[Sound]int{
	SoundFlap:       200,
	SoundScore:      255,
	SoundHit:        255,
	SoundFall:       255,
	SoundTransition: 255,
}

// gainFor converts a sound's volume into an effects.Gain amount, which
// multiplies samples by 1+gain.
func gainFor(s Sound) float64 {
	v, ok := volumes[s]
	if !ok {
		v = 255
	}
	return float64(v)/255 - 1
}

// Speaker plays bank sounds on the system audio device.
type Speaker struct {
	mu     sync.Mutex
	bank   *Bank
	closed bool
}

// NewSpeaker opens the audio device.
func NewSpeaker(bank *Bank) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Speaker{bank: bank}, nil
}

// Play implements Player. Sounds overlap; speaker.Play mixes them.
func (s *Speaker) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	stream := s.bank.Streamer(snd)
	if stream == nil {
		return
	}
	speaker.Play(&effects.Gain{Streamer: stream, Gain: gainFor(snd)})
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Open returns the best available player: Silent when muted or when the
// device cannot be opened. The returned close function is always safe to call.
func Open(dir string, mute bool, logger *log.Logger) (Player, func()) {
	if mute {
		return Silent{}, func() {}
	}

	bank, err := LoadBank(dir)
	if err != nil {
		logger.Warn("some sounds could not be loaded, using synthesized ones", "dir", dir, "err", err)
	}

	spk, err := NewSpeaker(bank)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return Silent{}, func() {}
	}
	logger.Debug("audio ready", "dir", dir, "rate", int(SampleRate))
	return spk, spk.Close
}
