package audio

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the rate every sound is stored and played at.
const SampleRate = beep.SampleRate(44100)

// Format is the buffer format of the bank.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

const resampleQuality = 4

// assetNames are the WAV files looked up in the sounds directory.
var assetNames = map[Sound]string{
	SoundFlap:       "sfx_flap.wav",
	SoundScore:      "sfx_score.wav",
	SoundHit:        "sfx_hit.wav",
	SoundFall:       "sfx_die.wav",
	SoundTransition: "sfx_transition.wav",
}

// Source tells where a bank sound came from.
type Source string

const (
	SourceFile  Source = "file"
	SourceSynth Source = "synth"
)

// Bank holds every sound fully decoded in memory.
type Bank struct {
	buffers map[Sound]*beep.Buffer
	sources map[Sound]Source
}

// LoadBank decodes the WAV assets found in dir and synthesizes the rest.
// An asset that exists but cannot be decoded is replaced by its synthesized
// sound and reported in the returned error; the bank is always usable.
func LoadBank(dir string) (*Bank, error) {
	b := &Bank{
		buffers: make(map[Sound]*beep.Buffer, len(AllSounds)),
		sources: make(map[Sound]Source, len(AllSounds)),
	}

	var errs []error
	for _, s := range AllSounds {
		if dir != "" {
			path := filepath.Join(dir, assetNames[s])
			buf, err := loadWAV(path)
			switch {
			case err == nil:
				b.buffers[s], b.sources[s] = buf, SourceFile
				continue
			case !errors.Is(err, os.ErrNotExist):
				errs = append(errs, err)
			}
		}
		b.buffers[s], b.sources[s] = synthesize(s), SourceSynth
	}
	return b, errors.Join(errs...)
}

// Streamer returns a fresh stream over the sound's samples.
func (b *Bank) Streamer(s Sound) beep.StreamSeeker {
	buf, ok := b.buffers[s]
	if !ok {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

// Len returns the number of samples stored for a sound.
func (b *Bank) Len(s Sound) int {
	if buf, ok := b.buffers[s]; ok {
		return buf.Len()
	}
	return 0
}

// Source reports whether a sound was loaded from disk or synthesized.
func (b *Bank) Source(s Sound) Source {
	return b.sources[s]
}

func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != SampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, SampleRate, stream)
	}

	buf := beep.NewBuffer(Format)
	buf.Append(src)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s has no samples", path)
	}
	return buf, nil
}

// tone describes one synthesized note.
type tone struct {
	freq float64
	dur  time.Duration
}

// synthTones are the fallback sounds.
var synthTones = map[Sound][]tone{
	SoundFlap:       {{660, 60 * time.Millisecond}},
	SoundScore:      {{880, 70 * time.Millisecond}, {1320, 90 * time.Millisecond}},
	SoundHit:        {{150, 120 * time.Millisecond}},
	SoundFall:       {{520, 90 * time.Millisecond}, {400, 90 * time.Millisecond}, {290, 140 * time.Millisecond}},
	SoundTransition: {{440, 80 * time.Millisecond}, {660, 120 * time.Millisecond}},
}

// synthesize renders a sound's tones into a buffer. Hits get a burst of
// noise on top.
func synthesize(s Sound) *beep.Buffer {
	var parts []beep.Streamer
	for _, t := range synthTones[s] {
		sine, err := generators.SineTone(SampleRate, t.freq)
		if err != nil {
			continue
		}
		n := SampleRate.N(t.dur)
		parts = append(parts, fadeOut(beep.Take(n, sine), n, 0.3))
	}

	stream := beep.Seq(parts...)
	if s == SoundHit {
		n := SampleRate.N(120 * time.Millisecond)
		stream = beep.Mix(stream, fadeOut(noise(n), n, 0.15))
	}

	buf := beep.NewBuffer(Format)
	buf.Append(stream)
	return buf
}

// fadeOut scales s by amp and ramps it linearly to silence over n samples.
func fadeOut(s beep.Streamer, n int, amp float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		got, ok := s.Stream(samples)
		for i := 0; i < got; i++ {
			v := amp * (1 - float64(pos)/float64(n))
			if v < 0 {
				v = 0
			}
			samples[i][0] *= v
			samples[i][1] *= v
			pos++
		}
		return got, ok
	})
}

// noise streams n samples of white noise.
func noise(n int) beep.Streamer {
	rng := rand.New(rand.NewSource(1))
	left := n
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if left <= 0 {
			return 0, false
		}
		count := min(len(samples), left)
		for i := 0; i < count; i++ {
			v := rng.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		left -= count
		return count, true
	})
}
