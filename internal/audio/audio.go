// Package audio plays the game's sound intents.
package audio

import "github.com/vovakirdan/flapwii/internal/games/flapwii"

// Sound is a fire-and-forget sound effect.
type Sound int

const (
	SoundFlap Sound = iota
	SoundScore
	SoundHit
	SoundFall
	SoundTransition
)

// AllSounds lists every sound.
var AllSounds = []Sound{SoundFlap, SoundScore, SoundHit, SoundFall, SoundTransition}

func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundHit:
		return "hit"
	case SoundFall:
		return "fall"
	case SoundTransition:
		return "transition"
	default:
		return "unknown"
	}
}

// FromEvent maps a game event to its sound.
func FromEvent(ev flapwii.Event) (Sound, bool) {
	switch ev {
	case flapwii.EventFlap:
		return SoundFlap, true
	case flapwii.EventScore:
		return SoundScore, true
	case flapwii.EventHit:
		return SoundHit, true
	case flapwii.EventFall:
		return SoundFall, true
	case flapwii.EventTransition:
		return SoundTransition, true
	}
	return 0, false
}

// Player triggers sounds. Play must not block the caller.
type Player interface {
	Play(s Sound)
}

// Silent is a Player that plays nothing.
type Silent struct{}

// Play implements Player.
func (Silent) Play(Sound) {}

// Dispatch plays the sound for every raised event in emit order.
func Dispatch(p Player, events flapwii.Events) {
	for _, ev := range events.List() {
		if s, ok := FromEvent(ev); ok {
			p.Play(s)
		}
	}
}
