package core

// Button is a single bit in a normalized button mask.
// Platforms translate their physical inputs (keys, mouse, controllers)
// into these bits so the game never reads raw hardware state.
type Button uint32

const (
	ButtonA    Button = 1 << iota // Primary action: flap, start
	ButtonHome                    // Exit request, handled by the platform
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonHome:
		return "Home"
	default:
		return "Unknown"
	}
}

// Pointer is a pointing device position in the input device's own coordinates.
type Pointer struct {
	X, Y float64
}

// InputSnapshot is the normalized input for one simulation frame:
// the buttons pressed this frame plus the current pointer position.
type InputSnapshot struct {
	Buttons Button
	Pointer Pointer
}

// Set marks a button as pressed for this frame.
func (s *InputSnapshot) Set(b Button) {
	s.Buttons |= b
}

// Has returns true if the given button was pressed this frame.
func (s InputSnapshot) Has(b Button) bool {
	return s.Buttons&b != 0
}

// ClearButtons drops the pressed buttons but keeps the pointer position,
// which persists between frames.
func (s *InputSnapshot) ClearButtons() {
	s.Buttons = 0
}
