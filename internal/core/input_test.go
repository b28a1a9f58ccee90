package core

import "testing"

func TestInputSnapshotButtons(t *testing.T) {
	var in InputSnapshot

	if in.Has(ButtonA) {
		t.Error("empty snapshot should have no buttons")
	}

	in.Set(ButtonA)
	in.Set(ButtonHome)

	if !in.Has(ButtonA) || !in.Has(ButtonHome) {
		t.Errorf("expected A and Home set, mask = %b", in.Buttons)
	}
	if in.Has(ButtonHome << 1) {
		t.Error("unknown bit should not be set")
	}
}

func TestInputSnapshotClearKeepsPointer(t *testing.T) {
	in := InputSnapshot{Pointer: Pointer{X: 12, Y: 34}}
	in.Set(ButtonA)

	in.ClearButtons()

	if in.Buttons != 0 {
		t.Errorf("buttons should be cleared, got %b", in.Buttons)
	}
	if in.Pointer.X != 12 || in.Pointer.Y != 34 {
		t.Errorf("pointer should survive clear, got %+v", in.Pointer)
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		b    Button
		want string
	}{
		{ButtonA, "A"},
		{ButtonHome, "Home"},
		{Button(1 << 10), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.b.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.b, got, tc.want)
		}
	}
}
