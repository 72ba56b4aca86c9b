package core

import "testing"

func TestInputFrameCounts(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionRotate)

	if got := f.Count(ActionLeft); got != 2 {
		t.Errorf("Count(Left) = %d, expected 2", got)
	}
	if !f.Has(ActionRotate) {
		t.Error("Has(Rotate) should be true")
	}
	if f.Has(ActionHold) {
		t.Error("Has(Hold) should be false")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if clone.Count(ActionLeft) != 2 {
		t.Error("Clone should not share state with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionDown) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionDown)
	if f.Count(ActionDown) != 1 {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionHardDrop, "HardDrop"},
		{ActionHold, "Hold"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
