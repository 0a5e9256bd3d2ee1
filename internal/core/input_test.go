package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionMine) {
		t.Error("unset action reported as triggered")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameSlot(t *testing.T) {
	tests := []struct {
		action Action
		slot   int
	}{
		{ActionSlot1, 1},
		{ActionSlot2, 2},
		{ActionSlot3, 3},
		{ActionSlot4, 4},
		{ActionSlot5, 5},
	}

	for _, tc := range tests {
		f := NewInputFrame()
		f.Set(tc.action)
		if got := f.Slot(); got != tc.slot {
			t.Errorf("Slot() with %v = %d, expected %d", tc.action, got, tc.slot)
		}
	}

	f := NewInputFrame()
	f.Set(ActionJump)
	if f.Slot() != 0 {
		t.Error("Slot() should be 0 when no slot action is set")
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	f.AddClick(Click{X: 12, Y: 7, Button: ClickLeft})
	f.AddClick(Click{X: 3, Y: 4, Button: ClickRight})

	if len(f.Clicks) != 2 {
		t.Fatalf("expected 2 clicks, got %d", len(f.Clicks))
	}
	if f.Clicks[0].Button != ClickLeft || f.Clicks[1].Button != ClickRight {
		t.Error("click order should be preserved")
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Clicks) != 0 {
		t.Error("Clear should drop clicks")
	}
	if len(clone.Clicks) != 2 {
		t.Error("Clone should keep its own copy of clicks")
	}
}
