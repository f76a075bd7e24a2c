package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionJump)
	f.Push(ActionNone)
	f.Push(ActionRestart)
	f.Push(ActionJump)

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (ActionNone is dropped)", f.Len())
	}
	expected := []Action{ActionJump, ActionRestart, ActionJump}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
	if !f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be false")
	}
}

func TestActionNames(t *testing.T) {
	for _, a := range []Action{ActionJump, ActionRestart, ActionPause, ActionQuit} {
		if got := ParseAction(a.String()); got != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), got, a)
		}
	}
	if ParseAction("Bogus") != ActionNone {
		t.Error("unknown names should parse to ActionNone")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
