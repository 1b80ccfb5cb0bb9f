package input

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeKey_Arrows(t *testing.T) {
	cases := map[string]string{
		"\x1b[A": "arrow_up",
		"\x1b[B": "arrow_down",
		"\x1b[C": "arrow_right",
		"\x1bOD": "arrow_left",
	}
	for seq, want := range cases {
		got, err := DecodeKey(strings.NewReader(seq))
		if err != nil {
			t.Fatalf("DecodeKey(%q) error: %v", seq, err)
		}
		if got != want {
			t.Errorf("DecodeKey(%q) = %q, want %q", seq, got, want)
		}
	}
}

func TestDecodeKey_Printable(t *testing.T) {
	got, err := DecodeKey(strings.NewReader("b"))
	if err != nil {
		t.Fatalf("DecodeKey error: %v", err)
	}
	if got != "b" {
		t.Errorf("DecodeKey(b) = %q, want %q", got, "b")
	}
}

func TestDecodeKey_LoneEscape(t *testing.T) {
	got, _ := DecodeKey(strings.NewReader("\x1b"))
	if got != "escape" {
		t.Errorf("DecodeKey(ESC) = %q, want escape", got)
	}
}

func TestDecodeKey_CtrlC(t *testing.T) {
	_, err := DecodeKey(strings.NewReader("\x03"))
	if !errors.Is(err, ErrInterrupted) {
		t.Errorf("DecodeKey(Ctrl+C) error = %v, want ErrInterrupted", err)
	}
}

func TestMapToIntent_Bindings(t *testing.T) {
	cases := map[string]Action{
		"b":        ActionDefeatBoss,
		"r":        ActionResetRun,
		"g":        ActionRegenerate,
		"q":        ActionQuit,
		"arrow_up": ActionMoveUp,
		"z":        ActionNone,
	}
	for code, want := range cases {
		got := MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: code})
		if got.Action != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionName(got.Action), ActionName(want))
		}
	}
}

func TestSetSingleBinding_KeepsArrows(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	t.Cleanup(func() { bindings = saved })

	SetSingleBinding(ActionMoveUp, "arrow_down")
	if bindings["arrow_down"] != ActionMoveDown {
		t.Errorf("arrow_down rebound to %s, want Move Down", ActionName(bindings["arrow_down"]))
	}
	if bindings["arrow_up"] != ActionMoveUp {
		t.Errorf("arrow_up lost its binding")
	}

	SetSingleBinding(ActionDefeatBoss, "x")
	if _, ok := bindings["b"]; ok {
		t.Errorf("old binding b still present after rebinding")
	}
	if bindings["x"] != ActionDefeatBoss {
		t.Errorf("x bound to %s, want Defeat Boss", ActionName(bindings["x"]))
	}
}
