package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skifree/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionSteerLeft},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionSteerLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionSteerRight},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionSteerRight},
		{"1", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")}, core.ActionTrick1},
		{"2", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")}, core.ActionTrick2},
		{"f", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}, core.ActionFlip},
		{"h", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, core.ActionToggleHitbox},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%s) = %v, expected %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestSteeringSuppressesRepeats(t *testing.T) {
	s := newSteering(12)

	if !s.press(core.ActionSteerLeft, 0) {
		t.Fatal("first press should pass through")
	}
	for tick := uint64(2); tick <= 20; tick += 2 {
		if s.press(core.ActionSteerLeft, tick) {
			t.Fatalf("repeat at tick %d should be suppressed", tick)
		}
		if rel := s.expire(tick); len(rel) != 0 {
			t.Fatalf("expire(%d) = %v while repeats keep arriving", tick, rel)
		}
	}
	if !s.press(core.ActionSteerRight, 21) {
		t.Error("the other side is tracked independently")
	}
	if !s.press(core.ActionTrick1, 21) {
		t.Error("non-steering actions always pass through")
	}
}

func TestSteeringSynthesisesRelease(t *testing.T) {
	s := newSteering(12)
	s.press(core.ActionSteerLeft, 5)

	if rel := s.expire(16); len(rel) != 0 {
		t.Fatalf("expire(16) = %v, expected none before the timeout", rel)
	}
	if rel := s.expire(17); !reflect.DeepEqual(rel, []core.Action{core.ActionReleaseLeft}) {
		t.Fatalf("expire(17) = %v, expected [ReleaseLeft]", rel)
	}
	if rel := s.expire(40); len(rel) != 0 {
		t.Errorf("release is emitted once, got %v", rel)
	}
	if !s.press(core.ActionSteerLeft, 41) {
		t.Error("press after release should pass through")
	}
}

func TestSteeringClear(t *testing.T) {
	s := newSteering(12)
	s.press(core.ActionSteerLeft, 0)
	s.press(core.ActionSteerRight, 0)
	s.clear()

	if rel := s.expire(100); len(rel) != 0 {
		t.Errorf("expire() after clear = %v, expected none", rel)
	}
}
