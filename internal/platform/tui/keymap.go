package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skifree/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Trick1     key.Binding
	Trick2     key.Binding
	Flip       key.Binding
	Hitbox     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Trick1, k.Trick2, k.Flip, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Trick1, k.Trick2, k.Flip},
		{k.Pause, k.Restart, k.Hitbox},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "steer right"),
		),
		Trick1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "trick"),
		),
		Trick2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "big trick"),
		),
		Flip: key.NewBinding(
			key.WithKeys("f", "3"),
			key.WithHelp("f", "flip"),
		),
		Hitbox: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hitboxes"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns ActionNone for keys the game does not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionSteerLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionSteerRight
	case key.Matches(msg, km.keys.Trick1):
		return core.ActionTrick1
	case key.Matches(msg, km.keys.Trick2):
		return core.ActionTrick2
	case key.Matches(msg, km.keys.Flip):
		return core.ActionFlip
	case key.Matches(msg, km.keys.Hitbox):
		return core.ActionToggleHitbox
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// steering tracks held steering keys. Terminals report key repeats but no
// key releases, so a repeat of a held key is dropped and a key counts as
// released once no repeat has arrived for releaseAfter ticks.
type steering struct {
	releaseAfter uint64
	held         [2]bool
	lastSeen     [2]uint64
}

const (
	sideLeft = iota
	sideRight
)

func newSteering(releaseAfter int) steering {
	if releaseAfter <= 0 {
		releaseAfter = 1
	}
	return steering{releaseAfter: uint64(releaseAfter)}
}

// press records a steering key at tick. It reports whether this is a new
// press that should reach the game.
func (s *steering) press(a core.Action, tick uint64) bool {
	side, ok := steerSide(a)
	if !ok {
		return true
	}
	s.lastSeen[side] = tick
	if s.held[side] {
		return false
	}
	s.held[side] = true
	return true
}

// expire returns the release actions due at tick.
func (s *steering) expire(tick uint64) []core.Action {
	var out []core.Action
	for side, held := range s.held {
		if held && tick-s.lastSeen[side] >= s.releaseAfter {
			s.held[side] = false
			out = append(out, releaseAction(side))
		}
	}
	return out
}

// clear forgets held keys without emitting releases.
func (s *steering) clear() {
	s.held = [2]bool{}
}

func steerSide(a core.Action) (int, bool) {
	switch a {
	case core.ActionSteerLeft:
		return sideLeft, true
	case core.ActionSteerRight:
		return sideRight, true
	}
	return 0, false
}

func releaseAction(side int) core.Action {
	if side == sideLeft {
		return core.ActionReleaseLeft
	}
	return core.ActionReleaseRight
}
