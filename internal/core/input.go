package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform guarantees each press produces one action; key repeats are
// filtered before they reach a game.
type Action int

const (
	ActionNone         Action = iota
	ActionSteerLeft           // Left arrow, A - pressed
	ActionSteerRight          // Right arrow, D - pressed
	ActionReleaseLeft         // Left key released (synthesised on terminals)
	ActionReleaseRight        // Right key released (synthesised on terminals)
	ActionTrick1              // 1 - airborne trick
	ActionTrick2              // 2 - airborne trick
	ActionFlip                // F - airborne flip
	ActionToggleHitbox        // H - debug hitbox overlay
	ActionRestart             // R key - start a new run
	ActionQuit                // Q, Ctrl+C - exit
	ActionPause               // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionReleaseLeft:
		return "ReleaseLeft"
	case ActionReleaseRight:
		return "ReleaseRight"
	case ActionTrick1:
		return "Trick1"
	case ActionTrick2:
		return "Trick2"
	case ActionFlip:
		return "Flip"
	case ActionToggleHitbox:
		return "ToggleHitbox"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions delivered during one simulation tick, in
// arrival order. Order matters for steering: press-then-release within a
// single tick must not collapse into a release alone.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 4)}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
