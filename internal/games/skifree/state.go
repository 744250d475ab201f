package skifree

import (
	"fmt"
	"math"
)

// Frame budgets, in simulation ticks.
const (
	FallenFrames    = 20
	SittingFrames   = 30
	JumpFramesSmall = 20
	JumpFramesLarge = 40
)

// StateKind is the discriminant of a player state.
type StateKind int

const (
	StateDownward StateKind = iota
	StateLeftStop
	StateRightStop
	StateLeftMove
	StateRightMove
	StateLeft30
	StateLeft45
	StateRight30
	StateRight45
	StateFallen
	StateSitting
	StateJump
	StateTrick1
	StateTrick2
	StateFlip
)

var stateNames = [...]string{
	StateDownward:  "Downward",
	StateLeftStop:  "LeftStop",
	StateRightStop: "RightStop",
	StateLeftMove:  "LeftMove",
	StateRightMove: "RightMove",
	StateLeft30:    "Left30",
	StateLeft45:    "Left45",
	StateRight30:   "Right30",
	StateRight45:   "Right45",
	StateFallen:    "Fallen",
	StateSitting:   "Sitting",
	StateJump:      "Jump",
	StateTrick1:    "Trick1",
	StateTrick2:    "Trick2",
	StateFlip:      "Flip",
}

// String returns the state name.
func (k StateKind) String() string {
	if k < 0 || int(k) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[k]
}

// Counting reports whether states of this kind carry a frame counter.
func (k StateKind) Counting() bool {
	switch k {
	case StateFallen, StateSitting, StateJump, StateTrick1, StateTrick2, StateFlip:
		return true
	}
	return false
}

// Upright reports whether the skier is on their skis and accepting input.
func (k StateKind) Upright() bool {
	switch k {
	case StateDownward, StateLeftStop, StateRightStop, StateLeftMove, StateRightMove,
		StateLeft30, StateLeft45, StateRight30, StateRight45:
		return true
	}
	return false
}

// State is the skier's current condition.
//
// Frames is the remaining counter for counting kinds. For Flip it is the
// counter of the current Phase (1-4) and Total is the captured airborne
// budget split across the phases. Success is the trick outcome fixed when
// the trick was started.
type State struct {
	Kind    StateKind
	Frames  int
	Phase   int
	Total   int
	Success bool
}

func (s State) String() string {
	switch s.Kind {
	case StateFallen, StateSitting, StateJump:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Frames)
	case StateTrick1, StateTrick2:
		return fmt.Sprintf("%s(%d, %t)", s.Kind, s.Frames, s.Success)
	case StateFlip:
		return fmt.Sprintf("Flip%d(%d, %t)", s.Phase, s.Frames, s.Success)
	default:
		return s.Kind.String()
	}
}

func steady(k StateKind) State {
	return State{Kind: k}
}

func fallen() State {
	return State{Kind: StateFallen, Frames: FallenFrames}
}

// flipPhaseFrames splits total into four near-equal segments. Earlier
// phases take the remainder.
func flipPhaseFrames(total, phase int) int {
	n := total / 4
	if phase <= total%4 {
		n++
	}
	return n
}

// enterFlipPhase moves to the first phase at or after phase with a non-zero
// allocation. ok is false once phase 4 has been passed.
func enterFlipPhase(s State, phase int) (State, bool) {
	for ; phase <= 4; phase++ {
		if n := flipPhaseFrames(s.Total, phase); n > 0 {
			s.Phase = phase
			s.Frames = n
			return s, true
		}
	}
	return s, false
}

// resolveTrick is the outcome of a finished trick or flip.
func resolveTrick(success bool) State {
	if success {
		return steady(StateDownward)
	}
	return fallen()
}

// next is the per-tick successor function.
func (s State) next() State {
	if !s.Kind.Counting() {
		return s
	}

	if s.Frames > 0 {
		s.Frames--
	}
	if s.Frames > 0 {
		return s
	}

	switch s.Kind {
	case StateFallen:
		return State{Kind: StateSitting, Frames: SittingFrames}
	case StateSitting, StateJump:
		return steady(StateDownward)
	case StateTrick1, StateTrick2:
		return resolveTrick(s.Success)
	case StateFlip:
		if ns, ok := enterFlipPhase(s, s.Phase+1); ok {
			return ns
		}
		return resolveTrick(s.Success)
	}
	return s
}

// headings maps directional kinds to their heading angle. Kinds that are
// absent are stationary.
var headings = map[StateKind]float64{
	StateDownward:  math.Pi,
	StateJump:      math.Pi,
	StateTrick1:    math.Pi,
	StateTrick2:    math.Pi,
	StateFlip:      math.Pi,
	StateLeftMove:  3 * math.Pi / 2,
	StateRightMove: math.Pi / 2,
	StateLeft30:    7 * math.Pi / 6,
	StateLeft45:    5 * math.Pi / 4,
	StateRight30:   5 * math.Pi / 6,
	StateRight45:   3 * math.Pi / 4,
}

// speeds in world units per tick.
var speeds = map[StateKind]float64{
	StateDownward:  3,
	StateJump:      3,
	StateTrick1:    3,
	StateTrick2:    3,
	StateFlip:      3,
	StateLeft30:    2.5,
	StateRight30:   2.5,
	StateLeft45:    2,
	StateRight45:   2,
	StateLeftMove:  1,
	StateRightMove: 1,
}

// RemainingFrames is the number of ticks until a counting state resolves.
// For a flip it covers the current and all later phases.
func (s State) RemainingFrames() int {
	if s.Kind != StateFlip {
		return s.Frames
	}
	n := s.Frames
	for phase := s.Phase + 1; phase <= 4; phase++ {
		n += flipPhaseFrames(s.Total, phase)
	}
	return n
}
