package skifree

import (
	"math"

	"github.com/vovakirdan/tui-skifree/internal/core"
)

// PlayerPosition is where the skier is drawn, in world units. The world
// scrolls under this fixed point.
var PlayerPosition = core.Vec2{X: 240, Y: 320}

const (
	playerWidth   = 20
	playerHeight  = 32
	hitboxHeight  = 5
	cullingMargin = 100
)

// TrickKind is an airborne manoeuvre.
type TrickKind int

const (
	Trick1 TrickKind = iota
	Trick2
	Flip
)

func (t TrickKind) String() string {
	switch t {
	case Trick1:
		return "Trick1"
	case Trick2:
		return "Trick2"
	case Flip:
		return "Flip"
	default:
		return "Unknown"
	}
}

// RequiredFrames is the airborne time a trick needs to land cleanly.
func (t TrickKind) RequiredFrames() int {
	switch t {
	case Trick1:
		return 20
	case Trick2:
		return 40
	default:
		return 32
	}
}

func (t TrickKind) stateKind() StateKind {
	switch t {
	case Trick1:
		return StateTrick1
	case Trick2:
		return StateTrick2
	default:
		return StateFlip
	}
}

// Player is the skier state machine. All methods are deterministic given the
// current state; commands that do not apply are no-ops.
type Player struct {
	state State
}

// NewPlayer returns a skier standing still, facing right.
func NewPlayer() *Player {
	return &Player{state: steady(StateRightStop)}
}

// State returns the current state.
func (p *Player) State() State {
	return p.state
}

// SteerLeft turns the skier one step anticlockwise (towards their left).
// From a right-facing stop the skier counter-steers to Right45 first.
func (p *Player) SteerLeft() {
	switch p.state.Kind {
	case StateDownward:
		p.state = steady(StateLeft30)
	case StateLeftStop:
		p.state = steady(StateLeftMove)
	case StateRightStop, StateRightMove:
		p.state = steady(StateRight45)
	case StateLeft30:
		p.state = steady(StateLeft45)
	case StateLeft45, StateLeftMove:
		p.state = steady(StateLeftStop)
	case StateRight30:
		p.state = steady(StateDownward)
	case StateRight45:
		p.state = steady(StateRight30)
	}
}

// SteerRight mirrors SteerLeft.
func (p *Player) SteerRight() {
	switch p.state.Kind {
	case StateDownward:
		p.state = steady(StateRight30)
	case StateLeftStop, StateLeftMove:
		p.state = steady(StateLeft45)
	case StateRightStop:
		p.state = steady(StateRightMove)
	case StateLeft30:
		p.state = steady(StateDownward)
	case StateLeft45:
		p.state = steady(StateLeft30)
	case StateRight30:
		p.state = steady(StateRight45)
	case StateRight45, StateRightMove:
		p.state = steady(StateRightStop)
	}
}

// ReleaseLeft stops a sideways shuffle to the left.
func (p *Player) ReleaseLeft() {
	if p.state.Kind == StateLeftMove {
		p.state = steady(StateLeftStop)
	}
}

// ReleaseRight stops a sideways shuffle to the right.
func (p *Player) ReleaseRight() {
	if p.state.Kind == StateRightMove {
		p.state = steady(StateRightStop)
	}
}

// ReactToCollision applies an obstacle's effect. Only an upright skier
// reacts; it returns whether the state changed.
func (p *Player) ReactToCollision(b Behavior) bool {
	if !p.IsUpright() {
		return false
	}
	switch b {
	case BehaviorFall:
		p.state = fallen()
	case BehaviorSmallJump:
		p.state = State{Kind: StateJump, Frames: JumpFramesSmall}
	case BehaviorLargeJump:
		p.state = State{Kind: StateJump, Frames: JumpFramesLarge}
	default:
		return false
	}
	return true
}

// AttemptTrick starts a trick while airborne. Whether it lands is decided
// here, once, by comparing the trick's requirement with the airborne frames
// left. It returns false if the skier is not in a jump.
func (p *Player) AttemptTrick(t TrickKind) bool {
	if !p.IsTrickEligible() {
		return false
	}
	remaining := p.state.Frames
	success := t.RequiredFrames() <= remaining

	if t == Flip {
		s, ok := enterFlipPhase(State{Kind: StateFlip, Total: remaining, Success: success}, 1)
		if !ok {
			// Nothing left to animate; resolve on the next tick.
			s = State{Kind: StateFlip, Phase: 4, Total: remaining, Success: success}
		}
		p.state = s
		return true
	}

	p.state = State{Kind: t.stateKind(), Frames: remaining, Success: success}
	return true
}

// AdvanceTick moves counting states one frame forward.
func (p *Player) AdvanceTick() {
	p.state = p.state.next()
}

// Heading returns the direction of travel. ok is false while stationary.
func (p *Player) Heading() (angle float64, ok bool) {
	angle, ok = headings[p.state.Kind]
	return angle, ok
}

// OppositeHeading is the direction the world scrolls under the skier.
func (p *Player) OppositeHeading() (angle float64, ok bool) {
	h, ok := p.Heading()
	if !ok {
		return 0, false
	}
	return core.NormalizeAngle(h + math.Pi), true
}

// Speed returns the scroll speed in world units per tick; zero while stationary.
func (p *Player) Speed() float64 {
	return speeds[p.state.Kind]
}

// IsUpright reports whether steering and collisions are accepted.
func (p *Player) IsUpright() bool {
	return p.state.Kind.Upright()
}

// IsTrickEligible reports whether the skier is airborne in a plain jump.
func (p *Player) IsTrickEligible() bool {
	return p.state.Kind == StateJump
}

// IsAirborne reports whether the skier is off the snow (jumping or mid-trick).
func (p *Player) IsAirborne() bool {
	switch p.state.Kind {
	case StateJump, StateTrick1, StateTrick2, StateFlip:
		return true
	}
	return false
}

// Hitbox is the ground contact strip under the skier's skis.
func (p *Player) Hitbox() core.RectF {
	return core.NewRectF(PlayerPosition.X, PlayerPosition.Y+playerHeight-hitboxHeight, playerWidth, hitboxHeight)
}
