package skifree

import "github.com/vovakirdan/tui-skifree/internal/core"

// Behavior is what an obstacle does to the skier on contact.
type Behavior int

const (
	BehaviorNone Behavior = iota
	BehaviorFall
	BehaviorSmallJump
	BehaviorLargeJump
)

func (b Behavior) String() string {
	switch b {
	case BehaviorFall:
		return "Fall"
	case BehaviorSmallJump:
		return "SmallJump"
	case BehaviorLargeJump:
		return "LargeJump"
	default:
		return "None"
	}
}

// Collision is an obstacle's pending effect. Armed is cleared the first
// time the skier touches the object so it never triggers twice.
type Collision struct {
	Behavior Behavior
	Armed    bool
}

// Get returns the pending behaviour, if any.
func (c Collision) Get() (Behavior, bool) {
	if !c.Armed {
		return BehaviorNone, false
	}
	return c.Behavior, true
}

func armed(b Behavior) Collision {
	if b == BehaviorNone {
		return Collision{}
	}
	return Collision{Behavior: b, Armed: true}
}

// MotionKind selects an object's autonomous per-tick movement.
type MotionKind int

const (
	MotionStatic MotionKind = iota
	MotionAscend
	MotionDescend
)

// Motion is an autonomous movement rule, independent of scrolling.
type Motion struct {
	Kind  MotionKind
	Speed float64
}

// Ascend moves an object up the slope by speed each tick.
func Ascend(speed float64) Motion { return Motion{Kind: MotionAscend, Speed: speed} }

// Descend moves an object down the slope by speed each tick.
func Descend(speed float64) Motion { return Motion{Kind: MotionDescend, Speed: speed} }

// Static objects only move with the world.
var Static = Motion{Kind: MotionStatic}

// Horizontal wrap bounds of the course band, in world units.
const (
	CourseLeft  = -1500
	CourseRight = 1500
	courseWidth = CourseRight - CourseLeft
)

// Object is one placed terrain entity.
type Object struct {
	Kind      Kind
	Position  core.Vec2
	Collision Collision
	Motion    Motion
}

// NewStatic creates an immovable object.
func NewStatic(pos core.Vec2, b Behavior, kind Kind) *Object {
	return &Object{Kind: kind, Position: pos, Collision: armed(b), Motion: Static}
}

// NewMobile creates an object that moves on its own every tick.
func NewMobile(pos core.Vec2, b Behavior, kind Kind, m Motion) *Object {
	return &Object{Kind: kind, Position: pos, Collision: armed(b), Motion: m}
}

// Extent returns the object's footprint.
func (o *Object) Extent() Extent {
	return o.Kind.Extent()
}

// Shift translates the object by magnitude along direction and wraps it
// horizontally into the course band.
func (o *Object) Shift(direction, magnitude float64) {
	o.Position = shiftPoint(o.Position, direction, magnitude)
}

func shiftPoint(p core.Vec2, direction, magnitude float64) core.Vec2 {
	p = p.Add(core.VectorFromAngle(direction).Scale(magnitude))
	for p.X >= CourseRight {
		p.X -= courseWidth
	}
	for p.X < CourseLeft {
		p.X += courseWidth
	}
	return p
}

// ApplyMotion runs the object's autonomous movement for one tick.
func (o *Object) ApplyMotion() {
	switch o.Motion.Kind {
	case MotionAscend:
		o.Position.Y -= o.Motion.Speed
	case MotionDescend:
		o.Position.Y += o.Motion.Speed
	}
}

// Hitbox is a thin strip along the object's base, full width: skis only
// touch the bottom of a tree or bump.
func (o *Object) Hitbox() core.RectF {
	e := o.Extent()
	base := o.Position.Y + e.H
	return core.NewRectF(o.Position.X, base-hitboxHeight, e.W, hitboxHeight)
}

// LineMarker is a decorative segment such as a lift cable. It scrolls with
// the world but never collides and is never evicted.
type LineMarker struct {
	From, To core.Vec2
	Width    float64
	Color    core.Color
}

// Shift translates both ends of the line.
func (l *LineMarker) Shift(direction, magnitude float64) {
	l.From = shiftPoint(l.From, direction, magnitude)
	l.To = shiftPoint(l.To, direction, magnitude)
}
