package skifree

import (
	"math/rand"

	"github.com/vovakirdan/tui-skifree/internal/core"
)

// EvictionY is the scroll threshold above the view. Objects whose y drops
// below it are behind the skier for good.
const EvictionY = -50

// World owns every terrain object and line marker and the RNG used to lay
// out the course.
type World struct {
	objects   []*Object
	lines     []*LineMarker
	rng       *rand.Rand
	yDistance float64
}

// NewWorld builds the starting area, the ski lift and the three course
// bands from seed.
func NewWorld(seed int64) *World {
	w := &World{
		rng:   rand.New(rand.NewSource(seed)),
		lines: liftCables(),
	}

	w.objects = append(w.objects, startingObjects()...)
	for _, band := range Bands {
		w.objects = append(w.objects, GenerateBand(w.rng, band)...)
	}
	w.objects = append(w.objects, skiLift()...)
	return w
}

// Add appends objects to the world.
func (w *World) Add(objs ...*Object) {
	w.objects = append(w.objects, objs...)
}

// Len is the number of live objects.
func (w *World) Len() int {
	return len(w.objects)
}

// Objects returns copies of the live objects in iteration order.
func (w *World) Objects() []Object {
	out := make([]Object, len(w.objects))
	for i, o := range w.objects {
		out[i] = *o
	}
	return out
}

// Lines returns copies of the line markers.
func (w *World) Lines() []LineMarker {
	out := make([]LineMarker, len(w.lines))
	for i, l := range w.lines {
		out[i] = *l
	}
	return out
}

// YDistance is the accumulated downhill distance.
func (w *World) YDistance() float64 {
	return w.yDistance
}

// Hit is the result of a collision query.
type Hit struct {
	Kind     Kind
	Behavior Behavior
}

// CheckCollision finds the first armed object, in iteration order, whose
// hitbox overlaps hitbox. The hit is consumed: the object is disarmed so it
// cannot trigger again.
func (w *World) CheckCollision(hitbox core.RectF) (Hit, bool) {
	for _, o := range w.objects {
		b, ok := o.Collision.Get()
		if !ok {
			continue
		}
		if o.Hitbox().Intersects(hitbox) {
			o.Collision.Armed = false
			return Hit{Kind: o.Kind, Behavior: b}, true
		}
	}
	return Hit{}, false
}

// Movement is the skier's derived motion for one tick.
type Movement struct {
	Heading  float64
	Opposite float64
	Speed    float64
	Moving   bool
}

// MovementOf derives the scroll parameters from the player.
func MovementOf(p *Player) Movement {
	heading, ok := p.Heading()
	if !ok {
		return Movement{}
	}
	opposite, _ := p.OppositeHeading()
	return Movement{Heading: heading, Opposite: opposite, Speed: p.Speed(), Moving: true}
}

// Update scrolls everything opposite to the skier's heading, applies each
// object's own motion and drops objects that have left the top of the view.
func (w *World) Update(m Movement) {
	kept := w.objects[:0]
	for _, o := range w.objects {
		if m.Moving {
			o.Shift(m.Opposite, m.Speed)
		}
		o.ApplyMotion()
		if o.Position.Y < EvictionY {
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(w.objects); i++ {
		w.objects[i] = nil
	}
	w.objects = kept

	if !m.Moving {
		return
	}
	for _, l := range w.lines {
		l.Shift(m.Opposite, m.Speed)
	}
	w.yDistance += core.VectorFromAngle(m.Heading).Y
}

// Visible returns the objects inside view padded by the culling margin,
// in iteration order. It does not modify the world.
func (w *World) Visible(view core.RectF) []Object {
	area := view.Inflate(cullingMargin)
	visible := make([]Object, 0, 64)
	for _, o := range w.objects {
		if area.Contains(o.Position) {
			visible = append(visible, *o)
		}
	}
	return visible
}
