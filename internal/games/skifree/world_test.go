package skifree

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-skifree/internal/core"
)

// underSkis places an object of kind so its hitbox overlaps the skier's.
func underSkis(kind Kind, b Behavior) *Object {
	e := kind.Extent()
	hb := NewPlayer().Hitbox()
	return NewStatic(core.Vec2{X: hb.X, Y: hb.Bottom() - e.H}, b, kind)
}

func downhill() Movement {
	return MovementOf(playerIn(steady(StateDownward)))
}

func TestCollisionConsumesObject(t *testing.T) {
	w := &World{}
	w.Add(underSkis(KindRock, BehaviorFall))
	hitbox := NewPlayer().Hitbox()

	hit, ok := w.CheckCollision(hitbox)
	if !ok {
		t.Fatal("CheckCollision() found nothing, expected the rock")
	}
	if hit.Kind != KindRock || hit.Behavior != BehaviorFall {
		t.Errorf("CheckCollision() = %+v, expected rock/Fall", hit)
	}

	if _, ok := w.CheckCollision(hitbox); ok {
		t.Error("a consumed object must not collide again")
	}
	if w.Objects()[0].Collision.Armed {
		t.Error("consumed object should stay in the world disarmed")
	}
}

func TestCollisionFirstInIterationOrder(t *testing.T) {
	w := &World{}
	w.Add(underSkis(KindBumpS, BehaviorSmallJump), underSkis(KindRock, BehaviorFall))
	hitbox := NewPlayer().Hitbox()

	first, _ := w.CheckCollision(hitbox)
	second, ok := w.CheckCollision(hitbox)
	if first.Kind != KindBumpS {
		t.Errorf("first hit = %v, expected the bump", first.Kind)
	}
	if !ok || second.Kind != KindRock {
		t.Errorf("second hit = %v, %v, expected the rock", second.Kind, ok)
	}
}

func TestCollisionIgnoresHarmlessAndDistant(t *testing.T) {
	w := &World{}
	w.Add(
		underSkis(KindMushroom, BehaviorNone),
		NewStatic(core.Vec2{X: 0, Y: 0}, BehaviorFall, KindTree1),
	)

	if hit, ok := w.CheckCollision(NewPlayer().Hitbox()); ok {
		t.Errorf("CheckCollision() = %+v, expected no hit", hit)
	}
}

func TestCollisionUsesBaseStrip(t *testing.T) {
	// The top of a tree overlapping the skis does not count.
	hb := NewPlayer().Hitbox()
	w := &World{}
	w.Add(NewStatic(core.Vec2{X: hb.X, Y: hb.Y - 2}, BehaviorFall, KindBigTree))

	if _, ok := w.CheckCollision(hb); ok {
		t.Error("only the bottom strip of an object should collide")
	}
}

func TestUpdateScrollsOpposite(t *testing.T) {
	w := &World{lines: liftCables()}
	w.Add(NewStatic(core.Vec2{X: 100, Y: 500}, BehaviorFall, KindRock))

	w.Update(downhill())

	got := w.Objects()[0].Position
	if math.Abs(got.X-100) > 1e-9 || math.Abs(got.Y-497) > 1e-9 {
		t.Errorf("position after one downhill tick = %+v, expected (100, 497)", got)
	}
	if l := w.Lines()[0]; math.Abs(l.From.Y+3) > 1e-9 || math.Abs(l.To.Y-(MapHeight-3)) > 1e-9 {
		t.Errorf("cable = %+v, expected it to scroll with the world", l)
	}
	if w.YDistance() != 1 {
		t.Errorf("YDistance() = %v, expected 1", w.YDistance())
	}
}

func TestUpdateStationaryOnlyAppliesMotion(t *testing.T) {
	w := &World{lines: liftCables()}
	w.Add(
		NewStatic(core.Vec2{X: 100, Y: 500}, BehaviorFall, KindRock),
		NewMobile(core.Vec2{X: 82, Y: 500}, BehaviorNone, KindChairDown, Descend(0.2)),
		NewMobile(core.Vec2{X: 118, Y: 500}, BehaviorNone, KindChairUp, Ascend(0.2)),
	)

	w.Update(MovementOf(NewPlayer()))

	objs := w.Objects()
	if objs[0].Position.Y != 500 {
		t.Errorf("static object moved to %v", objs[0].Position)
	}
	if math.Abs(objs[1].Position.Y-500.2) > 1e-9 {
		t.Errorf("descending chair at y = %v, expected 500.2", objs[1].Position.Y)
	}
	if math.Abs(objs[2].Position.Y-499.8) > 1e-9 {
		t.Errorf("ascending chair at y = %v, expected 499.8", objs[2].Position.Y)
	}
	if w.YDistance() != 0 {
		t.Errorf("YDistance() = %v, expected 0 while stopped", w.YDistance())
	}
	if w.Lines()[0].From.Y != 0 {
		t.Error("cables should not move while the skier is stopped")
	}
}

func TestUpdateEvictsAfterMoving(t *testing.T) {
	// After one downhill tick these sit at -51, -49 and -50.1.
	w := &World{}
	w.Add(
		NewStatic(core.Vec2{X: 0, Y: -48}, BehaviorFall, KindRock),
		NewStatic(core.Vec2{X: 0, Y: -46}, BehaviorFall, KindRock),
		NewMobile(core.Vec2{X: 0, Y: -46.9}, BehaviorNone, KindChairUp, Ascend(0.2)),
	)

	w.Update(downhill())

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", w.Len())
	}
	if y := w.Objects()[0].Position.Y; math.Abs(y+49) > 1e-9 {
		t.Errorf("kept object at y = %v, expected -49", y)
	}
}

func TestUpdateWrapsHorizontally(t *testing.T) {
	w := &World{}
	w.Add(
		NewStatic(core.Vec2{X: CourseRight - 0.5, Y: 500}, BehaviorFall, KindRock),
		NewStatic(core.Vec2{X: CourseLeft + 0.5, Y: 600}, BehaviorFall, KindRock),
	)

	// Walking left scrolls the world right.
	w.Update(MovementOf(playerIn(steady(StateLeftMove))))
	objs := w.Objects()
	if math.Abs(objs[0].Position.X-(CourseLeft+0.5)) > 1e-9 {
		t.Errorf("x = %v, expected wrap to %v", objs[0].Position.X, CourseLeft+0.5)
	}

	w.Update(MovementOf(playerIn(steady(StateRightMove))))
	w.Update(MovementOf(playerIn(steady(StateRightMove))))
	objs = w.Objects()
	if math.Abs(objs[1].Position.X-(CourseRight-0.5)) > 1e-9 {
		t.Errorf("x = %v, expected wrap to %v", objs[1].Position.X, CourseRight-0.5)
	}
	for _, o := range objs {
		if o.Position.X < CourseLeft || o.Position.X >= CourseRight {
			t.Errorf("x = %v outside [%d, %d)", o.Position.X, CourseLeft, CourseRight)
		}
	}
}

func TestYDistanceFollowsHeading(t *testing.T) {
	tests := []struct {
		kind StateKind
		want float64
	}{
		{StateDownward, 10},
		{StateLeft30, 10 * math.Cos(math.Pi/6)},
		{StateRight45, 10 * math.Cos(math.Pi/4)},
		{StateLeftMove, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w := &World{}
			m := MovementOf(playerIn(steady(tc.kind)))
			for i := 0; i < 10; i++ {
				w.Update(m)
			}
			if math.Abs(w.YDistance()-tc.want) > 1e-9 {
				t.Errorf("YDistance() = %v, expected %v", w.YDistance(), tc.want)
			}
		})
	}
}

// classicView is the 480x640 window at the world origin.
var classicView = core.NewRectF(0, 0, 480, 640)

func TestVisibleIsReadOnly(t *testing.T) {
	w := &World{}
	w.Add(
		NewStatic(core.Vec2{X: 240, Y: 320}, BehaviorFall, KindRock),
		NewStatic(core.Vec2{X: -99, Y: 700}, BehaviorFall, KindRock),
		NewStatic(core.Vec2{X: 600, Y: 320}, BehaviorFall, KindRock),
		NewStatic(core.Vec2{X: 240, Y: 740}, BehaviorFall, KindRock),
	)

	visible := w.Visible(classicView)
	if len(visible) != 2 {
		t.Fatalf("Visible() returned %d objects, expected 2", len(visible))
	}
	visible[0].Collision.Armed = false
	visible[0].Position.X = 0
	if o := w.Objects()[0]; !o.Collision.Armed || o.Position.X != 240 {
		t.Error("Visible() must not expose world objects for mutation")
	}
	if w.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", w.Len())
	}
}

func TestVisibleUsesView(t *testing.T) {
	w := &World{}
	w.Add(NewStatic(core.Vec2{X: 1000, Y: 320}, BehaviorFall, KindRock))

	if n := len(w.Visible(classicView)); n != 0 {
		t.Errorf("Visible(classic) returned %d objects, expected 0", n)
	}
	wide := core.NewRectF(-560, 0, 1600, 960)
	if n := len(w.Visible(wide)); n != 1 {
		t.Errorf("Visible(wide) returned %d objects, expected 1", n)
	}
}

func TestNewWorldLayout(t *testing.T) {
	w := NewWorld(1)

	towers, chairsUp, chairsDown := 0, 0, 0
	for _, o := range w.Objects() {
		switch o.Kind {
		case KindLiftTower:
			towers++
			if o.Position.X != liftX || o.Collision.Behavior != BehaviorFall {
				t.Errorf("tower %+v, expected x = %v with Fall", o, liftX)
			}
		case KindChairUp:
			chairsUp++
			if o.Motion.Kind != MotionAscend {
				t.Errorf("loaded chair motion = %v, expected ascend", o.Motion)
			}
		case KindChairDown:
			chairsDown++
			if o.Motion.Kind != MotionDescend {
				t.Errorf("empty chair motion = %v, expected descend", o.Motion)
			}
		}
	}

	wantSpans := (MapHeight-liftYStart-1)/liftSpacing + 1
	if towers != wantSpans || chairsUp != wantSpans || chairsDown != wantSpans {
		t.Errorf("lift = %d towers, %d up, %d down; expected %d of each",
			towers, chairsUp, chairsDown, wantSpans)
	}

	lines := w.Lines()
	if len(lines) != 2 || lines[0].From.X != liftX || lines[1].From.X != liftX+cableSpacing {
		t.Errorf("Lines() = %+v, expected two cables", lines)
	}

	if _, ok := w.CheckCollision(NewPlayer().Hitbox()); ok {
		t.Error("the skier should start clear of every obstacle")
	}
}

func TestNewWorldDeterministic(t *testing.T) {
	a := NewWorld(99).Objects()
	b := NewWorld(99).Objects()

	if len(a) != len(b) {
		t.Fatalf("object counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("object %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
