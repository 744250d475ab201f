package skifree

import (
	"testing"
)

func simIn(s State, objs ...*Object) *Sim {
	w := &World{}
	w.Add(objs...)
	return newSim(w, playerIn(s))
}

// airborne puts the sim's skier off a ramp and returns after the first tick.
func airborne(t *testing.T) *Sim {
	t.Helper()
	s := simIn(steady(StateDownward), underSkis(KindRamp, BehaviorLargeJump))
	events := s.Tick()
	if len(events) != 1 || events[0].Kind != EventCollision {
		t.Fatalf("Tick() events = %+v, expected one collision", events)
	}
	if want := (State{Kind: StateJump, Frames: JumpFramesLarge - 1}); s.Player().State() != want {
		t.Fatalf("state = %v, expected %v", s.Player().State(), want)
	}
	return s
}

func TestTickCollisionBeforeScroll(t *testing.T) {
	s := simIn(steady(StateDownward), underSkis(KindTree1, BehaviorFall))

	events := s.Tick()

	if len(events) != 1 || events[0].Hit.Kind != KindTree1 {
		t.Fatalf("Tick() events = %+v, expected a tree collision", events)
	}
	// The fall takes effect before the world moves, so nothing scrolls.
	if s.World().YDistance() != 0 {
		t.Errorf("YDistance() = %v, expected 0 after crashing", s.World().YDistance())
	}
	if want := (State{Kind: StateFallen, Frames: FallenFrames - 1}); s.Player().State() != want {
		t.Errorf("state = %v, expected %v", s.Player().State(), want)
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", s.Ticks())
	}
}

func TestTickScrollsWhileMoving(t *testing.T) {
	s := simIn(steady(StateDownward))
	for i := 0; i < 32; i++ {
		if ev := s.Tick(); len(ev) != 0 {
			t.Fatalf("Tick() on an empty slope = %+v", ev)
		}
	}
	if s.DistanceMetres() != 2 {
		t.Errorf("DistanceMetres() = %d, expected 2", s.DistanceMetres())
	}
	if s.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", s.Score())
	}
}

func TestTrickLandsForStylePoints(t *testing.T) {
	s := airborne(t)

	if !s.AttemptTrick(Trick1) {
		t.Fatal("AttemptTrick(Trick1) should start")
	}

	var landed []Event
	for i := 0; i < JumpFramesLarge-1; i++ {
		for _, ev := range s.Tick() {
			if ev.Kind == EventTrickLanded || ev.Kind == EventTrickFailed {
				landed = append(landed, ev)
			}
		}
	}

	if len(landed) != 1 || landed[0].Kind != EventTrickLanded || landed[0].Trick != Trick1 {
		t.Fatalf("trick events = %+v, expected Trick1 to land once", landed)
	}
	if s.Style() != PointsTrick1 {
		t.Errorf("Style() = %d, expected %d", s.Style(), PointsTrick1)
	}
	if s.Player().State().Kind != StateDownward {
		t.Errorf("state = %v, expected Downward", s.Player().State())
	}
	if s.Score() != s.DistanceMetres()+PointsTrick1 {
		t.Errorf("Score() = %d, expected distance %d plus style", s.Score(), s.DistanceMetres())
	}
}

func TestFailedTrickScoresNothing(t *testing.T) {
	s := airborne(t)
	s.AttemptTrick(Trick2)
	if s.Player().State().Success {
		t.Fatal("Trick2 with 39 airborne frames should be doomed")
	}

	var failed bool
	for i := 0; i < JumpFramesLarge-1; i++ {
		for _, ev := range s.Tick() {
			if ev.Kind == EventTrickFailed {
				failed = true
			}
		}
	}

	if !failed {
		t.Error("expected a failed trick event")
	}
	if s.Style() != 0 {
		t.Errorf("Style() = %d, expected 0", s.Style())
	}
	if s.Player().State().Kind != StateFallen {
		t.Errorf("state = %v, expected Fallen", s.Player().State())
	}
}

func TestFlipLandsAfterAllPhases(t *testing.T) {
	s := airborne(t)
	s.AttemptTrick(Flip)

	for i := 0; i < JumpFramesLarge-1; i++ {
		s.Tick()
	}

	if s.Style() != PointsFlip {
		t.Errorf("Style() = %d, expected %d", s.Style(), PointsFlip)
	}
	if s.Player().State().Kind != StateDownward {
		t.Errorf("state = %v, expected Downward", s.Player().State())
	}
}

func TestFlyoverWhileAirborne(t *testing.T) {
	s := airborne(t)
	s.World().Add(underSkis(KindRock, BehaviorFall))
	before := s.Player().State()

	events := s.Tick()

	if len(events) != 1 || events[0].Kind != EventFlyover || events[0].Points != PointsAirborne {
		t.Fatalf("Tick() events = %+v, expected one flyover", events)
	}
	if s.Style() != PointsAirborne {
		t.Errorf("Style() = %d, expected %d", s.Style(), PointsAirborne)
	}
	if got := s.Player().State(); got.Kind != StateJump || got.Frames != before.Frames-1 {
		t.Errorf("state = %v, expected the jump to continue from %v", got, before)
	}
	if _, ok := s.World().CheckCollision(s.Player().Hitbox()); ok {
		t.Error("the rock should be consumed by the flyover")
	}
}

func TestHarmlessObjectsNeverCollide(t *testing.T) {
	s := simIn(steady(StateDownward), underSkis(KindMushroom, BehaviorNone))
	if ev := s.Tick(); len(ev) != 0 {
		t.Errorf("Tick() events = %+v, expected none", ev)
	}
}

func TestNewSimStartsStopped(t *testing.T) {
	s := NewSim(42)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 before the skier sets off", s.Score())
	}
	if s.Player().State().Kind != StateRightStop {
		t.Errorf("state = %v, expected RightStop", s.Player().State())
	}
}
