package skifree

// Style points.
const (
	PointsTrick1   = 100
	PointsTrick2   = 250
	PointsFlip     = 500
	PointsAirborne = 10
)

// unitsPerMetre converts world distance to the HUD's metres.
const unitsPerMetre = 16

// Event is something notable that happened during a tick.
type Event struct {
	Kind     EventKind
	Hit      Hit
	Trick    TrickKind
	Success  bool
	Points   int
	NewState State
}

// EventKind classifies tick events.
type EventKind int

const (
	EventCollision EventKind = iota // Skier reacted to an obstacle
	EventFlyover                    // Obstacle touched while airborne
	EventTrickLanded
	EventTrickFailed
)

// Sim is one run: a world, a skier and the run's score. It is driven one
// tick at a time and is not safe for concurrent use.
type Sim struct {
	world  *World
	player *Player
	ticks  int
	style  int

	// trick in progress, resolved when the skier leaves the trick state
	pending    bool
	pendingFor TrickKind
}

// NewSim starts a run on a freshly generated course.
func NewSim(seed int64) *Sim {
	return newSim(NewWorld(seed), NewPlayer())
}

func newSim(w *World, p *Player) *Sim {
	return &Sim{world: w, player: p}
}

// World returns the run's world.
func (s *Sim) World() *World {
	return s.world
}

// Player returns the run's skier.
func (s *Sim) Player() *Player {
	return s.player
}

// AttemptTrick forwards a trick command to the skier.
func (s *Sim) AttemptTrick(t TrickKind) bool {
	if !s.player.AttemptTrick(t) {
		return false
	}
	s.pending = true
	s.pendingFor = t
	return true
}

// Tick advances the run by one step: collision, world scroll, then the
// skier's own timers. It returns the events that occurred, if any.
func (s *Sim) Tick() []Event {
	var events []Event

	if hit, ok := s.world.CheckCollision(s.player.Hitbox()); ok {
		switch {
		case s.player.ReactToCollision(hit.Behavior):
			events = append(events, Event{Kind: EventCollision, Hit: hit, NewState: s.player.State()})
		case s.player.IsAirborne():
			s.style += PointsAirborne
			events = append(events, Event{Kind: EventFlyover, Hit: hit, Points: PointsAirborne})
		}
	}

	s.world.Update(MovementOf(s.player))
	s.player.AdvanceTick()
	s.ticks++

	if s.pending && s.player.State().Kind != s.pendingFor.stateKind() {
		s.pending = false
		events = append(events, s.resolveTrick())
	}
	return events
}

func (s *Sim) resolveTrick() Event {
	if s.player.State().Kind == StateFallen {
		return Event{Kind: EventTrickFailed, Trick: s.pendingFor, NewState: s.player.State()}
	}
	points := trickPoints(s.pendingFor)
	s.style += points
	return Event{Kind: EventTrickLanded, Trick: s.pendingFor, Success: true, Points: points, NewState: s.player.State()}
}

func trickPoints(t TrickKind) int {
	switch t {
	case Trick1:
		return PointsTrick1
	case Trick2:
		return PointsTrick2
	default:
		return PointsFlip
	}
}

// Ticks is the number of ticks simulated.
func (s *Sim) Ticks() int {
	return s.ticks
}

// Style is the accumulated style points.
func (s *Sim) Style() int {
	return s.style
}

// DistanceMetres is the downhill distance shown on the HUD.
func (s *Sim) DistanceMetres() int {
	return int(s.world.YDistance() / unitsPerMetre)
}

// Score is distance plus style points, never negative.
func (s *Sim) Score() int {
	return max(0, s.DistanceMetres()+s.style)
}
