package skifree

import (
	"math/rand"

	"github.com/vovakirdan/tui-skifree/internal/core"
)

// Course layout, in world units.
const (
	MapHeight     = 20_000
	CourseYStart  = 300
	BandWidth     = courseWidth / 3
	cellSpacingX  = 40
	cellSpacingY  = 100
	liftX         = 100.0
	liftYStart    = 100
	liftSpacing   = 400
	chairSpeed    = 0.2
	cableSpacing  = 25.0
	signSpacing   = 10.0
	signRowY      = 150.0
	signRowStartX = 250.0
)

// Placement is one entry of a band's weighted object table.
type Placement struct {
	Kind     Kind
	Behavior Behavior
	Weight   int
}

// Band describes one of the parallel course sections.
type Band struct {
	Name    string
	XStart  int
	XEnd    int
	Density float64
	Table   []Placement
}

// Slalom is sparse: mostly small jumps, the odd rock or tree.
var Slalom = Band{
	Name:    "slalom",
	XStart:  CourseLeft,
	XEnd:    CourseLeft + BandWidth,
	Density: 0.33,
	Table: []Placement{
		{KindBumpL, BehaviorSmallJump, 1},
		{KindBumpS, BehaviorSmallJump, 1},
		{KindMogul, BehaviorSmallJump, 1},
		{KindRock, BehaviorFall, 1},
		{KindTree1, BehaviorFall, 1},
	},
}

// Freestyle has bumps and the large-jump ramps needed for long tricks.
var Freestyle = Band{
	Name:    "freestyle",
	XStart:  CourseLeft + BandWidth,
	XEnd:    CourseLeft + 2*BandWidth,
	Density: 0.30,
	Table: []Placement{
		{KindBumpL, BehaviorSmallJump, 3},
		{KindBumpS, BehaviorSmallJump, 3},
		{KindRamp, BehaviorLargeJump, 3},
		{KindRock, BehaviorFall, 1},
		{KindTree1, BehaviorFall, 1},
		{KindStump, BehaviorFall, 1},
		{KindXTree1, BehaviorFall, 1},
		{KindXTree2, BehaviorFall, 1},
	},
}

// TreeSlalom is dense forest; only mushrooms are harmless.
var TreeSlalom = Band{
	Name:    "tree_slalom",
	XStart:  CourseLeft + 2*BandWidth,
	XEnd:    CourseRight,
	Density: 0.30,
	Table: []Placement{
		{KindBigTree, BehaviorFall, 5},
		{KindTree1, BehaviorFall, 1},
		{KindTree2, BehaviorFall, 1},
		{KindTree3, BehaviorFall, 1},
		{KindTree4, BehaviorFall, 1},
		{KindXTree1, BehaviorFall, 1},
		{KindXTree2, BehaviorFall, 1},
		{KindXTree3, BehaviorFall, 1},
		{KindStump, BehaviorFall, 1},
		{KindMushroom, BehaviorNone, 1},
		{KindRock, BehaviorFall, 1},
	},
}

// Bands lists the course sections from left to right.
var Bands = []Band{Slalom, Freestyle, TreeSlalom}

// GenerateBand places objects over the band's grid. Each cell gets one
// Bernoulli trial at the band density and, on success, a weighted pick from
// the band table. Objects may overlap.
func GenerateBand(rng *rand.Rand, band Band) []*Object {
	total := 0
	for _, p := range band.Table {
		total += p.Weight
	}

	var objects []*Object
	if total <= 0 {
		return objects
	}

	for y := CourseYStart; y < MapHeight; y += cellSpacingY {
		for x := band.XStart; x < band.XEnd; x += cellSpacingX {
			if rng.Float64() >= band.Density {
				continue
			}
			p := pickWeighted(rng, band.Table, total)
			pos := core.Vec2{X: float64(x), Y: float64(y)}
			objects = append(objects, NewStatic(pos, p.Behavior, p.Kind))
		}
	}
	return objects
}

func pickWeighted(rng *rand.Rand, table []Placement, total int) Placement {
	n := rng.Intn(total)
	for _, p := range table {
		if n < p.Weight {
			return p
		}
		n -= p.Weight
	}
	return table[len(table)-1]
}

// startingObjects is the tree line and band signs around the start.
func startingObjects() []*Object {
	slalomX := signRowStartX
	freestyleX := slalomX + signSpacing + KindSignSlalom.Extent().W
	treeSlalomX := freestyleX + signSpacing + KindSignFreestyle.Extent().W

	placed := []struct {
		x, y float64
		kind Kind
	}{
		{250, 110, KindBigTree},
		{410, 110, KindBigTree},
		{290, 110, KindBigTree},
		{330, 110, KindBigTree},
		{370, 110, KindBigTree},
		{270, 120, KindBigTree},
		{310, 120, KindBigTree},
		{350, 120, KindBigTree},
		{390, 120, KindBigTree},
		{230, 150, KindXTree1},
		{410, 150, KindXTree1},
		{slalomX, signRowY, KindSignSlalom},
		{freestyleX, signRowY, KindSignFreestyle},
		{treeSlalomX, signRowY, KindSignTreeSlalom},
	}

	objects := make([]*Object, 0, len(placed))
	for _, p := range placed {
		objects = append(objects, NewStatic(core.Vec2{X: p.x, Y: p.y}, BehaviorFall, p.kind))
	}
	return objects
}

// skiLift builds towers at a fixed interval with a descending empty chair
// and an ascending loaded chair per span.
func skiLift() []*Object {
	var objects []*Object
	for y := liftYStart; y < MapHeight; y += liftSpacing {
		fy := float64(y)
		objects = append(objects,
			NewMobile(core.Vec2{X: liftX - 18, Y: fy + 100}, BehaviorNone, KindChairDown, Descend(chairSpeed)),
			NewMobile(core.Vec2{X: liftX + 18, Y: fy + liftSpacing}, BehaviorNone, KindChairUp, Ascend(chairSpeed)),
			NewStatic(core.Vec2{X: liftX, Y: fy}, BehaviorFall, KindLiftTower),
		)
	}
	return objects
}

// liftCables are the two cable lines running the length of the lift.
func liftCables() []*LineMarker {
	cable := func(x float64) *LineMarker {
		return &LineMarker{
			From:  core.Vec2{X: x, Y: 0},
			To:    core.Vec2{X: x, Y: MapHeight},
			Width: 1,
			Color: core.ColorGray,
		}
	}
	return []*LineMarker{cable(liftX), cable(liftX + cableSpacing)}
}
