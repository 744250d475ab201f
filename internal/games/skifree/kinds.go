package skifree

// Kind identifies what a terrain object is. The renderer owns how each kind
// looks; the simulation only needs its footprint.
type Kind int

const (
	KindTree1 Kind = iota
	KindTree2
	KindTree3
	KindTree4
	KindBigTree
	KindXTree1
	KindXTree2
	KindXTree3
	KindStump
	KindRock
	KindMushroom
	KindMogul
	KindBumpL
	KindBumpS
	KindRamp
	KindLiftTower
	KindChairUp
	KindChairDown
	KindSignSlalom
	KindSignFreestyle
	KindSignTreeSlalom
	kindCount
)

// Extent is an object's width and height in world units.
type Extent struct {
	W, H float64
}

var extents = [kindCount]Extent{
	KindTree1:          {28, 32},
	KindTree2:          {30, 34},
	KindTree3:          {32, 36},
	KindTree4:          {26, 30},
	KindBigTree:        {32, 64},
	KindXTree1:         {22, 27},
	KindXTree2:         {24, 29},
	KindXTree3:         {20, 26},
	KindStump:          {16, 11},
	KindRock:           {23, 11},
	KindMushroom:       {16, 16},
	KindMogul:          {24, 8},
	KindBumpL:          {32, 8},
	KindBumpS:          {16, 6},
	KindRamp:           {32, 10},
	KindLiftTower:      {24, 64},
	KindChairUp:        {14, 26},
	KindChairDown:      {14, 28},
	KindSignSlalom:     {40, 30},
	KindSignFreestyle:  {40, 30},
	KindSignTreeSlalom: {40, 30},
}

var kindNames = [kindCount]string{
	KindTree1:          "tree1",
	KindTree2:          "tree2",
	KindTree3:          "tree3",
	KindTree4:          "tree4",
	KindBigTree:        "bigtree",
	KindXTree1:         "xtree1",
	KindXTree2:         "xtree2",
	KindXTree3:         "xtree3",
	KindStump:          "stump",
	KindRock:           "rock",
	KindMushroom:       "mushroom",
	KindMogul:          "mogul",
	KindBumpL:          "bump_l",
	KindBumpS:          "bump_s",
	KindRamp:           "ramp",
	KindLiftTower:      "lift",
	KindChairUp:        "lifters",
	KindChairDown:      "chairlift",
	KindSignSlalom:     "slalom",
	KindSignFreestyle:  "freestyle",
	KindSignTreeSlalom: "tree_slalom",
}

// Extent returns the footprint for this kind.
func (k Kind) Extent() Extent {
	if k < 0 || k >= kindCount {
		return Extent{}
	}
	return extents[k]
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}
