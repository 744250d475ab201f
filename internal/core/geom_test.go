package core

import (
	"math"
	"testing"
)

const angleEpsilon = 1e-9

// angleDiff returns the shortest distance between two angles.
func angleDiff(a, b float64) float64 {
	d := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	return math.Min(d, 2*math.Pi-d)
}

func TestVectorFromAngleConvention(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vec2
	}{
		{"up", 0, Vec2{0, -1}},
		{"right", math.Pi / 2, Vec2{1, 0}},
		{"down", math.Pi, Vec2{0, 1}},
		{"left", 3 * math.Pi / 2, Vec2{-1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := VectorFromAngle(tc.angle)
			if math.Abs(got.X-tc.want.X) > angleEpsilon || math.Abs(got.Y-tc.want.Y) > angleEpsilon {
				t.Errorf("VectorFromAngle(%v) = %v, expected %v", tc.angle, got, tc.want)
			}
		})
	}
}

func TestAngleRoundTrip(t *testing.T) {
	angles := []float64{
		0, 0.1, math.Pi / 6, math.Pi / 4, math.Pi / 2, 5 * math.Pi / 6, math.Pi,
		7 * math.Pi / 6, 3 * math.Pi / 2, 2*math.Pi - 0.001,
		-math.Pi / 3, -7, 13.5, 100 * math.Pi, -1e-12,
	}

	for _, a := range angles {
		got := AngleFromVector(VectorFromAngle(a))
		if angleDiff(got, a) > angleEpsilon {
			t.Errorf("AngleFromVector(VectorFromAngle(%v)) = %v, expected %v (mod 2Pi)", a, got, NormalizeAngle(a))
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("AngleFromVector result %v outside [0, 2Pi)", got)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}

	for _, tc := range tests {
		got := NormalizeAngle(tc.in)
		if math.Abs(got-tc.want) > angleEpsilon {
			t.Errorf("NormalizeAngle(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", NewRectF(0, 0, 10, 10), NewRectF(5, 5, 10, 10), true},
		{"separate horizontal", NewRectF(0, 0, 10, 10), NewRectF(15, 0, 10, 10), false},
		{"separate vertical", NewRectF(0, 0, 10, 10), NewRectF(0, 15, 10, 10), false},
		{"touching edge", NewRectF(0, 0, 10, 5), NewRectF(0, 5, 10, 5), false},
		{"contained", NewRectF(0, 0, 20, 20), NewRectF(5, 5, 2.5, 2.5), true},
		{"fractional overlap", NewRectF(0, 0, 10, 5), NewRectF(9.5, 4.5, 3, 3), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFInflateContains(t *testing.T) {
	r := NewRectF(0, 0, 480, 640).Inflate(100)

	if r.X != -100 || r.Y != -100 || r.W != 680 || r.H != 840 {
		t.Errorf("Inflate(100) = %+v, expected {-100 -100 680 840}", r)
	}
	if !r.Contains(Vec2{-100, 739}) {
		t.Error("Contains should include the inflated top-left region")
	}
	if r.Contains(Vec2{580, 0}) {
		t.Error("Contains should exclude the right edge")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
