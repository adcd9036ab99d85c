package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestRotateQuarterTurn(t *testing.T) {
	x, y := Rotate(1, 0, 90)
	if math.Abs(x) > epsilon || math.Abs(y-1) > epsilon {
		t.Errorf("Rotate(1,0,90) = (%v, %v), want (0, 1)", x, y)
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	x, y := Rotate(3.5, -2.25, 0)
	if x != 3.5 || y != -2.25 {
		t.Errorf("Rotate with 0 degrees changed the point: (%v, %v)", x, y)
	}
}

func TestRotateFullTurn(t *testing.T) {
	x, y := Rotate(2, 3, 360)
	if math.Abs(x-2) > 1e-9 || math.Abs(y-3) > 1e-9 {
		t.Errorf("Rotate(2,3,360) = (%v, %v), want (2, 3)", x, y)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, want 5", d)
	}
	if d := DistanceSquared(0, 0, 3, 4); d != 25 {
		t.Errorf("DistanceSquared(0,0,3,4) = %v, want 25", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	// Point above the middle of a horizontal segment.
	if d := DistanceToSegment(5, 3, 0, 0, 10, 0); math.Abs(d-3) > epsilon {
		t.Errorf("distance above segment = %v, want 3", d)
	}
	// Point beyond the end projects onto the endpoint.
	if d := DistanceToSegment(13, 4, 0, 0, 10, 0); math.Abs(d-5) > epsilon {
		t.Errorf("distance past endpoint = %v, want 5", d)
	}
	// Degenerate segment collapses to a point distance.
	if d := DistanceToSegment(3, 4, 0, 0, 0, 0); math.Abs(d-5) > epsilon {
		t.Errorf("distance to degenerate segment = %v, want 5", d)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	if !PointInPolygon(5, 5, square) {
		t.Error("center of square should be inside")
	}
	if PointInPolygon(15, 5, square) {
		t.Error("point right of square should be outside")
	}
	if PointInPolygon(5, -1, square) {
		t.Error("point below square should be outside")
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(0, 0, []Point{{0, 0}, {1, 1}}) {
		t.Error("two-vertex polygon can contain nothing")
	}
}
