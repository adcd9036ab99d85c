package scene

import (
	"math"
	"testing"
)

func TestCircleAnchorOnBoundary(t *testing.T) {
	a := mustCircle(t, 100, 100, 30)
	b := mustCircle(t, 200, 100, 30)
	conn := &Connection{Source: 1, Target: 2}

	from, to := conn.Anchors(a, b)

	// The source anchor sits on the circle boundary toward the target.
	if math.Abs(from.X-130) > 1e-9 || math.Abs(from.Y-100) > 1e-9 {
		t.Errorf("source anchor = %v, want (130, 100)", from)
	}
	if math.Abs(to.X-170) > 1e-9 || math.Abs(to.Y-100) > 1e-9 {
		t.Errorf("target anchor = %v, want (170, 100)", to)
	}
}

func TestRectangleAnchorOnEdge(t *testing.T) {
	r := mustRectangle(t, 0, 0, 60, 40)

	// The boundary point toward a target directly right is on the right
	// edge at the same height.
	p := BoundaryToward(r, 100, 0)
	if math.Abs(p.X-30) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("boundary point = %v, want (30, 0)", p)
	}
}

func TestAnchorCoincidentCenters(t *testing.T) {
	a := mustCircle(t, 50, 50, 30)
	p := BoundaryToward(a, 50, 50)
	if p.X != 50 || p.Y != 50 {
		t.Errorf("coincident centers should fall back to center, got %v", p)
	}
}

func TestAnchorsTrackEndpointMovement(t *testing.T) {
	a := mustCircle(t, 100, 100, 30)
	b := mustCircle(t, 200, 100, 30)
	conn := &Connection{Source: 1, Target: 2}

	before, _ := conn.Anchors(a, b)
	a.SetPos(100, 200)
	after, _ := conn.Anchors(a, b)

	// Anchors are derived live, never cached.
	if before.X == after.X && before.Y == after.Y {
		t.Error("anchor did not move with its endpoint")
	}
}

func TestConnectionNear(t *testing.T) {
	a := mustCircle(t, 0, 100, 10)
	b := mustCircle(t, 200, 100, 10)
	conn := &Connection{Source: 1, Target: 2}

	if !conn.Near(100, 103, a, b, 5) {
		t.Error("point 3 units off the line should be near at threshold 5")
	}
	if conn.Near(100, 110, a, b, 5) {
		t.Error("point 10 units off the line should not be near at threshold 5")
	}
}
