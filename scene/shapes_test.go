package scene

import (
	"errors"
	"math"
	"testing"
)

func mustCircle(t *testing.T, x, y, r float64) *Circle {
	t.Helper()
	c, err := NewCircle(x, y, r)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	return c
}

func mustRectangle(t *testing.T, x, y, w, h float64) *Rectangle {
	t.Helper()
	r, err := NewRectangle(x, y, w, h)
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	return r
}

func mustTrapezoid(t *testing.T, x, y float64) *Trapezoid {
	t.Helper()
	tr, err := NewTrapezoid(x, y, 50, 90, 50)
	if err != nil {
		t.Fatalf("NewTrapezoid: %v", err)
	}
	return tr
}

func TestInvalidGeometryRejected(t *testing.T) {
	if _, err := NewCircle(0, 0, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero radius: got %v, want ErrInvalidGeometry", err)
	}
	if _, err := NewRectangle(0, 0, -1, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("negative width: got %v, want ErrInvalidGeometry", err)
	}
	if _, err := NewTrapezoid(0, 0, 10, 0, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero bottom width: got %v, want ErrInvalidGeometry", err)
	}

	c := mustCircle(t, 0, 0, 10)
	if err := c.SetScale(0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("SetScale(0): got %v, want ErrInvalidGeometry", err)
	}
	if err := c.SetScale(-2); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("SetScale(-2): got %v, want ErrInvalidGeometry", err)
	}
	if c.Scale() != 1 {
		t.Errorf("rejected SetScale mutated scale to %v", c.Scale())
	}
}

func TestContainsOwnCenter(t *testing.T) {
	shapes := []Component{
		mustCircle(t, 100, 100, 30),
		mustRectangle(t, 200, 100, 60, 40),
		mustTrapezoid(t, 50, 50),
	}
	for _, s := range shapes {
		x, y := s.Pos()
		if !s.ContainsPoint(x, y) {
			t.Errorf("%s does not contain its own center", s.TypeTag())
		}
		if s.ContainsPoint(x+10000, y+10000) {
			t.Errorf("%s contains a far away point", s.TypeTag())
		}
	}
}

func TestCircleContainment(t *testing.T) {
	c := mustCircle(t, 100, 100, 30)

	if !c.ContainsPoint(129, 100) {
		t.Error("point just inside the radius should be contained")
	}
	if c.ContainsPoint(131, 100) {
		t.Error("point just outside the radius should not be contained")
	}

	// Scale grows the effective radius.
	if err := c.SetScale(2); err != nil {
		t.Fatalf("SetScale: %v", err)
	}
	if !c.ContainsPoint(155, 100) {
		t.Error("scaled circle should contain the point at 55 units out")
	}
	if c.Radius() != 60 {
		t.Errorf("Radius() = %v, want 60", c.Radius())
	}
}

func TestRectangleContainmentRotated(t *testing.T) {
	r := mustRectangle(t, 0, 0, 60, 40)

	if !r.ContainsPoint(29, 19) || r.ContainsPoint(31, 0) {
		t.Error("unrotated containment wrong")
	}

	// After a quarter turn, the long axis points along Y.
	r.SetRotation(90)
	if !r.ContainsPoint(0, 29) {
		t.Error("rotated rectangle should contain (0, 29)")
	}
	if r.ContainsPoint(29, 0) {
		t.Error("rotated rectangle should not contain (29, 0)")
	}
}

func TestVerticesFullTurnUnchanged(t *testing.T) {
	shapes := []Component{
		mustCircle(t, 10, 20, 30),
		mustRectangle(t, -5, 8, 60, 40),
		mustTrapezoid(t, 0, 0),
	}
	for _, s := range shapes {
		before := s.Vertices()
		s.SetRotation(360)
		after := s.Vertices()
		if len(before) != len(after) {
			t.Fatalf("%s vertex count changed after 360 rotation", s.TypeTag())
		}
		for i := range before {
			if math.Abs(before[i].X-after[i].X) > 1e-6 ||
				math.Abs(before[i].Y-after[i].Y) > 1e-6 {
				t.Errorf("%s vertex %d moved after 360 rotation: %v vs %v",
					s.TypeTag(), i, before[i], after[i])
			}
		}
	}
}

func TestVerticesAgreeWithContainment(t *testing.T) {
	// The vertices of a shape must describe the same region ContainsPoint
	// tests: every vertex midpoint toward the center is inside.
	tr := mustTrapezoid(t, 30, 40)
	tr.SetRotation(33)
	cx, cy := tr.Pos()
	for i, v := range tr.Vertices() {
		mx := v.X + (cx-v.X)*0.1
		my := v.Y + (cy-v.Y)*0.1
		if !tr.ContainsPoint(mx, my) {
			t.Errorf("point pulled in from vertex %d should be inside", i)
		}
	}
}

func TestRectangleVerticesTransformOrder(t *testing.T) {
	// Rotation applies before scale and translation: a unit square rotated
	// 90 degrees and scaled by 2 lands its first corner at
	// pos + 2*rotate(local).
	r := mustRectangle(t, 100, 50, 10, 10)
	r.SetRotation(90)
	if err := r.SetScale(2); err != nil {
		t.Fatalf("SetScale: %v", err)
	}

	// Local top-left (-5, -5) → rotated (5, -5) → scaled (10, -10).
	got := r.Vertices()[0]
	if math.Abs(got.X-110) > 1e-9 || math.Abs(got.Y-40) > 1e-9 {
		t.Errorf("first vertex = %v, want (110, 40)", got)
	}
}

func TestCircleResize(t *testing.T) {
	c := mustCircle(t, 0, 0, 30)

	c.ResizeTo(50, 0, 4)
	if math.Abs(c.BaseRadius-50) > 1e-9 {
		t.Errorf("BaseRadius = %v, want 50", c.BaseRadius)
	}

	// Shrinking below the floor clamps.
	c.ResizeTo(1, 0, 4)
	if c.BaseRadius != 4 {
		t.Errorf("BaseRadius = %v, want clamp at 4", c.BaseRadius)
	}
}

func TestRectangleResize(t *testing.T) {
	r := mustRectangle(t, 0, 0, 60, 40)

	r.ResizeTo(40, 25, 4)
	if math.Abs(r.BaseWidth-80) > 1e-9 || math.Abs(r.BaseHeight-50) > 1e-9 {
		t.Errorf("resized to %vx%v, want 80x50", r.BaseWidth, r.BaseHeight)
	}

	// Crossing the center clamps instead of inverting.
	r.ResizeTo(-10, -10, 4)
	if r.BaseWidth != 4 || r.BaseHeight != 4 {
		t.Errorf("resized to %vx%v, want clamp at 4x4", r.BaseWidth, r.BaseHeight)
	}
}

func TestTrapezoidResizeKeepsRatio(t *testing.T) {
	tr := mustTrapezoid(t, 0, 0) // top 50, bottom 90, height 50

	tr.ResizeTo(90, 50, 4) // doubles the bottom half-width and height
	if math.Abs(tr.BaseBottomWidth-180) > 1e-9 {
		t.Errorf("BaseBottomWidth = %v, want 180", tr.BaseBottomWidth)
	}
	wantTop := 180.0 * 50 / 90
	if math.Abs(tr.BaseTopWidth-wantTop) > 1e-9 {
		t.Errorf("BaseTopWidth = %v, want %v", tr.BaseTopWidth, wantTop)
	}
	if math.Abs(tr.BaseHeight-100) > 1e-9 {
		t.Errorf("BaseHeight = %v, want 100", tr.BaseHeight)
	}
}

func TestHandlePointOnBoundary(t *testing.T) {
	c := mustCircle(t, 10, 10, 30)
	h := c.HandlePoint()
	if math.Abs(h.X-40) > 1e-9 || math.Abs(h.Y-10) > 1e-9 {
		t.Errorf("circle handle = %v, want (40, 10)", h)
	}

	r := mustRectangle(t, 0, 0, 60, 40)
	h = r.HandlePoint()
	if h.X != 30 || h.Y != 20 {
		t.Errorf("rectangle handle = %v, want (30, 20)", h)
	}
}
