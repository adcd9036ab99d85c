package scene

import (
	"fmt"
	"math"

	"planar/geometry"
)

// Type tags for the built-in shapes.
const (
	TypeCircle    = "circle"
	TypeRectangle = "rectangle"
	TypeTrapezoid = "trapezoid"
)

// circleSegments is the number of points used to approximate a circle's
// outline as a polygon.
const circleSegments = 32

// Circle is a circular component defined by a base radius; the effective
// radius is the base radius times the scale.
type Circle struct {
	Base
	BaseRadius float64
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, radius float64) (*Circle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: radius %v must be positive", ErrInvalidGeometry, radius)
	}
	return &Circle{Base: NewBase(TypeCircle, x, y), BaseRadius: radius}, nil
}

// Radius returns the scaled radius.
func (c *Circle) Radius() float64 {
	return c.BaseRadius * c.Scale()
}

// ContainsPoint uses the closed-form distance test, which agrees with the
// polygon approximation returned by Vertices.
func (c *Circle) ContainsPoint(x, y float64) bool {
	return geometry.Distance(x, y, c.x, c.y) <= c.Radius()
}

// Vertices approximates the circle with a fixed-resolution polygon ring.
func (c *Circle) Vertices() []Point {
	local := make([]Point, circleSegments)
	for i := 0; i < circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		local[i] = Point{X: c.BaseRadius * math.Cos(angle), Y: c.BaseRadius * math.Sin(angle)}
	}
	return c.worldVertices(local)
}

func (c *Circle) Fields() map[string]any {
	return map[string]any{"base_radius": c.BaseRadius}
}

func (c *Circle) Restore(fields map[string]any) error {
	f := newFieldReader(fields)
	if err := c.restoreCore(f); err != nil {
		return err
	}
	r, ok := f.float("base_radius")
	if !ok {
		return fmt.Errorf("%w: circle missing base_radius", ErrMalformedPayload)
	}
	if r <= 0 {
		return fmt.Errorf("%w: circle base_radius %v must be positive", ErrMalformedPayload, r)
	}
	c.BaseRadius = r
	c.extra = f.rest()
	return nil
}

// HandlePoint places the resize handle on the boundary along the rotated
// local +X axis.
func (c *Circle) HandlePoint() Point {
	return c.worldVertices([]Point{{X: c.BaseRadius}})[0]
}

// ResizeTo sets the radius so the boundary passes through the given
// world point.
func (c *Circle) ResizeTo(x, y float64, min float64) {
	r := geometry.Distance(x, y, c.x, c.y) / c.Scale()
	c.BaseRadius = math.Max(r, min)
}

// Rectangle is an axis-aligned-by-default rectangle centered on its
// position, defined by base width and height.
type Rectangle struct {
	Base
	BaseWidth  float64
	BaseHeight float64
}

// NewRectangle creates a rectangle centered at (x, y).
func NewRectangle(x, y, width, height float64) (*Rectangle, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: rectangle %vx%v must be positive", ErrInvalidGeometry, width, height)
	}
	return &Rectangle{Base: NewBase(TypeRectangle, x, y), BaseWidth: width, BaseHeight: height}, nil
}

// Width returns the scaled width.
func (r *Rectangle) Width() float64 { return r.BaseWidth * r.Scale() }

// Height returns the scaled height.
func (r *Rectangle) Height() float64 { return r.BaseHeight * r.Scale() }

func (r *Rectangle) localVertices() []Point {
	hw := r.BaseWidth / 2
	hh := r.BaseHeight / 2
	return []Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}

func (r *Rectangle) Vertices() []Point {
	return r.worldVertices(r.localVertices())
}

// ContainsPoint maps the point into local space and does a half-extent
// comparison, so rotation and scale are handled uniformly.
func (r *Rectangle) ContainsPoint(x, y float64) bool {
	lx, ly := r.toLocal(x, y)
	return math.Abs(lx) <= r.BaseWidth/2 && math.Abs(ly) <= r.BaseHeight/2
}

func (r *Rectangle) Fields() map[string]any {
	return map[string]any{
		"base_width":  r.BaseWidth,
		"base_height": r.BaseHeight,
	}
}

func (r *Rectangle) Restore(fields map[string]any) error {
	f := newFieldReader(fields)
	if err := r.restoreCore(f); err != nil {
		return err
	}
	w, ok := f.float("base_width")
	if !ok {
		return fmt.Errorf("%w: rectangle missing base_width", ErrMalformedPayload)
	}
	h, ok := f.float("base_height")
	if !ok {
		return fmt.Errorf("%w: rectangle missing base_height", ErrMalformedPayload)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: rectangle %vx%v must be positive", ErrMalformedPayload, w, h)
	}
	r.BaseWidth, r.BaseHeight = w, h
	r.extra = f.rest()
	return nil
}

// HandlePoint places the resize handle on the bottom-right corner.
func (r *Rectangle) HandlePoint() Point {
	return r.worldVertices([]Point{{X: r.BaseWidth / 2, Y: r.BaseHeight / 2}})[0]
}

// ResizeTo recomputes width and height so the bottom-right corner tracks
// the given world point.
func (r *Rectangle) ResizeTo(x, y float64, min float64) {
	lx, ly := r.toLocal(x, y)
	r.BaseWidth = math.Max(2*lx, min)
	r.BaseHeight = math.Max(2*ly, min)
}

// Trapezoid is an isosceles trapezoid centered on its position, defined
// by base top width, bottom width, and height.
type Trapezoid struct {
	Base
	BaseTopWidth    float64
	BaseBottomWidth float64
	BaseHeight      float64
}

// NewTrapezoid creates a trapezoid centered at (x, y).
func NewTrapezoid(x, y, topWidth, bottomWidth, height float64) (*Trapezoid, error) {
	if topWidth <= 0 || bottomWidth <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: trapezoid sides must be positive", ErrInvalidGeometry)
	}
	return &Trapezoid{
		Base:            NewBase(TypeTrapezoid, x, y),
		BaseTopWidth:    topWidth,
		BaseBottomWidth: bottomWidth,
		BaseHeight:      height,
	}, nil
}

// TopWidth returns the scaled top width.
func (t *Trapezoid) TopWidth() float64 { return t.BaseTopWidth * t.Scale() }

// BottomWidth returns the scaled bottom width.
func (t *Trapezoid) BottomWidth() float64 { return t.BaseBottomWidth * t.Scale() }

// Height returns the scaled height.
func (t *Trapezoid) Height() float64 { return t.BaseHeight * t.Scale() }

// localVertices lists the corners clockwise from top-left.
func (t *Trapezoid) localVertices() []Point {
	hh := t.BaseHeight / 2
	ht := t.BaseTopWidth / 2
	hb := t.BaseBottomWidth / 2
	return []Point{
		{X: -ht, Y: -hh},
		{X: ht, Y: -hh},
		{X: hb, Y: hh},
		{X: -hb, Y: hh},
	}
}

func (t *Trapezoid) Vertices() []Point {
	return t.worldVertices(t.localVertices())
}

// ContainsPoint maps the point into local space and ray-casts against the
// local outline.
func (t *Trapezoid) ContainsPoint(x, y float64) bool {
	lx, ly := t.toLocal(x, y)
	return geometry.PointInPolygon(lx, ly, t.localVertices())
}

func (t *Trapezoid) Fields() map[string]any {
	return map[string]any{
		"base_top_width":    t.BaseTopWidth,
		"base_bottom_width": t.BaseBottomWidth,
		"base_height":       t.BaseHeight,
	}
}

func (t *Trapezoid) Restore(fields map[string]any) error {
	f := newFieldReader(fields)
	if err := t.restoreCore(f); err != nil {
		return err
	}
	top, ok := f.float("base_top_width")
	if !ok {
		return fmt.Errorf("%w: trapezoid missing base_top_width", ErrMalformedPayload)
	}
	bottom, ok := f.float("base_bottom_width")
	if !ok {
		return fmt.Errorf("%w: trapezoid missing base_bottom_width", ErrMalformedPayload)
	}
	height, ok := f.float("base_height")
	if !ok {
		return fmt.Errorf("%w: trapezoid missing base_height", ErrMalformedPayload)
	}
	if top <= 0 || bottom <= 0 || height <= 0 {
		return fmt.Errorf("%w: trapezoid sides must be positive", ErrMalformedPayload)
	}
	t.BaseTopWidth, t.BaseBottomWidth, t.BaseHeight = top, bottom, height
	t.extra = f.rest()
	return nil
}

// HandlePoint places the resize handle on the bottom-right corner.
func (t *Trapezoid) HandlePoint() Point {
	return t.worldVertices([]Point{{X: t.BaseBottomWidth / 2, Y: t.BaseHeight / 2}})[0]
}

// ResizeTo recomputes the bottom width and height from the dragged
// corner, keeping the top/bottom width ratio.
func (t *Trapezoid) ResizeTo(x, y float64, min float64) {
	lx, ly := t.toLocal(x, y)
	ratio := t.BaseTopWidth / t.BaseBottomWidth
	t.BaseBottomWidth = math.Max(2*lx, min)
	t.BaseTopWidth = math.Max(t.BaseBottomWidth*ratio, min)
	t.BaseHeight = math.Max(2*ly, min)
}
