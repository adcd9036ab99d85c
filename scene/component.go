// Package scene contains the planar scene data model: components,
// connections, the type registry, and the owning model.
package scene

import (
	"fmt"

	"planar/geometry"
)

// Point is re-exported so callers of the scene package don't need to
// import geometry for coordinates.
type Point = geometry.Point

// Component is a single geometric, selectable, movable scene entity.
// Concrete shapes (Circle, Rectangle, Trapezoid, and any host-registered
// type) implement it, usually by embedding Base.
type Component interface {
	// ID returns the component's identifier within its model. Zero means
	// not yet assigned.
	ID() int
	// SetID is called by the model when the component is added.
	SetID(id int)

	// TypeTag identifies the concrete variant for registry dispatch.
	TypeTag() string

	// Pos returns the world-space center position.
	Pos() (x, y float64)
	// SetPos moves the component's center.
	SetPos(x, y float64)

	// Rotation returns the rotation in degrees (0 = unrotated).
	Rotation() float64
	SetRotation(deg float64)

	// Scale returns the uniform scale multiplier (always > 0).
	Scale() float64
	// SetScale rejects non-positive values with ErrInvalidGeometry.
	SetScale(s float64) error

	// Selected reports the session-only selection flag. Never persisted.
	Selected() bool
	SetSelected(selected bool)

	// ContainsPoint checks whether a world-space point is inside the
	// component. Must agree with the region implied by Vertices.
	ContainsPoint(x, y float64) bool

	// Vertices returns the component's outline in world space. Local
	// shape vertices are rotated, then scaled, then translated to the
	// component position.
	Vertices() []Point

	// Fields returns the shape-specific serialized fields (base sizes
	// etc). Core fields (position, rotation, scale) are handled by the
	// codec directly.
	Fields() map[string]any

	// Restore sets shape and core fields from a decoded payload.
	// Unrecognized keys are retained and round-tripped via Extra.
	Restore(fields map[string]any) error

	// Extra returns opaque fields preserved from a loaded payload that
	// this build does not recognize. May be nil.
	Extra() map[string]any
}

// Resizable is implemented by components that expose a drag handle for
// recomputing their size-defining fields.
type Resizable interface {
	// HandlePoint returns the world-space position of the resize handle.
	HandlePoint() Point
	// ResizeTo recomputes the size fields so the handle tracks the given
	// world point. Sizes are clamped to min.
	ResizeTo(x, y float64, min float64)
}

// Base carries the fields common to every component. Concrete shapes
// embed it and implement the shape-specific methods.
type Base struct {
	id       int
	typeTag  string
	x, y     float64
	rotation float64
	scale    float64
	selected bool
	extra    map[string]any
}

// NewBase returns a Base at the given position with scale 1.
func NewBase(typeTag string, x, y float64) Base {
	return Base{typeTag: typeTag, x: x, y: y, scale: 1}
}

func (b *Base) ID() int         { return b.id }
func (b *Base) SetID(id int)    { b.id = id }
func (b *Base) TypeTag() string { return b.typeTag }

func (b *Base) Pos() (float64, float64) { return b.x, b.y }
func (b *Base) SetPos(x, y float64)     { b.x, b.y = x, y }

func (b *Base) Rotation() float64       { return b.rotation }
func (b *Base) SetRotation(deg float64) { b.rotation = deg }

func (b *Base) Scale() float64 { return b.scale }

// SetScale rejects non-positive scales.
func (b *Base) SetScale(s float64) error {
	if s <= 0 {
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidGeometry, s)
	}
	b.scale = s
	return nil
}

func (b *Base) Selected() bool            { return b.selected }
func (b *Base) SetSelected(selected bool) { b.selected = selected }

func (b *Base) Extra() map[string]any { return b.extra }

// worldVertices transforms local shape vertices to world space:
// rotate about the local origin, scale, then translate to the position.
func (b *Base) worldVertices(local []Point) []Point {
	out := make([]Point, len(local))
	for i, p := range local {
		rx, ry := geometry.Rotate(p.X, p.Y, b.rotation)
		out[i] = Point{X: b.x + rx*b.scale, Y: b.y + ry*b.scale}
	}
	return out
}

// toLocal inverts the world transform, mapping a world-space point into
// the component's unrotated, unscaled local space.
func (b *Base) toLocal(x, y float64) (float64, float64) {
	dx := (x - b.x) / b.scale
	dy := (y - b.y) / b.scale
	return geometry.Rotate(dx, dy, -b.rotation)
}

// restoreCore reads the shared fields out of a payload. Position is
// required; rotation and scale fall back to their defaults.
func (b *Base) restoreCore(f *fieldReader) error {
	x, ok := f.float("x")
	if !ok {
		return fmt.Errorf("%w: missing x", ErrMalformedPayload)
	}
	y, ok := f.float("y")
	if !ok {
		return fmt.Errorf("%w: missing y", ErrMalformedPayload)
	}
	b.x, b.y = x, y
	b.rotation = f.floatOr("rotation_deg", 0)
	scale := f.floatOr("scale", 1)
	if scale <= 0 {
		return fmt.Errorf("%w: scale %v must be positive", ErrMalformedPayload, scale)
	}
	b.scale = scale
	b.selected = false // selection is a session concept, reset on load
	return nil
}

// fieldReader pulls typed values out of a decoded payload map while
// tracking which keys were consumed, so the remainder can be preserved
// as opaque extras.
type fieldReader struct {
	fields   map[string]any
	consumed map[string]bool
}

func newFieldReader(fields map[string]any) *fieldReader {
	return &fieldReader{fields: fields, consumed: make(map[string]bool)}
}

// float reads a numeric field. JSON numbers decode as float64; integer
// values from hand-written files are accepted too.
func (f *fieldReader) float(key string) (float64, bool) {
	v, ok := f.fields[key]
	if !ok {
		return 0, false
	}
	f.consumed[key] = true
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func (f *fieldReader) floatOr(key string, def float64) float64 {
	if v, ok := f.float(key); ok {
		return v
	}
	return def
}

// rest returns the keys that were never consumed, or nil if everything
// was recognized.
func (f *fieldReader) rest() map[string]any {
	var rest map[string]any
	for k, v := range f.fields {
		if f.consumed[k] {
			continue
		}
		if rest == nil {
			rest = make(map[string]any)
		}
		rest[k] = v
	}
	return rest
}
