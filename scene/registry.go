package scene

import (
	"fmt"
	"log"
	"sort"
)

// Factory constructs instances of one component type, both fresh (for
// insert operations) and from a serialized payload (for loading).
type Factory struct {
	// New creates a default-sized instance at the given position.
	New func(x, y float64) Component
	// Restore creates an instance from a decoded payload.
	Restore func(fields map[string]any) (Component, error)
}

// Registry maps type tags to component factories. The host application
// populates it before constructing or loading scenes; registering a new
// type never invalidates components already in a model. Not safe for
// concurrent mutation; the session loop owns it.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for a type tag. Re-registering a tag overrides
// the previous factory with a warning; re-registration during development
// is expected.
func (r *Registry) Register(tag string, f Factory) {
	if _, exists := r.factories[tag]; exists {
		log.Printf("scene: overriding registered component type %q", tag)
	}
	r.factories[tag] = f
}

// Registered reports whether a type tag has a factory.
func (r *Registry) Registered(tag string) bool {
	_, ok := r.factories[tag]
	return ok
}

// Tags returns the registered type tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Create constructs a default instance of the given type at (x, y).
func (r *Registry) Create(tag string, x, y float64) (Component, error) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
	return f.New(x, y), nil
}

// Restore reconstructs an instance of the given type from a decoded
// payload.
func (r *Registry) Restore(tag string, fields map[string]any) (Component, error) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
	c, err := f.Restore(fields)
	if err != nil {
		return nil, fmt.Errorf("restore %q: %w", tag, err)
	}
	return c, nil
}

// Default shape sizes used when inserting components interactively.
const (
	defaultRadius      = 30
	defaultWidth       = 60
	defaultHeight      = 40
	defaultTopWidth    = 50
	defaultBottomWidth = 90
	defaultTrapHeight  = 50
)

// DefaultRegistry returns a registry with the built-in shapes registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeCircle, Factory{
		New: func(x, y float64) Component {
			c, _ := NewCircle(x, y, defaultRadius)
			return c
		},
		Restore: func(fields map[string]any) (Component, error) {
			c := &Circle{Base: NewBase(TypeCircle, 0, 0)}
			if err := c.Restore(fields); err != nil {
				return nil, err
			}
			return c, nil
		},
	})
	r.Register(TypeRectangle, Factory{
		New: func(x, y float64) Component {
			c, _ := NewRectangle(x, y, defaultWidth, defaultHeight)
			return c
		},
		Restore: func(fields map[string]any) (Component, error) {
			c := &Rectangle{Base: NewBase(TypeRectangle, 0, 0)}
			if err := c.Restore(fields); err != nil {
				return nil, err
			}
			return c, nil
		},
	})
	r.Register(TypeTrapezoid, Factory{
		New: func(x, y float64) Component {
			c, _ := NewTrapezoid(x, y, defaultTopWidth, defaultBottomWidth, defaultTrapHeight)
			return c
		},
		Restore: func(fields map[string]any) (Component, error) {
			c := &Trapezoid{Base: NewBase(TypeTrapezoid, 0, 0)}
			if err := c.Restore(fields); err != nil {
				return nil, err
			}
			return c, nil
		},
	})
	return r
}
