package scene

import "errors"

// Error conditions surfaced by the scene model, registry, and codec. All
// are local and recoverable; callers match them with errors.Is.
var (
	// ErrInvalidGeometry indicates a non-positive scale or size.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrNotFound indicates a component or connection id that is not in
	// the model.
	ErrNotFound = errors.New("not found")

	// ErrSelfConnection indicates an attempt to connect a component to
	// itself.
	ErrSelfConnection = errors.New("cannot connect component to itself")

	// ErrDuplicateConnection indicates a connection that already exists
	// between the two endpoints (in either direction).
	ErrDuplicateConnection = errors.New("connection already exists")

	// ErrUnknownType indicates a type tag with no registered factory.
	ErrUnknownType = errors.New("unknown component type")

	// ErrMalformedPayload indicates a serialized component payload with
	// missing or invalid required fields.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrUnsupportedVersion indicates a scene document written by a newer
	// format version than this build supports.
	ErrUnsupportedVersion = errors.New("unsupported format version")
)
