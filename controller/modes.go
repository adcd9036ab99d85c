package controller

// Mode represents the current interaction state. At most one drag,
// resize, or connection-build is active at a time.
type Mode int

const (
	ModeIdle           Mode = iota // No gesture in progress
	ModeDragging                   // A component follows the pointer
	ModeResizing                   // A component's handle follows the pointer
	ModeConnectPending             // First connection endpoint chosen, awaiting second
)

// String returns the mode name for display.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeDragging:
		return "DRAG"
	case ModeResizing:
		return "RESIZE"
	case ModeConnectPending:
		return "CONNECT"
	default:
		return "UNKNOWN"
	}
}
