package scene

import "fmt"

// Model owns the live collections of components and connections for one
// scene. Iteration order is insertion order, which doubles as z-order:
// later components draw on top. The model is the sole owner of component
// lifetime; controllers and codecs hold only borrowed references.
type Model struct {
	components map[int]Component
	order      []int // component ids in insertion order
	conns      map[int]*Connection
	connOrder  []int
	nextID     int
}

// NewModel creates an empty scene model.
func NewModel() *Model {
	return &Model{
		components: make(map[int]Component),
		conns:      make(map[int]*Connection),
		nextID:     1,
	}
}

// allocID returns the next unused id. Ids are never reused within a
// model, even after removals.
func (m *Model) allocID() int {
	for m.components[m.nextID] != nil || m.conns[m.nextID] != nil {
		m.nextID++
	}
	id := m.nextID
	m.nextID++
	return id
}

// Add inserts a component and returns its id. A component arriving with a
// positive, unused id keeps it (load path); otherwise a fresh id is
// assigned.
func (m *Model) Add(c Component) int {
	id := c.ID()
	if id <= 0 || m.components[id] != nil {
		id = m.allocID()
		c.SetID(id)
	} else if id >= m.nextID {
		m.nextID = id + 1
	}
	m.components[id] = c
	m.order = append(m.order, id)
	return id
}

// Get looks up a component by id.
func (m *Model) Get(id int) (Component, bool) {
	c, ok := m.components[id]
	return c, ok
}

// Remove deletes a component and cascades removal of every connection
// referencing it. Returns ErrNotFound for an absent id so programmer
// errors surface early.
func (m *Model) Remove(id int) error {
	if _, ok := m.components[id]; !ok {
		return fmt.Errorf("%w: component %d", ErrNotFound, id)
	}
	delete(m.components, id)
	m.order = removeID(m.order, id)

	for connID, conn := range m.conns {
		if conn.Source == id || conn.Target == id {
			delete(m.conns, connID)
			m.connOrder = removeID(m.connOrder, connID)
		}
	}
	return nil
}

// AddConnection links two existing components. Self-connections and
// duplicates (in either direction) are rejected before any mutation.
func (m *Model) AddConnection(source, target int) (*Connection, error) {
	if source == target {
		return nil, fmt.Errorf("%w: component %d", ErrSelfConnection, source)
	}
	if _, ok := m.components[source]; !ok {
		return nil, fmt.Errorf("%w: component %d", ErrNotFound, source)
	}
	if _, ok := m.components[target]; !ok {
		return nil, fmt.Errorf("%w: component %d", ErrNotFound, target)
	}
	for _, conn := range m.conns {
		if (conn.Source == source && conn.Target == target) ||
			(conn.Source == target && conn.Target == source) {
			return nil, fmt.Errorf("%w: %d-%d", ErrDuplicateConnection, source, target)
		}
	}

	conn := &Connection{ID: m.allocID(), Source: source, Target: target}
	m.conns[conn.ID] = conn
	m.connOrder = append(m.connOrder, conn.ID)
	return conn, nil
}

// GetConnection looks up a connection by id.
func (m *Model) GetConnection(id int) (*Connection, bool) {
	c, ok := m.conns[id]
	return c, ok
}

// RemoveConnection deletes a single connection.
func (m *Model) RemoveConnection(id int) error {
	if _, ok := m.conns[id]; !ok {
		return fmt.Errorf("%w: connection %d", ErrNotFound, id)
	}
	delete(m.conns, id)
	m.connOrder = removeID(m.connOrder, id)
	return nil
}

// FindAt returns the topmost component containing the world-space point.
// Later-inserted components render on top, so the search runs in reverse
// insertion order.
func (m *Model) FindAt(x, y float64) (Component, bool) {
	for i := len(m.order) - 1; i >= 0; i-- {
		c := m.components[m.order[i]]
		if c.ContainsPoint(x, y) {
			return c, true
		}
	}
	return nil, false
}

// Components returns a snapshot of the components in insertion order.
// Mutating the model does not affect a slice already handed out.
func (m *Model) Components() []Component {
	out := make([]Component, len(m.order))
	for i, id := range m.order {
		out[i] = m.components[id]
	}
	return out
}

// Connections returns a snapshot of the connections in insertion order.
func (m *Model) Connections() []*Connection {
	out := make([]*Connection, len(m.connOrder))
	for i, id := range m.connOrder {
		out[i] = m.conns[id]
	}
	return out
}

// Anchors resolves a connection's current endpoint geometry. The second
// return is false if either endpoint is missing, which only happens for a
// connection borrowed across a removal.
func (m *Model) Anchors(conn *Connection) (Point, Point, bool) {
	source, ok := m.components[conn.Source]
	if !ok {
		return Point{}, Point{}, false
	}
	target, ok := m.components[conn.Target]
	if !ok {
		return Point{}, Point{}, false
	}
	a, b := conn.Anchors(source, target)
	return a, b, true
}

// Len returns the number of components.
func (m *Model) Len() int { return len(m.order) }

// ConnectionCount returns the number of connections.
func (m *Model) ConnectionCount() int { return len(m.connOrder) }

// Clear removes every component and connection. Id assignment keeps
// counting up so ids are never reused.
func (m *Model) Clear() {
	m.components = make(map[int]Component)
	m.conns = make(map[int]*Connection)
	m.order = nil
	m.connOrder = nil
}

func removeID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
