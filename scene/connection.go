package scene

import "planar/geometry"

// Connection represents a link between two components, referencing them
// by id. Endpoint ownership stays with the model; a connection is removed
// automatically when either endpoint is removed.
type Connection struct {
	ID     int
	Source int
	Target int
	Label  string
}

// Anchors returns the world-space endpoints for drawing the connection:
// the point on each component's boundary closest to the other component's
// center. Anchor points are always derived live from the current endpoint
// geometry.
func (c *Connection) Anchors(source, target Component) (Point, Point) {
	sx, sy := source.Pos()
	tx, ty := target.Pos()
	return BoundaryToward(source, tx, ty), BoundaryToward(target, sx, sy)
}

// Near checks whether a world-space point is within threshold of the
// connection's line segment. Used for picking connections.
func (c *Connection) Near(x, y float64, source, target Component, threshold float64) bool {
	a, b := c.Anchors(source, target)
	return geometry.DistanceToSegment(x, y, a.X, a.Y, b.X, b.Y) <= threshold
}

// BoundaryToward returns the point on a component's boundary closest to
// (tx, ty). Circles use the closed-form radial projection; polygonal
// shapes project onto each outline edge; shapes with a degenerate outline
// fall back to their center.
func BoundaryToward(c Component, tx, ty float64) Point {
	cx, cy := c.Pos()

	if circle, ok := c.(*Circle); ok {
		dist := geometry.Distance(cx, cy, tx, ty)
		if dist == 0 {
			return Point{X: cx, Y: cy}
		}
		r := circle.Radius()
		return Point{
			X: cx + (tx-cx)/dist*r,
			Y: cy + (ty-cy)/dist*r,
		}
	}

	vertices := c.Vertices()
	if len(vertices) < 2 {
		return Point{X: cx, Y: cy}
	}

	best := Point{X: cx, Y: cy}
	bestDist := geometry.DistanceSquared(tx, ty, cx, cy)
	found := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		px, py := geometry.ClosestPointOnSegment(tx, ty, vertices[j].X, vertices[j].Y, vertices[i].X, vertices[i].Y)
		d := geometry.DistanceSquared(tx, ty, px, py)
		if !found || d < bestDist {
			best = Point{X: px, Y: py}
			bestDist = d
			found = true
		}
		j = i
	}
	return best
}
