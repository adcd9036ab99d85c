// Package geometry contains the fundamental 2D math used throughout the
// planar scene model: rotation, distance, and containment helpers, all in
// float64 world coordinates.
package geometry

import "math"

// Point represents a 2D world-space coordinate.
type Point struct {
	X, Y float64
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rotate rotates (x, y) about the origin by deg degrees using the standard
// 2D rotation matrix.
func Rotate(x, y, deg float64) (float64, float64) {
	if deg == 0 {
		return x, y
	}
	rad := Radians(deg)
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistanceSquared calculates the squared distance between two points.
// Useful when comparing distances without paying for the square root.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClosestPointOnSegment returns the point on the segment (x1,y1)-(x2,y2)
// closest to (px, py).
func ClosestPointOnSegment(px, py, x1, y1, x2, y2 float64) (float64, float64) {
	dx := x2 - x1
	dy := y2 - y1
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return x1, y1
	}
	t := ((px-x1)*dx + (py-y1)*dy) / lengthSq
	t = Clamp(t, 0, 1)
	return x1 + t*dx, y1 + t*dy
}

// DistanceToSegment calculates the distance from (px, py) to the segment
// (x1,y1)-(x2,y2).
func DistanceToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	cx, cy := ClosestPointOnSegment(px, py, x1, y1, x2, y2)
	return Distance(px, py, cx, cy)
}

// PointInPolygon checks whether (px, py) lies inside the polygon described
// by vertices, using the ray casting algorithm. The polygon is treated as
// closed; winding order does not matter.
func PointInPolygon(px, py float64, vertices []Point) bool {
	if len(vertices) < 3 {
		return false
	}
	inside := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		xi, yi := vertices[i].X, vertices[i].Y
		xj, yj := vertices[j].X, vertices[j].Y
		if (yi > py) != (yj > py) &&
			px < (xj-xi)*(py-yi)/(yj-yi+1e-9)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
