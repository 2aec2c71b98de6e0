package geo

import "math"

// Polygon is a closed ring of vertices. Voronoi cells are kept
// counterclockwise.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon wraps pts without copying.
func NewPolygon(pts ...Point2D) Polygon { return Polygon{Vertices: pts} }

// Len returns the vertex count.
func (p Polygon) Len() int { return len(p.Vertices) }

// IsEmpty reports whether p is degenerate (fewer than 3 vertices).
func (p Polygon) IsEmpty() bool { return len(p.Vertices) < 3 }

// Edge returns edge i as (start, end), wrapping past the last vertex.
func (p Polygon) Edge(i int) (Point2D, Point2D) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// Area is the unsigned shoelace area; zero for degenerate rings.
func (p Polygon) Area() float64 {
	if p.IsEmpty() {
		return 0
	}
	sum := 0.0
	for i := range p.Vertices {
		a, b := p.Edge(i)
		sum += a.X*b.Z - b.X*a.Z
	}
	return math.Abs(sum) / 2
}
