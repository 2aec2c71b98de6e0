package geo

import "math"

// Segment is a straight line between two points.
type Segment struct {
	A Point2D `json:"a"`
	B Point2D `json:"b"`
}

// Seg is a shorthand constructor for Segment.
func Seg(a, b Point2D) Segment {
	return Segment{A: a, B: b}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() Point2D {
	return MidPoint(s.A, s.B)
}

// Direction returns the unit vector from A to B.
// Returns zero vector for a degenerate segment.
func (s Segment) Direction() Point2D {
	return s.B.Sub(s.A).Normalize()
}

// NearestPoint returns the closest point on the segment to p, the distance
// to it, and its fraction t in [0,1] along the segment.
func (s Segment) NearestPoint(p Point2D) (Point2D, float64, float64) {
	ab := s.B.Sub(s.A)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-12 {
		return s.A, p.Distance(s.A), 0
	}
	t := p.Sub(s.A).Dot(ab) / abLen2
	t = math.Max(0, math.Min(1, t))
	closest := s.A.Add(ab.Scale(t))
	return closest, p.Distance(closest), t
}

// Polyline is an ordered sequence of points forming a path.
type Polyline struct {
	Points []Point2D
}

// NewPolyline creates a polyline from a list of points.
func NewPolyline(pts ...Point2D) Polyline {
	return Polyline{Points: pts}
}

// Length returns the total arc length of the polyline.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i-1].Distance(pl.Points[i])
	}
	return total
}

// PointAt returns the point at fraction t in [0,1] along the polyline length.
func (pl Polyline) PointAt(t float64) Point2D {
	if len(pl.Points) == 0 {
		return Point2D{}
	}
	if len(pl.Points) == 1 || t <= 0 {
		return pl.Points[0]
	}
	if t >= 1 {
		return pl.Points[len(pl.Points)-1]
	}

	targetLen := t * pl.Length()
	walked := 0.0
	for i := 1; i < len(pl.Points); i++ {
		segLen := pl.Points[i-1].Distance(pl.Points[i])
		if walked+segLen >= targetLen {
			return pl.Points[i-1].Lerp(pl.Points[i], (targetLen-walked)/segLen)
		}
		walked += segLen
	}
	return pl.Points[len(pl.Points)-1]
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Point2D `json:"min"`
	Max Point2D `json:"max"`
}

// NewRect returns the rectangle spanning [0,width]x[0,height].
func NewRect(width, height float64) Rect {
	return Rect{Max: Point2D{X: width, Z: height}}
}

// Width returns the X extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the Z extent.
func (r Rect) Height() float64 { return r.Max.Z - r.Min.Z }

// Polygon returns the rectangle as a CCW polygon.
func (r Rect) Polygon() Polygon {
	return NewPolygon(
		r.Min,
		Pt(r.Max.X, r.Min.Z),
		r.Max,
		Pt(r.Min.X, r.Max.Z),
	)
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Z >= r.Min.Z && p.Z <= r.Max.Z
}

// onBorder reports whether the segment runs along one side of the rectangle.
func (r Rect) onBorder(s Segment, eps float64) bool {
	near := func(a, b float64) bool { return math.Abs(a-b) <= eps }
	switch {
	case near(s.A.X, r.Min.X) && near(s.B.X, r.Min.X):
		return true
	case near(s.A.X, r.Max.X) && near(s.B.X, r.Max.X):
		return true
	case near(s.A.Z, r.Min.Z) && near(s.B.Z, r.Min.Z):
		return true
	case near(s.A.Z, r.Max.Z) && near(s.B.Z, r.Max.Z):
		return true
	}
	return false
}
