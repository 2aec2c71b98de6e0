package geo

import "math"

// Point2D is a point or vector in the ground plane. World points use X/Z
// with Y up; field points reuse the type with X as column and Z as row.
type Point2D struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Origin is the zero point.
var Origin = Point2D{0, 0}

// Pt is a shorthand constructor for Point2D.
func Pt(x, z float64) Point2D { return Point2D{X: x, Z: z} }

// Vector arithmetic on the XZ plane.
func (p Point2D) Add(q Point2D) Point2D      { return Point2D{p.X + q.X, p.Z + q.Z} }
func (p Point2D) Sub(q Point2D) Point2D      { return Point2D{p.X - q.X, p.Z - q.Z} }
func (p Point2D) Scale(s float64) Point2D    { return Point2D{p.X * s, p.Z * s} }
func (p Point2D) Dot(q Point2D) float64      { return p.X*q.X + p.Z*q.Z }
func (p Point2D) Length() float64            { return math.Hypot(p.X, p.Z) }
func (p Point2D) Distance(q Point2D) float64 { return p.Sub(q).Length() }

// Normalize returns the unit vector along p, or the zero vector when p has
// no length.
func (p Point2D) Normalize() Point2D {
	l := p.Length()
	if l < 1e-12 {
		return Point2D{}
	}
	return p.Scale(1 / l)
}

// Angle is the heading of p in radians, counterclockwise from +X.
func (p Point2D) Angle() float64 { return math.Atan2(p.Z, p.X) }

// Lerp interpolates from p (t=0) to q (t=1).
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return p.Add(q.Sub(p).Scale(t))
}

// Perp rotates p a quarter turn counterclockwise, so for a road heading
// along p it points to the left-hand side.
func (p Point2D) Perp() Point2D { return Point2D{-p.Z, p.X} }

func MidPoint(p, q Point2D) Point2D { return p.Lerp(q, 0.5) }

// Unit returns the unit vector with heading angle.
func Unit(angle float64) Point2D { return Point2D{math.Cos(angle), math.Sin(angle)} }
