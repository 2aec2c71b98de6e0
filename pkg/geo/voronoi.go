package geo

import "math"

// VoronoiCell represents one cell in a Voronoi diagram.
type VoronoiCell struct {
	SeedIndex int     // index into the original seed array
	Seed      Point2D // the seed point
	Polygon   Polygon // the cell boundary
}

// Voronoi computes the Voronoi diagram of the given seed points,
// clipped to the given bounding polygon.
//
// Uses half-plane intersection for cell geometry (robust for small n).
func Voronoi(seeds []Point2D, bounds Polygon) []VoronoiCell {
	n := len(seeds)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []VoronoiCell{{
			SeedIndex: 0,
			Seed:      seeds[0],
			Polygon:   bounds,
		}}
	}

	cells := make([]VoronoiCell, n)
	for i := 0; i < n; i++ {
		cells[i] = VoronoiCell{
			SeedIndex: i,
			Seed:      seeds[i],
			Polygon:   voronoiCellByHalfPlanes(i, seeds, bounds),
		}
	}
	return cells
}

// voronoiCellByHalfPlanes computes a Voronoi cell by intersecting half-planes.
// For each other seed, clip the bounds to the half-plane closer to seed[i].
func voronoiCellByHalfPlanes(seedIdx int, seeds []Point2D, bounds Polygon) Polygon {
	cell := bounds
	seed := seeds[seedIdx]
	for j, other := range seeds {
		if j == seedIdx || other == seed {
			continue
		}
		mid := MidPoint(seed, other)
		dir := other.Sub(seed).Perp()
		cell = clipToHalfPlane(cell, mid, mid.Add(dir))
		if cell.IsEmpty() {
			break
		}
	}
	return cell
}

// clipToHalfPlane clips a polygon to the left side of the directed line from a to b.
func clipToHalfPlane(poly Polygon, a, b Point2D) Polygon {
	if poly.IsEmpty() {
		return Polygon{}
	}
	n := len(poly.Vertices)
	output := make([]Point2D, 0, n)
	for i := 0; i < n; i++ {
		curr := poly.Vertices[i]
		next := poly.Vertices[(i+1)%n]
		currInside := isInsideEdge(curr, a, b)
		nextInside := isInsideEdge(next, a, b)

		if currInside && nextInside {
			output = append(output, next)
		} else if currInside && !nextInside {
			if ix, ok := lineIntersection(curr, next, a, b); ok {
				output = append(output, ix)
			}
		} else if !currInside && nextInside {
			if ix, ok := lineIntersection(curr, next, a, b); ok {
				output = append(output, ix)
			}
			output = append(output, next)
		}
	}
	if len(output) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: output}
}

// isInsideEdge returns true if the point is on the inside (left) of the
// directed edge from edgeStart to edgeEnd.
func isInsideEdge(p, edgeStart, edgeEnd Point2D) bool {
	return (edgeEnd.X-edgeStart.X)*(p.Z-edgeStart.Z)-
		(edgeEnd.Z-edgeStart.Z)*(p.X-edgeStart.X) >= 0
}

// lineIntersection returns the intersection point of lines (p1→p2) and (p3→p4).
func lineIntersection(p1, p2, p3, p4 Point2D) (Point2D, bool) {
	d := (p1.X-p2.X)*(p3.Z-p4.Z) - (p1.Z-p2.Z)*(p3.X-p4.X)
	if math.Abs(d) < 1e-12 {
		return Point2D{}, false
	}
	t := ((p1.X-p3.X)*(p3.Z-p4.Z) - (p1.Z-p3.Z)*(p3.X-p4.X)) / d
	return Point2D{
		X: p1.X + t*(p2.X-p1.X),
		Z: p1.Z + t*(p2.Z-p1.Z),
	}, true
}
