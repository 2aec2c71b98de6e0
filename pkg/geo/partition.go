package geo

import (
	"fmt"
	"math"
)

// Partition is a planar subdivision of a rectangle: the interior boundary
// segments between neighbouring cells plus the sites that produced them.
type Partition struct {
	Edges []Segment `json:"edges"`
	Sites []Point2D `json:"sites"`
}

// VoronoiPartitioner subdivides a rectangle into Voronoi cells and reports
// the shared cell boundaries. Edges lying on the bounding rectangle are not
// reported.
type VoronoiPartitioner struct {
	// Tolerance merges endpoints of the same boundary seen from two cells.
	Tolerance float64
}

const defaultEdgeTolerance = 1e-4

// Partition computes the boundary segments for sites within bounds.
// Edge order follows cell order, then vertex order within each cell.
func (v VoronoiPartitioner) Partition(sites []Point2D, bounds Rect) (Partition, error) {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return Partition{}, fmt.Errorf("partition bounds must have positive area (got %.1fx%.1f)",
			bounds.Width(), bounds.Height())
	}
	for i, s := range sites {
		if !bounds.Contains(s) {
			return Partition{}, fmt.Errorf("site %d at (%.2f,%.2f) lies outside partition bounds", i, s.X, s.Z)
		}
	}

	tol := v.Tolerance
	if tol <= 0 {
		tol = defaultEdgeTolerance
	}

	out := Partition{
		Edges: []Segment{},
		Sites: append([]Point2D(nil), sites...),
	}

	type edgeKey [4]int64
	quant := func(p Point2D) (int64, int64) {
		return int64(math.Round(p.X / tol)), int64(math.Round(p.Z / tol))
	}
	seen := make(map[edgeKey]bool)

	for _, cell := range Voronoi(sites, bounds.Polygon()) {
		for i := 0; i < cell.Polygon.Len(); i++ {
			a, b := cell.Polygon.Edge(i)
			seg := Seg(a, b)
			if seg.Length() < tol || bounds.onBorder(seg, tol) {
				continue
			}
			ax, az := quant(a)
			bx, bz := quant(b)
			if ax > bx || (ax == bx && az > bz) {
				ax, az, bx, bz = bx, bz, ax, az
			}
			key := edgeKey{ax, az, bx, bz}
			if seen[key] {
				continue
			}
			seen[key] = true
			out.Edges = append(out.Edges, seg)
		}
	}
	return out, nil
}
