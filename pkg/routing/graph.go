// Package routing builds a navigable graph from the road network and moves
// agents along shortest paths over it.
package routing

import (
	"math"
	"sort"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
)

// DefaultTolerance merges road endpoints closer than this (world units).
const DefaultTolerance = 0.05

// edge is one direction of a road between two graph nodes.
type edge struct {
	to     int
	road   int
	length float64
}

// Graph is an undirected road graph. Nodes are road endpoints merged within
// a tolerance; every road contributes an edge in both directions.
type Graph struct {
	roads     []layout.RoadSegment
	nodes     []geo.Point2D
	adj       [][]edge
	endpoints [][2]int // road index -> node at Start, node at End
	tolerance float64
}

// NewGraph indexes the roads. A non-positive tolerance selects
// DefaultTolerance.
func NewGraph(roads []layout.RoadSegment, tolerance float64) *Graph {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	g := &Graph{
		roads:     roads,
		endpoints: make([][2]int, len(roads)),
		tolerance: tolerance,
	}

	cellSize := tolerance * 2
	buckets := make(map[[2]int][]int)
	cellKey := func(p geo.Point2D) [2]int {
		return [2]int{int(math.Floor(p.X / cellSize)), int(math.Floor(p.Z / cellSize))}
	}

	nodeFor := func(p geo.Point2D) int {
		key := cellKey(p)
		for _, n := range buckets[key] {
			if g.nodes[n].Distance(p) <= tolerance {
				return n
			}
		}
		n := len(g.nodes)
		g.nodes = append(g.nodes, p)
		g.adj = append(g.adj, nil)
		// Register in the neighbouring cells too so lookups near a cell
		// border still find the node.
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				bk := [2]int{key[0] + dx, key[1] + dz}
				buckets[bk] = append(buckets[bk], n)
			}
		}
		return n
	}

	for i, r := range roads {
		a := nodeFor(r.Start)
		b := nodeFor(r.End)
		g.endpoints[i] = [2]int{a, b}
		if a == b {
			continue
		}
		g.adj[a] = append(g.adj[a], edge{to: b, road: i, length: r.Length})
		g.adj[b] = append(g.adj[b], edge{to: a, road: i, length: r.Length})
	}
	return g
}

// NodeCount returns the number of merged endpoints.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Roads returns the roads the graph was built from.
func (g *Graph) Roads() []layout.RoadSegment { return g.roads }

// Connectivity maps each road ID to the IDs of the roads sharing one of its
// endpoints. Lists are sorted and the relation is symmetric.
func (g *Graph) Connectivity() map[string][]string {
	conn := make(map[string]map[string]bool)
	for n := range g.nodes {
		for _, e1 := range g.adj[n] {
			for _, e2 := range g.adj[n] {
				if e1.road == e2.road {
					continue
				}
				a, b := g.roads[e1.road].ID, g.roads[e2.road].ID
				if conn[a] == nil {
					conn[a] = make(map[string]bool)
				}
				conn[a][b] = true
			}
		}
	}

	result := make(map[string][]string, len(conn))
	for id, neighbors := range conn {
		ids := make([]string, 0, len(neighbors))
		for nid := range neighbors {
			ids = append(ids, nid)
		}
		sort.Strings(ids)
		result[id] = ids
	}
	return result
}

// Components counts the connected pieces of the network. Nodes without
// any road are ignored.
func (g *Graph) Components() int {
	seen := make([]bool, len(g.nodes))
	count := 0
	for start := range g.nodes {
		if seen[start] || len(g.adj[start]) == 0 {
			continue
		}
		count++
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range g.adj[n] {
				if !seen[e.to] {
					seen[e.to] = true
					stack = append(stack, e.to)
				}
			}
		}
	}
	return count
}

// Locate snaps p to the nearest point on any road. It returns the road
// index, the snapped point, the fraction along the road and the distance
// from p. ok is false when the graph has no roads.
func (g *Graph) Locate(p geo.Point2D) (road int, at geo.Point2D, t, dist float64, ok bool) {
	best := math.Inf(1)
	road = -1
	for i, r := range g.roads {
		q, d, u := geo.Seg(r.Start, r.End).NearestPoint(p)
		if d < best {
			best, road, at, t = d, i, q, u
		}
	}
	if road < 0 {
		return -1, geo.Point2D{}, 0, 0, false
	}
	return road, at, t, best, true
}
