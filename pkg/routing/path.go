package routing

import (
	"container/heap"
	"errors"
	"math"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
)

var (
	ErrNoRoads     = errors.New("road graph is empty")
	ErrUnreachable = errors.New("destination is not connected to the start")
)

// Leg is a straight stretch of a route along one road.
type Leg struct {
	From   geo.Point2D      `json:"from"`
	To     geo.Point2D      `json:"to"`
	Road   string           `json:"road"`
	Class  layout.RoadClass `json:"class"`
	Length float64          `json:"length"`
}

// Route is an ordered list of legs.
type Route struct {
	Legs   []Leg   `json:"legs"`
	Length float64 `json:"length"`
}

// queueItem is a node waiting in the Dijkstra frontier.
type queueItem struct {
	node  int
	dist  float64
	index int
}

// frontier implements heap.Interface as a min-heap on dist.
type frontier []*queueItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontier) Push(x interface{}) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// ShortestPath finds the shortest route along roads between the road points
// nearest to from and to. Both ends are snapped onto their closest road, so
// the route starts and ends on the network.
func (g *Graph) ShortestPath(from, to geo.Point2D) (Route, error) {
	ra, pa, ta, _, ok := g.Locate(from)
	if !ok {
		return Route{}, ErrNoRoads
	}
	rb, pb, tb, _, _ := g.Locate(to)

	n := len(g.nodes)
	src, dst := n, n+1
	pos := func(i int) geo.Point2D {
		switch i {
		case src:
			return pa
		case dst:
			return pb
		}
		return g.nodes[i]
	}

	roadA, roadB := g.roads[ra], g.roads[rb]
	srcEdges := []edge{
		{to: g.endpoints[ra][0], road: ra, length: ta * roadA.Length},
		{to: g.endpoints[ra][1], road: ra, length: (1 - ta) * roadA.Length},
	}
	if ra == rb {
		srcEdges = append(srcEdges, edge{to: dst, road: ra, length: math.Abs(ta-tb) * roadA.Length})
	}
	extra := map[int][]edge{}
	extra[g.endpoints[rb][0]] = append(extra[g.endpoints[rb][0]], edge{to: dst, road: rb, length: tb * roadB.Length})
	extra[g.endpoints[rb][1]] = append(extra[g.endpoints[rb][1]], edge{to: dst, road: rb, length: (1 - tb) * roadB.Length})

	neighbors := func(i int) []edge {
		if i == src {
			return srcEdges
		}
		if i == dst {
			return nil
		}
		if more, ok := extra[i]; ok {
			return append(append([]edge(nil), g.adj[i]...), more...)
		}
		return g.adj[i]
	}

	dist := make([]float64, n+2)
	prev := make([]int, n+2)
	prevRoad := make([]int, n+2)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0

	pq := &frontier{}
	heap.Push(pq, &queueItem{node: src})
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*queueItem)
		if item.dist > dist[item.node] {
			continue
		}
		if item.node == dst {
			break
		}
		for _, e := range neighbors(item.node) {
			d := item.dist + e.length
			if d < dist[e.to] {
				dist[e.to] = d
				prev[e.to] = item.node
				prevRoad[e.to] = e.road
				heap.Push(pq, &queueItem{node: e.to, dist: d})
			}
		}
	}
	if math.IsInf(dist[dst], 1) {
		return Route{}, ErrUnreachable
	}

	var chain []int
	for at := dst; at != -1; at = prev[at] {
		chain = append(chain, at)
	}
	route := Route{Legs: []Leg{}}
	for i := len(chain) - 1; i > 0; i-- {
		a, b := chain[i], chain[i-1]
		leg := Leg{From: pos(a), To: pos(b)}
		leg.Length = leg.From.Distance(leg.To)
		if leg.Length == 0 {
			continue
		}
		r := g.roads[prevRoad[b]]
		leg.Road = r.ID
		leg.Class = r.Class
		route.Legs = append(route.Legs, leg)
		route.Length += leg.Length
	}
	return route, nil
}
