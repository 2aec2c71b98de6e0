package routing

import (
	"math"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
)

// SurfaceTolerance is how far a warp target may lie from the nearest road
// and still count as on the network.
const SurfaceTolerance = 1.0

// Navigator moves one agent over a Graph. Paths are computed lazily: after
// SetDestination the path is pending until the next Advance, and the agent
// starts moving on the Advance after that.
type Navigator struct {
	graph    *Graph
	stopping float64

	pos       geo.Point2D
	onSurface bool
	area      layout.RoadClass

	dest     geo.Point2D
	pending  bool
	route    []Leg
	leg      int
	legPos   float64
	hasPath  bool
	stopped  bool
	speed    float64
	velocity float64
}

// NewNavigator returns a navigator that is not yet placed on the network.
// stopping is the distance at which a destination counts as reached.
func NewNavigator(g *Graph, stopping float64) *Navigator {
	return &Navigator{graph: g, stopping: stopping, area: layout.RoadNormal}
}

// Warp teleports the agent to the road point nearest p. It returns false and
// leaves the agent off the network when no road lies within
// SurfaceTolerance.
func (n *Navigator) Warp(p geo.Point2D) bool {
	n.clearPath()
	road, at, _, d, ok := n.graph.Locate(p)
	if !ok || d > SurfaceTolerance {
		n.pos = p
		n.onSurface = false
		return false
	}
	n.pos = at
	n.onSurface = true
	n.area = n.graph.roads[road].Class
	return true
}

// SetDestination requests a path to p. It fails while the agent is off the
// network.
func (n *Navigator) SetDestination(p geo.Point2D) bool {
	if !n.onSurface {
		return false
	}
	n.clearPath()
	n.dest = p
	n.pending = true
	return true
}

func (n *Navigator) clearPath() {
	n.pending = false
	n.route = nil
	n.leg = 0
	n.legPos = 0
	n.hasPath = false
	n.velocity = 0
}

// SetStopped pauses or resumes movement. Stopping zeroes the velocity but
// keeps the current path.
func (n *Navigator) SetStopped(stopped bool) {
	n.stopped = stopped
	if stopped {
		n.velocity = 0
	}
}

func (n *Navigator) IsStopped() bool             { return n.stopped }
func (n *Navigator) SetSpeed(speed float64)      { n.speed = speed }
func (n *Navigator) Position() geo.Point2D       { return n.pos }
func (n *Navigator) OnSurface() bool             { return n.onSurface }
func (n *Navigator) Velocity() float64           { return n.velocity }
func (n *Navigator) AreaClass() layout.RoadClass { return n.area }

// RemainingDistance is the route length still ahead. It is infinite while a
// path is pending.
func (n *Navigator) RemainingDistance() float64 {
	if n.pending {
		return math.Inf(1)
	}
	if !n.hasPath {
		return 0
	}
	rem := n.route[n.leg].Length - n.legPos
	for _, l := range n.route[n.leg+1:] {
		rem += l.Length
	}
	return rem
}

// HasReachedDestination reports arrival: on the network, no pending path,
// within stopping distance, and either out of path or standing still.
func (n *Navigator) HasReachedDestination() bool {
	if !n.onSurface || n.pending {
		return false
	}
	if n.RemainingDistance() > n.stopping {
		return false
	}
	return !n.hasPath || n.velocity == 0
}

// Advance moves the agent dt seconds along its path. A pending path is
// resolved first, which takes the whole step. When the destination is not
// connected to the agent's road, the agent heads straight for it.
func (n *Navigator) Advance(dt float64) {
	if !n.onSurface || n.stopped {
		n.velocity = 0
		return
	}
	if n.pending {
		n.resolvePath()
		return
	}
	if !n.hasPath || dt <= 0 {
		n.velocity = 0
		return
	}

	step := n.speed * dt
	moved := 0.0
	for step > 0 && n.leg < len(n.route) {
		left := n.route[n.leg].Length - n.legPos
		if step < left {
			n.legPos += step
			moved += step
			step = 0
			break
		}
		moved += left
		step -= left
		n.leg++
		n.legPos = 0
	}

	if n.leg < len(n.route) {
		l := n.route[n.leg]
		n.pos = l.From.Lerp(l.To, n.legPos/l.Length)
		n.area = l.Class
	} else {
		n.pos = n.route[len(n.route)-1].To
		n.hasPath = false
	}
	n.velocity = moved / dt
}

func (n *Navigator) resolvePath() {
	n.pending = false
	route, err := n.graph.ShortestPath(n.pos, n.dest)
	if err != nil {
		route = Route{Legs: []Leg{{
			From:   n.pos,
			To:     n.dest,
			Class:  n.area,
			Length: n.pos.Distance(n.dest),
		}}}
	}
	n.route = n.route[:0]
	for _, l := range route.Legs {
		if l.Length > 0 {
			n.route = append(n.route, l)
		}
	}
	n.leg = 0
	n.legPos = 0
	n.hasPath = len(n.route) > 0
	n.velocity = 0
}
