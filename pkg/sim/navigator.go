package sim

import (
	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
)

// Navigator moves a single resident over the road surface.
type Navigator interface {
	// Warp places the agent at p. It returns false when p is not on a
	// traversable surface.
	Warp(p geo.Point2D) bool
	// SetDestination requests a path to p; false when the agent is not on
	// a surface.
	SetDestination(p geo.Point2D) bool
	SetStopped(stopped bool)
	IsStopped() bool
	// HasReachedDestination is false while off the surface or while a path
	// is still being computed.
	HasReachedDestination() bool
	// AreaClass is the class of the road currently under the agent.
	AreaClass() layout.RoadClass
	SetSpeed(speed float64)
	Advance(dt float64)
	Position() geo.Point2D
}

// NavigatorFactory returns a fresh navigator for one resident.
type NavigatorFactory func() Navigator
