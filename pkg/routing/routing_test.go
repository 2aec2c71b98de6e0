package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
)

func road(id string, a, b geo.Point2D, class layout.RoadClass) layout.RoadSegment {
	d := b.Sub(a)
	return layout.RoadSegment{
		ID:        id,
		Start:     a,
		End:       b,
		Length:    d.Length(),
		Direction: d.Normalize(),
		Angle:     d.Angle(),
		Class:     class,
	}
}

// squareNetwork is a 10x10 loop plus one isolated road far away. The east
// side is a highway.
func squareNetwork() []layout.RoadSegment {
	return []layout.RoadSegment{
		road("south", geo.Pt(0, 0), geo.Pt(10, 0), layout.RoadNormal),
		road("east", geo.Pt(10, 0), geo.Pt(10, 10), layout.RoadHighway),
		road("north", geo.Pt(10, 10), geo.Pt(0, 10), layout.RoadNormal),
		road("west", geo.Pt(0, 10), geo.Pt(0, 0), layout.RoadPedestrian),
		road("island", geo.Pt(100, 100), geo.Pt(120, 100), layout.RoadNormal),
	}
}

func TestNewGraphMergesEndpoints(t *testing.T) {
	roads := squareNetwork()
	roads[1].Start = geo.Pt(10.01, 0.01)
	g := NewGraph(roads, DefaultTolerance)

	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 2, g.Components())
}

func TestConnectivity(t *testing.T) {
	conn := NewGraph(squareNetwork(), 0).Connectivity()

	assert.Equal(t, []string{"east", "west"}, conn["south"])
	assert.Equal(t, []string{"north", "south"}, conn["east"])
	assert.NotContains(t, conn, "island")
	for id, neighbors := range conn {
		for _, n := range neighbors {
			assert.Contains(t, conn[n], id, "connectivity must be symmetric")
		}
	}
}

func TestLocate(t *testing.T) {
	g := NewGraph(squareNetwork(), 0)
	r, at, frac, dist, ok := g.Locate(geo.Pt(3, -2))
	require.True(t, ok)
	assert.Equal(t, 0, r)
	assert.InDelta(t, 3, at.X, 1e-9)
	assert.InDelta(t, 0.3, frac, 1e-9)
	assert.InDelta(t, 2, dist, 1e-9)

	_, _, _, _, ok = NewGraph(nil, 0).Locate(geo.Origin)
	assert.False(t, ok)
}

func TestShortestPathAroundLoop(t *testing.T) {
	g := NewGraph(squareNetwork(), 0)
	route, err := g.ShortestPath(geo.Pt(2, 0), geo.Pt(9, 10))
	require.NoError(t, err)

	assert.InDelta(t, 19, route.Length, 1e-9)
	require.Len(t, route.Legs, 3)
	assert.Equal(t, "south", route.Legs[0].Road)
	assert.Equal(t, "east", route.Legs[1].Road)
	assert.Equal(t, layout.RoadHighway, route.Legs[1].Class)
	assert.Equal(t, "north", route.Legs[2].Road)
	assert.InDelta(t, 0, route.Legs[2].To.Distance(geo.Pt(9, 10)), 1e-9)
}

func TestShortestPathSameRoad(t *testing.T) {
	g := NewGraph(squareNetwork(), 0)
	route, err := g.ShortestPath(geo.Pt(2, 0), geo.Pt(7, 0))
	require.NoError(t, err)

	require.Len(t, route.Legs, 1)
	assert.InDelta(t, 5, route.Length, 1e-9)
}

func TestShortestPathErrors(t *testing.T) {
	g := NewGraph(squareNetwork(), 0)
	_, err := g.ShortestPath(geo.Pt(2, 0), geo.Pt(110, 100))
	assert.ErrorIs(t, err, ErrUnreachable)

	_, err = NewGraph(nil, 0).ShortestPath(geo.Origin, geo.Pt(1, 1))
	assert.ErrorIs(t, err, ErrNoRoads)
}

func TestNavigatorOffNetwork(t *testing.T) {
	nav := NewNavigator(NewGraph(squareNetwork(), 0), 0.5)

	assert.False(t, nav.Warp(geo.Pt(50, 50)))
	assert.False(t, nav.OnSurface())
	assert.False(t, nav.SetDestination(geo.Pt(0, 0)))
	nav.Advance(1)
	assert.False(t, nav.HasReachedDestination())
}

func TestNavigatorTravelsRoute(t *testing.T) {
	nav := NewNavigator(NewGraph(squareNetwork(), 0), 0.5)
	nav.SetSpeed(5)

	require.True(t, nav.Warp(geo.Pt(2, 0.5)))
	assert.InDelta(t, 0, nav.Position().Distance(geo.Pt(2, 0)), 1e-9)
	assert.Equal(t, layout.RoadNormal, nav.AreaClass())

	require.True(t, nav.SetDestination(geo.Pt(9, 10)))
	assert.False(t, nav.HasReachedDestination(), "path is pending")

	nav.Advance(1) // resolves the path
	assert.InDelta(t, 19, nav.RemainingDistance(), 1e-9)
	assert.False(t, nav.HasReachedDestination())

	nav.Advance(1)
	nav.Advance(1) // 10 units in: on the east highway
	assert.Equal(t, layout.RoadHighway, nav.AreaClass())
	assert.InDelta(t, 5, nav.Velocity(), 1e-9)

	steps := 0
	for !nav.HasReachedDestination() && steps < 10 {
		nav.Advance(1)
		steps++
	}
	assert.Equal(t, 2, steps)
	assert.InDelta(t, 0, nav.Position().Distance(geo.Pt(9, 10)), 1e-9)
}

func TestNavigatorStoppedDoesNotMove(t *testing.T) {
	nav := NewNavigator(NewGraph(squareNetwork(), 0), 0.5)
	nav.SetSpeed(5)
	require.True(t, nav.Warp(geo.Pt(2, 0)))
	require.True(t, nav.SetDestination(geo.Pt(8, 0)))
	nav.Advance(1)

	nav.SetStopped(true)
	nav.Advance(1)
	assert.InDelta(t, 0, nav.Position().Distance(geo.Pt(2, 0)), 1e-9)
	assert.True(t, nav.IsStopped())
}

func TestNavigatorUnreachableGoesStraight(t *testing.T) {
	nav := NewNavigator(NewGraph(squareNetwork(), 0), 0.5)
	nav.SetSpeed(1000)
	require.True(t, nav.Warp(geo.Pt(10, 5)))
	require.True(t, nav.SetDestination(geo.Pt(110, 100)))

	nav.Advance(1)
	nav.Advance(1)
	assert.True(t, nav.HasReachedDestination())
	assert.InDelta(t, 0, nav.Position().Distance(geo.Pt(110, 100)), 1e-9)
}
