package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
)

func TestNewResidentHeadsToWork(t *testing.T) {
	tw := newTown(false)
	nav := newFakeNav(3)
	r := NewResident("r", tw.home, tw.reg, nav, fixedDwell(10), constRand(0.5))

	assert.Equal(t, AtWork, r.State().Place)
	assert.Equal(t, tw.home.Office, r.Target())
	assert.Equal(t, tw.home.House, r.Current())
	assert.Equal(t, Vehicle, r.Representation())
	assert.Equal(t, geo.Pt(0, 0), nav.pos, "warped to the house road anchor")
	assert.Equal(t, geo.Pt(100, 0), nav.dest)
	assert.False(t, nav.IsStopped())
	assert.Equal(t, 5.5, nav.speed)
	assert.Equal(t, 10.0, r.Dwell())
}

func TestDwellDrawnFromRange(t *testing.T) {
	tw := newTown(false)
	cfg := fixedDwell(8)
	cfg.DwellMax = 12
	r := NewResident("r", tw.home, tw.reg, newFakeNav(1), cfg, constRand(0.25))
	assert.InDelta(t, 9, r.Dwell(), 1e-12)
}

// With a fixed dwell of 10 and dt 1, a resident that needs three advances
// to travel arrives on tick 4, dwells nine ticks and departs on tick 14.
func TestCommuteTiming(t *testing.T) {
	tw := newTown(false)
	r := NewResident("r", tw.home, tw.reg, newFakeNav(3), fixedDwell(10), constRand(0.9))
	office := tw.reg.Get(tw.home.Office)

	for tick := 1; tick <= 3; tick++ {
		require.Equal(t, Traveling, r.Tick(1), "tick %d", tick)
	}
	require.Equal(t, Arrived, r.Tick(1))
	assert.Equal(t, Hidden, r.Representation())
	assert.Equal(t, tw.home.Office, r.Current())
	assert.Equal(t, 1, office.Current)
	assert.Equal(t, 7.0, office.Light)

	for tick := 5; tick <= 13; tick++ {
		require.Equal(t, Dwelling, r.Tick(1), "tick %d", tick)
	}
	require.Equal(t, Departed, r.Tick(1))
	assert.Equal(t, AtHouse, r.State().Place)
	assert.Equal(t, tw.home.House, r.Target())
	assert.Equal(t, 0, office.Current)
	assert.Equal(t, 0.0, office.Light)
	assert.Equal(t, Vehicle, r.Representation())
}

// destinations runs a resident that arrives instantly and dwells one tick,
// recording every target it departs for.
func destinations(r *Resident, trips int) []layout.Handle {
	out := []layout.Handle{r.Target()}
	for len(out) < trips {
		if r.Tick(1) == Departed {
			out = append(out, r.Target())
		}
	}
	return out
}

func TestLeisureNeverTwiceInARow(t *testing.T) {
	tw := newTown(false)
	h := tw.home
	// Always wants leisure; there is no stadium to roll.
	r := NewResident("r", h, tw.reg, newFakeNav(0), fixedDwell(1), constRand(0))
	got := destinations(r, 9)
	want := []layout.Handle{
		h.Office, h.House, h.Entertainment, h.House,
		h.Office, h.House, h.Entertainment, h.House, h.Office,
	}
	assert.Equal(t, want, got)
}

func TestStadiumChoice(t *testing.T) {
	tw := newTown(true)
	r := NewResident("r", tw.home, tw.reg, newFakeNav(0), fixedDwell(1), constRand(0.05))
	got := destinations(r, 3)
	assert.Equal(t, tw.stadium, got[2])
	assert.Equal(t, AtOther, r.State().Place)
	assert.Equal(t, tw.stadium, r.State().Leisure)
}

func TestStadiumFallsBackToEntertainment(t *testing.T) {
	tw := newTown(false)
	r := NewResident("r", tw.home, tw.reg, newFakeNav(0), fixedDwell(1), constRand(0.05))
	got := destinations(r, 3)
	assert.Equal(t, tw.home.Entertainment, got[2])
}

func TestHouseToWorkWhenNotLeisure(t *testing.T) {
	tw := newTown(true)
	r := NewResident("r", tw.home, tw.reg, newFakeNav(0), fixedDwell(1), constRand(0.6))
	got := destinations(r, 5)
	assert.Equal(t, []layout.Handle{tw.home.Office, tw.home.House, tw.home.Office, tw.home.House, tw.home.Office}, got)
	assert.False(t, r.LastTripWasLeisure())
}

func TestAreaChangesSpeedAndRepresentation(t *testing.T) {
	tw := newTown(false)
	nav := newFakeNav(5)
	r := NewResident("r", tw.home, tw.reg, nav, fixedDwell(1), constRand(0.5))

	nav.area = layout.RoadHighway
	r.Tick(1)
	assert.Equal(t, 7.0, nav.speed)
	assert.Equal(t, Vehicle, r.Representation())

	nav.area = layout.RoadPedestrian
	r.Tick(1)
	assert.Equal(t, 3.0, nav.speed)
	assert.Equal(t, Pedestrian, r.Representation())

	nav.area = layout.RoadNormal
	r.Tick(1)
	assert.Equal(t, 5.5, nav.speed)
	assert.Equal(t, Vehicle, r.Representation())
}

func TestPedestrianRememberedAcrossStops(t *testing.T) {
	tw := newTown(false)
	nav := newFakeNav(1)
	nav.area = layout.RoadPedestrian
	r := NewResident("r", tw.home, tw.reg, nav, fixedDwell(1), constRand(0.9))

	require.Equal(t, Traveling, r.Tick(1))
	require.Equal(t, Arrived, r.Tick(1))
	assert.Equal(t, Hidden, r.Representation())
	require.Equal(t, Departed, r.Tick(1))
	assert.Equal(t, Pedestrian, r.Representation())
}

func TestWaitingWhileOffSurface(t *testing.T) {
	tw := newTown(false)
	nav := newFakeNav(1)
	nav.onSurface = false
	r := NewResident("r", tw.home, tw.reg, nav, fixedDwell(1), constRand(0.5))

	for i := 0; i < 5; i++ {
		require.Equal(t, Waiting, r.Tick(1))
	}
	assert.Equal(t, 6, nav.warps, "one warp at spawn plus one retry per tick")
	assert.Equal(t, 0, tw.reg.Get(tw.home.Office).Current)

	nav.onSurface = true
	assert.Equal(t, Traveling, r.Tick(1))
	assert.Equal(t, Arrived, r.Tick(1))
}

func TestTickResultString(t *testing.T) {
	assert.Equal(t, "departed", Departed.String())
	assert.Equal(t, "waiting", Waiting.String())
	assert.Equal(t, "unknown", TickResult(99).String())
	assert.Equal(t, "house", AtHouse.String())
}

// Only the arrival that lights an empty building is flagged, and the flag
// clears on the following tick.
func TestArrivalActivation(t *testing.T) {
	tw := newTown(false)
	a := NewResident("a", tw.home, tw.reg, newFakeNav(1), fixedDwell(10), constRand(0.9))
	b := NewResident("b", tw.home, tw.reg, newFakeNav(1), fixedDwell(10), constRand(0.9))

	require.Equal(t, Traveling, a.Tick(1))
	require.Equal(t, Arrived, a.Tick(1))
	assert.True(t, a.Activated())

	require.Equal(t, Traveling, b.Tick(1))
	require.Equal(t, Arrived, b.Tick(1))
	assert.False(t, b.Activated(), "office already lit")
	assert.Equal(t, 2, tw.reg.Get(tw.home.Office).Current)

	require.Equal(t, Dwelling, a.Tick(1))
	assert.False(t, a.Activated())
}

// Both house rolls are drawn on every decision, even when the first one
// already sends the resident to work.
func TestScriptedDecisions(t *testing.T) {
	tw := newTown(true)
	// Draw order: spawn dwell, work->house dwell, house rolls (leisure
	// fails, stadium unused) and dwell, work->house dwell, house rolls
	// (leisure, no stadium) and dwell.
	rng := &scripted{vals: []float64{0, 0, 0.7, 0, 0, 0, 0.2, 0.5, 0}}
	r := NewResident("r", tw.home, tw.reg, newFakeNav(0), fixedDwell(1), rng)
	got := destinations(r, 5)

	h := tw.home
	assert.Equal(t, []layout.Handle{h.Office, h.House, h.Office, h.House, h.Entertainment}, got)
	assert.Equal(t, 9, rng.i)
}
