package sim

import (
	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/spec"
)

// fakeNav reaches any destination after travelTicks advances.
type fakeNav struct {
	onSurface   bool
	stopped     bool
	speed       float64
	pos, dest   geo.Point2D
	advances    int
	travelTicks int
	area        layout.RoadClass
	warps       int
}

func newFakeNav(travelTicks int) *fakeNav {
	return &fakeNav{onSurface: true, travelTicks: travelTicks, area: layout.RoadNormal}
}

func (f *fakeNav) Warp(p geo.Point2D) bool {
	f.warps++
	if !f.onSurface {
		return false
	}
	f.pos = p
	f.advances = 0
	return true
}

func (f *fakeNav) SetDestination(p geo.Point2D) bool {
	if !f.onSurface {
		return false
	}
	f.dest = p
	f.advances = 0
	return true
}

func (f *fakeNav) SetStopped(s bool)           { f.stopped = s }
func (f *fakeNav) IsStopped() bool             { return f.stopped }
func (f *fakeNav) AreaClass() layout.RoadClass { return f.area }
func (f *fakeNav) SetSpeed(s float64)          { f.speed = s }
func (f *fakeNav) Position() geo.Point2D       { return f.pos }
func (f *fakeNav) HasReachedDestination() bool { return f.onSurface && f.advances >= f.travelTicks }

func (f *fakeNav) Advance(float64) {
	if f.stopped || !f.onSurface {
		return
	}
	f.advances++
	if f.advances >= f.travelTicks {
		f.pos = f.dest
	}
}

// scripted returns its values in order, then repeats the last one.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
	}
	s.i++
	return v
}

func constRand(v float64) *scripted { return &scripted{vals: []float64{v}} }

type town struct {
	reg     *layout.Registry
	home    Assignment
	stadium layout.Handle
}

// newTown registers one building of each type along the X axis.
func newTown(withStadium bool) town {
	reg := layout.NewRegistry()
	add := func(t layout.BuildingType, x float64) layout.Handle {
		h, err := reg.Add(layout.NewBuilding(t, geo.Pt(x, 0), geo.Pt(x, 2.1)))
		if err != nil {
			panic(err)
		}
		return h
	}
	tw := town{reg: reg}
	tw.home = Assignment{
		House:         add(layout.BuildingHouse, 0),
		Office:        add(layout.BuildingOffice, 100),
		Entertainment: add(layout.BuildingEntertainment, 50),
	}
	if withStadium {
		tw.stadium = add(layout.BuildingStadium, 200)
		tw.home.Stadium = &tw.stadium
	}
	return tw
}

// fixedDwell returns the default simulation config with a constant dwell.
func fixedDwell(d float64) spec.SimulationDef {
	cfg := spec.Default().Simulation
	cfg.DwellMin = d
	cfg.DwellMax = d
	return cfg
}
