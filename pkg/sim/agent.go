// Package sim runs resident agents that commute between the buildings of a
// generated city.
package sim

import (
	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/spec"
)

// Rand is the random source residents draw from.
type Rand interface {
	Float64() float64
}

// Place is where a resident is heading or staying.
type Place int

const (
	AtWork Place = iota
	AtHouse
	AtOther
)

func (p Place) String() string {
	switch p {
	case AtWork:
		return "work"
	case AtHouse:
		return "house"
	case AtOther:
		return "other"
	}
	return "unknown"
}

// State is a resident's current commitment. Leisure names the destination
// and is only meaningful when Place is AtOther.
type State struct {
	Place   Place
	Leisure layout.Handle
}

// Representation is how a resident appears in the world.
type Representation string

const (
	Hidden     Representation = "hidden"
	Vehicle    Representation = "vehicle"
	Pedestrian Representation = "pedestrian"
)

// TickResult tells the driver what a resident did during one tick.
type TickResult int

const (
	Traveling TickResult = iota
	Arrived
	Dwelling
	Departed
	Waiting
)

func (r TickResult) String() string {
	switch r {
	case Traveling:
		return "traveling"
	case Arrived:
		return "arrived"
	case Dwelling:
		return "dwelling"
	case Departed:
		return "departed"
	case Waiting:
		return "waiting"
	}
	return "unknown"
}

// Assignment fixes the buildings a resident uses for its whole life.
type Assignment struct {
	House         layout.Handle
	Office        layout.Handle
	Entertainment layout.Handle
	Stadium       *layout.Handle
}

// Resident commutes between its house, its office and leisure places.
//
// Traveling: the navigator moves toward the target until it reports arrival.
// Dwelling: the navigator is stopped and a timer counts down; on expiry
// the next target is chosen and the resident departs.
type Resident struct {
	ID   string
	Home Assignment

	reg *layout.Registry
	nav Navigator
	rng Rand
	cfg spec.SimulationDef

	state       State
	target      layout.Handle
	current     layout.Handle
	dwell       float64
	lastLeisure bool
	repr        Representation
	lastVehicle bool
	area        layout.RoadClass
	waiting     bool
	activated   bool
}

// NewResident creates a resident at its house and sends it off to work.
func NewResident(id string, home Assignment, reg *layout.Registry, nav Navigator, cfg spec.SimulationDef, rng Rand) *Resident {
	r := &Resident{
		ID:          id,
		Home:        home,
		reg:         reg,
		nav:         nav,
		rng:         rng,
		cfg:         cfg,
		current:     home.House,
		lastVehicle: true,
		area:        layout.RoadNormal,
	}
	nav.SetSpeed(cfg.Speeds.Normal)
	r.goTo(home.Office, State{Place: AtWork})
	return r
}

// Accessors for the driver, snapshots and tests.
func (r *Resident) State() State                   { return r.state }
func (r *Resident) Target() layout.Handle          { return r.target }
func (r *Resident) Current() layout.Handle         { return r.current }
func (r *Resident) Representation() Representation { return r.repr }
func (r *Resident) Dwell() float64                 { return r.dwell }
func (r *Resident) LastTripWasLeisure() bool       { return r.lastLeisure }
func (r *Resident) Position() geo.Point2D          { return r.nav.Position() }

// Activated reports whether the arrival on the latest tick took the
// building from empty to occupied.
func (r *Resident) Activated() bool { return r.activated }

// Tick advances the resident by dt seconds.
func (r *Resident) Tick(dt float64) TickResult {
	r.activated = false
	if r.waiting && !r.depart() {
		return Waiting
	}

	if !r.nav.IsStopped() {
		if !r.nav.HasReachedDestination() {
			if c := r.nav.AreaClass(); c != r.area {
				r.applyArea(c)
			}
			r.nav.Advance(dt)
			return Traveling
		}
		r.arrive()
		return Arrived
	}

	r.dwell -= dt
	if r.dwell <= 0 {
		r.chooseNext()
		return Departed
	}
	return Dwelling
}

func (r *Resident) arrive() {
	r.nav.SetStopped(true)
	r.lastVehicle = r.repr == Vehicle
	r.repr = Hidden
	r.activated = r.reg.Get(r.target).Arrive()
	r.current = r.target
}

// chooseNext leaves the current building and picks the next target.
// From work a resident always goes home; from home it goes out for leisure
// unless its last outing was leisure, otherwise to work; from a leisure
// place it goes home.
func (r *Resident) chooseNext() {
	r.reg.Get(r.current).Leave()

	switch r.state.Place {
	case AtWork, AtOther:
		r.goTo(r.Home.House, State{Place: AtHouse})
	case AtHouse:
		leisure := r.rng.Float64()
		pick := r.rng.Float64()
		if leisure <= r.cfg.LeisureProbability && !r.lastLeisure {
			r.lastLeisure = true
			dest := r.Home.Entertainment
			if pick <= r.cfg.StadiumProbability && r.Home.Stadium != nil {
				dest = *r.Home.Stadium
			}
			r.goTo(dest, State{Place: AtOther, Leisure: dest})
		} else {
			r.lastLeisure = false
			r.goTo(r.Home.Office, State{Place: AtWork})
		}
	}
}

func (r *Resident) goTo(target layout.Handle, st State) {
	r.state = st
	r.target = target
	r.dwell = r.cfg.DwellMin + r.rng.Float64()*(r.cfg.DwellMax-r.cfg.DwellMin)
	r.depart()
}

// depart puts the resident on the road at its current building, heading for
// the target. It returns false while the road is not traversable; the
// resident then waits and retries on the next tick.
func (r *Resident) depart() bool {
	from := r.reg.Get(r.current).RoadAnchor
	to := r.reg.Get(r.target).RoadAnchor
	r.waiting = !r.nav.Warp(from) || !r.nav.SetDestination(to)
	if r.lastVehicle {
		r.repr = Vehicle
	} else {
		r.repr = Pedestrian
	}
	r.nav.SetStopped(false)
	return !r.waiting
}

// applyArea switches speed and representation to match the road class.
func (r *Resident) applyArea(c layout.RoadClass) {
	r.area = c
	switch c {
	case layout.RoadNormal:
		r.nav.SetSpeed(r.cfg.Speeds.Normal)
		r.repr = Vehicle
	case layout.RoadHighway:
		r.nav.SetSpeed(r.cfg.Speeds.Highway)
		r.repr = Vehicle
	case layout.RoadPedestrian:
		r.nav.SetSpeed(r.cfg.Speeds.Pedestrian)
		r.repr = Pedestrian
	}
}
