package sim

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/logger"
)

// EventKind names a notable resident transition.
type EventKind string

const (
	EventArrived   EventKind = "arrived"
	EventActivated EventKind = "activated" // building went from empty to occupied
	EventDeparted  EventKind = "departed"
)

// Event is emitted by Step for arrivals, departures and activations.
type Event struct {
	Tick     int       `json:"tick"`
	Kind     EventKind `json:"kind"`
	Resident string    `json:"resident"`
	Building string    `json:"building"`
}

// ResidentView is a read-only picture of one resident.
type ResidentView struct {
	ID             string         `json:"id"`
	Position       geo.Point2D    `json:"position"`
	Representation Representation `json:"representation"`
	Place          string         `json:"place"`
	Target         string         `json:"target"`
}

// Snapshot is the simulation state after a tick.
type Snapshot struct {
	Tick      int            `json:"tick"`
	Elapsed   float64        `json:"elapsed"`
	Residents []ResidentView `json:"residents"`
	Occupancy map[string]int `json:"occupancy"` // building ID -> occupants, occupied buildings only
}

// Stats counts events since the driver started.
type Stats struct {
	Ticks       int `json:"ticks"`
	Arrivals    int `json:"arrivals"`
	Departures  int `json:"departures"`
	Activations int `json:"activations"`
	Waiting     int `json:"waiting"` // resident-ticks spent off the road surface
}

// Driver advances every resident once per tick on a single goroutine, so
// building occupancy is only ever touched from one place at a time.
type Driver struct {
	reg       *layout.Registry
	residents []*Resident
	dt        float64

	mu       sync.RWMutex
	tick     int
	elapsed  float64
	stats    Stats
	snapshot Snapshot
}

// NewDriver creates a driver that advances simulated time by dt per tick.
func NewDriver(reg *layout.Registry, residents []*Resident, dt float64) *Driver {
	d := &Driver{reg: reg, residents: residents, dt: dt}
	d.snapshot = d.capture()
	return d
}

// Residents returns the live agents. Callers must not use them while Run is
// active; read Snapshot instead.
func (d *Driver) Residents() []*Resident { return d.residents }

// Step advances all residents by one tick and returns the events it caused.
func (d *Driver) Step() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.tick++
	d.elapsed += d.dt
	d.stats.Ticks++

	var events []Event
	for _, r := range d.residents {
		switch r.Tick(d.dt) {
		case Arrived:
			b := d.reg.Get(r.Current())
			events = append(events, Event{Tick: d.tick, Kind: EventArrived, Resident: r.ID, Building: b.ID})
			d.stats.Arrivals++
			if r.Activated() {
				events = append(events, Event{Tick: d.tick, Kind: EventActivated, Resident: r.ID, Building: b.ID})
				d.stats.Activations++
				logger.Log.WithFields(logrus.Fields{
					"tick":     d.tick,
					"building": b.ID,
					"light":    b.Light,
				}).Debug("building activated")
			}
		case Departed:
			events = append(events, Event{Tick: d.tick, Kind: EventDeparted, Resident: r.ID, Building: d.reg.Get(r.Current()).ID})
			d.stats.Departures++
		case Waiting:
			d.stats.Waiting++
		}
	}
	d.snapshot = d.capture()
	return events
}

// StepN runs n ticks and returns every event in order.
func (d *Driver) StepN(n int) []Event {
	var all []Event
	for i := 0; i < n; i++ {
		all = append(all, d.Step()...)
	}
	return all
}

// Run steps the simulation every interval of wall time until ctx is done.
// observe, when non-nil, is called after each tick from the driver
// goroutine.
func (d *Driver) Run(ctx context.Context, interval time.Duration, observe func(Snapshot, []Event)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"residents": len(d.residents),
		"interval":  interval.String(),
	}).Info("simulation started")

	for {
		select {
		case <-ctx.Done():
			logger.Log.WithField("ticks", d.Stats().Ticks).Info("simulation stopped")
			return ctx.Err()
		case <-ticker.C:
			events := d.Step()
			if observe != nil {
				observe(d.Snapshot(), events)
			}
		}
	}
}

// Snapshot returns the state captured after the latest tick.
func (d *Driver) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshot
}

// Stats returns the running counters.
func (d *Driver) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats
}

func (d *Driver) capture() Snapshot {
	s := Snapshot{
		Tick:      d.tick,
		Elapsed:   d.elapsed,
		Residents: make([]ResidentView, 0, len(d.residents)),
		Occupancy: map[string]int{},
	}
	for _, r := range d.residents {
		s.Residents = append(s.Residents, ResidentView{
			ID:             r.ID,
			Position:       r.Position(),
			Representation: r.Representation(),
			Place:          r.State().Place.String(),
			Target:         d.reg.Get(r.Target()).ID,
		})
	}
	d.reg.Each(func(_ layout.Handle, b *layout.Building) {
		if b.Current > 0 {
			s.Occupancy[b.ID] = b.Current
		}
	})
	return s
}
