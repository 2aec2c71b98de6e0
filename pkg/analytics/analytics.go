// Package analytics summarizes a generated city and its simulation.
package analytics

import (
	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/routing"
	"github.com/ChicagoDave/citysim/pkg/sim"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// Summarize computes road, building, landscape and occupancy figures for
// city. When d is non-nil the resident count, stats and occupancy come from
// the driver's latest snapshot; otherwise occupancy is read from the
// registry. Returns the summary and a validation report.
func Summarize(city *layout.City, d *sim.Driver) (*Summary, *validation.Report) {
	report := validation.NewReport()

	s := &Summary{
		CityID:          city.ID,
		Seed:            city.Seed,
		Sites:           len(city.Sites),
		RoadsByClass:    make(map[string]int),
		LengthByClass:   make(map[string]float64),
		BuildingsByType: make(map[string]int),
		Trees:           len(city.Landscape.Trees),
		Water:           len(city.Landscape.Water),
		Occupancy:       Occupancy{ByType: make(map[string]int)},
	}

	// 1. Roads
	s.Roads = len(city.Roads)
	for _, r := range city.Roads {
		s.RoadsByClass[string(r.Class)]++
		s.LengthByClass[string(r.Class)] += r.Length
		s.RoadLength += r.Length
	}
	if s.Roads > 0 {
		s.RoadComponents = routing.NewGraph(city.Roads, routing.DefaultTolerance).Components()
	}

	// 2. Buildings and occupancy
	var occupancy map[string]int
	if d != nil {
		snap := d.Snapshot()
		occupancy = snap.Occupancy
		s.Residents = len(snap.Residents)
		stats := d.Stats()
		s.Sim = &stats
	}
	if city.Buildings != nil {
		city.Buildings.Each(func(_ layout.Handle, b *layout.Building) {
			s.Buildings++
			s.BuildingsByType[string(b.Type)]++
			s.Capacity += b.Capacity

			var occ int
			if d != nil {
				occ = occupancy[b.ID]
			} else {
				occ = b.Current
			}
			if occ > 0 {
				s.Occupancy.Occupied++
				s.Occupancy.Lit++
			}
			s.Occupancy.Total += occ
			s.Occupancy.ByType[string(b.Type)] += occ
		})
		_, s.HasStadium = city.Buildings.Stadium()
	}

	validateSummary(s, report)

	return s, report
}
