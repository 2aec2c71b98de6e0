package analytics

import (
	"fmt"

	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// validateSummary reports cities that cannot support the full resident
// routine.
func validateSummary(s *Summary, report *validation.Report) {
	validateBuildingMix(s, report)
	validateRoadNetwork(s, report)
	validateOccupancy(s, report)
	msg := fmt.Sprintf("%d roads (%.0f units), %d buildings, %d trees, %d ponds, %d residents",
		s.Roads, s.RoadLength, s.Buildings, s.Trees, s.Water, s.Residents)
	report.AddInfo(validation.Result{
		Level:   validation.LevelGeneration,
		Message: msg,
	})
}

func validateBuildingMix(s *Summary, report *validation.Report) {
	if s.Buildings == 0 {
		return
	}
	missing := []struct {
		t      layout.BuildingType
		reason string
		fix    string
	}{
		{layout.BuildingOffice, "residents have nowhere to work", "Raise buildings.residential_max_density or buildings.office_share"},
		{layout.BuildingEntertainment, "residents have no leisure destination", "Lower buildings.office_share"},
		{layout.BuildingHouse, "nobody lives in the city", "Raise buildings.residential_max_density"},
	}
	for _, m := range missing {
		if s.BuildingsByType[string(m.t)] > 0 {
			continue
		}
		report.AddWarning(validation.Result{
			Level:       validation.LevelGeneration,
			Message:     fmt.Sprintf("city has no %s buildings; %s", m.t, m.reason),
			SpecPath:    "buildings",
			ActualValue: 0,
			Expected:    fmt.Sprintf(">= 1 %s", m.t),
			Suggestions: []string{m.fix},
		})
	}
	if !s.HasStadium {
		report.AddWarning(validation.Result{
			Level:       validation.LevelGeneration,
			Message:     "city has no stadium; stadium visits fall back to entertainment",
			SpecPath:    "buildings.stadium_min_length",
			Suggestions: []string{"Widen the buildings.stadium_min_length..stadium_max_length range"},
		})
	}
}

func validateRoadNetwork(s *Summary, report *validation.Report) {
	if s.RoadComponents > 1 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelGeneration,
			Message:     fmt.Sprintf("road network is split into %d disconnected components", s.RoadComponents),
			SpecPath:    "roads",
			ActualValue: s.RoadComponents,
			Expected:    "1",
		})
	}
}

func validateOccupancy(s *Summary, report *validation.Report) {
	if s.Sim == nil {
		return
	}
	if s.Occupancy.Total > s.Residents {
		report.AddError(validation.Result{
			Level:        validation.LevelSimulation,
			Message:      fmt.Sprintf("%d occupants recorded for %d residents", s.Occupancy.Total, s.Residents),
			SpecPath:     "simulation",
			ActualValue:  s.Occupancy.Total,
			Expected:     fmt.Sprintf("<= %d", s.Residents),
			ConflictWith: "each resident occupies at most one building",
		})
	}
}
