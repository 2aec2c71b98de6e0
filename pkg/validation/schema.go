package validation

import (
	"fmt"

	"github.com/ChicagoDave/citysim/pkg/spec"
)

// ValidateSchema performs Level 1 (schema) validation on a parsed CitySpec.
// It checks structural correctness before any generation runs.
func ValidateSchema(s *spec.CitySpec) *Report {
	r := NewReport()

	validateField(s, r)
	validateSites(s, r)
	validateRoads(s, r)
	validateBuildings(s, r)
	validateLandscape(s, r)
	validateSimulation(s, r)

	return r
}

func validateField(s *spec.CitySpec, r *Report) {
	f := s.Field
	if f.Width <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "field width must be greater than 0",
			SpecPath:    "field.width",
			ActualValue: f.Width,
			Expected:    "> 0",
		})
	}
	if f.Height <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "field height must be greater than 0",
			SpecPath:    "field.height",
			ActualValue: f.Height,
			Expected:    "> 0",
		})
	}
	if f.WorldSize <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "world size must be greater than 0",
			SpecPath:    "field.world_size",
			ActualValue: f.WorldSize,
			Expected:    "> 0",
		})
	}
	if f.FrequencyX == 0 && f.FrequencyY == 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "both noise frequencies are 0; the density field will be flat",
			SpecPath:    "field.frequency_x",
			Suggestions: []string{"Use a small frequency such as 0.02 for city-scale variation"},
		})
	}
}

func validateSites(s *spec.CitySpec, r *Report) {
	if s.Sites.Count < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "site count must be non-negative",
			SpecPath:    "sites.count",
			ActualValue: s.Sites.Count,
			Expected:    ">= 0",
		})
	} else if s.Sites.Count == 0 {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "site count is 0; the city will have no roads or buildings",
			SpecPath: "sites.count",
		})
	}
	checkUnit(r, "sites.accept_density", s.Sites.AcceptDensity)
	if s.Sites.MaxRetries < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "max retries must be non-negative",
			SpecPath:    "sites.max_retries",
			ActualValue: s.Sites.MaxRetries,
			Expected:    ">= 0",
		})
	}
}

func validateRoads(s *spec.CitySpec, r *Report) {
	checkUnit(r, "roads.pedestrian_density", s.Roads.PedestrianDensity)
	checkNonNegative(r, "roads.highway_length", s.Roads.HighwayLength)
}

func validateBuildings(s *spec.CitySpec, r *Report) {
	b := s.Buildings
	checkNonNegative(r, "buildings.min_segment_length", b.MinSegmentLength)
	if b.Spacing <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "building spacing must be greater than 0",
			SpecPath:    "buildings.spacing",
			ActualValue: b.Spacing,
			Expected:    "> 0",
		})
	}
	if b.MaxPerSegment < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "max buildings per segment must be non-negative",
			SpecPath:    "buildings.max_per_segment",
			ActualValue: b.MaxPerSegment,
			Expected:    ">= 0",
		})
	}
	checkUnit(r, "buildings.residential_max_density", b.ResidentialMaxDensity)
	checkUnit(r, "buildings.house_share", b.HouseShare)
	checkUnit(r, "buildings.office_share", b.OfficeShare)
	checkNonNegative(r, "buildings.lateral_offset", b.LateralOffset)
	checkNonNegative(r, "buildings.stadium_offset", b.StadiumOffset)
	checkRange(r, "buildings.stadium_min_length", "buildings.stadium_max_length", b.StadiumMinLength, b.StadiumMaxLength)
	checkRange(r, "buildings.office_scale_min", "buildings.office_scale_max", b.OfficeScaleMin, b.OfficeScaleMax)
	if b.OfficeScaleMin <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "office scale must be greater than 0",
			SpecPath:    "buildings.office_scale_min",
			ActualValue: b.OfficeScaleMin,
			Expected:    "> 0",
		})
	}
}

func validateLandscape(s *spec.CitySpec, r *Report) {
	l := s.Landscape
	checkUnit(r, "landscape.max_density", l.MaxDensity)
	if l.TreesMin < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "minimum tree count must be non-negative",
			SpecPath:    "landscape.trees_min",
			ActualValue: l.TreesMin,
			Expected:    ">= 0",
		})
	}
	checkRange(r, "landscape.trees_min", "landscape.trees_max", float64(l.TreesMin), float64(l.TreesMax))
	checkNonNegative(r, "landscape.tree_radius_min", l.TreeRadiusMin)
	checkRange(r, "landscape.tree_radius_min", "landscape.tree_radius_max", l.TreeRadiusMin, l.TreeRadiusMax)
	if l.MaxWater < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "max water features must be non-negative",
			SpecPath:    "landscape.max_water",
			ActualValue: l.MaxWater,
			Expected:    ">= 0",
		})
	}
}

func validateSimulation(s *spec.CitySpec, r *Report) {
	sim := s.Simulation
	checkUnit(r, "simulation.resident_probability", sim.ResidentProbability)
	checkUnit(r, "simulation.leisure_probability", sim.LeisureProbability)
	checkUnit(r, "simulation.stadium_probability", sim.StadiumProbability)
	checkNonNegative(r, "simulation.dwell_min", sim.DwellMin)
	checkRange(r, "simulation.dwell_min", "simulation.dwell_max", sim.DwellMin, sim.DwellMax)
	checkNonNegative(r, "simulation.stopping_distance", sim.StoppingDistance)
	if sim.TickSeconds <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "tick interval must be greater than 0",
			SpecPath:    "simulation.tick_seconds",
			ActualValue: sim.TickSeconds,
			Expected:    "> 0",
		})
	}

	speeds := []struct {
		name  string
		value float64
	}{
		{"normal", sim.Speeds.Normal},
		{"highway", sim.Speeds.Highway},
		{"pedestrian", sim.Speeds.Pedestrian},
	}
	for _, sp := range speeds {
		if sp.value <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s speed must be greater than 0", sp.name),
				SpecPath:    "simulation.speeds." + sp.name,
				ActualValue: sp.value,
				Expected:    "> 0",
			})
		}
	}
}

// checkUnit reports an error when v is outside [0,1].
func checkUnit(r *Report, path string, v float64) {
	if v < 0 || v > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be within [0,1]", path),
			SpecPath:    path,
			ActualValue: v,
			Expected:    "0..1",
		})
	}
}

func checkNonNegative(r *Report, path string, v float64) {
	if v < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be non-negative", path),
			SpecPath:    path,
			ActualValue: v,
			Expected:    ">= 0",
		})
	}
}

func checkRange(r *Report, minPath, maxPath string, lo, hi float64) {
	if lo > hi {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s (%.2f) exceeds %s (%.2f)", minPath, lo, maxPath, hi),
			SpecPath:    minPath,
			ActualValue: lo,
			Expected:    fmt.Sprintf("<= %.2f", hi),
			Suggestions: []string{fmt.Sprintf("Swap %s and %s", minPath, maxPath)},
		})
	}
}
