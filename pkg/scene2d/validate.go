package scene2d

import (
	"fmt"

	"github.com/ChicagoDave/citysim/pkg/validation"
)

// boundsSlack absorbs floating-point drift on roads that run along the border.
const boundsSlack = 1e-6

// Validate performs structural validation on an assembled scene. It checks
// entity IDs, cross references and bounds enclosure.
func Validate(s *Scene2D) *validation.Report {
	r := validation.NewReport()

	if s == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelGeneration,
			Message: "scene is nil",
		})
		return r
	}

	validateEntityIDs(s, r)
	validateReferences(s, r)
	validateBoundsEnclosure(s, r)
	validateOccupancy(s, r)

	return r
}

type entityRef struct {
	id   string
	path string
}

func entities(s *Scene2D) []entityRef {
	var refs []entityRef
	for i, e := range s.Roads {
		refs = append(refs, entityRef{e.ID, fmt.Sprintf("roads[%d].id", i)})
	}
	for i, e := range s.Buildings {
		refs = append(refs, entityRef{e.ID, fmt.Sprintf("buildings[%d].id", i)})
	}
	for i, e := range s.Trees {
		refs = append(refs, entityRef{e.ID, fmt.Sprintf("trees[%d].id", i)})
	}
	for i, e := range s.Water {
		refs = append(refs, entityRef{e.ID, fmt.Sprintf("water[%d].id", i)})
	}
	for i, e := range s.Residents {
		refs = append(refs, entityRef{e.ID, fmt.Sprintf("residents[%d].id", i)})
	}
	return refs
}

func validateEntityIDs(s *Scene2D, r *validation.Report) {
	seen := make(map[string]string)

	for _, e := range entities(s) {
		if e.id == "" {
			r.AddError(validation.Result{
				Level:       validation.LevelGeneration,
				Message:     fmt.Sprintf("entity at %s has empty ID", e.path),
				SpecPath:    e.path,
				ActualValue: "",
				Expected:    "non-empty string",
			})
			continue
		}
		if prev, exists := seen[e.id]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelGeneration,
				Message:     fmt.Sprintf("duplicate entity ID %q at %s and %s", e.id, prev, e.path),
				SpecPath:    e.path,
				ActualValue: e.id,
			})
		}
		seen[e.id] = e.path
	}
}

func validateReferences(s *Scene2D, r *validation.Report) {
	roads := make(map[string]bool, len(s.Roads))
	for _, rd := range s.Roads {
		roads[rd.ID] = true
	}
	buildings := make(map[string]bool, len(s.Buildings))
	stadiums := 0
	for i, b := range s.Buildings {
		buildings[b.ID] = true
		if b.Type == "stadium" {
			stadiums++
		}
		if !roads[b.RoadID] {
			r.AddError(validation.Result{
				Level:       validation.LevelGeneration,
				Message:     fmt.Sprintf("building %q references non-existent road %q", b.ID, b.RoadID),
				SpecPath:    fmt.Sprintf("buildings[%d].road_id", i),
				ActualValue: b.RoadID,
				Expected:    "existing road ID",
			})
		}
	}
	if stadiums > 1 {
		r.AddError(validation.Result{
			Level:       validation.LevelGeneration,
			Message:     fmt.Sprintf("city has %d stadiums", stadiums),
			SpecPath:    "buildings",
			ActualValue: stadiums,
			Expected:    "at most 1",
		})
	}
	for i, res := range s.Residents {
		if !buildings[res.Target] {
			r.AddError(validation.Result{
				Level:       validation.LevelGeneration,
				Message:     fmt.Sprintf("resident %q targets non-existent building %q", res.ID, res.Target),
				SpecPath:    fmt.Sprintf("residents[%d].target", i),
				ActualValue: res.Target,
				Expected:    "existing building ID",
			})
		}
	}
}

func (b Bounds) contains(p [2]float64) bool {
	return p[0] >= b.Min[0]-boundsSlack && p[0] <= b.Max[0]+boundsSlack &&
		p[1] >= b.Min[1]-boundsSlack && p[1] <= b.Max[1]+boundsSlack
}

// validateBoundsEnclosure requires roads inside the world. Buildings and
// decorations are offset from roads and sites, so straying past the border
// is only a warning.
func validateBoundsEnclosure(s *Scene2D, r *validation.Report) {
	for i, rd := range s.Roads {
		if !s.Bounds.contains(rd.Start) || !s.Bounds.contains(rd.End) {
			r.AddError(validation.Result{
				Level:    validation.LevelGeneration,
				Message:  fmt.Sprintf("road %q extends outside the world bounds", rd.ID),
				SpecPath: fmt.Sprintf("roads[%d]", i),
			})
		}
	}

	outside := 0
	for _, b := range s.Buildings {
		if !s.Bounds.contains(b.Position) {
			outside++
		}
	}
	for _, t := range s.Trees {
		if !s.Bounds.contains(t.Position) {
			outside++
		}
	}
	for _, w := range s.Water {
		if !s.Bounds.contains(w.Position) {
			outside++
		}
	}
	if outside > 0 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelGeneration,
			Message:     fmt.Sprintf("%d buildings or decorations lie outside the world bounds", outside),
			SpecPath:    "bounds",
			ActualValue: outside,
		})
	}
}

func validateOccupancy(s *Scene2D, r *validation.Report) {
	for i, b := range s.Buildings {
		if b.Occupancy < 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSimulation,
				Message:     fmt.Sprintf("building %q has negative occupancy", b.ID),
				SpecPath:    fmt.Sprintf("buildings[%d].occupancy", i),
				ActualValue: b.Occupancy,
				Expected:    ">= 0",
			})
		} else if b.Capacity > 0 && b.Occupancy > b.Capacity {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSimulation,
				Message:     fmt.Sprintf("building %q holds %d occupants over a capacity of %d", b.ID, b.Occupancy, b.Capacity),
				SpecPath:    fmt.Sprintf("buildings[%d].occupancy", i),
				ActualValue: b.Occupancy,
				Expected:    fmt.Sprintf("<= %d", b.Capacity),
			})
		}
	}
}
