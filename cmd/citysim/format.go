package main

import (
	"fmt"
	"sort"

	"github.com/ChicagoDave/citysim/pkg/analytics"
	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSummary(s *analytics.Summary, tickSeconds float64) {
	fmt.Printf("City %s (seed %d)\n", s.CityID, s.Seed)
	fmt.Println("==========================================")
	fmt.Println()

	fmt.Printf("%-14s %8s %12s\n", "Road class", "Count", "Length")
	fmt.Printf("%-14s %8s %12s\n", "--------------", "--------", "------------")
	for _, class := range sortedKeys(s.RoadsByClass) {
		fmt.Printf("%-14s %8d %12.1f\n", class, s.RoadsByClass[class], s.LengthByClass[class])
	}
	fmt.Printf("%-14s %8d %12.1f\n", "TOTAL", s.Roads, s.RoadLength)
	fmt.Printf("  Connected components:  %d\n", s.RoadComponents)
	fmt.Println()

	fmt.Printf("%-14s %8s %10s\n", "Building", "Count", "Occupants")
	fmt.Printf("%-14s %8s %10s\n", "--------------", "--------", "----------")
	for _, t := range layout.BuildingTypes {
		fmt.Printf("%-14s %8d %10d\n", t, s.BuildingsByType[string(t)], s.Occupancy.ByType[string(t)])
	}
	fmt.Printf("%-14s %8d %10d\n", "TOTAL", s.Buildings, s.Occupancy.Total)
	fmt.Printf("  Capacity:              %d\n", s.Capacity)
	fmt.Printf("  Lit buildings:         %d\n", s.Occupancy.Lit)
	fmt.Println()

	fmt.Printf("  Trees:                 %d\n", s.Trees)
	fmt.Printf("  Ponds:                 %d\n", s.Water)
	fmt.Printf("  Residents:             %d\n", s.Residents)

	if s.Sim != nil {
		fmt.Println()
		fmt.Println("Simulation")
		fmt.Println("----------")
		fmt.Printf("  Ticks:                 %d (%.1fs simulated)\n", s.Sim.Ticks, float64(s.Sim.Ticks)*tickSeconds)
		fmt.Printf("  Arrivals:              %d\n", s.Sim.Arrivals)
		fmt.Printf("  Departures:            %d\n", s.Sim.Departures)
		fmt.Printf("  Activations:           %d\n", s.Sim.Activations)
		fmt.Printf("  Waiting ticks:         %d\n", s.Sim.Waiting)
		fmt.Printf("  In transit:            %d\n", s.Residents-s.Occupancy.Total)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
