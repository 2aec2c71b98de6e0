// Package pipeline wires generation, navigation and the resident simulation
// into one runnable world.
package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/logger"
	"github.com/ChicagoDave/citysim/pkg/routing"
	"github.com/ChicagoDave/citysim/pkg/sim"
	"github.com/ChicagoDave/citysim/pkg/spec"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// World is a generated city with its residents ready to simulate.
type World struct {
	Spec   *spec.CitySpec
	City   *layout.City
	Graph  *routing.Graph
	Driver *sim.Driver
	Report *validation.Report
}

// Build generates the city described by s and populates it. The returned
// report merges the generation and population reports.
func Build(s *spec.CitySpec) (*World, error) {
	city, report, err := layout.Generate(s, geo.VoronoiPartitioner{})
	if err != nil {
		return nil, fmt.Errorf("generating city: %w", err)
	}

	graph := routing.NewGraph(city.Roads, routing.DefaultTolerance)
	newNav := func() sim.Navigator {
		return routing.NewNavigator(graph, s.Simulation.StoppingDistance)
	}
	residents, popReport := sim.Populate(city.Buildings, s.Simulation, sim.NewRand(s.Seed), newNav)
	report.Merge(popReport)

	logger.Log.WithFields(logrus.Fields{
		"city":        city.ID,
		"graph_nodes": graph.NodeCount(),
		"residents":   len(residents),
	}).Info("world ready")

	return &World{
		Spec:   s,
		City:   city,
		Graph:  graph,
		Driver: sim.NewDriver(city.Buildings, residents, s.Simulation.TickSeconds),
		Report: report,
	}, nil
}

// Load reads city.yaml from projectPath, or uses the default configuration
// when projectPath is empty.
func Load(projectPath string) (*spec.CitySpec, error) {
	if projectPath == "" {
		return spec.Default(), nil
	}
	s, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}
	return s, nil
}
