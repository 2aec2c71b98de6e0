package layout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ChicagoDave/citysim/pkg/density"
	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/spec"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// Tree is a decorative tree placed around a sparse site.
type Tree struct {
	ID       string      `json:"id"`
	Site     int         `json:"site"`
	Position geo.Point2D `json:"position"`
	Rotation float64     `json:"rotation"` // radians
}

// Water is a pond placed on a sparse site.
type Water struct {
	ID       string      `json:"id"`
	Site     int         `json:"site"`
	Position geo.Point2D `json:"position"`
}

// Landscape holds every decoration of a city.
type Landscape struct {
	Trees []Tree  `json:"trees"`
	Water []Water `json:"water"`
}

// Decorate places water and trees on partition sites whose density is at
// most MaxDensity. Water goes on the first qualifying sites until a budget
// drawn from 1..MaxWater runs out; every qualifying site gets a ring of
// TreesMin..TreesMax trees.
func Decorate(field *density.Field, sites []geo.Point2D, frame Frame, cfg spec.LandscapeDef, rng *rand.Rand) (Landscape, *validation.Report) {
	report := validation.NewReport()
	land := Landscape{Trees: []Tree{}, Water: []Water{}}

	budget := 0
	if cfg.MaxWater > 0 {
		budget = 1 + rng.Intn(cfg.MaxWater)
	}

	span := cfg.TreesMax - cfg.TreesMin + 1
	if span < 1 {
		span = 1
	}

	sparse := 0
	for i, site := range sites {
		if field.At(int(site.X), int(site.Z)) > cfg.MaxDensity {
			continue
		}
		sparse++
		center := frame.ToWorld(site)

		if budget > 0 {
			land.Water = append(land.Water, Water{
				ID:       fmt.Sprintf("water_%03d", len(land.Water)),
				Site:     i,
				Position: center,
			})
			budget--
		}

		n := cfg.TreesMin + rng.Intn(span)
		for k := 0; k < n; k++ {
			rot := rng.Float64() * 2 * math.Pi
			dist := cfg.TreeRadiusMin + rng.Float64()*(cfg.TreeRadiusMax-cfg.TreeRadiusMin)
			land.Trees = append(land.Trees, Tree{
				ID:       fmt.Sprintf("tree_%05d", len(land.Trees)),
				Site:     i,
				Position: center.Add(geo.Unit(rot).Scale(dist)),
				Rotation: rot,
			})
		}
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelGeneration,
		Message: fmt.Sprintf("decorated %d sparse sites with %d trees and %d water features",
			sparse, len(land.Trees), len(land.Water)),
	})
	return land, report
}
