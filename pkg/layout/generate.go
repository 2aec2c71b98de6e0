// Package layout turns a density field and its partition into a city:
// classified roads, buildings along them and landscape decorations.
package layout

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ChicagoDave/citysim/pkg/density"
	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/logger"
	"github.com/ChicagoDave/citysim/pkg/spec"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// Partitioner subdivides a field-space rectangle around a set of sites and
// reports the boundary segments between neighbouring cells. Cells are
// unweighted: site density only biases where sites land.
type Partitioner interface {
	Partition(sites []geo.Point2D, bounds geo.Rect) (geo.Partition, error)
}

// City is the output of one generation run.
type City struct {
	ID        string         `json:"id"`
	Seed      int64          `json:"seed"`
	Frame     Frame          `json:"frame"`
	Field     *density.Field `json:"-"`
	Sites     []density.Site `json:"sites"`
	Partition geo.Partition  `json:"partition"`
	Roads     []RoadSegment  `json:"roads"`
	Buildings *Registry      `json:"-"`
	Landscape Landscape      `json:"landscape"`
}

// CityID derives a stable identifier from the seed so the same
// configuration always names the same city.
func CityID(seed int64) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("citysim/%d", seed))).String()
}

// Generate runs the full pipeline: field, sites, partition, roads,
// buildings, landscape. All randomness comes from one source seeded with
// s.Seed, so equal specs give equal cities. Configuration errors are
// returned as *validation.ConfigError before any work is done.
func Generate(s *spec.CitySpec, p Partitioner) (*City, *validation.Report, error) {
	report := validation.ValidateSchema(s)
	if err := report.Err(); err != nil {
		return nil, report, err
	}

	log := logger.Log.WithFields(logrus.Fields{
		"seed":  s.Seed,
		"sites": s.Sites.Count,
	})

	field, err := density.NewField(s.Field)
	if err != nil {
		return nil, report, fmt.Errorf("building density field: %w", err)
	}
	rng := rand.New(rand.NewSource(s.Seed))
	frame := NewFrame(s.Field)

	city := &City{
		ID:        CityID(s.Seed),
		Seed:      s.Seed,
		Frame:     frame,
		Field:     field,
		Partition: geo.Partition{Edges: []geo.Segment{}, Sites: []geo.Point2D{}},
		Buildings: NewRegistry(),
	}

	city.Sites = density.NewSampler(field, s.Sites, rng).Generate(s.Sites.Count)
	log.WithField("accepted", len(city.Sites)).Debug("sampled sites")

	if len(city.Sites) > 0 {
		bounds := geo.NewRect(float64(field.Width()), float64(field.Height()))
		part, err := p.Partition(density.Points(city.Sites), bounds)
		if err != nil {
			return nil, report, fmt.Errorf("partitioning %d sites: %w", len(city.Sites), err)
		}
		city.Partition = part
	}

	roads, roadReport := BuildRoadNetwork(field, city.Partition.Edges, frame, s.Roads)
	report.Merge(roadReport)
	city.Roads = roads

	var ctx PlacementContext
	report.Merge(PlaceBuildings(roads, s.Buildings, rng, &ctx, city.Buildings))

	land, landReport := Decorate(field, city.Partition.Sites, frame, s.Landscape, rng)
	report.Merge(landReport)
	city.Landscape = land

	log.WithFields(logrus.Fields{
		"roads":     len(city.Roads),
		"buildings": city.Buildings.Total(),
		"stadium":   ctx.StadiumPlaced(),
		"trees":     len(land.Trees),
		"water":     len(land.Water),
	}).Info("city generated")

	return city, report, nil
}
