package layout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ChicagoDave/citysim/pkg/spec"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// PlacementContext carries state that spans segments during one placement
// run. A zero value is ready to use.
type PlacementContext struct {
	stadium *Handle
}

// Stadium returns the stadium placed during this run, if any.
func (c *PlacementContext) Stadium() (Handle, bool) {
	if c.stadium == nil {
		return Handle{}, false
	}
	return *c.stadium, true
}

// StadiumPlaced reports whether the one stadium slot is taken.
func (c *PlacementContext) StadiumPlaced() bool {
	return c.stadium != nil
}

// side is +1 for the left of a road (counterclockwise normal) and -1 for
// the right.
type side float64

const (
	sideLeft  side = 1
	sideRight side = -1
)

// PlaceBuildings lines both sides of every road long enough to build on.
//
// A road of length L carries k = min(MaxPerSegment, floor(L/Spacing))
// buildings per side at distances L/(k+1)*i from its start. The first road
// whose length falls in the stadium range while no stadium exists gives its
// whole left side to a single stadium at the road midpoint.
func PlaceBuildings(roads []RoadSegment, cfg spec.BuildingsDef, rng *rand.Rand, ctx *PlacementContext, reg *Registry) *validation.Report {
	report := validation.NewReport()
	skipped := 0
	placed := 0

	for _, road := range roads {
		if road.Length < cfg.MinSegmentLength {
			skipped++
			continue
		}
		n := int(math.Floor(road.Length / cfg.Spacing))
		if n > cfg.MaxPerSegment {
			n = cfg.MaxPerSegment
		}

		reserveLeft := !ctx.StadiumPlaced() &&
			road.Length >= cfg.StadiumMinLength && road.Length <= cfg.StadiumMaxLength
		if reserveLeft {
			if err := placeStadium(road, cfg, ctx, reg); err != nil {
				report.AddError(validation.Result{
					Level:    validation.LevelGeneration,
					Message:  err.Error(),
					SpecPath: "buildings.stadium_min_length",
				})
				reserveLeft = false
			} else {
				placed++
			}
		}

		for i := 1; i <= n; i++ {
			dist := road.Length / float64(n+1) * float64(i)
			if !reserveLeft {
				placeBuilding(road, dist, sideLeft, cfg, rng, reg)
				placed++
			}
			placeBuilding(road, dist, sideRight, cfg, rng, reg)
			placed++
		}
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelGeneration,
		Message: fmt.Sprintf("placed %d buildings (house: %d, office: %d, entertainment: %d, stadium: %d); %d short roads skipped",
			placed, reg.Count(BuildingHouse), reg.Count(BuildingOffice),
			reg.Count(BuildingEntertainment), reg.Count(BuildingStadium), skipped),
	})
	return report
}

func placeBuilding(road RoadSegment, dist float64, s side, cfg spec.BuildingsDef, rng *rand.Rand, reg *Registry) {
	t := rollType(road.Density, cfg, rng)
	roadAnchor := road.PointAt(dist)
	inside := roadAnchor.Add(road.Direction.Perp().Scale(cfg.LateralOffset * float64(s)))

	b := NewBuilding(t, roadAnchor, inside)
	b.RoadID = road.ID
	b.Angle = road.Angle
	if t == BuildingOffice {
		b.VerticalScale = cfg.OfficeScaleMin + rng.Float64()*(cfg.OfficeScaleMax-cfg.OfficeScaleMin)
		b.Height *= b.VerticalScale
	}
	// Non-stadium types cannot be rejected.
	_, _ = reg.Add(b)
}

func placeStadium(road RoadSegment, cfg spec.BuildingsDef, ctx *PlacementContext, reg *Registry) error {
	roadAnchor := road.PointAt(road.Length / 2)
	inside := roadAnchor.Add(road.Direction.Perp().Scale(cfg.StadiumOffset * float64(sideLeft)))

	b := NewBuilding(BuildingStadium, roadAnchor, inside)
	b.RoadID = road.ID
	b.Angle = road.Angle
	h, err := reg.Add(b)
	if err != nil {
		return err
	}
	ctx.stadium = &h
	return nil
}

// rollType draws a building type: sparse roads get mostly houses, dense
// roads mostly offices, and the remainder is entertainment.
func rollType(dens float64, cfg spec.BuildingsDef, rng *rand.Rand) BuildingType {
	r := rng.Float64()
	if dens <= cfg.ResidentialMaxDensity {
		if r <= cfg.HouseShare {
			return BuildingHouse
		}
		return BuildingEntertainment
	}
	if r <= cfg.OfficeShare {
		return BuildingOffice
	}
	return BuildingEntertainment
}
