package layout

import (
	"fmt"

	"github.com/ChicagoDave/citysim/pkg/density"
	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/spec"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// RoadClass is the traffic class of a road segment.
type RoadClass string

const (
	RoadPedestrian RoadClass = "pedestrian"
	RoadNormal     RoadClass = "normal"
	RoadHighway    RoadClass = "highway"
)

// RoadSegment is one partition edge turned into a road.
type RoadSegment struct {
	ID        string      `json:"id"`
	Field     geo.Segment `json:"field"` // endpoints in field cells
	Start     geo.Point2D `json:"start"` // world space
	End       geo.Point2D `json:"end"`
	Length    float64     `json:"length"` // world units
	Direction geo.Point2D `json:"direction"`
	Angle     float64     `json:"angle"` // radians from +X
	Density   float64     `json:"density"`
	Class     RoadClass   `json:"class"`
}

// Midpoint returns the world-space midpoint of the road.
func (r RoadSegment) Midpoint() geo.Point2D {
	return geo.MidPoint(r.Start, r.End)
}

// PointAt returns the world-space point dist units from Start along the road.
func (r RoadSegment) PointAt(dist float64) geo.Point2D {
	return r.Start.Add(r.Direction.Scale(dist))
}

// Classify applies the road class rule: dense areas are pedestrian zones,
// otherwise long segments become highways.
func Classify(dens, length float64, cfg spec.RoadsDef) RoadClass {
	if dens >= cfg.PedestrianDensity {
		return RoadPedestrian
	}
	if length >= cfg.HighwayLength {
		return RoadHighway
	}
	return RoadNormal
}

// BuildRoadNetwork turns every partition edge into a classified road, in
// edge order. Density is read from the grid cell under the field-space
// midpoint.
func BuildRoadNetwork(field *density.Field, edges []geo.Segment, frame Frame, cfg spec.RoadsDef) ([]RoadSegment, *validation.Report) {
	report := validation.NewReport()
	roads := make([]RoadSegment, 0, len(edges))
	counts := map[RoadClass]int{}

	for i, e := range edges {
		mid := e.Midpoint()
		d := field.At(int(mid.X), int(mid.Z))
		start := frame.ToWorld(e.A)
		end := frame.ToWorld(e.B)
		dir := end.Sub(start)
		length := dir.Length()

		road := RoadSegment{
			ID:        fmt.Sprintf("road_%05d", i),
			Field:     e,
			Start:     start,
			End:       end,
			Length:    length,
			Direction: dir.Normalize(),
			Angle:     dir.Angle(),
			Density:   d,
			Class:     Classify(d, length, cfg),
		}
		counts[road.Class]++
		roads = append(roads, road)
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelGeneration,
		Message: fmt.Sprintf("built %d roads (pedestrian: %d, normal: %d, highway: %d)",
			len(roads), counts[RoadPedestrian], counts[RoadNormal], counts[RoadHighway]),
	})
	return roads, report
}
