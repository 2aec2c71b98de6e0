package scene2d

import (
	"time"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/sim"
)

// Assemble converts a generated city into a 2D scene. When snap is non-nil
// the scene also carries resident positions and the occupancy of that tick;
// otherwise occupancy is read from the registry.
func Assemble(city *layout.City, snap *sim.Snapshot) *Scene2D {
	s := &Scene2D{
		Metadata:  assembleMetadata(city, snap),
		Bounds:    assembleBounds(city.Frame.WorldBounds()),
		Sites:     assembleSites(city),
		Roads:     assembleRoads(city.Roads),
		Buildings: assembleBuildings(city.Buildings, snap),
		Trees:     assembleTrees(city.Landscape.Trees),
		Water:     assembleWater(city.Landscape.Water),
		Residents: assembleResidents(snap),
	}
	s.Summary = summarize(s)
	return s
}

func assembleMetadata(city *layout.City, snap *sim.Snapshot) Metadata {
	tick := 0
	if snap != nil {
		tick = snap.Tick
	}
	return Metadata{
		CityID:      city.ID,
		Seed:        city.Seed,
		WorldSize:   city.Frame.WorldSize,
		Tick:        tick,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func assembleBounds(r geo.Rect) Bounds {
	return Bounds{Min: coord(r.Min), Max: coord(r.Max)}
}

func assembleSites(city *layout.City) [][2]float64 {
	pts := make([]geo.Point2D, len(city.Sites))
	for i, site := range city.Sites {
		pts[i] = city.Frame.ToWorld(site.Point)
	}
	return pointsToCoords(pts)
}

func assembleRoads(roads []layout.RoadSegment) []Road2D {
	out := make([]Road2D, 0, len(roads))
	for _, r := range roads {
		out = append(out, Road2D{
			ID:      r.ID,
			Start:   coord(r.Start),
			End:     coord(r.End),
			Length:  r.Length,
			Class:   string(r.Class),
			Density: r.Density,
		})
	}
	return out
}

func assembleBuildings(reg *layout.Registry, snap *sim.Snapshot) []Building2D {
	out := []Building2D{}
	if reg == nil {
		return out
	}
	reg.Each(func(_ layout.Handle, b *layout.Building) {
		// Current is owned by the simulation goroutine once a snapshot exists.
		var occ int
		if snap != nil {
			occ = snap.Occupancy[b.ID]
		} else {
			occ = b.Current
		}
		light := 0.0
		if occ > 0 {
			light = b.Type.LightIntensity()
		}
		out = append(out, Building2D{
			ID:         b.ID,
			Type:       string(b.Type),
			RoadID:     b.RoadID,
			Position:   coord(b.InsideAnchor),
			RoadAnchor: coord(b.RoadAnchor),
			Rotation:   b.Angle,
			Height:     b.Height,
			Capacity:   b.Capacity,
			Occupancy:  occ,
			Light:      light,
			Residents:  b.Residents,
		})
	})
	return out
}

func assembleTrees(trees []layout.Tree) []Tree2D {
	out := make([]Tree2D, 0, len(trees))
	for _, t := range trees {
		out = append(out, Tree2D{ID: t.ID, Position: coord(t.Position), Rotation: t.Rotation})
	}
	return out
}

func assembleWater(water []layout.Water) []Water2D {
	out := make([]Water2D, 0, len(water))
	for _, w := range water {
		out = append(out, Water2D{ID: w.ID, Position: coord(w.Position)})
	}
	return out
}

func assembleResidents(snap *sim.Snapshot) []Resident2D {
	out := []Resident2D{}
	if snap == nil {
		return out
	}
	for _, r := range snap.Residents {
		out = append(out, Resident2D{
			ID:             r.ID,
			Position:       coord(r.Position),
			Representation: string(r.Representation),
			Place:          r.Place,
			Target:         r.Target,
		})
	}
	return out
}

func summarize(s *Scene2D) SceneSummary {
	sum := SceneSummary{
		RoadsByClass:    make(map[string]int),
		BuildingsByType: make(map[string]int),
	}
	for _, r := range s.Roads {
		sum.RoadsByClass[r.Class]++
	}
	for _, b := range s.Buildings {
		sum.BuildingsByType[b.Type]++
		if b.Occupancy > 0 {
			sum.Occupied++
		}
		sum.TotalOccupancy += b.Occupancy
	}
	return sum
}

func coord(p geo.Point2D) [2]float64 { return [2]float64{p.X, p.Z} }

// pointsToCoords converts a []geo.Point2D to a [][2]float64 coordinate list.
func pointsToCoords(pts []geo.Point2D) [][2]float64 {
	coords := make([][2]float64, len(pts))
	for i, pt := range pts {
		coords[i] = coord(pt)
	}
	return coords
}
