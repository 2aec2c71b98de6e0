package layout

import "github.com/ChicagoDave/citysim/pkg/geo"

// BuildingType classifies a building.
type BuildingType string

const (
	BuildingHouse         BuildingType = "house"
	BuildingOffice        BuildingType = "office"
	BuildingEntertainment BuildingType = "entertainment"
	BuildingStadium       BuildingType = "stadium"
)

// BuildingTypes lists every type in registry iteration order.
var BuildingTypes = []BuildingType{
	BuildingHouse,
	BuildingOffice,
	BuildingEntertainment,
	BuildingStadium,
}

// Capacity returns the nominal occupancy for a type. Occupancy above
// capacity is allowed; the value is advisory.
func (t BuildingType) Capacity() int {
	switch t {
	case BuildingHouse:
		return 1
	case BuildingOffice:
		return 100
	case BuildingEntertainment:
		return 4
	case BuildingStadium:
		return 300
	}
	return 0
}

// LightIntensity is the light level switched on when a building becomes
// occupied.
func (t BuildingType) LightIntensity() float64 {
	if t == BuildingHouse {
		return 5
	}
	return 7
}

// BaseHeight is the unscaled height of the building model in world units.
func (t BuildingType) BaseHeight() float64 {
	switch t {
	case BuildingHouse:
		return 3
	case BuildingOffice:
		return 24
	case BuildingEntertainment:
		return 6
	case BuildingStadium:
		return 12
	}
	return 0
}

// Building is a placed building and its live occupancy.
type Building struct {
	ID            string       `json:"id"`
	Type          BuildingType `json:"type"`
	RoadID        string       `json:"road_id"`
	RoadAnchor    geo.Point2D  `json:"road_anchor"`
	InsideAnchor  geo.Point2D  `json:"inside_anchor"`
	Angle         float64      `json:"angle"`
	Height        float64      `json:"height"`
	VerticalScale float64      `json:"vertical_scale"`
	Capacity      int          `json:"capacity"`
	Current       int          `json:"current"`
	Light         float64      `json:"light"`
	Residents     int          `json:"residents"`
}

// NewBuilding returns an empty building of type t with unit vertical scale.
func NewBuilding(t BuildingType, roadAnchor, insideAnchor geo.Point2D) Building {
	return Building{
		Type:          t,
		RoadAnchor:    roadAnchor,
		InsideAnchor:  insideAnchor,
		Height:        t.BaseHeight(),
		VerticalScale: 1,
		Capacity:      t.Capacity(),
	}
}

// Arrive records one more occupant. It returns true when the building goes
// from empty to occupied, which also switches its light on.
func (b *Building) Arrive() bool {
	b.Current++
	if b.Current == 1 {
		b.Light = b.Type.LightIntensity()
		return true
	}
	return false
}

// Leave records one occupant leaving. Occupancy never drops below zero and
// the light goes off once the building is empty.
func (b *Building) Leave() {
	if b.Current > 0 {
		b.Current--
	}
	if b.Current == 0 {
		b.Light = 0
	}
}

// AddResident registers a resident that calls this building home or work.
func (b *Building) AddResident() {
	b.Residents++
}

// Occupied reports whether anyone is inside.
func (b *Building) Occupied() bool {
	return b.Current > 0
}

// OverCapacity reports whether occupancy exceeds the nominal capacity.
func (b *Building) OverCapacity() bool {
	return b.Current > b.Capacity
}
