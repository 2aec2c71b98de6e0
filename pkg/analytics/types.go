package analytics

import "github.com/ChicagoDave/citysim/pkg/sim"

// Summary holds aggregate figures for one generated city and, optionally,
// its simulation.
type Summary struct {
	CityID string `json:"city_id"`
	Seed   int64  `json:"seed"`
	Sites  int    `json:"sites"`

	Roads          int                `json:"roads"`
	RoadsByClass   map[string]int     `json:"roads_by_class"`
	RoadLength     float64            `json:"road_length"`
	LengthByClass  map[string]float64 `json:"road_length_by_class"`
	RoadComponents int                `json:"road_components"`

	Buildings       int            `json:"buildings"`
	BuildingsByType map[string]int `json:"buildings_by_type"`
	Capacity        int            `json:"capacity"`
	HasStadium      bool           `json:"has_stadium"`

	Trees int `json:"trees"`
	Water int `json:"water"`

	Residents int        `json:"residents"`
	Occupancy Occupancy  `json:"occupancy"`
	Sim       *sim.Stats `json:"sim,omitempty"`
}

// Occupancy is the occupant count of every building type at one moment.
type Occupancy struct {
	Occupied int            `json:"occupied"` // buildings with at least one occupant
	Total    int            `json:"total"`
	ByType   map[string]int `json:"by_type"`
	Lit      int            `json:"lit"`
}
