package scene2d

// Scene2D is the complete top-down scene of a city for a 2D renderer.
// Coordinates are world space [x, z].
type Scene2D struct {
	Metadata  Metadata     `json:"metadata"`
	Bounds    Bounds       `json:"bounds"`
	Sites     [][2]float64 `json:"sites"`
	Roads     []Road2D     `json:"roads"`
	Buildings []Building2D `json:"buildings"`
	Trees     []Tree2D     `json:"trees"`
	Water     []Water2D    `json:"water"`
	Residents []Resident2D `json:"residents"`
	Summary   SceneSummary `json:"summary"`
}

// Metadata holds city-level identification.
type Metadata struct {
	CityID      string  `json:"city_id"`
	Seed        int64   `json:"seed"`
	WorldSize   float64 `json:"world_size"`
	Tick        int     `json:"tick"`
	GeneratedAt string  `json:"generated_at"`
}

// Bounds is the world rectangle covered by the city.
type Bounds struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

// Road2D is one classified road segment.
type Road2D struct {
	ID      string     `json:"id"`
	Start   [2]float64 `json:"start"`
	End     [2]float64 `json:"end"`
	Length  float64    `json:"length"`
	Class   string     `json:"class"`
	Density float64    `json:"density"`
}

// Building2D is a building drawn at its interior anchor.
type Building2D struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	RoadID     string     `json:"road_id"`
	Position   [2]float64 `json:"position"`
	RoadAnchor [2]float64 `json:"road_anchor"`
	Rotation   float64    `json:"rotation"`
	Height     float64    `json:"height"`
	Capacity   int        `json:"capacity"`
	Occupancy  int        `json:"occupancy"`
	Light      float64    `json:"light"`
	Residents  int        `json:"residents"`
}

// Tree2D is a decorative tree.
type Tree2D struct {
	ID       string     `json:"id"`
	Position [2]float64 `json:"position"`
	Rotation float64    `json:"rotation"`
}

// Water2D is a pond.
type Water2D struct {
	ID       string     `json:"id"`
	Position [2]float64 `json:"position"`
}

// Resident2D is a resident as of the scene's tick. Hidden residents are
// inside a building and have no meaningful position.
type Resident2D struct {
	ID             string     `json:"id"`
	Position       [2]float64 `json:"position"`
	Representation string     `json:"representation"`
	Place          string     `json:"place"`
	Target         string     `json:"target"`
}

// SceneSummary holds aggregate counts.
type SceneSummary struct {
	RoadsByClass    map[string]int `json:"roads_by_class"`
	BuildingsByType map[string]int `json:"buildings_by_type"`
	Occupied        int            `json:"occupied"`
	TotalOccupancy  int            `json:"total_occupancy"`
}
