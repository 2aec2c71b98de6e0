package spec

// CitySpec is the top-level configuration for one generated city and its
// resident simulation.
type CitySpec struct {
	SpecVersion string        `yaml:"spec_version" json:"spec_version"`
	Seed        int64         `yaml:"seed" json:"seed"`
	Field       FieldDef      `yaml:"field" json:"field"`
	Sites       SitesDef      `yaml:"sites" json:"sites"`
	Roads       RoadsDef      `yaml:"roads" json:"roads"`
	Buildings   BuildingsDef  `yaml:"buildings" json:"buildings"`
	Landscape   LandscapeDef  `yaml:"landscape" json:"landscape"`
	Simulation  SimulationDef `yaml:"simulation" json:"simulation"`
}

// FieldDef describes the density grid and the noise that fills it.
type FieldDef struct {
	Width      int     `yaml:"width" json:"width"`
	Height     int     `yaml:"height" json:"height"`
	WorldSize  float64 `yaml:"world_size" json:"world_size"` // side of the square world the field maps onto
	NoiseSeed  int64   `yaml:"noise_seed" json:"noise_seed"`
	FrequencyX float64 `yaml:"frequency_x" json:"frequency_x"`
	FrequencyY float64 `yaml:"frequency_y" json:"frequency_y"`
	OffsetX    float64 `yaml:"offset_x" json:"offset_x"`
	OffsetY    float64 `yaml:"offset_y" json:"offset_y"`
}

// SitesDef controls rejection sampling of partition sites.
type SitesDef struct {
	Count         int     `yaml:"count" json:"count"`
	AcceptDensity float64 `yaml:"accept_density" json:"accept_density"`
	MaxRetries    int     `yaml:"max_retries" json:"max_retries"`
}

// RoadsDef holds the road classification thresholds.
type RoadsDef struct {
	PedestrianDensity float64 `yaml:"pedestrian_density" json:"pedestrian_density"`
	HighwayLength     float64 `yaml:"highway_length" json:"highway_length"`
}

// BuildingsDef controls roadside building placement.
type BuildingsDef struct {
	MinSegmentLength      float64 `yaml:"min_segment_length" json:"min_segment_length"`
	Spacing               float64 `yaml:"spacing" json:"spacing"`
	MaxPerSegment         int     `yaml:"max_per_segment" json:"max_per_segment"`
	ResidentialMaxDensity float64 `yaml:"residential_max_density" json:"residential_max_density"`
	HouseShare            float64 `yaml:"house_share" json:"house_share"`
	OfficeShare           float64 `yaml:"office_share" json:"office_share"`
	LateralOffset         float64 `yaml:"lateral_offset" json:"lateral_offset"`
	StadiumOffset         float64 `yaml:"stadium_offset" json:"stadium_offset"`
	StadiumMinLength      float64 `yaml:"stadium_min_length" json:"stadium_min_length"`
	StadiumMaxLength      float64 `yaml:"stadium_max_length" json:"stadium_max_length"`
	OfficeScaleMin        float64 `yaml:"office_scale_min" json:"office_scale_min"`
	OfficeScaleMax        float64 `yaml:"office_scale_max" json:"office_scale_max"`
}

// LandscapeDef controls tree and water scattering.
type LandscapeDef struct {
	MaxDensity    float64 `yaml:"max_density" json:"max_density"`
	TreesMin      int     `yaml:"trees_min" json:"trees_min"`
	TreesMax      int     `yaml:"trees_max" json:"trees_max"`
	TreeRadiusMin float64 `yaml:"tree_radius_min" json:"tree_radius_min"`
	TreeRadiusMax float64 `yaml:"tree_radius_max" json:"tree_radius_max"`
	MaxWater      int     `yaml:"max_water" json:"max_water"`
}

// SimulationDef controls residents and their daily cycle.
type SimulationDef struct {
	ResidentProbability float64   `yaml:"resident_probability" json:"resident_probability"`
	DwellMin            float64   `yaml:"dwell_min" json:"dwell_min"`
	DwellMax            float64   `yaml:"dwell_max" json:"dwell_max"`
	LeisureProbability  float64   `yaml:"leisure_probability" json:"leisure_probability"`
	StadiumProbability  float64   `yaml:"stadium_probability" json:"stadium_probability"`
	TickSeconds         float64   `yaml:"tick_seconds" json:"tick_seconds"`
	StoppingDistance    float64   `yaml:"stopping_distance" json:"stopping_distance"`
	Speeds              SpeedsDef `yaml:"speeds" json:"speeds"`
}

// SpeedsDef maps road classes to resident travel speeds (world units/s).
type SpeedsDef struct {
	Normal     float64 `yaml:"normal" json:"normal"`
	Highway    float64 `yaml:"highway" json:"highway"`
	Pedestrian float64 `yaml:"pedestrian" json:"pedestrian"`
}

// Default returns the reference configuration: a 1000x1000 field mapped onto
// a 400-unit world with 150 sites.
func Default() *CitySpec {
	return &CitySpec{
		SpecVersion: "0.1.0",
		Field: FieldDef{
			Width:      1000,
			Height:     1000,
			WorldSize:  400,
			FrequencyX: 0.02,
			FrequencyY: 0.018,
			OffsetX:    0.43,
			OffsetY:    0.22,
		},
		Sites: SitesDef{
			Count:         150,
			AcceptDensity: 0.75,
			MaxRetries:    10,
		},
		Roads: RoadsDef{
			PedestrianDensity: 0.74,
			HighwayLength:     40,
		},
		Buildings: BuildingsDef{
			MinSegmentLength:      10,
			Spacing:               7,
			MaxPerSegment:         10,
			ResidentialMaxDensity: 0.74,
			HouseShare:            0.8,
			OfficeShare:           0.8,
			LateralOffset:         2.1,
			StadiumOffset:         6,
			StadiumMinLength:      30,
			StadiumMaxLength:      40,
			OfficeScaleMin:        0.5,
			OfficeScaleMax:        1.4,
		},
		Landscape: LandscapeDef{
			MaxDensity:    0.2,
			TreesMin:      3,
			TreesMax:      6,
			TreeRadiusMin: 7,
			TreeRadiusMax: 8,
			MaxWater:      2,
		},
		Simulation: SimulationDef{
			ResidentProbability: 0.5,
			DwellMin:            8,
			DwellMax:            12,
			LeisureProbability:  0.5,
			StadiumProbability:  0.1,
			TickSeconds:         0.1,
			StoppingDistance:    0.5,
			Speeds: SpeedsDef{
				Normal:     5.5,
				Highway:    7.0,
				Pedestrian: 3.0,
			},
		},
	}
}
