package scene2d

import (
	"testing"

	"github.com/ChicagoDave/citysim/pkg/density"
	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/sim"
	"github.com/ChicagoDave/citysim/pkg/spec"
)

// testCity builds a 100x100 world (scale 1, bounds [-50,50]) with one road,
// a house and an office.
func testCity(t *testing.T) *layout.City {
	t.Helper()
	frame := layout.NewFrame(spec.FieldDef{Width: 100, Height: 100, WorldSize: 100})

	road := layout.RoadSegment{
		ID:     "road_00000",
		Start:  geo.Pt(-10, 0),
		End:    geo.Pt(10, 0),
		Length: 20,
		Class:  layout.RoadNormal,
	}

	reg := layout.NewRegistry()
	for _, b := range []struct {
		typ layout.BuildingType
		x   float64
	}{
		{layout.BuildingHouse, -5},
		{layout.BuildingOffice, 5},
	} {
		bld := layout.NewBuilding(b.typ, geo.Pt(b.x, 0), geo.Pt(b.x, 2))
		bld.RoadID = road.ID
		if _, err := reg.Add(bld); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	return &layout.City{
		ID:        "city",
		Seed:      3,
		Frame:     frame,
		Sites:     []density.Site{{Point: geo.Pt(50, 50), Density: 0.9}},
		Roads:     []layout.RoadSegment{road},
		Buildings: reg,
		Landscape: layout.Landscape{
			Trees: []layout.Tree{{ID: "tree_00000", Position: geo.Pt(20, 20), Rotation: 1}},
			Water: []layout.Water{{ID: "water_00000", Position: geo.Pt(-20, -20)}},
		},
	}
}

func TestAssembleWithoutSnapshot(t *testing.T) {
	city := testCity(t)
	office := city.Buildings.Get(city.Buildings.Handles(layout.BuildingOffice)[0])
	office.Arrive()

	s := Assemble(city, nil)

	if s.Metadata.CityID != "city" || s.Metadata.Seed != 3 || s.Metadata.WorldSize != 100 {
		t.Errorf("unexpected metadata: %+v", s.Metadata)
	}
	if s.Bounds.Min != [2]float64{-50, -50} || s.Bounds.Max != [2]float64{50, 50} {
		t.Errorf("bounds = %+v", s.Bounds)
	}
	if len(s.Sites) != 1 || s.Sites[0] != [2]float64{0, 0} {
		t.Errorf("site should map to the world origin, got %v", s.Sites)
	}
	if len(s.Roads) != 1 || s.Roads[0].Class != "normal" {
		t.Errorf("roads = %+v", s.Roads)
	}
	if len(s.Buildings) != 2 {
		t.Fatalf("buildings = %d, want 2", len(s.Buildings))
	}
	if s.Residents == nil || len(s.Residents) != 0 {
		t.Errorf("expected empty non-nil residents, got %v", s.Residents)
	}

	for _, b := range s.Buildings {
		switch b.Type {
		case "house":
			if b.Occupancy != 0 || b.Light != 0 {
				t.Errorf("house should be dark and empty: %+v", b)
			}
		case "office":
			if b.Occupancy != 1 || b.Light != 7 {
				t.Errorf("office should hold 1 and be lit: %+v", b)
			}
			if b.Position != [2]float64{5, 2} {
				t.Errorf("office position = %v", b.Position)
			}
		}
	}

	if s.Summary.BuildingsByType["house"] != 1 || s.Summary.BuildingsByType["office"] != 1 {
		t.Errorf("buildings by type = %v", s.Summary.BuildingsByType)
	}
	if s.Summary.Occupied != 1 || s.Summary.TotalOccupancy != 1 {
		t.Errorf("summary occupancy = %+v", s.Summary)
	}
}

func TestAssembleSnapshotOccupancy(t *testing.T) {
	city := testCity(t)
	snap := &sim.Snapshot{
		Tick: 12,
		Residents: []sim.ResidentView{{
			ID:             "resident_00000",
			Position:       geo.Pt(1, 0),
			Representation: sim.Vehicle,
			Place:          "work",
			Target:         "office_00000",
		}},
		Occupancy: map[string]int{"house_00000": 1},
	}

	s := Assemble(city, snap)

	if s.Metadata.Tick != 12 {
		t.Errorf("tick = %d, want 12", s.Metadata.Tick)
	}
	if len(s.Residents) != 1 || s.Residents[0].Representation != "vehicle" {
		t.Fatalf("residents = %+v", s.Residents)
	}
	for _, b := range s.Buildings {
		want := 0
		if b.ID == "house_00000" {
			want = 1
		}
		if b.Occupancy != want {
			t.Errorf("%s occupancy = %d, want %d", b.ID, b.Occupancy, want)
		}
	}
}

// Once a snapshot is supplied the live registry counters are not consulted.
func TestAssembleIgnoresRegistryWithSnapshot(t *testing.T) {
	city := testCity(t)
	office := city.Buildings.Get(city.Buildings.Handles(layout.BuildingOffice)[0])
	office.Arrive()

	s := Assemble(city, &sim.Snapshot{Occupancy: map[string]int{}})
	for _, b := range s.Buildings {
		if b.Occupancy != 0 || b.Light != 0 {
			t.Errorf("%s occupancy = %d light = %v, want dark", b.ID, b.Occupancy, b.Light)
		}
	}
}

func TestValidateAssembledScene(t *testing.T) {
	s := Assemble(testCity(t), nil)
	r := Validate(s)
	if !r.Valid {
		t.Errorf("expected valid scene, got %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
}

func TestValidateNil(t *testing.T) {
	if Validate(nil).Valid {
		t.Error("nil scene should be invalid")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Scene2D)
		path   string
	}{
		{"empty id", func(s *Scene2D) { s.Trees[0].ID = "" }, "trees[0].id"},
		{"duplicate id", func(s *Scene2D) { s.Water[0].ID = "road_00000" }, "water[0].id"},
		{"dangling road", func(s *Scene2D) { s.Buildings[1].RoadID = "road_99999" }, "buildings[1].road_id"},
		{"road outside", func(s *Scene2D) { s.Roads[0].End = [2]float64{80, 0} }, "roads[0]"},
		{"negative occupancy", func(s *Scene2D) { s.Buildings[0].Occupancy = -1 }, "buildings[0].occupancy"},
		{"second stadium", func(s *Scene2D) {
			s.Buildings[0].Type = "stadium"
			s.Buildings[1].Type = "stadium"
		}, "buildings"},
		{"unknown target", func(s *Scene2D) {
			s.Residents = []Resident2D{{ID: "resident_00000", Target: "office_00042"}}
		}, "residents[0].target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Assemble(testCity(t), nil)
			tt.mutate(s)
			r := Validate(s)
			if r.Valid {
				t.Fatal("expected invalid report")
			}
			found := false
			for _, e := range r.Errors {
				if e.SpecPath == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error at %q, got %v", tt.path, r.Errors)
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	s := Assemble(testCity(t), nil)
	s.Trees[0].Position = [2]float64{70, 0}
	s.Buildings[0].Occupancy = 3

	r := Validate(s)
	if !r.Valid {
		t.Fatalf("warnings only, got errors %v", r.Errors)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", r.Warnings)
	}
}
