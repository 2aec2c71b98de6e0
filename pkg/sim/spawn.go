package sim

import (
	"fmt"
	"math/rand"

	"github.com/ChicagoDave/citysim/pkg/layout"
	"github.com/ChicagoDave/citysim/pkg/spec"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// NewRand returns the simulation's random source. It is seeded apart from
// generation so the same city can be replayed with the same residents.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + 1))
}

// Populate spawns residents. Each house gets a resident with probability
// ResidentProbability; the resident is assigned a random office, a random
// entertainment place and the city's stadium if there is one. Nothing is
// spawned when the city lacks offices or entertainment.
func Populate(reg *layout.Registry, cfg spec.SimulationDef, rng *rand.Rand, newNav NavigatorFactory) ([]*Resident, *validation.Report) {
	report := validation.NewReport()
	residents := []*Resident{}

	offices := reg.Handles(layout.BuildingOffice)
	ents := reg.Handles(layout.BuildingEntertainment)
	if len(offices) == 0 || len(ents) == 0 {
		report.AddWarning(validation.Result{
			Level: validation.LevelSimulation,
			Message: fmt.Sprintf("no residents spawned: city has %d offices and %d entertainment buildings",
				len(offices), len(ents)),
			Suggestions: []string{"Increase sites.count or lower roads.pedestrian_density to get a mix of building types"},
		})
		return residents, report
	}

	var stadium *layout.Handle
	if h, ok := reg.Stadium(); ok {
		stadium = &h
	}

	for _, house := range reg.Handles(layout.BuildingHouse) {
		if rng.Float64() > cfg.ResidentProbability {
			continue
		}
		home := Assignment{
			House:         house,
			Office:        offices[rng.Intn(len(offices))],
			Entertainment: ents[rng.Intn(len(ents))],
			Stadium:       stadium,
		}
		reg.Get(home.House).AddResident()
		reg.Get(home.Office).AddResident()

		id := fmt.Sprintf("resident_%05d", len(residents))
		residents = append(residents, NewResident(id, home, reg, newNav(), cfg, rng))
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelSimulation,
		Message: fmt.Sprintf("spawned %d residents for %d houses", len(residents), reg.Count(layout.BuildingHouse)),
	})
	return residents, report
}
