package density

import (
	"math/rand"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/spec"
)

// Site is an accepted sample position in field space with the density read
// at that cell.
type Site struct {
	Point   geo.Point2D `json:"point"`
	Density float64     `json:"density"`
}

// Sampler draws sites biased toward dense areas of a Field.
type Sampler struct {
	field *Field
	cfg   spec.SitesDef
	rng   *rand.Rand
}

// NewSampler draws from field using rng; cfg sets the count and retry policy.
func NewSampler(field *Field, cfg spec.SitesDef, rng *rand.Rand) *Sampler {
	return &Sampler{field: field, cfg: cfg, rng: rng}
}

// Generate returns exactly n sites in draw order. Each site is drawn on an
// integer cell; draws below AcceptDensity are redrawn at most MaxRetries
// times, after which the last draw is accepted regardless of density.
func (s *Sampler) Generate(n int) []Site {
	if n < 0 {
		n = 0
	}
	sites := make([]Site, 0, n)
	for k := 0; k < n; k++ {
		i, j, d := s.draw()
		for retry := 0; d < s.cfg.AcceptDensity && retry < s.cfg.MaxRetries; retry++ {
			i, j, d = s.draw()
		}
		sites = append(sites, Site{
			Point:   geo.Pt(float64(i), float64(j)),
			Density: d,
		})
	}
	return sites
}

func (s *Sampler) draw() (int, int, float64) {
	i := s.rng.Intn(s.field.width)
	j := s.rng.Intn(s.field.height)
	return i, j, s.field.At(i, j)
}

// Points strips densities from a site list.
func Points(sites []Site) []geo.Point2D {
	pts := make([]geo.Point2D, len(sites))
	for i, s := range sites {
		pts[i] = s.Point
	}
	return pts
}
