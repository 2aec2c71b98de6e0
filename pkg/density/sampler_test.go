package density

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/spec"
)

func sitesDef() spec.SitesDef {
	return spec.Default().Sites
}

func TestGenerateZeroSites(t *testing.T) {
	f, err := Uniform(10, 10, 0.9)
	require.NoError(t, err)

	sites := NewSampler(f, sitesDef(), rand.New(rand.NewSource(1))).Generate(0)
	assert.NotNil(t, sites)
	assert.Empty(t, sites)
}

func TestGenerateExactCountOnLowField(t *testing.T) {
	// Every draw is rejected, so each site is the fallback accept.
	f, err := Uniform(50, 50, 0.1)
	require.NoError(t, err)

	sites := NewSampler(f, sitesDef(), rand.New(rand.NewSource(3))).Generate(40)
	require.Len(t, sites, 40)
	for _, s := range sites {
		assert.Equal(t, 0.1, s.Density)
	}
}

func TestGenerateInBoundsIntegerCells(t *testing.T) {
	f, err := Uniform(30, 20, 0.8)
	require.NoError(t, err)

	for _, s := range NewSampler(f, sitesDef(), rand.New(rand.NewSource(5))).Generate(200) {
		assert.GreaterOrEqual(t, s.Point.X, 0.0)
		assert.Less(t, s.Point.X, 30.0)
		assert.GreaterOrEqual(t, s.Point.Z, 0.0)
		assert.Less(t, s.Point.Z, 20.0)
		assert.Equal(t, float64(int(s.Point.X)), s.Point.X)
		assert.Equal(t, float64(int(s.Point.Z)), s.Point.Z)
	}
}

func TestGenerateFavoursDenseCells(t *testing.T) {
	// Left half dense, right half empty. A sparse accept needs 11 misses
	// in a row, so nearly every site lands on the left.
	f, err := FromFunc(100, 100, func(x, _ float64) float64 {
		if x < 50 {
			return 1
		}
		return 0
	})
	require.NoError(t, err)

	sites := NewSampler(f, sitesDef(), rand.New(rand.NewSource(11))).Generate(200)
	sparse := 0
	for _, s := range sites {
		if s.Density < 0.75 {
			sparse++
		}
	}
	assert.LessOrEqual(t, sparse, 2)
}

func TestGenerateNoRetries(t *testing.T) {
	cfg := sitesDef()
	cfg.MaxRetries = 0
	f, err := FromFunc(100, 100, func(x, _ float64) float64 {
		if x < 50 {
			return 1
		}
		return 0
	})
	require.NoError(t, err)

	sites := NewSampler(f, cfg, rand.New(rand.NewSource(11))).Generate(200)
	sparse := 0
	for _, s := range sites {
		if s.Density < 0.75 {
			sparse++
		}
	}
	// Without retries the draw is uniform over both halves.
	assert.Greater(t, sparse, 50)
}

func TestGenerateDeterministic(t *testing.T) {
	f, err := NewField(smallFieldDef())
	require.NoError(t, err)

	a := NewSampler(f, sitesDef(), rand.New(rand.NewSource(42))).Generate(25)
	b := NewSampler(f, sitesDef(), rand.New(rand.NewSource(42))).Generate(25)
	assert.Equal(t, a, b)
}

func TestPoints(t *testing.T) {
	sites := []Site{{Point: geo.Pt(1, 2)}, {Point: geo.Pt(3, 4)}}
	pts := Points(sites)
	require.Len(t, pts, 2)
	assert.Equal(t, 3.0, pts[1].X)
	assert.Equal(t, 4.0, pts[1].Z)
}
