// Package density builds the scalar field that drives city generation and
// samples partition sites from it.
package density

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"

	"github.com/ChicagoDave/citysim/pkg/spec"
	"github.com/ChicagoDave/citysim/pkg/validation"
)

// Field is an immutable width x height grid of densities in [0,1].
type Field struct {
	width  int
	height int
	values []float64 // row-major, index j*width+i
	source func(x, y float64) float64
}

// NewField fills a grid from normalized simplex noise evaluated at
// (freqX*i+offX, freqY*j+offY). The same FieldDef always yields the same grid.
func NewField(cfg spec.FieldDef) (*Field, error) {
	if err := checkDims(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	noise := opensimplex.NewNormalized(cfg.NoiseSeed)
	source := func(x, y float64) float64 {
		return noise.Eval2(cfg.FrequencyX*x+cfg.OffsetX, cfg.FrequencyY*y+cfg.OffsetY)
	}
	return build(cfg.Width, cfg.Height, source), nil
}

// FromFunc builds a field whose cell (i,j) holds fn(i,j), clamped to [0,1].
func FromFunc(width, height int, fn func(x, y float64) float64) (*Field, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	return build(width, height, fn), nil
}

// Uniform builds a field with the same density everywhere.
func Uniform(width, height int, v float64) (*Field, error) {
	return FromFunc(width, height, func(float64, float64) float64 { return v })
}

func build(width, height int, source func(x, y float64) float64) *Field {
	f := &Field{
		width:  width,
		height: height,
		values: make([]float64, width*height),
		source: source,
	}
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			f.values[j*width+i] = clamp01(source(float64(i), float64(j)))
		}
	}
	return f
}

func checkDims(width, height int) error {
	r := validation.NewReport()
	if width <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelGeneration,
			Message:     fmt.Sprintf("density field width must be positive (got %d)", width),
			SpecPath:    "field.width",
			ActualValue: width,
			Expected:    "> 0",
		})
	}
	if height <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelGeneration,
			Message:     fmt.Sprintf("density field height must be positive (got %d)", height),
			SpecPath:    "field.height",
			ActualValue: height,
			Expected:    "> 0",
		})
	}
	return r.Err()
}

// Width and Height are the field dimensions in cells.
func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// At returns the grid value at cell (i,j). Out-of-range indices are clamped
// to the nearest edge cell.
func (f *Field) At(i, j int) float64 {
	i = clampInt(i, 0, f.width-1)
	j = clampInt(j, 0, f.height-1)
	return f.values[j*f.width+i]
}

// Sample evaluates the underlying source at a continuous position. On grid
// points it agrees with At.
func (f *Field) Sample(x, y float64) float64 {
	return clamp01(f.source(x, y))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
