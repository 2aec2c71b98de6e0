package layout

import (
	"math"

	"github.com/ChicagoDave/citysim/pkg/geo"
	"github.com/ChicagoDave/citysim/pkg/spec"
)

// Frame maps field coordinates (cells) to world coordinates. The world is
// centred on the origin and uses one scale factor for both axes, chosen so
// the longer field side spans WorldSize.
type Frame struct {
	FieldWidth  float64 `json:"field_width"`
	FieldHeight float64 `json:"field_height"`
	WorldSize   float64 `json:"world_size"`
}

// NewFrame builds the frame for a field definition.
func NewFrame(f spec.FieldDef) Frame {
	return Frame{
		FieldWidth:  float64(f.Width),
		FieldHeight: float64(f.Height),
		WorldSize:   f.WorldSize,
	}
}

// Scale is world units per field cell.
func (fr Frame) Scale() float64 {
	side := math.Max(fr.FieldWidth, fr.FieldHeight)
	if side <= 0 {
		return 0
	}
	return fr.WorldSize / side
}

// ToWorld converts a field-space point to world space.
func (fr Frame) ToWorld(p geo.Point2D) geo.Point2D {
	s := fr.Scale()
	return geo.Pt(
		p.X*s-fr.FieldWidth*s/2,
		p.Z*s-fr.FieldHeight*s/2,
	)
}

// ToField is the inverse of ToWorld.
func (fr Frame) ToField(p geo.Point2D) geo.Point2D {
	s := fr.Scale()
	if s == 0 {
		return geo.Origin
	}
	return geo.Pt(
		(p.X+fr.FieldWidth*s/2)/s,
		(p.Z+fr.FieldHeight*s/2)/s,
	)
}

// WorldBounds returns the world-space rectangle covered by the field.
func (fr Frame) WorldBounds() geo.Rect {
	return geo.Rect{
		Min: fr.ToWorld(geo.Origin),
		Max: fr.ToWorld(geo.Pt(fr.FieldWidth, fr.FieldHeight)),
	}
}
