// Package teamspace converts vision coordinates into team space, where our
// goal is at the origin and the opponent goal is at +Y, regardless of which
// physical half of the field we defend.
package teamspace

import (
	"sync/atomic"

	"github.com/Pi3th0n/robocup-software/internal/geometry"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

// Transform is an immutable world-to-team mapping.
type Transform struct {
	defendPlusX bool
	angle       float64
	matrix      geometry.TransformMatrix
}

// New derives the transform for the given defend side.
func New(defendPlusX bool, fieldLength float64) *Transform {
	angle := 90.0
	if defendPlusX {
		angle = -90
	}
	m := geometry.Rotate(angle).Then(geometry.Translate(geometry.Point{X: 0, Y: fieldLength / 2}))
	return &Transform{defendPlusX: defendPlusX, angle: angle, matrix: m}
}

// DefendPlusX reports the side this transform was derived from.
func (t *Transform) DefendPlusX() bool {
	return t.defendPlusX
}

// Point maps a world position to team space.
func (t *Transform) Point(p geometry.Point) geometry.Point {
	return t.matrix.Apply(p)
}

// Angle maps a world heading in degrees to team space.
func (t *Transform) Angle(deg float64) float64 {
	return geometry.FixAngleDegrees(t.angle + deg)
}

// Inverse returns the team-to-world matrix.
func (t *Transform) Inverse() geometry.TransformMatrix {
	return t.matrix.Inverse()
}

// Apply converts every detection in f to team space in place.
func (t *Transform) Apply(f *state.VisionFrame) {
	for i := range f.Blue {
		f.Blue[i].Pos = t.Point(f.Blue[i].Pos)
		f.Blue[i].Angle = t.Angle(f.Blue[i].Angle)
	}
	for i := range f.Yellow {
		f.Yellow[i].Pos = t.Point(f.Yellow[i].Pos)
		f.Yellow[i].Angle = t.Angle(f.Yellow[i].Angle)
	}
	for i := range f.Balls {
		f.Balls[i].Pos = t.Point(f.Balls[i].Pos)
	}
}

// Holder publishes the current transform to the ingest path. Set is called
// by the supervisory side; Load is called once per cycle by ingestion.
type Holder struct {
	fieldLength float64
	cur         atomic.Pointer[Transform]
}

// NewHolder creates a holder initialised for defendPlusX.
func NewHolder(defendPlusX bool, fieldLength float64) *Holder {
	h := &Holder{fieldLength: fieldLength}
	h.cur.Store(New(defendPlusX, fieldLength))
	return h
}

// Set recomputes the transform for a new defend side.
func (h *Holder) Set(defendPlusX bool) {
	h.cur.Store(New(defendPlusX, h.fieldLength))
}

// Load returns the current transform.
func (h *Holder) Load() *Transform {
	return h.cur.Load()
}
