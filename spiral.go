package goldspiral

import (
	"fmt"
	"math"
	"strings"
)

// GoldenAngle is the default angle increment in degrees, 360 - 360/φ.
const GoldenAngle = 360 - 360/math.Phi

// Spiral places a shape repeatedly along a spiral. Each step renders the shape
// in its current position, then resets it and moves it outwards by an
// increasing angle and distance. The snapshot emitted at step i therefore
// reflects the position computed at the end of step i-1.
//
// A Spiral is consumed once; create a new one with a fresh shape to restart.
type Spiral struct {
	// OnEmit, if set, is called with the shape right before its markup is captured.
	OnEmit func(Shape)

	shape      Shape
	iterations int
	step       float64
	distance   float64

	i      int
	angle  float64
	markup string
	err    error
}

// NewSpiral returns a spiral producing iterations snapshots of shape.
func NewSpiral(shape Shape, iterations int, angle, distance float64) *Spiral {
	return &Spiral{
		shape:      shape,
		iterations: iterations,
		step:       angle,
		distance:   distance,
		angle:      angle,
	}
}

// Next advances the spiral to the next snapshot, which will then be available
// through Markup. It returns false when the spiral is exhausted or a move fails.
func (s *Spiral) Next() bool {
	if s.err != nil || s.i >= s.iterations {
		return false
	}
	if s.OnEmit != nil {
		s.OnEmit(s.shape)
	}
	s.markup = s.shape.Render()

	s.shape.Reset()
	if err := s.shape.MoveAngle(s.angle, s.distance*float64(s.i+1)); err != nil {
		s.err = fmt.Errorf("spiral step %d: %w", s.i, err)
		s.markup = ""
		return false
	}
	s.angle += s.step
	s.i++

	return true
}

// Markup returns the snapshot produced by the last call to Next.
func (s *Spiral) Markup() string {
	return s.markup
}

// Err returns the first error encountered while moving the shape.
func (s *Spiral) Err() error {
	return s.err
}

// Generate runs a spiral to completion and concatenates the snapshots without
// separator. Nothing is returned on error.
func Generate(shape Shape, iterations int, angle, distance float64) (string, error) {
	if iterations < 0 {
		return "", fmt.Errorf("%w: %d", ErrIterations, iterations)
	}

	return collect(NewSpiral(shape, iterations, angle, distance))
}

func collect(s *Spiral) (string, error) {
	var sb strings.Builder
	for s.Next() {
		sb.WriteString(s.Markup())
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
