package goldspiral

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Polygon is an SVG polygon element. Every point is transformed independently
// and the "points" attribute is regenerated after each change.
type Polygon struct {
	*Element
	points  []vec.Vec2
	initial []vec.Vec2
}

// NewPolygon pairs the flat coordinate list [x1, y1, x2, y2, ...] into points.
func NewPolygon(coords []float64, extra ...Attr) (*Polygon, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddCoordinates, len(coords))
	}

	p := &Polygon{
		points: make([]vec.Vec2, 0, len(coords)/2),
	}
	for i := 0; i < len(coords); i += 2 {
		p.points = append(p.points, vec.Vec2{X: coords[i], Y: coords[i+1]})
	}
	p.initial = append([]vec.Vec2(nil), p.points...)

	attrs := append([]Attr{{Name: "points", Value: formatPoints(p.points)}}, extra...)
	p.Element = NewElement("polygon", attrs)

	return p, nil
}

// Points returns a copy of the current points.
func (p *Polygon) Points() []vec.Vec2 {
	return append([]vec.Vec2(nil), p.points...)
}

// Reset restores the points given on construction.
func (p *Polygon) Reset() {
	p.Element.Reset()
	p.points = append(p.points[:0], p.initial...)
	p.updatePoints()
}

func (p *Polygon) MoveLeft(d float64)  { p.translate(vec.Vec2{X: -d}) }
func (p *Polygon) MoveRight(d float64) { p.translate(vec.Vec2{X: d}) }
func (p *Polygon) MoveUp(d float64)    { p.translate(vec.Vec2{Y: -d}) }
func (p *Polygon) MoveDown(d float64)  { p.translate(vec.Vec2{Y: d}) }

// MoveAngle shifts every point by the same vector.
func (p *Polygon) MoveAngle(deg, dist float64) error {
	p.translate(angleVec(deg, dist))
	return nil
}

func (p *Polygon) Outline() []vec.Vec2 {
	return p.Points()
}

func (p *Polygon) translate(v vec.Vec2) {
	for i := range p.points {
		p.points[i] = p.points[i].Add(v)
	}
	p.updatePoints()
}

func (p *Polygon) updatePoints() {
	p.Set("points", formatPoints(p.points))
}
