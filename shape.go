package goldspiral

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// ShapeType names one of the supported shape variants.
type ShapeType string

const (
	ShapeTriangle ShapeType = "triangle"
	ShapeCircle   ShapeType = "circle"
	ShapeRect     ShapeType = "rect"
	ShapeEllipse  ShapeType = "ellipse"
	ShapeLine     ShapeType = "line"
)

// outlineSegments is the number of edges used to approximate round shapes.
const outlineSegments = 32

// Shape is the capability set shared by every shape variant.
// The y axis grows downwards, as in SVG, so moving up decreases y.
type Shape interface {
	Render() string
	Reset()
	MoveLeft(d float64)
	MoveRight(d float64)
	MoveUp(d float64)
	MoveDown(d float64)
	MoveAngle(deg, dist float64) error
	// Outline returns the closed contour of the shape in its current position.
	Outline() []vec.Vec2
}

var (
	_ Shape = (*Circle)(nil)
	_ Shape = (*Rect)(nil)
	_ Shape = (*Ellipse)(nil)
	_ Shape = (*Line)(nil)
	_ Shape = (*Polygon)(nil)
)

// NewShape builds the named shape anchored at (cx, cy) with the given size.
func NewShape(t ShapeType, cx, cy, size float64) (Shape, error) {
	switch t {
	case "", "default", "polygon", ShapeTriangle:
		return NewPolygon([]float64{
			cx, cy,
			cx - 0.5*size, cy + size,
			cx + 0.5*size, cy + size,
		})
	case ShapeCircle:
		return NewCircle(cx, cy, size), nil
	case ShapeRect:
		return NewRect(cx, cy, size, size), nil
	case ShapeEllipse:
		return NewEllipse(cx, cy, size, size/2), nil
	case ShapeLine:
		return NewLine(cx, cy, cx+size, cy+size), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, string(t))
}

// Circle is an SVG circle element.
type Circle struct {
	*Element
	center, initCenter vec.Vec2
	r                  float64
}

// NewCircle creates a circle centered at (cx, cy).
func NewCircle(cx, cy, r float64, extra ...Attr) *Circle {
	c := &Circle{center: vec.Vec2{X: cx, Y: cy}, r: r}
	c.initCenter = c.center
	c.Element = NewElement("circle", append(c.geometry(), extra...))
	return c
}

// Center returns the current center of the circle.
func (c *Circle) Center() vec.Vec2 { return c.center }

func (c *Circle) geometry() []Attr {
	return []Attr{
		{Name: "cx", Value: formatFloat(c.center.X)},
		{Name: "cy", Value: formatFloat(c.center.Y)},
		{Name: "r", Value: formatFloat(c.r)},
	}
}

func (c *Circle) translate(v vec.Vec2) {
	c.center = c.center.Add(v)
	syncAttrs(c.Element, c.geometry())
}

func (c *Circle) Reset() {
	c.center = c.initCenter
	c.Element.Reset()
}

func (c *Circle) MoveLeft(d float64)  { c.translate(vec.Vec2{X: -d}) }
func (c *Circle) MoveRight(d float64) { c.translate(vec.Vec2{X: d}) }
func (c *Circle) MoveUp(d float64)    { c.translate(vec.Vec2{Y: -d}) }
func (c *Circle) MoveDown(d float64)  { c.translate(vec.Vec2{Y: d}) }

func (c *Circle) MoveAngle(deg, dist float64) error {
	c.translate(angleVec(deg, dist))
	return nil
}

func (c *Circle) Outline() []vec.Vec2 {
	return ellipseOutline(c.center, c.r, c.r)
}

// Rect is an SVG rect element, positioned by its top left corner.
type Rect struct {
	*Element
	pos, initPos  vec.Vec2
	width, height float64
}

// NewRect creates a rectangle with the top left corner at (x, y).
func NewRect(x, y, width, height float64, extra ...Attr) *Rect {
	r := &Rect{pos: vec.Vec2{X: x, Y: y}, width: width, height: height}
	r.initPos = r.pos
	r.Element = NewElement("rect", append(r.geometry(), extra...))
	return r
}

// Position returns the current top left corner.
func (r *Rect) Position() vec.Vec2 { return r.pos }

func (r *Rect) geometry() []Attr {
	return []Attr{
		{Name: "x", Value: formatFloat(r.pos.X)},
		{Name: "y", Value: formatFloat(r.pos.Y)},
		{Name: "width", Value: formatFloat(r.width)},
		{Name: "height", Value: formatFloat(r.height)},
	}
}

func (r *Rect) translate(v vec.Vec2) {
	r.pos = r.pos.Add(v)
	syncAttrs(r.Element, r.geometry())
}

func (r *Rect) Reset() {
	r.pos = r.initPos
	r.Element.Reset()
}

func (r *Rect) MoveLeft(d float64)  { r.translate(vec.Vec2{X: -d}) }
func (r *Rect) MoveRight(d float64) { r.translate(vec.Vec2{X: d}) }
func (r *Rect) MoveUp(d float64)    { r.translate(vec.Vec2{Y: -d}) }
func (r *Rect) MoveDown(d float64)  { r.translate(vec.Vec2{Y: d}) }

func (r *Rect) MoveAngle(deg, dist float64) error {
	r.translate(angleVec(deg, dist))
	return nil
}

func (r *Rect) Outline() []vec.Vec2 {
	return []vec.Vec2{
		r.pos,
		r.pos.Add(vec.Vec2{X: r.width}),
		r.pos.Add(vec.Vec2{X: r.width, Y: r.height}),
		r.pos.Add(vec.Vec2{Y: r.height}),
	}
}

// Ellipse is an SVG ellipse element. It can only be moved along the axes.
type Ellipse struct {
	*Element
	center, initCenter vec.Vec2
	rx, ry             float64
}

// NewEllipse creates an ellipse centered at (cx, cy).
func NewEllipse(cx, cy, rx, ry float64, extra ...Attr) *Ellipse {
	e := &Ellipse{center: vec.Vec2{X: cx, Y: cy}, rx: rx, ry: ry}
	e.initCenter = e.center
	e.Element = NewElement("ellipse", append(e.geometry(), extra...))
	return e
}

// Center returns the current center of the ellipse.
func (e *Ellipse) Center() vec.Vec2 { return e.center }

func (e *Ellipse) geometry() []Attr {
	return []Attr{
		{Name: "cx", Value: formatFloat(e.center.X)},
		{Name: "cy", Value: formatFloat(e.center.Y)},
		{Name: "rx", Value: formatFloat(e.rx)},
		{Name: "ry", Value: formatFloat(e.ry)},
	}
}

func (e *Ellipse) translate(v vec.Vec2) {
	e.center = e.center.Add(v)
	syncAttrs(e.Element, e.geometry())
}

func (e *Ellipse) Reset() {
	e.center = e.initCenter
	e.Element.Reset()
}

func (e *Ellipse) MoveLeft(d float64)  { e.translate(vec.Vec2{X: -d}) }
func (e *Ellipse) MoveRight(d float64) { e.translate(vec.Vec2{X: d}) }
func (e *Ellipse) MoveUp(d float64)    { e.translate(vec.Vec2{Y: -d}) }
func (e *Ellipse) MoveDown(d float64)  { e.translate(vec.Vec2{Y: d}) }

// MoveAngle is not available for ellipses. The shape is left untouched.
func (e *Ellipse) MoveAngle(deg, dist float64) error {
	return fmt.Errorf("%w: %s cannot be moved by angle", ErrUnsupported, e.Name)
}

func (e *Ellipse) Outline() []vec.Vec2 {
	return ellipseOutline(e.center, e.rx, e.ry)
}

// Line is an SVG line element. Both endpoints move together.
type Line struct {
	*Element
	p1, p2         vec.Vec2
	initP1, initP2 vec.Vec2
}

// NewLine creates a line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64, extra ...Attr) *Line {
	l := &Line{p1: vec.Vec2{X: x1, Y: y1}, p2: vec.Vec2{X: x2, Y: y2}}
	l.initP1, l.initP2 = l.p1, l.p2
	l.Element = NewElement("line", append(l.geometry(), extra...))
	return l
}

// Endpoints returns the current endpoints of the line.
func (l *Line) Endpoints() (vec.Vec2, vec.Vec2) { return l.p1, l.p2 }

func (l *Line) geometry() []Attr {
	return []Attr{
		{Name: "x1", Value: formatFloat(l.p1.X)},
		{Name: "y1", Value: formatFloat(l.p1.Y)},
		{Name: "x2", Value: formatFloat(l.p2.X)},
		{Name: "y2", Value: formatFloat(l.p2.Y)},
	}
}

func (l *Line) translate(v vec.Vec2) {
	l.p1 = l.p1.Add(v)
	l.p2 = l.p2.Add(v)
	syncAttrs(l.Element, l.geometry())
}

func (l *Line) Reset() {
	l.p1, l.p2 = l.initP1, l.initP2
	l.Element.Reset()
}

func (l *Line) MoveLeft(d float64)  { l.translate(vec.Vec2{X: -d}) }
func (l *Line) MoveRight(d float64) { l.translate(vec.Vec2{X: d}) }
func (l *Line) MoveUp(d float64)    { l.translate(vec.Vec2{Y: -d}) }
func (l *Line) MoveDown(d float64)  { l.translate(vec.Vec2{Y: d}) }

func (l *Line) MoveAngle(deg, dist float64) error {
	l.translate(angleVec(deg, dist))
	return nil
}

// Outline returns a one unit wide quad around the line segment.
func (l *Line) Outline() []vec.Vec2 {
	d := l.p2.Sub(l.p1)
	if d.Length() == 0 {
		return nil
	}
	n := d.Normalize().Rot90().Mul(0.5)
	return []vec.Vec2{l.p1.Add(n), l.p2.Add(n), l.p2.Sub(n), l.p1.Sub(n)}
}

// angleVec returns the displacement of length dist in the direction given in degrees.
func angleVec(deg, dist float64) vec.Vec2 {
	rad := deg * math.Pi / 180
	return vec.Vec2{X: math.Cos(rad) * dist, Y: math.Sin(rad) * dist}
}

func ellipseOutline(c vec.Vec2, rx, ry float64) []vec.Vec2 {
	pts := make([]vec.Vec2, outlineSegments)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / outlineSegments
		pts[i] = c.Add(vec.Vec2{X: math.Cos(t) * rx, Y: math.Sin(t) * ry})
	}
	return pts
}

// syncAttrs writes the typed geometry back into the element attributes.
func syncAttrs(e *Element, attrs []Attr) {
	for _, a := range attrs {
		e.Set(a.Name, a.Value)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatPoints joins the points into the SVG points attribute syntax.
func formatPoints(points []vec.Vec2) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, formatFloat(p.X)+","+formatFloat(p.Y))
	}
	return strings.Join(parts, " ")
}
