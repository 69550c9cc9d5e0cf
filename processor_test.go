package goldspiral

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var p *Processor

func init() {
	p = &Processor{
		Width:      200,
		Height:     100,
		Iterations: 50,
		Angle:      GoldenAngle,
		Distance:   2,
		Size:       3,
		Title:      "test",
		Shape:      ShapeTriangle,
		JustSVG:    true,
	}
}

func TestProcessor_Defaults(t *testing.T) {
	assert := assert.New(t)

	d := DefaultProcessor()
	assert.Equal(1100, d.Width)
	assert.Equal(950, d.Height)
	assert.Equal(1000, d.Iterations)
	assert.InDelta(360-360/math.Phi, d.Angle, 1e-12)
	assert.Equal(8.0, d.Distance)
	assert.Equal(5.0, d.Size)
	assert.Equal("ResBaz D3 SVG Challenge", d.Title)
	assert.Equal(ShapeTriangle, d.Shape)
	assert.False(d.JustSVG)
	assert.NoError(d.Validate())
}

func TestProcessor_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(p *Processor)
	}{
		{name: "zero width", modify: func(p *Processor) { p.Width = 0 }},
		{name: "negative height", modify: func(p *Processor) { p.Height = -5 }},
		{name: "zero iterations", modify: func(p *Processor) { p.Iterations = 0 }},
		{name: "negative iterations", modify: func(p *Processor) { p.Iterations = -1 }},
		{name: "NaN angle", modify: func(p *Processor) { p.Angle = math.NaN() }},
		{name: "infinite distance", modify: func(p *Processor) { p.Distance = math.Inf(1) }},
		{name: "zero size", modify: func(p *Processor) { p.Size = 0 }},
		{name: "unknown shape", modify: func(p *Processor) { p.Shape = "star" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			proc := *p
			tc.modify(&proc)

			err := proc.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))

			var buf bytes.Buffer
			assert.Error(t, proc.Process(&buf))
			assert.Zero(t, buf.Len(), "nothing should be written on error")
		})
	}
}

func TestProcessor_JustSvg(t *testing.T) {
	assert := assert.New(t)

	proc := *p
	proc.JustSVG = true

	doc, err := proc.Render()
	require.NoError(t, err)
	assert.NotContains(doc, "<html>")
	assert.True(strings.HasPrefix(doc, `<svg version="1.1" baseProfile="full" width="200" height="100"`))

	elements := wellFormed(t, doc)
	assert.Equal(1, elements["svg"])
	assert.Equal(proc.Iterations, elements["polygon"])
}

func TestProcessor_Html(t *testing.T) {
	assert := assert.New(t)

	proc := *p
	proc.JustSVG = false
	proc.Title = "Golden"

	doc, err := proc.Render()
	require.NoError(t, err)
	assert.Equal(1, strings.Count(doc, "<html>"))
	assert.Equal(1, strings.Count(doc, "<svg "))
	assert.Contains(doc, "<title>Golden</title>")
}

func TestProcessor_SingleIteration(t *testing.T) {
	proc := *p
	proc.Iterations = 1

	doc, err := proc.Render()
	require.NoError(t, err)
	assert.Equal(t, SvgDocument(`<polygon points="100,50 98.5,53 101.5,53"/>`, 200, 100), doc)
}

func TestProcessor_AllShapesWellFormed(t *testing.T) {
	for _, shape := range []ShapeType{ShapeTriangle, ShapeCircle, ShapeRect, ShapeLine} {
		t.Run(string(shape), func(t *testing.T) {
			proc := *p
			proc.Shape = shape

			doc, err := proc.Render()
			require.NoError(t, err)

			name := string(shape)
			if shape == ShapeTriangle {
				name = "polygon"
			}
			assert.Equal(t, proc.Iterations, wellFormed(t, doc)[name])
		})
	}
}

func TestProcessor_EllipseFails(t *testing.T) {
	proc := *p
	proc.Shape = ShapeEllipse

	var buf bytes.Buffer
	err := proc.Process(&buf)
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Zero(t, buf.Len())
}

func TestProcessor_Deterministic(t *testing.T) {
	proc := *p

	var a, b bytes.Buffer
	require.NoError(t, proc.Process(&a))
	require.NoError(t, proc.Process(&b))
	assert.Equal(t, a.String(), b.String())
}
