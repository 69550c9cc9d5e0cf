package goldspiral

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestPolygon_PairsCoordinates(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPolygon([]float64{1, 2, 3, 4, 5.5, 6})
	require.NoError(t, err)

	assert.Equal([]vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5.5, Y: 6}}, p.Points())
	points, ok := p.Get("points")
	assert.True(ok)
	assert.Equal("1,2 3,4 5.5,6", points)
	assert.Equal(`<polygon points="1,2 3,4 5.5,6"/>`, p.Render())
}

func TestPolygon_OddCoordinates(t *testing.T) {
	_, err := NewPolygon([]float64{1, 2, 3})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrOddCoordinates))
}

func TestPolygon_EmptyPoints(t *testing.T) {
	p, err := NewPolygon(nil)
	require.NoError(t, err)
	assert.Equal(t, `<polygon points=""/>`, p.Render())
	assert.NoError(t, p.MoveAngle(10, 10))
	assert.Empty(t, p.Points())
}

func TestPolygon_ExtraAttributes(t *testing.T) {
	p, err := NewPolygon([]float64{0, 0, 1, 0, 1, 1}, Attr{Name: "clss", Value: "tri"}, Attr{Name: "fill", Value: "gold"})
	require.NoError(t, err)
	assert.Equal(t, `<polygon points="0,0 1,0 1,1" class="tri" fill="gold"/>`, p.Render())

	p.MoveRight(2)
	assert.Equal(t, `<polygon points="2,0 3,0 3,1" class="tri" fill="gold"/>`, p.Render())
}

func TestPolygon_Moves(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPolygon([]float64{0, 0, 10, 0, 10, 10})
	require.NoError(t, err)

	p.MoveLeft(2)
	p.MoveDown(3)
	assert.Equal([]vec.Vec2{{X: -2, Y: 3}, {X: 8, Y: 3}, {X: 8, Y: 13}}, p.Points())

	p.MoveRight(2)
	p.MoveUp(3)
	assert.Equal([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, p.Points())

	assert.NoError(p.MoveAngle(90, 5))
	for i, pt := range p.Points() {
		orig := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}[i]
		assert.InDelta(orig.X, pt.X, delta)
		assert.InDelta(orig.Y+5, pt.Y, delta)
	}
}

func TestPolygon_PointsStringMatchesPoints(t *testing.T) {
	p, err := NewPolygon([]float64{1, 1, 2, 2, 3, 3, 4, 4, 5, 5})
	require.NoError(t, err)

	check := func() {
		points, _ := p.Get("points")
		pairs := strings.Split(points, " ")
		assert.Len(t, pairs, len(p.Points()))
		for i, pair := range pairs {
			pt := p.Points()[i]
			assert.Equal(t, formatFloat(pt.X)+","+formatFloat(pt.Y), pair)
			assert.Equal(t, 1, strings.Count(pair, ","))
		}
	}

	check()
	for i := 0; i < 20; i++ {
		assert.NoError(t, p.MoveAngle(float64(i)*GoldenAngle, float64(i)*1.5))
		check()
	}
	p.Reset()
	check()
	assert.Equal(t, `<polygon points="1,1 2,2 3,3 4,4 5,5"/>`, p.Render())
}

func TestPolygon_ResetDoesNotShareInitialPoints(t *testing.T) {
	p, err := NewPolygon([]float64{0, 0, 1, 1})
	require.NoError(t, err)

	pts := p.Points()
	pts[0] = vec.Vec2{X: 100, Y: 100}

	p.MoveRight(1)
	p.Reset()
	p.MoveRight(1)
	p.Reset()
	assert.Equal(t, []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, p.Points())
}
