package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func wideGeometry(t *testing.T) *Geometry {
	t.Helper()
	g, err := NewGeometry(
		Size{Width: 1400, Height: 600},
		Size{Width: 700, Height: 500},
		Size{Width: 48, Height: 48},
	)
	require.NoError(t, err)
	return g
}

func TestNewGeometry_FitsCanvas(t *testing.T) {
	g := wideGeometry(t)

	require.InDelta(t, 0.5, g.Scale, eps)
	require.Equal(t, Size{Width: 700, Height: 300}, g.Resized)
	require.InDelta(t, 2.0, g.XFactor, eps)
	require.InDelta(t, 2.0, g.YFactor, eps)
	require.InDelta(t, 24.0, g.DrawW, eps)
	require.InDelta(t, 24.0, g.DrawH, eps)
}

func TestNewGeometry_TallImage(t *testing.T) {
	g, err := NewGeometry(
		Size{Width: 300, Height: 1000},
		Size{Width: 700, Height: 500},
		Size{Width: 48, Height: 48},
	)
	require.NoError(t, err)
	require.InDelta(t, 0.5, g.Scale, eps)
	require.Equal(t, Size{Width: 150, Height: 500}, g.Resized)
}

func TestNewGeometry_Rejects(t *testing.T) {
	_, err := NewGeometry(Size{0, 10}, Size{700, 500}, Size{1, 1})
	require.Error(t, err)

	_, err = NewGeometry(Size{100, 100}, Size{700, 500}, Size{101, 10})
	require.Error(t, err, "crop wider than image")

	_, err = NewGeometry(Size{100000, 10}, Size{7, 5}, Size{1, 1})
	require.Error(t, err, "resized height floors to zero")
}

func TestRegisterClick_Centre(t *testing.T) {
	g := wideGeometry(t)

	c, err := g.RegisterClick(350, 150)
	require.NoError(t, err)
	require.Equal(t, Coordinate{676, 276}, c)
}

func TestRegisterClick_SnapsToEdges(t *testing.T) {
	g := wideGeometry(t)

	c, err := g.RegisterClick(0, 0)
	require.NoError(t, err)
	require.Equal(t, Coordinate{0, 0}, c)

	c, err = g.RegisterClick(699, 299)
	require.NoError(t, err)
	require.Equal(t, Coordinate{1352, 552}, c)

	// below the displayed image but still on the canvas
	c, err = g.RegisterClick(10, 480)
	require.NoError(t, err)
	require.Equal(t, Coordinate{0, 552}, c)
}

func TestClampBox_StaysInsideImage(t *testing.T) {
	for _, sizes := range [][3]Size{
		{{1400, 600}, {700, 500}, {48, 48}},
		{{640, 480}, {700, 500}, {48, 48}},
		{{333, 777}, {700, 500}, {333, 20}},
		{{1024, 1024}, {700, 500}, {1024, 1024}},
	} {
		g, err := NewGeometry(sizes[0], sizes[1], sizes[2])
		require.NoError(t, err)

		for x := 0; x <= g.Canvas.Width; x += 7 {
			for y := 0; y <= g.Canvas.Height; y += 7 {
				x0, y0 := g.ClampBox(float64(x), float64(y))
				require.GreaterOrEqual(t, x0, -eps)
				require.GreaterOrEqual(t, y0, -eps)
				require.LessOrEqual(t, x0+g.DrawW, float64(g.Resized.Width)+eps)
				require.LessOrEqual(t, y0+g.DrawH, float64(g.Resized.Height)+eps)

				c, err := g.RegisterClick(float64(x), float64(y))
				require.NoError(t, err)
				require.LessOrEqual(t, int(c.X), g.Image.Width)
				require.LessOrEqual(t, int(c.Y), g.Image.Height)
			}
		}
	}
}
