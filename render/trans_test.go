package render_test

import (
	"testing"

	"github.com/kofi-q/axis-go/render"
	"github.com/stretchr/testify/require"
)

func TestMatrixTransform(t *testing.T) {
	for _, tc := range []struct {
		name         string
		m            render.Matrix
		x, y         float64
		wantX, wantY float64
	}{
		{name: "identity", m: render.Identity(), x: 3, y: 4, wantX: 3, wantY: 4},
		{name: "translate", m: render.Translate(10, -5), x: 3, y: 4, wantX: 13, wantY: -1},
		{name: "scale", m: render.Scale(2, -1), x: 3, y: 4, wantX: 6, wantY: -4},
		{name: "rotate", m: render.Rotate(90), x: 1, y: 0, wantX: 0, wantY: 1},
		{name: "rotate back", m: render.Rotate(-90), x: 1, y: 0, wantX: 0, wantY: -1},
		{
			name: "compose",
			m:    render.Scale(2, 2).Multiply(render.Translate(1, 1)),
			x:    3, y: 4, wantX: 7, wantY: 9,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			x, y := tc.m.Transform(tc.x, tc.y)
			require.Equal(t, tc.wantX, x, "x: got=%v, want=%v", x, tc.wantX)
			require.Equal(t, tc.wantY, y, "y: got=%v, want=%v", y, tc.wantY)
		})
	}
}

func TestMatrixMultiplyIdentity(t *testing.T) {
	m := render.Rotate(30).Multiply(render.Translate(5, 7))
	require.Equal(t, m, m.Multiply(render.Identity()))
	require.Equal(t, m, render.Identity().Multiply(m))
}

func TestMatrixPixel(t *testing.T) {
	x, y := render.Translate(0.4, 0.6).Pixel(10, 10)
	require.Equal(t, 10, x)
	require.Equal(t, 11, y)
}
