package render_test

import (
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	axis "github.com/kofi-q/axis-go"
	"github.com/kofi-q/axis-go/render"
	"github.com/stretchr/testify/require"
)

// elements counts the elements of an SVG document by name and collects the
// text content.
func elements(t *testing.T, doc []byte) (map[string]int, []string) {
	t.Helper()
	counts := make(map[string]int)
	var texts []string
	dec := xml.NewDecoder(bytes.NewReader(doc))
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		switch tok := tok.(type) {
		case xml.StartElement:
			counts[tok.Name.Local]++
			inText = tok.Name.Local == "text"
		case xml.CharData:
			if inText {
				texts = append(texts, string(tok))
			}
		case xml.EndElement:
			inText = false
		}
	}
	return counts, texts
}

func newLinear(t *testing.T) axis.Axis {
	t.Helper()
	cfg := axis.DefaultConfig()
	cfg.Min, cfg.Max = 0, 100
	cfg.Length = 500
	cfg.MinSpace = 50
	cfg.Fit = true
	a, err := axis.NewLinear(cfg)
	require.NoError(t, err)
	return a
}

func TestSVG(t *testing.T) {
	a := newLinear(t)
	minor, err := a.GridSubdivisions(10, 0, 0, "")
	require.NoError(t, err)
	require.Len(t, minor, 40)

	layers := []render.Layer{
		{Axis: a, X: 60, Y: 540, Minor: minor},
		{Axis: a, Orientation: render.Vertical, X: 60, Y: 540},
	}
	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, 640, 600, layers, render.Options{}))

	counts, texts := elements(t, buf.Bytes())
	require.Equal(t, 1, counts["svg"])
	require.Equal(t, 1, counts["g"])
	// two axis lines, 11 major ticks each, 40 minor ticks
	require.Equal(t, 2+2*11+40, counts["line"])
	require.Equal(t, 22, counts["text"])
	require.Equal(t, "0", texts[0])
	require.Equal(t, "100", texts[10])
}

func TestLayerMatrix(t *testing.T) {
	h := render.Layer{X: 60, Y: 540}
	x, y := h.Matrix().Transform(100, 6)
	require.Equal(t, 160.0, x)
	require.Equal(t, 546.0, y)

	v := render.Layer{Orientation: render.Vertical, X: 60, Y: 540}
	x, y = v.Matrix().Transform(100, 6)
	require.Equal(t, 54.0, x)
	require.Equal(t, 440.0, y)
}

func TestSVGErrors(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, render.SVG(&buf, 0, 100, nil, render.Options{}))

	buf.Reset()
	require.Error(t, render.SVG(&buf, 100, 100, []render.Layer{{}}, render.Options{}))

	a := newLinear(t)
	a.SetLength(-1)
	buf.Reset()
	err := render.SVG(&buf, 100, 100, []render.Layer{{Axis: a}}, render.Options{})
	require.ErrorIs(t, err, axis.ErrInvalidConfig)
}
