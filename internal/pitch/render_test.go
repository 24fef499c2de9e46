package pitch

import (
	"strings"
	"testing"

	"github.com/fortuna/pallas/internal/tracab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodedGrid(t *testing.T, raw string) tracab.Grid {
	t.Helper()
	grid, err := tracab.Decode(raw)
	require.NoError(t, err)
	return grid
}

func TestRenderSVG(t *testing.T) {
	r := NewRenderer()
	view := View{
		Grid:    decodedGrid(t, strings.Repeat("0123456789", 28)),
		Title:   "Alpha FC - overall",
		Endnote: "Alpha FC v. Beta United, 2023-05-14",
		Legend:  true,
	}

	out, err := r.RenderSVG(view)
	require.NoError(t, err)

	svg := string(out)
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, "</svg>")
	assert.Contains(t, svg, "Alpha FC - overall")
	assert.Contains(t, svg, "Alpha FC v. Beta United, 2023-05-14")
	assert.Contains(t, svg, `url(#intensity)`)
}

func TestRenderSVGZeroGridHasNoCells(t *testing.T) {
	r := NewRenderer()
	out, err := r.RenderSVG(View{Grid: decodedGrid(t, strings.Repeat("0", 280)), Title: "quiet"})
	require.NoError(t, err)

	// Only the background and pitch furniture, no shaded cells.
	assert.NotContains(t, string(out), "fill-opacity")
}

func TestRenderSVGMarkerInversion(t *testing.T) {
	r := NewRenderer()
	view := View{
		Grid:   decodedGrid(t, strings.Repeat("0", 280)),
		Marker: &Marker{X: 1000, Y: -500}, // cm, source frame
	}

	out, err := r.RenderSVG(view)
	require.NoError(t, err)

	// x: 20 + (52.5 - 10) * 8 = 360, y: 90 + (34 - 5) * 8 = 322
	assert.Contains(t, string(out), `<circle cx="360.0" cy="322.0" r="6"`)
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	r := NewRenderer()
	view := View{
		Grid:  decodedGrid(t, strings.Repeat("0", 280)),
		Title: "Alpha <FC> & co",
	}

	out, err := r.RenderSVG(view)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Alpha &lt;FC&gt; &amp; co")
}

func TestRenderRejectsBadGrids(t *testing.T) {
	r := NewRenderer()

	_, err := r.RenderSVG(View{})
	assert.Error(t, err)

	_, err = r.RenderSVG(View{Grid: tracab.Grid{{1, 2}, {3}}})
	assert.Error(t, err)
}

func TestRenderASCII(t *testing.T) {
	r := NewRenderer()
	view := View{
		Grid:     decodedGrid(t, strings.Repeat("0", 139)+"9"+strings.Repeat("0", 140)),
		Title:    "Luca BARZAGLI - Alpha FC #8 - overall",
		Subtitle: "Possession: 52% Avg. time/possession: 24.5s",
		Endnote:  "Alpha FC v. Beta United, 2023-05-14",
	}

	out, err := r.RenderASCII(view)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title + subtitle + border + 14 rows + border + endnote
	require.Len(t, lines, 19)
	assert.Equal(t, view.Title, lines[0])
	assert.Contains(t, out, "@@")
	assert.Equal(t, "+"+strings.Repeat("-", 40)+"+", lines[2])
}
