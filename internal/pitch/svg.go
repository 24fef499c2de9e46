package pitch

import (
	"fmt"
	"strings"
)

// Renderer draws heatmap views. The zero value is not usable; call
// NewRenderer for the standard 105x68 pitch.
type Renderer struct {
	Length float64 // pitch length in meters
	Width  float64 // pitch width in meters
}

// NewRenderer returns a renderer for the standard pitch dimensions.
func NewRenderer() *Renderer {
	return &Renderer{Length: DefaultLength, Width: DefaultWidth}
}

// SVG layout constants. The dark background and cell hue follow the
// palette the service has always plotted with.
const (
	svgScale      = 8.0 // px per meter
	svgMarginLeft = 20.0
	svgMarginTop  = 90.0
	svgMarginBot  = 40.0
	svgLegendW    = 60.0

	colorBackground = "#22312b"
	colorLine       = "#000000"
	colorCell       = "#3b6fb6"
	colorText       = "#efefef"
	colorMarker     = "#d62728"
)

// RenderSVG draws the view as a standalone SVG document.
func (r *Renderer) RenderSVG(v View) ([]byte, error) {
	if err := checkGrid(v); err != nil {
		return nil, err
	}

	pitchW := r.Length * svgScale
	pitchH := r.Width * svgScale
	totalW := svgMarginLeft + pitchW + svgLegendW
	totalH := svgMarginTop + pitchH + svgMarginBot

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		totalW, totalH, totalW, totalH)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>`+"\n", totalW, totalH, colorBackground)

	r.writeCells(&b, v)
	r.writePitchLines(&b)
	r.writeMarker(&b, v)
	r.writeText(&b, v, totalW)
	if v.Legend {
		r.writeLegend(&b, v)
	}

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

func checkGrid(v View) error {
	if v.Grid.Rows() == 0 || v.Grid.Cols() == 0 {
		return fmt.Errorf("rendering heatmap: empty grid")
	}
	cols := v.Grid.Cols()
	for i, row := range v.Grid {
		if len(row) != cols {
			return fmt.Errorf("rendering heatmap: ragged grid at row %d", i)
		}
	}
	return nil
}

func (r *Renderer) writeCells(b *strings.Builder, v View) {
	rows, cols := v.Grid.Rows(), v.Grid.Cols()
	max := v.Grid.Max()
	cellW := r.Length * svgScale / float64(cols)
	cellH := r.Width * svgScale / float64(rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			val := v.Grid[row][col]
			if val == 0 || max == 0 {
				continue
			}
			opacity := float64(val) / float64(max)
			x := svgMarginLeft + float64(col)*cellW
			y := svgMarginTop + float64(row)*cellH
			fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.3f"/>`+"\n",
				x, y, cellW, cellH, colorCell, opacity)
		}
	}
}

// writePitchLines draws the outline, halfway line, center circle and
// both penalty and goal areas. All measurements are the laws-of-the-game
// standard ones.
func (r *Renderer) writePitchLines(b *strings.Builder) {
	s := svgScale
	left, top := svgMarginLeft, svgMarginTop
	w, h := r.Length*s, r.Width*s
	midX := left + w/2
	midY := top + h/2

	line := func(format string, args ...interface{}) {
		fmt.Fprintf(b, format+"\n", args...)
	}

	line(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2"/>`,
		left, top, w, h, colorLine)
	line(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`,
		midX, top, midX, top+h, colorLine)
	line(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="2"/>`,
		midX, midY, 9.15*s, colorLine)
	line(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>`, midX, midY, colorLine)

	// Penalty areas: 16.5m deep, 40.32m wide. Goal areas: 5.5m by 18.32m.
	for _, box := range []struct{ depth, width float64 }{
		{16.5, 40.32},
		{5.5, 18.32},
	} {
		boxH := box.width * s
		boxY := midY - boxH/2
		line(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2"/>`,
			left, boxY, box.depth*s, boxH, colorLine)
		line(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2"/>`,
			left+w-box.depth*s, boxY, box.depth*s, boxH, colorLine)
	}
}

func (r *Renderer) writeMarker(b *strings.Builder, v View) {
	if v.Marker == nil {
		return
	}
	// Source frame is mirrored and in centimeters: invert both signs,
	// then scale to meters before projecting onto the pitch.
	mx := -v.Marker.X / 100
	my := -v.Marker.Y / 100
	x := svgMarginLeft + (r.Length/2+mx)*svgScale
	y := svgMarginTop + (r.Width/2-my)*svgScale
	fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="6" fill="%s"/>`+"\n", x, y, colorMarker)
}

func (r *Renderer) writeText(b *strings.Builder, v View, totalW float64) {
	if v.Title != "" {
		fmt.Fprintf(b, `<text x="%.1f" y="40" text-anchor="middle" font-family="sans-serif" font-size="28" fill="%s">%s</text>`+"\n",
			totalW/2, colorText, escapeText(v.Title))
	}
	if v.Subtitle != "" {
		fmt.Fprintf(b, `<text x="%.1f" y="68" text-anchor="middle" font-family="sans-serif" font-size="14" fill="%s">%s</text>`+"\n",
			totalW/2, colorText, escapeText(v.Subtitle))
	}
	if v.Endnote != "" {
		endY := svgMarginTop + r.Width*svgScale + 26
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" text-anchor="end" font-family="sans-serif" font-size="13" fill="%s">%s</text>`+"\n",
			svgMarginLeft+r.Length*svgScale, endY, colorText, escapeText(v.Endnote))
	}
}

// writeLegend draws a vertical intensity strip labelled 0..max, standing
// in for a colorbar.
func (r *Renderer) writeLegend(b *strings.Builder, v View) {
	x := svgMarginLeft + r.Length*svgScale + 18
	top := svgMarginTop
	h := r.Width * svgScale

	b.WriteString(`<defs><linearGradient id="intensity" x1="0" y1="1" x2="0" y2="0">` + "\n")
	fmt.Fprintf(b, `<stop offset="0" stop-color="%s" stop-opacity="0"/>`+"\n", colorCell)
	fmt.Fprintf(b, `<stop offset="1" stop-color="%s" stop-opacity="1"/>`+"\n", colorCell)
	b.WriteString(`</linearGradient></defs>` + "\n")

	fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="16" height="%.1f" fill="url(#intensity)" stroke="%s" stroke-width="1"/>`+"\n",
		x, top, h, colorText)
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="%s">%d</text>`+"\n",
		x+20, top+10, colorText, v.Grid.Max())
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="%s">0</text>`+"\n",
		x+20, top+h, colorText)
}

func escapeText(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}
