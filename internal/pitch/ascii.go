package pitch

import (
	"fmt"
	"strings"
)

// Occupancy 0..9 maps onto a ramp of increasingly dense glyphs.
var asciiRamp = []byte(" .:-=+*#%@")

// RenderASCII draws the view as plain text for terminal use. Each cell
// is doubled horizontally so the grid keeps a pitch-like aspect ratio.
func (r *Renderer) RenderASCII(v View) (string, error) {
	if err := checkGrid(v); err != nil {
		return "", err
	}

	var b strings.Builder
	if v.Title != "" {
		b.WriteString(v.Title + "\n")
	}
	if v.Subtitle != "" {
		b.WriteString(v.Subtitle + "\n")
	}

	cols := v.Grid.Cols()
	border := "+" + strings.Repeat("-", cols*2) + "+"
	b.WriteString(border + "\n")
	for _, row := range v.Grid {
		b.WriteByte('|')
		for _, val := range row {
			glyph := asciiRamp[len(asciiRamp)-1]
			if val < len(asciiRamp) {
				glyph = asciiRamp[val]
			}
			b.WriteByte(glyph)
			b.WriteByte(glyph)
		}
		b.WriteString("|\n")
	}
	b.WriteString(border + "\n")

	if v.Marker != nil {
		// The source frame is mirrored; report the pitch-frame position.
		fmt.Fprintf(&b, "avg position: (%.1f, %.1f) m\n", -v.Marker.X/100, -v.Marker.Y/100)
	}
	if v.Endnote != "" {
		b.WriteString(v.Endnote + "\n")
	}
	return b.String(), nil
}
