// Package pitch renders heatmap grids onto a soccer pitch. It owns every
// presentation concern the document layer stays out of: axis orientation,
// the average-position sign inversion, titles and endnotes, and shading.
package pitch

import "github.com/fortuna/pallas/internal/tracab"

// Default pitch dimensions in meters, matching the TF05 exports.
const (
	DefaultLength = 105.0
	DefaultWidth  = 68.0
)

// Marker is an average-position dot. Coordinates are in the TF05 source
// frame (centimeters from the pitch center); the renderer applies the
// sign inversion into the pitch frame.
type Marker struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// View is one renderable heatmap: the decoded grid plus the labels that
// cross the rendering boundary.
type View struct {
	Grid     tracab.Grid `json:"grid"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`
	Endnote  string      `json:"endnote"`
	Marker   *Marker     `json:"marker,omitempty"`
	Legend   bool        `json:"-"`
}
