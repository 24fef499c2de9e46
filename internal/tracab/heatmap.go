package tracab

import (
	"fmt"
	"strings"
)

// Grid geometry fixed by the TF05 heatmap encoding: 14 buckets across
// the pitch width, 20 along its length, flattened row-major into a
// 280-character digit string.
const (
	GridRows = 14
	GridCols = 20
)

// Grid is a rectangular occupancy grid decoded from a heatmap string.
type Grid [][]int

// Decode reshapes a 280-character digit string into a 14x20 grid.
func Decode(raw string) (Grid, error) {
	return DecodeShape(raw, GridRows, GridCols)
}

// DecodeShape reshapes a digit string into a rows x cols grid,
// row-major. The string length must equal rows*cols and every character
// must be a decimal digit; any violation rejects the whole string, no
// partial grid is ever returned. Axis orientation is untouched here;
// coordinate flips belong to the renderer.
func DecodeShape(raw string, rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &FormatError{Reason: fmt.Sprintf("non-positive shape %dx%d", rows, cols)}
	}
	if len(raw) != rows*cols {
		return nil, &FormatError{Reason: fmt.Sprintf("length %d, want %d for a %dx%d grid", len(raw), rows*cols, rows, cols)}
	}
	grid := make(Grid, rows)
	for r := 0; r < rows; r++ {
		row := make([]int, cols)
		for c := 0; c < cols; c++ {
			ch := raw[r*cols+c]
			if ch < '0' || ch > '9' {
				return nil, &FormatError{Reason: fmt.Sprintf("non-digit character %q at offset %d", ch, r*cols+c)}
			}
			row[c] = int(ch - '0')
		}
		grid[r] = row
	}
	return grid, nil
}

// Rows returns the number of grid rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of grid columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Max returns the largest cell count. Renderers use it to scale shading.
func (g Grid) Max() int {
	max := 0
	for _, row := range g {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Flatten writes the grid back to its row-major digit string.
func (g Grid) Flatten() string {
	var b strings.Builder
	b.Grow(g.Rows() * g.Cols())
	for _, row := range g {
		for _, v := range row {
			b.WriteByte(byte('0' + v))
		}
	}
	return b.String()
}

// TeamKind selects one of the situational team heatmaps.
type TeamKind string

const (
	TeamOverall  TeamKind = "overall"
	TeamDefence  TeamKind = "defence"
	TeamMidfield TeamKind = "midfield"
	TeamAttack   TeamKind = "attack"
)

// TeamKinds lists the valid team heatmap kinds.
func TeamKinds() []string {
	return []string{string(TeamOverall), string(TeamDefence), string(TeamMidfield), string(TeamAttack)}
}

// Span selects the portion of the match a possession heatmap covers.
type Span string

const (
	SpanOverall    Span = "overall"
	SpanFirstHalf  Span = "first-half"
	SpanSecondHalf Span = "second-half"
)

// Spans lists the valid possession heatmap spans.
func Spans() []string {
	return []string{string(SpanOverall), string(SpanFirstHalf), string(SpanSecondHalf)}
}

// Side is the possession qualifier: "in" while the own team has the
// ball, "out" while the opponent does.
type Side string

const (
	SideIn  Side = "in"
	SideOut Side = "out"
)

// Sides lists the valid possession qualifiers.
func Sides() []string {
	return []string{string(SideIn), string(SideOut)}
}

// Label spells the qualifier out for titles.
func (s Side) Label() string {
	if s == SideOut {
		return "out of possession"
	}
	return "in possession"
}

// RawHeatmap returns the raw digit string for one team heatmap kind.
// The kind is validated against the closed enumeration before any
// attribute is read, so an unknown kind can never surface as an empty
// grid further down.
func (t *Team) RawHeatmap(kind TeamKind) (string, error) {
	var raw, attr string
	switch kind {
	case TeamOverall:
		raw, attr = t.node.Heatmap, "sHeatmap"
	case TeamDefence:
		raw, attr = t.node.DefenceHeatmap, "sDefenceHeatmap"
	case TeamMidfield:
		raw, attr = t.node.MidfieldHeatmap, "sMidfieldHeatmap"
	case TeamAttack:
		raw, attr = t.node.AttackHeatmap, "sAttackHeatmap"
	default:
		return "", &InvalidKindError{Kind: string(kind), Valid: TeamKinds()}
	}
	if raw == "" {
		return "", &SchemaError{Element: t.element(), Field: attr}
	}
	return raw, nil
}

// RawHeatmap returns the player's whole-game heatmap string.
func (p *Player) RawHeatmap() (string, error) {
	if p.node.Heatmap == "" {
		return "", &SchemaError{Element: "Player", Field: "sHeatmap"}
	}
	return p.node.Heatmap, nil
}

// PossessionHeatmap returns the team's possession-qualified heatmap
// string for the given side and span.
func (t *Team) PossessionHeatmap(side Side, span Span) (string, error) {
	return possessionHeatmap(t.element(), t.node.Possession, side, span)
}

// PossessionHeatmap returns the player's possession-qualified heatmap
// string for the given side and span.
func (p *Player) PossessionHeatmap(side Side, span Span) (string, error) {
	return possessionHeatmap("Player", p.node.Possession, side, span)
}

func possessionHeatmap(owner string, data *xmlPossessionData, side Side, span Span) (string, error) {
	// Both enumerations are checked before touching the tree.
	var sideElem string
	switch side {
	case SideIn:
		sideElem = "OwnTeamPossession"
	case SideOut:
		sideElem = "OpponentPossession"
	default:
		return "", &InvalidKindError{Kind: string(side), Valid: Sides()}
	}
	var attr string
	switch span {
	case SpanOverall:
		attr = "sHeatmap"
	case SpanFirstHalf:
		attr = "sFirstHalfHeatmap"
	case SpanSecondHalf:
		attr = "sSecondHalfHeatmap"
	default:
		return "", &InvalidKindError{Kind: string(span), Valid: Spans()}
	}

	if data == nil {
		return "", &SchemaError{Element: owner, Field: "PossessionData"}
	}
	split := data.OwnTeam
	if side == SideOut {
		split = data.Opponent
	}
	if split == nil {
		return "", &SchemaError{Element: owner + "/PossessionData", Field: sideElem}
	}

	var raw string
	switch span {
	case SpanOverall:
		raw = split.Heatmap
	case SpanFirstHalf:
		raw = split.FirstHalfHeatmap
	case SpanSecondHalf:
		raw = split.SecondHalfHeatmap
	}
	if raw == "" {
		return "", &SchemaError{Element: owner + "/PossessionData/" + sideElem, Field: attr}
	}
	return raw, nil
}
