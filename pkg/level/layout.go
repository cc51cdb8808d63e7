// Package level produces the initial block field of a board. The field is a
// rows x columns grid; the board takes whatever placements it is given.
package level

import (
	"image/color"
	"sort"

	"github.com/opd-ai/go-breakout/pkg/physics"
)

// ColorPolicy decides how colors are spread over the grid
type ColorPolicy int

const (
	// SingleColor paints every block with the first palette color
	SingleColor ColorPolicy = iota
	// ColorPerRow cycles through the palette one row at a time
	ColorPerRow
)

// String returns the policy name as used in configuration files
func (p ColorPolicy) String() string {
	switch p {
	case SingleColor:
		return "single"
	case ColorPerRow:
		return "per_row"
	default:
		return "unknown"
	}
}

// ParseColorPolicy is the inverse of ColorPolicy.String
func ParseColorPolicy(s string) (ColorPolicy, bool) {
	switch s {
	case "single", "":
		return SingleColor, true
	case "per_row":
		return ColorPerRow, true
	default:
		return SingleColor, false
	}
}

// DefaultPalette is used when a layout has no colors of its own
var DefaultPalette = []color.RGBA{
	{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF},
	{R: 0xFB, G: 0x8C, B: 0x00, A: 0xFF},
	{R: 0xFD, G: 0xD8, B: 0x35, A: 0xFF},
	{R: 0x43, G: 0xA0, B: 0x47, A: 0xFF},
	{R: 0x1E, G: 0x88, B: 0xE5, A: 0xFF},
}

// Layout describes a grid of equally sized blocks
type Layout struct {
	Rows      int
	Columns   int
	Origin    physics.Vector2D
	BlockSize physics.Vector2D
	Gap       float64
	Policy    ColorPolicy
	Colors    []color.RGBA
}

// Placement is one block of a generated field
type Placement struct {
	Hitbox physics.Rectangle
	Color  color.RGBA
	Row    int
	Column int
}

// Generate lays the blocks out row by row, left to right. Overlapping
// blocks are not rejected.
func (l Layout) Generate() []Placement {
	if l.Rows <= 0 || l.Columns <= 0 {
		return nil
	}

	palette := l.Colors
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	stepX := l.BlockSize.X + l.Gap
	stepY := l.BlockSize.Y + l.Gap

	placements := make([]Placement, 0, l.Rows*l.Columns)
	for row := 0; row < l.Rows; row++ {
		c := palette[0]
		if l.Policy == ColorPerRow {
			c = palette[row%len(palette)]
		}
		for col := 0; col < l.Columns; col++ {
			placements = append(placements, Placement{
				Hitbox: physics.NewRectangle(
					l.Origin.X+float64(col)*stepX,
					l.Origin.Y+float64(row)*stepY,
					l.BlockSize.X,
					l.BlockSize.Y,
				),
				Color:  c,
				Row:    row,
				Column: col,
			})
		}
	}
	return placements
}

// Bounds returns the rectangle covered by the whole grid
func (l Layout) Bounds() physics.Rectangle {
	if l.Rows <= 0 || l.Columns <= 0 {
		return physics.Rectangle{Position: l.Origin}
	}
	w := float64(l.Columns)*l.BlockSize.X + float64(l.Columns-1)*l.Gap
	h := float64(l.Rows)*l.BlockSize.Y + float64(l.Rows-1)*l.Gap
	return physics.NewRectangle(l.Origin.X, l.Origin.Y, w, h)
}

// DefaultLayout fits a 5 x 8 field with one color per row into the upper
// part of a board of the given size
func DefaultLayout(size float64) Layout {
	return FitLayout(size, 5, 8, ColorPerRow)
}

// FitLayout sizes a rows x columns grid so it spans the board width with a
// margin and takes up about a quarter of its height
func FitLayout(size float64, rows, columns int, policy ColorPolicy) Layout {
	gap := size / 80
	margin := size / 20

	l := Layout{
		Rows:    rows,
		Columns: columns,
		Origin:  physics.Vector2D{X: margin, Y: margin},
		Gap:     gap,
		Policy:  policy,
	}
	if rows <= 0 || columns <= 0 {
		return l
	}

	usableW := size - 2*margin - float64(columns-1)*gap
	usableH := size/4 - float64(rows-1)*gap
	l.BlockSize = physics.Vector2D{
		X: max(usableW/float64(columns), 0),
		Y: max(usableH/float64(rows), 0),
	}
	return l
}

// Preset is a named layout recipe. Presets are resolved against a board
// size because block dimensions scale with it.
type Preset struct {
	Name        string
	Description string
	Rows        int
	Columns     int
	Policy      ColorPolicy
}

var presets = map[string]Preset{
	"classic": {
		Name:        "classic",
		Description: "Five rainbow rows of eight blocks",
		Rows:        5,
		Columns:     8,
		Policy:      ColorPerRow,
	},
	"wall": {
		Name:        "wall",
		Description: "Eight dense single-color rows",
		Rows:        8,
		Columns:     12,
		Policy:      SingleColor,
	},
	"sparse": {
		Name:        "sparse",
		Description: "Two rows of four large blocks",
		Rows:        2,
		Columns:     4,
		Policy:      ColorPerRow,
	},
}

// GetPreset returns the named preset
func GetPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the names of all presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Layout resolves the preset for a board of the given size
func (p Preset) Layout(size float64) Layout {
	return FitLayout(size, p.Rows, p.Columns, p.Policy)
}
