package physics

// EdgeSide names one side of an axis-aligned rectangle
type EdgeSide int

const (
	EdgeTop EdgeSide = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// String returns the side name
func (s EdgeSide) String() string {
	switch s {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Edge is one boundary segment of a rectangle together with its outward normal
type Edge struct {
	Side    EdgeSide
	Segment Segment
	Outward Vector2D
}

// Rectangle is an axis-aligned box anchored at its top-left corner.
// Y grows downwards.
type Rectangle struct {
	Position  Vector2D
	Dimension Vector2D
}

// NewRectangle creates a rectangle from its top-left corner and size
func NewRectangle(x, y, w, h float64) Rectangle {
	return Rectangle{
		Position:  Vector2D{X: x, Y: y},
		Dimension: Vector2D{X: w, Y: h},
	}
}

func (r Rectangle) Width() float64  { return r.Dimension.X }
func (r Rectangle) Height() float64 { return r.Dimension.Y }
func (r Rectangle) Left() float64   { return r.Position.X }
func (r Rectangle) Right() float64  { return r.Position.X + r.Dimension.X }
func (r Rectangle) Top() float64    { return r.Position.Y }
func (r Rectangle) Bottom() float64 { return r.Position.Y + r.Dimension.Y }

// Center returns the midpoint of the rectangle
func (r Rectangle) Center() Vector2D {
	return r.Position.Add(r.Dimension.Scale(0.5))
}

// MoveTo returns the rectangle with its top-left corner at position
func (r Rectangle) MoveTo(position Vector2D) Rectangle {
	return Rectangle{Position: position, Dimension: r.Dimension}
}

// Intersects reports whether the two rectangles overlap. Touching edges
// count as an overlap.
func (r Rectangle) Intersects(o Rectangle) bool {
	if r.Right() < o.Left() ||
		r.Left() > o.Right() ||
		r.Bottom() < o.Top() ||
		r.Top() > o.Bottom() {
		return false
	}
	return true
}

// Contains reports whether point lies inside or on the rectangle
func (r Rectangle) Contains(point Vector2D) bool {
	return point.X >= r.Left() && point.X <= r.Right() &&
		point.Y >= r.Top() && point.Y <= r.Bottom()
}

// Corners returns top-left, top-right, bottom-left and bottom-right offsets
// relative to Position
func (r Rectangle) Corners() [4]Vector2D {
	return [4]Vector2D{
		{X: 0, Y: 0},
		{X: r.Dimension.X, Y: 0},
		{X: 0, Y: r.Dimension.Y},
		{X: r.Dimension.X, Y: r.Dimension.Y},
	}
}

// Edges returns the top, bottom, left and right boundary segments
func (r Rectangle) Edges() [4]Edge {
	tl := r.Position
	tr := Vector2D{X: r.Right(), Y: r.Top()}
	bl := Vector2D{X: r.Left(), Y: r.Bottom()}
	br := Vector2D{X: r.Right(), Y: r.Bottom()}

	return [4]Edge{
		{Side: EdgeTop, Segment: Segment{Start: tl, End: tr}, Outward: Vector2D{X: 0, Y: -1}},
		{Side: EdgeBottom, Segment: Segment{Start: bl, End: br}, Outward: Vector2D{X: 0, Y: 1}},
		{Side: EdgeLeft, Segment: Segment{Start: tl, End: bl}, Outward: Vector2D{X: -1, Y: 0}},
		{Side: EdgeRight, Segment: Segment{Start: tr, End: br}, Outward: Vector2D{X: 1, Y: 0}},
	}
}
