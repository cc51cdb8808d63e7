package physics

import "sort"

// Body tracks a hitbox moving with a constant velocity during a tick.
// PreviousPosition is where the hitbox started the most recent
// ApplyVelocity call; together with Hitbox.Position it spans the tick
// segment used for swept collision checks.
type Body struct {
	Hitbox           Rectangle
	PreviousPosition Vector2D
	Velocity         Vector2D
}

// NewBody creates a body at rest history-wise: its previous position is its
// current position.
func NewBody(hitbox Rectangle, velocity Vector2D) Body {
	return Body{
		Hitbox:           hitbox,
		PreviousPosition: hitbox.Position,
		Velocity:         velocity,
	}
}

// Position returns the current top-left corner of the hitbox
func (b *Body) Position() Vector2D {
	return b.Hitbox.Position
}

// ApplyVelocity advances the hitbox by Velocity*deltaTime, remembering the
// starting point
func (b *Body) ApplyVelocity(deltaTime float64) {
	b.PreviousPosition = b.Hitbox.Position
	b.Hitbox.Position = b.Hitbox.Position.Add(b.Velocity.Scale(deltaTime))
}

// TickSegment returns the path of the hitbox anchor during the last tick
func (b *Body) TickSegment() Segment {
	return Segment{Start: b.PreviousPosition, End: b.Hitbox.Position}
}

// SweptBounds returns the smallest rectangle covering the hitbox at both
// ends of the last tick
func (b *Body) SweptBounds() Rectangle {
	prev := b.Hitbox.MoveTo(b.PreviousPosition)
	left := min(prev.Left(), b.Hitbox.Left())
	top := min(prev.Top(), b.Hitbox.Top())
	right := max(prev.Right(), b.Hitbox.Right())
	bottom := max(prev.Bottom(), b.Hitbox.Bottom())
	return NewRectangle(left, top, right-left, bottom-top)
}

// CornerPaths returns the tick segment of every hitbox corner, in the order
// of Rectangle.Corners
func (b *Body) CornerPaths() [4]Segment {
	path := b.TickSegment()
	var paths [4]Segment
	for i, corner := range b.Hitbox.Corners() {
		paths[i] = path.Translate(corner)
	}
	return paths
}

// Crossing describes one corner path passing through one obstacle edge
type Crossing struct {
	Point    Vector2D
	Edge     Edge
	Corner   int
	Distance float64 // from the corner's previous position to Point
}

// SweptCrossings returns every place where a corner of the body's hitbox
// crossed an edge of obstacle during the last tick, closest first.
func SweptCrossings(body *Body, obstacle Rectangle) []Crossing {
	var crossings []Crossing
	edges := obstacle.Edges()

	for corner, path := range body.CornerPaths() {
		for _, edge := range edges {
			result := SegmentDistance(path, edge.Segment)
			if !result.Hit {
				continue
			}
			crossings = append(crossings, Crossing{
				Point:    result.Point,
				Edge:     edge,
				Corner:   corner,
				Distance: result.Point.Distance(path.Start),
			})
		}
	}

	sort.SliceStable(crossings, func(i, j int) bool {
		return crossings[i].Distance < crossings[j].Distance
	})
	return crossings
}

// ClosestCrossing returns the crossing nearest to the previous position, or
// false when the body did not pass through any edge of obstacle.
func ClosestCrossing(body *Body, obstacle Rectangle) (Crossing, bool) {
	crossings := SweptCrossings(body, obstacle)
	if len(crossings) == 0 {
		return Crossing{}, false
	}
	return crossings[0], true
}
