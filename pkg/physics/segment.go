package physics

import "math"

// Segment is a straight line between two points
type Segment struct {
	Start Vector2D
	End   Vector2D
}

// Vector returns the direction vector from Start to End
func (s Segment) Vector() Vector2D {
	return s.End.Sub(s.Start)
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.Vector().Length()
}

// Translate returns the segment shifted by offset
func (s Segment) Translate(offset Vector2D) Segment {
	return Segment{Start: s.Start.Add(offset), End: s.End.Add(offset)}
}

// HitOrDistance is the result of a segment-segment test. When Hit is true
// Point holds the intersection and Distance is zero; otherwise Distance
// holds the approximate gap between the segments.
type HitOrDistance struct {
	Hit      bool
	Point    Vector2D
	Distance float64
}

// PointSegmentDistance returns the distance from point to the closest point
// of s. A zero-length segment degrades to the distance to its start.
func PointSegmentDistance(point Vector2D, s Segment) float64 {
	segment := s.Vector()
	lengthSquared := segment.LengthSquared()
	startToPoint := point.Sub(s.Start)

	if lengthSquared == 0 {
		return startToPoint.Length()
	}

	t := Clamp(startToPoint.Dot(segment)/lengthSquared, 0, 1)
	projection := s.Start.Add(segment.Scale(t))
	return point.Sub(projection).Length()
}

// SegmentDistance tests a against b. If they cross, the crossing point is
// returned as a hit. Otherwise the distance is the smallest of the four
// endpoint-to-segment distances, which approximates the gap between them.
// Parallel segments never report a hit.
func SegmentDistance(a, b Segment) HitOrDistance {
	a1 := a.Vector()
	a2 := b.Vector()
	offset := a.Start.Sub(b.Start)

	denominator := a1.Cross(a2)
	if denominator != 0 {
		s := a1.Cross(offset) / denominator
		t := a2.Cross(offset) / denominator

		if s >= 0 && s <= 1 && t >= 0 && t <= 1 {
			return HitOrDistance{Hit: true, Point: a.Start.Add(a1.Scale(t))}
		}
	}

	distance := math.Min(
		math.Min(PointSegmentDistance(a.Start, b), PointSegmentDistance(a.End, b)),
		math.Min(PointSegmentDistance(b.Start, a), PointSegmentDistance(b.End, a)),
	)
	return HitOrDistance{Distance: distance}
}
