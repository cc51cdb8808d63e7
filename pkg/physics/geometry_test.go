package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointSegmentDistance(t *testing.T) {
	horizontal := Segment{Start: Vector2D{X: 0, Y: 0}, End: Vector2D{X: 10, Y: 0}}

	tests := []struct {
		name     string
		point    Vector2D
		segment  Segment
		expected float64
	}{
		{"projects_inside", Vector2D{X: 5, Y: 2.5}, horizontal, 2.5},
		{"clamps_to_start", Vector2D{X: -0.3, Y: 0.4}, horizontal, 0.5},
		{"clamps_to_end", Vector2D{X: 13, Y: -4}, horizontal, 5},
		{"on_segment", Vector2D{X: 7, Y: 0}, horizontal, 0},
		{"left_of_vertical", Vector2D{X: 2.5, Y: 0}, Segment{Start: Vector2D{X: 0, Y: 2}, End: Vector2D{X: 0, Y: -4}}, 2.5},
		{"right_of_vertical", Vector2D{X: 5.5, Y: 0}, Segment{Start: Vector2D{X: 5, Y: 2}, End: Vector2D{X: 5, Y: -4}}, 0.5},
		{"zero_length_segment", Vector2D{X: 4, Y: 5}, Segment{Start: Vector2D{X: 1, Y: 1}, End: Vector2D{X: 1, Y: 1}}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PointSegmentDistance(tt.point, tt.segment), tolerance)
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	floor := Segment{Start: Vector2D{X: 0, Y: 0}, End: Vector2D{X: 10, Y: 0}}

	tests := []struct {
		name     string
		a, b     Segment
		hit      bool
		point    Vector2D
		distance float64
	}{
		{
			name:  "crossing",
			a:     Segment{Start: Vector2D{X: 5, Y: -5}, End: Vector2D{X: 5, Y: 5}},
			b:     floor,
			hit:   true,
			point: Vector2D{X: 5, Y: 0},
		},
		{
			name:  "crossing_off_centre",
			a:     Segment{Start: Vector2D{X: 5, Y: -2}, End: Vector2D{X: 5, Y: 8}},
			b:     floor,
			hit:   true,
			point: Vector2D{X: 5, Y: 0},
		},
		{
			name:  "start_on_vertical",
			a:     Segment{Start: Vector2D{X: 5, Y: 0}, End: Vector2D{X: 6, Y: 0}},
			b:     Segment{Start: Vector2D{X: 5, Y: 2}, End: Vector2D{X: 5, Y: -4}},
			hit:   true,
			point: Vector2D{X: 5, Y: 0},
		},
		{
			name:     "vertical_out_of_reach",
			a:        Segment{Start: Vector2D{X: -1, Y: 0}, End: Vector2D{X: 6, Y: 0}},
			b:        Segment{Start: Vector2D{X: -5, Y: 2}, End: Vector2D{X: -5, Y: -4}},
			distance: 4,
		},
		{
			name:  "endpoint_touch",
			a:     Segment{Start: Vector2D{X: 10, Y: 0}, End: Vector2D{X: 10, Y: 5}},
			b:     floor,
			hit:   true,
			point: Vector2D{X: 10, Y: 0},
		},
		{
			name:     "parallel",
			a:        Segment{Start: Vector2D{X: 0, Y: 4}, End: Vector2D{X: 10, Y: 4}},
			b:        floor,
			distance: 4,
		},
		{
			name:     "collinear_overlap_is_not_a_hit",
			a:        Segment{Start: Vector2D{X: 5, Y: 0}, End: Vector2D{X: 15, Y: 0}},
			b:        floor,
			distance: 0,
		},
		{
			name:     "miss",
			a:        Segment{Start: Vector2D{X: 12, Y: 1}, End: Vector2D{X: 12, Y: 5}},
			b:        floor,
			distance: math.Sqrt(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentDistance(tt.a, tt.b)
			require.Equal(t, tt.hit, got.Hit)
			if tt.hit {
				assert.True(t, approxEqual(got.Point, tt.point), "point %v, expected %v", got.Point, tt.point)
				assert.Zero(t, got.Distance)
				return
			}
			assert.InDelta(t, tt.distance, got.Distance, tolerance)
		})
	}
}

func TestSegmentDistance_Symmetric(t *testing.T) {
	a := Segment{Start: Vector2D{X: 1, Y: 7}, End: Vector2D{X: 9, Y: -3}}
	b := Segment{Start: Vector2D{X: 0, Y: 0}, End: Vector2D{X: 10, Y: 4}}

	ab, ba := SegmentDistance(a, b), SegmentDistance(b, a)
	require.True(t, ab.Hit)
	require.True(t, ba.Hit)
	assert.True(t, approxEqual(ab.Point, ba.Point), "%v != %v", ab.Point, ba.Point)
}

func TestRectangle_Geometry(t *testing.T) {
	r := NewRectangle(10, 20, 30, 40)

	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, Vector2D{X: 25, Y: 40}, r.Center())
	assert.Equal(t, NewRectangle(0, 0, 30, 40), r.MoveTo(Vector2D{}))

	assert.True(t, r.Contains(Vector2D{X: 10, Y: 60}))
	assert.False(t, r.Contains(Vector2D{X: 9.9, Y: 30}))
}

func TestRectangle_Intersects(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)

	tests := []struct {
		name     string
		other    Rectangle
		expected bool
	}{
		{"overlapping", NewRectangle(5, 5, 10, 10), true},
		{"contained", NewRectangle(2, 2, 1, 1), true},
		{"touching_edge", NewRectangle(10, 0, 5, 5), true},
		{"touching_corner", NewRectangle(10, 10, 5, 5), true},
		{"apart", NewRectangle(11, 0, 5, 5), false},
		{"below", NewRectangle(0, 10.5, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Intersects(tt.other))
			assert.Equal(t, tt.expected, tt.other.Intersects(r))
		})
	}
}

func TestRectangle_Edges(t *testing.T) {
	r := NewRectangle(0, 0, 10, 5)
	edges := r.Edges()

	expected := []struct {
		side    EdgeSide
		start   Vector2D
		end     Vector2D
		outward Vector2D
	}{
		{EdgeTop, Vector2D{X: 0, Y: 0}, Vector2D{X: 10, Y: 0}, Vector2D{X: 0, Y: -1}},
		{EdgeBottom, Vector2D{X: 0, Y: 5}, Vector2D{X: 10, Y: 5}, Vector2D{X: 0, Y: 1}},
		{EdgeLeft, Vector2D{X: 0, Y: 0}, Vector2D{X: 0, Y: 5}, Vector2D{X: -1, Y: 0}},
		{EdgeRight, Vector2D{X: 10, Y: 0}, Vector2D{X: 10, Y: 5}, Vector2D{X: 1, Y: 0}},
	}
	for i, want := range expected {
		assert.Equal(t, want.side, edges[i].Side)
		assert.Equal(t, want.start, edges[i].Segment.Start, want.side.String())
		assert.Equal(t, want.end, edges[i].Segment.End, want.side.String())
		assert.Equal(t, want.outward, edges[i].Outward, want.side.String())
	}
}

func TestBody_ApplyVelocity(t *testing.T) {
	body := NewBody(NewRectangle(0, 0, 10, 10), Vector2D{X: 20, Y: -10})
	assert.Equal(t, body.Hitbox.Position, body.PreviousPosition)

	body.ApplyVelocity(0.5)
	assert.Equal(t, Vector2D{X: 0, Y: 0}, body.PreviousPosition)
	assert.Equal(t, Vector2D{X: 10, Y: -5}, body.Position())
	assert.Equal(t, Segment{Start: Vector2D{}, End: Vector2D{X: 10, Y: -5}}, body.TickSegment())
	assert.Equal(t, NewRectangle(0, -5, 20, 15), body.SweptBounds())

	paths := body.CornerPaths()
	assert.Equal(t, Segment{Start: Vector2D{X: 10, Y: 10}, End: Vector2D{X: 20, Y: 5}}, paths[3])
}

func TestSweptCrossings(t *testing.T) {
	body := NewBody(NewRectangle(0, 0, 10, 10), Vector2D{X: 0, Y: 20})
	body.ApplyVelocity(1)
	obstacle := NewRectangle(-5, 15, 20, 10)

	crossings := SweptCrossings(&body, obstacle)
	require.Len(t, crossings, 6)
	for i := 1; i < len(crossings); i++ {
		assert.LessOrEqual(t, crossings[i-1].Distance, crossings[i].Distance)
	}

	closest, ok := ClosestCrossing(&body, obstacle)
	require.True(t, ok)
	assert.Equal(t, 2, closest.Corner, "bottom-left corner reaches the obstacle first")
	assert.Equal(t, EdgeTop, closest.Edge.Side)
	assert.True(t, approxEqual(Vector2D{X: 0, Y: 15}, closest.Point))
	assert.InDelta(t, 5, closest.Distance, tolerance)
}

func TestSweptCrossings_Miss(t *testing.T) {
	body := NewBody(NewRectangle(0, 0, 10, 10), Vector2D{X: 20, Y: 0})
	body.ApplyVelocity(1)

	assert.Empty(t, SweptCrossings(&body, NewRectangle(0, 50, 20, 10)))
	_, ok := ClosestCrossing(&body, NewRectangle(0, 50, 20, 10))
	assert.False(t, ok)
}

func TestSweptCrossings_StationaryBodyNeverCrosses(t *testing.T) {
	body := NewBody(NewRectangle(0, 0, 10, 10), Vector2D{})
	body.ApplyVelocity(1)

	_, ok := ClosestCrossing(&body, NewRectangle(5, 5, 10, 10))
	assert.False(t, ok)
}
