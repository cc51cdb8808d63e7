// pkg/physics/collision.go
package physics

import "sort"

// maxDepth bounds subdivision so stacked identical bounds cannot recurse forever
const maxDepth = 8

// QuadTree for spatial partitioning of static rectangles.
// Items that straddle a quadrant boundary stay in the parent node.
type QuadTree struct {
	Boundary  Rectangle
	Capacity  int
	Bounds    []Rectangle
	Items     []int
	Divided   bool
	NorthWest *QuadTree
	NorthEast *QuadTree
	SouthWest *QuadTree
	SouthEast *QuadTree

	depth int
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree(boundary Rectangle, capacity int) *QuadTree {
	if capacity < 1 {
		capacity = 1
	}
	return &QuadTree{
		Boundary: boundary,
		Capacity: capacity,
		Bounds:   make([]Rectangle, 0, capacity),
		Items:    make([]int, 0, capacity),
	}
}

// Insert stores item under bounds. It returns false when bounds lies
// outside the tree boundary.
func (qt *QuadTree) Insert(bounds Rectangle, item int) bool {
	if !qt.encloses(bounds) {
		return false
	}

	if !qt.Divided && (len(qt.Items) < qt.Capacity || qt.depth >= maxDepth) {
		qt.Bounds = append(qt.Bounds, bounds)
		qt.Items = append(qt.Items, item)
		return true
	}

	if !qt.Divided {
		qt.Subdivide()
	}

	if child := qt.childFor(bounds); child != nil {
		return child.Insert(bounds, item)
	}

	qt.Bounds = append(qt.Bounds, bounds)
	qt.Items = append(qt.Items, item)
	return true
}

// Subdivide splits the quadtree into four quadrants and pushes down the
// items that fit entirely into one of them
func (qt *QuadTree) Subdivide() {
	x := qt.Boundary.Position.X
	y := qt.Boundary.Position.Y
	w := qt.Boundary.Width() / 2
	h := qt.Boundary.Height() / 2

	qt.NorthWest = NewQuadTree(NewRectangle(x, y, w, h), qt.Capacity)
	qt.NorthEast = NewQuadTree(NewRectangle(x+w, y, w, h), qt.Capacity)
	qt.SouthWest = NewQuadTree(NewRectangle(x, y+h, w, h), qt.Capacity)
	qt.SouthEast = NewQuadTree(NewRectangle(x+w, y+h, w, h), qt.Capacity)
	for _, child := range []*QuadTree{qt.NorthWest, qt.NorthEast, qt.SouthWest, qt.SouthEast} {
		child.depth = qt.depth + 1
	}
	qt.Divided = true

	bounds, items := qt.Bounds, qt.Items
	qt.Bounds = make([]Rectangle, 0, qt.Capacity)
	qt.Items = make([]int, 0, qt.Capacity)
	for i, b := range bounds {
		if child := qt.childFor(b); child != nil {
			child.Insert(b, items[i])
			continue
		}
		qt.Bounds = append(qt.Bounds, b)
		qt.Items = append(qt.Items, items[i])
	}
}

// Query returns the items whose bounds overlap area, in ascending order
func (qt *QuadTree) Query(area Rectangle) []int {
	found := qt.collect(area, nil)
	sort.Ints(found)
	return found
}

func (qt *QuadTree) collect(area Rectangle, found []int) []int {
	if !qt.Boundary.Intersects(area) {
		return found
	}

	for i, bounds := range qt.Bounds {
		if bounds.Intersects(area) {
			found = append(found, qt.Items[i])
		}
	}

	if !qt.Divided {
		return found
	}

	found = qt.NorthWest.collect(area, found)
	found = qt.NorthEast.collect(area, found)
	found = qt.SouthWest.collect(area, found)
	found = qt.SouthEast.collect(area, found)
	return found
}

// Len returns the number of stored items
func (qt *QuadTree) Len() int {
	n := len(qt.Items)
	if qt.Divided {
		n += qt.NorthWest.Len() + qt.NorthEast.Len() + qt.SouthWest.Len() + qt.SouthEast.Len()
	}
	return n
}

func (qt *QuadTree) encloses(r Rectangle) bool {
	return r.Left() >= qt.Boundary.Left() && r.Right() <= qt.Boundary.Right() &&
		r.Top() >= qt.Boundary.Top() && r.Bottom() <= qt.Boundary.Bottom()
}

func (qt *QuadTree) childFor(r Rectangle) *QuadTree {
	for _, child := range []*QuadTree{qt.NorthWest, qt.NorthEast, qt.SouthWest, qt.SouthEast} {
		if child.encloses(r) {
			return child
		}
	}
	return nil
}
