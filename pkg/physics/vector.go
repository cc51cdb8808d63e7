// pkg/physics/vector.go
package physics

import "math"

// Epsilon is the tolerance used by approximate vector comparisons
const Epsilon = 1e-15

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Div divides the vector by a scalar value
func (v Vector2D) Div(divisor float64) Vector2D {
	return Vector2D{
		X: v.X / divisor,
		Y: v.Y / divisor,
	}
}

// Neg returns the vector pointing the opposite way
func (v Vector2D) Neg() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// AddAssign adds other to v in place
func (v *Vector2D) AddAssign(other Vector2D) {
	v.X += other.X
	v.Y += other.Y
}

// ScaleAssign multiplies v by factor in place
func (v *Vector2D) ScaleAssign(factor float64) {
	v.X *= factor
	v.Y *= factor
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return v.Div(length)
}

// SetLength returns the vector scaled to newLength, keeping its direction.
// The zero vector has no direction and is returned unchanged.
func (v Vector2D) SetLength(newLength float64) Vector2D {
	return v.Normalize().Scale(newLength)
}

// WithX returns a copy of v with X replaced
func (v Vector2D) WithX(x float64) Vector2D {
	return Vector2D{X: x, Y: v.Y}
}

// WithY returns a copy of v with Y replaced
func (v Vector2D) WithY(y float64) Vector2D {
	return Vector2D{X: v.X, Y: y}
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleWith returns the unsigned angle between v and other, in [0, Pi]
func (v Vector2D) AngleWith(other Vector2D) float64 {
	cos := Clamp(v.Normalize().Dot(other.Normalize()), -1, 1)
	return math.Acos(cos)
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Rotate rotates the vector by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateDegrees rotates the vector by angle (in degrees)
func (v Vector2D) RotateDegrees(deg float64) Vector2D {
	return v.Rotate(deg / 180 * math.Pi)
}

// Equalish reports whether both components differ by less than Epsilon
func (v Vector2D) Equalish(other Vector2D) bool {
	return math.Abs(v.X-other.X) < Epsilon && math.Abs(v.Y-other.Y) < Epsilon
}

// Reflect mirrors v about the axis given by normal. The normal does not
// have to be unit length; only its direction is used.
func (v Vector2D) Reflect(normal Vector2D) Vector2D {
	n := normal.Normalize()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// CloserNormal treats v as an edge and returns the unit normal of that edge
// which lies closer to reference. Of the two candidates (y, -x) and (-y, x)
// the first wins a tie.
func (v Vector2D) CloserNormal(reference Vector2D) Vector2D {
	n1 := Vector2D{X: v.Y, Y: -v.X}
	n2 := Vector2D{X: -v.Y, Y: v.X}
	if n1.Sub(reference).LengthSquared() <= n2.Sub(reference).LengthSquared() {
		return n1.Normalize()
	}
	return n2.Normalize()
}

// Clamp limits val to the closed range [low, high]
func Clamp(val, low, high float64) float64 {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}
