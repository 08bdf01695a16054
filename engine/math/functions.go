package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = m.Pi
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief The golden ratio, (1 + sqrt(5)) / 2. */
	K_PHI float64 = m.Phi
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float64 = 2.220446049250313e-16
	/** @brief Tolerance used when checking that a point lies on the unit sphere. */
	K_UNIT_TOLERANCE float64 = 1e-12
)

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new vec4
 */
func (v Vec3) ToVec4(w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float64) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 * No check is made for a zero scalar.
 */
func (v Vec3) DivScalar(scalar float64) Vec3 {
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

/**
 * @brief Returns the length (euclidean norm) of the provided vector.
 */
func (v Vec3) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a copy of v scaled to unit length.
 * A zero-length vector produces NaN components.
 */
func (v Vec3) Normalized() Vec3 {
	return v.DivScalar(v.Length())
}

// Midpoint returns the point halfway between v and other. The sum is
// computed before halving so Midpoint(a, b) == Midpoint(b, a) exactly.
func (v Vec3) Midpoint(other Vec3) Vec3 {
	return v.Add(other).MulScalar(0.5)
}

/**
 * @brief Returns the dot product between v and other.
 */
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float64) bool {
	if m.Abs(v.X-other.X) > tolerance {
		return false
	}
	if m.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if m.Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// Equal reports exact component-wise equality.
func (v Vec3) Equal(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Less orders vectors lexicographically by X, then Y, then Z.
func (v Vec3) Less(other Vec3) bool {
	if v.X != other.X {
		return v.X < other.X
	}
	if v.Y != other.Y {
		return v.Y < other.Y
	}
	return v.Z < other.Z
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// SphericalUV maps a point on the unit sphere to equirectangular texture
// coordinates in [0, 1].
func (v Vec3) SphericalUV() Vec2 {
	return Vec2{
		U: 0.5 + m.Atan2(v.Z, v.X)/K_PI_2,
		V: 0.5 - m.Asin(Clamp(v.Y, -1, 1))/K_PI,
	}
}
