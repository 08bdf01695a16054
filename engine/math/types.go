package math

// Vec3 represents a 3D point or direction.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 represents a point in homogeneous coordinates.
type Vec4 struct {
	X, Y, Z, W float64
}

// Vec2 represents a texture coordinate.
type Vec2 struct {
	U, V float64
}

/**
 * @brief Represents a single vertex of an indexed mesh.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The normal of the vertex. */
	Normal Vec3
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}
