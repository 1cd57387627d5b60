package sprite

// Vec2 is a 2D float32 vector with GPU-compatible layout (8 bytes).
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the component-wise product of two vectors.
func (v Vec2) Scale(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Vec3 is a 3D float32 vector with GPU-compatible layout (12 bytes).
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Vec4 is a 4D float32 vector with GPU-compatible layout (16 bytes).
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec3 returns the first three components.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
