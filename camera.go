package sprite

// Camera holds the view-projection matrix shared by every vertex
// invocation of a draw call. It is the uniform-block side of the sprite
// pipeline contract: one column-major Mat4, 64 bytes.
type Camera struct {
	ViewProj Mat4
}

// NewCamera returns a camera with a left-handed orthographic projection
// over the given volume, depth mapped to [0, 1].
func NewCamera(left, right, bottom, top, near, far float32) Camera {
	return Camera{ViewProj: Mat4Orthographic(left, right, bottom, top, near, far)}
}

// Translate post-multiplies a translation into the view-projection,
// moving the view by v in world units.
func (c *Camera) Translate(v Vec3) {
	c.ViewProj = c.ViewProj.Mul(Mat4Translation(v))
}

// Bytes encodes the view-projection matrix little-endian for upload into
// the 64-byte uniform block.
func (c *Camera) Bytes() []byte {
	buf := make([]byte, len(c.ViewProj)*4)
	for i, f := range c.ViewProj {
		putFloat32(buf[i*4:], f)
	}
	return buf
}
