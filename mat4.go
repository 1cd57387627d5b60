package sprite

// Mat4 is a 4x4 float32 matrix stored column-major, the layout GPUs and
// the engine-side math library share. Element (row r, column c) is at
// index c*4+r. The raw array is uploaded as-is into the 64-byte
// view-projection uniform block.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns a translation matrix.
func Mat4Translation(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Mat4Orthographic returns a left-handed orthographic projection mapping
// the given volume onto clip space with depth in [0, 1].
func Mat4Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	rcpWidth := 1 / (right - left)
	rcpHeight := 1 / (top - bottom)
	rcpDepth := 1 / (far - near)
	return Mat4{
		rcpWidth + rcpWidth, 0, 0, 0,
		0, rcpHeight + rcpHeight, 0, 0,
		0, 0, rcpDepth, 0,
		-(left + right) * rcpWidth, -(top + bottom) * rcpHeight, -near * rcpDepth, 1,
	}
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = m[r]*n[c*4] + m[4+r]*n[c*4+1] + m[8+r]*n[c*4+2] + m[12+r]*n[c*4+3]
		}
	}
	return out
}

// MulVec4 returns the matrix-vector product m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}
