package sprite

import "github.com/chewxy/math32"

// VerticesPerSprite is the number of vertex invocations per sprite: two
// triangles, no index buffer.
const VerticesPerSprite = 6

// quadCorners maps a corner index (vertexIndex % 6) to one of the four
// unit-quad corners. Corners 1 and 2 appear twice: they form the shared
// diagonal of the two triangles.
var quadCorners = [VerticesPerSprite]uint32{0, 1, 2, 3, 2, 1}

// Vertex is the output of one vertex-stage invocation: a clip-space
// position, an atlas texture coordinate, and the sprite color forwarded
// unchanged to the fragment stage.
type Vertex struct {
	Position Vec4
	TexCoord Vec2
	Color    ColorRGBA
}

// TransformVertex is the CPU reference for shaders/sprite.vert.wgsl. It
// computes the output of vertex invocation vertexIndex against a bound
// sprite array and view-projection matrix, following the GPU program
// step for step:
//
//  1. vertexIndex/6 selects the sprite record, vertexIndex%6 the corner.
//  2. The corner table expands the quad into two triangles; bit 0 and
//     bit 1 of the table entry give the unit-quad coordinate.
//  3. The texture coordinate maps the unscaled unit quad onto the
//     sprite's atlas rectangle.
//  4. The local coordinate is scaled, then rotated by the sprite's
//     rotation, then offset by the sprite's world position. Depth (z)
//     is unaffected by the 2D transform.
//  5. The view-projection matrix takes the homogeneous world position
//     (w=1) to clip space.
//
// Malformed values are not trapped: NaN rotation or position propagates
// per IEEE-754, exactly as it would on the GPU. A vertexIndex past
// 6*len(sprites) is a caller contract violation; on the GPU it is
// undefined behavior, here it panics on the slice bounds.
func TransformVertex(vertexIndex uint32, sprites []Record, viewProj Mat4) Vertex {
	s := &sprites[vertexIndex/VerticesPerSprite]
	vert := quadCorners[vertexIndex%VerticesPerSprite]

	local := Vec2{X: float32(vert & 1), Y: float32(vert >> 1)}

	texCoord := Vec2{
		X: s.Atlas.U + s.Atlas.W*local.X,
		Y: s.Atlas.V + s.Atlas.H*local.Y,
	}

	scaled := local.Scale(s.Scale)
	sin, cos := math32.Sincos(s.Rotation)
	rotated := Vec2{
		X: scaled.X*cos - scaled.Y*sin,
		Y: scaled.X*sin + scaled.Y*cos,
	}

	world := Vec4{
		X: s.Position.X + rotated.X,
		Y: s.Position.Y + rotated.Y,
		Z: s.Position.Z,
		W: 1,
	}

	return Vertex{
		Position: viewProj.MulVec4(world),
		TexCoord: texCoord,
		Color:    s.Color,
	}
}

// TransformBatch runs TransformVertex for every vertex of every sprite in
// the batch and returns the 6*N outputs in invocation order.
func TransformBatch(sprites []Record, viewProj Mat4) []Vertex {
	out := make([]Vertex, len(sprites)*VerticesPerSprite)
	for i := range out {
		out[i] = TransformVertex(uint32(i), sprites, viewProj)
	}
	return out
}

// TransformPoint is the CPU reference for shaders/transform.vert.wgsl,
// the pass-through pipeline: transform a position by a matrix and forward
// the color unchanged. TexCoord is zero; the pass-through pipeline does
// not sample a texture.
func TransformPoint(position Vec3, color ColorRGBA, transform Mat4) Vertex {
	return Vertex{
		Position: transform.MulVec4(Vec4{X: position.X, Y: position.Y, Z: position.Z, W: 1}),
		Color:    color,
	}
}
