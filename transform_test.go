package sprite

import (
	"math"
	"testing"
)

func TestQuadCornerTable(t *testing.T) {
	// The six corner indices map onto the four unit-quad corners with the
	// shared diagonal (corners 1 and 2) appearing twice.
	wantLocal := [6]Vec2{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 1}, {1, 0},
	}
	seen := map[uint32]int{}
	for i, vert := range quadCorners {
		local := Vec2{X: float32(vert & 1), Y: float32(vert >> 1)}
		if local != wantLocal[i] {
			t.Errorf("corner %d: local = %v, want %v", i, local, wantLocal[i])
		}
		seen[vert]++
	}
	for vert := uint32(0); vert < 4; vert++ {
		want := 1
		if vert == 1 || vert == 2 {
			want = 2
		}
		if seen[vert] != want {
			t.Errorf("quad corner %d appears %d times, want %d", vert, seen[vert], want)
		}
	}
}

func TestTransformVertexIndexing(t *testing.T) {
	// spriteIndex is stable across each run of 6 vertices and the corner
	// cycle repeats. Give each sprite a distinct color to observe which
	// record an invocation read.
	sprites := []Record{
		{Scale: Vec2{1, 1}, Atlas: WholeTexture, Color: ColorRGBA{R: 0}},
		{Scale: Vec2{1, 1}, Atlas: WholeTexture, Color: ColorRGBA{R: 1}},
		{Scale: Vec2{1, 1}, Atlas: WholeTexture, Color: ColorRGBA{R: 2}},
	}
	vp := Mat4Identity()
	for i := uint32(0); i < uint32(len(sprites))*VerticesPerSprite; i++ {
		out := TransformVertex(i, sprites, vp)
		if got, want := out.Color.R, float32(i/VerticesPerSprite); got != want {
			t.Errorf("vertex %d read sprite %.0f, want %d", i, got, i/VerticesPerSprite)
		}
	}
}

func TestTransformVertexScenario(t *testing.T) {
	// Sprite at (10,20,0), rotation 0, scale (2,2), whole-texture atlas
	// rect, identity view-projection: the quad corners land exactly.
	sprites := []Record{{
		Position: Vec3{X: 10, Y: 20, Z: 0},
		Rotation: 0,
		Scale:    Vec2{X: 2, Y: 2},
		Atlas:    AtlasRect{U: 0, V: 0, W: 1, H: 1},
		Color:    White,
	}}
	wantPos := [6]Vec4{
		{10, 20, 0, 1},
		{12, 20, 0, 1},
		{10, 22, 0, 1},
		{12, 22, 0, 1},
		{10, 22, 0, 1},
		{12, 20, 0, 1},
	}
	wantTex := [6]Vec2{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 1}, {1, 0},
	}
	for i := uint32(0); i < VerticesPerSprite; i++ {
		out := TransformVertex(i, sprites, Mat4Identity())
		if out.Position != wantPos[i] {
			t.Errorf("vertex %d: position = %v, want %v", i, out.Position, wantPos[i])
		}
		if out.TexCoord != wantTex[i] {
			t.Errorf("vertex %d: texcoord = %v, want %v", i, out.TexCoord, wantTex[i])
		}
		if out.Color != White {
			t.Errorf("vertex %d: color = %v, want %v", i, out.Color, White)
		}
	}
}

func TestTransformVertexZeroRotationExact(t *testing.T) {
	// With rotation 0 the local offset is exactly scale*local: sin(0)=0
	// and cos(0)=1 introduce no trigonometric error.
	sprites := []Record{{
		Position: Vec3{X: 0.5, Y: 0.25, Z: 0.75},
		Scale:    Vec2{X: 3.5, Y: 7.25},
		Atlas:    WholeTexture,
		Color:    White,
	}}
	out := TransformVertex(3, sprites, Mat4Identity()) // vert 3 = corner (1,1)
	want := Vec4{X: 0.5 + 3.5, Y: 0.25 + 7.25, Z: 0.75, W: 1}
	if out.Position != want {
		t.Errorf("position = %v, want exactly %v", out.Position, want)
	}
}

func TestTransformVertexRotation(t *testing.T) {
	// Quarter turn: the (1,0) corner of a unit sprite rotates onto (0,1).
	sprites := []Record{{
		Rotation: math.Pi / 2,
		Scale:    Vec2{X: 1, Y: 1},
		Atlas:    WholeTexture,
		Color:    White,
	}}
	out := TransformVertex(1, sprites, Mat4Identity()) // vert 1 = corner (1,0)
	const eps = 1e-6
	if math.Abs(float64(out.Position.X)) > eps || math.Abs(float64(out.Position.Y-1)) > eps {
		t.Errorf("rotated corner = (%v, %v), want (0, 1)", out.Position.X, out.Position.Y)
	}
	// Texture coordinates come from the unrotated unit quad.
	if (out.TexCoord != Vec2{X: 1, Y: 0}) {
		t.Errorf("texcoord = %v, want (1, 0): rotation must not affect atlas mapping", out.TexCoord)
	}
}

func TestTransformVertexAtlasRect(t *testing.T) {
	sprites := []Record{{
		Scale: Vec2{1, 1},
		Atlas: AtlasRect{U: 0.25, V: 0.5, W: 0.125, H: 0.25},
		Color: White,
	}}
	tests := []struct {
		vertexIndex uint32
		want        Vec2
	}{
		{0, Vec2{X: 0.25, Y: 0.5}},   // vert 0: (u, v)
		{3, Vec2{X: 0.375, Y: 0.75}}, // vert 3: (u+w, v+h)
		{1, Vec2{X: 0.375, Y: 0.5}},  // vert 1: (u+w, v)
		{2, Vec2{X: 0.25, Y: 0.75}},  // vert 2: (u, v+h)
		{4, Vec2{X: 0.25, Y: 0.75}},  // shared diagonal repeats vert 2
		{5, Vec2{X: 0.375, Y: 0.5}},  // shared diagonal repeats vert 1
	}
	for _, tt := range tests {
		out := TransformVertex(tt.vertexIndex, sprites, Mat4Identity())
		if out.TexCoord != tt.want {
			t.Errorf("vertex %d: texcoord = %v, want %v", tt.vertexIndex, out.TexCoord, tt.want)
		}
	}
}

func TestTransformVertexColorPassThrough(t *testing.T) {
	// Color is bit-identical pass-through, including NaN and denormals.
	nan := float32(math.NaN())
	colors := []ColorRGBA{
		{R: 1, G: 0.5, B: 0.25, A: 0.125},
		{R: nan, G: -0, B: 1e-40, A: 2},
	}
	for _, c := range colors {
		sprites := []Record{{Scale: Vec2{1, 1}, Atlas: WholeTexture, Color: c}}
		out := TransformVertex(0, sprites, Mat4Identity())
		if math.Float32bits(out.Color.R) != math.Float32bits(c.R) ||
			math.Float32bits(out.Color.G) != math.Float32bits(c.G) ||
			math.Float32bits(out.Color.B) != math.Float32bits(c.B) ||
			math.Float32bits(out.Color.A) != math.Float32bits(c.A) {
			t.Errorf("color not bit-identical: got %v, want %v", out.Color, c)
		}
	}
}

func TestTransformVertexViewProjection(t *testing.T) {
	// A non-identity matrix applies to the homogeneous world position.
	sprites := []Record{{
		Position: Vec3{X: 5, Y: 5},
		Scale:    Vec2{1, 1},
		Atlas:    WholeTexture,
		Color:    White,
	}}
	vp := Mat4Translation(Vec3{X: -5, Y: -5, Z: 1})
	out := TransformVertex(0, sprites, vp)
	want := Vec4{X: 0, Y: 0, Z: 1, W: 1}
	if out.Position != want {
		t.Errorf("position = %v, want %v", out.Position, want)
	}
}

func TestTransformBatch(t *testing.T) {
	sprites := []Record{
		{Position: Vec3{X: 1}, Scale: Vec2{1, 1}, Atlas: WholeTexture, Color: White},
		{Position: Vec3{X: 2}, Scale: Vec2{1, 1}, Atlas: WholeTexture, Color: White},
	}
	out := TransformBatch(sprites, Mat4Identity())
	if len(out) != len(sprites)*VerticesPerSprite {
		t.Fatalf("len = %d, want %d", len(out), len(sprites)*VerticesPerSprite)
	}
	for i := range out {
		want := TransformVertex(uint32(i), sprites, Mat4Identity())
		if out[i] != want {
			t.Errorf("vertex %d: batch output differs from per-vertex transform", i)
		}
	}
}

func TestTransformPoint(t *testing.T) {
	color := ColorRGBA{R: 0.5, G: 0.25, B: 1, A: 1}
	out := TransformPoint(Vec3{X: 1, Y: 2, Z: 3}, color, Mat4Translation(Vec3{X: 10}))
	if (out.Position != Vec4{X: 11, Y: 2, Z: 3, W: 1}) {
		t.Errorf("position = %v, want (11, 2, 3, 1)", out.Position)
	}
	if out.Color != color {
		t.Errorf("color = %v, want %v", out.Color, color)
	}
	if (out.TexCoord != Vec2{}) {
		t.Errorf("texcoord = %v, want zero", out.TexCoord)
	}
}
