package sprite

import "github.com/gogpu/gputypes"

// Bind group and binding slots shared with shaders/*.wgsl. The slots
// follow the SDL GPU SPIR-V register convention the engine side uses:
// vertex-stage storage buffers live in group 0, vertex-stage uniform
// buffers in group 1, fragment-stage textures and samplers in group 2.
// They are a contract; a mismatch is only ever caught by the driver's
// validation layer.
const (
	// SpriteBufferGroup/SpriteBufferBinding locate the read-only storage
	// buffer holding the Record array.
	SpriteBufferGroup   = 0
	SpriteBufferBinding = 0

	// CameraGroup/CameraBinding locate the 64-byte view-projection
	// uniform block.
	CameraGroup   = 1
	CameraBinding = 0

	// AtlasGroup holds the fragment-stage atlas texture (binding 0) and
	// its sampler (binding 1).
	AtlasGroup          = 2
	AtlasTextureBinding = 0
	AtlasSamplerBinding = 1
)

// SpriteBindGroupLayout returns the group-0 layout for the sprite
// pipeline: the Record storage array, read-only, vertex stage.
func SpriteBindGroupLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    SpriteBufferBinding,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
		},
	}
}

// CameraBindGroupLayout returns the group-1 layout: the view-projection
// uniform block, vertex stage.
func CameraBindGroupLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    CameraBinding,
			Visibility: gputypes.ShaderStageVertex,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
}

// AtlasBindGroupLayout returns the group-2 layout: the atlas texture and
// its sampler, fragment stage.
func AtlasBindGroupLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    AtlasTextureBinding,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    AtlasSamplerBinding,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

// PointVertexLayout returns the vertex buffer layout for the pass-through
// pipeline (shaders/transform.vert.wgsl): float32x3 position at
// location(0), float32x4 color at location(1), 28-byte stride. The sprite
// pipeline itself has no vertex buffers; it reads the storage array by
// vertex index.
func PointVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: 28,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1}, // color
			},
		},
	}
}
