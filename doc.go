// Package sprite provides GPU sprite rendering primitives for the GoGPU
// ecosystem: the sprite-quad vertex transform, the GPU-side record layout
// it reads, and the view-projection camera that feeds it.
//
// # Overview
//
// A sprite batch is drawn as 6*N vertices with no index buffer. The vertex
// stage derives everything from the vertex index alone: which sprite record
// to read, which corner of the unit quad it is, and, from the record, the
// atlas texture coordinate, the rotated and scaled world position, and the
// pass-through color. The same transform exists twice in this module with
// identical semantics:
//
//   - shaders/sprite.vert.wgsl, the authored GPU program, and
//   - [TransformVertex], a pure Go reference that runs on the CPU.
//
// The Go reference is the testable statement of the contract; the WGSL
// source is what a rendering engine actually executes.
//
// # Buffer contract
//
// Each [Record] occupies exactly 64 bytes in the storage buffer, laid out
// std430-compatible and encoded little-endian. The binding slots shared
// with the engine are exported from binding.go as gputypes layout entries.
// Both sides of the contract must match bit-for-bit; see [Record] for the
// field offsets.
//
// # Shader compilation
//
// The compile package and the spritec command cross-compile every shader
// source once per target byte-code format (SPIR-V, MSL, HLSL, and DXIL via
// an external dxc) into a fixed output tree keyed by source filename stem.
//
// # Quick Start
//
//	batch := sprite.NewBatch()
//	batch.Add(sprite.Record{
//	    Position: sprite.Vec3{X: 10, Y: 20},
//	    Scale:    sprite.Vec2{X: 32, Y: 32},
//	    Atlas:    sprite.WholeTexture,
//	    Color:    sprite.ColorRGBA{R: 1, G: 1, B: 1, A: 1},
//	})
//	cam := sprite.NewCamera(0, 640, 480, 0, 0, 1)
//	data := batch.Encode() // upload to the sprite storage buffer
//	_ = cam.Bytes()        // upload to the view-projection uniform
package sprite
