package sprite

import (
	"encoding/binary"
	"math"
)

// RecordSize is the size of one encoded Record in bytes.
const RecordSize = 64

// Byte offsets of Record fields inside the encoded 64-byte block.
// These are a contract with the GPU-side SpriteData struct and with the
// rendering engine that owns the storage buffer; they must never change.
const (
	recordOffPosition = 0
	recordOffRotation = 12
	recordOffScale    = 16
	recordOffReserved = 24
	recordOffAtlas    = 32
	recordOffColor    = 48
)

// ColorRGBA is a normalized RGBA color (16 bytes on the GPU).
type ColorRGBA struct {
	R, G, B, A float32
}

// White is opaque white, the neutral sprite tint.
var White = ColorRGBA{R: 1, G: 1, B: 1, A: 1}

// AtlasRect is a sub-rectangle of the shared atlas texture in normalized
// coordinates: U,V is the top-left corner, W,H the extent.
type AtlasRect struct {
	U, V, W, H float32
}

// WholeTexture is the atlas rectangle covering the entire texture.
var WholeTexture = AtlasRect{U: 0, V: 0, W: 1, H: 1}

// Record is one sprite as the GPU sees it: 16 float32 values, 64 bytes,
// std430-compatible. Field order and the reserved gap mirror the
// engine-side struct exactly:
//
//	offset  0  Position  vec3
//	offset 12  Rotation  f32 (radians)
//	offset 16  Scale     vec2
//	offset 24  Reserved  vec2 (opaque, preserved bit-for-bit)
//	offset 32  Atlas     vec4 (u, v, w, h)
//	offset 48  Color     vec4 (r, g, b, a)
//
// Reserved carries no meaning on either side of the contract. It exists
// to keep Atlas at a 16-byte boundary and is encoded unchanged.
type Record struct {
	Position Vec3
	Rotation float32
	Scale    Vec2
	Reserved Vec2
	Atlas    AtlasRect
	Color    ColorRGBA
}

// Put encodes the record little-endian into dst, which must be at least
// RecordSize bytes long.
func (r *Record) Put(dst []byte) {
	putFloat32(dst[recordOffPosition:], r.Position.X)
	putFloat32(dst[recordOffPosition+4:], r.Position.Y)
	putFloat32(dst[recordOffPosition+8:], r.Position.Z)
	putFloat32(dst[recordOffRotation:], r.Rotation)
	putFloat32(dst[recordOffScale:], r.Scale.X)
	putFloat32(dst[recordOffScale+4:], r.Scale.Y)
	putFloat32(dst[recordOffReserved:], r.Reserved.X)
	putFloat32(dst[recordOffReserved+4:], r.Reserved.Y)
	putFloat32(dst[recordOffAtlas:], r.Atlas.U)
	putFloat32(dst[recordOffAtlas+4:], r.Atlas.V)
	putFloat32(dst[recordOffAtlas+8:], r.Atlas.W)
	putFloat32(dst[recordOffAtlas+12:], r.Atlas.H)
	putFloat32(dst[recordOffColor:], r.Color.R)
	putFloat32(dst[recordOffColor+4:], r.Color.G)
	putFloat32(dst[recordOffColor+8:], r.Color.B)
	putFloat32(dst[recordOffColor+12:], r.Color.A)
}

// AppendTo appends the encoded record to dst and returns the extended slice.
func (r *Record) AppendTo(dst []byte) []byte {
	var buf [RecordSize]byte
	r.Put(buf[:])
	return append(dst, buf[:]...)
}

// DecodeRecord decodes one record from src, which must be at least
// RecordSize bytes long. The inverse of Put.
func DecodeRecord(src []byte) Record {
	return Record{
		Position: Vec3{
			X: getFloat32(src[recordOffPosition:]),
			Y: getFloat32(src[recordOffPosition+4:]),
			Z: getFloat32(src[recordOffPosition+8:]),
		},
		Rotation: getFloat32(src[recordOffRotation:]),
		Scale: Vec2{
			X: getFloat32(src[recordOffScale:]),
			Y: getFloat32(src[recordOffScale+4:]),
		},
		Reserved: Vec2{
			X: getFloat32(src[recordOffReserved:]),
			Y: getFloat32(src[recordOffReserved+4:]),
		},
		Atlas: AtlasRect{
			U: getFloat32(src[recordOffAtlas:]),
			V: getFloat32(src[recordOffAtlas+4:]),
			W: getFloat32(src[recordOffAtlas+8:]),
			H: getFloat32(src[recordOffAtlas+12:]),
		},
		Color: ColorRGBA{
			R: getFloat32(src[recordOffColor:]),
			G: getFloat32(src[recordOffColor+4:]),
			B: getFloat32(src[recordOffColor+8:]),
			A: getFloat32(src[recordOffColor+12:]),
		},
	}
}

func putFloat32(dst []byte, f float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(f))
}

func getFloat32(src []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(src))
}
