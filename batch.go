package sprite

// Capacity policy for the sprite storage buffer, matching the engine it
// feeds: start large, grow in coarse steps before the buffer fills so the
// engine can recreate its GPU-side buffers outside the hot path.
const (
	// InitialCapacity is the record capacity a new Batch reserves.
	InitialCapacity = 100000

	// GrowthStep is how many records each capacity extension adds.
	GrowthStep = 50000

	// GrowthMargin is the remaining-headroom threshold that triggers an
	// extension: the batch grows as soon as fewer than this many records
	// fit in the current capacity.
	GrowthMargin = 10000
)

// Batch accumulates sprite records for one draw call. The zero value is
// not usable; call NewBatch, which reserves InitialCapacity records up
// front so steady-state appends never allocate.
//
// A Batch is not safe for concurrent use.
type Batch struct {
	records []Record
	cap     int
	grown   bool
}

// NewBatch returns an empty batch with InitialCapacity records reserved.
func NewBatch() *Batch {
	return &Batch{
		records: make([]Record, 0, InitialCapacity),
		cap:     InitialCapacity,
	}
}

// Add appends a record and returns its sprite index. When the batch comes
// within GrowthMargin of capacity it extends itself by GrowthStep and
// marks the growth so a caller owning GPU buffers sized to the previous
// capacity knows to recreate them (see Grown).
func (b *Batch) Add(r Record) int {
	idx := len(b.records)
	b.records = append(b.records, r)
	if len(b.records) >= b.cap-GrowthMargin {
		b.cap += GrowthStep
		grown := make([]Record, len(b.records), b.cap)
		copy(grown, b.records)
		b.records = grown
		b.grown = true
		logger().Debug("sprite batch grown",
			"count", len(b.records), "capacity", b.cap)
	}
	return idx
}

// At returns a pointer to the record at sprite index i for in-place
// mutation before encoding.
func (b *Batch) At(i int) *Record {
	return &b.records[i]
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int {
	return len(b.records)
}

// Cap returns the current record capacity. GPU-side buffers should be
// sized Cap()*RecordSize bytes.
func (b *Batch) Cap() int {
	return b.cap
}

// VertexCount returns the vertex count for the draw call: six vertices
// per sprite, no index buffer.
func (b *Batch) VertexCount() int {
	return len(b.records) * VerticesPerSprite
}

// Grown reports whether capacity changed since the last call and clears
// the flag. The engine recreates its storage and transfer buffers when
// this returns true.
func (b *Batch) Grown() bool {
	g := b.grown
	b.grown = false
	return g
}

// Reset empties the batch, keeping the allocated capacity.
func (b *Batch) Reset() {
	b.records = b.records[:0]
}

// Records returns the live record slice, valid until the next Add or
// Reset. Used by TransformBatch and by callers uploading via their own
// encoder.
func (b *Batch) Records() []Record {
	return b.records
}

// Encode serializes all records little-endian into a fresh buffer of
// Len()*RecordSize bytes, ready for upload to the sprite storage buffer.
func (b *Batch) Encode() []byte {
	buf := make([]byte, len(b.records)*RecordSize)
	for i := range b.records {
		b.records[i].Put(buf[i*RecordSize:])
	}
	return buf
}

// AppendTo appends the encoded records to dst and returns the extended
// slice, for callers reusing an upload staging buffer.
func (b *Batch) AppendTo(dst []byte) []byte {
	for i := range b.records {
		dst = b.records[i].AppendTo(dst)
	}
	return dst
}
