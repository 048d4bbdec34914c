// Package pool provides a reusable byte-buffer pool for the buffered file
// driver's chunk reads, so that decoding a large .raw file does not allocate
// a fresh 2MB buffer per chunk.
package pool

import "sync"

// ChunkBufferSize matches the file driver's chunk size: 2,000,000 bytes
// (1,000,000 little-endian u16 words).
const ChunkBufferSize = 2_000_000

// ChunkBufferMaxThreshold is the largest buffer this pool will retain;
// anything bigger (e.g. a caller-forced larger chunk size) is discarded
// rather than pooled, to avoid memory bloat from one oversized request.
const ChunkBufferMaxThreshold = ChunkBufferSize * 4

// ByteBuffer is a growable byte buffer designed for reuse via sync.Pool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without a
// reallocation on the next Write/SetLength. Up to a capacity of 4x the
// chunk size it grows by one ChunkBufferSize, beyond that by a quarter of
// the current capacity, and in either case by at least requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ChunkBufferSize
	if cap(bb.B) > 4*ChunkBufferSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// SetLength sets the buffer's length to n, growing its capacity first if
// necessary. Used by the file driver to mark how many bytes of a chunk
// buffer were actually filled by the last read.
func (bb *ByteBuffer) SetLength(n int) {
	if n > cap(bb.B) {
		bb.Grow(n - len(bb.B))
	}
	bb.B = bb.B[:n]
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool is a sync.Pool of ByteBuffers with an optional size cap on
// what gets retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded instead of recycled once they grow past maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool:         sync.Pool{New: func() any { return NewByteBuffer(defaultSize) }},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse, discarding it instead if
// it has grown past the pool's maxThreshold.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}
	bb.Reset()
	bbp.pool.Put(bb)
}

var chunkBufferPool = NewByteBufferPool(ChunkBufferSize, ChunkBufferMaxThreshold)

// GetChunkBuffer retrieves a ByteBuffer from the default chunk-read pool.
func GetChunkBuffer() *ByteBuffer {
	return chunkBufferPool.Get()
}

// PutChunkBuffer returns a ByteBuffer to the default chunk-read pool.
func PutChunkBuffer(bb *ByteBuffer) {
	chunkBufferPool.Put(bb)
}
