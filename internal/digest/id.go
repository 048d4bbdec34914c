// Package digest computes a chunk-boundary-independent content hash over the
// raw bytes of a decoded EVT3 capture, used as DecodeResult.Digest.
package digest

import "github.com/cespare/xxhash/v2"

// Streaming accumulates an xxHash64 digest across multiple Write calls so
// the file driver can hash each chunk as it is read, without buffering the
// whole file. The resulting digest is identical regardless of how the input
// was split into chunks.
type Streaming struct {
	h *xxhash.Digest
}

// NewStreaming creates a fresh streaming digest accumulator.
func NewStreaming() *Streaming {
	return &Streaming{h: xxhash.New()}
}

// Write feeds the next chunk of raw bytes into the digest. It never returns
// an error; the signature matches io.Writer so a Streaming can be used as
// the destination of an io.TeeReader or io.Copy.
func (s *Streaming) Write(p []byte) (int, error) {
	return s.h.Write(p)
}

// Sum64 returns the digest of all bytes written so far.
func (s *Streaming) Sum64() uint64 {
	return s.h.Sum64()
}

// Reset clears the accumulator back to its initial state for reuse.
func (s *Streaming) Reset() {
	s.h.Reset()
}

// Bytes computes the one-shot xxHash64 digest of data. Used by tests and by
// callers that already hold the full capture in memory.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
