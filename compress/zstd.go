package compress

// ZstdCompressor reads and writes Zstandard-compressed EVT3 captures.
// Archival captures are the main case this serves: best ratio of the four
// codecs, at the cost of being the slowest to decode.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
