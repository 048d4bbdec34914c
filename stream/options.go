package stream

import (
	"github.com/evt3decode/evt3/format"
	"github.com/evt3decode/evt3/internal/options"
)

// DefaultChunkSize matches the spec's 2,000,000-byte (1,000,000-word) chunk
// size for the buffered file driver.
const DefaultChunkSize = 2_000_000

type config struct {
	chunkSize   int
	forcedCodec format.CompressionType
	disableSniff bool
}

func newConfig() *config {
	return &config{chunkSize: DefaultChunkSize}
}

// Option configures a Decode call.
type Option = options.Option[*config]

// WithChunkSize overrides the default 2,000,000-byte chunk size used to read
// the uncompressed word stream. Useful in tests, or to trade memory for
// fewer decode_buffer calls on a fast disk.
func WithChunkSize(n int) Option {
	return options.NoError[*config](func(c *config) { c.chunkSize = n })
}

// WithForcedCodec bypasses magic-byte/extension sniffing and decompresses
// the file with the given codec unconditionally. Needed when a compressed
// capture has been renamed without its usual extension.
func WithForcedCodec(codec format.CompressionType) Option {
	return options.NoError[*config](func(c *config) { c.forcedCodec = codec })
}

// WithSniffDisabled disables magic-byte/extension sniffing entirely,
// treating every input as an uncompressed word stream regardless of its
// name or leading bytes. Combine with WithForcedCodec if sniffing guesses
// wrong for a particular deployment's naming convention.
func WithSniffDisabled() Option {
	return options.NoError[*config](func(c *config) { c.disableSniff = true })
}
