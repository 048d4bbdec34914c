// Package evt3 provides a convenient top-level entry point for decoding
// Prophesee EVT 3.0 event-camera captures.
//
// For most callers, evt3.DecodeFile is the whole API:
//
//	result, err := evt3.DecodeFile("capture.raw")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d CD events, sensor %dx%d\n",
//	    len(result.CdEvents), result.Metadata.Width, result.Metadata.Height)
//
// For streaming decode of a live word feed rather than a file, or to reuse a
// single decoding session across multiple buffers, use the decoder package
// directly:
//
//	dec := decoder.New()
//	var cd []decoder.CdEvent
//	var triggers []decoder.TriggerEvent
//	dec.DecodeBuffer(words, &cd, &triggers)
//
// Output writers (CSV, binary, trigger CSV) live in the sink package, and
// the buffered file driver's tuning knobs (chunk size, forced codec) live in
// the stream package.
package evt3

import (
	"github.com/evt3decode/evt3/decoder"
	"github.com/evt3decode/evt3/stream"
)

// DecodeResult is the file driver's output: every CD and trigger event
// recovered from the capture, the sensor metadata seen in its optional
// header, and a content digest useful as a cache key.
type DecodeResult = stream.DecodeResult

// DecodeFile opens path, parses its optional textual preamble, and decodes
// the remainder as an EVT 3.0 word stream, transparently decompressing it
// first if it was written as a zstd/lz4/s2-compressed capture.
//
// Options from the stream package (stream.WithChunkSize, stream.WithForcedCodec,
// stream.WithSniffDisabled) can be passed through unchanged.
func DecodeFile(path string, opts ...stream.Option) (DecodeResult, error) {
	return stream.Decode(path, opts...)
}

// NewDecoder creates a fresh decoding session for callers that want to feed
// their own word buffers instead of decoding a file in one call.
func NewDecoder() *decoder.Decoder {
	return decoder.New()
}
