// Package stream implements the buffered file driver: it opens an EVT3
// capture from disk, consumes its optional textual preamble, and feeds the
// remaining binary word stream through a decoder.Decoder in fixed-size
// chunks.
//
// Most captures are read straight off disk with no decompression; Decode
// also transparently handles the zstd/lz4/s2-compressed captures produced
// by archival pipelines, selected via compress.GetCodec.
package stream
