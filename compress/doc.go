// Package compress provides the decompression codecs used to read EVT3
// captures that were written compressed, and the matching compressors. No
// sink in this module writes compressed output.
//
// # Overview
//
// Prophesee captures are occasionally distributed pre-compressed (a ".raw"
// file piped through zstd, s2, or lz4) to save space in long-term storage.
// The stream package sniffs the first few bytes of a file (and its
// extension) to pick a codec before handing chunks to the decoder; none of
// this is visible to callers decoding an already-uncompressed capture.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None (format.CompressionNone): data passed through unchanged.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Built on
//     klauspost/compress/zstd in every ordinary build, with or without cgo;
//     the valyala/gozstd variant is compiled only under the "nobuild" build
//     tag.
//   - S2 (format.CompressionS2): Snappy-family, fast in both directions.
//   - LZ4 (format.CompressionLZ4): fast decompression, moderate ratio.
//
// # Selection
//
// GetCodec and CreateCodec resolve a format.CompressionType to a Codec.
// stream.Decode calls GetCodec after sniffing a file's magic bytes or extension;
// callers can also force a codec via stream options when sniffing would
// guess wrong (e.g. a renamed file with no extension).
package compress
