package stream

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/evt3decode/evt3/compress"
	"github.com/evt3decode/evt3/decoder"
	"github.com/evt3decode/evt3/errs"
	"github.com/evt3decode/evt3/format"
	"github.com/evt3decode/evt3/header"
	"github.com/evt3decode/evt3/internal/digest"
	"github.com/evt3decode/evt3/internal/evtlog"
	"github.com/evt3decode/evt3/internal/options"
	"github.com/evt3decode/evt3/internal/pool"
	"github.com/evt3decode/evt3/wire"
)

// DecodeResult is everything the buffered file driver produces from one
// capture.
type DecodeResult struct {
	CdEvents      []decoder.CdEvent
	TriggerEvents []decoder.TriggerEvent
	Metadata      decoder.SensorMetadata

	// Digest is the xxHash64 of the raw bytes read from disk (before any
	// decompression), independent of how those bytes were chunked while
	// reading. Callers can use it as a cache key to skip re-decoding a file
	// they have already seen.
	Digest uint64
}

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Decode opens path, parses its optional textual preamble, and decodes the
// remainder as an EVT 3.0 word stream. It transparently decompresses the
// file first if it is recognized as zstd/lz4/s2-compressed.
//
// The only error this returns is an *errs.DecodeError wrapping an I/O
// failure; a malformed or truncated capture decodes as far as it can and
// returns whatever events were recovered, matching the core decoder's
// silent-skip behavior. When a read fails partway through the word stream,
// the returned DecodeResult still holds the events decoded before the
// failure.
func Decode(path string, opts ...Option) (DecodeResult, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return DecodeResult{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return DecodeResult{}, errs.NewIoError(err)
	}
	defer f.Close()

	dig := digest.NewStreaming()
	br := bufio.NewReaderSize(io.TeeReader(f, dig), cfg.chunkSize)

	src, err := selectSource(path, br, cfg)
	if err != nil {
		return DecodeResult{}, errs.NewIoError(err)
	}

	dec := decoder.New()
	meta := dec.Metadata()
	consumeHeader(src, &meta)
	dec.SetMetadata(meta)

	var cd []decoder.CdEvent
	var triggers []decoder.TriggerEvent

	chunk := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(chunk)
	chunk.SetLength(cfg.chunkSize)

	for {
		n, rerr := readChunk(src, chunk.B)
		if n > 0 {
			ws := wire.WordsFromLE(chunk.B[:n])
			words := make([]uint16, len(ws))
			for i, w := range ws {
				words[i] = uint16(w)
			}
			dec.DecodeBuffer(words, &cd, &triggers)
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}

			return DecodeResult{
				CdEvents:      cd,
				TriggerEvents: triggers,
				Metadata:      dec.Metadata(),
				Digest:        dig.Sum64(),
			}, errs.NewIoError(rerr)
		}
	}

	evtlog.Debugf("decoded %s: %d cd events, %d trigger events", path, len(cd), len(triggers))

	return DecodeResult{
		CdEvents:      cd,
		TriggerEvents: triggers,
		Metadata:      dec.Metadata(),
		Digest:        dig.Sum64(),
	}, nil
}

// selectSource resolves br into the reader that yields the uncompressed
// word stream: br itself, or a reader over the fully decompressed file if
// compression was sniffed or forced.
func selectSource(path string, br *bufio.Reader, cfg *config) (*bufio.Reader, error) {
	codecType, compressed := detectCompression(path, br, cfg)
	if !compressed {
		return br, nil
	}

	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}

	decompressed, err := codec.Decompress(raw)
	if err != nil {
		return nil, err
	}

	evtlog.Debugf("%s: decompressed %s %d -> %d bytes", path, codecType, len(raw), len(decompressed))

	return bufio.NewReaderSize(bytes.NewReader(decompressed), cfg.chunkSize), nil
}

// detectCompression sniffs a compression codec for path. zstd carries a
// real magic number and is detected from the leading bytes; lz4 and s2 use
// this module's raw block formats, which carry no signature, so those two
// are recognized only by file extension. WithForcedCodec bypasses all of
// this.
func detectCompression(path string, br *bufio.Reader, cfg *config) (format.CompressionType, bool) {
	if cfg.forcedCodec != 0 {
		return cfg.forcedCodec, cfg.forcedCodec != format.CompressionNone
	}
	if cfg.disableSniff {
		return format.CompressionNone, false
	}

	if peeked, err := br.Peek(len(zstdMagic)); err == nil && bytes.Equal(peeked, zstdMagic) {
		return format.CompressionZstd, true
	}

	switch {
	case strings.HasSuffix(path, ".zst"):
		return format.CompressionZstd, true
	case strings.HasSuffix(path, ".lz4"):
		return format.CompressionLZ4, true
	case strings.HasSuffix(path, ".s2"):
		return format.CompressionS2, true
	default:
		return format.CompressionNone, false
	}
}

// consumeHeader reads consecutive '%'-prefixed lines from src, merging
// recognized fields into meta, stopping at the first non-'%' byte or a
// "% end" line (whichever comes first). It never returns an error: an EOF
// or malformed preamble simply stops header processing, leaving whatever
// fields were already parsed.
func consumeHeader(src *bufio.Reader, meta *decoder.SensorMetadata) {
	for {
		b, err := src.Peek(1)
		if err != nil || !header.IsHeaderLine(b[0]) {
			return
		}

		line, err := src.ReadString('\n')
		header.ParseLine(line, meta)
		if header.IsEnd(line) || err != nil {
			return
		}
	}
}

// readChunk fills buf as completely as possible from r, returning the
// number of bytes actually read. It returns early with a nil error only
// once buf is full; any I/O error (including io.EOF) is returned alongside
// whatever partial data was read before it.
func readChunk(r io.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
