package sink

import (
	"bufio"
	"io"

	"github.com/evt3decode/evt3/decoder"
	"github.com/evt3decode/evt3/endian"
)

// binaryMagic identifies a sink.WriteBinary stream; binaryVersion is bumped
// if the record layout ever changes.
var binaryMagic = [8]byte{'E', 'V', 'T', '3', 'B', 'I', 'N', 0}

const binaryVersion uint32 = 1

// WriteBinary writes a fixed-layout binary header followed by one
// 16-byte record per event:
//
//	x uint16, y uint16, polarity uint8, _pad [3]uint8, timestamp uint64
//
// engine controls the byte order of every multi-byte field, including the
// header; endian.GetLittleEndianEngine matches the EVT3 wire format itself
// and is the usual choice.
func WriteBinary(w io.Writer, events []decoder.CdEvent, meta decoder.SensorMetadata, engine endian.EndianEngine) (int, error) {
	bw := bufio.NewWriterSize(w, 64*1024)

	if _, err := bw.Write(binaryMagic[:]); err != nil {
		return 0, err
	}

	var head [20]byte
	engine.PutUint32(head[0:4], binaryVersion)
	engine.PutUint32(head[4:8], meta.Width)
	engine.PutUint32(head[8:12], meta.Height)
	engine.PutUint64(head[12:20], uint64(len(events)))
	if _, err := bw.Write(head[:]); err != nil {
		return 0, err
	}

	var rec [16]byte
	for i, ev := range events {
		engine.PutUint16(rec[0:2], ev.X)
		engine.PutUint16(rec[2:4], ev.Y)
		rec[4] = ev.Polarity
		rec[5] = 0
		engine.PutUint64(rec[8:16], ev.Timestamp)
		rec[6], rec[7] = 0, 0

		if _, err := bw.Write(rec[:]); err != nil {
			return i, err
		}
	}

	return len(events), bw.Flush()
}
