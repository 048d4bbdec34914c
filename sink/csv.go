package sink

import (
	"bufio"
	"io"
	"strconv"

	"github.com/evt3decode/evt3/decoder"
)

// WriteCSV writes events to w as CSV in the given field order, preceded by a
// "%geometry:width,height" comment line if meta is non-nil. It returns the
// number of events written and the first error encountered, if any.
func WriteCSV(w io.Writer, events []decoder.CdEvent, meta *decoder.SensorMetadata, order FieldOrder) (int, error) {
	bw := bufio.NewWriterSize(w, 64*1024)

	if meta != nil {
		if _, err := bw.WriteString("%geometry:" + strconv.FormatUint(uint64(meta.Width), 10) + "," + strconv.FormatUint(uint64(meta.Height), 10) + "\n"); err != nil {
			return 0, err
		}
	}

	if _, err := bw.WriteString(order.Header() + "\n"); err != nil {
		return 0, err
	}

	var values [4]uint64
	for i, ev := range events {
		values[fieldX] = uint64(ev.X)
		values[fieldY] = uint64(ev.Y)
		values[fieldPolarity] = uint64(ev.Polarity)
		values[fieldTimestamp] = ev.Timestamp

		for j, idx := range order.indices {
			if j > 0 {
				if err := bw.WriteByte(','); err != nil {
					return i, err
				}
			}
			if _, err := bw.WriteString(strconv.FormatUint(values[idx], 10)); err != nil {
				return i, err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return i, err
		}
	}

	return len(events), bw.Flush()
}

// WriteTriggerCSV writes trigger events to w as "value,id,timestamp" CSV
// rows, one per line, with no header.
func WriteTriggerCSV(w io.Writer, events []decoder.TriggerEvent) (int, error) {
	bw := bufio.NewWriterSize(w, 64*1024)

	for i, ev := range events {
		line := strconv.FormatUint(uint64(ev.Value), 10) + "," +
			strconv.FormatUint(uint64(ev.ID), 10) + "," +
			strconv.FormatUint(ev.Timestamp, 10) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return i, err
		}
	}

	return len(events), bw.Flush()
}
