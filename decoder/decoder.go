package decoder

import (
	"math/bits"

	"github.com/evt3decode/evt3/wire"
)

// Timing constants for TIME_HIGH/TIME_LOW reconstruction and wraparound
// (loop) detection. TIME_HIGH carries only 12 bits, representing microsecond
// epochs of 4096us x 4096 = 16.777s; on hardware wrap the naively
// reconstructed timestamp regresses by almost exactly MaxTimestampBase. The
// asymmetric threshold tolerates small, legitimate reorderings below ~40ms
// while still recognizing genuine wraps.
const (
	// TimeLoop is one full TIME_HIGH epoch: 1<<24 microseconds.
	TimeLoop uint64 = 1 << 24
	// MaxTimestampBase is the largest value time_base can take before a loop.
	MaxTimestampBase uint64 = ((1 << 12) - 1) << 12
	// LoopThreshold bounds how far time_base may legitimately regress without
	// being treated as a wraparound.
	LoopThreshold uint64 = 10 << 12
)

// Decoder is a stateful EVT 3.0 decoding session. The zero value is not
// ready for use; construct one with New.
//
// A Decoder is not safe for concurrent use: it is owned by exactly one
// logical caller at a time. Two Decoders operating on disjoint inputs in
// separate goroutines never interact.
type Decoder struct {
	clock    clockState
	cursor   cursorState
	metadata SensorMetadata
}

// clockState is the 64-bit timestamp reconstructed from 12-bit TIME_HIGH and
// TIME_LOW fragments, plus the bookkeeping needed to detect TIME_HIGH wrap.
type clockState struct {
	timeBase      uint64
	timeLow       uint64
	currentTime   uint64
	loops         uint64
	firstBaseSeen bool
}

// cursorState is the row/column/polarity cursor carried across ADDR_Y,
// VECT_BASE_X, and vector-burst words.
type cursorState struct {
	y        uint16
	baseX    uint16
	polarity uint8
}

// New creates a Decoder in its initial state: all counters zero, no
// TIME_HIGH observed yet, and default 1280x720 metadata.
func New() *Decoder {
	return &Decoder{metadata: NewSensorMetadata()}
}

// Reset clears all cursor and clock state, including the first-TIME_HIGH
// flag, but preserves Metadata. A Reset Decoder replaying the same word
// sequence produces byte-identical output to a freshly constructed one.
func (d *Decoder) Reset() {
	d.clock = clockState{}
	d.cursor = cursorState{}
}

// Metadata returns the decoder's current sensor metadata.
func (d *Decoder) Metadata() SensorMetadata {
	return d.metadata
}

// SetMetadata replaces the decoder's sensor metadata, e.g. to pre-seed it
// from a textual preamble parsed out-of-band before decoding begins.
func (d *Decoder) SetMetadata(meta SensorMetadata) {
	d.metadata = meta
}

// ReserveCD ensures cd has room for at least n more elements without
// changing its length, letting a caller with a size estimate avoid repeated
// reallocation. The stream package's file driver does not call it.
// The decoder itself never estimates output size from input size: vector
// bursts make the ratio input-dependent, not fixed.
func ReserveCD(cd *[]CdEvent, n int) {
	if cap(*cd)-len(*cd) >= n {
		return
	}
	grown := make([]CdEvent, len(*cd), len(*cd)+n)
	copy(grown, *cd)
	*cd = grown
}

// ReserveTrigger is ReserveCD for trigger event slices.
func ReserveTrigger(triggers *[]TriggerEvent, n int) {
	if cap(*triggers)-len(*triggers) >= n {
		return
	}
	grown := make([]TriggerEvent, len(*triggers), len(*triggers)+n)
	copy(grown, *triggers)
	*triggers = grown
}

// DecodeBuffer consumes words left to right, appending zero or more events
// to cd and triggers in emission order. It may be called any number of
// times on the same Decoder to continue decoding a longer stream; the
// result is identical regardless of how the stream was chunked across calls
// (see DecodeBuffer's chunking-independence property in the package tests).
//
// Pre-roll: until the first TIME_HIGH word is observed, every word
// (including ADDR_Y/ADDR_X/trigger words) is silently discarded, since no
// absolute timestamp anchor exists yet. On that first TIME_HIGH, time_base
// is set to value<<12, current_time to time_base, and decoding proceeds
// normally with every subsequent word.
func (d *Decoder) DecodeBuffer(words []uint16, cd *[]CdEvent, triggers *[]TriggerEvent) {
	i := 0
	if !d.clock.firstBaseSeen {
		for ; i < len(words); i++ {
			w := wire.Word(words[i])
			typ, _ := w.Type()
			if typ == wire.TimeHigh {
				d.clock.timeBase = uint64(wire.DecodeTimeValue(w)) << 12
				d.clock.currentTime = d.clock.timeBase
				d.clock.firstBaseSeen = true
				i++
				break
			}
		}
	}

	for ; i < len(words); i++ {
		d.decodeWord(wire.Word(words[i]), cd, triggers)
	}
}

func (d *Decoder) decodeWord(w wire.Word, cd *[]CdEvent, triggers *[]TriggerEvent) {
	typ, ok := w.Type()
	if !ok {
		return
	}

	switch typ {
	case wire.AddrY:
		f := wire.DecodeAddrY(w)
		d.cursor.y = f.Y

	case wire.AddrX:
		f := wire.DecodeAddrX(w)
		*cd = append(*cd, CdEvent{X: f.X, Y: d.cursor.y, Polarity: f.Polarity, Timestamp: d.clock.currentTime})

	case wire.VectBaseX:
		f := wire.DecodeVectBaseX(w)
		d.cursor.baseX = f.X
		d.cursor.polarity = f.Polarity

	case wire.Vect12:
		mask := wire.DecodeVect12Mask(w)
		d.emitVector(uint32(mask), 12, cd)

	case wire.Vect8:
		mask := wire.DecodeVect8Mask(w)
		d.emitVector(uint32(mask), 8, cd)

	case wire.TimeLow:
		d.clock.timeLow = uint64(wire.DecodeTimeValue(w))
		d.clock.currentTime = d.clock.timeBase + d.clock.timeLow

	case wire.TimeHigh:
		d.processTimeHigh(w)

	case wire.ExtTrigger:
		f := wire.DecodeExtTrigger(w)
		*triggers = append(*triggers, TriggerEvent{Value: f.Value, ID: f.ID, Timestamp: d.clock.currentTime})

	case wire.Continued4, wire.Others, wire.Continued12:
		// Carries auxiliary data not used by this decoder.
	}
}

// emitVector appends one CdEvent per set bit of mask (bit i = offset i from
// the current base column), then advances the base column by count
// regardless of how many bits were set. mask == 0 is legal: it advances the
// cursor but emits nothing.
func (d *Decoder) emitVector(mask uint32, count uint16, cd *[]CdEvent) {
	for mask != 0 {
		offset := bits.TrailingZeros32(mask)
		*cd = append(*cd, CdEvent{
			X:         d.cursor.baseX + uint16(offset),
			Y:         d.cursor.y,
			Polarity:  d.cursor.polarity,
			Timestamp: d.clock.currentTime,
		})
		mask &^= 1 << uint(offset)
	}
	d.cursor.baseX += count
}

// processTimeHigh applies the loop-detection rule: if time_base appears to
// regress by close to a full epoch, TIME_HIGH has wrapped and an extra
// TimeLoop is added. After processing, current_time temporarily equals
// time_base (time_low is conceptually zero until the next TIME_LOW word).
func (d *Decoder) processTimeHigh(w wire.Word) {
	value := uint64(wire.DecodeTimeValue(w))
	candidate := (value << 12) + d.clock.loops*TimeLoop

	if d.clock.timeBase > candidate && (d.clock.timeBase-candidate) >= (MaxTimestampBase-LoopThreshold) {
		candidate += TimeLoop
		d.clock.loops++
	}

	d.clock.timeBase = candidate
	d.clock.currentTime = d.clock.timeBase
}
