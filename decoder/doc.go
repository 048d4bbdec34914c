// Package decoder implements the stateful EVT 3.0 decoding state machine.
//
// A Decoder owns cursor state accumulated across a sequence of 16-bit words:
// the current row, the base column and polarity of an in-progress vector
// burst, and a 64-bit timestamp reconstructed from 12-bit TIME_HIGH/TIME_LOW
// fragments with wrap-around detection. DecodeBuffer consumes one slice of
// words at a time and appends CdEvent and TriggerEvent values to
// caller-supplied slices; a Decoder may be fed any number of buffers in
// sequence, as if they were one continuous stream, and may be Reset to its
// initial state between unrelated streams.
//
// This package does no I/O and never logs: malformed or reserved input is
// dropped silently, exactly as the wire format's own error model requires
// (see the stream package for the buffered file driver that feeds a Decoder
// from disk).
package decoder
