// Package wire provides pure, stateless functions for unpacking EVT 3.0 words.
//
// An EVT 3.0 stream is a sequence of little-endian 16-bit words. Each word
// carries a 4-bit type tag in its high nibble and a 12-bit, type-specific
// payload in the remaining bits. This package knows how to pull the tag and
// payload fields out of one word; it holds no state of its own and never
// looks at neighboring words.
package wire
