package main

import "github.com/evt3decode/evt3/endian"

// binaryEngine is the byte order used for .bin output; it matches the EVT3
// wire format's own little-endian convention.
func binaryEngine() endian.EndianEngine {
	return endian.GetLittleEndianEngine()
}
