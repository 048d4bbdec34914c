// Package header parses the optional textual preamble of an EVT 3.0 file:
// lines beginning with '%' that precede the binary word stream.
//
// Parsing never fails. Malformed fields are silently skipped and leave the
// metadata they would have populated unchanged; this mirrors the core
// decoder's own rule of never synthesizing data from malformed input.
package header
