// Package sink writes decoded EVT3 events out in the formats a downstream
// analysis tool expects: CSV (with a selectable field order), a compact
// binary format, and a separate trigger CSV. None of this is used by the
// decoder itself; it is the "out-of-scope collaborator" the core data model
// was designed to feed.
package sink
