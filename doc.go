// Package csvtape implements a high-throughput structural indexer for
// fixed-shape, comma-delimited text: given a byte region holding a header
// plus records of a constant field count, it produces an ordered index of
// every field and record delimiter that lies outside a quoted string, then
// answers random-access record and field lookups by arithmetic on that
// index alone.
//
// The scan never validates UTF-8, never unescapes a doubled quote, never
// tolerates a variable field count, and never allocates per field — callers
// get back slices into the original region.
package csvtape
