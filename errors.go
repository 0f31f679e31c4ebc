// Package ropex provides an in-memory, normalised entity store with named
// indexes, copy-on-write transactions and automatic garbage collection of
// unreferenced entries.
//
// A State holds a flat table of keyed entries, an overlay of draft entries
// that take precedence on read, and named indexes. Each index is an ordered
// list of entry keys plus free-form metadata (cursors, sort state). A Store
// opens a transaction over a State by taking an independent working copy;
// Index views scope reads and writes to one index. Done runs the garbage
// collector and hands back a new State. The collector guarantees that every
// key an index lists has a backing entry or draft, and that every entry or
// draft is listed by at least one index.
//
// Core operations never fail. Writes against keys outside an index are
// ignored, reads of missing keys report absence, and map calls on a key the
// index does not hold log an advisory and do nothing. Only the helpers that
// cross the JSON boundary (Encode, Decode, Diff, Patch, Fingerprint) return
// errors.
package ropex

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// tell a malformed snapshot (ErrCorruptState) from a malformed change set
// (ErrInvalidPatch).
var (
	ErrCorruptState     = errors.New("corrupt state")
	ErrInvalidPatch     = errors.New("invalid patch")
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)
