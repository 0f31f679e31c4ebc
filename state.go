// Snapshot data model.
//
// State is the only structure exchanged with the host. A Store never
// mutates the State it was opened from: it works on a copy produced by
// clone, and Done hands back another copy so that a returned snapshot
// stays fixed even if the Store is written to afterwards.
package ropex

import (
	"slices"

	goclone "github.com/huandu/go-clone"
)

// Key is the set of types usable as entry keys.
type Key interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// State is a snapshot of entries, drafts and indexes.
type State[K Key, E any] struct {
	Entries map[K]E                   `json:"entries"` // Committed entries
	Drafts  map[K]E                   `json:"drafts"`  // Uncommitted overlay, read first
	Indexes map[string]*IndexState[K] `json:"indexes"` // Named key lists
}

// IndexState is one named index within a State.
type IndexState[K Key] struct {
	Meta map[string]any `json:"meta"` // Opaque metadata (cursors, sort state)
	Keys []K            `json:"keys"` // Member keys, in enumeration order
}

// KeyFunc extracts the key of an entry.
type KeyFunc[K Key, E any] func(E) K

// Empty returns a state with no entries, drafts or indexes.
func Empty[K Key, E any]() State[K, E] {
	return State[K, E]{
		Entries: map[K]E{},
		Drafts:  map[K]E{},
		Indexes: map[string]*IndexState[K]{},
	}
}

func newIndexState[K Key]() *IndexState[K] {
	return &IndexState[K]{Meta: map[string]any{}, Keys: []K{}}
}

// clone returns a copy of s that shares no maps, slices or entries with
// it. A nil map or key list in s comes back empty.
func clone[K Key, E any](s State[K, E], entry func(E) E) State[K, E] {
	out := State[K, E]{
		Entries: make(map[K]E, len(s.Entries)),
		Drafts:  make(map[K]E, len(s.Drafts)),
		Indexes: make(map[string]*IndexState[K], len(s.Indexes)),
	}
	for k, e := range s.Entries {
		out.Entries[k] = entry(e)
	}
	for k, e := range s.Drafts {
		out.Drafts[k] = entry(e)
	}
	for name, idx := range s.Indexes {
		if idx == nil {
			out.Indexes[name] = newIndexState[K]()
			continue
		}
		out.Indexes[name] = cloneIndex(idx)
	}
	return out
}

func cloneIndex[K Key](idx *IndexState[K]) *IndexState[K] {
	keys := slices.Clone(idx.Keys)
	if keys == nil {
		keys = []K{}
	}
	meta := make(map[string]any, len(idx.Meta))
	for k, v := range idx.Meta {
		meta[k] = cloneValue(v)
	}
	return &IndexState[K]{Meta: meta, Keys: keys}
}

// cloneValue deep copies a metadata value, keeping its dynamic type.
func cloneValue(v any) any {
	return goclone.Clone(v)
}
