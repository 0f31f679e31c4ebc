// Entry-level operations.
//
// Every read resolves a key by looking in drafts first and falling back to
// entries. A hard write (SetEntry, or MapEntry with Commit) lands in
// entries and discards the draft for that key. None of these touch index
// key lists; an entry no index references is dropped by the next GC.
package ropex

// MapFunc transforms an entry. ok is false when the key has neither an
// entry nor a draft, in which case entry is the zero value. The result is
// stored as is.
type MapFunc[E any] func(entry E, ok bool) E

// MapOptions configures MapEntry and MapEntries. A nil *MapOptions is the
// default: results are stored as drafts.
type MapOptions struct {
	Commit bool // Store results in entries and discard drafts
}

// SetEntry stores e under key(e) and discards any draft for that key.
func (s *Store[K, E]) SetEntry(e E, key KeyFunc[K, E]) *Store[K, E] {
	k := key(e)
	s.state.Entries[k] = e
	delete(s.state.Drafts, k)
	return s
}

// RemoveEntry deletes both the entry and the draft for k.
func (s *Store[K, E]) RemoveEntry(k K) *Store[K, E] {
	delete(s.state.Entries, k)
	delete(s.state.Drafts, k)
	return s
}

// GetEntry resolves k, preferring the draft over the committed entry.
func (s *Store[K, E]) GetEntry(k K) (E, bool) {
	if e, ok := s.state.Drafts[k]; ok {
		return e, true
	}
	e, ok := s.state.Entries[k]
	return e, ok
}

// GetEntries returns every entry with drafts laid over the committed
// entries. The returned map is a new map.
func (s *Store[K, E]) GetEntries() map[K]E {
	out := make(map[K]E, len(s.state.Entries)+len(s.state.Drafts))
	for k, e := range s.state.Entries {
		out[k] = e
	}
	for k, e := range s.state.Drafts {
		out[k] = e
	}
	return out
}

// MapEntry replaces the entry for k with fn applied to its resolved value.
func (s *Store[K, E]) MapEntry(k K, fn MapFunc[E], opts *MapOptions) *Store[K, E] {
	next := fn(s.GetEntry(k))
	if opts != nil && opts.Commit {
		s.state.Entries[k] = next
		delete(s.state.Drafts, k)
		return s
	}
	s.state.Drafts[k] = next
	return s
}

// MapEntries applies MapEntry to every key that resolves to an entry.
// Keys are visited in no particular order.
func (s *Store[K, E]) MapEntries(fn MapFunc[E], opts *MapOptions) *Store[K, E] {
	for k := range s.GetEntries() {
		s.MapEntry(k, fn, opts)
	}
	return s
}
