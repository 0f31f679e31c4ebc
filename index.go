// Index views.
//
// An Index is a handle on one named index inside an open Store. It keeps
// the index's key list and metadata and hands entry storage to the Store.
// Writes are scoped to membership: SetEntry only updates entries the index
// already lists, MapEntry refuses (with a logged advisory) keys it does not
// list, and AddEntry never lists a key twice.
package ropex

import "slices"

// Index is a view of one index in an open Store. Views obtained from the
// same Store for the same name observe each other's writes.
type Index[K Key, E any] struct {
	store *Store[K, E]
	name  string
	rec   *IndexState[K]
}

// Name returns the index name.
func (ix *Index[K, E]) Name() string {
	return ix.name
}

// Keys returns a copy of the index's member keys in order.
func (ix *Index[K, E]) Keys() []K {
	return slices.Clone(ix.rec.Keys)
}

// Has reports whether k is a member of the index.
func (ix *Index[K, E]) Has(k K) bool {
	return slices.Contains(ix.rec.Keys, k)
}

// GetAll returns the entries for the index's keys, in key order. Keys with
// no entry or draft are skipped.
func (ix *Index[K, E]) GetAll() []E {
	out := make([]E, 0, len(ix.rec.Keys))
	for _, k := range ix.rec.Keys {
		if e, ok := ix.store.GetEntry(k); ok {
			out = append(out, e)
		}
	}
	return out
}

// MetaData returns the metadata value stored under key.
func (ix *Index[K, E]) MetaData(key string) (any, bool) {
	v, ok := ix.rec.Meta[key]
	return v, ok
}

// MetaDataOr returns the metadata value stored under key, or def if there
// is none.
func (ix *Index[K, E]) MetaDataOr(key string, def any) any {
	if v, ok := ix.rec.Meta[key]; ok {
		return v
	}
	return def
}

// MetaAs returns the metadata value stored under key as a T. It returns def
// if the key is missing or holds a value of another type.
func MetaAs[T any, K Key, E any](ix *Index[K, E], key string, def T) T {
	if v, ok := ix.rec.Meta[key].(T); ok {
		return v
	}
	return def
}

// SetMetaData stores value under key in the index metadata.
func (ix *Index[K, E]) SetMetaData(key string, value any) *Index[K, E] {
	if ix.rec.Meta == nil {
		ix.rec.Meta = map[string]any{}
	}
	ix.rec.Meta[key] = value
	return ix
}

// SetEntry stores e if its key is already a member of the index. Otherwise
// it does nothing.
func (ix *Index[K, E]) SetEntry(e E, key KeyFunc[K, E]) *Index[K, E] {
	if !ix.Has(key(e)) {
		return ix
	}
	ix.store.SetEntry(e, key)
	return ix
}

// SetEntries replaces the index's members with the keys of entries, in
// order, and stores each entry. Drafts for those keys are discarded.
func (ix *Index[K, E]) SetEntries(entries []E, key KeyFunc[K, E]) *Index[K, E] {
	keys := make([]K, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, key(e))
	}
	ix.rec.Keys = keys
	for _, e := range entries {
		ix.store.SetEntry(e, key)
	}
	return ix
}

// AddEntry appends the key of e to the index and stores e. If the key is
// already a member, nothing happens.
func (ix *Index[K, E]) AddEntry(e E, key KeyFunc[K, E]) *Index[K, E] {
	k := key(e)
	if ix.Has(k) {
		return ix
	}
	ix.rec.Keys = append(ix.rec.Keys, k)
	ix.store.SetEntry(e, key)
	return ix
}

// AddEntries calls AddEntry for each entry in order.
func (ix *Index[K, E]) AddEntries(entries []E, key KeyFunc[K, E]) *Index[K, E] {
	for _, e := range entries {
		ix.AddEntry(e, key)
	}
	return ix
}

// MapEntry maps the entry for k if k is a member of the index. Mapping a
// key the index does not hold is most likely a caller bug; it is logged at
// warn level and otherwise ignored.
func (ix *Index[K, E]) MapEntry(k K, fn MapFunc[E], opts *MapOptions) *Index[K, E] {
	if !ix.Has(k) {
		ix.store.logger.Warn("map on key outside index", "index", ix.name, "key", k)
		return ix
	}
	ix.store.MapEntry(k, fn, opts)
	return ix
}

// MapEntries maps the entry of every member key, in key order.
func (ix *Index[K, E]) MapEntries(fn MapFunc[E], opts *MapOptions) *Index[K, E] {
	for _, k := range slices.Clone(ix.rec.Keys) {
		ix.store.MapEntry(k, fn, opts)
	}
	return ix
}

// Index returns a view of a sibling index in the same Store.
func (ix *Index[K, E]) Index(name string) *Index[K, E] {
	return ix.store.Index(name)
}

// Remove deletes this index from the Store and returns the Store.
func (ix *Index[K, E]) Remove() *Store[K, E] {
	return ix.store.Remove(ix.name)
}

// Done finalises the owning Store. See Store.Done.
func (ix *Index[K, E]) Done() State[K, E] {
	return ix.store.Done()
}
