// Garbage collection of entries and index keys.
//
// Collection runs in two phases. The mark phase gathers every key listed by
// any index (requested) and sweeps entries and drafts down to that set; the
// keys that survive form known. The reconcile phase then drops keys from
// index lists that have no surviving entry or draft, so no index dangles.
//
// Since the sweep only keeps requested keys, known is always a subset of
// requested. Equal sizes therefore mean every requested key was found and
// the reconcile phase can be skipped. Both phases keep key order and
// metadata; only membership changes.
package ropex

import "slices"

// GC prunes entries and drafts no index references, then prunes index keys
// with no backing entry or draft. Done calls it automatically.
func (s *Store[K, E]) GC() *Store[K, E] {
	requested := make(map[K]struct{})
	for _, idx := range s.state.Indexes {
		for _, k := range idx.Keys {
			requested[k] = struct{}{}
		}
	}

	known := make(map[K]struct{}, len(requested))
	prunedEntries := sweep(s.state.Entries, requested, known)
	prunedDrafts := sweep(s.state.Drafts, requested, known)

	prunedKeys := 0
	if len(requested) > len(known) {
		for _, idx := range s.state.Indexes {
			n := len(idx.Keys)
			idx.Keys = slices.DeleteFunc(idx.Keys, func(k K) bool {
				_, ok := known[k]
				return !ok
			})
			prunedKeys += n - len(idx.Keys)
		}
	}

	s.logger.Debug("gc",
		"requested", len(requested),
		"known", len(known),
		"pruned_entries", prunedEntries,
		"pruned_drafts", prunedDrafts,
		"pruned_keys", prunedKeys,
	)
	return s
}

// sweep deletes every key of table that is not in mark and adds the
// survivors to known. It returns the number of deleted keys.
func sweep[K Key, E any](table map[K]E, mark, known map[K]struct{}) int {
	pruned := 0
	for k := range table {
		if _, ok := mark[k]; !ok {
			delete(table, k)
			pruned++
			continue
		}
		known[k] = struct{}{}
	}
	return pruned
}
