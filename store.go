// Store lifecycle: open a transaction over a State, reach its indexes,
// and finalise it with Done.
package ropex

import (
	"log/slog"
	"maps"
	"slices"
)

// Config holds store configuration options.
type Config[E any] struct {
	Clone  func(E) E    // Deep copy of one entry (default: DeepClone)
	Logger *slog.Logger // Advisory and gc logging (default: slog.Default())
}

// Store is an open transaction over a working copy of a State. It is not
// safe for concurrent use.
type Store[K Key, E any] struct {
	state  State[K, E]
	config Config[E]
	logger *slog.Logger
}

// New opens a store over state with the default configuration.
func New[K Key, E any](state State[K, E]) *Store[K, E] {
	return Open(state, Config[E]{})
}

// Open opens a store over state. The store works on a deep copy; state
// itself is never modified.
func Open[K Key, E any](state State[K, E], config Config[E]) *Store[K, E] {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Clone == nil {
		config.Clone = DeepClone[E]
	}

	return &Store[K, E]{
		state:  clone(state, config.Clone),
		config: config,
		logger: config.Logger,
	}
}

// Index returns a view of the named index, creating an empty index if none
// exists. Views of the same name share the underlying index.
func (s *Store[K, E]) Index(name string) *Index[K, E] {
	rec, ok := s.state.Indexes[name]
	if !ok {
		rec = newIndexState[K]()
		s.state.Indexes[name] = rec
	}
	return &Index[K, E]{store: s, name: name, rec: rec}
}

// Indexes returns the names of all indexes in sorted order.
func (s *Store[K, E]) Indexes() []string {
	return slices.Sorted(maps.Keys(s.state.Indexes))
}

// Remove deletes the named index. Entries it referenced are released by
// the next GC or Done.
func (s *Store[K, E]) Remove(name string) *Store[K, E] {
	delete(s.state.Indexes, name)
	return s
}

// Done collects garbage and returns the resulting state. The returned
// State does not share maps or key lists with the store, so later writes
// to the store leave it unchanged.
func (s *Store[K, E]) Done() State[K, E] {
	s.GC()
	return clone(s.state, ShallowClone[E])
}
