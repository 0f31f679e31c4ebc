// Change sets between snapshots.
//
// Diff expresses the difference between two states as a JSON merge patch
// (RFC 7386) over their encodings: changed entries and index records are
// carried whole, removed ones appear as null. Patch applies such a change
// set to a state and returns the result; the input state is not modified.
package ropex

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// Diff returns the merge patch that turns before into after. Equal states
// produce "{}".
func Diff[K Key, E any](before, after State[K, E]) ([]byte, error) {
	a, err := Encode(before)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	b, err := Encode(after)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	return patch, nil
}

// Patch applies a merge patch produced by Diff to s.
func Patch[K Key, E any](s State[K, E], patch []byte) (State[K, E], error) {
	doc, err := Encode(s)
	if err != nil {
		return s, fmt.Errorf("patch: %w", err)
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}
	return Decode[K, E](out)
}
