// JSON form of a State.
//
// The snapshot shape is {"entries":{...},"drafts":{...},"indexes":{name:
// {"meta":{...},"keys":[...]}}}. Map keys are emitted in sorted order, so
// equal states encode to identical bytes; Fingerprint and Diff rely on
// this. Integer entry keys become JSON object keys as decimal strings and
// are parsed back on Decode.
package ropex

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Encode returns the JSON form of s. Nil maps and key lists are written as
// empty objects and arrays.
func Encode[K Key, E any](s State[K, E]) ([]byte, error) {
	data, err := json.Marshal(clone(s, ShallowClone[E]))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// Decode parses the JSON form of a State. Missing sections decode as empty.
func Decode[K Key, E any](data []byte) (State[K, E], error) {
	var s State[K, E]
	if err := json.Unmarshal(data, &s); err != nil {
		return Empty[K, E](), fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	return clone(s, ShallowClone[E]), nil
}
