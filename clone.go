// Entry copy functions for Config.Clone.
package ropex

import (
	goclone "github.com/huandu/go-clone"
)

// ShallowClone copies an entry by assignment. It is a correct Config.Clone
// for entry types that hold no pointers, maps or slices.
func ShallowClone[E any](e E) E {
	return e
}

// DeepClone copies an entry and everything it points to, including
// unexported struct fields. Dynamic types held in interfaces are kept.
// Funcs and channels are copied by assignment.
func DeepClone[E any](e E) E {
	out, ok := goclone.Clone(e).(E)
	if !ok {
		// nil interface value
		return e
	}
	return out
}
