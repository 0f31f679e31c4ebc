package ropex

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffEqual(t *testing.T) {
	patch, err := Diff(baseState(), baseState())
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if string(patch) != "{}" {
		t.Errorf("Diff of equal states = %s, want {}", patch)
	}
}

// TestDiffRemoval verifies that entries dropped by a transaction show up
// as null members in the patch.
func TestDiffRemoval(t *testing.T) {
	before := baseState()
	after := openTestStore(t, before).Remove("index").Done()

	patch, err := Diff(before, after)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	for _, want := range []string{`"a":null`, `"b":null`, `"index":null`} {
		if !strings.Contains(string(patch), want) {
			t.Errorf("patch %s missing %s", patch, want)
		}
	}
}

func TestPatchApply(t *testing.T) {
	before := baseState()
	after := openTestStore(t, before).
		Index("index").
		MapEntry("a", withData("t"), nil).
		AddEntry(entry{ID: "c", Data: "new"}, byID).
		SetMetaData("page", "2").
		Index("index").
		SetEntry(entry{ID: "b", Data: "hard"}, byID).
		Done()

	patch, err := Diff(before, after)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}

	got, err := Patch(before, patch)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if diff := cmp.Diff(after, got); diff != "" {
		t.Errorf("Patch mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(baseState(), before); diff != "" {
		t.Errorf("Patch modified its input (-want +got):\n%s", diff)
	}
}

func TestPatchInvalid(t *testing.T) {
	got, err := Patch(baseState(), []byte("not json"))
	if !errors.Is(err, ErrInvalidPatch) {
		t.Fatalf("Patch: got %v, want ErrInvalidPatch", err)
	}
	if diff := cmp.Diff(baseState(), got); diff != "" {
		t.Errorf("Patch on error should return input (-want +got):\n%s", diff)
	}
}

// TestPatchCorruptResult verifies that a well-formed patch producing a
// document of the wrong shape is reported as a corrupt state.
func TestPatchCorruptResult(t *testing.T) {
	_, err := Patch(baseState(), []byte(`{"entries":{"a":"not an entry"}}`))
	if !errors.Is(err, ErrCorruptState) {
		t.Errorf("Patch: got %v, want ErrCorruptState", err)
	}
}
