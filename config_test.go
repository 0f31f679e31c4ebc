// Configuration option tests.
//
// Config controls how a Store copies entries and where it logs. The
// defaults (DeepClone, slog.Default) are chosen so that
// Config{} is always safe. These tests verify that defaults are applied
// when a field is left zero and that custom values are actually used.
package ropex

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestConfigClone verifies that a custom Clone is called for every entry
// and draft on Open, and not again by Done.
func TestConfigClone(t *testing.T) {
	calls := 0
	cfg := Config[entry]{
		Clone: func(e entry) entry {
			calls++
			return e
		},
		Logger: slog.New(slog.DiscardHandler),
	}

	st := Open(baseState(), cfg)
	if calls != 3 {
		t.Errorf("Clone calls on Open = %d, want 3", calls)
	}

	st.Done()
	if calls != 3 {
		t.Errorf("Clone calls after Done = %d, want 3", calls)
	}
}

// TestConfigLogger verifies that a custom logger receives the store's
// output and the default logger does not.
func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config[entry]{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	st := Open(baseState(), cfg)
	if st.logger != cfg.Logger {
		t.Error("Logger not propagated")
	}

	st.Index("index").MapEntry("nope", withData("x"), nil)
	if !strings.Contains(buf.String(), "map on key outside index") {
		t.Errorf("custom logger got %q", buf.String())
	}
}

func TestConfigDefaultLogger(t *testing.T) {
	st := New(baseState())
	if st.logger != slog.Default() {
		t.Error("Logger does not default to slog.Default()")
	}
}
