// Package testkit holds small assertions shared by package tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails t unless out contains want. Long outputs such as log
// captures are dumped to a temp file instead of the failure message
func MustContain(t *testing.T, out, want string) {
	t.Helper()
	if strings.Contains(out, want) {
		return
	}
	if len(out) <= 512 {
		t.Fatalf("expected %q in output:\n%s", want, out)
	}
	f := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(f, []byte(out), 0o600)
	t.Fatalf("expected %q in output, %d bytes written to %s", want, len(out), f)
}

// MustNotContain fails t if out contains unwanted
func MustNotContain(t *testing.T, out, unwanted string) {
	t.Helper()
	if strings.Contains(out, unwanted) {
		t.Fatalf("unexpected %q in output:\n%s", unwanted, out)
	}
}
