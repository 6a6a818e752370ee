package testkit

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aymanbagabas/go-udiff"
)

var update = flag.Bool("update", false, "rewrite golden files instead of comparing")

// Golden compares got with the file at path, or rewrites it under -update.
// Mismatches are reported as a unified diff.
func Golden(t testing.TB, path string, got []byte) {
	t.Helper()
	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			t.Fatalf("write golden %s: %v", path, err)
		}
		return
	}
	want, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("golden file %s is missing; run the test with -update", path)
	}
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	if diff := Diff(path, string(want), string(got)); diff != "" {
		t.Errorf("output differs from %s:\n%s", path, diff)
	}
}

// Diff returns a unified diff of want against got, "" when equal.
func Diff(name, want, got string) string {
	if want == got {
		return ""
	}
	return udiff.Unified(name, "got", want, got)
}
