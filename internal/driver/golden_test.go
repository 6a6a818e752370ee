package driver

import (
	"path/filepath"
	"strings"
	"testing"

	"zinc/internal/testkit"
)

func TestGoldenPrograms(t *testing.T) {
	sources, err := filepath.Glob(filepath.Join("testdata", "golden", "*.zn"))
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) == 0 {
		t.Fatal("no golden sources")
	}
	for _, src := range sources {
		name := strings.TrimSuffix(filepath.Base(src), ".zn")
		t.Run(name, func(t *testing.T) {
			res, err := TranspileFile(src, Options{})
			if err != nil {
				t.Fatalf("transpile: %v", err)
			}
			if !res.OK() {
				t.Fatalf("unexpected diagnostic: %v", res.Diag)
			}
			if err := testkit.CheckSpanInvariants(res.AST, res.File); err != nil {
				t.Fatalf("span invariants: %v", err)
			}
			testkit.Golden(t, strings.TrimSuffix(src, ".zn")+".rs", []byte(Wrap(res.Out)+"\n"))
		})
	}
}
