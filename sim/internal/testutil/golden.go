// Package testutil provides shared test infrastructure for the trace
// generator: scripted random sources and golden trace loading.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// LoadGolden returns the contents of testdata/<name> at the repo root.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGolden(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden trace: %v", err)
	}
	return string(data)
}
