// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPatternsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".patterns")
	err := os.WriteFile(path, []byte("*.tmp\n# comment\n!keep.tmp\n"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsFile(path)
	if err != nil {
		t.Fatalf("LoadPatternsFile: %v", err)
	}

	if len(patterns) != 2 || patterns[0] != "*.tmp" || patterns[1] != "!keep.tmp" {
		t.Fatalf("patterns=%q", patterns)
	}
}

func TestLoadPatternsFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadPatternsFile(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadPatternsFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.patterns")
	p2 := filepath.Join(dir, "b.patterns")

	if err := os.WriteFile(p1, []byte("*.txt\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := os.WriteFile(p2, []byte("*.log\n*.tmp\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	patterns, err := LoadPatternsFiles(p1, p2)
	if err != nil {
		t.Fatalf("LoadPatternsFiles: %v", err)
	}

	want := []string{"*.txt", "*.log", "*.tmp"}
	if len(patterns) != len(want) {
		t.Fatalf("patterns=%q, want %q", patterns, want)
	}

	for i := range want {
		if patterns[i] != want[i] {
			t.Fatalf("patterns[%d]=%q, want %q", i, patterns[i], want[i])
		}
	}
}
