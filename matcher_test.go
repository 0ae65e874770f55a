// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import "testing"

func TestFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	names := []string{"b.log", "a.txt", "c.txt", ".hidden.txt", "d.md"}
	opts := Options[string]{Flags: Case}

	got, err := Filter(names, []string{"*.txt"}, opts)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	want := []string{"a.txt", "c.txt"}
	if len(got) != len(want) {
		t.Fatalf("filter returned %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("filter returned %v, want %v", got, want)
		}
	}
}

func TestFilterAgreesWithMatch(t *testing.T) {
	t.Parallel()

	names := []string{"a.txt", "b.log", ".prof", "dir.txt", "!neg"}
	patterns := []string{"*.txt", "!dir.*"}
	opts := Options[string]{Flags: Case | Negate}

	filtered, err := Filter(names, patterns, opts)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	kept := make(map[string]bool, len(filtered))
	for _, name := range filtered {
		kept[name] = true
	}

	for _, name := range names {
		matched, err := Match(name, patterns, opts)
		if err != nil {
			t.Fatalf("match %q: %v", name, err)
		}

		if matched != kept[name] {
			t.Errorf("match(%q) = %v, filter kept = %v", name, matched, kept[name])
		}
	}
}

func TestFilterBytes(t *testing.T) {
	t.Parallel()

	names := [][]byte{[]byte("a.c"), []byte("b.h"), {0xff, '.', 'c'}}

	got, err := Filter(names, [][]byte{[]byte("*.c")}, Options[[]byte]{Flags: Case})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("filter returned %d names, want 2", len(got))
	}

	if string(got[0]) != "a.c" || string(got[1]) != string([]byte{0xff, '.', 'c'}) {
		t.Fatalf("filter returned %q", got)
	}
}

func TestCompileCacheIdentity(t *testing.T) {
	patterns := []string{"*.txt", "*.log"}
	opts := Options[string]{Flags: Case | Split}

	first, err := Compile(patterns, opts)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	second, err := Compile(patterns, opts)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if first != second {
		t.Error("repeated compilation must return the cached matcher")
	}

	other, err := Compile(patterns, Options[string]{Flags: IgnoreCase | Split})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if other == first {
		t.Error("different flags must not share a cache entry")
	}
}

func TestCompileCustomCompilerBypassesCache(t *testing.T) {
	patterns := []string{"*.txt"}
	opts := Options[string]{Flags: Case, Compiler: NewCompiler(nil)}

	first, err := Compile(patterns, opts)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	second, err := Compile(patterns, opts)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if first == second {
		t.Error("custom compilers must not hit the shared cache")
	}
}

func TestMatcherAccessors(t *testing.T) {
	t.Parallel()

	m, err := Compile([]string{"*.txt"}, Options[string]{Flags: Case | DotMatch})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if m.Alphabet() != Unicode {
		t.Errorf("alphabet = %v, want %v", m.Alphabet(), Unicode)
	}

	if m.Flags()&DotMatch == 0 {
		t.Error("resolved flags must carry DotMatch")
	}

	bm, err := Compile([][]byte{[]byte("*.c")}, Options[[]byte]{Flags: Case})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if bm.Alphabet() != Bytes {
		t.Errorf("alphabet = %v, want %v", bm.Alphabet(), Bytes)
	}
}
