// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import "testing"

func TestParsePatterns(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString(`
# comment
*.tmp
!keep.tmp
\#literal
name\ 
trailing   
`)
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	want := []string{"*.tmp", "!keep.tmp", "#literal", "name ", "trailing"}
	if len(patterns) != len(want) {
		t.Fatalf("len(patterns)=%d, want %d: %q", len(patterns), len(want), patterns)
	}

	for i := range want {
		if patterns[i] != want[i] {
			t.Fatalf("patterns[%d]=%q, want %q", i, patterns[i], want[i])
		}
	}
}

func TestParsePatternsCRLF(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString("*.txt\r\n*.log\r\n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	if len(patterns) != 2 || patterns[0] != "*.txt" || patterns[1] != "*.log" {
		t.Fatalf("patterns=%q", patterns)
	}
}

func TestParsePatternsEmpty(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString("\n# only comments\n\n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	if len(patterns) != 0 {
		t.Fatalf("patterns=%q, want empty", patterns)
	}
}

func TestParsedPatternsMatch(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString("*.txt\n!dir.txt\n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	got, err := Filter(
		[]string{"a.txt", "dir.txt", "b.log"},
		patterns,
		Options[string]{Flags: Case | Negate},
	)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}

	if len(got) != 1 || got[0] != "a.txt" {
		t.Fatalf("Filter=%q, want [a.txt]", got)
	}
}
