// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"testing"
)

const (
	benchPatternCount = 64
	benchNameCount    = 512
)

var (
	benchBoolSink  bool
	benchCountSink int
)

func benchmarkPatterns(n int) []string {
	patterns := make([]string, 0, n)
	for i := 0; i < n; i++ {
		patterns = append(patterns, fmt.Sprintf("dir%02d-*.ext%02d", i%16, i%8))
	}

	return patterns
}

func benchmarkNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, fmt.Sprintf("dir%02d-file%04d.ext%02d", i%16, i, i%8))
	}

	return names
}

func BenchmarkNormalize(b *testing.B) {
	pattern := `data\x2ddump-\u00e9*.\N{LATIN SMALL LETTER A}??`
	opts := NormalizeOptions{RawChars: true}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Normalize(pattern, opts)
		if err != nil {
			b.Fatal(err)
		}

		if out == "" {
			b.Fatal("empty pattern")
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	patterns := benchmarkPatterns(benchPatternCount)
	opts := Options[string]{Flags: Case}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Vary the limit so every iteration misses the matcher cache and
		// measures compilation.
		opts.Limit = benchPatternCount + 1 + i
		m, err := Compile(patterns, opts)
		if err != nil {
			b.Fatal(err)
		}

		if m == nil {
			b.Fatal("nil matcher")
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	m, err := Compile(benchmarkPatterns(benchPatternCount), Options[string]{Flags: Case})
	if err != nil {
		b.Fatal(err)
	}

	names := benchmarkNames(benchNameCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = m.match(names[i%len(names)])
	}
}

func BenchmarkMatchCached(b *testing.B) {
	patterns := benchmarkPatterns(benchPatternCount)
	names := benchmarkNames(benchNameCount)
	opts := Options[string]{Flags: Case}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := Match(names[i%len(names)], patterns, opts)
		if err != nil {
			b.Fatal(err)
		}

		benchBoolSink = ok
	}
}

func BenchmarkFilter(b *testing.B) {
	patterns := benchmarkPatterns(benchPatternCount)
	names := benchmarkNames(benchNameCount)
	opts := Options[string]{Flags: Case}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Filter(names, patterns, opts)
		if err != nil {
			b.Fatal(err)
		}

		benchCountSink = len(out)
	}
}
