// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// unicodeNames is the reverse Unicode name index backing \N{NAME} decoding.
// runenames only maps rune to name, so the index is built once on first use.
var unicodeNames = sync.OnceValue(buildUnicodeNames)

func buildUnicodeNames() map[string]rune {
	names := make(map[string]rune, 1<<17)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}

		name := runenames.Name(r)
		// Skip unnamed code points and "<control>"-style placeholders.
		if name == "" || name[0] == '<' {
			continue
		}

		names[name] = r
	}

	return names
}

// lookupUnicodeName resolves a Unicode character name case-insensitively.
func lookupUnicodeName(name string) (rune, bool) {
	r, ok := unicodeNames()[strings.ToUpper(name)]
	return r, ok
}
