// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"regexp"
	"strings"
)

// escapeMagic is the superset of every character any flag combination can
// treat as magic. Escape protects all of them so the result stays literal
// under any flags.
const escapeMagic = `*?[]()+@!{}|-`

// reWinDrive matches a leading Windows drive or UNC prefix that path-aware
// escaping leaves intact.
var reWinDrive = regexp.MustCompile(`^(?:[A-Za-z]:[\\/]|[\\/][\\/])`)

// magicChars returns the characters interpreted as wildcard syntax under the
// resolved flags.
func magicChars(flags Flags) string {
	magic := `*?[]`
	if flags&ExtMatch != 0 {
		magic += `()+@!`
	}

	if flags&Brace != 0 {
		magic += `{}`
	}

	if flags&Split != 0 {
		magic += `|`
	}

	if flags&Negate != 0 {
		if flags&MinusNegate != 0 {
			magic += `-`
		} else if flags&ExtMatch == 0 {
			magic += `!`
		}
	}

	return magic
}

// escapePattern escapes every magic character in pattern so that compiling
// the result matches only the literal input. Characters already escaped are
// left alone: existing escape pairs pass through untouched.
//
// In pathname mode a leading Windows drive or UNC prefix is copied verbatim.
func escapePattern(pattern string, pathname bool) string {
	var b strings.Builder
	b.Grow(len(pattern) + len(pattern)/4)

	start := 0
	if pathname {
		if drive := reWinDrive.FindString(pattern); drive != "" {
			b.WriteString(drive)
			start = len(drive)
		}
	}

	for i := start; i < len(pattern); i++ {
		ch := pattern[i]
		if ch == '\\' {
			if i+1 < len(pattern) {
				// Keep the existing escape pair; escaping it again
				// would double-escape.
				b.WriteByte('\\')
				i++
				b.WriteByte(pattern[i])
				continue
			}

			// A trailing lone backslash becomes a literal backslash.
			b.WriteString(`\\`)
			continue
		}

		if strings.IndexByte(escapeMagic, ch) >= 0 {
			b.WriteByte('\\')
		}

		b.WriteByte(ch)
	}

	return b.String()
}

// isMagicPattern reports whether pattern contains an unescaped character that
// the resolved flags interpret as wildcard syntax.
func isMagicPattern(pattern string, flags Flags) bool {
	magic := magicChars(flags)
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch == '\\' {
			// The escaped unit is literal regardless of what it is.
			i++
			continue
		}

		if strings.IndexByte(magic, ch) >= 0 {
			return true
		}
	}

	return false
}

// splitPatterns splits one pattern argument on unescaped "|" outside
// character classes. Without the Split flag the input is returned whole.
func splitPatterns(pattern string, flags Flags) []string {
	if flags&Split == 0 || !strings.ContainsRune(pattern, '|') {
		return []string{pattern}
	}

	parts := make([]string, 0, strings.Count(pattern, "|")+1)
	start := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			if end := findCharClassEnd(pattern, i); end >= 0 {
				i = end
			}
		case '|':
			parts = append(parts, pattern[start:i])
			start = i + 1
		}
	}

	return append(parts, pattern[start:])
}
