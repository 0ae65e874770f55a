// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Matcher evaluates coerced paths against one compiled pattern set. Every
// field is populated at construction and never mutated afterwards, so a
// Matcher is safe for concurrent read-only evaluation.
type Matcher struct {
	include  []compiledPattern
	exclude  []compiledPattern
	probe    FilesystemProbe
	alphabet Alphabet
	flags    Flags
}

// compiledPattern is one compiled inclusion or exclusion pattern.
type compiledPattern struct {
	re *regexp.Regexp
	// noDot rejects hidden names before the regex runs; set when a leading
	// wildcard must not match hidden files.
	noDot bool
}

func (p compiledPattern) match(name string, hidden bool) bool {
	if p.noDot && hidden {
		return false
	}

	return p.re.MatchString(name)
}

// Alphabet returns the alphabet the pattern set was compiled for.
func (m *Matcher) Alphabet() Alphabet {
	return m.alphabet
}

// Flags returns the resolved flags the pattern set was compiled with.
func (m *Matcher) Flags() Flags {
	return m.flags
}

// Match coerces path and evaluates it against the compiled pattern set.
// path must be a string, []byte or PathLike value of the same alphabet as
// the compiled patterns.
func (m *Matcher) Match(path any) (bool, error) {
	name, alphabet, err := coercePath(path)
	if err != nil {
		return false, err
	}

	if alphabet != m.alphabet {
		return false, fmt.Errorf("%w: %s path against %s patterns", ErrAlphabetMismatch, alphabet, m.alphabet)
	}

	return m.match(name), nil
}

// match evaluates one already-coerced candidate: any include must match and
// no exclude may match.
func (m *Matcher) match(name string) bool {
	hidden := m.probe.IsHidden(name)

	if m.alphabet == Bytes {
		name = latin1Widen(name)
	}

	matched := false
	for i := range m.include {
		if m.include[i].match(name, hidden) {
			matched = true
			break
		}
	}

	if !matched {
		return false
	}

	for i := range m.exclude {
		if m.exclude[i].match(name, hidden) {
			return false
		}
	}

	return true
}

// latin1Widen maps every byte to the rune of the same value so arbitrary
// bytes survive RE2's UTF-8 rune semantics. Byte-alphabet regex sources are
// generated in the same widened space.
func latin1Widen(s string) string {
	wide := false
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			wide = true
			break
		}
	}

	if !wide {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		b.WriteRune(rune(s[i]))
	}

	return b.String()
}
