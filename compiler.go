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

// Compiler translates normalized patterns into regex sources and compiled
// matchers. Entry points hand it patterns that already went through
// Normalize; implementations own split, negation, exclusion and limit
// semantics.
type Compiler interface {
	// Translate converts the pattern set into regex sources, returning
	// inclusion and exclusion sources separately.
	Translate(patterns []string, alphabet Alphabet, flags Flags, limit int, exclude []string) (include []string, excluded []string, err error)
	// Compile builds a frozen Matcher for the pattern set.
	Compile(patterns []string, alphabet Alphabet, flags Flags, limit int, exclude []string) (*Matcher, error)
	// Escape returns pattern with every magic character escaped.
	Escape(pattern string, pathname bool) string
	// IsMagic reports whether pattern contains unescaped wildcard syntax
	// under the resolved flags.
	IsMagic(pattern string, flags Flags) bool
}

// DefaultCompiler is the built-in glob compiler, used whenever
// Options.Compiler is nil.
var DefaultCompiler = NewCompiler(nil)

// NewCompiler returns the default glob compiler backed by probe. A nil probe
// selects the platform probe chosen at process start.
func NewCompiler(probe FilesystemProbe) Compiler {
	if probe == nil {
		probe = defaultProbe
	}

	return &globCompiler{probe: probe}
}

// globCompiler is the default Compiler implementation.
type globCompiler struct {
	probe FilesystemProbe
}

// Translate implements Compiler.
func (c *globCompiler) Translate(patterns []string, alphabet Alphabet, flags Flags, limit int, exclude []string) ([]string, []string, error) {
	inc, exc, err := expandPatterns(patterns, flags, limit, exclude)
	if err != nil {
		return nil, nil, err
	}

	if len(inc) == 0 && len(exc) > 0 {
		// An all-negative set excludes from everything.
		inc = []string{"*"}
	}

	incOut := make([]string, 0, len(inc))
	for _, p := range inc {
		source, _ := c.translateOne(p, alphabet, flags)
		incOut = append(incOut, source)
	}

	excOut := make([]string, 0, len(exc))
	for _, p := range exc {
		source, _ := c.translateOne(p, alphabet, flags)
		excOut = append(excOut, source)
	}

	return incOut, excOut, nil
}

// Compile implements Compiler.
func (c *globCompiler) Compile(patterns []string, alphabet Alphabet, flags Flags, limit int, exclude []string) (*Matcher, error) {
	inc, exc, err := expandPatterns(patterns, flags, limit, exclude)
	if err != nil {
		return nil, err
	}

	if len(inc) == 0 && len(exc) > 0 {
		inc = []string{"*"}
	}

	include := make([]compiledPattern, 0, len(inc))
	for _, p := range inc {
		cp, err := c.compileOne(p, alphabet, flags)
		if err != nil {
			return nil, err
		}

		include = append(include, cp)
	}

	excluded := make([]compiledPattern, 0, len(exc))
	for _, p := range exc {
		cp, err := c.compileOne(p, alphabet, flags)
		if err != nil {
			return nil, err
		}

		excluded = append(excluded, cp)
	}

	return &Matcher{
		include:  include,
		exclude:  excluded,
		probe:    c.probe,
		alphabet: alphabet,
		flags:    flags,
	}, nil
}

// Escape implements Compiler.
func (c *globCompiler) Escape(pattern string, pathname bool) string {
	return escapePattern(pattern, pathname)
}

// IsMagic implements Compiler.
func (c *globCompiler) IsMagic(pattern string, flags Flags) bool {
	return isMagicPattern(pattern, flags)
}

// expandPatterns splits, partitions and bounds the pattern set.
func expandPatterns(patterns []string, flags Flags, limit int, exclude []string) (include, excluded []string, err error) {
	neg := byte('!')
	if flags&MinusNegate != 0 {
		neg = '-'
	}

	for _, pattern := range patterns {
		for _, p := range splitPatterns(pattern, flags) {
			negated := flags&NegateAll != 0
			if flags&Negate != 0 && len(p) > 0 && p[0] == neg {
				negated = true
				p = p[1:]
			}

			if negated {
				excluded = append(excluded, p)
			} else {
				include = append(include, p)
			}
		}
	}

	for _, pattern := range exclude {
		excluded = append(excluded, splitPatterns(pattern, flags)...)
	}

	if limit > 0 && len(include)+len(excluded) > limit {
		return nil, nil, fmt.Errorf("%w: %d patterns (limit %d)", ErrPatternLimit, len(include)+len(excluded), limit)
	}

	return include, excluded, nil
}

// compileOne compiles one expanded pattern.
func (c *globCompiler) compileOne(pattern string, alphabet Alphabet, flags Flags) (compiledPattern, error) {
	source, noDot := c.translateOne(pattern, alphabet, flags)
	re, err := regexp.Compile(source)
	if err != nil {
		return compiledPattern{}, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, pattern, err)
	}

	return compiledPattern{re: re, noDot: noDot}, nil
}

// translateOne converts one expanded pattern into anchored regex source.
// The boolean reports whether a leading wildcard must not match dot files;
// RE2 has no lookahead, so that constraint is enforced by the matcher rather
// than encoded into the source.
func (c *globCompiler) translateOne(pattern string, alphabet Alphabet, flags Flags) (string, bool) {
	body, noDot := globBody(pattern, alphabet, flags)
	prefix := `(?s)`
	if c.caseInsensitive(flags) {
		prefix = `(?si)`
	}

	return prefix + `\A(?:` + body + `)\z`, noDot
}

// caseInsensitive resolves the effective case mode: Case wins over
// IgnoreCase, the platform-forcing flags come next, the filesystem probe
// decides the rest.
func (c *globCompiler) caseInsensitive(flags Flags) bool {
	switch {
	case flags&Case != 0:
		return false
	case flags&IgnoreCase != 0:
		return true
	case flags&ForceWin != 0:
		return true
	case flags&ForceUnix != 0:
		return false
	}

	return !c.probe.IsCaseSensitive()
}

// globBody converts a glob pattern to regex body.
func globBody(pattern string, alphabet Alphabet, flags Flags) (string, bool) {
	var b strings.Builder
	win := windowsMode(flags)
	noDot := flags&DotMatch == 0 && len(pattern) > 0 && (pattern[0] == '*' || pattern[0] == '?')

	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]

		if win {
			// In Windows mode the canonical escaped-separator form and
			// the escaped backslash both denote one separator, and a
			// bare slash matches either separator byte.
			if strings.HasPrefix(pattern[i:], escapedSeparator) {
				b.WriteString(`[\\/]`)
				i += len(escapedSeparator) - 1
				continue
			}

			if strings.HasPrefix(pattern[i:], `\\`) {
				b.WriteString(`[\\/]`)
				i++
				continue
			}

			if ch == '/' {
				b.WriteString(`[\\/]`)
				continue
			}
		}

		switch ch {
		case '*':
			// Consecutive stars collapse; fnmatch names are flat.
			for i+1 < len(pattern) && pattern[i+1] == '*' {
				i++
			}

			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			if next, ok := appendCharClassRegex(pattern, i, alphabet, &b); ok {
				i = next
				continue
			}

			b.WriteString(`\[`)
		case '\\':
			if i+1 < len(pattern) {
				i++
				writeLiteralRegex(&b, pattern[i], alphabet)
				continue
			}

			b.WriteString(`\\`)
		default:
			writeLiteralRegex(&b, ch, alphabet)
		}
	}

	return b.String(), noDot
}

// appendCharClassRegex appends a parsed glob char class (`[...]`) as a regex
// class.
func appendCharClassRegex(pattern string, start int, alphabet Alphabet, b *strings.Builder) (int, bool) {
	if start < 0 || start >= len(pattern) || pattern[start] != '[' {
		return start, false
	}

	end := findCharClassEnd(pattern, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')

	idx := start + 1
	if idx < end && pattern[idx] == '!' {
		// Glob class negation "[!x]" maps to regex "[^x]".
		b.WriteByte('^')
		idx++
	} else if idx < end && pattern[idx] == '^' {
		// Literal leading '^' must be escaped in a regex class.
		b.WriteString(`\^`)
		idx++
	}

	if idx < end && pattern[idx] == ']' {
		// Leading ']' is literal in both glob and regex classes.
		b.WriteString(`\]`)
		idx++
	}

	for ; idx < end; idx++ {
		switch {
		case pattern[idx] == '\\':
			b.WriteString(`\\`)
		case pattern[idx] >= utf8.RuneSelf && alphabet == Bytes:
			fmt.Fprintf(b, `\x{%02x}`, pattern[idx])
		default:
			b.WriteByte(pattern[idx])
		}
	}

	b.WriteByte(']')
	return end, true
}

// findCharClassEnd locates the closing bracket of a glob char class.
func findCharClassEnd(pattern string, start int) int {
	if start < 0 || start >= len(pattern) || pattern[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pattern) && (pattern[idx] == '!' || pattern[idx] == '^') {
		idx++
	}

	if idx < len(pattern) && pattern[idx] == ']' {
		idx++
	}

	for ; idx < len(pattern); idx++ {
		if pattern[idx] == ']' {
			return idx
		}
	}

	return -1
}

// writeLiteralRegex emits one literal pattern unit as regex source. Byte
// alphabet values above ASCII are widened to Latin-1 escapes so arbitrary
// bytes survive RE2's rune semantics; text bytes pass through as UTF-8.
func writeLiteralRegex(b *strings.Builder, ch byte, alphabet Alphabet) {
	if ch >= utf8.RuneSelf {
		if alphabet == Bytes {
			fmt.Fprintf(b, `\x{%02x}`, ch)
			return
		}

		b.WriteByte(ch)
		return
	}

	b.WriteString(regexEscapeByte(ch))
}

// regexEscapeByte escapes one byte for regexp source.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '*', '?', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
