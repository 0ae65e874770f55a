// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// escapedSeparator is the canonical 4-unit escaped-separator form emitted for
// escaped separators under separator normalization. It is safe to embed in
// generated regex source.
const escapedSeparator = `\\\\`

// NormalizeOptions controls the Normalize transform.
type NormalizeOptions struct {
	// Separators canonicalizes escaped path separators to the fixed
	// 4-unit escaped form. Bare separators are left unchanged.
	Separators bool
	// RawChars decodes backslash escape sequences into the literal
	// characters they denote.
	RawChars bool
	// ReEscape prefixes undecoded escapes with an extra escape so the
	// result can be re-embedded as literal pattern text.
	ReEscape bool
}

// tokenKind classifies one scanned escape unit. Exactly one kind applies per
// matched span; precedence is fixed by the scan order in scanEscape.
type tokenKind uint8

const (
	// tokSlash is an escaped path separator.
	tokSlash tokenKind = iota
	// tokStandard is one of the short escapes \a \b \f \n \r \t \v \\.
	tokStandard
	// tokNumeric is an octal (\NNN) or hex (\xHH) escape.
	tokNumeric
	// tokUnicode is a \uHHHH or \UHHHHHHHH escape, text alphabet only.
	tokUnicode
	// tokNamed is a \N{NAME} escape, text alphabet only.
	tokNamed
	// tokOpaque is any other single escaped character.
	tokOpaque
	// tokMalformed is a recognized escape prefix missing its required
	// suffix; always a terminal error.
	tokMalformed
)

// escapeToken is one classified escape span.
type escapeToken struct {
	kind tokenKind
	// text is the matched span including the leading backslash.
	text string
	// name is the character name for tokNamed.
	name string
	// pos is the 0-based offset of the span in the original input.
	pos int
}

var (
	reNamedEscape  = regexp.MustCompile(`^\{[^}]*\}`)
	reNamedPartial = regexp.MustCompile(`^\{[^}]*`)
)

// standardEscapes maps short escape letters to their literal values. The
// backslash pair maps to itself so normalized output stays safe to embed in
// generated regex source.
var standardEscapes = map[byte]string{
	'a':  "\a",
	'b':  "\b",
	'f':  "\f",
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
	'v':  "\v",
	'\\': `\\`,
}

// Normalize canonicalizes escaped path separators and optionally decodes
// backslash escape sequences in pattern. The output uses the same alphabet
// as the input and the transform is idempotent: normalizing already
// normalized input with the same options yields identical output.
//
// One corner escapes the idempotence guarantee: decoding a numeric escape
// whose value is the backslash itself (`\134`, `\x5c`) emits a bare
// backslash, which a second pass reads as a fresh escape prefix.
//
// With all options off the input is returned as-is without scanning.
func Normalize[T Pattern](pattern T, opts NormalizeOptions) (T, error) {
	if !opts.Separators && !opts.RawChars && !opts.ReEscape {
		return pattern, nil
	}

	out, err := normalizePattern(string(pattern), alphabetOf[T](), opts)
	if err != nil {
		var zero T
		return zero, err
	}

	return T(out), nil
}

// normalizePattern runs one linear left-to-right scan over pattern,
// classifying every escape span and rewriting it per opts.
func normalizePattern(pattern string, alphabet Alphabet, opts NormalizeOptions) (string, error) {
	if !opts.Separators && !opts.RawChars && !opts.ReEscape {
		return pattern, nil
	}

	var b strings.Builder
	b.Grow(len(pattern))

	c := newCursor(pattern)
	for {
		rest := pattern[c.pos():]
		if rest == "" {
			break
		}

		// Everything up to the next backslash needs no rewriting; bare
		// separators are already canonical.
		i := strings.IndexByte(rest, '\\')
		if i < 0 {
			b.WriteString(rest)
			break
		}

		b.WriteString(rest[:i])
		c.advance(i)

		start := c.pos()
		c.advance(1)
		if c.pos() == len(pattern) {
			// A trailing lone backslash matches no escape grammar and
			// flows through untouched.
			b.WriteByte('\\')
			break
		}

		tok := scanEscape(c, start, alphabet)
		if err := writeEscapeToken(&b, tok, alphabet, opts); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

// scanEscape classifies the escape starting at start. The cursor is
// positioned just past the leading backslash and ends past the full span.
func scanEscape(c *cursor, start int, alphabet Alphabet) escapeToken {
	u, _ := c.next()

	tok := func(kind tokenKind) escapeToken {
		return escapeToken{kind: kind, text: c.span(start), pos: start}
	}

	switch {
	case u == '/':
		return tok(tokSlash)

	case u == 'a', u == 'b', u == 'f', u == 'n', u == 'r', u == 't', u == 'v', u == '\\':
		return tok(tokStandard)

	case '0' <= u && u <= '7':
		// Octal escapes carry one to three digits; the first suffices.
		for digits := 1; digits < 3; digits++ {
			d, ok := c.next()
			if !ok {
				break
			}

			if d < '0' || d > '7' {
				c.rewind(1)
				break
			}
		}

		return tok(tokNumeric)

	case u == 'x':
		if takeHex(c, 2) {
			return tok(tokNumeric)
		}

		return tok(tokMalformed)

	case u == 'u' && alphabet == Unicode:
		if takeHex(c, 4) {
			return tok(tokUnicode)
		}

		return tok(tokMalformed)

	case u == 'U' && alphabet == Unicode:
		if takeHex(c, 8) {
			return tok(tokUnicode)
		}

		return tok(tokMalformed)

	case u == 'N' && alphabet == Unicode:
		if m, ok := c.matchAt(reNamedEscape); ok {
			t := tok(tokNamed)
			t.name = m[1 : len(m)-1]
			return t
		}

		// Capture the partial name so the error cites everything the
		// scan recognized.
		c.matchAt(reNamedPartial)
		return tok(tokMalformed)

	default:
		// Any other escaped unit is opaque: one character in the text
		// alphabet, one byte in the byte alphabet.
		if alphabet == Unicode && u >= utf8.RuneSelf {
			c.rewind(1)
			_, size := utf8.DecodeRuneInString(c.input[c.pos():])
			c.advance(size)
		}

		return tok(tokOpaque)
	}
}

// takeHex consumes exactly n hex digits, leaving any non-hex unit in place.
// Consumed partial digits stay consumed so malformed spans report them.
func takeHex(c *cursor, n int) bool {
	for i := 0; i < n; i++ {
		d, ok := c.next()
		if !ok {
			return false
		}

		if !isHexDigit(d) {
			c.rewind(1)
			return false
		}
	}

	return true
}

func isHexDigit(d byte) bool {
	return d >= '0' && d <= '9' || d >= 'a' && d <= 'f' || d >= 'A' && d <= 'F'
}

// writeEscapeToken emits the rewritten form of one classified escape.
func writeEscapeToken(b *strings.Builder, tok escapeToken, alphabet Alphabet, opts NormalizeOptions) error {
	switch tok.kind {
	case tokSlash:
		// The escaped form spans more than one separator unit and gets
		// canonicalized; a bare separator never reaches here.
		if opts.Separators {
			b.WriteString(escapedSeparator)
		} else {
			b.WriteString(tok.text)
		}

	case tokStandard:
		if opts.RawChars {
			b.WriteString(standardEscapes[tok.text[1]])
		} else {
			b.WriteString(tok.text)
		}

	case tokNumeric:
		if !opts.RawChars {
			writeUndecoded(b, tok.text, opts)
			return nil
		}

		if tok.text[1] == 'x' {
			v, err := strconv.ParseUint(tok.text[2:], 16, 16)
			if err != nil {
				return &EscapeError{Text: tok.text, Pos: tok.pos}
			}

			writeScalar(b, uint32(v), alphabet)
			return nil
		}

		v, err := strconv.ParseUint(tok.text[1:], 8, 16)
		if err != nil {
			return &EscapeError{Text: tok.text, Pos: tok.pos}
		}

		writeScalar(b, uint32(v), alphabet)

	case tokUnicode:
		if !opts.RawChars {
			writeUndecoded(b, tok.text, opts)
			return nil
		}

		v, err := strconv.ParseUint(tok.text[2:], 16, 32)
		if err != nil || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
			return &EscapeError{Text: tok.text, Pos: tok.pos}
		}

		b.WriteRune(rune(v))

	case tokNamed:
		if !opts.RawChars {
			writeUndecoded(b, tok.text, opts)
			return nil
		}

		r, ok := lookupUnicodeName(tok.name)
		if !ok {
			return &UnicodeNameError{Name: tok.name, Pos: tok.pos}
		}

		b.WriteRune(r)

	case tokOpaque:
		if !opts.RawChars && opts.ReEscape {
			b.WriteByte('\\')
		}

		b.WriteString(tok.text)

	case tokMalformed:
		return &EscapeError{Text: tok.text, Pos: tok.pos}
	}

	return nil
}

// writeUndecoded passes an escape through, optionally re-escaped for literal
// re-embedding.
func writeUndecoded(b *strings.Builder, text string, opts NormalizeOptions) {
	if opts.ReEscape {
		b.WriteByte('\\')
	}

	b.WriteString(text)
}

// writeScalar emits one decoded numeric escape value in the given alphabet.
// Byte-alphabet values are masked to one byte; text values become code
// points.
func writeScalar(b *strings.Builder, v uint32, alphabet Alphabet) {
	if alphabet == Bytes {
		b.WriteByte(byte(v))
		return
	}

	b.WriteRune(rune(v))
}
