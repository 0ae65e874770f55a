// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import "regexp"

// cursor is a single-pass, position-tracked scanner over a fixed byte
// sequence. A cursor is single-owner and strictly sequential: it is created,
// driven to exhaustion or early termination, and discarded. It is never
// shared across goroutines or retained after its scan completes.
type cursor struct {
	input string
	index int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// next returns the unit at the current index and advances past it.
// The boolean is false once input is exhausted; exhaustion is a normal
// end-of-input signal to the consumer, not an error.
func (c *cursor) next() (byte, bool) {
	if c.index >= len(c.input) {
		return 0, false
	}

	u := c.input[c.index]
	c.index++
	return u, true
}

// matchAt attempts an anchored regexp match at the current index. On success
// the index advances to the match end; on failure it is left unchanged.
func (c *cursor) matchAt(re *regexp.Regexp) (string, bool) {
	loc := re.FindStringIndex(c.input[c.index:])
	if loc == nil || loc[0] != 0 {
		return "", false
	}

	m := c.input[c.index : c.index+loc[1]]
	c.index += loc[1]
	return m, true
}

// rewind decreases the index by count. Rewinding past the beginning breaks
// the scanner contract and panics.
func (c *cursor) rewind(count int) {
	if count > c.index {
		panic("wildmatch: cursor rewind underflow")
	}

	c.index -= count
}

// advance increases the index by count, clamped to input length.
func (c *cursor) advance(count int) {
	c.index += count
	if c.index > len(c.input) {
		c.index = len(c.input)
	}
}

// pos returns the current index for error-location reporting.
func (c *cursor) pos() int {
	return c.index
}

// span returns the input consumed since start.
func (c *cursor) span(start int) string {
	return c.input[start:c.index]
}
