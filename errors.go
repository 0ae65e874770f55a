// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"errors"
	"fmt"
)

// Sentinel errors for wildmatch operations.
var (
	// ErrInvalidEscape indicates a malformed escape sequence in a pattern.
	ErrInvalidEscape = errors.New("invalid escape")
	// ErrUnknownUnicodeName indicates an unrecognized \N{...} character name.
	ErrUnknownUnicodeName = errors.New("unknown unicode character name")
	// ErrUnsupportedPathType indicates a path value outside the supported set.
	ErrUnsupportedPathType = errors.New("unsupported path type")
	// ErrAlphabetMismatch indicates mixed text and byte alphabets in one call.
	ErrAlphabetMismatch = errors.New("alphabet mismatch")
	// ErrPatternLimit indicates the expanded pattern count exceeded the limit.
	ErrPatternLimit = errors.New("pattern limit exceeded")
	// ErrInvalidPattern indicates malformed or unsupported pattern input.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// EscapeError reports a malformed or undecodable escape sequence with its
// location in the original pattern.
type EscapeError struct {
	// Text is the offending escape substring, including any partial suffix.
	Text string
	// Pos is the 0-based offset of the escape in the original input.
	Pos int
}

// Error implements the error interface.
func (e *EscapeError) Error() string {
	return fmt.Sprintf("could not convert character value %q at position %d", e.Text, e.Pos)
}

// Unwrap ties EscapeError to ErrInvalidEscape for errors.Is.
func (e *EscapeError) Unwrap() error { return ErrInvalidEscape }

// UnicodeNameError reports a syntactically valid \N{...} escape whose name is
// not present in the Unicode character database.
type UnicodeNameError struct {
	// Name is the unrecognized character name.
	Name string
	// Pos is the 0-based offset of the escape in the original input.
	Pos int
}

// Error implements the error interface.
func (e *UnicodeNameError) Error() string {
	return fmt.Sprintf("unknown unicode character name %q at position %d", e.Name, e.Pos)
}

// Unwrap ties UnicodeNameError to ErrUnknownUnicodeName for errors.Is.
func (e *UnicodeNameError) Unwrap() error { return ErrUnknownUnicodeName }
