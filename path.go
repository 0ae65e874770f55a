// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"fmt"
	"strings"
)

// Alphabet discriminates the two pattern and path alphabets. A single call
// operates on exactly one alphabet.
type Alphabet uint8

const (
	// Unicode selects text patterns and paths.
	Unicode Alphabet = iota
	// Bytes selects raw byte patterns and paths.
	Bytes
)

// String returns the alphabet name.
func (a Alphabet) String() string {
	if a == Bytes {
		return "bytes"
	}

	return "unicode"
}

// Pattern is the closed set of pattern and filename representations.
type Pattern interface {
	string | []byte
}

// PathLike exposes a filesystem path representation for values that are
// neither text nor bytes. FilePath must return string or []byte; any other
// result fails coercion with ErrUnsupportedPathType.
type PathLike interface {
	FilePath() any
}

// alphabetOf reports the alphabet selected by the type parameter.
func alphabetOf[T Pattern]() Alphabet {
	var zero T
	if _, ok := any(zero).([]byte); ok {
		return Bytes
	}

	return Unicode
}

// coercePath converts a path-representable value into its canonical internal
// form. Text and byte values pass through unchanged; PathLike values are
// converted through their capability. Everything else is a usage error.
func coercePath(v any) (string, Alphabet, error) {
	switch p := v.(type) {
	case string:
		return p, Unicode, nil
	case []byte:
		return string(p), Bytes, nil
	case PathLike:
		switch r := p.FilePath().(type) {
		case string:
			return r, Unicode, nil
		case []byte:
			return string(r), Bytes, nil
		default:
			return "", 0, fmt.Errorf("%w: %T.FilePath returned %T, want string or []byte", ErrUnsupportedPathType, p, r)
		}
	}

	return "", 0, fmt.Errorf("%w: %T, want string, []byte or PathLike", ErrUnsupportedPathType, v)
}

// pathBase returns the final path component using slash separator.
func pathBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}

	return path
}
