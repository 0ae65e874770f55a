// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

// Flags is the fixed-width bitset of matching behavior flags.
type Flags uint16

const (
	// Case forces case-sensitive matching regardless of filesystem defaults.
	Case Flags = 1 << iota
	// IgnoreCase forces case-insensitive matching.
	IgnoreCase
	// RawChars decodes backslash escape sequences before compilation.
	RawChars
	// Negate treats patterns with a leading "!" as exclusion patterns.
	Negate
	// MinusNegate uses "-" instead of "!" to mark exclusion patterns.
	MinusNegate
	// DotMatch lets leading wildcards match dot files.
	DotMatch
	// ExtMatch reserves extended-glob characters as magic.
	ExtMatch
	// Brace reserves brace-expansion characters as magic.
	Brace
	// Split allows one pattern argument to carry "|"-joined sub-patterns.
	Split
	// NegateAll treats every pattern as an exclusion of a match-all include.
	NegateAll
	// ForceWin forces Windows separator and case conventions.
	ForceWin
	// ForceUnix forces Unix separator and case conventions.
	ForceUnix
)

// flagMask covers every recognized flag bit.
const flagMask = Case |
	IgnoreCase |
	RawChars |
	Negate |
	MinusNegate |
	DotMatch |
	ExtMatch |
	Brace |
	Split |
	NegateAll |
	ForceWin |
	ForceUnix

// Resolve cancels mutually exclusive platform bits and masks unknown bits.
//
// Setting both ForceWin and ForceUnix cancels them out; this is logical
// cancellation, not an error. Every public entry point resolves flags once
// before any other component consumes them.
func (f Flags) Resolve() Flags {
	if f&ForceWin != 0 && f&ForceUnix != 0 {
		f &^= ForceWin | ForceUnix
	}

	return f & flagMask
}
