// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

/*
Package wildmatch implements fnmatch-style wildcard matching with a
pattern-normalization pass that canonicalizes path separators and decodes
backslash escape sequences before patterns reach the glob compiler.

Basic flow:
  - normalize patterns (`Normalize`, done internally by entry points)
  - translate or compile the pattern set (`Translate`, `Compile`)
  - evaluate candidates (`Match`, `Filter`, `Matcher.Match`)

Patterns and filenames are either text (string) or raw bytes ([]byte); one
call operates on exactly one alphabet. The generic entry points enforce that
statically, while `Matcher.Match` accepts any path-representable value and
reports `ErrAlphabetMismatch` when the coerced alphabet differs from the
compiled pattern set.

Pattern compilation is pluggable: `Compiler` is the collaborator contract and
`DefaultCompiler` the built-in glob implementation. Extended-glob and brace
expansion are not implemented; the `ExtMatch` and `Brace` flags only widen
the magic character set recognized by `IsMagic` and protected by `Escape`.
*/
package wildmatch
