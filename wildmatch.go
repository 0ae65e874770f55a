// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

// DefaultPatternLimit bounds the expanded pattern count when Options.Limit
// is zero. The limit guards worst-case compilation cost, not match cost.
const DefaultPatternLimit = 1000

// Options controls the public matching entry points. The zero value selects
// default flags, the default pattern limit, no exclusions and the default
// compiler.
type Options[T Pattern] struct {
	// Flags is the behavior flag bitset; resolved once per call.
	Flags Flags
	// Limit bounds the expanded pattern count. Zero means
	// DefaultPatternLimit, negative disables the limit.
	Limit int
	// Exclude holds exclusion patterns applied after inclusions.
	Exclude []T
	// Compiler overrides the pattern compiler. Nil selects
	// DefaultCompiler.
	Compiler Compiler
}

func (o Options[T]) compiler() Compiler {
	if o.Compiler == nil {
		return DefaultCompiler
	}

	return o.Compiler
}

func (o Options[T]) limit() int {
	switch {
	case o.Limit == 0:
		return DefaultPatternLimit
	case o.Limit < 0:
		return 0
	}

	return o.Limit
}

// Translate converts patterns into regex sources without compiling them,
// returning inclusion and exclusion sources separately.
func Translate[T Pattern](patterns []T, opts Options[T]) (include []T, exclude []T, err error) {
	flags := opts.Flags.Resolve()
	alphabet := alphabetOf[T]()

	norm, err := preparePatterns(patterns, flags, alphabet)
	if err != nil {
		return nil, nil, err
	}

	excl, err := preparePatterns(opts.Exclude, flags, alphabet)
	if err != nil {
		return nil, nil, err
	}

	inc, exc, err := opts.compiler().Translate(norm, alphabet, flags, opts.limit(), excl)
	if err != nil {
		return nil, nil, err
	}

	return toPatterns[T](inc), toPatterns[T](exc), nil
}

// Compile builds a frozen Matcher for the pattern set. Results for the
// default compiler are cached; repeated compilations of the same set return
// the same Matcher.
func Compile[T Pattern](patterns []T, opts Options[T]) (*Matcher, error) {
	flags := opts.Flags.Resolve()
	alphabet := alphabetOf[T]()
	limit := opts.limit()

	norm, err := preparePatterns(patterns, flags, alphabet)
	if err != nil {
		return nil, err
	}

	excl, err := preparePatterns(opts.Exclude, flags, alphabet)
	if err != nil {
		return nil, err
	}

	comp := opts.compiler()
	if comp != DefaultCompiler {
		return comp.Compile(norm, alphabet, flags, limit, excl)
	}

	key := newMatcherCacheKey(norm, excl, alphabet, flags, limit)
	if m, ok := compileCache.get(key); ok {
		return m, nil
	}

	m, err := comp.Compile(norm, alphabet, flags, limit, excl)
	if err != nil {
		return nil, err
	}

	compileCache.put(key, m)
	return m, nil
}

// Match reports whether filename matches the pattern set.
func Match[T Pattern](filename T, patterns []T, opts Options[T]) (bool, error) {
	m, err := Compile(patterns, opts)
	if err != nil {
		return false, err
	}

	return m.match(string(filename)), nil
}

// Filter returns the filenames matching the pattern set, preserving input
// order. The pattern set is compiled exactly once.
func Filter[T Pattern](filenames []T, patterns []T, opts Options[T]) ([]T, error) {
	m, err := Compile(patterns, opts)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(filenames))
	for _, name := range filenames {
		if m.match(string(name)) {
			out = append(out, name)
		}
	}

	return out, nil
}

// PurgeCache drops every matcher cached for the default compiler.
func PurgeCache() {
	compileCache.purge()
}

// Escape returns pattern with every magic character escaped so that
// compiling the result matches only the literal input. Characters already
// escaped are not escaped again.
func Escape[T Pattern](pattern T) T {
	return T(DefaultCompiler.Escape(string(pattern), false))
}

// IsMagic reports whether pattern contains a character that would be
// interpreted as wildcard syntax under flags.
func IsMagic[T Pattern](pattern T, flags Flags) bool {
	return DefaultCompiler.IsMagic(string(pattern), flags.Resolve())
}

// preparePatterns normalizes every pattern for the resolved flags.
func preparePatterns[T Pattern](patterns []T, flags Flags, alphabet Alphabet) ([]string, error) {
	normOpts := NormalizeOptions{
		Separators: windowsMode(flags),
		RawChars:   flags&RawChars != 0,
	}

	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		n, err := normalizePattern(string(p), alphabet, normOpts)
		if err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	return out, nil
}

func toPatterns[T Pattern](values []string) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}

	return out
}
