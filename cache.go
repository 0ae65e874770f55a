// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"strconv"
	"strings"
	"sync"
)

// matcherCacheLimit bounds the compile cache; the whole map is dropped when
// the limit is reached, trading precision for zero bookkeeping.
const matcherCacheLimit = 256

// matcherCache stores compiled matchers for repeated pattern sets. Only the
// default compiler is cached; custom compilers may not be deterministic per
// key.
type matcherCache struct {
	mu      sync.Mutex
	entries map[matcherCacheKey]*Matcher
}

type matcherCacheKey struct {
	patterns string
	exclude  string
	alphabet Alphabet
	flags    Flags
	limit    int
}

var compileCache matcherCache

func newMatcherCacheKey(patterns, exclude []string, alphabet Alphabet, flags Flags, limit int) matcherCacheKey {
	return matcherCacheKey{
		patterns: joinLenPrefixed(patterns),
		exclude:  joinLenPrefixed(exclude),
		alphabet: alphabet,
		flags:    flags,
		limit:    limit,
	}
}

// joinLenPrefixed concatenates values unambiguously; patterns may themselves
// contain any byte, so a plain separator join could collide.
func joinLenPrefixed(values []string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}

	return b.String()
}

func (c *matcherCache) get(key matcherCacheKey) (*Matcher, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.entries[key]
	return m, ok
}

func (c *matcherCache) put(key matcherCacheKey, m *Matcher) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= matcherCacheLimit {
		c.entries = nil
	}

	if c.entries == nil {
		c.entries = make(map[matcherCacheKey]*Matcher, 16)
	}

	c.entries[key] = m
}

// purge drops every cached matcher.
func (c *matcherCache) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
