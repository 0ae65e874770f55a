// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import "testing"

func TestFlagsResolveCancellation(t *testing.T) {
	t.Parallel()

	got := (ForceWin | ForceUnix).Resolve()
	if got&ForceWin != 0 || got&ForceUnix != 0 {
		t.Fatalf("ForceWin|ForceUnix must cancel out, got %b", got)
	}

	if got != Flags(0).Resolve() {
		t.Fatalf("cancelled flags must equal empty flags, got %b", got)
	}

	if r := (RawChars | ForceWin | ForceUnix).Resolve(); r != RawChars {
		t.Fatalf("cancellation must keep unrelated bits, got %b", r)
	}
}

func TestFlagsResolveKeepsSingleForce(t *testing.T) {
	t.Parallel()

	if got := ForceWin.Resolve(); got != ForceWin {
		t.Fatalf("lone ForceWin must survive, got %b", got)
	}

	if got := ForceUnix.Resolve(); got != ForceUnix {
		t.Fatalf("lone ForceUnix must survive, got %b", got)
	}
}

func TestFlagsResolveMasksUnknownBits(t *testing.T) {
	t.Parallel()

	raw := Case | IgnoreCase | Flags(1<<15) | Flags(1<<13)
	if got := raw.Resolve(); got != Case|IgnoreCase {
		t.Fatalf("unknown bits must be discarded, got %b", got)
	}
}
