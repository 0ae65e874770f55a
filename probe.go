// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"runtime"
	"strings"
)

// FilesystemProbe reports filesystem traits that feed default matching
// behavior. The default compiler consults IsCaseSensitive when neither Case
// nor IgnoreCase nor a platform-forcing flag is set.
type FilesystemProbe interface {
	// IsHidden reports whether path names a hidden file.
	IsHidden(path string) bool
	// IsCaseSensitive reports whether the filesystem compares names
	// case-sensitively.
	IsCaseSensitive() bool
}

// defaultProbe is the platform variant selected once at process start.
var defaultProbe FilesystemProbe = newPlatformProbe(runtime.GOOS)

// platformProbe is the built-in probe keyed off the target OS.
type platformProbe struct {
	caseSensitive bool
}

func newPlatformProbe(goos string) *platformProbe {
	switch goos {
	case "windows", "darwin":
		return &platformProbe{caseSensitive: false}
	default:
		return &platformProbe{caseSensitive: true}
	}
}

// IsCaseSensitive implements FilesystemProbe.
func (p *platformProbe) IsCaseSensitive() bool {
	return p.caseSensitive
}

// IsHidden counts dot files as hidden on every platform. Richer checks
// (Windows file attributes, macOS UF_HIDDEN) belong to OS-specific probe
// implementations supplied by the caller.
func (p *platformProbe) IsHidden(path string) bool {
	return strings.HasPrefix(pathBase(strings.TrimSuffix(path, "/")), ".")
}

// windowsMode reports whether patterns follow Windows separator conventions
// under the resolved flags.
func windowsMode(flags Flags) bool {
	switch {
	case flags&ForceWin != 0:
		return true
	case flags&ForceUnix != 0:
		return false
	}

	return runtime.GOOS == "windows"
}
