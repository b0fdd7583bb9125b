// Package nsglob implements shell-style glob matching over abstract file
// namespaces.
//
// A pattern may contain the usual glob syntax: * and ? wildcards, [...]
// character classes, {a,b} brace groups, and ** for matching directories
// recursively. Matching runs against any hierarchy exposed through the
// [Provider] interface - the local filesystem is one such provider, an
// in-memory tree for tests is another.
package nsglob

import (
	"iter"

	"github.com/spf13/afero"
)

// Flags alter how patterns are matched. The zero value disables every
// option; most callers want [DefaultFlags].
type Flags uint8

const (
	// IgnoreCase makes segment comparison case-insensitive.
	IgnoreCase Flags = 1 << iota

	// DotMatch lets wildcards match names beginning with a dot.
	DotMatch

	// NoEscape treats backslash as a literal character rather than an
	// escape introducer.
	NoEscape

	// PathName stops * from matching the path separator.
	PathName
)

// DefaultFlags is used when no WithFlags option is given.
const DefaultFlags = IgnoreCase | PathName | NoEscape

// Glob matches pattern against the hierarchy exposed by ns, returning the
// matched entries as a lazy sequence. Entries are produced in traversal
// order (depth-first, in the order the provider lists them). A pattern
// whose brace alternatives overlap can produce the same entry more than
// once; no deduplication is performed. Breaking out of the range stops
// the traversal.
//
// Malformed patterns (unbalanced braces, unterminated character classes)
// are not errors - they simply match nothing.
func Glob[T any](ns Provider[T], pattern string, opts ...Option) iter.Seq[T] {
	if ns == nil {
		panic("nsglob: Glob called with nil Provider")
	}
	cfg := defaultConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}

	return func(yield func(T) bool) {
		for _, alt := range ungroup(pattern, cfg.flags&NoEscape != 0) {
			m := newMatcher(ns, alt, &cfg)
			if !m.glob(yield) {
				return
			}
		}
	}
}

// GlobLocal is [Glob] bound to the real local filesystem. Matched entries
// are reported as paths.
func GlobLocal(pattern string, opts ...Option) iter.Seq[string] {
	return Glob[string](NewFS(afero.NewOsFs()), pattern, opts...)
}
