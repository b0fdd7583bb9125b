package nsglob

import (
	"fmt"
	"io"
	"strings"
)

// matcher walks one brace-free pattern alternative over a namespace.
type matcher[T any] struct {
	ns      Provider[T]
	pattern string
	flags   Flags
	dirOnly bool
	// stripTwo records that traversal started at ".", so candidate
	// paths carry a leading "./" that must be removed before lookup.
	stripTwo bool
	trace    io.Writer
	yield    func(T) bool
}

func newMatcher[T any](ns Provider[T], pattern string, cfg *config) *matcher[T] {
	if pattern == "**" {
		// A bare ** means the same thing as *.
		pattern = "*"
	}
	return &matcher[T]{
		ns:      ns,
		pattern: pattern,
		flags:   cfg.flags,
		dirOnly: strings.HasSuffix(pattern, "/"),
		trace:   cfg.traceLogger,
	}
}

func (m *matcher[T]) logf(f string, v ...any) {
	if m.trace == nil {
		return
	}
	fmt.Fprintf(m.trace, f, v...)
}

// glob runs the traversal, passing every matched entry to yield. It
// reports whether the caller wants more results.
func (m *matcher[T]) glob(yield func(T) bool) bool {
	m.yield = yield
	if m.pattern == "" {
		return true
	}

	position := 0
	baseDirectory := "."
	if m.pattern[0] == '/' || strings.ContainsRune(m.pattern, ':') {
		// Absolute (or drive-qualified) pattern: consume the literal
		// prefix up to the first wildcard-bearing segment.
		patternEnd, _ := m.findNextSeparator(0, false)
		if patternEnd == len(m.pattern) {
			return m.testPath(m.pattern, patternEnd, true)
		}
		if patternEnd > 0 {
			baseDirectory = m.pattern[:patternEnd]
			if len(baseDirectory) > 1 {
				baseDirectory = strings.TrimSuffix(baseDirectory, "/")
			}
			position = patternEnd
		}
	}
	m.stripTwo = baseDirectory == "."
	m.logf("glob %q starting at %q\n", m.pattern, baseDirectory)
	return m.doGlob(baseDirectory, position, false)
}

// findNextSeparator scans for the end of the segment beginning at
// position. Consecutive non-wildcard segments are bundled together: if a
// wildcard appears before the next separator, the boundary snaps back to
// the last separator already seen, so the deepest contiguous literal run
// is consumed as a single base path without listing directories.
func (m *matcher[T]) findNextSeparator(position int, allowWildcard bool) (end int, wildcard bool) {
	lastSlash := -1
	inEscape := false
	for i := position; i < len(m.pattern); i++ {
		if inEscape {
			inEscape = false
			continue
		}
		switch c := m.pattern[i]; {
		case c == '\\' && m.flags&NoEscape == 0:
			inEscape = true
		case c == '*' || c == '?' || c == '[':
			if !allowWildcard {
				return lastSlash + 1, false
			}
			if lastSlash >= 0 {
				return lastSlash, false
			}
			wildcard = true
		case c == '/' || c == ':':
			if wildcard {
				return i, true
			}
			lastSlash = i
		}
	}
	return len(m.pattern), wildcard
}

// doGlob processes the pattern segment starting at position against the
// children of baseDirectory. lastDoubleStar suppresses re-expanding a **
// that the parent level already expanded, which is what keeps **/**
// equivalent to ** instead of walking everything twice.
func (m *matcher[T]) doGlob(baseDirectory string, position int, lastDoubleStar bool) bool {
	if _, ok := m.ns.FindDirectory(baseDirectory); !ok {
		// Nothing under a missing directory.
		return true
	}

	patternEnd, wildcard := m.findNextSeparator(position, true)
	last := patternEnd == len(m.pattern)
	segmentPattern := m.pattern[position:patternEnd]
	if !last {
		patternEnd++ // step over the separator
	}

	if !wildcard {
		// A literal run needs no listing - append and carry on.
		return m.testPath(m.join(baseDirectory, segmentPattern), patternEnd, last)
	}

	doubleStar := segmentPattern == "**"
	if doubleStar && !lastDoubleStar {
		// ** consuming zero directories.
		m.logf("** expanding to nothing at %q\n", baseDirectory)
		if !m.doGlob(baseDirectory, patternEnd, true) {
			return false
		}
	}

	sm := compileSegment(segmentPattern, m.flags)

	for _, entry := range m.ns.List(baseDirectory) {
		name := lastComponent(m.ns.PathOf(entry))
		if sm == nil || !sm.match(name) {
			continue
		}
		// The entry is consumed by this segment.
		if !m.testPath(m.join(baseDirectory, name), patternEnd, last) {
			return false
		}
		if doubleStar {
			// Also descend with the ** left unresolved, so it can
			// consume further directories. The directory check at the
			// top of doGlob discards non-directories.
			if !m.doGlob(m.join(baseDirectory, name), position, true) {
				return false
			}
		}
	}

	// Listings never include the . and .. entries; probe them when the
	// pattern asks for dot names.
	if m.flags&DotMatch != 0 || strings.HasPrefix(segmentPattern, ".") {
		if sm != nil && sm.match(".") {
			if !m.testPath(m.join(baseDirectory, "."), patternEnd, last) {
				return false
			}
		}
		if sm != nil && sm.match("..") {
			if !m.testPath(m.join(baseDirectory, ".."), patternEnd, last) {
				return false
			}
		}
	}
	return true
}

// testPath is the leaf operation: for a non-final segment it recurses,
// for a final segment it resolves the candidate against the namespace.
// Absence of a match is not a failure - the candidate is discarded.
func (m *matcher[T]) testPath(path string, patternEnd int, last bool) bool {
	if !last {
		return m.doGlob(path, patternEnd, false)
	}

	if m.flags&NoEscape == 0 {
		strip := 0
		if m.stripTwo {
			strip = 2
		}
		path = unescape(path, strip)
	} else if m.stripTwo {
		path = path[2:]
	}

	if entry, ok := m.ns.FindDirectory(path); ok {
		m.logf("matched directory %q\n", path)
		return m.yield(entry)
	}
	if !m.dirOnly {
		if entry, ok := m.ns.FindFile(path); ok {
			m.logf("matched file %q\n", path)
			return m.yield(entry)
		}
	}
	return true
}

func (m *matcher[T]) join(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// lastComponent returns the part of path after the final separator.
func lastComponent(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// unescape undoes backslash escaping in path, skipping the first start
// bytes.
func unescape(path string, start int) string {
	if !strings.ContainsRune(path[start:], '\\') {
		return path[start:]
	}
	var b strings.Builder
	b.Grow(len(path) - start)
	inEscape := false
	for _, c := range path[start:] {
		if inEscape {
			inEscape = false
			b.WriteRune(c)
			continue
		}
		if c == '\\' {
			inEscape = true
			continue
		}
		b.WriteRune(c)
	}
	if inEscape {
		b.WriteByte('\\')
	}
	return b.String()
}
