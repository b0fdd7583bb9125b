package nsglob

import (
	"regexp"
	"strings"
)

// Fnmatch reports whether a single path segment pattern matches name.
// The whole name must be consumed - this is never a prefix match. An
// empty pattern matches only the empty name. Patterns that fail to
// compile (an unterminated character class, for example) match nothing.
func Fnmatch(pattern, name string, flags Flags) bool {
	if pattern == "" {
		return name == ""
	}
	s := compileSegment(pattern, flags)
	if s == nil {
		return false
	}
	return s.match(name)
}

// segment is a compiled single-segment matcher. It is built once per
// pattern segment encountered during traversal and discarded afterwards.
type segment struct {
	re       *regexp.Regexp
	dotFirst bool // the compiled form opens with an explicit dot
	dotMatch bool
}

// compileSegment compiles one glob segment. A nil result means the
// segment cannot match anything.
func compileSegment(pattern string, flags Flags) *segment {
	body := toRegex(pattern, flags&PathName != 0, flags&NoEscape != 0)
	if body == "" {
		return nil
	}

	// The dot rule is structural: toRegex emits every literal as a
	// one-character class, so a pattern able to match a leading dot
	// always compiles to `\A[.` followed by the rest.
	dotFirst := len(body) >= 4 && body[2] == '[' && body[3] == '.'

	expr := "(?s)" + body
	if flags&IgnoreCase != 0 {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		// e.g. an inverted range inside a class. Matches nothing.
		return nil
	}
	return &segment{
		re:       re,
		dotFirst: dotFirst,
		dotMatch: flags&DotMatch != 0,
	}
}

func (s *segment) match(name string) bool {
	if !s.dotMatch && strings.HasPrefix(name, ".") && !s.dotFirst {
		// Wildcards alone never match a leading dot.
		return false
	}
	loc := s.re.FindStringIndex(name)
	return loc != nil && loc[1] == len(name)
}

// toRegex converts one glob segment into an anchored regular expression
// body. It returns "" if the segment cannot compile (unterminated
// character class), in which case the segment matches nothing.
func toRegex(pattern string, pathName, noEscape bool) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)
	b.WriteString(`\A`)

	inEscape := false
	var class *charClass
	for _, c := range pattern {
		if inEscape {
			inEscape = false
			if class != nil {
				class.add(c)
			} else {
				appendLiteral(&b, c)
			}
			continue
		}
		if c == '\\' && !noEscape {
			inEscape = true
			continue
		}
		if class != nil {
			if c == ']' {
				set, ok := class.build()
				if !ok {
					return ""
				}
				b.WriteString(set)
				class = nil
			} else {
				class.add(c)
			}
			continue
		}
		switch c {
		case '*':
			if pathName {
				b.WriteString(`[^/]*`)
			} else {
				b.WriteString(`.*`)
			}
		case '?':
			b.WriteString(`.`)
		case '[':
			class = new(charClass)
		default:
			appendLiteral(&b, c)
		}
	}
	if class != nil {
		// Unterminated class - the whole segment fails to compile.
		return ""
	}
	return b.String()
}

// appendLiteral emits a literal character as a one-character class,
// which neutralises any meaning it has to the regexp engine.
func appendLiteral(b *strings.Builder, c rune) {
	b.WriteByte('[')
	if c == '^' || c == ']' || c == '\\' {
		b.WriteByte('\\')
	}
	b.WriteRune(c)
	b.WriteByte(']')
}

// charClass accumulates the body of a [...] expression.
type charClass struct {
	chars strings.Builder
}

// add appends one literal character, escaping the characters that are
// metacharacters inside a regexp class.
func (c *charClass) add(r rune) {
	if r == ']' || r == '\\' {
		c.chars.WriteByte('\\')
	}
	c.chars.WriteRune(r)
}

// build produces the class expression. An empty body can match nothing.
// A body that is exactly ^ means a literal caret, not negation.
func (c *charClass) build() (string, bool) {
	body := c.chars.String()
	if body == "" {
		return "", false
	}
	if body == "^" {
		body = `\^`
	}
	return "[" + body + "]", true
}
