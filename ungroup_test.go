package nsglob

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUngroup(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"{a,b,c}", []string{"a", "b", "c"}},
		{"x{a,b}y", []string{"xay", "xby"}},

		// Expansion is a cross product, in order.
		{"a{1,2}b{x,y}", []string{"a1bx", "a1by", "a2bx", "a2by"}},

		// Nesting.
		{"{a,{b,c}d}", []string{"a", "bd", "cd"}},
		{"x{a,b{c,d}}z", []string{"xaz", "xbcz", "xbdz"}},

		// Empty branches are real alternatives.
		{"{,a}b", []string{"b", "ab"}},
		{"a{,}", []string{"a", "a"}},

		// A comma outside any group is literal text.
		{"a,b", []string{"a,b"}},

		// Wildcards pass through untouched.
		{"*.{txt,md}", []string{"*.txt", "*.md"}},
	}

	for _, test := range tests {
		got := ungroup(test.pattern, true)
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("ungroup(%q, true) diff (-got +want):\n%s", test.pattern, diff)
		}
	}
}

func TestUngroupUnbalanced(t *testing.T) {
	// Unbalanced braces in either direction yield zero alternatives.
	tests := []string{
		"a{b",
		"a}b",
		"{a,b",
		"a,b}",
		"{{a}",
		"}",
		"{",
	}

	for _, pattern := range tests {
		if got := ungroup(pattern, true); got != nil {
			t.Errorf("ungroup(%q, true) = %q, want nil", pattern, got)
		}
	}
}

func TestUngroupEscapes(t *testing.T) {
	tests := []struct {
		pattern  string
		noEscape bool
		want     []string
	}{
		// An escaped brace is no group, and the escape is preserved for
		// the matcher to deal with.
		{`a\{b,c}`, false, nil},
		{`a\{b\}`, false, []string{`a\{b\}`}},
		{`{a\,b,c}`, false, []string{`a\,b`, "c"}},

		// With NoEscape, the backslash is just another character.
		{`a\{b,c\}`, true, []string{`a\b`, `a\c\`}},
	}

	for _, test := range tests {
		got := ungroup(test.pattern, test.noEscape)
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("ungroup(%q, %v) diff (-got +want):\n%s", test.pattern, test.noEscape, diff)
		}
	}
}
