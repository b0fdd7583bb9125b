package nsglob

import "strings"

// ungroup expands {a,b,c} groups (with arbitrary nesting) into the cross
// product of brace-free pattern alternatives. Unbalanced braces make the
// whole pattern match nothing, reported here as zero alternatives.
func ungroup(pattern string, noEscape bool) []string {
	root := &seqNode{}
	cur := root

	// Open choice nodes, innermost last. The owning sequence is kept so
	// that closing a choice restores the right insertion point.
	type openChoice struct {
		choice *choiceNode
		owner  *seqNode
	}
	var stack []openChoice

	inEscape := false
	for _, c := range pattern {
		if inEscape {
			inEscape = false
			// Escapes are preserved verbatim; the segment matcher and
			// the final unescape step handle them later.
			cur.text('\\')
			cur.text(c)
			continue
		}
		if c == '\\' && !noEscape {
			inEscape = true
			continue
		}

		switch c {
		case '{':
			ch := &choiceNode{}
			cur.children = append(cur.children, ch)
			stack = append(stack, openChoice{choice: ch, owner: cur})
			cur = ch.branch()

		case ',':
			if len(stack) == 0 {
				// Only significant inside a group.
				cur.text(c)
				continue
			}
			cur = stack[len(stack)-1].choice.branch()

		case '}':
			if len(stack) == 0 {
				// Unbalanced } - the whole pattern matches nothing.
				return nil
			}
			cur = stack[len(stack)-1].owner
			stack = stack[:len(stack)-1]

		default:
			cur.text(c)
		}
	}
	if inEscape {
		cur.text('\\')
	}
	if len(stack) != 0 {
		// Unbalanced { - the whole pattern matches nothing.
		return nil
	}
	return root.flatten()
}

// The parse tree for brace expansion: a sequence node holds literal text
// runs and choice nodes in order; a choice node holds the comma-separated
// branches, each a sequence of its own.
type groupNode interface {
	flatten() []string
}

type textNode struct {
	b strings.Builder
}

func (t *textNode) flatten() []string {
	return []string{t.b.String()}
}

type seqNode struct {
	children []groupNode
}

// text appends a literal character to the current text run, starting a
// new run if the last child is not one.
func (s *seqNode) text(c rune) {
	var t *textNode
	if n := len(s.children); n > 0 {
		t, _ = s.children[n-1].(*textNode)
	}
	if t == nil {
		t = &textNode{}
		s.children = append(s.children, t)
	}
	t.b.WriteRune(c)
}

// flatten computes the ordered Cartesian product of the children.
func (s *seqNode) flatten() []string {
	acc := []string{""}
	for _, child := range s.children {
		parts := child.flatten()
		next := make([]string, 0, len(acc)*len(parts))
		for _, prefix := range acc {
			for _, part := range parts {
				next = append(next, prefix+part)
			}
		}
		acc = next
	}
	return acc
}

type choiceNode struct {
	branches []*seqNode
}

// branch starts a new alternative within the choice.
func (c *choiceNode) branch() *seqNode {
	s := &seqNode{}
	c.branches = append(c.branches, s)
	return s
}

// flatten concatenates the branches' alternatives in order.
func (c *choiceNode) flatten() []string {
	var out []string
	for _, b := range c.branches {
		out = append(out, b.flatten()...)
	}
	return out
}
