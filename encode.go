package bft

import (
	"bufio"
	"io"
	"slices"
)

// Encoder writes trees to an output stream in canonical form.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes t breadth-first. Each node that has children produces two
// lines: its own value, then its children's values separated by single
// spaces. The root always produces both lines, even when it is a leaf.
// Leaves other than the root only appear on their parent's children line,
// with one exception that departs from the plain breadth-first form: a leaf
// that shares its value with a later labeled node, and would be matched by
// the decoder in its place, is first written as a label followed by an
// empty children line, which moves the decoder past it. Trees without such
// duplicates are written in the plain form. An empty tree produces no output.
//
// Values are written as rendered by their String method. Text values
// containing spaces or line breaks, or that look like numbers, are written
// verbatim and will not decode back to the same tree.
func (e *Encoder) Encode(t *Tree) error {
	if t.IsEmpty() {
		return nil
	}

	bw := bufio.NewWriter(e.w)
	// queue mirrors the decoder's: every node, leaves included, in the
	// order its children line would be expected.
	queue := []*Node{t.Root}
	for len(queue) > 0 {
		i := 0
		if queue[0] != t.Root {
			i = slices.IndexFunc(queue, func(n *Node) bool { return !n.IsLeaf() })
			if i < 0 {
				break
			}
		}
		n := queue[i]

		for {
			j := slices.IndexFunc(queue[:i], func(m *Node) bool { return Equal(m.Value, n.Value) })
			if j < 0 {
				break
			}
			bw.WriteString(queue[j].Value.String())
			bw.WriteString("\n\n")
			queue = queue[j+1:]
			i -= j + 1
		}

		bw.WriteString(n.Value.String())
		bw.WriteByte('\n')
		for k, c := range n.Children {
			if k > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(c.Value.String())
		}
		bw.WriteByte('\n')
		queue = append(queue[i+1:], n.Children...)
	}
	return bw.Flush()
}
