package bft

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	defaultIndentWidth = 4
	emptyMarker        = "<empty>"
)

// printer writes a depth-first dump of a tree:
//
//	p1
//	+---c1
//	|   +---10
//	|   +---11
//	|
//	+---c2
//
// Each group of children is followed by a line holding only the guides of
// the children's level, trailing spaces included.
type printer struct {
	w      io.Writer
	bw     *bufio.Writer
	margin string
	width  int
	colors *Colors

	guide  string // "|   "
	branch string // "+---"
}

func newPrinter(w io.Writer, indent int, opts ...PrintOption) (*printer, error) {
	if indent < 0 {
		return nil, fmt.Errorf("bft: negative indent %d", indent)
	}
	p := &printer{
		w:      w,
		margin: strings.Repeat(" ", indent),
		width:  defaultIndentWidth,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if p.colors == nil {
		p.colors = &Colors{Default: colorDefault}
	}
	p.guide = "|" + strings.Repeat(" ", p.width-1)
	p.branch = "+" + strings.Repeat("-", p.width-1)
	return p, nil
}

func (p *printer) print(t *Tree) error {
	p.bw = bufio.NewWriter(p.w)
	if t.IsEmpty() {
		if p.margin != "" {
			p.bw.WriteString(p.margin)
			p.bw.WriteString(p.colors.Color(EmptyColor, emptyMarker))
			p.bw.WriteByte('\n')
		}
		return p.bw.Flush()
	}
	p.printNode(t.Root, 0)
	return p.bw.Flush()
}

func (p *printer) printNode(n *Node, level int) {
	p.writePrefix(level)
	if level > 0 {
		p.bw.WriteString(p.colors.Color(BranchColor, p.branch))
	}
	p.bw.WriteString(p.colors.Color(valueColor(n.Value), n.Value.String()))
	p.bw.WriteByte('\n')

	for _, c := range n.Children {
		p.printNode(c, level+1)
	}
	if !n.IsLeaf() {
		p.writePrefix(level + 1)
		p.bw.WriteByte('\n')
	}
}

// writePrefix writes the margin and one guide per ancestor level, excluding
// the root's.
func (p *printer) writePrefix(level int) {
	p.bw.WriteString(p.margin)
	if level > 1 {
		p.bw.WriteString(p.colors.Color(BranchColor, strings.Repeat(p.guide, level-1)))
	}
}
