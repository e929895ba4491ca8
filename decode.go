package bft

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/KimNorgaard/go-bft/internal/lexer"
	"github.com/KimNorgaard/go-bft/internal/token"
)

// Decoder reads a tree from an input stream.
type Decoder struct {
	r    io.Reader
	opts []DecodeOption

	maxLineSize int // 0 means unlimited
	log         *slog.Logger
}

// state is the role of the next input line.
type state int

const (
	awaitingLabel state = iota
	awaitingChildren
)

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the decoding process,
// such as capping the line length with the MaxLineSize option.
func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and replaces the contents of t with the tree
// it describes. Input without any line leaves t empty.
//
// Lines alternate between a label line, naming a node, and a children line,
// listing that node's children separated by spaces. The first label line
// defines the root. Every later label line must match a node that is still
// waiting for its children, and such nodes are consumed in breadth-first
// order: nodes skipped over while looking for a match can no longer receive
// children. A label that matches nothing yields a *MismatchError.
//
// Lines end at '\n'. A '\r' immediately before it, or at the very end of the
// input, is dropped from every line, children lines included, so CRLF input
// decodes like LF input. Lines are unbounded unless MaxLineSize is given.
//
// On any error t keeps the tree it held before the call.
func (d *Decoder) Decode(t *Tree) error {
	if t == nil {
		return fmt.Errorf("bft: Decode(nil *Tree)")
	}
	if d.r == nil {
		return fmt.Errorf("bft: Decode(nil reader)")
	}

	d.maxLineSize = 0
	d.log = slog.New(slog.DiscardHandler)
	for _, opt := range d.opts {
		if err := opt(d); err != nil {
			return err
		}
	}

	root, err := d.decode()
	if err != nil {
		return err
	}
	t.Root = root
	return nil
}

func (d *Decoder) decode() (*Node, error) {
	br := bufio.NewReader(d.r)
	trace := d.log.Enabled(context.Background(), slog.LevelDebug)

	var (
		root  *Node
		queue []*Node // nodes awaiting a children line; queue[0] is the current parent
		st    = awaitingLabel
		line  int
	)
	for {
		text, err := d.readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bft: reading line %d: %w", line+1, err)
		}
		line++

		switch st {
		case awaitingLabel:
			v := Classify(lexer.Trim(text))
			if root == nil {
				root = &Node{Value: v}
				queue = append(queue, root)
				d.log.Debug("bft: root", "line", line, "value", v)
			} else {
				i := slices.IndexFunc(queue, func(n *Node) bool { return Equal(n.Value, v) })
				if i < 0 {
					return nil, &MismatchError{Line: line, Value: v, Expected: labels(queue)}
				}
				d.log.Debug("bft: label", "line", line, "value", v, "drained", i)
				queue = queue[i:]
			}
			st = awaitingChildren

		case awaitingChildren:
			parent := queue[0]
			l := lexer.New(text)
			for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
				child := parent.Add(Classify(tok.Literal))
				queue = append(queue, child)
				if trace {
					d.log.Debug("bft: child", "line", line, "column", tok.Column, "value", child.Value)
				}
			}
			d.log.Debug("bft: children", "line", line, "parent", parent.Value, "count", len(parent.Children))
			queue = queue[1:]
			st = awaitingLabel
		}
	}
	if st == awaitingChildren {
		d.log.Debug("bft: input ended before children line", "line", line, "parent", queue[0].Value)
	}
	return root, nil
}

// readLine returns the next line without its terminator. It returns io.EOF
// only once no bytes are left.
func (d *Decoder) readLine(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		chunk, err := br.ReadSlice('\n')
		buf = append(buf, chunk...)
		if d.maxLineSize > 0 && len(buf)-countSuffix(buf, '\n') > d.maxLineSize {
			return "", ErrLineTooLong
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && len(buf) > 0 {
			break
		}
		if err != nil {
			return "", err
		}
		break
	}
	buf = buf[:len(buf)-countSuffix(buf, '\n')]
	buf = buf[:len(buf)-countSuffix(buf, '\r')]
	return string(buf), nil
}

// countSuffix returns 1 if b ends with c, 0 otherwise.
func countSuffix(b []byte, c byte) int {
	if len(b) > 0 && b[len(b)-1] == c {
		return 1
	}
	return 0
}

func labels(queue []*Node) []Value {
	out := make([]Value, len(queue))
	for i, n := range queue {
		out[i] = n.Value
	}
	return out
}
