package bft

import "io"

// Tree holds an optional root node. The zero value is an empty tree.
//
// A Tree must not be decoded into while another goroutine serializes or
// prints it.
type Tree struct {
	Root *Node
}

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool { return t == nil || t.Root == nil }

// Equal reports whether t and o have the same shape, the same values and the
// same child order.
func (t *Tree) Equal(o *Tree) bool {
	if t.IsEmpty() || o.IsEmpty() {
		return t.IsEmpty() == o.IsEmpty()
	}
	return t.Root.equal(o.Root)
}

// Deserialize replaces the contents of t with the tree read from r.
// On error t is left unchanged.
func (t *Tree) Deserialize(r io.Reader, opts ...DecodeOption) error {
	return NewDecoder(r, opts...).Decode(t)
}

// Serialize writes t to w in canonical form.
func (t *Tree) Serialize(w io.Writer) error {
	return NewEncoder(w).Encode(t)
}

// Print writes an indented, human-readable dump of t to w. Every line is
// prefixed with indent spaces.
func (t *Tree) Print(w io.Writer, indent int, opts ...PrintOption) error {
	p, err := newPrinter(w, indent, opts...)
	if err != nil {
		return err
	}
	return p.print(t)
}
