package bft

// Node is a tree vertex. A node owns its children; the order of Children is
// significant and is preserved by both the decoder and the encoder.
type Node struct {
	Value    Value
	Children []*Node
}

// NewNode returns a node holding v with the given children attached in order.
func NewNode(v Value, children ...*Node) *Node {
	return &Node{Value: v, Children: children}
}

// Add appends a new child holding v and returns it.
func (n *Node) Add(v Value) *Node {
	child := &Node{Value: v}
	n.Children = append(n.Children, child)
	return child
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

func (n *Node) equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if !Equal(n.Value, o.Value) || len(n.Children) != len(o.Children) {
		return false
	}
	for i, c := range n.Children {
		if !c.equal(o.Children[i]) {
			return false
		}
	}
	return true
}
