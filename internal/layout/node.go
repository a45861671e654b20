package layout

// MeasureFunc reports the intrinsic border-box size of a leaf. Each axis of
// constraints is either a definite length the parent has already decided, or
// Undef when the leaf is free to pick. It may be called several times per solve
// and must not have side effects.
type MeasureFunc func(constraints Size) (Size, error)

// Node is one box in the layout tree.
type Node struct {
	Style    Style
	Children []*Node

	// Measure is consulted only while the node has no children.
	Measure MeasureFunc

	// Layout is written by Calculate.
	Layout Layout
}

// NewNode creates a container node with the given children.
func NewNode(style Style, children ...*Node) *Node {
	return &Node{Style: style, Children: children}
}

// NewLeaf creates a node whose size comes from measure when style leaves it open.
func NewLeaf(style Style, measure MeasureFunc) *Node {
	return &Node{Style: style, Measure: measure}
}

// AddChild appends children in order.
func (n *Node) AddChild(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}

// hide zeroes the layout of a display:none subtree.
func hide(n *Node) {
	n.Layout = Layout{}
	for _, child := range n.Children {
		hide(child)
	}
}
