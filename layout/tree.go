package layout

import "github.com/tsawler/blockify/model"

// NodeID identifies a node of a Tree. IDs are assigned in pre-order starting
// at 0 for the root.
type NodeID int

// NoNode is the ID of a missing parent or child
const NoNode NodeID = -1

// NodeState is the terminal state of a node after segmentation
type NodeState int

const (
	// Leaf nodes are terminal blocks
	Leaf NodeState = iota
	// Split nodes own exactly two children
	Split
)

// String returns a string representation of the state
func (s NodeState) String() string {
	if s == Split {
		return "split"
	}
	return "leaf"
}

// Node is an area of the segmentation tree
type Node struct {
	ID       NodeID
	Parent   NodeID
	Children [2]NodeID

	// Area is the region of the node
	Area *Area

	// Axis is the orientation of the accepted lane, NoAxis for leaves
	Axis Axis

	// Lane is the accepted lane, the zero Rect for leaves
	Lane model.Rect

	// Cut is the coordinate the node was split at
	Cut float64

	// Depth is 0 for the root
	Depth int

	// Page is the 1-indexed number of the page the node belongs to
	Page int
}

// State returns Split when the node has children and Leaf otherwise
func (n *Node) State() NodeState {
	if n.Children[0] != NoNode {
		return Split
	}
	return Leaf
}

// IsLeaf reports whether the node is a terminal block
func (n *Node) IsLeaf() bool { return n.State() == Leaf }

// Rect returns the node's rectangle
func (n *Node) Rect() model.Rect { return n.Area.Rect() }

// Tree is the segmentation tree of an area, stored as an arena of nodes.
type Tree struct {
	nodes []Node
}

// Len returns the number of nodes
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root node
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return &t.nodes[0]
}

// Node returns the node with the given ID, or nil if it does not exist
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Children returns the two children of a split node, or nil for a leaf
func (t *Tree) Children(id NodeID) []*Node {
	n := t.Node(id)
	if n == nil || n.IsLeaf() {
		return nil
	}
	return []*Node{t.Node(n.Children[0]), t.Node(n.Children[1])}
}

// Leaves returns the terminal blocks in tree order (left before right, upper
// before lower).
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	t.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// Blocks returns the areas of the leaves in tree order
func (t *Tree) Blocks() []*Area {
	leaves := t.Leaves()
	blocks := make([]*Area, len(leaves))
	for i, n := range leaves {
		blocks[i] = n.Area
	}
	return blocks
}

// Depth returns the depth of the deepest node, 0 for a single-node tree
func (t *Tree) Depth() int {
	depth := 0
	for i := range t.nodes {
		if t.nodes[i].Depth > depth {
			depth = t.nodes[i].Depth
		}
	}
	return depth
}

// Walk visits nodes in pre-order until fn returns false. Because IDs are
// assigned in pre-order this is a scan of the arena.
func (t *Tree) Walk(fn func(*Node) bool) {
	for i := range t.nodes {
		if !fn(&t.nodes[i]) {
			return
		}
	}
}

// add appends a node and returns its ID
func (t *Tree) add(n Node) NodeID {
	n.ID = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return n.ID
}
