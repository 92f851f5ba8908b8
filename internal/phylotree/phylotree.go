// Package phylotree implements the generic N-ary rooted tree shared by the
// synthesized phylogeny (internal/synth) and mirrored by the Sankoff state
// table (internal/smtree). Nodes are reached through opaque handles scoped
// to the owning tree, the way CAMUS's graphs.TreeData indexes nodes by
// integer id rather than exposing pointers across package boundaries.
package phylotree

import "github.com/fredericlemoine/bitset"

// NodeID is an opaque handle to a node, valid only for the Tree that
// returned it.
type NodeID int

const noParent NodeID = -1

type node[T any] struct {
	parent   NodeID
	children []NodeID
	payload  T
	hasValue bool
}

// Tree is a generic N-ary rooted tree over payload type T. Create one with
// New (the zero value is not an empty tree: its root id is 0, not the
// empty-tree marker); call SetRoot before appending children.
type Tree[T any] struct {
	nodes   []node[T]
	root    NodeID
	leaves  []NodeID // cached in leaves-in-order; invalidated by mutation
	leafset []*bitset.BitSet
}

const noRoot NodeID = -1

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: noRoot}
}

// Clear resets the tree to empty.
func (t *Tree[T]) Clear() {
	t.nodes = nil
	t.root = noRoot
	t.leaves = nil
	t.leafset = nil
}

// SetRoot creates (or replaces) the root node and returns its id. Calling
// SetRoot on a non-empty tree discards all existing nodes.
func (t *Tree[T]) SetRoot() NodeID {
	t.nodes = []node[T]{{parent: noParent}}
	t.root = 0
	t.leaves = nil
	t.leafset = nil
	return t.root
}

// Root returns the tree's root id. Panics if the tree is empty.
func (t *Tree[T]) Root() NodeID {
	if t.root == noRoot {
		panic("phylotree: tree has no root")
	}
	return t.root
}

// AppendChild appends a new child under parent and returns its id. Children
// are ordered: the first call for a given parent produces its first child.
func (t *Tree[T]) AppendChild(parent NodeID) NodeID {
	t.checkID(parent)
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[T]{parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	t.leaves = nil
	t.leafset = nil
	return id
}

// SetPayload attaches a payload value to node id.
func (t *Tree[T]) SetPayload(id NodeID, payload T) {
	t.checkID(id)
	t.nodes[id].payload = payload
	t.nodes[id].hasValue = true
}

// Payload returns the payload attached to node id, and whether one was set.
func (t *Tree[T]) Payload(id NodeID) (T, bool) {
	t.checkID(id)
	n := t.nodes[id]
	return n.payload, n.hasValue
}

// Children returns the ordered child ids of node id. A leaf has none.
func (t *Tree[T]) Children(id NodeID) []NodeID {
	t.checkID(id)
	return t.nodes[id].children
}

// Parent returns id's parent and true, or the zero value and false at the
// root.
func (t *Tree[T]) Parent(id NodeID) (NodeID, bool) {
	t.checkID(id)
	p := t.nodes[id].parent
	if p == noParent {
		return 0, false
	}
	return p, true
}

// IsLeaf reports whether id has no children.
func (t *Tree[T]) IsLeaf(id NodeID) bool {
	t.checkID(id)
	return len(t.nodes[id].children) == 0
}

// NumNodes returns the total number of nodes in the tree (internal + leaf).
func (t *Tree[T]) NumNodes() int {
	return len(t.nodes)
}

// Leaves returns every leaf id in a deterministic, order-preserving
// traversal: within any subtree, leaves under the first child precede
// leaves under later children.
func (t *Tree[T]) Leaves() []NodeID {
	if t.leaves != nil {
		return t.leaves
	}
	if t.root == noRoot {
		return nil
	}
	var leaves []NodeID
	var walk func(id NodeID)
	walk = func(id NodeID) {
		children := t.nodes[id].children
		if len(children) == 0 {
			leaves = append(leaves, id)
			return
		}
		for _, c := range children {
			walk(c)
		}
	}
	walk(t.root)
	t.leaves = leaves
	return leaves
}

func (t *Tree[T]) checkID(id NodeID) {
	if int(id) < 0 || int(id) >= len(t.nodes) {
		panic("phylotree: invalid node id")
	}
}

// LeafSet returns the bitset of leaf-rank positions (indices into Leaves())
// reachable below id. Computed lazily and cached until the next mutation,
// mirroring CAMUS's TreeData.leafsets.
func (t *Tree[T]) LeafSet(id NodeID) *bitset.BitSet {
	t.checkID(id)
	if t.leafset == nil {
		t.computeLeafsets()
	}
	return t.leafset[id]
}

func (t *Tree[T]) computeLeafsets() {
	leaves := t.Leaves()
	rank := make(map[NodeID]uint, len(leaves))
	for i, l := range leaves {
		rank[l] = uint(i)
	}
	sets := make([]*bitset.BitSet, len(t.nodes))
	var fill func(id NodeID) *bitset.BitSet
	fill = func(id NodeID) *bitset.BitSet {
		if sets[id] != nil {
			return sets[id]
		}
		children := t.nodes[id].children
		bs := bitset.New(uint(len(leaves)))
		if len(children) == 0 {
			bs.Set(rank[id])
		} else {
			for _, c := range children {
				bs.InPlaceUnion(fill(c))
			}
		}
		sets[id] = bs
		return bs
	}
	fill(t.root)
	t.leafset = sets
}
