package tree

// Node is anything that can take part in the scene graph the tree is
// attached to.
type Node interface {
	NodeID() string
}

// An Attacher adds child as a visual child of parent. It is called once per
// (parent, child) pair.
type Attacher interface {
	Attach(parent, child Node) error
}

// A Tree is the complete result of one generation pass.
//
// Generations[0] holds only the root. Generations[i] holds the branches grown
// from Generations[i-1], in parent order and LEFT, RIGHT, TOP within a parent.
// Crown lists the branches which ended growth: first those which stopped for
// being too short, in the order they were found, then the whole final
// generation.
type Tree struct {
	Depth       int
	Generations [][]Branch
	Crown       []Ref
	Leafage     []Leaf
	Flowers     []Flower
}

func newTree(depth int) *Tree {
	return &Tree{
		Depth:       depth,
		Generations: make([][]Branch, depth),
	}
}

// Root returns the root branch, or nil for an empty Tree.
func (t *Tree) Root() *Branch {
	if len(t.Generations) == 0 || len(t.Generations[0]) == 0 {
		return nil
	}
	return &t.Generations[0][0]
}

// Branch resolves r. The returned pointer must not be used to modify the Tree.
func (t *Tree) Branch(r Ref) (*Branch, bool) {
	if !r.IsValid() || r.Generation >= len(t.Generations) {
		return nil, false
	}
	gen := t.Generations[r.Generation]
	if r.Index >= len(gen) {
		return nil, false
	}
	return &gen[r.Index], true
}

// Children returns the branches grown directly from r.
func (t *Tree) Children(r Ref) []Ref {
	next := r.Generation + 1
	if !r.IsValid() || next >= len(t.Generations) {
		return nil
	}

	var children []Ref
	for i, b := range t.Generations[next] {
		if b.Parent == r {
			children = append(children, Ref{Generation: next, Index: i})
		}
	}
	return children
}

func (t *Tree) BranchCount() int {
	n := 0
	for _, gen := range t.Generations {
		n += len(gen)
	}
	return n
}

func (t *Tree) IsCrown(r Ref) bool {
	for _, c := range t.Crown {
		if c == r {
			return true
		}
	}
	return false
}

// FlowerCounts returns how many flowers each crown branch carries.
// Crown branches without flowers are present with a count of zero.
func (t *Tree) FlowerCounts() map[Ref]int {
	counts := make(map[Ref]int, len(t.Crown))
	for _, c := range t.Crown {
		counts[c] = 0
	}
	for _, f := range t.Flowers {
		counts[f.Branch]++
	}
	return counts
}
