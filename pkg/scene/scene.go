// Package scene is a minimal in-memory scene graph which generated trees can
// be attached to.
//
// Every node has at most one parent. Children keep the order in which they
// were attached.
package scene

import (
	"github.com/google/uuid"

	treeerrors "github.com/willbeason/flowering-tree/pkg/errors"
	"github.com/willbeason/flowering-tree/pkg/tree"
)

// Group is a container node with no content of its own.
type Group struct {
	ID   string
	Name string
}

// NewGroup returns a Group with a fresh random ID.
func NewGroup(name string) *Group {
	return &Group{ID: uuid.NewString(), Name: name}
}

func (g *Group) NodeID() string { return g.ID }

// Graph records parent/child relations between nodes.
// It is not safe for concurrent use.
type Graph struct {
	nodes    map[string]tree.Node
	parents  map[string]string
	children map[string][]string
}

var _ tree.Attacher = (*Graph)(nil)

func New() *Graph {
	return &Graph{
		nodes:    make(map[string]tree.Node),
		parents:  make(map[string]string),
		children: make(map[string][]string),
	}
}

// Attach adds child under parent. A node may only be attached once, and
// never under itself.
func (g *Graph) Attach(parent, child tree.Node) error {
	if parent == nil || child == nil {
		return treeerrors.New(treeerrors.ErrCodeInvalidInput, "cannot attach a nil node")
	}
	pid, cid := parent.NodeID(), child.NodeID()
	if pid == cid {
		return treeerrors.New(treeerrors.ErrCodeInvalidInput, "cannot attach %s to itself", cid)
	}
	if existing, ok := g.parents[cid]; ok {
		return treeerrors.New(treeerrors.ErrCodeDuplicateAttachment, "%s is already attached to %s", cid, existing)
	}

	if _, ok := g.nodes[pid]; !ok {
		g.nodes[pid] = parent
	}
	g.nodes[cid] = child
	g.parents[cid] = pid
	g.children[pid] = append(g.children[pid], cid)
	return nil
}

// Parent returns the node id is attached to.
func (g *Graph) Parent(id string) (tree.Node, bool) {
	pid, ok := g.parents[id]
	if !ok {
		return nil, false
	}
	return g.nodes[pid], true
}

func (g *Graph) Children(id string) []tree.Node {
	ids := g.children[id]
	if len(ids) == 0 {
		return nil
	}
	out := make([]tree.Node, len(ids))
	for i, cid := range ids {
		out[i] = g.nodes[cid]
	}
	return out
}

// Len returns the number of attached nodes, not counting top-level parents.
func (g *Graph) Len() int {
	return len(g.parents)
}

// Walk visits id's subtree depth-first, parents before children, stopping at
// the first error fn returns.
func (g *Graph) Walk(id string, fn func(n tree.Node, depth int) error) error {
	n, ok := g.nodes[id]
	if !ok {
		return treeerrors.New(treeerrors.ErrCodeInvalidInput, "unknown node %s", id)
	}
	return g.walk(n, 0, fn)
}

func (g *Graph) walk(n tree.Node, depth int, fn func(tree.Node, int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, cid := range g.children[n.NodeID()] {
		if err := g.walk(g.nodes[cid], depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
