package tree

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	treeerrors "github.com/willbeason/flowering-tree/pkg/errors"
)

// Generator grows a Tree and attaches every part of it to a scene graph.
// A Generator owns its Sampler; do not share one between goroutines.
type Generator struct {
	cfg      Config
	content  Node
	attacher Attacher

	sampler Sampler
	newID   func() string
	logger  *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampler sets the source of flower placement draws.
// By default a RandSampler seeded from the clock is used.
func WithSampler(s Sampler) Option { return func(g *Generator) { g.sampler = s } }

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option { return func(g *Generator) { g.logger = l } }

// WithIDFunc sets how entity IDs are made. By default random UUIDs are used.
func WithIDFunc(f func() string) Option { return func(g *Generator) { g.newID = f } }

// NewGenerator returns a Generator which attaches the root branch to content
// using attacher.
func NewGenerator(cfg Config, content Node, attacher Attacher, opts ...Option) *Generator {
	g := &Generator{
		cfg:      cfg,
		content:  content,
		attacher: attacher,
		sampler:  NewRandSampler(uint64(time.Now().UnixNano())),
		newID:    uuid.NewString,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the whole tree, then attaches it.
//
// Nothing is attached unless the tree was built successfully, so an invalid
// configuration or empty crown leaves the scene graph untouched.
func (g *Generator) Generate() (*Tree, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if g.content == nil || g.attacher == nil {
		return nil, treeerrors.New(treeerrors.ErrCodeInvalidInput, "generator needs a content node and an attacher")
	}
	if g.sampler == nil {
		return nil, treeerrors.New(treeerrors.ErrCodeInvalidInput, "generator needs a sampler")
	}

	t := g.grow()

	t.Leafage = Leafage(t, g.newID)

	flowers, err := ScatterFlowers(t, g.cfg.FlowersNumber, g.sampler, g.newID)
	if err != nil {
		return nil, err
	}
	t.Flowers = flowers

	if err := g.attach(t); err != nil {
		return nil, err
	}

	g.logger.Info("generated tree",
		"depth", t.Depth,
		"branches", t.BranchCount(),
		"crown", len(t.Crown),
		"leaves", len(t.Leafage),
		"flowers", len(t.Flowers))
	return t, nil
}

// grow builds the generations and the crown.
func (g *Generator) grow() *Tree {
	t := newTree(g.cfg.Depth)
	t.Generations[0] = g.identify(g.cfg.Branches(nil, NoParent, 0))

	for i := 1; i < g.cfg.Depth; i++ {
		parents := t.Generations[i-1]
		for j := range parents {
			ref := Ref{Generation: i - 1, Index: j}
			children := g.cfg.Branches(&parents[j], ref, i)
			if len(children) == 0 {
				t.Crown = append(t.Crown, ref)
				continue
			}
			t.Generations[i] = append(t.Generations[i], g.identify(children)...)
		}
		g.logger.Debug("grew generation", "generation", i, "branches", len(t.Generations[i]))
	}

	last := g.cfg.Depth - 1
	for j := range t.Generations[last] {
		t.Crown = append(t.Crown, Ref{Generation: last, Index: j})
	}
	return t
}

func (g *Generator) identify(branches []Branch) []Branch {
	for i := range branches {
		branches[i].ID = g.newID()
	}
	return branches
}

// attach registers the root with the content node and every other entity
// with the branch it grew from.
func (g *Generator) attach(t *Tree) error {
	root := t.Root()
	if err := g.attacher.Attach(g.content, root); err != nil {
		return treeerrors.Wrap(treeerrors.ErrCodeAttachmentFailed, err, "attach root branch %s", root.ID)
	}

	for i := 1; i < len(t.Generations); i++ {
		gen := t.Generations[i]
		for j := range gen {
			if err := g.attachTo(t, gen[j].Parent, &gen[j], "branch"); err != nil {
				return err
			}
		}
	}
	for i := range t.Leafage {
		if err := g.attachTo(t, t.Leafage[i].Branch, &t.Leafage[i], "leaf"); err != nil {
			return err
		}
	}
	for i := range t.Flowers {
		if err := g.attachTo(t, t.Flowers[i].Branch, &t.Flowers[i], "flower"); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) attachTo(t *Tree, parentRef Ref, child Node, kind string) error {
	parent, ok := t.Branch(parentRef)
	if !ok {
		return treeerrors.New(treeerrors.ErrCodeInternal, "%s %s has unknown parent %v", kind, child.NodeID(), parentRef)
	}
	if err := g.attacher.Attach(parent, child); err != nil {
		return treeerrors.Wrap(treeerrors.ErrCodeAttachmentFailed, err, "attach %s %s", kind, child.NodeID())
	}
	return nil
}
