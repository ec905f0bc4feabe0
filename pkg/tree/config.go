package tree

import (
	"math"

	treeerrors "github.com/willbeason/flowering-tree/pkg/errors"
	"github.com/willbeason/flowering-tree/pkg/geometry"
)

const (
	DefaultFlowersNumber = 100
	DefaultRootLength    = 120.0
	DefaultRootWidth     = 12.0

	// MaxDepth bounds Config.Depth. The default shape stops growing by
	// depth 14; deeper limits mostly allocate empty generations.
	MaxDepth = 64
)

// Config describes the tree to generate.
type Config struct {
	// Depth is the number of generations, counting the root's.
	Depth int

	// FlowersNumber is how many flowers are scattered over the crown.
	FlowersNumber int

	RootLength float64
	RootWidth  float64

	Shape Shape
}

// DefaultConfig returns the configuration for a tree of the given depth with
// default flowers and geometry.
func DefaultConfig(depth int) Config {
	return Config{
		Depth:         depth,
		FlowersNumber: DefaultFlowersNumber,
		RootLength:    DefaultRootLength,
		RootWidth:     DefaultRootWidth,
		Shape:         DefaultShape(),
	}
}

func (c Config) Validate() error {
	if c.Depth < 1 || c.Depth > MaxDepth {
		return treeerrors.New(treeerrors.ErrCodeInvalidConfiguration, "depth must be in [1, %d], got %d", MaxDepth, c.Depth)
	}
	if c.FlowersNumber < 0 {
		return treeerrors.New(treeerrors.ErrCodeInvalidConfiguration, "flowers number must not be negative, got %d", c.FlowersNumber)
	}
	if !(c.RootLength > 0) || math.IsInf(c.RootLength, 1) {
		return treeerrors.New(treeerrors.ErrCodeInvalidConfiguration, "root length must be positive and finite, got %v", c.RootLength)
	}
	if !(c.RootWidth > 0) || math.IsInf(c.RootWidth, 1) {
		return treeerrors.New(treeerrors.ErrCodeInvalidConfiguration, "root width must be positive and finite, got %v", c.RootWidth)
	}
	if err := c.Shape.Validate(); err != nil {
		return treeerrors.Wrap(treeerrors.ErrCodeInvalidConfiguration, err, "invalid shape")
	}
	return nil
}

// Branches returns the branches grown from parent at depth.
//
// A nil parent yields the single unparented root, built from the configured
// root length and width. A terminal parent yields nothing. Any other parent
// yields its LEFT, RIGHT and TOP children, in that order.
func (c Config) Branches(parent *Branch, parentRef Ref, depth int) []Branch {
	if parent == nil {
		return []Branch{c.root()}
	}
	if parent.Terminal() {
		return nil
	}
	return []Branch{
		c.Shape.Child(parent, parentRef, Left, depth),
		c.Shape.Child(parent, parentRef, Right, depth),
		c.Shape.Child(parent, parentRef, Top, depth),
	}
}

func (c Config) root() Branch {
	return Branch{
		Type:   Root,
		Parent: NoParent,
		Length: c.RootLength,
		Width:  c.RootWidth,
		End:    geometry.Polar(c.RootLength, 0),
	}
}
