package tree

import (
	"fmt"

	"github.com/willbeason/flowering-tree/pkg/geometry"
	"github.com/willbeason/flowering-tree/pkg/transforms"
)

// MinBranchLength is the length below which a branch stops growing.
const MinBranchLength = 10.0

// Type is the direction a branch grows relative to its parent.
type Type int

const (
	Root Type = iota
	Left
	Right
	Top
)

var typeNames = [...]string{
	Root:  "root",
	Left:  "left",
	Right: "right",
	Top:   "top",
}

func (t Type) String() string {
	if t < Root || t > Top {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < Root || t > Top {
		return nil, fmt.Errorf("unknown branch type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	for i, name := range typeNames {
		if name == string(text) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown branch type %q", text)
}

// Ref locates a branch in a Tree's generation table.
// Refs are handles, not owners: the Tree holds the branch itself.
type Ref struct {
	Generation int
	Index      int
}

// NoParent is the parent Ref of the root branch.
var NoParent = Ref{Generation: -1, Index: -1}

func (r Ref) IsValid() bool {
	return r.Generation >= 0 && r.Index >= 0
}

func (r Ref) String() string {
	return fmt.Sprintf("%d/%d", r.Generation, r.Index)
}

// A Branch is one segment of the tree.
type Branch struct {
	ID     string
	Type   Type
	Depth  int
	Parent Ref

	Length float64
	Width  float64

	// Angle is measured in radians counter-clockwise from vertical.
	Angle float64

	Start, End geometry.XY
}

func (b *Branch) NodeID() string { return b.ID }

// Terminal reports whether the branch is too short to have children.
func (b *Branch) Terminal() bool {
	return b.Length < MinBranchLength
}

// Point returns the point at parameter t along the branch, where 0 is the
// start and 1 is the tip.
func (b *Branch) Point(t float64) geometry.XY {
	return transforms.Apply(transforms.Frame(b.Start, b.Length, b.Angle), t)
}

// A Leaf decorates the tip of a crown branch.
type Leaf struct {
	ID       string
	Branch   Ref
	Position geometry.XY
}

func (l *Leaf) NodeID() string { return l.ID }

// A Flower decorates the tip of a crown branch. A branch may carry any
// number of flowers.
type Flower struct {
	ID       string
	Branch   Ref
	Position geometry.XY
}

func (f *Flower) NodeID() string { return f.ID }
