package tree

import (
	"math"

	treeerrors "github.com/willbeason/flowering-tree/pkg/errors"
	"github.com/willbeason/flowering-tree/pkg/geometry"
)

const (
	// DefaultTopScale is how much shorter a TOP branch is than its parent.
	DefaultTopScale = 0.8

	// DefaultAngle is the deviation of side branches in DefaultShape.
	DefaultAngle = math.Pi / 6
)

// A Shape decides how each child branch is derived from its parent.
type Shape struct {
	// LeftP is the proportion of side growth dedicated to the LEFT branch.
	// The RIGHT branch gets 1.0 - LeftP.
	LeftP float64

	// LeftAngle is the angle at which the LEFT branch turns from its parent.
	// Measured in radians counter-clockwise.
	LeftAngle float64

	// RightAngle is the same as above, but for the RIGHT branch.
	// Measured in radians clockwise.
	RightAngle float64

	// Scale is the side length factor for an evenly split junction.
	// LEFT is scaled by 2*Scale*LeftP and RIGHT by 2*Scale*(1-LeftP).
	Scale float64

	// TopScale is the length factor of the TOP branch, which keeps its
	// parent's direction.
	TopScale float64
}

// DefaultShape returns a symmetric shape with 30 degree side branches.
func DefaultShape() Shape {
	return Symmetric(DefaultAngle, 0.6)
}

func (s Shape) LeftScale() float64 {
	return 2.0 * s.Scale * s.LeftP
}

func (s Shape) RightScale() float64 {
	return 2.0 * s.Scale * (1.0 - s.LeftP)
}

// Validate checks that every child is strictly shorter than its parent, so
// growth always ends, and that side branches do not turn past horizontal.
func (s Shape) Validate() error {
	if !(s.LeftP > 0 && s.LeftP < 1) {
		return treeerrors.New(treeerrors.ErrCodeInvalidShape, "left proportion must be in (0, 1), got %v", s.LeftP)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"left", s.LeftScale()},
		{"right", s.RightScale()},
		{"top", s.TopScale},
	} {
		if !(f.value > 0 && f.value < 1) {
			return treeerrors.New(treeerrors.ErrCodeInvalidShape, "%s length factor must be in (0, 1), got %v", f.name, f.value)
		}
	}
	if s.LeftAngle < 0 || s.LeftAngle > math.Pi/2 {
		return treeerrors.New(treeerrors.ErrCodeInvalidShape, "left angle must be in [0, pi/2], got %v", s.LeftAngle)
	}
	if s.RightAngle < 0 || s.RightAngle > math.Pi/2 {
		return treeerrors.New(treeerrors.ErrCodeInvalidShape, "right angle must be in [0, pi/2], got %v", s.RightAngle)
	}
	return nil
}

// Child derives the branch of the given type grown from parent at depth.
// The returned branch has no ID.
func (s Shape) Child(parent *Branch, parentRef Ref, typ Type, depth int) Branch {
	factor, angle := s.TopScale, parent.Angle
	switch typ {
	case Left:
		factor = s.LeftScale()
		angle += s.LeftAngle
	case Right:
		factor = s.RightScale()
		angle -= s.RightAngle
	}

	length := parent.Length * factor
	return Branch{
		Type:   typ,
		Depth:  depth,
		Parent: parentRef,
		Length: length,
		Width:  parent.Width * factor,
		Angle:  angle,
		Start:  parent.End,
		End:    parent.End.Add(geometry.Polar(length, angle)),
	}
}
