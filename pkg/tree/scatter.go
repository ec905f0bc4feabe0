package tree

import (
	"github.com/google/uuid"

	treeerrors "github.com/willbeason/flowering-tree/pkg/errors"
)

// Leafage puts one leaf on the tip of every crown branch, in crown order.
func Leafage(t *Tree, newID func() string) []Leaf {
	if newID == nil {
		newID = uuid.NewString
	}

	leafage := make([]Leaf, 0, len(t.Crown))
	for _, ref := range t.Crown {
		b, ok := t.Branch(ref)
		if !ok {
			continue
		}
		leafage = append(leafage, Leaf{
			ID:       newID(),
			Branch:   ref,
			Position: b.Point(1),
		})
	}
	return leafage
}

// ScatterFlowers places n flowers on crown branches. Each flower's branch is
// an independent uniform draw over the crown, so a branch may receive any
// number of flowers.
func ScatterFlowers(t *Tree, n int, s Sampler, newID func() string) ([]Flower, error) {
	if n < 0 {
		return nil, treeerrors.New(treeerrors.ErrCodeInvalidInput, "flowers number must not be negative, got %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if len(t.Crown) == 0 {
		return nil, treeerrors.New(treeerrors.ErrCodeEmptyCrown, "cannot place %d flowers on an empty crown", n)
	}
	if newID == nil {
		newID = uuid.NewString
	}

	flowers := make([]Flower, 0, n)
	for i := 0; i < n; i++ {
		idx := s.Index(0, len(t.Crown)-1)
		if idx < 0 || idx >= len(t.Crown) {
			return nil, treeerrors.New(treeerrors.ErrCodeInternal, "sampler returned %d outside [0, %d]", idx, len(t.Crown)-1)
		}

		ref := t.Crown[idx]
		b, ok := t.Branch(ref)
		if !ok {
			return nil, treeerrors.New(treeerrors.ErrCodeInternal, "crown branch %v not in tree", ref)
		}
		flowers = append(flowers, Flower{
			ID:       newID(),
			Branch:   ref,
			Position: b.Point(1),
		})
	}
	return flowers, nil
}
