// Package export encodes generated trees for an external presentation layer.
package export

import (
	"encoding/json"

	"github.com/willbeason/flowering-tree/pkg/geometry"
	"github.com/willbeason/flowering-tree/pkg/tree"
)

// JSONOption configures JSON encoding via [JSON].
type JSONOption func(*jsonEncoder)

type jsonEncoder struct {
	seed    uint64
	hasSeed bool
	indent  bool
	scale   float64
	offset  geometry.XY
}

// WithSeed records the flower placement seed so the tree can be reproduced.
func WithSeed(seed uint64) JSONOption {
	return func(e *jsonEncoder) { e.seed = seed; e.hasSeed = true }
}

// WithIndent pretty-prints the output.
func WithIndent() JSONOption { return func(e *jsonEncoder) { e.indent = true } }

// WithViewport maps tree coordinates into the viewer's space: positions are
// scaled and then moved by offset.
func WithViewport(scale float64, offset geometry.XY) JSONOption {
	return func(e *jsonEncoder) { e.scale = scale; e.offset = offset }
}

type jsonOutput struct {
	Depth       int            `json:"depth"`
	Seed        *uint64        `json:"seed,omitempty"`
	Summary     jsonSummary    `json:"summary"`
	Generations [][]jsonBranch `json:"generations"`
	Crown       []string       `json:"crown"`
	Leafage     []jsonLeaf     `json:"leafage"`
	Flowers     []jsonLeaf     `json:"flowers"`
}

type jsonSummary struct {
	Branches     int   `json:"branches"`
	Crown        int   `json:"crown"`
	Leaves       int   `json:"leaves"`
	Flowers      int   `json:"flowers"`
	Generations  []int `json:"generation_sizes"`
	MaxOnBranch  int   `json:"max_flowers_on_branch"`
	BareBranches int   `json:"crown_without_flowers"`
}

type jsonBranch struct {
	ID     string    `json:"id"`
	Type   tree.Type `json:"type"`
	Parent string    `json:"parent,omitempty"`
	Length float64   `json:"length"`
	Width  float64   `json:"width"`
	Angle  float64   `json:"angle"`
	Start  jsonPoint `json:"start"`
	End    jsonPoint `json:"end"`
}

type jsonLeaf struct {
	ID       string    `json:"id"`
	Branch   string    `json:"branch"`
	Position jsonPoint `json:"position"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// JSON encodes t with its generations, crown, leafage and flowers. Entities
// refer to each other by ID.
func JSON(t *tree.Tree, opts ...JSONOption) ([]byte, error) {
	e := &jsonEncoder{scale: 1}
	for _, opt := range opts {
		opt(e)
	}

	out := jsonOutput{
		Depth:       t.Depth,
		Summary:     summarize(t),
		Generations: make([][]jsonBranch, len(t.Generations)),
		Crown:       make([]string, 0, len(t.Crown)),
		Leafage:     make([]jsonLeaf, 0, len(t.Leafage)),
		Flowers:     make([]jsonLeaf, 0, len(t.Flowers)),
	}
	if e.hasSeed {
		out.Seed = &e.seed
	}

	for g, gen := range t.Generations {
		out.Generations[g] = make([]jsonBranch, 0, len(gen))
		for _, b := range gen {
			out.Generations[g] = append(out.Generations[g], jsonBranch{
				ID:     b.ID,
				Type:   b.Type,
				Parent: branchID(t, b.Parent),
				Length: b.Length * e.scale,
				Width:  b.Width * e.scale,
				Angle:  b.Angle,
				Start:  e.point(b.Start),
				End:    e.point(b.End),
			})
		}
	}
	for _, ref := range t.Crown {
		out.Crown = append(out.Crown, branchID(t, ref))
	}
	for _, l := range t.Leafage {
		out.Leafage = append(out.Leafage, jsonLeaf{ID: l.ID, Branch: branchID(t, l.Branch), Position: e.point(l.Position)})
	}
	for _, f := range t.Flowers {
		out.Flowers = append(out.Flowers, jsonLeaf{ID: f.ID, Branch: branchID(t, f.Branch), Position: e.point(f.Position)})
	}

	if e.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func (e *jsonEncoder) point(xy geometry.XY) jsonPoint {
	p := geometry.Rescale(xy, e.scale, 0, e.offset)
	return jsonPoint{X: p.X, Y: p.Y}
}

func branchID(t *tree.Tree, r tree.Ref) string {
	if b, ok := t.Branch(r); ok {
		return b.ID
	}
	return ""
}

func summarize(t *tree.Tree) jsonSummary {
	s := jsonSummary{
		Branches:    t.BranchCount(),
		Crown:       len(t.Crown),
		Leaves:      len(t.Leafage),
		Flowers:     len(t.Flowers),
		Generations: make([]int, len(t.Generations)),
	}
	for i, gen := range t.Generations {
		s.Generations[i] = len(gen)
	}
	for _, n := range t.FlowerCounts() {
		s.MaxOnBranch = max(s.MaxOnBranch, n)
		if n == 0 {
			s.BareBranches++
		}
	}
	return s
}
