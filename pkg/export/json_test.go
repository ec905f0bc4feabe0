package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/willbeason/flowering-tree/pkg/geometry"
	"github.com/willbeason/flowering-tree/pkg/scene"
	"github.com/willbeason/flowering-tree/pkg/tree"
)

func generate(t *testing.T, depth, flowers int) *tree.Tree {
	t.Helper()

	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}

	cfg := tree.DefaultConfig(depth)
	cfg.FlowersNumber = flowers
	tr, err := tree.NewGenerator(cfg, scene.NewGroup("content"), scene.New(),
		tree.WithSampler(tree.NewRandSampler(1)), tree.WithIDFunc(ids)).Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return tr
}

func TestJSON(t *testing.T) {
	tr := generate(t, 3, 20)

	data, err := JSON(tr)
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Depth != 3 {
		t.Errorf("Depth = %d, want 3", out.Depth)
	}
	if out.Seed != nil {
		t.Errorf("Seed = %v, want omitted", *out.Seed)
	}
	if len(out.Generations) != 3 || len(out.Generations[2]) != 9 {
		t.Fatalf("generation sizes wrong: %v", out.Summary.Generations)
	}
	if out.Generations[0][0].Type != tree.Root || out.Generations[0][0].Parent != "" {
		t.Errorf("root = %+v, want unparented root", out.Generations[0][0])
	}
	if out.Generations[1][0].Type != tree.Left || out.Generations[1][0].Parent != "n1" {
		t.Errorf("first child = %+v, want LEFT under n1", out.Generations[1][0])
	}
	if len(out.Crown) != 9 || len(out.Leafage) != 9 || len(out.Flowers) != 20 {
		t.Errorf("crown/leafage/flowers = %d/%d/%d, want 9/9/20", len(out.Crown), len(out.Leafage), len(out.Flowers))
	}

	s := out.Summary
	if s.Branches != 13 || s.Crown != 9 || s.Leaves != 9 || s.Flowers != 20 {
		t.Errorf("Summary = %+v", s)
	}
	if s.MaxOnBranch < 3 {
		t.Errorf("MaxOnBranch = %d, want at least 3 for 20 flowers on 9 branches", s.MaxOnBranch)
	}
}

func TestJSONOptions(t *testing.T) {
	tr := generate(t, 2, 0)

	data, err := JSON(tr, WithSeed(77), WithIndent(), WithViewport(2, geometry.XY{X: 10, Y: 0}))
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if !bytes.Contains(data, []byte("\n  \"depth\": 2")) {
		t.Errorf("output is not indented:\n%s", data)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Seed == nil || *out.Seed != 77 {
		t.Errorf("Seed = %v, want 77", out.Seed)
	}

	root := out.Generations[0][0]
	if root.Start != (jsonPoint{X: 10, Y: 0}) {
		t.Errorf("root start = %+v, want {10 0}", root.Start)
	}
	if root.End.X != 10 || root.End.Y != 2*tree.DefaultRootLength {
		t.Errorf("root end = %+v, want {10 %v}", root.End, 2*tree.DefaultRootLength)
	}
	if root.Length != 2*tree.DefaultRootLength {
		t.Errorf("root length = %v, want %v", root.Length, 2*tree.DefaultRootLength)
	}
	if len(out.Flowers) != 0 || out.Summary.BareBranches != 3 {
		t.Errorf("flowers = %d, bare = %d; want 0, 3", len(out.Flowers), out.Summary.BareBranches)
	}
}
