package cli

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/flowering-tree/pkg/errors"
	"github.com/willbeason/flowering-tree/pkg/export"
	"github.com/willbeason/flowering-tree/pkg/geometry"
	"github.com/willbeason/flowering-tree/pkg/scene"
	"github.com/willbeason/flowering-tree/pkg/tree"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type generateOptions struct {
	depth   int
	flowers int
	seed    uint64
	format  string

	// JSON viewport
	scale   float64
	originX float64
	originY float64
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tree and describe it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "number of generations, counting the root")
	cmd.Flags().IntVarP(&opts.flowers, "flowers", "f", 0, "number of flowers to scatter over the crown")
	cmd.Flags().Uint64VarP(&opts.seed, "seed", "s", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVarP(&opts.format, "format", "o", formatText, "output format: text or json")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "scale applied to JSON coordinates")
	cmd.Flags().Float64Var(&opts.originX, "origin-x", 0, "x position of the root in JSON coordinates")
	cmd.Flags().Float64Var(&opts.originY, "origin-y", 0, "y position of the root in JSON coordinates")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	logger := loggerFromContext(cmd.Context())

	if opts.format != formatText && opts.format != formatJSON {
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want %s or %s)", opts.format, formatText, formatJSON)
	}
	if !(opts.scale > 0) || math.IsInf(opts.scale, 1) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive and finite, got %v", opts.scale)
	}

	cfg, err := root.load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("depth") {
		cfg.Depth = opts.depth
	}
	if flags.Changed("flowers") {
		cfg.Flowers = opts.flowers
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		logger.Debug("picked seed", "seed", seed)
	}

	treeCfg, err := cfg.TreeConfig(rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return err
	}

	graph := scene.New()
	content := scene.NewGroup("content")

	prog := newProgress(logger)
	gen := tree.NewGenerator(treeCfg, content, graph,
		tree.WithSampler(tree.NewRandSampler(seed)),
		tree.WithLogger(logger))

	t, err := gen.Generate()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d branches", t.BranchCount()))
	logger.Debug("scene graph populated", "nodes", graph.Len())

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatJSON:
		data, err := export.JSON(t,
			export.WithSeed(seed),
			export.WithIndent(),
			export.WithViewport(opts.scale, geometry.XY{X: opts.originX, Y: opts.originY}))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode tree")
		}
		if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return err
		}
	default:
		printSummary(out, t, seed)
	}
	return nil
}
