// Package config loads tree generation settings from TOML files.
package config

import (
	"io"
	"math"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	treeerrors "github.com/willbeason/flowering-tree/pkg/errors"
	"github.com/willbeason/flowering-tree/pkg/tree"
)

// Shape kinds.
const (
	ShapeSymmetric = "symmetric"
	ShapeBalanced  = "balanced"
	ShapeRandom    = "random"
)

const DefaultDepth = 8

// Config is the on-disk form of a tree description.
type Config struct {
	Depth   int `toml:"depth"`
	Flowers int `toml:"flowers"`

	// Seed drives flower placement and random shapes. Zero picks a seed from
	// the clock.
	Seed uint64 `toml:"seed"`

	RootLength float64 `toml:"root_length"`
	RootWidth  float64 `toml:"root_width"`

	Shape Shape `toml:"shape"`
}

// Shape selects a tree.Shape. Symmetric shapes split evenly, so left_p may
// only be left out or set to 0.5. Random shapes draw their split, angle and
// scale, and honour only top_scale.
type Shape struct {
	Kind         string  `toml:"kind"`
	AngleDegrees float64 `toml:"angle_degrees"`
	LeftP        float64 `toml:"left_p"`
	Scale        float64 `toml:"scale"`
	TopScale     float64 `toml:"top_scale"`
}

func Default() Config {
	s := tree.DefaultShape()
	return Config{
		Depth:      DefaultDepth,
		Flowers:    tree.DefaultFlowersNumber,
		RootLength: tree.DefaultRootLength,
		RootWidth:  tree.DefaultRootWidth,
		Shape: Shape{
			Kind:         ShapeSymmetric,
			AngleDegrees: s.LeftAngle * 180 / math.Pi,
			LeftP:        s.LeftP,
			Scale:        s.Scale,
			TopScale:     s.TopScale,
		},
	}
}

// Load reads path over the defaults. Keys the file leaves out keep their
// default values; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, treeerrors.Wrap(treeerrors.ErrCodeInvalidInput, err, "config file %s not found", path)
		}
		return Config{}, treeerrors.Wrap(treeerrors.ErrCodeInvalidConfiguration, err, "parse %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, treeerrors.New(treeerrors.ErrCodeInvalidConfiguration, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// TreeConfig converts c into a validated tree.Config. rng is only used by
// random shapes.
func (c Config) TreeConfig(rng *rand.Rand) (tree.Config, error) {
	shape, err := c.Shape.build(rng)
	if err != nil {
		return tree.Config{}, err
	}

	cfg := tree.Config{
		Depth:         c.Depth,
		FlowersNumber: c.Flowers,
		RootLength:    c.RootLength,
		RootWidth:     c.RootWidth,
		Shape:         shape,
	}
	if err := cfg.Validate(); err != nil {
		return tree.Config{}, err
	}
	return cfg, nil
}

func (s Shape) build(rng *rand.Rand) (tree.Shape, error) {
	angle := s.AngleDegrees * math.Pi / 180

	var shape tree.Shape
	switch strings.ToLower(s.Kind) {
	case "", ShapeSymmetric:
		if s.LeftP != 0 && s.LeftP != 0.5 {
			return tree.Shape{}, treeerrors.New(treeerrors.ErrCodeInvalidConfiguration, "symmetric shape splits evenly; left_p must be 0.5 or unset, got %v", s.LeftP)
		}
		shape = tree.Symmetric(angle, s.Scale)
	case ShapeBalanced:
		if !(s.LeftP > 0 && s.LeftP < 1) {
			return tree.Shape{}, treeerrors.New(treeerrors.ErrCodeInvalidConfiguration, "balanced shape needs left_p in (0, 1), got %v", s.LeftP)
		}
		shape = tree.BalancedConstant(angle, s.LeftP, s.Scale)
	case ShapeRandom:
		if rng == nil {
			return tree.Shape{}, treeerrors.New(treeerrors.ErrCodeInvalidInput, "random shape needs a random source")
		}
		shape = tree.RandomBalanced(rng)
	default:
		return tree.Shape{}, treeerrors.New(treeerrors.ErrCodeInvalidConfiguration, "unknown shape kind %q", s.Kind)
	}

	if s.TopScale != 0 {
		shape.TopScale = s.TopScale
	}
	return shape, nil
}
