package tree

import (
	"errors"
	"fmt"
)

type container string

func (c container) NodeID() string { return string(c) }

type attachment struct {
	parent, child string
}

// recorder is an Attacher which remembers every call and can be told to
// fail on a given child.
type recorder struct {
	attachments []attachment
	failOn      string
}

func (r *recorder) Attach(parent, child Node) error {
	if child.NodeID() == r.failOn {
		return errors.New("scene rejected node")
	}
	r.attachments = append(r.attachments, attachment{parent: parent.NodeID(), child: child.NodeID()})
	return nil
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// fixedSampler always picks the same index, clamped to the range.
func fixedSampler(i int) Sampler {
	return SamplerFunc(func(low, high int) int {
		return min(max(i, low), high)
	})
}

func generate(cfg Config, opts ...Option) (*Tree, *recorder, error) {
	r := &recorder{}
	opts = append([]Option{WithIDFunc(sequentialIDs()), WithSampler(NewRandSampler(1))}, opts...)
	t, err := NewGenerator(cfg, container("content"), r, opts...).Generate()
	return t, r, err
}
