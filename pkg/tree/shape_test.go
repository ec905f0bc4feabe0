package tree

import (
	"math"
	"math/rand/v2"
	"testing"

	treeerrors "github.com/willbeason/flowering-tree/pkg/errors"
	"github.com/willbeason/flowering-tree/pkg/geometry"
)

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr bool
	}{
		{name: "default", shape: DefaultShape()},
		{name: "balanced", shape: BalancedConstant(0.5, 0.3, 0.6)},
		{name: "left proportion zero", shape: Shape{LeftP: 0, Scale: 0.5, TopScale: 0.5}, wantErr: true},
		{name: "left proportion one", shape: Shape{LeftP: 1, Scale: 0.4, TopScale: 0.5}, wantErr: true},
		{name: "side grows", shape: Symmetric(0.3, 1.0), wantErr: true},
		{name: "uneven side grows", shape: BalancedConstant(0.3, 0.8, 0.7), wantErr: true},
		{name: "top grows", shape: Shape{LeftP: 0.5, Scale: 0.5, TopScale: 1}, wantErr: true},
		{name: "negative angle", shape: Symmetric(-0.1, 0.5), wantErr: true},
		{name: "angle past horizontal", shape: Symmetric(2, 0.5), wantErr: true},
		{name: "nan scale", shape: Symmetric(0.3, math.NaN()), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.wantErr {
				if !treeerrors.Is(err, treeerrors.ErrCodeInvalidShape) {
					t.Errorf("Validate() error = %v, want %s", err, treeerrors.ErrCodeInvalidShape)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}

func TestShapeChild(t *testing.T) {
	s := Symmetric(math.Pi/4, 0.5)
	parent := Branch{Length: 20, Width: 4, Angle: 0.1, End: geometry.XY{X: 3, Y: 4}}
	ref := Ref{Generation: 2, Index: 7}

	tests := []struct {
		typ        Type
		wantLength float64
		wantAngle  float64
	}{
		{typ: Left, wantLength: 10, wantAngle: 0.1 + math.Pi/4},
		{typ: Right, wantLength: 10, wantAngle: 0.1 - math.Pi/4},
		{typ: Top, wantLength: 16, wantAngle: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			c := s.Child(&parent, ref, tt.typ, 3)
			if c.Type != tt.typ || c.Parent != ref || c.Depth != 3 {
				t.Errorf("child = %+v", c)
			}
			if math.Abs(c.Length-tt.wantLength) > 1e-9 {
				t.Errorf("Length = %v, want %v", c.Length, tt.wantLength)
			}
			if math.Abs(c.Width-parent.Width*tt.wantLength/parent.Length) > 1e-9 {
				t.Errorf("Width = %v, want scaled with length", c.Width)
			}
			if math.Abs(c.Angle-tt.wantAngle) > 1e-9 {
				t.Errorf("Angle = %v, want %v", c.Angle, tt.wantAngle)
			}
			if c.Start != parent.End {
				t.Errorf("Start = %v, want parent end %v", c.Start, parent.End)
			}
			if d := c.End.Add(c.Start.Scale(-1)).Length(); math.Abs(d-c.Length) > 1e-9 {
				t.Errorf("|End-Start| = %v, want %v", d, c.Length)
			}
			tip := c.Point(1)
			if math.Abs(tip.X-c.End.X) > 1e-9 || math.Abs(tip.Y-c.End.Y) > 1e-9 {
				t.Errorf("Point(1) = %v, want End %v", tip, c.End)
			}
		})
	}
}

func TestBalancedConstant(t *testing.T) {
	angle := math.Pi / 4

	left := BalancedConstant(angle, 0.3, 0.6)
	if left.LeftAngle != angle {
		t.Errorf("smaller left branch angle = %v, want %v", left.LeftAngle, angle)
	}
	if left.RightAngle >= angle {
		t.Errorf("larger right branch angle = %v, want < %v", left.RightAngle, angle)
	}

	right := BalancedConstant(angle, 0.7, 0.6)
	if right.RightAngle != angle {
		t.Errorf("smaller right branch angle = %v, want %v", right.RightAngle, angle)
	}
	if math.Abs(right.LeftAngle-left.RightAngle) > 1e-12 {
		t.Errorf("mirrored shapes differ: %v vs %v", right.LeftAngle, left.RightAngle)
	}

	even := BalancedConstant(angle, 0.5, 0.6)
	if math.Abs(even.LeftAngle-even.RightAngle) > 1e-12 {
		t.Errorf("even split angles differ: %v vs %v", even.LeftAngle, even.RightAngle)
	}
}

func TestRandomBalancedIsValid(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 500; i++ {
		s := RandomBalanced(r)
		if err := s.Validate(); err != nil {
			t.Fatalf("RandomBalanced() = %+v: %v", s, err)
		}
		if longest := math.Max(s.LeftScale(), s.RightScale()); math.Abs(longest-maxSideScale) > 1e-9 {
			t.Errorf("longest side factor = %v, want %v", longest, maxSideScale)
		}
	}
}
