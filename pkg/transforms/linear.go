package transforms

import (
	"math"
	"math/cmplx"

	"github.com/willbeason/flowering-tree/pkg/geometry"
)

// Linear is the complex affine map z -> z*Multiply + Add.
type Linear struct {
	Multiply complex128
	Add      complex128
}

func (l Linear) Next(z complex128) complex128 {
	return z*l.Multiply + l.Add
}

// Frame returns the map taking the real unit segment [0, 1] onto a segment
// which starts at start, has the given length, and points angle radians
// counter-clockwise from vertical.
func Frame(start geometry.XY, length, angle float64) Linear {
	return Linear{
		Multiply: cmplx.Rect(length, angle+math.Pi/2),
		Add:      complex(start.X, start.Y),
	}
}

// Apply returns the point at parameter t along the frame's segment.
func Apply(l Linear, t float64) geometry.XY {
	z := l.Next(complex(t, 0))
	return geometry.XY{X: real(z), Y: imag(z)}
}
