package tree

import (
	"math"
	"math/rand/v2"
)

// maxSideScale bounds the length factor of the longer side branch of a
// random shape.
const maxSideScale = 0.7

// RandomBalanced returns a balanced shape with a random split and deviation.
func RandomBalanced(r *rand.Rand) Shape {
	pLeft := r.Float64()*0.6 + 0.2
	angle := math.Pi / 3.0 * (r.Float64()*0.6 + 0.2)

	scale := maxSideScale / (2.0 * math.Max(pLeft, 1.0-pLeft))

	return BalancedConstant(angle, pLeft, scale)
}
