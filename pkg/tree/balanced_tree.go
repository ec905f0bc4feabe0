package tree

import "math"

// BalancedConstant returns a shape where side branches deviate with the same
// proportions at every junction.
// Angle is the deviation for the smaller branch, so right if pLeft > 0.5.
func BalancedConstant(angle float64, pLeft float64, scale float64) Shape {
	leftAngle, rightAngle := balancedAngles(angle, pLeft)

	return Shape{
		LeftP:      pLeft,
		LeftAngle:  leftAngle,
		RightAngle: rightAngle,
		Scale:      scale,
		TopScale:   DefaultTopScale,
	}
}

// balancedAngles turns the larger branch less, so the junction stays balanced
// about the parent's axis.
func balancedAngles(angle float64, pLeft float64) (float64, float64) {
	if pLeft < 0.5 {
		return angle, math.Asin((pLeft / (1.0 - pLeft)) * math.Sin(angle))
	}
	return math.Asin(((1.0 - pLeft) / pLeft) * math.Sin(angle)), angle
}
