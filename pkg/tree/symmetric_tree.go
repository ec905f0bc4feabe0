package tree

// Symmetric returns a perfectly-symmetric shape where both side branches
// deviate at the same angle and have the same length.
func Symmetric(angle float64, scale float64) Shape {
	return Shape{
		LeftP:      0.5,
		LeftAngle:  angle,
		RightAngle: angle,
		Scale:      scale,
		TopScale:   DefaultTopScale,
	}
}
