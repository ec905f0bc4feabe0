package geometry

import "math"

// XY is a point or a vector in the plane of the tree.
// Y grows upward, so a branch with angle 0 points straight up.
type XY struct {
	X, Y float64
}

func (xy XY) Add(o XY) XY {
	return XY{X: xy.X + o.X, Y: xy.Y + o.Y}
}

func (xy XY) Scale(s float64) XY {
	return XY{X: xy.X * s, Y: xy.Y * s}
}

func (xy XY) Length() float64 {
	return math.Hypot(xy.X, xy.Y)
}

// Polar returns the vector of the given length pointing angle radians
// counter-clockwise from vertical.
func Polar(length, angle float64) XY {
	return XY{
		X: -length * math.Sin(angle),
		Y: length * math.Cos(angle),
	}
}

// Rescale scales xy, rotates it counter-clockwise by angle, and then moves it by offset.
func Rescale(xy XY, scale float64, angle float64, offset XY) XY {
	x := xy.X * scale
	y := xy.Y * scale

	x2 := x*math.Cos(angle) - y*math.Sin(angle) + offset.X
	y2 := x*math.Sin(angle) + y*math.Cos(angle) + offset.Y

	return XY{X: x2, Y: y2}
}
