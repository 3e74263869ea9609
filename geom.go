package charts

import (
	"math"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y
	return p
}

// PolarToCartesian converts a radius and an angle in radians into a point
// relative to the origin. 0 points to the right and angles grow
// counterclockwise. Y grows downward, hence the negated sine.
func PolarToCartesian(r, theta float64) Point {
	return Point{
		X: r * math.Cos(theta),
		Y: -r * math.Sin(theta),
	}
}

func Radians(deg float64) float64 {
	return deg * deg2rad
}
