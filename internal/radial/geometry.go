package radial

import "math"

const (
	// SurfaceWidth and SurfaceHeight are the fixed canvas dimensions shared by
	// every slider instance.
	SurfaceWidth  = 500
	SurfaceHeight = 500
)

// Point is a position in canvas units.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// SurfaceCenter is the fixed center of the shared canvas.
func SurfaceCenter() Point {
	return Point{X: SurfaceWidth / 2, Y: SurfaceHeight / 2}
}

// Circle is the track a handle travels on.
type Circle struct {
	Center Point
	Radius float64
}

// Circumference returns 2πr.
func (c Circle) Circumference() float64 { return 2 * math.Pi * c.Radius }

// Project returns the point on c closest to p, i.e. p's direction from the
// center scaled to the radius. A p on the center has no direction.
func Project(c Circle, p Point) (Point, error) {
	d := p.Sub(c.Center)
	length := math.Hypot(d.X, d.Y)
	if length == 0 || !finite(length) {
		return Point{}, ErrDegenerateGeometry
	}
	k := c.Radius / length
	return Point{X: c.Center.X + d.X*k, Y: c.Center.Y + d.Y*k}, nil
}

// Degrees maps p to an angle around center: 0 at 12 o'clock, increasing
// clockwise, always in [0, 360).
func Degrees(center, p Point) float64 {
	d := p.Sub(center)
	deg := math.Mod(math.Atan2(d.Y, d.X)*180/math.Pi+450, 360)
	if deg < 0 || deg >= 360 {
		return 0
	}
	return deg
}

// PointAt is the inverse of Degrees for points on c.
func PointAt(c Circle, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: c.Center.X + c.Radius*math.Sin(rad),
		Y: c.Center.Y - c.Radius*math.Cos(rad),
	}
}

// ArcLength is the part of the circumference swept from 12 o'clock.
func ArcLength(circumference, degrees float64) float64 {
	return circumference / 360 * degrees
}

// ValueAt maps an angle linearly onto [min, max].
func ValueAt(min, max, degrees float64) float64 {
	return min + degrees/360*(max-min)
}

// SnapToStep rounds value to the closer of the two surrounding multiples of
// step. Exact ties go to the higher multiple.
func SnapToStep(value, step float64) float64 {
	if step <= 0 || !finite(value) {
		return value
	}
	low := math.Floor(value/step) * step
	high := low + step
	if value-low < high-value {
		return low
	}
	return high
}

// Snap applies SnapToStep and keeps the result inside [min, max].
func Snap(min, max, step, value float64) float64 {
	if !finite(value) {
		return min
	}
	return clamp(SnapToStep(value, step), min, max)
}

func clamp(v, min, max float64) float64 {
	if max <= min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
