package pathlen

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAngleNorm(t *testing.T) {
	test.Float(t, angleNorm(0.0), 0.0)
	test.Float(t, angleNorm(1.0), 1.0)
	test.Float(t, angleNorm(2.0*math.Pi), 0.0)
	test.Float(t, angleNorm(3.0*math.Pi), math.Pi)
	test.Float(t, angleNorm(-0.5*math.Pi), 1.5*math.Pi)
}

func TestArcAngles(t *testing.T) {
	// clockwise unwraps the end angle, counter clockwise the start angle
	a0, a1 := arcAngles(0.0, math.Pi/2.0, false)
	test.Float(t, a0, 0.0)
	test.Float(t, a1, math.Pi/2.0)

	a0, a1 = arcAngles(0.0, math.Pi/2.0, true)
	test.Float(t, a0, 2.0*math.Pi)
	test.Float(t, a1, math.Pi/2.0)

	a0, a1 = arcAngles(math.Pi/2.0, 0.0, false)
	test.Float(t, a0, math.Pi/2.0)
	test.Float(t, a1, 2.0*math.Pi)

	// full circle
	a0, a1 = arcAngles(0.0, 2.0*math.Pi, false)
	test.Float(t, a0, 0.0)
	test.Float(t, a1, 2.0*math.Pi)
}

func TestPoint(t *testing.T) {
	test.T(t, Point{3, 4}.Add(Point{1, 1}), Point{4, 5})
	test.T(t, Point{3, 4}.Sub(Point{1, 1}), Point{2, 3})
	test.T(t, Point{3, 4}.Mul(2), Point{6, 8})
	test.Float(t, Point{3, 4}.Length(), 5.0)
	test.Float(t, Point{3, 4}.Dot(Point{4, -3}), 0.0)
	test.Float(t, Point{3, 4}.PerpDot(Point{4, -3}), -25.0)
	test.T(t, Point{1, 0}.Rot90CCW(), Point{0, 1})
	test.T(t, Point{0, 10}.Norm(1.0), Point{0, 1})
	test.T(t, Point{0, 0}.Norm(1.0), Point{0, 0})
	test.T(t, Point{0, 0}.Interpolate(Point{10, 4}, 0.5), Point{5, 2})
	test.That(t, Point{1, 1}.Equals(Point{1 + 1e-12, 1}))
	test.That(t, !Point{1, 1}.Equals(Point{1.1, 1}))
}
