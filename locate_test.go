package pathlen

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func lShapedPath() *Path {
	p := mustNew(DefaultOptions)
	p.MoveTo(0, 0)
	if err := p.LineTo(10, 0); err != nil {
		panic(err)
	}
	if err := p.LineTo(10, 10); err != nil {
		panic(err)
	}
	return p
}

func TestLocatePointAtLength(t *testing.T) {
	p := lShapedPath()
	var tts = []struct {
		length float64
		pos    Point
	}{
		{0.0, Point{0, 0}},
		{5.0, Point{5, 0}},
		{10.0, Point{10, 0}},
		{15.0, Point{10, 5}},
		{20.0, Point{10, 10}},
		{-3.0, Point{0, 0}},  // clamped at the start
		{25.0, Point{10, 10}}, // clamped at the end
	}
	for _, tt := range tts {
		pos, err := p.PointAtLength(tt.length)
		test.Error(t, err)
		test.T(t, pos, tt.pos)
	}
}

func TestLocateBoundaryVertices(t *testing.T) {
	// length 0 maps to the first vertex, the total length to the last vertex
	p := mustNew(DefaultOptions)
	p.MoveTo(2, 3)
	test.Error(t, p.QuadTo(10, 10, 20, 3))
	p.MoveTo(30, 0)
	test.Error(t, p.LineTo(40, 8))

	pos, err := p.PointAtLength(0)
	test.Error(t, err)
	test.T(t, pos, Point{2, 3})

	pos, err = p.PointAtLength(p.TotalLength())
	test.Error(t, err)
	test.T(t, pos, Point{40, 8})
}

func TestLocateAcrossSubPaths(t *testing.T) {
	p := mustNew(DefaultOptions)
	p.MoveTo(0, 0)
	test.Error(t, p.LineTo(10, 0))
	p.MoveTo(0, 5)
	test.Error(t, p.LineTo(10, 5))

	pos, err := p.PointAtLength(15)
	test.Error(t, err)
	test.T(t, pos, Point{5, 5})
}

func TestLocateTangentNormal(t *testing.T) {
	p := lShapedPath()

	tangent, err := p.TangentAtLength(5)
	test.Error(t, err)
	test.T(t, tangent, Point{1, 0})

	normal, err := p.NormalAtLength(5)
	test.Error(t, err)
	test.T(t, normal, Point{0, 1})

	tangent, err = p.TangentAtLength(15)
	test.Error(t, err)
	test.T(t, tangent, Point{0, 1})

	pos, tangent, normal, err := p.PointTangentNormalAtLength(15)
	test.Error(t, err)
	test.T(t, pos, Point{10, 5})
	test.T(t, tangent, Point{0, 1})
	test.T(t, normal, Point{-1, 0})
}

func TestLocateCapability(t *testing.T) {
	opts := DefaultOptions
	opts.ComputeTangentsAndNormals = false
	p := mustNew(opts)
	p.MoveTo(0, 0)
	test.Error(t, p.LineTo(10, 0))

	tangent, err := p.TangentAtLength(5)
	test.That(t, errors.Is(err, ErrCapability))
	test.That(t, tangent.IsZero())

	_, err = p.NormalAtLength(5)
	test.That(t, errors.Is(err, ErrCapability))

	_, _, _, err = p.PointTangentNormalAtLength(5)
	test.That(t, errors.Is(err, ErrCapability))

	// positions remain available
	pos, err := p.PointAtLength(5)
	test.Error(t, err)
	test.T(t, pos, Point{5, 0})
}

func TestLocateEmpty(t *testing.T) {
	p := mustNew(DefaultOptions)
	_, err := p.PointAtLength(0)
	test.That(t, errors.Is(err, ErrEmptyGeometry))
}

func TestLocateSingleVertex(t *testing.T) {
	p := mustNew(DefaultOptions)
	p.MoveTo(3, 4)
	test.Float(t, p.TotalLength(), 0.0)

	pos, err := p.PointAtLength(0)
	test.Error(t, err)
	test.T(t, pos, Point{3, 4})

	pos, err = p.PointAtLength(7)
	test.Error(t, err)
	test.T(t, pos, Point{3, 4})
}

func TestLocateMemo(t *testing.T) {
	p := lShapedPath()
	pos, err := p.PointAtLength(15)
	test.Error(t, err)
	test.T(t, pos, Point{10, 5})
	test.That(t, p.memo.valid)

	// the memo answers the repeated lookup
	pos, _ = p.PointAtLength(15)
	test.T(t, pos, Point{10, 5})

	// any mutation invalidates it
	p.Translate(1, 0)
	test.That(t, !p.memo.valid)
	pos, err = p.PointAtLength(15)
	test.Error(t, err)
	test.T(t, pos, Point{11, 5})
}

func TestLocateMonotonic(t *testing.T) {
	// arclengths recovered by projecting sampled positions never decrease
	p := mustNew(DefaultOptions)
	p.MoveTo(0, 0)
	test.Error(t, p.LineTo(100, 0))
	test.Error(t, p.QuadTo(150, 50, 100, 100))
	test.Error(t, p.LineTo(0, 100))

	total := p.TotalLength()
	prev := 0.0
	for i := 0; i <= 50; i++ {
		length := total * float64(i) / 50.0
		pos, err := p.PointAtLength(length)
		test.Error(t, err)
		pr, err := p.Nearest(pos)
		test.Error(t, err)
		test.That(t, prev <= pr.Length+1e-9, "arclength decreased at", length)
		test.That(t, math.Abs(pr.Length-length) < 1e-6, "arclength roundtrip at", length)
		prev = pr.Length
	}
}
