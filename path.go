package pathlen

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrConfiguration is returned when construction options are invalid.
	ErrConfiguration = errors.New("pathlen: bad configuration")

	// ErrIndexRange is returned when a sub-path or segment index is out of bounds.
	ErrIndexRange = errors.New("pathlen: index out of range")

	// ErrEmptyGeometry is returned when an operation needs an existing vertex to continue from.
	ErrEmptyGeometry = errors.New("pathlen: no geometry to continue from")

	// ErrCapability is returned when tangents or normals are queried while their computation is disabled.
	ErrCapability = errors.New("pathlen: capability disabled")
)

// Kind is the interpolation family of a sub-path, it reflects the last-appended primitive.
type Kind int

const (
	KindLine Kind = iota
	KindCurve
)

func (kind Kind) String() string {
	if kind == KindCurve {
		return "Curve"
	}
	return "Line"
}

// SubPath is a connected run of vertices sharing one interpolation intent.
// Its derived tables (segment lengths, offsets, tangents, normals) are
// recomputed lazily when dirty.
type SubPath struct {
	verts  []Point
	kind   Kind
	closed bool
	dirty  bool

	lengths  []float64 // one entry per consecutive vertex pair
	offsets  []float64 // prefix sum of lengths, offsets[0] == 0
	length   float64   // sum of lengths
	offset   float64   // sum of the total lengths of all prior sub-paths
	tangents []Point   // one unit vector per vertex, nil when disabled
	normals  []Point   // tangents rotated 90 degrees CCW, nil when disabled
}

// Path is an ordered sequence of sub-paths with arclength query support.
// It is a single-owner data structure: mutations must not be interleaved with
// other calls without external synchronization, but every query returns an
// owned result so that queries never alias each other.
type Path struct {
	opts     Options
	subpaths []*SubPath
	active   int // index into subpaths, -1 when none
	dirty    bool
	length   float64
	memo     lengthMemo
}

// New returns an empty path configured by opts.
func New(opts Options) (*Path, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Path{opts: opts, active: -1}, nil
}

// Empty returns true if the path contains no segments.
func (p *Path) Empty() bool {
	for _, sp := range p.subpaths {
		if 1 < len(sp.verts) {
			return false
		}
	}
	return true
}

// Len returns the number of sub-paths.
func (p *Path) Len() int {
	return len(p.subpaths)
}

// Pos returns the current point, ie. the last vertex of the active sub-path.
func (p *Path) Pos() (Point, bool) {
	if sp := p.activeSubPath(); sp != nil && 0 < len(sp.verts) {
		return sp.verts[len(sp.verts)-1], true
	}
	return Point{}, false
}

// Bounds returns the bounding rectangle of all vertices.
func (p *Path) Bounds() Rect {
	first := true
	var x0, y0, x1, y1 float64
	for _, sp := range p.subpaths {
		for _, v := range sp.verts {
			if first {
				x0, y0, x1, y1 = v.X, v.Y, v.X, v.Y
				first = false
				continue
			}
			x0 = math.Min(x0, v.X)
			y0 = math.Min(y0, v.Y)
			x1 = math.Max(x1, v.X)
			y1 = math.Max(y1, v.Y)
		}
	}
	if first {
		return Rect{}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (p *Path) activeSubPath() *SubPath {
	if p.active == -1 {
		return nil
	}
	return p.subpaths[p.active]
}

func (p *Path) markDirty(sp *SubPath) {
	if sp != nil {
		sp.dirty = true
	}
	p.dirty = true
	p.memo.valid = false
}

func (p *Path) newSubPath(kind Kind, start Point) *SubPath {
	sp := &SubPath{verts: []Point{start}, kind: kind, dirty: true}
	p.subpaths = append(p.subpaths, sp)
	p.active = len(p.subpaths) - 1
	p.markDirty(sp)
	return sp
}

// continueWith returns the sub-path that a primitive of the given kind appends
// to. A closed sub-path or a sub-path of the other kind is continued by
// implicitly starting a new sub-path at the current point, so a sub-path never
// mixes interpolation intents.
func (p *Path) continueWith(kind Kind) (*SubPath, error) {
	sp := p.activeSubPath()
	if sp == nil || len(sp.verts) == 0 {
		return nil, ErrEmptyGeometry
	}
	last := sp.verts[len(sp.verts)-1]
	if sp.closed {
		return p.newSubPath(kind, last), nil
	}
	if len(sp.verts) == 1 {
		sp.kind = kind
		return sp, nil
	}
	if sp.kind != kind {
		return p.newSubPath(kind, last), nil
	}
	return sp, nil
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new sub-path at (x,y). An active sub-path without content is
// reused instead of creating another one.
func (p *Path) MoveTo(x, y float64) {
	if sp := p.activeSubPath(); sp != nil && len(sp.verts) == 0 {
		sp.verts = append(sp.verts, Point{x, y})
		sp.kind = KindLine
		sp.closed = false
		p.markDirty(sp)
		return
	}
	p.newSubPath(KindLine, Point{x, y})
}

// LineTo appends a straight segment from the current point to (x,y).
func (p *Path) LineTo(x, y float64) error {
	sp, err := p.continueWith(KindLine)
	if err != nil {
		return err
	}
	sp.verts = append(sp.verts, Point{x, y})
	p.markDirty(sp)
	return nil
}

// LinesTo appends straight segments through the given flat coordinate stream
// x0,y0,x1,y1,... in order.
func (p *Path) LinesTo(xys ...float64) error {
	if len(xys)%2 != 0 {
		return fmt.Errorf("pathlen: odd number of coordinates")
	}
	if len(xys) == 0 {
		return nil
	}
	sp, err := p.continueWith(KindLine)
	if err != nil {
		return err
	}
	for i := 0; i < len(xys); i += 2 {
		sp.verts = append(sp.verts, Point{xys[i], xys[i+1]})
	}
	p.markDirty(sp)
	return nil
}

// LinesToPoints appends straight segments through the given points in order.
func (p *Path) LinesToPoints(pts ...Point) error {
	if len(pts) == 0 {
		return nil
	}
	sp, err := p.continueWith(KindLine)
	if err != nil {
		return err
	}
	sp.verts = append(sp.verts, pts...)
	p.markDirty(sp)
	return nil
}

// QuadTo appends a quadratic Bézier from the current point over control point
// (cpx,cpy) to (x,y), sampled uniformly at SampleCountQuadratic parameter
// values over [0,1] inclusive. The sample at t=0 duplicates the current point
// so that exactly SampleCountQuadratic vertices are appended.
func (p *Path) QuadTo(cpx, cpy, x, y float64) error {
	sp, err := p.continueWith(KindCurve)
	if err != nil {
		return err
	}
	p0 := sp.verts[len(sp.verts)-1]
	cp, end := Point{cpx, cpy}, Point{x, y}
	n := p.opts.SampleCountQuadratic
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		sp.verts = append(sp.verts, quadraticBezierPos(p0, cp, end, t))
	}
	p.markDirty(sp)
	return nil
}

// CubeTo appends a cubic Bézier from the current point over control points
// (cpx1,cpy1) and (cpx2,cpy2) to (x,y), sampled uniformly at SampleCountCubic
// parameter values over [0,1] inclusive. The sample at t=0 duplicates the
// current point so that exactly SampleCountCubic vertices are appended.
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) error {
	sp, err := p.continueWith(KindCurve)
	if err != nil {
		return err
	}
	p0 := sp.verts[len(sp.verts)-1]
	cp1, cp2, end := Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}
	n := p.opts.SampleCountCubic
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		sp.verts = append(sp.verts, cubicBezierPos(p0, cp1, cp2, end, t))
	}
	p.markDirty(sp)
	return nil
}

// Arc appends a circular arc around (cx,cy) with radius r between the angles
// theta0 and theta1 in radians, sampled at SampleCountArc uniform angle steps.
// When ccw is true the arc is swept in decreasing angle direction. Equal
// angles degenerate to a single straight segment to the point at that angle.
func (p *Path) Arc(cx, cy, r, theta0, theta1 float64, ccw bool) error {
	if theta0 == theta1 {
		sintheta, costheta := math.Sincos(theta0)
		return p.LineTo(cx+r*costheta, cy+r*sintheta)
	}
	sp, err := p.continueWith(KindCurve)
	if err != nil {
		return err
	}
	a0, a1 := arcAngles(theta0, theta1, ccw)
	n := p.opts.SampleCountArc
	for i := 0; i < n; i++ {
		theta := a0 + (a1-a0)*float64(i)/float64(n-1)
		sintheta, costheta := math.Sincos(theta)
		sp.verts = append(sp.verts, Point{cx + r*costheta, cy + r*sintheta})
	}
	p.markDirty(sp)
	return nil
}

// Ellipse appends an elliptical arc around (cx,cy) with radii rx and ry,
// rotated by rot radians, between the angles theta0 and theta1 in radians,
// sampled at SampleCountEllipse uniform angle steps. The angle wrap rule
// mirrors Arc. When no sub-path is active the first sample implicitly starts
// one.
func (p *Path) Ellipse(cx, cy, rx, ry, rot, theta0, theta1 float64, ccw bool) error {
	center := Point{cx, cy}
	at := func(theta float64) Point {
		sintheta, costheta := math.Sincos(theta)
		return Point{rx * costheta, ry * sintheta}.Rot(rot, Point{}).Add(center)
	}

	sp := p.activeSubPath()
	implicit := sp == nil || len(sp.verts) == 0
	if theta0 == theta1 {
		q := at(theta0)
		if implicit {
			p.MoveTo(q.X, q.Y)
			return nil
		}
		return p.LineTo(q.X, q.Y)
	}

	a0, a1 := arcAngles(theta0, theta1, ccw)
	n := p.opts.SampleCountEllipse
	i := 0
	if implicit {
		q := at(a0)
		p.MoveTo(q.X, q.Y)
		sp = p.activeSubPath()
		sp.kind = KindCurve
		i = 1
	} else {
		var err error
		if sp, err = p.continueWith(KindCurve); err != nil {
			return err
		}
	}
	for ; i < n; i++ {
		theta := a0 + (a1-a0)*float64(i)/float64(n-1)
		sp.verts = append(sp.verts, at(theta))
	}
	p.markDirty(sp)
	return nil
}

// arcAngles normalizes both angles into [0,2PI) and unwraps one of them so
// that interpolating from a0 to a1 sweeps in the requested direction.
func arcAngles(theta0, theta1 float64, ccw bool) (float64, float64) {
	a0, a1 := angleNorm(theta0), angleNorm(theta1)
	if ccw && a0 <= a1 {
		a0 += 2.0 * math.Pi
	} else if !ccw && a1 <= a0 {
		a1 += 2.0 * math.Pi
	}
	return a0, a1
}

// ArcTo appends a straight segment from the current point to the start of a
// circular arc of radius r that is tangent to both the line from the current
// point to (x1,y1) and the line from (x1,y1) to (x2,y2). Degenerate corners
// (coincident points, collinear lines, zero radius) fall back to a straight
// segment to (x1,y1).
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) error {
	sp := p.activeSubPath()
	if sp == nil || len(sp.verts) == 0 {
		return ErrEmptyGeometry
	}
	p0 := sp.verts[len(sp.verts)-1]
	q1, q2 := Point{x1, y1}, Point{x2, y2}

	v0 := p0.Sub(q1).Norm(1.0)
	v2 := q2.Sub(q1).Norm(1.0)
	if equal(r, 0.0) || v0.IsZero() || v2.IsZero() || equal(v0.PerpDot(v2), 0.0) {
		return p.LineTo(x1, y1)
	}

	// tangent points lie at distance r/tan(A/2) from the corner, the center at
	// r/sin(A/2) along the angle bisector
	alpha := math.Acos(math.Max(-1.0, math.Min(1.0, v0.Dot(v2))))
	t0 := q1.Add(v0.Mul(r / math.Tan(alpha/2.0)))
	t1 := q1.Add(v2.Mul(r / math.Tan(alpha/2.0)))
	c := q1.Add(v0.Add(v2).Norm(r / math.Sin(alpha/2.0)))

	// a left turn sweeps with increasing angle around the center
	ccw := q1.Sub(p0).PerpDot(q2.Sub(q1)) < 0.0
	return p.Arc(c.X, c.Y, r, t0.Sub(c).Angle(), t1.Sub(c).Angle(), ccw)
}

// Rect starts a new closed sub-path tracing the rectangle at (x,y) with size
// (w,h). No duplicate closing vertex is appended, the closed flag marks the
// loop back to (x,y).
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	sp := p.activeSubPath()
	sp.verts = append(sp.verts, Point{x + w, y}, Point{x + w, y + h}, Point{x, y + h})
	sp.closed = true
	p.markDirty(sp)
}

// Close marks the active sub-path closed, appending a duplicate of its first
// vertex when the first and last vertex do not already coincide. Closing twice
// appends that vertex at most once.
func (p *Path) Close() error {
	sp := p.activeSubPath()
	if sp == nil || len(sp.verts) == 0 {
		return ErrEmptyGeometry
	}
	if !sp.verts[0].Equals(sp.verts[len(sp.verts)-1]) {
		sp.verts = append(sp.verts, sp.verts[0])
		sp.closed = true
		p.markDirty(sp)
	} else if !sp.closed {
		sp.closed = true
		p.markDirty(sp)
	}
	return nil
}

// Clear removes all sub-paths.
func (p *Path) Clear() {
	p.subpaths = p.subpaths[:0]
	p.active = -1
	p.markDirty(nil)
}

// Translate moves all vertices by (dx,dy).
func (p *Path) Translate(dx, dy float64) {
	for _, sp := range p.subpaths {
		for i := range sp.verts {
			sp.verts[i].X += dx
			sp.verts[i].Y += dy
		}
		sp.dirty = true
	}
	p.markDirty(nil)
}

// Append appends deep copies of all sub-paths of q, the last one becoming the
// active sub-path. Appended vertices keep their sampled positions, q's
// configuration is not consulted.
func (p *Path) Append(q *Path) {
	if q == nil || len(q.subpaths) == 0 {
		return
	}
	for _, sq := range q.subpaths {
		sp := &SubPath{
			verts:  append([]Point(nil), sq.verts...),
			kind:   sq.kind,
			closed: sq.closed,
			dirty:  true,
		}
		p.subpaths = append(p.subpaths, sp)
	}
	p.active = len(p.subpaths) - 1
	p.markDirty(nil)
}

////////////////////////////////////////////////////////////////

// CreateSubPathAt inserts a new sub-path starting at (x,y) before index i and
// makes it active. i may equal Len to append at the end.
func (p *Path) CreateSubPathAt(i int, x, y float64) error {
	if i < 0 || len(p.subpaths) < i {
		return fmt.Errorf("%w: sub-path %d", ErrIndexRange, i)
	}
	sp := &SubPath{verts: []Point{{x, y}}, kind: KindLine, dirty: true}
	p.subpaths = append(p.subpaths, nil)
	copy(p.subpaths[i+1:], p.subpaths[i:])
	p.subpaths[i] = sp
	p.active = i
	p.markDirty(sp)
	return nil
}

// RemoveSubPathAt removes the sub-path at index i. When it was active, no
// sub-path is active afterwards.
func (p *Path) RemoveSubPathAt(i int) error {
	if i < 0 || len(p.subpaths) <= i {
		return fmt.Errorf("%w: sub-path %d", ErrIndexRange, i)
	}
	p.subpaths = append(p.subpaths[:i], p.subpaths[i+1:]...)
	if p.active == i {
		p.active = -1
	} else if i < p.active {
		p.active--
	}
	p.markDirty(nil)
	return nil
}

// ClearSubPathAt removes all vertices of the sub-path at index i, keeping the
// sub-path itself in place.
func (p *Path) ClearSubPathAt(i int) error {
	if i < 0 || len(p.subpaths) <= i {
		return fmt.Errorf("%w: sub-path %d", ErrIndexRange, i)
	}
	sp := p.subpaths[i]
	sp.verts = sp.verts[:0]
	sp.closed = false
	p.markDirty(sp)
	return nil
}

// SelectSubPathAt makes the sub-path at index i the active one, so that
// subsequent primitives append to it.
func (p *Path) SelectSubPathAt(i int) error {
	if i < 0 || len(p.subpaths) <= i {
		return fmt.Errorf("%w: sub-path %d", ErrIndexRange, i)
	}
	p.active = i
	return nil
}

////////////////////////////////////////////////////////////////

func quadraticBezierPos(p0, p1, p2 Point, t float64) Point {
	p0 = p0.Mul((1.0 - t) * (1.0 - t))
	p1 = p1.Mul(2.0 * t * (1.0 - t))
	p2 = p2.Mul(t * t)
	return p0.Add(p1).Add(p2)
}

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul((1.0 - t) * (1.0 - t) * (1.0 - t))
	p1 = p1.Mul(3.0 * t * (1.0 - t) * (1.0 - t))
	p2 = p2.Mul(3.0 * t * t * (1.0 - t))
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}
