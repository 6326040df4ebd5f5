package pathlen

import (
	"fmt"
	"math"
)

// Projection is the closest location on a segment, sub-path or path to a query
// point. Every call returns a freshly owned Projection.
type Projection struct {
	Point    Point   // projected point
	Distance float64 // Euclidean distance from the query point
	Length   float64 // global arclength of the projected point
	SubPath  int
	Segment  int
}

// NearestOnSegment projects the query point onto the segment seg of sub-path
// sub and returns the clamped projection with its distance and global
// arclength.
func (p *Path) NearestOnSegment(q Point, sub, seg int) (Projection, error) {
	p.update()
	if sub < 0 || len(p.subpaths) <= sub {
		return Projection{}, fmt.Errorf("%w: sub-path %d", ErrIndexRange, sub)
	}
	sp := p.subpaths[sub]
	if seg < 0 || len(sp.lengths) <= seg {
		return Projection{}, fmt.Errorf("%w: segment %d of sub-path %d", ErrIndexRange, seg, sub)
	}
	pr := sp.project(q, seg)
	pr.SubPath = sub
	return pr, nil
}

// NearestOnSubPath projects the query point onto every segment of sub-path
// sub in index order and returns the minimum-distance projection. On an exact
// distance tie the earlier segment wins.
func (p *Path) NearestOnSubPath(q Point, sub int) (Projection, error) {
	p.update()
	if sub < 0 || len(p.subpaths) <= sub {
		return Projection{}, fmt.Errorf("%w: sub-path %d", ErrIndexRange, sub)
	}
	sp := p.subpaths[sub]
	if len(sp.lengths) == 0 {
		return Projection{}, fmt.Errorf("%w: sub-path %d has no segments", ErrEmptyGeometry, sub)
	}
	pr := sp.projectAll(q)
	pr.SubPath = sub
	return pr, nil
}

// Nearest projects the query point onto every sub-path in order and returns
// the minimum-distance projection across the whole path. On an exact distance
// tie the earlier sub-path wins. The scan is linear in the total vertex
// count, there is no spatial index.
func (p *Path) Nearest(q Point) (Projection, error) {
	p.update()
	best := Projection{Distance: math.Inf(1)}
	found := false
	for i, sp := range p.subpaths {
		if len(sp.lengths) == 0 {
			continue
		}
		pr := sp.projectAll(q)
		if pr.Distance < best.Distance {
			pr.SubPath = i
			best = pr
			found = true
		}
	}
	if !found {
		return Projection{}, ErrEmptyGeometry
	}
	return best, nil
}

// project returns the clamped projection of q onto segment seg.
func (sp *SubPath) project(q Point, seg int) Projection {
	start, end := sp.verts[seg], sp.verts[seg+1]
	dir := end.Sub(start)
	dd := dir.Dot(dir)
	t := 0.0
	if dd != 0.0 {
		t = math.Max(0.0, math.Min(1.0, q.Sub(start).Dot(dir)/dd))
	}
	point := start.Interpolate(end, t)
	return Projection{
		Point:    point,
		Distance: q.Sub(point).Length(),
		Length:   sp.offset + sp.offsets[seg] + point.Sub(start).Length(),
		Segment:  seg,
	}
}

// projectAll scans all segments in index order, keeping the first projection
// with the minimum distance.
func (sp *SubPath) projectAll(q Point) Projection {
	best := sp.project(q, 0)
	for seg := 1; seg < len(sp.lengths); seg++ {
		if pr := sp.project(q, seg); pr.Distance < best.Distance {
			best = pr
		}
	}
	return best
}
