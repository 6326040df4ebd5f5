package pathlen

// lengthMemo caches the last resolved arclength lookup. It is only valid
// while the path stays clean, every mutation invalidates it.
type lengthMemo struct {
	valid  bool
	length float64
	sub    int
	seg    int
	ratio  float64
}

// locate maps an arclength to (sub-path index, segment index, interpolation
// ratio). Lengths at or below zero clamp to the first segment of the first
// non-empty sub-path, lengths at or beyond the total length to the last
// segment of the last non-empty sub-path.
func (p *Path) locate(length float64) (int, int, float64, error) {
	p.update()
	if p.memo.valid && p.memo.length == length {
		return p.memo.sub, p.memo.seg, p.memo.ratio, nil
	}

	first, last := -1, -1
	for i, sp := range p.subpaths {
		if 0 < len(sp.verts) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return 0, 0, 0.0, ErrEmptyGeometry
	}

	sub, seg, ratio := first, 0, 0.0
	if length <= 0.0 {
		// clamped at the start
	} else if p.length <= length {
		sub = last
		sp := p.subpaths[last]
		seg = max(len(sp.lengths)-1, 0)
		if 0 < len(sp.lengths) {
			ratio = 1.0
		}
	} else {
		for i := first; i <= last; i++ {
			sp := p.subpaths[i]
			if len(sp.verts) == 0 {
				continue
			}
			if length < sp.offset+sp.length || i == last {
				sub = i
				seg, ratio = sp.segmentAt(length - sp.offset)
				break
			}
		}
	}
	p.memo = lengthMemo{valid: true, length: length, sub: sub, seg: seg, ratio: ratio}
	return sub, seg, ratio, nil
}

// segmentAt scans the segment lengths with a remaining-length counter until
// the counter no longer exceeds the current segment's length. The ratio of a
// zero-length segment is zero, never NaN.
func (sp *SubPath) segmentAt(rem float64) (int, float64) {
	for i, l := range sp.lengths {
		if rem <= l {
			if l == 0.0 {
				return i, 0.0
			}
			return i, rem / l
		}
		rem -= l
	}
	if len(sp.lengths) == 0 {
		return 0, 0.0
	}
	return len(sp.lengths) - 1, 1.0
}

// position interpolates linearly between the two endpoint vertices of the
// given segment. A sub-path holding a single vertex returns that vertex.
func (sp *SubPath) position(seg int, ratio float64) Point {
	if len(sp.verts) == 1 {
		return sp.verts[0]
	}
	return sp.verts[seg].Interpolate(sp.verts[seg+1], ratio)
}

// PointAtLength returns the position on the path at the given arclength,
// clamped to the path boundaries.
func (p *Path) PointAtLength(length float64) (Point, error) {
	sub, seg, ratio, err := p.locate(length)
	if err != nil {
		return Point{}, err
	}
	return p.subpaths[sub].position(seg, ratio), nil
}

// TangentAtLength returns the unit tangent on the path at the given
// arclength. The tangent of the segment's start vertex is used as is, without
// interpolation. It returns ErrCapability when tangent computation is
// disabled.
func (p *Path) TangentAtLength(length float64) (Point, error) {
	if !p.opts.ComputeTangentsAndNormals {
		return Point{}, ErrCapability
	}
	sub, seg, _, err := p.locate(length)
	if err != nil {
		return Point{}, err
	}
	return p.subpaths[sub].tangents[seg], nil
}

// NormalAtLength returns the unit normal on the path at the given arclength,
// ie. the tangent rotated 90 degrees CCW. It returns ErrCapability when
// tangent computation is disabled.
func (p *Path) NormalAtLength(length float64) (Point, error) {
	if !p.opts.ComputeTangentsAndNormals {
		return Point{}, ErrCapability
	}
	sub, seg, _, err := p.locate(length)
	if err != nil {
		return Point{}, err
	}
	return p.subpaths[sub].normals[seg], nil
}

// PointTangentNormalAtLength returns position, unit tangent and unit normal
// on the path at the given arclength in one lookup.
func (p *Path) PointTangentNormalAtLength(length float64) (Point, Point, Point, error) {
	if !p.opts.ComputeTangentsAndNormals {
		return Point{}, Point{}, Point{}, ErrCapability
	}
	sub, seg, ratio, err := p.locate(length)
	if err != nil {
		return Point{}, Point{}, Point{}, err
	}
	sp := p.subpaths[sub]
	return sp.position(seg, ratio), sp.tangents[seg], sp.normals[seg], nil
}
