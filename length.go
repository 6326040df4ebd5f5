package pathlen

// update brings all derived tables to a consistent state. Sub-paths that are
// not dirty only advance the running global offset by their cached total
// length, so repeated queries after a single mutation cost O(affected
// sub-path), not O(whole path).
func (p *Path) update() {
	if !p.dirty {
		return
	}
	offset := 0.0
	for _, sp := range p.subpaths {
		if sp.dirty {
			if p.opts.ComputeTangentsAndNormals {
				sp.refreshWithTangents()
			} else {
				sp.refresh()
			}
			sp.dirty = false
		}
		sp.offset = offset
		offset += sp.length
	}
	p.length = offset
	p.dirty = false
}

// refresh recomputes segment lengths, offsets and the total length in a single
// pass over the vertices.
func (sp *SubPath) refresh() {
	n := len(sp.verts)
	sp.lengths = resizeFloats(sp.lengths, max(n-1, 0))
	sp.offsets = resizeFloats(sp.offsets, max(n-1, 0))
	sp.tangents = nil
	sp.normals = nil

	d := 0.0
	for i := 0; i+1 < n; i++ {
		sp.offsets[i] = d
		sp.lengths[i] = sp.verts[i+1].Sub(sp.verts[i]).Length()
		d += sp.lengths[i]
	}
	sp.length = d
}

// refreshWithTangents is the variant of refresh that also fills the per-vertex
// unit tangents and normals. The tangent of a zero-length segment is the zero
// vector, and the last vertex copies the values of the preceding segment.
func (sp *SubPath) refreshWithTangents() {
	n := len(sp.verts)
	sp.lengths = resizeFloats(sp.lengths, max(n-1, 0))
	sp.offsets = resizeFloats(sp.offsets, max(n-1, 0))
	sp.tangents = resizePoints(sp.tangents, n)
	sp.normals = resizePoints(sp.normals, n)

	d := 0.0
	for i := 0; i+1 < n; i++ {
		sp.offsets[i] = d
		dir := sp.verts[i+1].Sub(sp.verts[i])
		sp.lengths[i] = dir.Length()
		d += sp.lengths[i]

		tangent := dir.Norm(1.0)
		sp.tangents[i] = tangent
		sp.normals[i] = tangent.Rot90CCW()
	}
	sp.length = d
	if 1 < n {
		sp.tangents[n-1] = sp.tangents[n-2]
		sp.normals[n-1] = sp.normals[n-2]
	} else if n == 1 {
		sp.tangents[0] = Point{}
		sp.normals[0] = Point{}
	}
}

func resizeFloats(fs []float64, n int) []float64 {
	if cap(fs) < n {
		return make([]float64, n)
	}
	return fs[:n]
}

func resizePoints(ps []Point, n int) []Point {
	if cap(ps) < n {
		return make([]Point, n)
	}
	return ps[:n]
}

// TotalLength returns the arclength of the whole path, ie. the sum of the
// total lengths of all sub-paths.
func (p *Path) TotalLength() float64 {
	p.update()
	return p.length
}
