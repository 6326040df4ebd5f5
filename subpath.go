package pathlen

// SubPathInfo is a read-only snapshot of one sub-path, exposing the structural
// information an external serializer needs: vertex order, interpolation kind,
// the closed flag and the arclength tables. The snapshot owns its coordinates,
// later mutations of the path do not write through.
type SubPathInfo struct {
	coords []Point
	kind   Kind
	closed bool
	length float64
	offset float64
}

// Coords returns the ordered vertices of the sub-path.
func (s SubPathInfo) Coords() []Point {
	return s.coords
}

// Kind returns the interpolation family of the sub-path.
func (s SubPathInfo) Kind() Kind {
	return s.kind
}

// Closed returns true if the sub-path loops back to its first vertex.
func (s SubPathInfo) Closed() bool {
	return s.closed
}

// Length returns the total arclength of the sub-path.
func (s SubPathInfo) Length() float64 {
	return s.length
}

// Offset returns the global arclength at which the sub-path starts, ie. the
// sum of the total lengths of all prior sub-paths.
func (s SubPathInfo) Offset() float64 {
	return s.offset
}

// SubPaths returns a consistent snapshot of all sub-paths in order.
func (p *Path) SubPaths() []SubPathInfo {
	p.update()
	infos := make([]SubPathInfo, len(p.subpaths))
	for i, sp := range p.subpaths {
		infos[i] = SubPathInfo{
			coords: append([]Point(nil), sp.verts...),
			kind:   sp.kind,
			closed: sp.closed,
			length: sp.length,
			offset: sp.offset,
		}
	}
	return infos
}
