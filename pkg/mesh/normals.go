package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshlint/pkg/math"
)

// FaceNormal returns the unit normal of face f using Newell's method, which
// tolerates non-planar and concave polygons. ok is false when the face is
// degenerate, references a missing vertex, or has zero area.
func (m *Mesh) FaceNormal(f Face) (n math.Vector3f, ok bool) {
	if f.Degenerate() {
		return math.Vector3f{}, false
	}
	for _, v := range f.Vertices {
		if !m.InRange(v) {
			return math.Vector3f{}, false
		}
	}
	n = m.newell(f).Normalize()
	return n, !n.IsZero()
}

// newell returns twice the area vector of the face.
func (m *Mesh) newell(f Face) math.Vector3f {
	var n math.Vector3f
	count := len(f.Vertices)
	for i, v := range f.Vertices {
		a := m.Position(v)
		b := m.Position(f.Vertices[(i+1)%count])
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// ComputeNormals replaces every vertex normal with the area-weighted
// average of the normals of the faces using it. Faces FaceNormal rejects
// contribute nothing. Vertices no face uses get a zero normal.
func (m *Mesh) ComputeNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Vector3f{}
	}
	for _, f := range m.Faces {
		if _, ok := m.FaceNormal(f); !ok {
			continue
		}
		area := m.newell(f)
		for _, v := range f.Vertices {
			m.Vertices[v].Normal = m.Vertices[v].Normal.Add(area)
		}
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// SmoothNormals averages normals of vertices sharing a position, to within
// epsilon, so split vertices along a seam shade as one.
func (m *Mesh) SmoothNormals(epsilon float32) {
	// Group vertices by quantized position for O(n) lookup
	groups := make(map[[3]int64][]int)
	for i, v := range m.Vertices {
		key := [3]int64{
			quantize(v.Position.X, epsilon),
			quantize(v.Position.Y, epsilon),
			quantize(v.Position.Z, epsilon),
		}
		groups[key] = append(groups[key], i)
	}

	for _, idxs := range groups {
		if len(idxs) < 2 {
			continue
		}
		var sum math.Vector3f
		for _, i := range idxs {
			sum = sum.Add(m.Vertices[i].Normal)
		}
		avg := sum.Normalize()
		for _, i := range idxs {
			m.Vertices[i].Normal = avg
		}
	}
}

// maxCell keeps quantized coordinates inside int64.
const maxCell = 1 << 62

// quantize returns the index of the epsilon-wide cell holding x. Cells are
// half-open [k*epsilon, (k+1)*epsilon), so zero does not get a double-width
// cell. NaN maps to cell 0.
func quantize(x, epsilon float32) int64 {
	if math32.IsNaN(x) {
		return 0
	}
	cell := math32.Floor(x / epsilon)
	return int64(min(max(cell, -maxCell), maxCell))
}
