// Package mesh holds the polygon mesh consumed by the face validator.
package mesh

import "github.com/Faultbox/meshlint/pkg/math"

// Vertex is a mesh vertex with position, normal, texture coordinate and colour.
type Vertex struct {
	Position math.Vector3f
	Normal   math.Vector3f
	TexCoord math.Vector2f
	Color    math.Color24
}

// Face is a polygon given by indices into the mesh's vertex array.
type Face struct {
	Vertices   []int // Indices into Mesh.Vertices, in winding order
	Material   int   // Material index
	LineNumber int   // 1-based line in the source file, for diagnostics
}

// Degenerate reports whether the face has fewer than three vertices.
func (f Face) Degenerate() bool {
	return len(f.Vertices) < 3
}

// Mesh is a vertex array and the faces built from it.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vector3f
	Max math.Vector3f
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() math.Vector3f {
	return b.Max.Sub(b.Min)
}

// Bounds returns the bounding box of all vertex positions. ok is false
// when the mesh has no vertices.
func (m *Mesh) Bounds() (b Bounds, ok bool) {
	if len(m.Vertices) == 0 {
		return Bounds{}, false
	}
	b.Min = m.Vertices[0].Position
	b.Max = b.Min
	for _, v := range m.Vertices[1:] {
		p := v.Position
		b.Min = math.Vector3f{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vector3f{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b, true
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) math.Vector3f {
	return m.Vertices[i].Position
}

// InRange reports whether i is a valid vertex index.
func (m *Mesh) InRange(i int) bool {
	return i >= 0 && i < len(m.Vertices)
}
