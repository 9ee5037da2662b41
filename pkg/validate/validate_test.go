package validate

import (
	"fmt"
	gomath "math"
	"reflect"
	"slices"
	"testing"

	"github.com/Faultbox/meshlint/pkg/math"
	"github.com/Faultbox/meshlint/pkg/mesh"
)

const windingMessage = "Face %d has an incorrect winding. This usually indicates coinciding vertices, " +
	"a concave or complex polygon, or a non-planar face. Line number: %d."

func fmtWinding(face, line int) string {
	return fmt.Sprintf(windingMessage, face, line)
}

func vertices(points ...math.Vector3f) []mesh.Vertex {
	vs := make([]mesh.Vertex, len(points))
	for i, p := range points {
		vs[i] = mesh.Vertex{Position: p, Color: math.White}
	}
	return vs
}

func singleFace(line int, indices []int, points ...math.Vector3f) *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: vertices(points...),
		Faces:    []mesh.Face{{Vertices: indices, LineNumber: line}},
	}
}

func check(m *mesh.Mesh) []string {
	var log Log
	n := CheckFaces(m, &log)
	if n != log.Count() {
		panic("CheckFaces count disagrees with sink")
	}
	return log.Entries()
}

// regularPolygon places n points on a circle in the plane of frame o,
// counter-clockwise around o.Z.
func regularPolygon(n int, center math.Vector3d, radius float64, o math.Orientation3d) []math.Vector3f {
	points := make([]math.Vector3f, n)
	for k := range n {
		a := math.Angle(2 * gomath.Pi * float64(k) / float64(n))
		p := center.Add(o.X.Scale(radius * a.X)).Add(o.Y.Scale(radius * a.Y))
		points[k] = p.ToVector3f()
	}
	return points
}

func TestTriangleHasNoProblems(t *testing.T) {
	m := singleFace(5, []int{0, 1, 2},
		math.Vector3f{X: 0, Y: 0, Z: 0},
		math.Vector3f{X: 1, Y: 0, Z: 0},
		math.Vector3f{X: 0, Y: 1, Z: 0},
	)
	if got := check(m); len(got) != 0 {
		t.Errorf("triangle reported %v", got)
	}

	m.Vertices[2].Position = math.Vector3f{X: 0, Y: 0, Z: 5}
	if got := check(m); len(got) != 0 {
		t.Errorf("tilted triangle reported %v", got)
	}

	// Collinear triangles project to zero turns everywhere and still pass.
	m.Vertices[2].Position = math.Vector3f{X: 2, Y: 0, Z: 0}
	if got := check(m); len(got) != 0 {
		t.Errorf("collinear triangle reported %v", got)
	}
}

func TestTooFewVertices(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
	}{
		{"two", []int{0, 1}},
		{"one", []int{0}},
		{"none", nil},
		{"two out of range", []int{7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := singleFace(3, tt.indices,
				math.Vector3f{X: 0}, math.Vector3f{X: 1}, math.Vector3f{Y: 1})
			got := check(m)
			want := []string{"Face 1 has less than 3 vertices."}
			if !slices.Equal(got, want) {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestNonPlanarQuad(t *testing.T) {
	// The fourth vertex is lifted far out of the plane and pulled inside
	// the triangle of the other three, turning the projected quad concave.
	m := singleFace(12, []int{0, 1, 2, 3},
		math.Vector3f{X: 0, Y: 0, Z: 0},
		math.Vector3f{X: 1, Y: 0, Z: 0},
		math.Vector3f{X: 1, Y: 1, Z: 0},
		math.Vector3f{X: 0.9, Y: 0.2, Z: 5},
	)
	got := check(m)
	want := []string{"Face 1 has an incorrect winding. This usually indicates coinciding vertices, a concave or complex polygon, or a non-planar face. Line number: 12."}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOutOfPlaneConvexProjectionPasses(t *testing.T) {
	// Lifting a vertex straight along the normal leaves the projection
	// convex, so the sign heuristic does not see it.
	m := singleFace(1, []int{0, 1, 2, 3},
		math.Vector3f{X: 0, Y: 0, Z: 0},
		math.Vector3f{X: 1, Y: 0, Z: 0},
		math.Vector3f{X: 1, Y: 1, Z: 0},
		math.Vector3f{X: 0, Y: 1, Z: 100},
	)
	if got := check(m); len(got) != 0 {
		t.Errorf("got %q, want no problems", got)
	}
}

func TestConvexPolygonsAnyPlacement(t *testing.T) {
	frames := []math.Orientation3d{
		math.DefaultOrientation3[float64](),
		{X: math.Vector3d{X: 1, Y: 2, Z: 3}, Y: math.Vector3d{X: -1, Y: 0.5, Z: 2}, Z: math.Vector3d{Z: 1}},
		{X: math.Vector3d{X: 0.1, Y: -0.9, Z: 0.2}, Z: math.Vector3d{X: 1, Y: 1, Z: 1}},
		{Y: math.Vector3d{X: 0, Y: 0, Z: 1}, Z: math.Vector3d{X: 1}},
	}
	centers := []math.Vector3d{
		{},
		{X: 100, Y: -40, Z: 7},
		{X: -3, Y: 1000, Z: 0.5},
	}

	for _, n := range []int{5, 6, 9} {
		for fi, f := range frames {
			o := f.Orthonormalize()
			for _, c := range centers {
				points := regularPolygon(n, c, 2, o)
				indices := make([]int, n)
				for i := range indices {
					indices[i] = i
				}
				m := singleFace(1, indices, points...)
				if got := check(m); len(got) != 0 {
					t.Errorf("%d-gon in frame %d at %v: %q", n, fi, c, got)
				}

				// Clockwise order is equally consistent.
				slices.Reverse(m.Faces[0].Vertices)
				if got := check(m); len(got) != 0 {
					t.Errorf("reversed %d-gon in frame %d at %v: %q", n, fi, c, got)
				}
			}
		}
	}
}

func TestBowtie(t *testing.T) {
	square := []math.Vector3f{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	m := singleFace(21, []int{0, 1, 2, 3}, square...)
	if got := check(m); len(got) != 0 {
		t.Fatalf("square reported %q", got)
	}

	m.Faces[0].Vertices = []int{0, 1, 3, 2}
	got := check(m)
	if len(got) != 1 || got[0] != fmtWinding(1, 21) {
		t.Errorf("bowtie got %q", got)
	}
}

func TestConvexPentagonWithSwappedVertices(t *testing.T) {
	points := regularPolygon(5, math.Vector3d{X: 1, Y: 2, Z: 3}, 1, math.DefaultOrientation3[float64]())
	m := singleFace(8, []int{0, 1, 3, 2, 4}, points...)
	if got := Problems(m); len(got) != 1 || got[0].Kind != IncorrectWinding {
		t.Errorf("Problems() = %+v, want one incorrect winding", got)
	}
}

func TestCoincidingVertices(t *testing.T) {
	m := singleFace(4, []int{0, 1, 2, 2, 3},
		math.Vector3f{X: 0, Y: 0, Z: 0},
		math.Vector3f{X: 1, Y: 0, Z: 0},
		math.Vector3f{X: 1, Y: 1, Z: 0},
		math.Vector3f{X: 0, Y: 1, Z: 0},
	)
	got := check(m)
	if len(got) != 1 || got[0] != fmtWinding(1, 4) {
		t.Errorf("got %q", got)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	m := singleFace(9, []int{0, 1, 2, 5},
		math.Vector3f{X: 0}, math.Vector3f{X: 1}, math.Vector3f{Y: 1})
	got := check(m)
	want := []string{"Face 1 references vertex 5, which does not exist. Line number: 9."}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	m.Faces[0].Vertices = []int{0, -1, 2}
	problems := Problems(m)
	if len(problems) != 1 || problems[0].Kind != IndexOutOfRange || problems[0].Vertex != -1 {
		t.Errorf("Problems() = %+v", problems)
	}
}

func TestMultipleFaces(t *testing.T) {
	m := &mesh.Mesh{
		Vertices: vertices(
			math.Vector3f{X: 0, Y: 0, Z: 0},
			math.Vector3f{X: 1, Y: 0, Z: 0},
			math.Vector3f{X: 1, Y: 1, Z: 0},
			math.Vector3f{X: 0, Y: 1, Z: 0},
			math.Vector3f{X: 0.5, Y: 0.5, Z: 0},
		),
		Faces: []mesh.Face{
			{Vertices: []int{0, 1, 2, 3}, LineNumber: 10},
			{Vertices: []int{0, 1}, LineNumber: 11},
			{Vertices: []int{0, 1, 4, 2, 3}, LineNumber: 12},
			{Vertices: []int{0, 2, 1, 3}, LineNumber: 13},
			{Vertices: []int{3, 2, 1, 0}, LineNumber: 14},
		},
	}
	before := &mesh.Mesh{
		Vertices: slices.Clone(m.Vertices),
		Faces:    make([]mesh.Face, len(m.Faces)),
	}
	for i, f := range m.Faces {
		f.Vertices = slices.Clone(f.Vertices)
		before.Faces[i] = f
	}

	var log Log
	if n := CheckFaces(m, &log); n != 3 {
		t.Errorf("CheckFaces() = %d, want 3", n)
	}
	want := []string{
		"Face 2 has less than 3 vertices.",
		fmtWinding(3, 12),
		fmtWinding(4, 13),
	}
	if !slices.Equal(log.Entries(), want) {
		t.Errorf("entries = %q, want %q", log.Entries(), want)
	}
	if !reflect.DeepEqual(m, before) {
		t.Error("validation modified the mesh")
	}
}

func TestEmptyMesh(t *testing.T) {
	var log Log
	if n := CheckFaces(&mesh.Mesh{}, &log); n != 0 || !log.Empty() || log.String() != "" {
		t.Errorf("empty mesh produced %d entries: %q", n, log.String())
	}
}

func TestLog(t *testing.T) {
	var log Log
	log.Add("a")
	log.Add("b")
	if log.Count() != 2 || log.Empty() {
		t.Errorf("Count() = %d", log.Count())
	}
	if log.String() != "a\nb" {
		t.Errorf("String() = %q", log.String())
	}
}

func TestKindString(t *testing.T) {
	if IncorrectWinding.String() != "incorrect-winding" {
		t.Errorf("IncorrectWinding.String() = %q", IncorrectWinding.String())
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}
