// Package validate checks the faces of a mesh for structural and winding
// problems and reports them as human-readable messages.
//
// Each face is projected onto a plane built from its first three vertices
// and the turn direction at every vertex is compared with the turn at the
// first vertex. A change of sign marks coinciding vertices, concave or
// self-intersecting polygons, and faces far enough from planar to distort
// the projection. Only signs are compared, never magnitudes, so the check
// is a heuristic: triangles always pass.
package validate

import (
	"fmt"

	"github.com/Faultbox/meshlint/pkg/math"
	"github.com/Faultbox/meshlint/pkg/mesh"
)

// Kind classifies a problem.
type Kind int

const (
	TooFewVertices   Kind = iota + 1 // Face has fewer than three vertices
	IncorrectWinding                 // Turn direction changes within the face
	IndexOutOfRange                  // Face references a missing vertex
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case TooFewVertices:
		return "too-few-vertices"
	case IncorrectWinding:
		return "incorrect-winding"
	case IndexOutOfRange:
		return "index-out-of-range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Problem is a defect found in one face.
type Problem struct {
	Kind   Kind
	Face   int // 1-based position in Mesh.Faces
	Line   int // Face.LineNumber
	Vertex int // Offending vertex index for IndexOutOfRange
}

// Message formats the problem the way it is reported to users.
func (p Problem) Message() string {
	switch p.Kind {
	case TooFewVertices:
		return fmt.Sprintf("Face %d has less than 3 vertices.", p.Face)
	case IncorrectWinding:
		return fmt.Sprintf("Face %d has an incorrect winding. This usually indicates coinciding vertices, "+
			"a concave or complex polygon, or a non-planar face. Line number: %d.", p.Face, p.Line)
	case IndexOutOfRange:
		return fmt.Sprintf("Face %d references vertex %d, which does not exist. Line number: %d.", p.Face, p.Vertex, p.Line)
	default:
		return fmt.Sprintf("Face %d: %s. Line number: %d.", p.Face, p.Kind, p.Line)
	}
}

// Problems checks every face of m and returns at most one problem per
// face, in face order. m is not modified.
func Problems(m *mesh.Mesh) []Problem {
	var problems []Problem
	for i, f := range m.Faces {
		if p, ok := checkFace(m, f); ok {
			p.Face = i + 1
			problems = append(problems, p)
		}
	}
	return problems
}

// CheckFaces adds one message per problem to sink and returns how many
// were added.
func CheckFaces(m *mesh.Mesh, sink Sink) int {
	problems := Problems(m)
	for _, p := range problems {
		sink.Add(p.Message())
	}
	return len(problems)
}

func checkFace(m *mesh.Mesh, f mesh.Face) (Problem, bool) {
	n := len(f.Vertices)
	if n <= 2 {
		return Problem{Kind: TooFewVertices, Line: f.LineNumber}, true
	}
	for _, v := range f.Vertices {
		if !m.InRange(v) {
			return Problem{Kind: IndexOutOfRange, Line: f.LineNumber, Vertex: v}, true
		}
	}
	if !consistentWinding(project(m, f)) {
		return Problem{Kind: IncorrectWinding, Line: f.LineNumber}, true
	}
	return Problem{}, false
}

// project maps the face's vertices onto the plane spanned by its first
// edge and the component of its second edge perpendicular to it, with the
// first vertex at the origin. The basis does not require a planar face.
func project(m *mesh.Mesh, f mesh.Face) []math.Vector2f {
	a := m.Position(f.Vertices[0])
	ab := m.Position(f.Vertices[1]).Sub(a)
	ac := m.Position(f.Vertices[2]).Sub(a)
	dx := ab.Normalize()
	dy := ab.Cross(ac).Cross(ab).Normalize()

	points := make([]math.Vector2f, len(f.Vertices))
	for i, v := range f.Vertices {
		p := m.Position(v).Sub(a)
		points[i] = math.Vector2f{X: p.Dot(dx), Y: p.Dot(dy)}
	}
	return points
}

// consistentWinding reports whether the turn at every vertex of the
// closed polygon has the same sign as the turn at the first vertex. A
// zero turn is its own sign.
func consistentWinding(points []math.Vector2f) bool {
	n := len(points)
	reference := turn(points[n-1], points[0], points[1])
	for i := 1; i < n; i++ {
		if turn(points[i-1], points[i], points[(i+1)%n]) != reference {
			return false
		}
	}
	return true
}

func turn(prev, cur, next math.Vector2f) int {
	return math.Sign(cur.Sub(prev).PerpDot(next.Sub(cur)))
}
