package mesh

// Mesh documents are a small YAML fixture format for meshes:
//
//	vertices:
//	  - position: [0, 0, 0]
//	    normal: [0, 0, 1]
//	    texcoord: [0, 0]
//	    color: [255, 255, 255]
//	faces:
//	  - vertices: [0, 1, 2]
//	    material: 0
//	    line: 5
//
// Only position and the face vertex list are required. A face without a
// line takes the line it starts on in the document; an explicit line,
// including 0, is kept as written.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshlint/pkg/math"
)

// Mesh document errors.
var (
	ErrVectorArity = errors.New("wrong number of vector components")
	ErrColorRange  = errors.New("colour component outside 0..255")
)

type document struct {
	Vertices []vertexDoc `yaml:"vertices"`
	Faces    []faceDoc   `yaml:"faces"`
}

type vertexDoc struct {
	Position []float32 `yaml:"position,flow"`
	Normal   []float32 `yaml:"normal,flow,omitempty"`
	TexCoord []float32 `yaml:"texcoord,flow,omitempty"`
	Color    []int     `yaml:"color,flow,omitempty"`
}

type faceDoc struct {
	Vertices []int `yaml:"vertices,flow"`
	Material int   `yaml:"material,omitempty"`
	Line     *int  `yaml:"line,omitempty"`
}

// Load reads a mesh document from disk.
func Load(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseDocument decodes a mesh document. Unknown keys are rejected.
func ParseDocument(data []byte) (*Mesh, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Mesh{}, nil
		}
		return nil, fmt.Errorf("decoding mesh document: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding mesh document: %w", err)
	}
	lines := faceLines(&root)

	m := &Mesh{
		Vertices: make([]Vertex, len(doc.Vertices)),
		Faces:    make([]Face, len(doc.Faces)),
	}
	for i, vd := range doc.Vertices {
		v, err := vd.vertex()
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		m.Vertices[i] = v
	}
	for i, fd := range doc.Faces {
		var line int
		switch {
		case fd.Line != nil:
			line = *fd.Line
		case i < len(lines):
			line = lines[i]
		}
		m.Faces[i] = Face{
			Vertices:   fd.Vertices,
			Material:   fd.Material,
			LineNumber: line,
		}
	}
	return m, nil
}

// faceLines returns the source line of every entry of the top-level
// faces sequence.
func faceLines(root *yaml.Node) []int {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		if key.Value != "faces" || value.Kind != yaml.SequenceNode {
			continue
		}
		lines := make([]int, len(value.Content))
		for j, item := range value.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}

func (vd vertexDoc) vertex() (Vertex, error) {
	v := Vertex{Color: math.White}

	if len(vd.Position) != 3 {
		return v, fmt.Errorf("position has %d components: %w", len(vd.Position), ErrVectorArity)
	}
	v.Position = math.Vector3f{X: vd.Position[0], Y: vd.Position[1], Z: vd.Position[2]}

	switch len(vd.Normal) {
	case 0:
	case 3:
		v.Normal = math.Vector3f{X: vd.Normal[0], Y: vd.Normal[1], Z: vd.Normal[2]}
	default:
		return v, fmt.Errorf("normal has %d components: %w", len(vd.Normal), ErrVectorArity)
	}

	switch len(vd.TexCoord) {
	case 0:
	case 2:
		v.TexCoord = math.Vector2f{X: vd.TexCoord[0], Y: vd.TexCoord[1]}
	default:
		return v, fmt.Errorf("texcoord has %d components: %w", len(vd.TexCoord), ErrVectorArity)
	}

	switch len(vd.Color) {
	case 0:
	case 3:
		for _, c := range vd.Color {
			if c < 0 || c > 255 {
				return v, fmt.Errorf("color %v: %w", vd.Color, ErrColorRange)
			}
		}
		v.Color = math.Color24{R: uint8(vd.Color[0]), G: uint8(vd.Color[1]), B: uint8(vd.Color[2])}
	default:
		return v, fmt.Errorf("color has %d components: %w", len(vd.Color), ErrVectorArity)
	}

	return v, nil
}

// Encode writes m as a mesh document. Zero normals and texture
// coordinates and white vertex colours are omitted.
func Encode(w io.Writer, m *Mesh) error {
	doc := document{
		Vertices: make([]vertexDoc, len(m.Vertices)),
		Faces:    make([]faceDoc, len(m.Faces)),
	}
	for i, v := range m.Vertices {
		vd := vertexDoc{Position: []float32{v.Position.X, v.Position.Y, v.Position.Z}}
		if !v.Normal.IsZero() {
			vd.Normal = []float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
		}
		if !v.TexCoord.IsZero() {
			vd.TexCoord = []float32{v.TexCoord.X, v.TexCoord.Y}
		}
		if v.Color != math.White {
			vd.Color = []int{int(v.Color.R), int(v.Color.G), int(v.Color.B)}
		}
		doc.Vertices[i] = vd
	}
	for i, f := range m.Faces {
		line := f.LineNumber
		doc.Faces[i] = faceDoc{Vertices: f.Vertices, Material: f.Material, Line: &line}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encoding mesh document: %w", err)
	}
	return enc.Close()
}
