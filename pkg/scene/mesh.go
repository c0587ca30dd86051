package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/geopro/pkg/geo"
)

// Mesh is the triangle geometry of a glTF mesh, all primitives merged.
type Mesh struct {
	Name   string
	Points []geo.Point
	Faces  [][3]int // indices into Points, counter-clockwise
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// Bounds returns the corners of the axis-aligned bounding box. An empty
// mesh has both corners at the origin.
func (m *Mesh) Bounds() (lo, hi geo.Point) {
	if len(m.Points) == 0 {
		return geo.Origin(), geo.Origin()
	}

	minX, minY, minZ := m.Points[0].X(), m.Points[0].Y(), m.Points[0].Z()
	maxX, maxY, maxZ := minX, minY, minZ
	for _, p := range m.Points[1:] {
		minX, maxX = min(minX, p.X()), max(maxX, p.X())
		minY, maxY = min(minY, p.Y()), max(maxY, p.Y())
		minZ, maxZ = min(minZ, p.Z()), max(maxZ, p.Z())
	}
	return geo.NewPoint(minX, minY, minZ), geo.NewPoint(maxX, maxY, maxZ)
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() geo.Point {
	lo, hi := m.Bounds()
	return lo.Add(geo.VectorFromPoints(hi, lo).Scale(0.5))
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() geo.Vector {
	lo, hi := m.Bounds()
	return geo.VectorFromPoints(hi, lo)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of points.
func (m *Mesh) VertexCount() int {
	return len(m.Points)
}

// Transform maps every point of the mesh in place.
func (m *Mesh) Transform(g geo.GeoMatrix) {
	for i, p := range m.Points {
		m.Points[i] = p.Map(g)
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:   m.Name,
		Points: make([]geo.Point, len(m.Points)),
		Faces:  make([][3]int, len(m.Faces)),
	}
	copy(clone.Points, m.Points)
	copy(clone.Faces, m.Faces)
	return clone
}

// readMesh merges the triangle primitives of a glTF mesh. Lines and points
// are skipped.
func readMesh(doc *gltf.Document, m *gltf.Mesh) (*Mesh, error) {
	mesh := NewMesh(m.Name)
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}
		base := len(mesh.Points)
		mesh.Points = append(mesh.Points, positions...)

		if prim.Indices == nil {
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{base + i, base + i + 1, base + i + 2})
			}
			continue
		}

		indices, err := readIndices(doc, *prim.Indices)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			face := [3]int{base + indices[i], base + indices[i+1], base + indices[i+2]}
			for _, v := range face {
				if v >= len(mesh.Points) {
					return nil, fmt.Errorf("index %d out of %d points: %w", v-base, len(positions), ErrMalformed)
				}
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	return mesh, nil
}
