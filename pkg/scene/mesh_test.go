package scene

import (
	"errors"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/geopro/pkg/geo"
)

func TestMeshBounds(t *testing.T) {
	m := NewMesh("box")
	m.Points = []geo.Point{
		geo.NewPoint(-1, 2, 0),
		geo.NewPoint(3, -2, 5),
		geo.NewPoint(0, 0, 1),
	}

	lo, hi := m.Bounds()
	checkPoints(t, []geo.Point{lo, hi}, []geo.Point{geo.NewPoint(-1, -2, 0), geo.NewPoint(3, 2, 5)})
	checkPoints(t, []geo.Point{m.Center()}, []geo.Point{geo.NewPoint(1, 0, 2.5)})
	if size := m.Size(); !size.Equals(geo.NewVector(4, 4, 5)) {
		t.Errorf("Size = %v, want (4, 4, 5)", size)
	}
}

func TestEmptyMeshBounds(t *testing.T) {
	lo, hi := NewMesh("empty").Bounds()
	checkPoints(t, []geo.Point{lo, hi}, []geo.Point{geo.Origin(), geo.Origin()})
}

func TestMeshTransformAndClone(t *testing.T) {
	m := NewMesh("tri")
	m.Points = []geo.Point{geo.NewPoint(0, 0, 0), geo.NewPoint(1, 0, 0), geo.NewPoint(0, 1, 0)}
	m.Faces = [][3]int{{0, 1, 2}}

	clone := m.Clone()
	m.Transform(geo.FromTranslation(0, 0, 5))

	checkPoints(t, m.Points, []geo.Point{geo.NewPoint(0, 0, 5), geo.NewPoint(1, 0, 5), geo.NewPoint(0, 1, 5)})
	checkPoints(t, clone.Points, []geo.Point{geo.NewPoint(0, 0, 0), geo.NewPoint(1, 0, 0), geo.NewPoint(0, 1, 0)})
	if clone.VertexCount() != 3 || clone.TriangleCount() != 1 {
		t.Errorf("clone has %d points and %d faces", clone.VertexCount(), clone.TriangleCount())
	}
}

func TestReadMeshWithoutIndices(t *testing.T) {
	doc := triangleDocument(t)
	doc.Meshes[0].Primitives[0].Indices = nil

	m, err := readMesh(doc, doc.Meshes[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Faces) != 1 || m.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("Faces = %v, want [[0 1 2]]", m.Faces)
	}
}

func TestReadMeshSkipsLines(t *testing.T) {
	doc := triangleDocument(t)
	doc.Meshes[0].Primitives[0].Mode = gltf.PrimitiveLines

	m, err := readMesh(doc, doc.Meshes[0])
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 0 {
		t.Errorf("line primitive produced %d points", m.VertexCount())
	}
}

func TestReadIndicesComponentTypes(t *testing.T) {
	data := []byte{
		2, 1, 0, 0, // ubyte 2, 1, 0 + padding
		1, 0, 2, 0, // ushort 1, 2
		7, 0, 0, 0, 9, 0, 0, 0, // uint 7, 9
	}
	doc := &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: 3},
			{Buffer: 0, ByteOffset: 4, ByteLength: 4},
			{Buffer: 0, ByteOffset: 8, ByteLength: 8},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: gltf.Index(0), ComponentType: gltf.ComponentUbyte, Count: 3, Type: gltf.AccessorScalar},
			{BufferView: gltf.Index(1), ComponentType: gltf.ComponentUshort, Count: 2, Type: gltf.AccessorScalar},
			{BufferView: gltf.Index(2), ComponentType: gltf.ComponentUint, Count: 2, Type: gltf.AccessorScalar},
			{BufferView: gltf.Index(2), ComponentType: gltf.ComponentUint, Count: 3, Type: gltf.AccessorScalar},
		},
	}

	tests := []struct {
		idx  int
		want []int
	}{
		{0, []int{2, 1, 0}},
		{1, []int{1, 2}},
		{2, []int{7, 9}},
	}
	for _, tc := range tests {
		got, err := readIndices(doc, tc.idx)
		if err != nil {
			t.Fatalf("accessor %d: %v", tc.idx, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("accessor %d = %v, want %v", tc.idx, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("accessor %d = %v, want %v", tc.idx, got, tc.want)
				break
			}
		}
	}

	if _, err := readIndices(doc, 3); !errors.Is(err, ErrMalformed) {
		t.Errorf("truncated accessor: err = %v, want ErrMalformed", err)
	}
	if _, err := readIndices(doc, 9); !errors.Is(err, ErrMalformed) {
		t.Errorf("missing accessor: err = %v, want ErrMalformed", err)
	}
}

func TestReadPositionsStride(t *testing.T) {
	doc := triangleDocument(t)
	// Read every other position through a 24-byte stride.
	doc.BufferViews[0].ByteStride = 24
	doc.Accessors[0].Count = 2

	got, err := readPositions(doc, 0)
	if err != nil {
		t.Fatal(err)
	}
	checkPoints(t, got, []geo.Point{geo.NewPoint(0, 0, 0), geo.NewPoint(0, 1, 0)})
}

func TestReadMeshIndexOutOfRange(t *testing.T) {
	doc := triangleDocument(t)
	doc.Accessors[0].Count = 2

	if _, err := readMesh(doc, doc.Meshes[0]); !errors.Is(err, ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestReadPositionsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *gltf.Document)
	}{
		{"truncated data", func(doc *gltf.Document) { doc.Buffers[0].Data = doc.Buffers[0].Data[:20] }},
		{"count past view", func(doc *gltf.Document) { doc.Accessors[0].Count = 4 }},
		{"offset past view", func(doc *gltf.Document) { doc.Accessors[0].ByteOffset = 40 }},
		{"missing view", func(doc *gltf.Document) { doc.Accessors[0].BufferView = gltf.Index(7) }},
		{"integer positions", func(doc *gltf.Document) { doc.Accessors[0].ComponentType = gltf.ComponentUint }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := triangleDocument(t)
			tc.mutate(doc)
			if _, err := readPositions(doc, 0); !errors.Is(err, ErrMalformed) {
				t.Errorf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestReadPositionsWithoutBufferView(t *testing.T) {
	doc := triangleDocument(t)
	doc.Accessors[0].BufferView = nil

	got, err := readPositions(doc, 0)
	if err != nil {
		t.Fatal(err)
	}
	checkPoints(t, got, []geo.Point{geo.Origin(), geo.Origin(), geo.Origin()})
}
