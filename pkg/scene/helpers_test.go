package scene

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/qmuntal/gltf"
	"github.com/taigrr/geopro/pkg/geo"
)

var approx = cmp.Options{
	cmp.Comparer(func(a, b geo.Point) bool { return a.Equals(b) }),
	cmp.Comparer(func(a, b geo.Vector) bool { return a.Equals(b) }),
}

// triangleDocument builds a two-node document: "root" translated by
// (10, 0, 0) with a child "tri" that is scaled by 2, turned 90° around Z,
// and carries a single triangle.
func triangleDocument(t *testing.T) *gltf.Document {
	t.Helper()

	var buf bytes.Buffer
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	if err := binary.Write(&buf, binary.LittleEndian, positions); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, []uint16{0, 1, 2}); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	half := math.Sqrt2 / 2
	return &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: 36},
			{Buffer: 0, ByteOffset: 36, ByteLength: 6},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: gltf.Index(0), ComponentType: gltf.ComponentFloat, Count: 3, Type: gltf.AccessorVec3},
			{BufferView: gltf.Index(1), ComponentType: gltf.ComponentUshort, Count: 3, Type: gltf.AccessorScalar},
		},
		Meshes: []*gltf.Mesh{{
			Name: "tri",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: 0},
				Indices:    gltf.Index(1),
			}},
		}},
		Nodes: []*gltf.Node{
			{Name: "root", Translation: [3]float64{10, 0, 0}, Children: []int{1}},
			{Name: "tri", Mesh: gltf.Index(0), Rotation: [4]float64{0, 0, half, half}, Scale: [3]float64{2, 2, 2}},
		},
		Scenes: []*gltf.Scene{{Name: "main", Nodes: []int{0}}},
		Scene:  gltf.Index(0),
	}
}

func checkPoints(t *testing.T, got, want []geo.Point) {
	t.Helper()
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("points mismatch (-want +got):\n%s", d)
	}
}
