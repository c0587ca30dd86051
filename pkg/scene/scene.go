// Package scene imports glTF scene graphs as geo transforms and point meshes.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/taigrr/geopro/pkg/geo"
)

// ErrMalformed is returned for documents whose node graph or buffers are
// inconsistent: dangling indices, nodes with two parents, cycles or
// truncated accessors.
var ErrMalformed = errors.New("malformed glTF document")

// Scene is a glTF document resolved into world transforms.
type Scene struct {
	Name   string
	Nodes  []*Node // indexed like the document's nodes
	Roots  []*Node
	Meshes []*Mesh // indexed like the document's meshes
}

// Node is one node of the scene graph.
type Node struct {
	Name     string
	Index    int
	Parent   *Node
	Children []*Node

	// Local maps node coordinates to the parent's coordinates.
	Local geo.Transform
	// World maps node coordinates to scene coordinates.
	World geo.Transform

	// Mesh is the index into Scene.Meshes, or -1.
	Mesh int
}

// Frame returns the orthonormal frame sitting at the node's world origin
// with its Z and X axes along the node's. Scale is discarded.
func (n *Node) Frame() (geo.Frame, error) {
	o := geo.Map(n.World, geo.Origin())
	z := geo.Map(n.World, geo.NewVector(0, 0, 1))
	x := geo.Map(n.World, geo.NewVector(1, 0, 0))
	f, err := geo.From2Vectors(o, z, x)
	if err != nil {
		return geo.Frame{}, fmt.Errorf("node %q frame: %w", n.Name, err)
	}
	return f, nil
}

// Load opens a .gltf or .glb file and resolves its scene graph.
func Load(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument resolves an already decoded document.
func FromDocument(doc *gltf.Document) (*Scene, error) {
	s := &Scene{}
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		s.Name = doc.Scenes[*doc.Scene].Name
	}

	for i, m := range doc.Meshes {
		mesh, err := readMesh(doc, m)
		if err != nil {
			return nil, fmt.Errorf("process mesh %d %q: %w", i, m.Name, err)
		}
		s.Meshes = append(s.Meshes, mesh)
	}

	s.Nodes = make([]*Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		local, err := localTransform(n)
		if err != nil {
			return nil, fmt.Errorf("node %d %q: %w", i, n.Name, err)
		}
		node := &Node{Name: n.Name, Index: i, Local: local, Mesh: -1}
		if n.Mesh != nil {
			if *n.Mesh < 0 || *n.Mesh >= len(s.Meshes) {
				return nil, fmt.Errorf("node %d mesh %d: %w", i, *n.Mesh, ErrMalformed)
			}
			node.Mesh = *n.Mesh
		}
		s.Nodes[i] = node
	}

	if err := s.link(doc); err != nil {
		return nil, err
	}
	return s, nil
}

// link wires parents and children, then computes world transforms from the roots.
func (s *Scene) link(doc *gltf.Document) error {
	for i, n := range doc.Nodes {
		parent := s.Nodes[i]
		for _, c := range n.Children {
			if c < 0 || c >= len(s.Nodes) {
				return fmt.Errorf("node %d child %d: %w", i, c, ErrMalformed)
			}
			child := s.Nodes[c]
			if child.Parent != nil || c == i {
				return fmt.Errorf("node %d has more than one parent: %w", c, ErrMalformed)
			}
			child.Parent = parent
			parent.Children = append(parent.Children, child)
		}
	}

	visited := 0
	var walk func(n *Node, parentWorld geo.Transform)
	walk = func(n *Node, parentWorld geo.Transform) {
		visited++
		n.World = geo.Compose(n.Local, parentWorld)
		for _, c := range n.Children {
			walk(c, n.World)
		}
	}
	for _, n := range s.Nodes {
		if n.Parent == nil {
			s.Roots = append(s.Roots, n)
			walk(n, geo.NewTransform())
		}
	}
	if visited != len(s.Nodes) {
		return fmt.Errorf("node graph has a cycle: %w", ErrMalformed)
	}
	return nil
}

// localTransform reads a node's matrix, or its translation, rotation and
// scale when no matrix is given.
func localTransform(n *gltf.Node) (geo.Transform, error) {
	m := mgl64.Mat4(n.MatrixOrDefault())
	if m != mgl64.Ident4() {
		return geo.FromMat4(m)
	}

	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	sc := n.ScaleOrDefault()
	return geo.FromTRS(
		geo.NewVector(t[0], t[1], t[2]),
		mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}},
		geo.NewVector(sc[0], sc[1], sc[2]),
	)
}

// Find returns the first node with the given name, or nil.
func (s *Scene) Find(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Walk visits every node depth-first, parents before children, and stops at
// the first error.
func (s *Scene) Walk(fn func(*Node) error) error {
	var visit func(n *Node) error
	visit = func(n *Node) error {
		if err := fn(n); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := visit(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range s.Roots {
		if err := visit(r); err != nil {
			return err
		}
	}
	return nil
}

// WorldPoints returns the node's mesh points in scene coordinates, or nil
// when the node has no mesh.
func (s *Scene) WorldPoints(n *Node) []geo.Point {
	if n.Mesh < 0 {
		return nil
	}
	return geo.MapAll(n.World, s.Meshes[n.Mesh].Points)
}
