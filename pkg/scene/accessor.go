package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/geopro/pkg/geo"
)

// readPositions reads a float VEC3 accessor as points. An accessor without
// a buffer view or sparse data reads as origins.
func readPositions(doc *gltf.Document, idx int) ([]geo.Point, error) {
	acc, err := accessor(doc, idx)
	if err != nil {
		return nil, err
	}
	if acc.BufferView == nil && acc.Sparse == nil {
		points := make([]geo.Point, acc.Count)
		for i := range points {
			points[i] = geo.Origin()
		}
		return points, nil
	}

	raw, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		return nil, fmt.Errorf("accessor %d: %w: %w", idx, ErrMalformed, err)
	}

	points := make([]geo.Point, len(raw))
	for i, p := range raw {
		points[i] = geo.NewPoint(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	return points, nil
}

// readIndices reads an unsigned SCALAR accessor.
func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	acc, err := accessor(doc, idx)
	if err != nil {
		return nil, err
	}

	raw, err := modeler.ReadIndices(doc, acc, nil)
	if err != nil {
		return nil, fmt.Errorf("accessor %d: %w: %w", idx, ErrMalformed, err)
	}

	result := make([]int, len(raw))
	for i, v := range raw {
		result[i] = int(v)
	}
	return result, nil
}

// accessor returns accessor idx once its buffer view can be sliced safely.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d: %w", idx, ErrMalformed)
	}
	acc := doc.Accessors[idx]
	if acc.BufferView == nil {
		return acc, nil
	}

	bv := *acc.BufferView
	if bv < 0 || bv >= len(doc.BufferViews) {
		return nil, fmt.Errorf("accessor %d: buffer view %d: %w", idx, bv, ErrMalformed)
	}
	view := doc.BufferViews[bv]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("accessor %d: buffer %d: %w", idx, view.Buffer, ErrMalformed)
	}
	if acc.ByteOffset < 0 || acc.ByteOffset > view.ByteLength {
		return nil, fmt.Errorf("accessor %d: offset %d past buffer view of %d bytes: %w",
			idx, acc.ByteOffset, view.ByteLength, ErrMalformed)
	}
	return acc, nil
}
