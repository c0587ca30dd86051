package geo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/geopro/pkg/math3d"
)

// approx compares geometric values within math3d.Tolerance.
var approx = cmp.Options{
	cmp.Comparer(func(a, b Point) bool { return a.Equals(b) }),
	cmp.Comparer(func(a, b Vector) bool { return a.Equals(b) }),
	cmp.Comparer(func(a, b UnitVector) bool { return a.Equals(b) }),
	cmp.Comparer(math3d.Equal),
}

func checkPoint(t *testing.T, got, want Point) {
	t.Helper()
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("point mismatch (-want +got):\n%s", d)
	}
}

func mustFrame(t *testing.T, o Point, v1, v2 Vector) Frame {
	t.Helper()
	f, err := From2Vectors(o, v1, v2)
	if err != nil {
		t.Fatalf("From2Vectors(%v, %v, %v): %v", o, v1, v2, err)
	}
	return f
}

func mustScale(t *testing.T, sx, sy, sz float64) Transform {
	t.Helper()
	s, err := FromScale(sx, sy, sz)
	if err != nil {
		t.Fatalf("FromScale(%g, %g, %g): %v", sx, sy, sz, err)
	}
	return s
}
