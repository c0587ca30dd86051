package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/geopro/pkg/math3d"
)

func TestUnitVectorFromVector(t *testing.T) {
	uv1, err := UnitVectorFromVector(NewVector(1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	uv2, err := UnitVectorFromVector(NewVector(0, 0, 100))
	if err != nil {
		t.Fatal(err)
	}

	if uv1.X() != 1 || uv1.Y() != 0 || uv1.Z() != 0 {
		t.Errorf("uv1 = %v, want (1, 0, 0)", uv1)
	}
	if uv2.X() != 0 || uv2.Y() != 0 || uv2.Z() != 1 {
		t.Errorf("uv2 = %v, want (0, 0, 1)", uv2)
	}
	if uv1.Length() != 1 {
		t.Errorf("Length = %v, want 1", uv1.Length())
	}
	if d := cmp.Diff(math3d.H(1, 0, 0, 0), uv1.Coordinates()); d != "" {
		t.Error(d)
	}
}

// TestUnitVectorAlwaysUnitLength checks the length invariant for inputs of
// very different magnitudes.
func TestUnitVectorAlwaysUnitLength(t *testing.T) {
	inputs := []Vector{
		NewVector(1e-9, 0, 0),
		NewVector(3, 4, 12),
		NewVector(-10984, 10984, 10984),
		NewVector(1e12, -3, 7),
	}
	for _, v := range inputs {
		u, err := UnitVectorFromVector(v)
		if err != nil {
			t.Fatalf("UnitVectorFromVector(%v): %v", v, err)
		}
		if l := u.Coordinates().Len3(); math.Abs(l-1) > math3d.Tolerance {
			t.Errorf("|%v| = %v, want 1", u, l)
		}
	}
}

func TestUnitVectorZeroValue(t *testing.T) {
	var u UnitVector
	if !u.Equals(AxisX) {
		t.Errorf("zero value = %v, want %v", u, AxisX)
	}
	if l := u.Vector().Length(); math.Abs(l-1) > math3d.Tolerance {
		t.Errorf("zero value has length %v", l)
	}
	if got := u.Map(FromRotationZ(math.Pi / 2)); !got.Equals(AxisY) {
		t.Errorf("mapped zero value = %v, want %v", got, AxisY)
	}
}

func TestUnitVectorZeroLength(t *testing.T) {
	_, err := UnitVectorFromVector(NewVector(0, 0, 0))
	if !errors.Is(err, ErrZeroLength) {
		t.Errorf("err = %v, want ErrZeroLength", err)
	}
	_, err = NewUnitVector(0, 0, 0)
	if !errors.Is(err, ErrZeroLength) {
		t.Errorf("err = %v, want ErrZeroLength", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustUnitVector(0, 0, 0) did not panic")
		}
	}()
	MustUnitVector(0, 0, 0)
}

func TestUnitVectorEquals(t *testing.T) {
	v1 := MustUnitVector(1, 1, 1)
	v2 := MustUnitVector(10984, 10984, 10984)
	if !v1.Equals(v2) || v1.NotEquals(v2) {
		t.Errorf("%v and %v should be equal", v1, v2)
	}

	v3 := MustUnitVector(1, 1.0001, 1)
	if v1.Equals(v3) || !v1.NotEquals(v3) {
		t.Errorf("%v and %v should differ", v1, v3)
	}
}

func TestUnitVectorFromPoints(t *testing.T) {
	u, err := UnitVectorFromPoints(NewPoint(5, 2, 2), NewPoint(2, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	if !u.Equals(AxisX) {
		t.Errorf("got %v, want X axis", u)
	}
	if _, err := UnitVectorFromPoints(NewPoint(1, 1, 1), NewPoint(1, 1, 1)); !errors.Is(err, ErrZeroLength) {
		t.Errorf("err = %v, want ErrZeroLength", err)
	}
}

func TestUnitVectorCrossDotAngle(t *testing.T) {
	if got := AxisX.Cross(AxisY); !got.Equals(AxisZ.Vector()) {
		t.Errorf("x × y = %v, want z", got)
	}
	if got := AxisZ.Cross(AxisY); !got.Equals(AxisX.Negate().Vector()) {
		t.Errorf("z × y = %v, want -x", got)
	}
	if d := AxisX.Dot(AxisY); d != 0 {
		t.Errorf("x · y = %v, want 0", d)
	}

	diag := MustUnitVector(1, 1, 0)
	if a := AxisX.AngleBetween(diag); math.Abs(a-math.Pi/4) > 1e-12 {
		t.Errorf("angle = %v, want π/4", a)
	}
	// rounding may push the dot product just past 1
	if a := diag.AngleBetween(diag); math.IsNaN(a) || a > 1e-6 {
		t.Errorf("angle with itself = %v, want 0", a)
	}
}

func TestUnitVectorParallel(t *testing.T) {
	if !AxisZ.Parallel(AxisZ.Negate()) {
		t.Error("opposite directions should be parallel")
	}
	if AxisZ.Parallel(MustUnitVector(0, 0.01, 1)) {
		t.Error("skewed directions should not be parallel")
	}
}

func TestUnitVectorScale(t *testing.T) {
	v := MustUnitVector(0, 3, 4).Scale(10)
	if !v.Equals(NewVector(0, 6, 8)) {
		t.Errorf("got %v, want (0, 6, 8)", v)
	}
}

func TestUnitVectorMapStaysUnit(t *testing.T) {
	s := mustScale(t, 5, 1, 1)
	u := Map(s, MustUnitVector(1, 1, 0))
	if !u.Equals(MustUnitVector(5, 1, 0)) {
		t.Errorf("got %v, want direction (5, 1, 0)", u)
	}

	if got := Map(FromTranslation(1, 2, 3), AxisY); !got.Equals(AxisY) {
		t.Errorf("translation moved %v to %v", AxisY, got)
	}
}

func TestUnitVectorMapToZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("projecting a unit-vector onto nothing did not panic")
		}
	}()
	Map(FromOrthographicOnXY(1, math.Pi/2), AxisZ)
}
