package view

import (
	"math/rand"
	"testing"

	"github.com/taigrr/geopro/pkg/geo"
)

func BenchmarkFrustum(b *testing.B) {
	c := testCamera()
	for b.Loop() {
		_, _ = c.Frustum()
	}
}

func BenchmarkBoxIntersection(b *testing.B) {
	f, err := testCamera().Frustum()
	if err != nil {
		b.Fatal(err)
	}
	visible := NewBox(geo.NewPoint(-1, -1, -1), geo.NewPoint(1, 1, 1))
	culled := NewBox(geo.NewPoint(-1, -1, -30), geo.NewPoint(1, 1, -20))

	b.Run("visible", func(b *testing.B) {
		for b.Loop() {
			_ = f.IntersectsBox(visible)
		}
	})
	b.Run("culled", func(b *testing.B) {
		for b.Loop() {
			_ = f.IntersectsBox(culled)
		}
	})
}

// BenchmarkCullingScenario culls a hundred unit boxes scattered around the camera.
func BenchmarkCullingScenario(b *testing.B) {
	c := NewCamera()
	c.SetPosition(geo.NewPoint(0, 10, 20))
	c.SetUp(geo.NewVector(0, 1, 0))
	f, err := c.Frustum()
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	unit := NewBox(geo.NewPoint(-1, -1, -1), geo.NewPoint(1, 1, 1))
	moves := make([]geo.Transform, 100)
	for i := range moves {
		moves[i] = geo.FromTranslation(rng.Float64()*100-50, rng.Float64()*10, rng.Float64()*100-50)
	}

	for b.Loop() {
		visible := 0
		for _, m := range moves {
			if f.IntersectsBox(unit.Transform(m)) {
				visible++
			}
		}
		_ = visible
	}
}

func BenchmarkWorldToScreenAll(b *testing.B) {
	c := testCamera()
	pts := make([]geo.Point, 1000)
	for i := range pts {
		pts[i] = geo.NewPoint(float64(i%20)-10, float64(i/20%20)-10, float64(i/400))
	}
	for b.Loop() {
		_, _ = c.WorldToScreenAll(pts, 1920, 1080)
	}
}
