package core

import (
	"testing"
)

func TestRandomVec3RangeBounds(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := RandomVec3Range(sampler, -0.5, 0.5)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -0.5 || c >= 0.5 {
				t.Fatalf("Component %v outside [-0.5, 0.5)", c)
			}
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		if p := RandomInUnitSphere(sampler); p.LengthSquared() >= 1 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}
