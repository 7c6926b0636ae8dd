package core

import (
	"math"
	"testing"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Head-on reflection",
			vector:   NewVec3(0, 0, -1),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "45 degree reflection off floor",
			vector:   NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "Parallel to surface",
			vector:   NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.vector, tt.normal)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_RefractUnitRatioKeepsDirection(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	for _, angle := range []float64{0, 15, 30, 45, 60, 75} {
		rad := angle * math.Pi / 180
		in := NewVec3(math.Sin(rad), -math.Cos(rad), 0)

		out := Refract(in, normal, 1.0)
		if out.Subtract(in).Length() > 1e-9 {
			t.Errorf("angle %v: expected unchanged direction %v, got %v", angle, in, out)
		}
	}
}

func TestVec3_RefractBendsTowardNormal(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	in := NewVec3(1, -1, 0).Normalize()

	out := Refract(in, normal, 1.0/1.5)

	// sin(theta_t) = sin(theta_i) / 1.5
	expectedSin := math.Sin(math.Pi/4) / 1.5
	if math.Abs(out.X-expectedSin) > 1e-9 {
		t.Errorf("Expected refracted x component %v, got %v", expectedSin, out.X)
	}
	if math.Abs(out.Length()-1) > 1e-9 {
		t.Errorf("Expected unit length refracted ray, got %v", out.Length())
	}
}

func TestVec3_NormalizeAndLength(t *testing.T) {
	v := NewVec3(3, 4, 12)
	if v.Length() != 13 {
		t.Errorf("Expected length 13, got %v", v.Length())
	}
	if math.Abs(v.Normalize().Length()-1) > 1e-12 {
		t.Errorf("Expected unit vector, got length %v", v.Normalize().Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Expected zero vector to normalize to zero")
	}
}

func TestVec3_CrossIsOrthogonal(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 0.5, 4)
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("Cross product %v is not orthogonal to inputs", c)
	}
	if NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)) != NewVec3(0, 0, 1) {
		t.Error("Expected x cross y = z")
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with one large component not to be near zero")
	}
}

func TestVec3_ClampAndSqrt(t *testing.T) {
	v := NewVec3(-0.5, 0.25, 4).Clamp(0, 1).Sqrt()
	expected := NewVec3(0, 0.5, 1)
	if v != expected {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 2, 0))
	if got := ray.At(1.5); got != NewVec3(1, 4, 1) {
		t.Errorf("Expected (1,4,1), got %v", got)
	}
}
