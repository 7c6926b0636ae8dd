package geometry

import (
	"math"
	"testing"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

func TestHitSphere(t *testing.T) {
	sphere := scene.Sphere{Center: core.NewVec3(0, 0, -5), Radius: 1}

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Head-on from outside",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: true,
			expectedT: 4,
		},
		{
			name:      "Unnormalized direction",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2)),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: true,
			expectedT: 2,
		},
		{
			name:      "From inside uses far root",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: true,
			expectedT: 1,
		},
		{
			name:      "Miss",
			ray:       core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: false,
		},
		{
			name:      "Behind the ray",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: false,
		},
		{
			name:      "Beyond tMax",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      3,
			shouldHit: false,
		},
		{
			name:      "Near root below tMin falls back to far root",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			tMin:      5,
			tMax:      math.Inf(1),
			shouldHit: true,
			expectedT: 6,
		},
		{
			name:      "Zero direction never hits",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.Vec3{}),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tHit, hit := HitSphere(tt.ray, sphere, tt.tMin, tt.tMax)
			if hit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, hit)
			}
			if hit && math.Abs(tHit-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, tHit)
			}
		})
	}
}

func TestSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	var front HitRecord
	front.SetFaceNormal(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), outward)
	if !front.FrontFace || front.Normal != outward {
		t.Errorf("Expected front face with outward normal, got %+v", front)
	}

	var back HitRecord
	back.SetFaceNormal(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), outward)
	if back.FrontFace || back.Normal != outward.Negate() {
		t.Errorf("Expected back face with flipped normal, got %+v", back)
	}
}
