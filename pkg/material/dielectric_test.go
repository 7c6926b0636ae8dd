package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"github.com/df07/sphere-pathtracer/pkg/geometry"
	"github.com/df07/sphere-pathtracer/pkg/scene"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := scene.NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRay(core.NewVec3(-1, 1, 0), rayDirection)
	hit := geometry.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
	}

	hasRefraction := false
	for seed := int64(0); seed < 200; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := Scatter(glass, ray, hit, sampler)

		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Errorf("Expected white attenuation, got %v", result.Attenuation)
		}

		dir := result.Scattered.Direction.Normalize()
		if dir.Y < 0 {
			hasRefraction = true
			// Refraction bends toward the normal: sin(t) = sin(45)/1.5
			if math.Abs(dir.X-math.Sin(math.Pi/4)/1.5) > 1e-9 {
				t.Errorf("Unexpected refracted direction %v", dir)
			}
			if result.Scattered.Origin.Y >= 0 {
				t.Errorf("Refracted ray should start below the surface, got %v", result.Scattered.Origin)
			}
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := scene.NewDielectric(1.5)

	// Glass to air at a shallow angle
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := geometry.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
	}

	for i := 0; i < 10; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		result, scattered := Scatter(glass, ray, hit, sampler)

		if !scattered {
			t.Error("Dielectric should always scatter")
		}
		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %v", result.Scattered.Direction)
		}
		if math.Abs(result.Scattered.Direction.X-rayDirection.X) > 1e-10 {
			t.Errorf("Expected X component %.6f, got %.6f", rayDirection.X, result.Scattered.Direction.X)
		}
	}
}

func TestDielectricMatchedIndexDoesNotBend(t *testing.T) {
	air := scene.NewDielectric(1.0)

	for _, frontFace := range []bool{true, false} {
		for _, angle := range []float64{0, 10, 30, 45, 60, 80} {
			rad := angle * math.Pi / 180
			direction := core.NewVec3(math.Sin(rad), -math.Cos(rad), 0).Multiply(3)
			ray := core.NewRay(core.NewVec3(0, 5, 0), direction)
			hit := geometry.HitRecord{
				Point:     core.NewVec3(0, 0, 0),
				Normal:    core.NewVec3(0, 1, 0),
				FrontFace: frontFace,
			}

			for seed := int64(0); seed < 50; seed++ {
				result, _ := Scatter(air, ray, hit, core.NewSeededSampler(seed))
				out := result.Scattered.Direction.Normalize()
				if out.Subtract(direction.Normalize()).Length() > 1e-9 {
					t.Fatalf("angle %v front=%v: expected colinear ray %v, got %v", angle, frontFace, direction.Normalize(), out)
				}
			}
		}
	}
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence (0°) - should be low for air->glass
	r0 := Reflectance(1.0, 1.0/1.5)
	if math.Abs(r0-0.04) > 1e-9 {
		t.Errorf("Normal incidence reflectance = %.6f, expected 0.04", r0)
	}

	// Grazing incidence (90°) - should be close to 1
	r90 := Reflectance(0.0, 1.0/1.5)
	if r90 < 0.95 {
		t.Errorf("Grazing incidence reflectance = %.3f, expected close to 1.0", r90)
	}

	r45 := Reflectance(math.Cos(math.Pi/4), 1.0/1.5)
	if r45 <= r0 || r90 <= r45 {
		t.Errorf("Reflectance should increase with angle: R(0°)=%.3f, R(45°)=%.3f, R(90°)=%.3f", r0, r45, r90)
	}

	if Reflectance(0.2, 1.0) != 0 {
		t.Error("Matched indices should never reflect")
	}
}
