package scene

import (
	"fmt"
	"os"

	"github.com/df07/sphere-pathtracer/pkg/core"
	"gopkg.in/yaml.v2"
)

// sceneFile is the on-disk YAML layout of a scene
type sceneFile struct {
	Description string         `yaml:"description"`
	Camera      *cameraFile    `yaml:"camera"`
	Materials   []materialFile `yaml:"materials"`
	Spheres     []sphereFile   `yaml:"spheres"`
}

type cameraFile struct {
	LookFrom  []float64 `yaml:"look_from"`
	LookAt    []float64 `yaml:"look_at"`
	Up        []float64 `yaml:"up"`
	VFov      float64   `yaml:"vfov"`
	Aperture  float64   `yaml:"aperture"`
	FocusDist float64   `yaml:"focus_dist"`
}

type materialFile struct {
	Name            string    `yaml:"name"`
	Type            string    `yaml:"type"` // diffuse, metal or dielectric
	Albedo          []float64 `yaml:"albedo"`
	Roughness       float64   `yaml:"roughness"`
	RefractionIndex float64   `yaml:"refraction_index"`
}

type sphereFile struct {
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// LoadFile reads and builds a scene from a YAML file
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadDescription returns only the description field of a YAML scene file
func LoadDescription(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read scene file: %w", err)
	}

	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return file.Description, nil
}

// Parse builds a scene from YAML. Spheres reference materials by name.
func Parse(data []byte) (*Scene, error) {
	var file sceneFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	b := NewBuilder()

	if file.Camera != nil {
		camera, err := file.Camera.toConfig()
		if err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
		b.Camera(camera)
	}

	byName := make(map[string]int, len(file.Materials))
	for i, mf := range file.Materials {
		m, err := mf.toMaterial()
		if err != nil {
			return nil, fmt.Errorf("material %d (%s): %w", i, mf.Name, err)
		}
		if _, exists := byName[mf.Name]; exists {
			return nil, fmt.Errorf("material %d: %w: %q", i, ErrDuplicateMaterial, mf.Name)
		}
		byName[mf.Name] = b.Material(m)
	}

	for i, sf := range file.Spheres {
		center, err := toVec3(sf.Center)
		if err != nil {
			return nil, fmt.Errorf("sphere %d center: %w", i, err)
		}
		index, ok := byName[sf.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: %q", i, ErrUnknownMaterial, sf.Material)
		}
		b.Sphere(center, sf.Radius, index)
	}

	return b.Build()
}

func (cf *cameraFile) toConfig() (CameraConfig, error) {
	config := DefaultCameraConfig()

	var err error
	if cf.LookFrom != nil {
		if config.LookFrom, err = toVec3(cf.LookFrom); err != nil {
			return config, fmt.Errorf("look_from: %w", err)
		}
	}
	if cf.LookAt != nil {
		if config.LookAt, err = toVec3(cf.LookAt); err != nil {
			return config, fmt.Errorf("look_at: %w", err)
		}
	}
	if cf.Up != nil {
		if config.Up, err = toVec3(cf.Up); err != nil {
			return config, fmt.Errorf("up: %w", err)
		}
	}
	if cf.VFov > 0 {
		config.VFov = cf.VFov
	}
	if cf.FocusDist > 0 {
		config.FocusDist = cf.FocusDist
	}
	config.Aperture = cf.Aperture

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

func (mf materialFile) toMaterial() (Material, error) {
	switch mf.Type {
	case "diffuse", "lambertian":
		albedo, err := toVec3(mf.Albedo)
		if err != nil {
			return nil, fmt.Errorf("albedo: %w", err)
		}
		return NewDiffuse(albedo), nil
	case "metal":
		albedo, err := toVec3(mf.Albedo)
		if err != nil {
			return nil, fmt.Errorf("albedo: %w", err)
		}
		return NewMetal(albedo, mf.Roughness), nil
	case "dielectric", "glass":
		return NewDielectric(mf.RefractionIndex), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", mf.Type)
	}
}

func toVec3(values []float64) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: got %d", ErrMalformedVector, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
