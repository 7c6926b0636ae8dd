package scene

import "errors"

var (
	ErrInvalidRadius          = errors.New("scene: sphere radius must be positive")
	ErrMaterialIndex          = errors.New("scene: material index out of range")
	ErrInvalidRoughness       = errors.New("scene: roughness must be in [0, 1]")
	ErrInvalidRefractionIndex = errors.New("scene: refraction index must be >= 1")
	ErrNilMaterial            = errors.New("scene: nil material")
	ErrUnknownScene           = errors.New("scene: unknown scene")
	ErrUnknownMaterial        = errors.New("scene: unknown material reference")
	ErrMalformedVector        = errors.New("scene: vectors need exactly 3 components")
	ErrDuplicateMaterial      = errors.New("scene: duplicate material name")
	ErrDegenerateCamera       = errors.New("scene: camera has no view frame")
)
