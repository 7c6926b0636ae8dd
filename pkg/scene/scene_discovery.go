package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a scene that can be selected by name
type SceneInfo struct {
	ID          string // Unique identifier
	Description string // One-line description
	Type        string // "builtin" or "yaml"
	FilePath    string // Path to scene file (yaml type only)
}

type builtinScene struct {
	description string
	create      func() (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	"default":  {"Sphere resting on a large ground sphere", NewDefaultScene},
	"single":   {"One diffuse sphere against the sky", NewSingleSphereScene},
	"showcase": {"Diffuse, metal, mirror and glass spheres", NewShowcaseScene},
}

// Builtin creates the built-in scene with the given name
func Builtin(name string) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return entry.create()
}

// Resolve creates a scene from a built-in name or a path to a YAML scene file
func Resolve(nameOrPath string) (*Scene, error) {
	if _, ok := builtinScenes[nameOrPath]; ok {
		return Builtin(nameOrPath)
	}

	ext := strings.ToLower(filepath.Ext(nameOrPath))
	if ext == ".yaml" || ext == ".yml" {
		return LoadFile(nameOrPath)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, nameOrPath)
}

// ListScenes returns the built-in scenes followed by any YAML scenes found in dir, sorted by ID
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, entry := range builtinScenes {
		scenes = append(scenes, SceneInfo{ID: id, Description: entry.description, Type: "builtin"})
	}
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].ID < scenes[j].ID })

	if dir == "" {
		return scenes, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return scenes, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	for _, file := range files {
		desc, err := LoadDescription(file)
		if err != nil {
			return nil, err
		}
		id := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		scenes = append(scenes, SceneInfo{ID: id, Description: desc, Type: "yaml", FilePath: file})
	}

	return scenes, nil
}
