package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when no built-in scene has the requested ID
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

type builtinScene struct {
	info   SceneInfo
	create func() (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	"basic": {
		info: SceneInfo{
			DisplayName: "Basic",
			Description: "Sphere and three triangles under ambient light, with a grid overlay",
			Group:       "Basics",
		},
		create: NewBasicScene,
	},
	"two-spheres": {
		info: SceneInfo{
			DisplayName: "Two Spheres",
			Description: "Transparent sphere around an opaque one, lit by a spot light",
			Group:       "Reflection & Refraction",
		},
		create: NewTwoSpheresScene,
	},
	"mirrors": {
		info: SceneInfo{
			DisplayName: "Spheres On Mirrors",
			Description: "Nested spheres reflected in two mirror triangles",
			Group:       "Reflection & Refraction",
		},
		create: NewMirrorsScene,
	},
	"transparent-shadow": {
		info: SceneInfo{
			DisplayName: "Transparent Shadow",
			Description: "Partially transparent sphere casting a partial shadow on triangles",
			Group:       "Reflection & Refraction",
		},
		create: NewTransparentShadowScene,
	},
	"general": {
		info: SceneInfo{
			DisplayName: "General",
			Description: "Spheres, polygons and a triangle under every light kind, adaptive anti-aliasing",
			Group:       "Showcase",
		},
		create: NewGeneralScene,
	},
	"eye": {
		info: SceneInfo{
			DisplayName: "Eye",
			Description: "Reflective iris on a polygon sclera with cylinder iris lines",
			Group:       "Showcase",
		},
		create: NewEyeScene,
	},
	"flower": {
		info: SceneInfo{
			DisplayName: "Flower",
			Description: "Cylinder stem with translucent petals on a reflective ground plane",
			Group:       "Showcase",
		},
		create: NewFlowerScene,
	},
}

// ListBuiltinScenes returns the metadata of every built-in scene, sorted by ID
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, scene := range builtinScenes {
		info := scene.info
		info.ID = id
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewBuiltinScene creates the built-in scene with the given ID
func NewBuiltinScene(id string) (*Scene, error) {
	builtin, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	s, err := builtin.create()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	return s, nil
}
