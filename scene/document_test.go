package scene

import (
	"os"
	"path/filepath"
	"testing"

	"fortio.org/raytracer/tracer"
)

const minimalScene = `{
	"camera": {"position": [0,0,5], "look_at": [0,0,0], "up": [0,1,0], "vertical_fov": 40},
	"background": [0.5, 0.7, 1.0],
	"textures": {
		"ground_color": {"type": "solid", "color": [0.5, 0.5, 0.5]}
	},
	"materials": {
		"ground": {"type": "lambertian", "texture": "ground_color"}
	},
	"objects": [
		{"name": "ground", "type": "sphere", "material": "ground", "center": [0,-1000,0], "radius": 1000}
	],
	"priority": []
}`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	return path
}

func TestLoadMinimalScene(t *testing.T) {
	path := writeScene(t, minimalScene)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if sc.World == nil {
		t.Error("Load() produced a scene with a nil world")
	}
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Fatal("Load() = nil error, want *tracer.IOError")
	}
	if _, ok := err.(*tracer.IOError); !ok {
		t.Errorf("Load() error type = %T, want *tracer.IOError", err)
	}
}

func TestLoadMalformedJSONIsInputError(t *testing.T) {
	path := writeScene(t, `{not valid json`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() = nil error, want *tracer.InputError")
	}
	if _, ok := err.(*tracer.InputError); !ok {
		t.Errorf("Load() error type = %T, want *tracer.InputError", err)
	}
}

func TestLoadUnknownPriorityNameIsInputError(t *testing.T) {
	const badScene = `{
		"camera": {"position": [0,0,5], "look_at": [0,0,0]},
		"textures": {"c": {"type": "solid", "color": [1,1,1]}},
		"materials": {"m": {"type": "lambertian", "texture": "c"}},
		"objects": [{"name": "s", "type": "sphere", "material": "m", "center": [0,0,0], "radius": 1}],
		"priority": ["does-not-exist"]
	}`
	path := writeScene(t, badScene)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() = nil error, want *tracer.InputError for an unresolved priority name")
	}
	if _, ok := err.(*tracer.InputError); !ok {
		t.Errorf("Load() error type = %T, want *tracer.InputError", err)
	}
}

func TestLoadUnknownTextureTypeIsInputError(t *testing.T) {
	const badScene = `{
		"camera": {"position": [0,0,5], "look_at": [0,0,0]},
		"textures": {"c": {"type": "glowing-plaid", "color": [1,1,1]}},
		"materials": {"m": {"type": "lambertian", "texture": "c"}},
		"objects": [{"name": "s", "type": "sphere", "material": "m", "center": [0,0,0], "radius": 1}]
	}`
	path := writeScene(t, badScene)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() = nil error, want *tracer.InputError for an unknown texture type")
	}
	if _, ok := err.(*tracer.InputError); !ok {
		t.Errorf("Load() error type = %T, want *tracer.InputError", err)
	}
}

func TestBuildResolvesConstantMediumWithDedicatedTexture(t *testing.T) {
	const mediumScene = `{
		"camera": {"position": [0,0,5], "look_at": [0,0,0]},
		"textures": {"smoke": {"type": "solid", "color": [0.9,0.9,0.9]}},
		"materials": {},
		"objects": [
			{"name": "fog", "type": "constant_medium", "min": [-1,-1,-1], "max": [1,1,1], "density": 0.5, "texture": "smoke"}
		]
	}`
	path := writeScene(t, mediumScene)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if sc.World == nil {
		t.Error("Load() produced a scene with a nil world")
	}
}

func TestBuildAcceptsWrappedPriorityObject(t *testing.T) {
	const wrappedScene = `{
		"camera": {"position": [0,0,5], "look_at": [0,0,0]},
		"textures": {"c": {"type": "solid", "color": [1,1,1]}},
		"materials": {"light": {"type": "light", "texture": "c"}},
		"objects": [
			{"name": "panel", "type": "xz_rect", "material": "light",
			 "x0": -1, "x1": 1, "z0": -1, "z1": 1, "k": 5,
			 "rotate_y": 15, "translate": [2,0,0], "flip_face": true}
		],
		"priority": ["panel"]
	}`
	path := writeScene(t, wrappedScene)
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := sc.Priority.(*tracer.HitableList); !ok {
		t.Fatalf("Priority = %T, want *tracer.HitableList", sc.Priority)
	}
}
