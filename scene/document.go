// Package scene is the external JSON deserialization collaborator: it turns
// a scene description file into a *tracer.Scene without the tracer package
// ever depending on JSON specifics (spec.md §6).
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"fortio.org/raytracer/tracer"
)

// Document is the root of a scene description file.
type Document struct {
	Camera     CameraSpec            `json:"camera"`
	Background [3]float64            `json:"background"`
	Time0      float64               `json:"time0"`
	Time1      float64               `json:"time1"`
	Textures   map[string]TextureSpec `json:"textures"`
	Materials  map[string]MaterialSpec `json:"materials"`
	Objects    []ObjectSpec          `json:"objects"`
	Priority   []string              `json:"priority"`
}

// CameraSpec holds tracer.Camera's position, orientation and lens fields; the
// camera's shutter interval (Time0/Time1) is not read from the file.
type CameraSpec struct {
	Position      [3]float64 `json:"position"`
	LookAt        [3]float64 `json:"look_at"`
	Up            [3]float64 `json:"up"`
	VerticalFoV   float64    `json:"vertical_fov"`
	FocalLength   float64    `json:"focal_length"`
	FocusDistance float64    `json:"focus_distance"`
	Aperture      float64    `json:"aperture"`
}

// TextureSpec is a tagged union over tracer.Texture variants, identified by
// Type and referencing other textures by name (arena/ID-reference pattern,
// per spec.md Design Notes on materials/objects storage).
type TextureSpec struct {
	Type    string     `json:"type"` // "solid" | "checkered" | "noise"
	Color   [3]float64 `json:"color"`
	Even    string     `json:"even"`
	Odd     string     `json:"odd"`
	Density float64    `json:"density"`
	Scale   float64    `json:"scale"`
}

// MaterialSpec is a tagged union over tracer.Material variants.
type MaterialSpec struct {
	Type    string  `json:"type"` // "lambertian" | "metal" | "dielectric" | "light" | "isotropic"
	Texture string  `json:"texture"`
	Fuzz    float64 `json:"fuzz"`
	IOR     float64 `json:"ior"`
}

// ObjectSpec is a tagged union over tracer.Hittable variants, with optional
// RotateY/Translate/FlipFace wrapping (§4.4/§4.5). A constant medium is its
// own Type, whose box boundary spans Min..Max.
type ObjectSpec struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"` // "sphere"|"moving_sphere"|"xy_rect"|"xz_rect"|"yz_rect"|"box"|"constant_medium"
	Material string     `json:"material"`
	Center  [3]float64 `json:"center"`
	Center1 [3]float64 `json:"center1"`
	Radius  float64    `json:"radius"`
	X0      float64    `json:"x0,omitempty"`
	X1      float64    `json:"x1,omitempty"`
	Y0      float64    `json:"y0,omitempty"`
	Y1      float64    `json:"y1,omitempty"`
	Z0      float64    `json:"z0,omitempty"`
	Z1      float64    `json:"z1,omitempty"`
	K       float64    `json:"k,omitempty"`
	Min     [3]float64 `json:"min"`
	Max     [3]float64 `json:"max"`
	Density float64    `json:"density"`
	Texture string     `json:"texture,omitempty"` // constant_medium's phase-function texture

	Translate *[3]float64 `json:"translate,omitempty"`
	RotateY   *float64    `json:"rotate_y,omitempty"`
	FlipFace  bool        `json:"flip_face,omitempty"`
}

// Load reads and parses the scene file at path, returning the built
// tracer.Scene. Malformed input is reported as a *tracer.InputError; a
// structurally invalid scene (e.g. an unboundable object) surfaces the
// *tracer.SceneError produced by tracer.NewScene unchanged (§7).
func Load(path string) (*tracer.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &tracer.IOError{Path: path, Err: err}
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &tracer.InputError{Reason: "invalid JSON", Err: err}
	}
	return doc.Build()
}

// Build resolves the document's tagged unions and constructs the tracer
// scene. Textures and materials are resolved lazily with memoization so
// forward references (a texture referencing another defined later in the
// map) work regardless of Go map iteration order.
func (d *Document) Build() (*tracer.Scene, error) {
	resolver := &resolver{doc: d, textures: map[string]tracer.Texture{}, materials: map[string]tracer.Material{}, rng: tracer.NewRandomSource()}

	objectsByName := map[string]tracer.Hittable{}
	objects := make([]tracer.Hittable, 0, len(d.Objects))
	for _, spec := range d.Objects {
		obj, err := resolver.buildObject(spec)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
		if spec.Name != "" {
			objectsByName[spec.Name] = obj
		}
	}

	priority := &tracer.HitableList{}
	for _, name := range d.Priority {
		obj, ok := objectsByName[name]
		if !ok {
			return nil, &tracer.InputError{Reason: fmt.Sprintf("priority object %q not found among named objects", name)}
		}
		priority.Add(obj)
	}

	cam := buildCamera(d.Camera)
	background := tracer.RGB(d.Background[0], d.Background[1], d.Background[2])

	t0, t1 := d.Time0, d.Time1
	return tracer.NewScene(objects, priority, cam, background, t0, t1)
}

func buildCamera(spec CameraSpec) *tracer.Camera {
	return &tracer.Camera{
		Position:      tracer.XYZ(spec.Position[0], spec.Position[1], spec.Position[2]),
		LookAt:        tracer.XYZ(spec.LookAt[0], spec.LookAt[1], spec.LookAt[2]),
		Up:            tracer.XYZ(spec.Up[0], spec.Up[1], spec.Up[2]),
		VerticalFoV:   spec.VerticalFoV,
		FocalLength:   spec.FocalLength,
		FocusDistance: spec.FocusDistance,
		Aperture:      spec.Aperture,
	}
}

// resolver memoizes texture/material construction while walking the
// document's arenas, so textures referencing textures resolve once each.
type resolver struct {
	doc       *Document
	textures  map[string]tracer.Texture
	materials map[string]tracer.Material
	rng       tracer.Rand
}

func (r *resolver) texture(name string) (tracer.Texture, error) {
	if t, ok := r.textures[name]; ok {
		return t, nil
	}
	spec, ok := r.doc.Textures[name]
	if !ok {
		return nil, &tracer.InputError{Reason: fmt.Sprintf("texture %q not defined", name)}
	}
	var t tracer.Texture
	switch spec.Type {
	case "solid", "":
		t = tracer.NewSolidColor(tracer.RGB(spec.Color[0], spec.Color[1], spec.Color[2]))
	case "checkered":
		even, err := r.texture(spec.Even)
		if err != nil {
			return nil, err
		}
		odd, err := r.texture(spec.Odd)
		if err != nil {
			return nil, err
		}
		density := spec.Density
		if density == 0 {
			density = 10
		}
		t = tracer.NewCheckered(even, odd, density)
	case "noise":
		scale := spec.Scale
		if scale == 0 {
			scale = 4
		}
		t = tracer.NewNoiseTexture(r.rng, scale)
	default:
		return nil, &tracer.InputError{Reason: fmt.Sprintf("unknown texture type %q", spec.Type)}
	}
	r.textures[name] = t
	return t, nil
}

func (r *resolver) material(name string) (tracer.Material, error) {
	if m, ok := r.materials[name]; ok {
		return m, nil
	}
	spec, ok := r.doc.Materials[name]
	if !ok {
		return nil, &tracer.InputError{Reason: fmt.Sprintf("material %q not defined", name)}
	}
	tex, err := r.texture(spec.Texture)
	if err != nil {
		return nil, err
	}
	var m tracer.Material
	switch spec.Type {
	case "lambertian", "":
		m = tracer.NewLambertian(tex)
	case "metal":
		fuzz := spec.Fuzz
		if fuzz < 0 {
			fuzz = 0
		}
		if fuzz > 1 {
			fuzz = 1
		}
		m = tracer.NewMetal(tex, fuzz)
	case "dielectric":
		ior := spec.IOR
		if ior <= 0 {
			ior = 1.5
		}
		m = tracer.NewDielectric(ior)
	case "light":
		m = tracer.NewDiffuseLight(tex)
	case "isotropic":
		m = tracer.NewIsotropic(tex)
	default:
		return nil, &tracer.InputError{Reason: fmt.Sprintf("unknown material type %q", spec.Type)}
	}
	r.materials[name] = m
	return m, nil
}

func (r *resolver) buildObject(spec ObjectSpec) (tracer.Hittable, error) {
	var obj tracer.Hittable
	switch spec.Type {
	case "sphere":
		mat, err := r.material(spec.Material)
		if err != nil {
			return nil, err
		}
		obj = tracer.NewSphere(vec(spec.Center), spec.Radius, mat)
	case "moving_sphere":
		mat, err := r.material(spec.Material)
		if err != nil {
			return nil, err
		}
		obj = tracer.NewMovingSphere(vec(spec.Center), vec(spec.Center1), r.doc.Time0, r.doc.Time1, spec.Radius, mat)
	case "xy_rect":
		mat, err := r.material(spec.Material)
		if err != nil {
			return nil, err
		}
		obj = tracer.NewXYRect(spec.X0, spec.X1, spec.Y0, spec.Y1, spec.K, mat)
	case "xz_rect":
		mat, err := r.material(spec.Material)
		if err != nil {
			return nil, err
		}
		obj = tracer.NewXZRect(spec.X0, spec.X1, spec.Z0, spec.Z1, spec.K, mat)
	case "yz_rect":
		mat, err := r.material(spec.Material)
		if err != nil {
			return nil, err
		}
		obj = tracer.NewYZRect(spec.Y0, spec.Y1, spec.Z0, spec.Z1, spec.K, mat)
	case "box":
		mat, err := r.material(spec.Material)
		if err != nil {
			return nil, err
		}
		obj = tracer.NewBoxy(vec(spec.Min), vec(spec.Max), mat)
	case "constant_medium":
		boundaryMat := tracer.NewLambertian(tracer.NewSolidColor(tracer.RGB(0, 0, 0)))
		boundary := tracer.NewBoxy(vec(spec.Min), vec(spec.Max), boundaryMat)
		tex, err := r.texture(spec.Texture)
		if err != nil {
			return nil, err
		}
		obj = tracer.NewConstantMedium(boundary, spec.Density, tex)
	default:
		return nil, &tracer.InputError{Reason: fmt.Sprintf("unknown object type %q", spec.Type)}
	}

	if spec.RotateY != nil {
		obj = tracer.NewRotateY(obj, *spec.RotateY)
	}
	if spec.Translate != nil {
		obj = tracer.NewTranslate(obj, vec(*spec.Translate))
	}
	if spec.FlipFace {
		obj = tracer.NewFlipFace(obj)
	}
	return obj, nil
}

func vec(a [3]float64) tracer.Vec3 { return tracer.XYZ(a[0], a[1], a[2]) }
