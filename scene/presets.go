package scene

import (
	"fmt"

	"fortio.org/raytracer/tracer"
)

// Preset builds one of the built-in demo scenes by name, recovering the
// scene catalog dropped by the JSON-only distillation of the spec. The
// scene-selection pattern (try a named preset, fall back/fail otherwise) is
// grounded on
// _examples/df07-go-progressive-raytracer/main.go's tryLoadPBRTScene-then-
// builtin-switch shape; the scenes themselves recover
// original_source/src/scenes/{random_scene,two_perlin_spheres,
// simple_light_lambertian,cornell_with_sphere,
// cornell_with_subsurface_sphere}.rs in tracer's idiom. "cornell-boxes" has
// no original_source counterpart; see its doc comment.
func Preset(name string) (*tracer.Scene, error) {
	switch name {
	case "default", "two-noise-spheres":
		return twoNoiseSpheres()
	case "random":
		return randomScene()
	case "simple-light":
		return simpleLight()
	case "cornell":
		return cornellBox()
	case "cornell-glass":
		return cornellGlass()
	case "cornell-boxes":
		return cornellBoxes()
	default:
		return nil, &tracer.InputError{Reason: fmt.Sprintf("unknown preset %q", name)}
	}
}

// randomScene recovers original_source/src/scenes/random_scene.rs: a
// checkered ground plane plus an 22x22 grid of small random spheres (80%
// moving-Lambertian, 15% metal, 5% glass) around three feature spheres
// (glass, Lambertian, metal), lit by a flat gray background.
func randomScene() (*tracer.Scene, error) {
	rng := tracer.NewRandomSource()

	groundTexture := tracer.NewCheckered(
		tracer.NewSolidColor(tracer.RGB(0.2, 0.3, 0.1)),
		tracer.NewSolidColor(tracer.RGB(0.9, 0.9, 0.9)),
		10,
	)
	objects := []tracer.Hittable{
		tracer.NewSphere(tracer.XYZ(0, -1000, 0), 1000, tracer.NewLambertian(groundTexture)),
	}

	avoid := tracer.XYZ(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := tracer.XYZ(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if tracer.Length(tracer.Sub(center, avoid)) <= 0.9 {
				continue
			}
			switch {
			case chooseMat < 0.8:
				albedo := tracer.Mul(tracer.RandomVec3(rng), tracer.RandomVec3(rng))
				mat := tracer.NewLambertian(tracer.NewSolidColor(tracer.ColorF(albedo)))
				center2 := tracer.Add(center, tracer.XYZ(0, 0.5*rng.Float64(), 0))
				objects = append(objects, tracer.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
			case chooseMat < 0.95:
				albedo := tracer.RandomVec3Range(rng, 0.5, 1)
				fuzz := 0.5 * rng.Float64()
				mat := tracer.NewMetal(tracer.NewSolidColor(tracer.ColorF(albedo)), fuzz)
				objects = append(objects, tracer.NewSphere(center, 0.2, mat))
			default:
				objects = append(objects, tracer.NewSphere(center, 0.2, tracer.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		tracer.NewSphere(tracer.XYZ(0, 1, 0), 1, tracer.NewDielectric(1.5)),
		tracer.NewSphere(tracer.XYZ(-4, 1, 0), 1, tracer.NewLambertian(tracer.NewSolidColor(tracer.RGB(0.4, 0.2, 0.1)))),
		tracer.NewSphere(tracer.XYZ(4, 1, 0), 1, tracer.NewMetal(tracer.NewSolidColor(tracer.RGB(0.7, 0.6, 0.5)), 0)),
	)

	cam := &tracer.Camera{
		Position:      tracer.XYZ(13, 2, 3),
		LookAt:        tracer.XYZ(0, 0, 0),
		Up:            tracer.XYZ(0, 1, 0),
		VerticalFoV:   25,
		FocusDistance: 10,
	}

	return tracer.NewScene(objects, nil, cam, tracer.RGB(0.7, 0.7, 0.7), 0, 1)
}

// twoNoiseSpheres recovers original_source/src/scenes/two_perlin_spheres.rs:
// a ground plane and a sphere both textured with the same Perlin marble
// noise, lit by a flat sky-blue background.
func twoNoiseSpheres() (*tracer.Scene, error) {
	rng := tracer.NewRandomSource()
	noise := tracer.NewNoiseTexture(rng, 4)
	mat := tracer.NewLambertian(noise)

	objects := []tracer.Hittable{
		tracer.NewSphere(tracer.XYZ(0, -1000, 0), 1000, mat),
		tracer.NewSphere(tracer.XYZ(0, 2, 0), 2, mat),
	}

	cam := &tracer.Camera{
		Position:      tracer.XYZ(13, 2, 3),
		LookAt:        tracer.XYZ(0, 0, 0),
		Up:            tracer.XYZ(0, 1, 0),
		VerticalFoV:   20,
		FocusDistance: 10,
	}

	background := tracer.RGB(0.5, 0.7, 1.0)
	return tracer.NewScene(objects, nil, cam, background, 0, 1)
}

// simpleLight recovers original_source/src/scenes/simple_light_lambertian.rs:
// a ground plane, a lit sphere, and an emissive sphere plus an emissive
// rectangle, against a black background so only the lights contribute.
func simpleLight() (*tracer.Scene, error) {
	rng := tracer.NewRandomSource()
	noise := tracer.NewNoiseTexture(rng, 4)
	ground := tracer.NewLambertian(noise)
	light := tracer.NewDiffuseLight(tracer.NewSolidColor(tracer.RGB(4, 4, 4)))

	lightRect := tracer.NewXYRect(3, 5, 1, 3, -2, light)

	objects := []tracer.Hittable{
		tracer.NewSphere(tracer.XYZ(0, -1000, 0), 1000, ground),
		tracer.NewSphere(tracer.XYZ(0, 2, 0), 2, ground),
		tracer.NewSphere(tracer.XYZ(0, 7, 0), 2, light),
		lightRect,
	}

	priority := &tracer.HitableList{}
	priority.Add(lightRect)

	cam := &tracer.Camera{
		Position:      tracer.XYZ(20, 5, 2),
		LookAt:        tracer.XYZ(0, 2, 0),
		Up:            tracer.XYZ(0, 1, 0),
		VerticalFoV:   20,
		FocusDistance: 1,
	}

	return tracer.NewScene(objects, priority, cam, tracer.ColorF{}, 0, 1)
}

// cornellWalls builds the five colored walls and ceiling light shared by all
// Cornell-box variants (original_source/src/scenes/cornell_with_sphere.rs
// and cornell_with_subsurface_sphere.rs agree on the box geometry and the
// (113,443)x(127,432)@554 light panel emitting (7,7,7)). Returns the wall
// objects (the light rect among them), the light rect on its own for the
// caller's priority list, and the camera.
func cornellWalls() ([]tracer.Hittable, *tracer.FlipFace, *tracer.Camera) {
	red := tracer.NewLambertian(tracer.NewSolidColor(tracer.RGB(0.65, 0.05, 0.05)))
	white := tracer.NewLambertian(tracer.NewSolidColor(tracer.RGB(0.73, 0.73, 0.73)))
	green := tracer.NewLambertian(tracer.NewSolidColor(tracer.RGB(0.12, 0.45, 0.15)))
	light := tracer.NewDiffuseLight(tracer.NewSolidColor(tracer.RGB(7, 7, 7)))

	lightRect := tracer.NewFlipFace(tracer.NewXZRect(113, 443, 127, 432, 554, light))

	objects := []tracer.Hittable{
		tracer.NewYZRect(0, 555, 0, 555, 555, green),
		tracer.NewYZRect(0, 555, 0, 555, 0, red),
		lightRect,
		tracer.NewXZRect(0, 555, 0, 555, 0, white),
		tracer.NewXZRect(0, 555, 0, 555, 555, white),
		tracer.NewXYRect(0, 555, 0, 555, 555, white),
	}

	cam := &tracer.Camera{
		Position:      tracer.XYZ(278, 278, -800),
		LookAt:        tracer.XYZ(278, 278, 0),
		Up:            tracer.XYZ(0, 1, 0),
		VerticalFoV:   40,
		FocusDistance: 10,
	}

	return objects, lightRect, cam
}

// cornellBox recovers original_source/src/scenes/cornell_with_sphere.rs: the
// Cornell box walls plus a single dielectric (glass) sphere at the room's
// center, lit only by the ceiling light.
func cornellBox() (*tracer.Scene, error) {
	objects, lightRect, cam := cornellWalls()
	glassSphere := tracer.NewSphere(tracer.XYZ(278, 278, 278), 120, tracer.NewDielectric(1.5))
	objects = append(objects, glassSphere)

	priority := &tracer.HitableList{}
	priority.Add(lightRect)

	return tracer.NewScene(objects, priority, cam, tracer.ColorF{}, 0, 1)
}

// cornellGlass recovers
// original_source/src/scenes/cornell_with_subsurface_sphere.rs: the same
// glass sphere as cornellBox, plus a constant-density blue medium using the
// sphere itself as its boundary to approximate subsurface scattering.
func cornellGlass() (*tracer.Scene, error) {
	objects, lightRect, cam := cornellWalls()
	glassSphere := tracer.NewSphere(tracer.XYZ(278, 278, 278), 120, tracer.NewDielectric(1.5))
	subsurface := tracer.NewConstantMedium(glassSphere, 0.2, tracer.NewSolidColor(tracer.RGB(0.2, 0.4, 0.9)))
	objects = append(objects, glassSphere, subsurface)

	priority := &tracer.HitableList{}
	priority.Add(lightRect)

	return tracer.NewScene(objects, priority, cam, tracer.ColorF{}, 0, 1)
}

// cornellBoxes is the generic two-opaque-boxes Cornell variant familiar from
// the wider ray-tracing-in-a-weekend lineage (not named in any retrieved
// original_source file, included as a distinct preset rather than folded
// into cornellBox so "cornell" keeps matching cornell_with_sphere.rs
// exactly).
func cornellBoxes() (*tracer.Scene, error) {
	objects, lightRect, cam := cornellWalls()
	white := tracer.NewLambertian(tracer.NewSolidColor(tracer.RGB(0.73, 0.73, 0.73)))

	box1 := tracer.NewTranslate(
		tracer.NewRotateY(tracer.NewBoxy(tracer.XYZ(0, 0, 0), tracer.XYZ(165, 330, 165), white), 15),
		tracer.XYZ(265, 0, 295))
	box2 := tracer.NewTranslate(
		tracer.NewRotateY(tracer.NewBoxy(tracer.XYZ(0, 0, 0), tracer.XYZ(165, 165, 165), white), -18),
		tracer.XYZ(130, 0, 65))
	objects = append(objects, box1, box2)

	priority := &tracer.HitableList{}
	priority.Add(lightRect)

	return tracer.NewScene(objects, priority, cam, tracer.ColorF{}, 0, 1)
}
