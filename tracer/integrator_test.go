package tracer

import (
	"math"
	"testing"
)

func mustScene(t *testing.T, objects []Hittable, priority PriorityHittable, background ColorF) *Scene {
	t.Helper()
	cam := &Camera{Position: Vec3{0, 0, 0}, LookAt: Vec3{0, 0, -1}}
	cam.Initialize(100, 100)
	sc, err := NewScene(objects, priority, cam, background, 0, 1)
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	return sc
}

func TestColorizeMissReturnsBackground(t *testing.T) {
	sc := mustScene(t, nil, nil, ColorF{0.1, 0.2, 0.3})
	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, -1}}
	got := Colorize(r, sc, 0, 10, NewRandSeed(0, 1))
	if got != (ColorF{0.1, 0.2, 0.3}) {
		t.Errorf("Colorize() = %v, want background", got)
	}
}

func TestColorizeDepthExhaustionReturnsBackground(t *testing.T) {
	mat := NewMetal(NewSolidColor(ColorF{1, 1, 1}), 0)
	sphere := NewSphere(Vec3{0, 0, -2}, 50, mat) // a giant mirror ball around the ray
	sc := mustScene(t, []Hittable{sphere}, nil, ColorF{1, 1, 1})
	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, -1}}
	got := Colorize(r, sc, 11, 10, NewRandSeed(0, 1))
	if got != (ColorF{1, 1, 1}) {
		t.Errorf("Colorize() past maxDepth = %v, want background", got)
	}
}

func TestColorizeEmitterReturnsEmissionWhenNotScattering(t *testing.T) {
	light := NewDiffuseLight(NewSolidColor(ColorF{5, 5, 5}))
	sphere := NewSphere(Vec3{0, 0, -5}, 1, light)
	sc := mustScene(t, []Hittable{sphere}, nil, ColorF{})
	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, -1}}
	got := Colorize(r, sc, 0, 10, NewRandSeed(0, 1))
	if got != (ColorF{5, 5, 5}) {
		t.Errorf("Colorize() of a pure emitter = %v, want (5,5,5)", got)
	}
}

func TestColorizeSpecularRecursesWithAttenuation(t *testing.T) {
	mirror := NewMetal(NewSolidColor(ColorF{0.5, 0.5, 0.5}), 0)
	mirrorSphere := NewSphere(Vec3{0, 0, -5}, 1, mirror)

	// A straight-on hit at the sphere's near pole retroreflects the ray back
	// the way it came, so it escapes to the background and gets attenuated
	// by the mirror's color exactly once.
	sc := mustScene(t, []Hittable{mirrorSphere}, nil, ColorF{2, 2, 2})
	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, -1}}
	got := Colorize(r, sc, 0, 10, NewRandSeed(0, 1))
	want := ColorF{1, 1, 1}
	for i := range 3 {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("Colorize() = %v, want %v (background * attenuation)", got, want)
		}
	}
}

// emissiveMirror scatters specularly like Metal but also emits, so the
// recursion's contribution and the hit point's own emission are both
// observable in the same sample.
type emissiveMirror struct {
	emission ColorF
}

func (m emissiveMirror) Scatter(rIn Ray, hit HitRecord, rng Rand) (ScatterRecord, bool) {
	reflected := Reflect(Unit(rIn.Direction), hit.Normal)
	return ScatterRecord{Kind: Specular, Attenuation: ColorF{1, 1, 1}, SpecularRay: NewRay(hit.Point, reflected)}, true
}

func (m emissiveMirror) ScatteringPDF(Ray, HitRecord, Ray, Rand) float64 { return 0 }

func (m emissiveMirror) Emit(_ Ray, hit HitRecord, _, _ float64, _ Vec3) ColorF {
	if !hit.FrontFace {
		return black
	}
	return m.emission
}

func TestColorizeSpecularAddsOwnEmissionToRecursion(t *testing.T) {
	mat := emissiveMirror{emission: ColorF{3, 0, 0}}
	sphere := NewSphere(Vec3{0, 0, -5}, 1, mat)

	sc := mustScene(t, []Hittable{sphere}, nil, ColorF{2, 2, 2})
	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, -1}}
	got := Colorize(r, sc, 0, 10, NewRandSeed(0, 1))

	// Retroreflection bounces straight back out to the background,
	// unattenuated (Attenuation = 1,1,1), plus the hit point's own emission.
	want := ColorF{3 + 2, 0 + 2, 0 + 2}
	for i := range 3 {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("Colorize() = %v, want %v (own emission + attenuation*recurse)", got, want)
		}
	}
}

func TestColorizeDiffuseNeverNegativeOrNaN(t *testing.T) {
	white := NewLambertian(NewSolidColor(ColorF{0.7, 0.7, 0.7}))
	ground := NewSphere(Vec3{0, -1000, -5}, 1000, white)
	light := NewDiffuseLight(NewSolidColor(ColorF{4, 4, 4}))
	lightRect := NewXZRect(-2, 2, -7, -3, 5, light)

	priority := &HitableList{}
	priority.Add(lightRect)
	sc := mustScene(t, []Hittable{ground, lightRect}, priority, ColorF{})

	rng := NewRandSeed(0, 1)
	for range 50 {
		r := Ray{Origin: Vec3{0, 1, 0}, Direction: Unit(Vec3{rng.Float64() - 0.5, -1, rng.Float64() - 0.5})}
		got := Colorize(r, sc, 0, 8, rng)
		for i, c := range got {
			if math.IsNaN(c) || c < 0 {
				t.Fatalf("Colorize()[%d] = %v, want finite and non-negative", i, c)
			}
		}
	}
}
