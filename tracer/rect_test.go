package tracer

import (
	"math"
	"testing"
)

func TestXYRectHitAndUV(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{1, 0, 0}))
	rect := NewXYRect(0, 4, 0, 2, -1, mat)
	r := Ray{Origin: Vec3{2, 1, 0}, Direction: Vec3{0, 0, -1}}
	rec, ok := rect.Hit(r, 0.001, math.Inf(1), Rand{})
	if !ok {
		t.Fatal("Hit() = false, want true")
	}
	if math.Abs(rec.U-0.5) > 1e-9 || math.Abs(rec.V-0.5) > 1e-9 {
		t.Errorf("Hit() UV = (%v,%v), want (0.5,0.5)", rec.U, rec.V)
	}
}

func TestXYRectHitOutsideBounds(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{1, 0, 0}))
	rect := NewXYRect(0, 4, 0, 2, -1, mat)
	r := Ray{Origin: Vec3{100, 100, 0}, Direction: Vec3{0, 0, -1}}
	if _, ok := rect.Hit(r, 0.001, math.Inf(1), Rand{}); ok {
		t.Error("Hit() = true, want false for ray outside rectangle extent")
	}
}

func TestXZRectHit(t *testing.T) {
	mat := NewDiffuseLight(NewSolidColor(ColorF{4, 4, 4}))
	rect := NewXZRect(0, 10, 0, 10, 5, mat)
	r := Ray{Origin: Vec3{5, 0, 5}, Direction: Vec3{0, 1, 0}}
	rec, ok := rect.Hit(r, 0.001, math.Inf(1), Rand{})
	if !ok {
		t.Fatal("Hit() = false, want true")
	}
	if math.Abs(rec.T-5) > 1e-9 {
		t.Errorf("Hit().T = %v, want 5", rec.T)
	}
}

func TestYZRectHit(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{0, 1, 0}))
	rect := NewYZRect(0, 10, 0, 10, 3, mat)
	r := Ray{Origin: Vec3{0, 5, 5}, Direction: Vec3{1, 0, 0}}
	rec, ok := rect.Hit(r, 0.001, math.Inf(1), Rand{})
	if !ok {
		t.Fatal("Hit() = false, want true")
	}
	if math.Abs(rec.T-3) > 1e-9 {
		t.Errorf("Hit().T = %v, want 3", rec.T)
	}
}

func TestRectBoundingBoxesArePadded(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{1, 1, 1}))
	xy, _ := NewXYRect(0, 1, 0, 1, 5, mat).BoundingBox(0, 1)
	xz, _ := NewXZRect(0, 1, 0, 1, 5, mat).BoundingBox(0, 1)
	yz, _ := NewYZRect(0, 1, 0, 1, 5, mat).BoundingBox(0, 1)
	if xy[2].Length() == 0 {
		t.Error("XYRect bounding box has zero-length Z axis")
	}
	if xz[1].Length() == 0 {
		t.Error("XZRect bounding box has zero-length Y axis")
	}
	if yz[0].Length() == 0 {
		t.Error("YZRect bounding box has zero-length X axis")
	}
}

func TestXZRectIsImportanceSamplable(t *testing.T) {
	mat := NewDiffuseLight(NewSolidColor(ColorF{10, 10, 10}))
	rect := NewXZRect(200, 300, 200, 300, 500, mat)
	origin := Vec3{250, 0, 250}
	rng := NewRandSeed(0, 1)

	for range 50 {
		dir := rect.RandomPoint(origin, rng)
		pdf := rect.PDFValue(origin, dir, 0, rng)
		if pdf <= 0 {
			t.Fatal("PDFValue() <= 0 for a direction sampled via RandomPoint")
		}
	}
}
