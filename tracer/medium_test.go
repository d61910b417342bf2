package tracer

import (
	"math"
	"testing"
)

func TestConstantMediumHitInsideBoundary(t *testing.T) {
	boundaryMat := NewLambertian(NewSolidColor(ColorF{0, 0, 0}))
	boundary := NewBoxy(Vec3{-1, -1, -1}, Vec3{1, 1, 1}, boundaryMat)
	medium := NewConstantMedium(boundary, 1.0, NewSolidColor(ColorF{1, 1, 1}))

	r := Ray{Origin: Vec3{0, 0, -5}, Direction: Vec3{0, 0, 1}}
	// A high enough density/short enough path makes a scatter event near-certain
	// across repeated independent draws; use many seeds instead of asserting on one.
	sawHit := false
	for idx := range 100 {
		rng := NewRandSeed(idx, 1)
		if _, ok := medium.Hit(r, 0.001, math.Inf(1), rng); ok {
			sawHit = true
			break
		}
	}
	if !sawHit {
		t.Error("Hit() never scattered across 100 independent draws through a unit-density medium")
	}
}

func TestConstantMediumMissesOutsideBoundary(t *testing.T) {
	boundaryMat := NewLambertian(NewSolidColor(ColorF{0, 0, 0}))
	boundary := NewBoxy(Vec3{-1, -1, -1}, Vec3{1, 1, 1}, boundaryMat)
	medium := NewConstantMedium(boundary, 1.0, NewSolidColor(ColorF{1, 1, 1}))

	r := Ray{Origin: Vec3{100, 100, -5}, Direction: Vec3{0, 0, 1}}
	if _, ok := medium.Hit(r, 0.001, math.Inf(1), NewRandSeed(0, 1)); ok {
		t.Error("Hit() = true, want false for a ray missing the boundary entirely")
	}
}

func TestConstantMediumBoundingBoxDelegatesToBoundary(t *testing.T) {
	boundaryMat := NewLambertian(NewSolidColor(ColorF{0, 0, 0}))
	boundary := NewBoxy(Vec3{-1, -2, -3}, Vec3{4, 5, 6}, boundaryMat)
	medium := NewConstantMedium(boundary, 1.0, NewSolidColor(ColorF{1, 1, 1}))

	box, ok := medium.BoundingBox(0, 1)
	if !ok {
		t.Fatal("BoundingBox() = false, want true")
	}
	want, _ := boundary.BoundingBox(0, 1)
	if box != want {
		t.Errorf("BoundingBox() = %v, want %v (boundary's own box)", box, want)
	}
}

func TestConstantMediumHitUsesIsotropicPhaseFunction(t *testing.T) {
	boundaryMat := NewLambertian(NewSolidColor(ColorF{0, 0, 0}))
	boundary := NewBoxy(Vec3{-1, -1, -1}, Vec3{1, 1, 1}, boundaryMat)
	medium := NewConstantMedium(boundary, 10.0, NewSolidColor(ColorF{1, 1, 1}))

	r := Ray{Origin: Vec3{0, 0, -5}, Direction: Vec3{0, 0, 1}}
	rec, ok := medium.Hit(r, 0.001, math.Inf(1), NewRandSeed(0, 1))
	if !ok {
		t.Fatal("Hit() = false, want true for a dense medium")
	}
	if _, ok := rec.Mat.(Isotropic); !ok {
		t.Errorf("Hit().Mat = %T, want Isotropic", rec.Mat)
	}
}
