package tracer

import (
	"math"
	"testing"
)

func TestBoxyHitFrontFace(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{1, 1, 1}))
	b := NewBoxy(Vec3{0, 0, 0}, Vec3{2, 2, 2}, mat)
	r := Ray{Origin: Vec3{1, 1, -5}, Direction: Vec3{0, 0, 1}}
	rec, ok := b.Hit(r, 0.001, math.Inf(1), Rand{})
	if !ok {
		t.Fatal("Hit() = false, want true")
	}
	if math.Abs(rec.T-5) > 1e-9 {
		t.Errorf("Hit().T = %v, want 5", rec.T)
	}
	if !rec.FrontFace {
		t.Error("Hit().FrontFace = false, want true for a ray entering the box from outside")
	}
}

func TestBoxyBoundingBox(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{1, 1, 1}))
	b := NewBoxy(Vec3{-1, -2, -3}, Vec3{4, 5, 6}, mat)
	box, ok := b.BoundingBox(0, 1)
	if !ok {
		t.Fatal("BoundingBox() = false, want true")
	}
	if got, want := box.Min(), (Vec3{-1, -2, -3}); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got, want := box.Max(), (Vec3{4, 5, 6}); got != want {
		t.Errorf("Max() = %v, want %v", got, want)
	}
}

func TestBoxyMiss(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{1, 1, 1}))
	b := NewBoxy(Vec3{0, 0, 0}, Vec3{1, 1, 1}, mat)
	r := Ray{Origin: Vec3{100, 100, -5}, Direction: Vec3{0, 0, 1}}
	if _, ok := b.Hit(r, 0.001, math.Inf(1), Rand{}); ok {
		t.Error("Hit() = true, want false for ray far from the box")
	}
}
