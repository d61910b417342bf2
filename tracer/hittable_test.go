package tracer

import (
	"math"
	"testing"
)

func TestHitableListClosestHit(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{1, 1, 1}))
	near := NewSphere(Vec3{0, 0, -2}, 0.5, mat)
	far := NewSphere(Vec3{0, 0, -5}, 0.5, mat)
	list := &HitableList{}
	list.Add(near)
	list.Add(far)

	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, -1}}
	rec, ok := list.Hit(r, 0.001, math.Inf(1), Rand{})
	if !ok {
		t.Fatal("Hit() = false, want true")
	}
	if math.Abs(rec.T-1.5) > 1e-9 {
		t.Errorf("Hit().T = %v, want 1.5 (nearer sphere)", rec.T)
	}
}

func TestHitableListEmptyMiss(t *testing.T) {
	list := &HitableList{}
	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, -1}}
	if _, ok := list.Hit(r, 0.001, math.Inf(1), Rand{}); ok {
		t.Error("Hit() on empty list = true, want false")
	}
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("BoundingBox() on empty list = true, want false")
	}
}

func TestHitableListBoundingBoxUnion(t *testing.T) {
	mat := NewLambertian(NewSolidColor(ColorF{1, 1, 1}))
	list := &HitableList{}
	list.Add(NewSphere(Vec3{-5, 0, 0}, 1, mat))
	list.Add(NewSphere(Vec3{5, 0, 0}, 1, mat))
	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("BoundingBox() = false, want true")
	}
	if box.Min().X() != -6 || box.Max().X() != 6 {
		t.Errorf("BoundingBox() = %v, want x in [-6,6]", box)
	}
}

func TestHitableListPDFValueDegradesWithoutPriorityMembers(t *testing.T) {
	list := &HitableList{}
	if got := list.PDFValue(Vec3{}, Vec3{0, 0, -1}, 0, Rand{}); got != 0 {
		t.Errorf("PDFValue() on empty list = %v, want 0", got)
	}
}

func TestHitableListRandomPointFallsBackToUnitVector(t *testing.T) {
	rng := NewRandSeed(0, 1)
	list := &HitableList{}
	v := list.RandomPoint(Vec3{0, 0, 0}, rng)
	if math.Abs(Length(v)-1) > 1e-9 {
		t.Errorf("RandomPoint() fallback length = %v, want 1", Length(v))
	}
}

func TestSetFaceNormalOrientation(t *testing.T) {
	var hr HitRecord
	r := Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 0, -1}}
	hr.SetFaceNormal(r, Vec3{0, 0, 1})
	if !hr.FrontFace {
		t.Error("SetFaceNormal(): expected front face when normal opposes ray")
	}
	if hr.Normal != (Vec3{0, 0, 1}) {
		t.Errorf("Normal = %v, want unchanged outward normal on front face", hr.Normal)
	}

	hr.SetFaceNormal(r, Vec3{0, 0, -1})
	if hr.FrontFace {
		t.Error("SetFaceNormal(): expected back face when normal aligns with ray")
	}
	if hr.Normal != (Vec3{0, 0, 1}) {
		t.Errorf("Normal = %v, want flipped outward normal on back face", hr.Normal)
	}
}
