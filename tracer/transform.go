package tracer

import "math"

// Translate wraps an object, offsetting every ray into the object's local
// space before testing it (original_source/src/objects/translate.rs).
type Translate struct {
	Object Hittable
	Offset Vec3
}

// NewTranslate builds a Translate wrapper.
func NewTranslate(object Hittable, offset Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit implements Hittable: tests the offset ray, then shifts the hit point
// back into world space.
func (t *Translate) Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool) {
	offsetRay := Ray{Origin: Sub(r.Origin, t.Offset), Direction: r.Direction, Time: r.Time}
	hr, ok := t.Object.Hit(offsetRay, tMin, tMax, rng)
	if !ok {
		return HitRecord{}, false
	}
	hr.Point = Add(hr.Point, t.Offset)
	// A pure translation doesn't change the ray-direction/normal relationship
	// the child's Hit already resolved, so FrontFace/Normal carry over as-is;
	// re-deriving them from the already-corrected Normal via SetFaceNormal
	// would force FrontFace to true unconditionally (outwardNormal must be
	// the raw geometric normal, not one SetFaceNormal already processed).
	return hr, true
}

// BoundingBox implements Hittable: the wrapped object's box, shifted by Offset.
func (t *Translate) BoundingBox(t0, t1 float64) (AABB, bool) {
	box, ok := t.Object.BoundingBox(t0, t1)
	if !ok {
		return AABB{}, false
	}
	return NewAABB(Add(box.Min(), t.Offset), Add(box.Max(), t.Offset)), true
}

// RotateY wraps an object with a rotation about the Y axis, recomputing the
// AABB from all eight corners of the child's box (original_source's
// RotateY::new).
type RotateY struct {
	Object             Hittable
	sinTheta, cosTheta float64
	box                AABB
	hasBox             bool
}

// NewRotateY builds a RotateY wrapper rotating object by angleDegrees about Y.
func NewRotateY(object Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	sinTheta, cosTheta := math.Sin(radians), math.Cos(radians)

	r := &RotateY{Object: object, sinTheta: sinTheta, cosTheta: cosTheta}
	bbox, hasBox := object.BoundingBox(0, 1)
	r.hasBox = hasBox
	if !hasBox {
		return r
	}

	minV := Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV := Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for i := range 2 {
		for j := range 2 {
			for k := range 2 {
				x := float64(i)*bbox.Max().X() + float64(1-i)*bbox.Min().X()
				y := float64(j)*bbox.Max().Y() + float64(1-j)*bbox.Min().Y()
				z := float64(k)*bbox.Max().Z() + float64(1-k)*bbox.Min().Z()

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				tester := Vec3{newX, y, newZ}
				for c := range 3 {
					minV[c] = math.Min(minV[c], tester[c])
					maxV[c] = math.Max(maxV[c], tester[c])
				}
			}
		}
	}

	r.box = NewAABB(minV, maxV)
	return r
}

// Hit implements Hittable: rotates the ray into the object's local frame,
// tests it, then rotates the hit point and normal back into world space.
func (rot *RotateY) Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool) {
	origin := r.Origin
	direction := r.Direction

	origin[0] = rot.cosTheta*r.Origin.X() - rot.sinTheta*r.Origin.Z()
	origin[2] = rot.sinTheta*r.Origin.X() + rot.cosTheta*r.Origin.Z()

	direction[0] = rot.cosTheta*r.Direction.X() - rot.sinTheta*r.Direction.Z()
	direction[2] = rot.sinTheta*r.Direction.X() + rot.cosTheta*r.Direction.Z()

	rotatedRay := Ray{Origin: origin, Direction: direction, Time: r.Time}

	hr, ok := rot.Object.Hit(rotatedRay, tMin, tMax, rng)
	if !ok {
		return HitRecord{}, false
	}

	point := hr.Point
	point[0] = rot.cosTheta*hr.Point.X() + rot.sinTheta*hr.Point.Z()
	point[2] = -rot.sinTheta*hr.Point.X() + rot.cosTheta*hr.Point.Z()

	normal := hr.Normal
	normal[0] = rot.cosTheta*hr.Normal.X() + rot.sinTheta*hr.Normal.Z()
	normal[2] = -rot.sinTheta*hr.Normal.X() + rot.cosTheta*hr.Normal.Z()

	// The same rotation applied to both the ray direction and the normal
	// preserves the sign of their dot product, so the child's FrontFace is
	// still correct in world space; only the vectors themselves need
	// rotating back. (Re-deriving FrontFace via SetFaceNormal here would feed
	// it the already-corrected local normal as if it were raw, which always
	// yields FrontFace = true.)
	hr.Point = point
	hr.Normal = normal
	return hr, true
}

// BoundingBox implements Hittable.
func (rot *RotateY) BoundingBox(_, _ float64) (AABB, bool) {
	return rot.box, rot.hasBox
}

// FlipFace wraps an object, inverting FrontFace on every hit, used to orient
// a rectangle light facing into a box (e.g. the Cornell box's ceiling light).
type FlipFace struct {
	Object Hittable
}

// NewFlipFace builds a FlipFace wrapper.
func NewFlipFace(object Hittable) *FlipFace { return &FlipFace{Object: object} }

// Hit implements Hittable.
func (f *FlipFace) Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool) {
	hr, ok := f.Object.Hit(r, tMin, tMax, rng)
	if !ok {
		return HitRecord{}, false
	}
	hr.FrontFace = !hr.FrontFace
	return hr, true
}

// BoundingBox implements Hittable.
func (f *FlipFace) BoundingBox(t0, t1 float64) (AABB, bool) {
	return f.Object.BoundingBox(t0, t1)
}

// PDFValue implements PriorityHittable by delegating to the wrapped object,
// if it supports importance sampling; flipping faces doesn't change the
// solid angle a light subtends. Lets a FlipFace-wrapped rectangle (the usual
// way a light is oriented into a box) still serve as a priority object.
func (f *FlipFace) PDFValue(origin, direction Vec3, time float64, rng Rand) float64 {
	if p, ok := f.Object.(PriorityHittable); ok {
		return p.PDFValue(origin, direction, time, rng)
	}
	return 0
}

// RandomPoint implements PriorityHittable by delegating to the wrapped object.
func (f *FlipFace) RandomPoint(origin Vec3, rng Rand) Vec3 {
	if p, ok := f.Object.(PriorityHittable); ok {
		return p.RandomPoint(origin, rng)
	}
	return RandomUnitVector(rng)
}
