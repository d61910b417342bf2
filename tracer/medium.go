package tracer

import "math"

// ConstantMedium is a homogeneous participating medium (fog/smoke) that
// scatters rays at a constant probability per unit distance once inside a
// boundary volume. Ported exactly from
// original_source/src/objects/constant_medium.rs.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity float64
	PhaseFunction Material
}

// NewConstantMedium builds a ConstantMedium with the given boundary shape,
// density, and uniform-color phase function.
func NewConstantMedium(boundary Hittable, density float64, tex Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		PhaseFunction: NewIsotropic(tex),
	}
}

// Hit implements Hittable: finds the ray's entry/exit through the boundary,
// then samples an exponentially distributed scattering distance inside it.
func (c *ConstantMedium) Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool) {
	rec1, ok := c.Boundary.Hit(r, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return HitRecord{}, false
	}
	rec2, ok := c.Boundary.Hit(r, rec1.T+ConstantMediumEpsilon, math.Inf(1), rng)
	if !ok {
		return HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := Length(r.Direction)
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := c.NegInvDensity * math.Log(rng.Float64())

	if hitDistance > distanceInsideBoundary {
		return HitRecord{}, false
	}

	var hr HitRecord
	hr.T = rec1.T + hitDistance/rayLength
	hr.Point = r.At(hr.T)
	hr.Normal = Vec3{1, 0, 0} // arbitrary; unused by the isotropic phase function
	hr.FrontFace = true       // arbitrary
	hr.U, hr.V = 0.5, 0.5
	hr.Mat = c.PhaseFunction
	return hr, true
}

// BoundingBox implements Hittable: the boundary's own box.
func (c *ConstantMedium) BoundingBox(t0, t1 float64) (AABB, bool) {
	return c.Boundary.BoundingBox(t0, t1)
}
