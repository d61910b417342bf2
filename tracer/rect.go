package tracer

import "math"

// XYRect is an axis-aligned rectangle in the plane Z=K, spanning
// [X0,X1]x[Y0,Y1]. Ported from original_source/src/objects/rect.rs; unlike
// the original (which only implements pdf_value/random for XZRect), all
// three rectangle orientations here support importance sampling so any of
// them can serve as a priority (light) object (§4.4).
type XYRect struct {
	X0, X1, Y0, Y1 float64
	K              float64
	Mat            Material
}

// NewXYRect builds an XYRect.
func NewXYRect(x0, x1, y0, y1, k float64, mat Material) XYRect {
	return XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Mat: mat}
}

// Hit implements Hittable.
func (r XYRect) Hit(ray Ray, tMin, tMax float64, _ Rand) (HitRecord, bool) {
	t := (r.K - ray.Origin.Z()) / ray.Direction.Z()
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}
	x := ray.Origin.X() + t*ray.Direction.X()
	y := ray.Origin.Y() + t*ray.Direction.Y()
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return HitRecord{}, false
	}
	var hr HitRecord
	hr.U = (x - r.X0) / (r.X1 - r.X0)
	hr.V = (y - r.Y0) / (r.Y1 - r.Y0)
	hr.T = t
	hr.SetFaceNormal(ray, Vec3{0, 0, 1})
	hr.Mat = r.Mat
	hr.Point = ray.At(t)
	return hr, true
}

// BoundingBox implements Hittable, padded by RectEpsilon on the thin Z axis
// so the rectangle still has nonzero volume for a BVH to bound.
func (r XYRect) BoundingBox(_, _ float64) (AABB, bool) {
	box := NewAABB(Vec3{r.X0, r.Y0, r.K - RectEpsilon}, Vec3{r.X1, r.Y1, r.K + RectEpsilon})
	return box, true
}

// PDFValue implements PriorityHittable: converts the rectangle's hit
// distance and area into a solid-angle probability density.
func (r XYRect) PDFValue(origin, direction Vec3, time float64, rng Rand) float64 {
	hr, ok := r.Hit(NewRay(origin, direction), 1e-3, math.Inf(1), rng)
	if !ok {
		return 0
	}
	area := (r.X1 - r.X0) * (r.Y1 - r.Y0)
	distanceSquared := hr.T * hr.T * LengthSquared(direction)
	cosine := math.Abs(Dot(direction, hr.Normal) / Length(direction))
	if cosine < 1e-8 {
		return 0
	}
	_ = time
	return distanceSquared / (cosine * area)
}

// RandomPoint implements PriorityHittable: returns a direction from origin
// toward a uniformly sampled point on the rectangle.
func (r XYRect) RandomPoint(origin Vec3, rng Rand) Vec3 {
	randomPoint := Vec3{
		r.X0 + rng.Float64()*(r.X1-r.X0),
		r.Y0 + rng.Float64()*(r.Y1-r.Y0),
		r.K,
	}
	return Sub(randomPoint, origin)
}

// XZRect is an axis-aligned rectangle in the plane Y=K.
type XZRect struct {
	X0, X1, Z0, Z1 float64
	K              float64
	Mat            Material
}

// NewXZRect builds an XZRect.
func NewXZRect(x0, x1, z0, z1, k float64, mat Material) XZRect {
	return XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Mat: mat}
}

// Hit implements Hittable.
func (r XZRect) Hit(ray Ray, tMin, tMax float64, _ Rand) (HitRecord, bool) {
	t := (r.K - ray.Origin.Y()) / ray.Direction.Y()
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}
	x := ray.Origin.X() + t*ray.Direction.X()
	z := ray.Origin.Z() + t*ray.Direction.Z()
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return HitRecord{}, false
	}
	var hr HitRecord
	hr.U = (x - r.X0) / (r.X1 - r.X0)
	hr.V = (z - r.Z0) / (r.Z1 - r.Z0)
	hr.T = t
	hr.SetFaceNormal(ray, Vec3{0, 1, 0})
	hr.Mat = r.Mat
	hr.Point = ray.At(t)
	return hr, true
}

// BoundingBox implements Hittable, padded by RectEpsilon on the thin Y axis.
func (r XZRect) BoundingBox(_, _ float64) (AABB, bool) {
	box := NewAABB(Vec3{r.X0, r.K - RectEpsilon, r.Z0}, Vec3{r.X1, r.K + RectEpsilon, r.Z1})
	return box, true
}

// PDFValue implements PriorityHittable (original_source's XZRect::pdf_value,
// generalized identically to the other two orientations above).
func (r XZRect) PDFValue(origin, direction Vec3, time float64, rng Rand) float64 {
	hr, ok := r.Hit(NewRay(origin, direction), 1e-3, math.Inf(1), rng)
	if !ok {
		return 0
	}
	area := (r.X1 - r.X0) * (r.Z1 - r.Z0)
	distanceSquared := hr.T * hr.T * LengthSquared(direction)
	cosine := math.Abs(Dot(direction, hr.Normal) / Length(direction))
	if cosine < 1e-8 {
		return 0
	}
	_ = time
	return distanceSquared / (cosine * area)
}

// RandomPoint implements PriorityHittable (original_source's XZRect::random).
func (r XZRect) RandomPoint(origin Vec3, rng Rand) Vec3 {
	randomPoint := Vec3{
		r.X0 + rng.Float64()*(r.X1-r.X0),
		r.K,
		r.Z0 + rng.Float64()*(r.Z1-r.Z0),
	}
	return Sub(randomPoint, origin)
}

// YZRect is an axis-aligned rectangle in the plane X=K.
type YZRect struct {
	Y0, Y1, Z0, Z1 float64
	K              float64
	Mat            Material
}

// NewYZRect builds a YZRect.
func NewYZRect(y0, y1, z0, z1, k float64, mat Material) YZRect {
	return YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Mat: mat}
}

// Hit implements Hittable.
func (r YZRect) Hit(ray Ray, tMin, tMax float64, _ Rand) (HitRecord, bool) {
	t := (r.K - ray.Origin.X()) / ray.Direction.X()
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}
	y := ray.Origin.Y() + t*ray.Direction.Y()
	z := ray.Origin.Z() + t*ray.Direction.Z()
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return HitRecord{}, false
	}
	var hr HitRecord
	hr.U = (y - r.Y0) / (r.Y1 - r.Y0)
	hr.V = (z - r.Z0) / (r.Z1 - r.Z0)
	hr.T = t
	hr.SetFaceNormal(ray, Vec3{1, 0, 0})
	hr.Mat = r.Mat
	hr.Point = ray.At(t)
	return hr, true
}

// BoundingBox implements Hittable, padded by RectEpsilon on the thin X axis.
func (r YZRect) BoundingBox(_, _ float64) (AABB, bool) {
	box := NewAABB(Vec3{r.K - RectEpsilon, r.Y0, r.Z0}, Vec3{r.K + RectEpsilon, r.Y1, r.Z1})
	return box, true
}

// PDFValue implements PriorityHittable, generalized from XZRect's.
func (r YZRect) PDFValue(origin, direction Vec3, time float64, rng Rand) float64 {
	hr, ok := r.Hit(NewRay(origin, direction), 1e-3, math.Inf(1), rng)
	if !ok {
		return 0
	}
	area := (r.Y1 - r.Y0) * (r.Z1 - r.Z0)
	distanceSquared := hr.T * hr.T * LengthSquared(direction)
	cosine := math.Abs(Dot(direction, hr.Normal) / Length(direction))
	if cosine < 1e-8 {
		return 0
	}
	_ = time
	return distanceSquared / (cosine * area)
}

// RandomPoint implements PriorityHittable, generalized from XZRect's.
func (r YZRect) RandomPoint(origin Vec3, rng Rand) Vec3 {
	randomPoint := Vec3{
		r.K,
		r.Y0 + rng.Float64()*(r.Y1-r.Y0),
		r.Z0 + rng.Float64()*(r.Z1-r.Z0),
	}
	return Sub(randomPoint, origin)
}
