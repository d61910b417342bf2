package tracer

import "math"

// sphereUV converts a point on a unit sphere (centered at the origin) into
// (u,v) texture coordinates via spherical coordinates.
func sphereUV(p Vec3) (u, v float64) {
	theta := math.Acos(-p.Y())
	phi := math.Atan2(-p.Z(), p.X()) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// Sphere is a static sphere primitive.
type Sphere struct {
	Center Vec3
	Radius float64
	Mat    Material
}

// NewSphere builds a Sphere.
func NewSphere(center Vec3, radius float64, mat Material) Sphere {
	return Sphere{Center: center, Radius: radius, Mat: mat}
}

// Hit implements Hittable via the standard quadratic ray-sphere intersection.
func (s Sphere) Hit(r Ray, tMin, tMax float64, _ Rand) (HitRecord, bool) {
	oc := Sub(r.Origin, s.Center)
	a := LengthSquared(r.Direction)
	halfB := Dot(oc, r.Direction)
	c := LengthSquared(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return HitRecord{}, false
		}
	}

	var hr HitRecord
	hr.T = root
	hr.Point = r.At(root)
	outwardNormal := SDiv(Sub(hr.Point, s.Center), s.Radius)
	hr.SetFaceNormal(r, outwardNormal)
	hr.U, hr.V = sphereUV(outwardNormal)
	hr.Mat = s.Mat
	return hr, true
}

// BoundingBox implements Hittable.
func (s Sphere) BoundingBox(_, _ float64) (AABB, bool) {
	radiusVec := Vec3{s.Radius, s.Radius, s.Radius}
	return NewAABB(Sub(s.Center, radiusVec), Add(s.Center, radiusVec)), true
}

// PDFValue implements PriorityHittable via the solid-angle cone subtended by
// the sphere as seen from origin.
func (s Sphere) PDFValue(origin, direction Vec3, _ float64, _ Rand) float64 {
	if _, ok := s.Hit(NewRay(origin, direction), 1e-3, math.Inf(1), Rand{}); !ok {
		return 0
	}
	distSquared := LengthSquared(Sub(s.Center, origin))
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// RandomPoint implements PriorityHittable: samples a direction toward a
// random point in the cone subtended by the sphere from origin.
func (s Sphere) RandomPoint(origin Vec3, rng Rand) Vec3 {
	direction := Sub(s.Center, origin)
	distSquared := LengthSquared(direction)
	uvw := NewONB(direction)
	return uvw.Local(randomToSphere(s.Radius, distSquared, rng))
}

func randomToSphere(radius, distanceSquared float64, rng Rand) Vec3 {
	r1, r2 := rng.Float64(), rng.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)
	phi := 2 * math.Pi * r1
	sqrtTerm := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sqrtTerm
	y := math.Sin(phi) * sqrtTerm
	return Vec3{x, y, z}
}

// MovingSphere is a sphere whose center interpolates linearly between Center0
// at Time0 and Center1 at Time1, modeling motion blur.
type MovingSphere struct {
	Center0, Center1 Vec3
	Time0, Time1     float64
	Radius           float64
	Mat              Material
}

// NewMovingSphere builds a MovingSphere.
func NewMovingSphere(center0, center1 Vec3, time0, time1, radius float64, mat Material) MovingSphere {
	return MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Mat: mat}
}

// Center returns the sphere's center at time, linearly interpolated between
// Center0 and Center1.
func (m MovingSphere) Center(time float64) Vec3 {
	frac := (time - m.Time0) / (m.Time1 - m.Time0)
	return Add(m.Center0, SMul(Sub(m.Center1, m.Center0), frac))
}

// Hit implements Hittable, identical to Sphere.Hit but at the time-dependent
// center.
func (m MovingSphere) Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool) {
	center := m.Center(r.Time)
	oc := Sub(r.Origin, center)
	a := LengthSquared(r.Direction)
	halfB := Dot(oc, r.Direction)
	c := LengthSquared(oc) - m.Radius*m.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return HitRecord{}, false
		}
	}

	var hr HitRecord
	hr.T = root
	hr.Point = r.At(root)
	outwardNormal := SDiv(Sub(hr.Point, center), m.Radius)
	hr.SetFaceNormal(r, outwardNormal)
	hr.U, hr.V = sphereUV(outwardNormal)
	hr.Mat = m.Mat
	_ = rng
	return hr, true
}

// BoundingBox implements Hittable: the union of the sphere's AABB at Time0
// and Time1, covering every position it passes through in between.
func (m MovingSphere) BoundingBox(t0, t1 float64) (AABB, bool) {
	radiusVec := Vec3{m.Radius, m.Radius, m.Radius}
	box0 := NewAABB(Sub(m.Center(t0), radiusVec), Add(m.Center(t0), radiusVec))
	box1 := NewAABB(Sub(m.Center(t1), radiusVec), Add(m.Center(t1), radiusVec))
	return UnionAABB(box0, box1), true
}
