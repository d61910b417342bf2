package tracer

// HitRecord holds information about a ray-object intersection.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	U, V      float64
	T         float64
	Mat       Material
	FrontFace bool
}

// SetFaceNormal sets Normal/FrontFace from the geometric outward normal,
// following the convention that the stored normal always points against
// the incoming ray (§4.4 "Front-face convention").
func (hr *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	hr.FrontFace = Dot(r.Direction, outwardNormal) < 0
	if hr.FrontFace {
		hr.Normal = outwardNormal
	} else {
		hr.Normal = Neg(outwardNormal)
	}
}

// Hittable is any object (primitive or composite) that can be ray-tested,
// bounded, and optionally importance-sampled as a light/priority object.
type Hittable interface {
	// Hit tests for an intersection with ray within [tMin,tMax], using rng
	// for any stochastic objects (ConstantMedium).
	Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool)
	// BoundingBox returns the object's AABB over the time interval [t0,t1],
	// or false if the object cannot be bounded (e.g. an infinite plane) and
	// therefore cannot be placed in a BVH.
	BoundingBox(t0, t1 float64) (AABB, bool)
}

// PriorityHittable is the subset of Hittable usable as an importance-sampled
// light/refractor target from the PDF combinators (§4.4, §4.6).
type PriorityHittable interface {
	Hittable
	// PDFValue returns the solid-angle probability density of sampling a
	// direction toward this object from origin at the given time.
	PDFValue(origin, direction Vec3, time float64, rng Rand) float64
	// RandomPoint returns a direction from origin toward a random point on
	// this object, suitable for importance sampling.
	RandomPoint(origin Vec3, rng Rand) Vec3
}

// HitableList is a linear, unordered container of Hittables.
type HitableList struct {
	Objects []Hittable
}

// Add appends an object to the list.
func (l *HitableList) Add(o Hittable) { l.Objects = append(l.Objects, o) }

// Hit returns the closest hit across all members within [tMin,tMax].
func (l *HitableList) Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax
	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, tMin, closestSoFar, rng); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

// BoundingBox returns the union AABB of every member, or false if any member
// lacks one or the list is empty.
func (l *HitableList) BoundingBox(t0, t1 float64) (AABB, bool) {
	if len(l.Objects) == 0 {
		return AABB{}, false
	}
	var box AABB
	first := true
	for _, obj := range l.Objects {
		b, ok := obj.BoundingBox(t0, t1)
		if !ok {
			return AABB{}, false
		}
		if first {
			box, first = b, false
		} else {
			box = UnionAABB(box, b)
		}
	}
	return box, true
}

// PDFValue returns the uniform mixture of the member PDFs (1/N * sum).
// Members that are not PriorityHittable contribute zero.
func (l *HitableList) PDFValue(origin, direction Vec3, time float64, rng Rand) float64 {
	n := len(l.Objects)
	if n == 0 {
		return 0
	}
	sum := 0.0
	weight := 1.0 / float64(n)
	for _, obj := range l.Objects {
		if p, ok := obj.(PriorityHittable); ok {
			sum += weight * p.PDFValue(origin, direction, time, rng)
		}
	}
	return sum
}

// RandomPoint picks a member uniformly and returns its random direction.
// Degenerates to a uniform sphere direction if the list is empty or the
// chosen member is not importance-samplable, so callers always get a usable
// direction.
func (l *HitableList) RandomPoint(origin Vec3, rng Rand) Vec3 {
	if len(l.Objects) == 0 {
		return RandomUnitVector(rng)
	}
	obj := l.Objects[rng.IntN(len(l.Objects))]
	if p, ok := obj.(PriorityHittable); ok {
		return p.RandomPoint(origin, rng)
	}
	return RandomUnitVector(rng)
}
