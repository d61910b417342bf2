package tracer

// Boxy is an axis-aligned rectangular box built from six rectangles,
// matching original_source/src/objects/boxy.rs.
type Boxy struct {
	Min, Max Vec3
	sides    HitableList
}

// NewBoxy builds a Boxy spanning the two opposite corners p0 and p1. The
// min-side rectangles are wrapped in FlipFace so every face's front side
// points out of the box.
func NewBoxy(p0, p1 Vec3, mat Material) *Boxy {
	b := &Boxy{Min: p0, Max: p1}
	b.sides.Add(NewXYRect(p0.X(), p1.X(), p0.Y(), p1.Y(), p1.Z(), mat))
	b.sides.Add(NewFlipFace(NewXYRect(p0.X(), p1.X(), p0.Y(), p1.Y(), p0.Z(), mat)))
	b.sides.Add(NewXZRect(p0.X(), p1.X(), p0.Z(), p1.Z(), p1.Y(), mat))
	b.sides.Add(NewFlipFace(NewXZRect(p0.X(), p1.X(), p0.Z(), p1.Z(), p0.Y(), mat)))
	b.sides.Add(NewYZRect(p0.Y(), p1.Y(), p0.Z(), p1.Z(), p1.X(), mat))
	b.sides.Add(NewFlipFace(NewYZRect(p0.Y(), p1.Y(), p0.Z(), p1.Z(), p0.X(), mat)))
	return b
}

// Hit implements Hittable by delegating to the six component rectangles.
func (b *Boxy) Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax, rng)
}

// BoundingBox implements Hittable: the box's own corners.
func (b *Boxy) BoundingBox(_, _ float64) (AABB, bool) {
	return NewAABB(b.Min, b.Max), true
}
