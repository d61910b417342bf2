package tracer

// AABB is an axis-aligned bounding box, one Interval per axis.
type AABB [3]Interval

// NewAABB builds an AABB from two corner points, ordering min/max per axis.
func NewAABB(a, b Vec3) AABB {
	return AABB{
		OrderedInterval(a[0], b[0]),
		OrderedInterval(a[1], b[1]),
		OrderedInterval(a[2], b[2]),
	}
}

// Min returns the box's minimum corner.
func (box AABB) Min() Vec3 { return Vec3{box[0].Start, box[1].Start, box[2].Start} }

// Max returns the box's maximum corner.
func (box AABB) Max() Vec3 { return Vec3{box[0].End, box[1].End, box[2].End} }

// Center returns the box's midpoint.
func (box AABB) Center() Vec3 {
	return Vec3{
		(box[0].Start + box[0].End) / 2,
		(box[1].Start + box[1].End) / 2,
		(box[2].Start + box[2].End) / 2,
	}
}

// UnionAABB returns the smallest AABB enclosing both boxes.
func UnionAABB(a, b AABB) AABB {
	return AABB{a[0].Union(b[0]), a[1].Union(b[1]), a[2].Union(b[2])}
}

// Pad grows every axis whose extent is shorter than delta by delta on each
// side, so that
// infinitesimally thin objects (axis-aligned rectangles) still get a valid,
// non-degenerate bounding box for BVH construction.
func (box AABB) Pad(delta float64) AABB {
	out := box
	for a := range out {
		if out[a].Length() < delta {
			out[a] = out[a].Expand(delta)
		}
	}
	return out
}

// LongestAxis returns the index (0=x,1=y,2=z) of the box's longest extent.
func (box AABB) LongestAxis() int {
	best := 0
	bestLen := box[0].Length()
	for a := 1; a < 3; a++ {
		if l := box[a].Length(); l > bestLen {
			best, bestLen = a, l
		}
	}
	return best
}

// Hit tests whether ray intersects the box within rayT, using the
// reciprocal-direction slab test. A zero ray direction component yields an
// infinite reciprocal, which still produces the correct (possibly trivially
// true or false) slab bounds.
func (box AABB) Hit(ray Ray, rayT Interval) bool {
	for a := range 3 {
		invD := 1.0 / ray.Direction[a]
		t0 := (box[a].Start - ray.Origin[a]) * invD
		t1 := (box[a].End - ray.Origin[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > rayT.Start {
			rayT.Start = t0
		}
		if t1 < rayT.End {
			rayT.End = t1
		}
		if rayT.End <= rayT.Start {
			return false
		}
	}
	return true
}
