package tracer

import (
	"cmp"
	"slices"
)

// BVHNode is a node of a bounding volume hierarchy over Hittables, built once
// per render via NewBVH and traversed read-only afterward (§4.2). Grounded on
// the median/longest-axis split strategy of
// _examples/df07-go-progressive-raytracer/pkg/core/bvh.go, adapted to the
// teacher's plain-Go style (no external sort/geometry deps beyond stdlib
// slices/cmp, which the teacher itself uses idiomatically elsewhere).
type BVHNode struct {
	Left, Right Hittable
	Box         AABB
}

// NewBVH builds a BVH over objects for the time range [t0,t1]. Every object
// must be boundable; an unboundable object is a fatal scene construction
// error (§4.2 Failure, §7 SceneError).
func NewBVH(objects []Hittable, t0, t1 float64) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, &SceneError{Reason: "cannot build a BVH over zero objects"}
	}
	return buildBVH(append([]Hittable(nil), objects...), t0, t1)
}

func buildBVH(objects []Hittable, t0, t1 float64) (*BVHNode, error) {
	boxes := make([]AABB, len(objects))
	for i, o := range objects {
		box, ok := o.BoundingBox(t0, t1)
		if !ok {
			return nil, &SceneError{Reason: "object has no bounding box and cannot be placed in a BVH"}
		}
		boxes[i] = box
	}

	switch len(objects) {
	case 1:
		return &BVHNode{Left: objects[0], Right: objects[0], Box: boxes[0]}, nil
	case 2:
		node := &BVHNode{Left: objects[0], Right: objects[1], Box: UnionAABB(boxes[0], boxes[1])}
		return node, nil
	}

	var bounds AABB
	for i, b := range boxes {
		if i == 0 {
			bounds = b
		} else {
			bounds = UnionAABB(bounds, b)
		}
	}
	axis := bounds.LongestAxis()

	type indexedObj struct {
		obj Hittable
		box AABB
	}
	indexed := make([]indexedObj, len(objects))
	for i, o := range objects {
		indexed[i] = indexedObj{obj: o, box: boxes[i]}
	}
	slices.SortFunc(indexed, func(a, b indexedObj) int {
		return cmp.Compare(a.box.Center()[axis], b.box.Center()[axis])
	})

	mid := len(indexed) / 2
	leftObjs := make([]Hittable, mid)
	rightObjs := make([]Hittable, len(indexed)-mid)
	for i := range mid {
		leftObjs[i] = indexed[i].obj
	}
	for i := mid; i < len(indexed); i++ {
		rightObjs[i-mid] = indexed[i].obj
	}

	left, err := buildBVH(leftObjs, t0, t1)
	if err != nil {
		return nil, err
	}
	right, err := buildBVH(rightObjs, t0, t1)
	if err != nil {
		return nil, err
	}

	leftBox, _ := left.BoundingBox(t0, t1)
	rightBox, _ := right.BoundingBox(t0, t1)
	return &BVHNode{Left: left, Right: right, Box: UnionAABB(leftBox, rightBox)}, nil
}

// Hit implements Hittable: tests the node's own box first, then recurses
// into children, tightening tmax as a closer hit is found.
func (n *BVHNode) Hit(r Ray, tMin, tMax float64, rng Rand) (HitRecord, bool) {
	if !n.Box.Hit(r, Interval{Start: tMin, End: tMax}) {
		return HitRecord{}, false
	}

	// A single-object leaf stores that object as both children (buildBVH's
	// len(objects)==1 case); testing it once is enough.
	if n.Left == n.Right {
		return n.Left.Hit(r, tMin, tMax, rng)
	}

	leftRec, hitLeft := n.Left.Hit(r, tMin, tMax, rng)
	searchMax := tMax
	if hitLeft {
		searchMax = leftRec.T
	}
	rightRec, hitRight := n.Right.Hit(r, tMin, searchMax, rng)

	switch {
	case hitRight:
		return rightRec, true
	case hitLeft:
		return leftRec, true
	default:
		return HitRecord{}, false
	}
}

// BoundingBox implements Hittable.
func (n *BVHNode) BoundingBox(_, _ float64) (AABB, bool) {
	return n.Box, true
}
