package tracer

// Scene aggregates everything the integrator needs to trace a single frame:
// a BVH-accelerated world, a priority list of importance-sampled objects,
// the active camera, and a flat background radiance (§3's Scene entity).
type Scene struct {
	World      Hittable
	Priority   PriorityHittable
	Camera     *Camera
	Background ColorF
}

// emptyPriority is used whenever a scene has no importance-sampled objects;
// Colorize then samples diffuse bounces with the material's own PDF alone
// (§4.7 "Degenerate priority list").
var emptyPriority = &HitableList{}

// NewScene builds a Scene, constructing the BVH over objects. Returns a
// SceneError if any object in the world cannot be bounded. An empty objects
// slice is not an error: the world is then the emptyWorld placeholder, which
// every ray misses (§8's "Energy of a non-emissive miss" property).
func NewScene(objects []Hittable, priority PriorityHittable, camera *Camera, background ColorF, t0, t1 float64) (*Scene, error) {
	var world Hittable
	if len(objects) == 0 {
		world = emptyWorld{}
	} else {
		bvh, err := NewBVH(objects, t0, t1)
		if err != nil {
			return nil, err
		}
		world = bvh
	}
	if priority == nil {
		priority = emptyPriority
	}
	return &Scene{World: world, Priority: priority, Camera: camera, Background: background}, nil
}

// emptyWorld is a zero-object Hittable: every ray misses, matching §8's
// requirement that an empty-world render degenerates cleanly to the flat
// background color.
type emptyWorld struct{}

func (emptyWorld) Hit(_ Ray, _, _ float64, _ Rand) (HitRecord, bool) { return HitRecord{}, false }
func (emptyWorld) BoundingBox(_, _ float64) (AABB, bool)             { return AABB{}, false }
