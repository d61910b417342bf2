package tracer

import "math"

// PDF is a probability density over directions, sampled and evaluated in
// world space. Ported from original_source/src/pdf.rs (§4.6).
type PDF interface {
	// Value returns the probability density of direction at time.
	Value(direction Vec3, time float64, rng Rand) float64
	// Generate samples a direction from this density.
	Generate(rng Rand) Vec3
}

// CosinePDF is a cosine-weighted hemisphere density aligned to a surface
// normal, used by Lambertian.Scatter.
type CosinePDF struct {
	onb ONB
}

// NewCosinePDF builds a CosinePDF aligned to normal w.
func NewCosinePDF(w Vec3) CosinePDF { return CosinePDF{onb: NewONB(w)} }

// Value implements PDF: cos(theta)/pi, zero for directions below the
// hemisphere.
func (p CosinePDF) Value(direction Vec3, _ float64, _ Rand) float64 {
	cosine := Dot(Unit(direction), p.onb.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate implements PDF: samples a cosine-weighted local direction and
// transforms it into world space via the ONB.
func (p CosinePDF) Generate(rng Rand) Vec3 {
	return p.onb.Local(RandomCosineDirection(rng))
}

// HitablePDF imports the solid-angle density of a priority object (typically
// a light) as seen from origin, so the integrator can importance-sample
// toward it directly.
type HitablePDF struct {
	Object PriorityHittable
	Origin Vec3
}

// NewHitablePDF builds a HitablePDF targeting object from origin.
func NewHitablePDF(object PriorityHittable, origin Vec3) HitablePDF {
	return HitablePDF{Object: object, Origin: origin}
}

// Value implements PDF, delegating to the object's own PDFValue.
func (p HitablePDF) Value(direction Vec3, time float64, rng Rand) float64 {
	return p.Object.PDFValue(p.Origin, direction, time, rng)
}

// Generate implements PDF, delegating to the object's own RandomPoint.
func (p HitablePDF) Generate(rng Rand) Vec3 {
	return p.Object.RandomPoint(p.Origin, rng)
}

// MixturePDF is an even 50/50 blend of two densities, the textbook MIS
// combinator pairing a light-importance PDF with a material's own PDF.
type MixturePDF struct {
	P0, P1 PDF
}

// NewMixturePDF builds a 50/50 mixture of p0 and p1.
func NewMixturePDF(p0, p1 PDF) MixturePDF { return MixturePDF{P0: p0, P1: p1} }

// Value implements PDF: the arithmetic mean of both densities.
func (p MixturePDF) Value(direction Vec3, time float64, rng Rand) float64 {
	return 0.5*p.P0.Value(direction, time, rng) + 0.5*p.P1.Value(direction, time, rng)
}

// Generate implements PDF: flips a coin to decide which branch samples.
func (p MixturePDF) Generate(rng Rand) Vec3 {
	if rng.Bool() {
		return p.P0.Generate(rng)
	}
	return p.P1.Generate(rng)
}

// ZeroPDF is a degenerate placeholder PDF whose Value is always zero and whose
// Generate returns a fixed sentinel (§4.6, clovers' ZeroPDF). Nothing in this
// package constructs one: specular scatters carry a SpecularRay instead.
type ZeroPDF struct{}

// Value implements PDF: always zero.
func (ZeroPDF) Value(_ Vec3, _ float64, _ Rand) float64 { return 0 }

// Generate implements PDF: returns the arbitrary sentinel vector used by the
// original implementation.
func (ZeroPDF) Generate(_ Rand) Vec3 { return Vec3{1, 0, 0} }
