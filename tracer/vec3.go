// Package tracer implements an offline Monte-Carlo path tracer.
// Inspired by https://raytracing.github.io/books/RayTracingInOneWeekend.html
// and https://raytracing.github.io/books/RayTracingTheNextWeek.html
//
// Coordinate System:
// Right-handed, +X right, +Y up, +Z toward the camera (-Z into the scene).
package tracer

import (
	"image/color"
	"math"
	"math/rand/v2"

	"fortio.org/terminal/ansipixels/tcolor"
)

// Vec3 represents a 3D vector or point. Many operations are generic functions
// so they can be reused for ColorF as well.
type Vec3 [3]float64

// ColorF is a linear RGB color with float components.
type ColorF [3]float64

// XYZ creates a Vec3 from its components.
func XYZ(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// RGB creates a ColorF from its components.
func RGB(r, g, b float64) ColorF { return ColorF{r, g, b} }

// X returns the X component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the Y component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the Z component.
func (v Vec3) Z() float64 { return v[2] }

// Add returns u + v.
func Add[T ~[3]float64](u, v T) T { return T{u[0] + v[0], u[1] + v[1], u[2] + v[2]} }

// Sub returns u - v.
func Sub[T ~[3]float64](u, v T) T { return T{u[0] - v[0], u[1] - v[1], u[2] - v[2]} }

// AddMultiple sums all the input vectors into u.
func AddMultiple[T ~[3]float64](u T, vs ...T) T {
	for _, v := range vs {
		u = Add(u, v)
	}
	return u
}

// SubMultiple returns u - v0 - vs[0] - vs[1]...
func SubMultiple[T ~[3]float64](u, v0 T, vs ...T) T {
	return Sub(u, AddMultiple(v0, vs...))
}

// Plus adds one or more vectors to v.
func (v Vec3) Plus(others ...Vec3) Vec3 { return AddMultiple(v, others...) }

// Minus subtracts one or more vectors from v.
func (v Vec3) Minus(u0 Vec3, more ...Vec3) Vec3 { return SubMultiple(v, u0, more...) }

// Times multiplies v by scalar t.
func (v Vec3) Times(t float64) Vec3 { return SMul(v, t) }

// Dot returns the dot product of u and v.
func Dot[T ~[3]float64](u, v T) float64 { return u[0]*v[0] + u[1]*v[1] + u[2]*v[2] }

// Cross returns the cross product u x v.
func Cross[T ~[3]float64](u, v T) T {
	return T{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// SMul multiplies v by a scalar.
func SMul[T ~[3]float64](v T, t float64) T { return T{v[0] * t, v[1] * t, v[2] * t} }

// Mul multiplies two vectors component-wise.
func Mul[T ~[3]float64](u, v T) T { return T{u[0] * v[0], u[1] * v[1], u[2] * v[2]} }

// SDiv divides v by a scalar.
func SDiv[T ~[3]float64](v T, t float64) T { return T{v[0] / t, v[1] / t, v[2] / t} }

// Length returns the Euclidean length of v.
func Length[T ~[3]float64](v T) float64 { return math.Sqrt(LengthSquared(v)) }

// LengthSquared returns the squared Euclidean length of v.
func LengthSquared[T ~[3]float64](v T) float64 { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

// Unit returns v normalized to length 1.
func Unit[T ~[3]float64](v T) T {
	l := Length(v)
	return T{v[0] / l, v[1] / l, v[2] / l}
}

// Neg returns the negation of v.
func Neg[T ~[3]float64](v T) T { return T{-v[0], -v[1], -v[2]} }

// NearZero returns true if all components are close to zero.
func NearZero[T ~[3]float64](v T) bool {
	const s = 1e-8
	return math.Abs(v[0]) < s && math.Abs(v[1]) < s && math.Abs(v[2]) < s
}

// Finite reports whether all components of v are finite (not NaN or Inf).
func Finite[T ~[3]float64](v T) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Reflect returns the reflection of v around normal n (n must be unit length).
func Reflect[T ~[3]float64](v, n T) T { return Sub(v, SMul(n, 2*Dot(v, n))) }

// Refract computes the refraction of unit vector uv through normal n with the
// given ratio of indices of refraction (etaiOverEtat = eta_in / eta_out).
func Refract[T ~[3]float64](uv, n T, etaiOverEtat float64) T {
	cosTheta := math.Min(Dot(Neg(uv), n), 1.0)
	rOutPerp := SMul(Add(uv, SMul(n, cosTheta)), etaiOverEtat)
	rOutParallel := SMul(n, -math.Sqrt(math.Abs(1.0-LengthSquared(rOutPerp))))
	return Add(rOutPerp, rOutParallel)
}

// ToSRGBA converts a linear ColorF to a gamma-encoded color.RGBA, clamping to [0,1].
func (c ColorF) ToSRGBA() color.RGBA {
	return color.RGBA{
		R: tcolor.LinearToSrgb(c[0]),
		G: tcolor.LinearToSrgb(c[1]),
		B: tcolor.LinearToSrgb(c[2]),
		A: 255,
	}
}

// Interval represents a closed interval [Start, End] on the real line.
type Interval struct {
	Start, End float64
}

// Length returns End - Start.
func (i Interval) Length() float64 { return i.End - i.Start }

// Contains returns true if t is within [Start, End] inclusive.
func (i Interval) Contains(t float64) bool { return t >= i.Start && t <= i.End }

// Surrounds returns true if t is strictly within (Start, End).
func (i Interval) Surrounds(t float64) bool { return t > i.Start && t < i.End }

// Clamp clamps t to [Start, End].
func (i Interval) Clamp(t float64) float64 {
	if t < i.Start {
		return i.Start
	}
	if t > i.End {
		return i.End
	}
	return t
}

// Union returns the smallest interval containing both i and j.
func (i Interval) Union(j Interval) Interval {
	return Interval{Start: math.Min(i.Start, j.Start), End: math.Max(i.End, j.End)}
}

// Expand grows the interval by delta on each side.
func (i Interval) Expand(delta float64) Interval {
	return Interval{Start: i.Start - delta, End: i.End + delta}
}

var (
	// Universe spans all real numbers.
	Universe = Interval{Start: math.Inf(-1), End: math.Inf(1)}
	// ZeroOne is the unit interval [0,1].
	ZeroOne = Interval{Start: 0, End: 1}
	// ShadowEpsilon is the minimum hit distance used to avoid self-intersection acne.
	ShadowEpsilon = 1e-3
	// RectEpsilon pads the thin axis of an axis-aligned rectangle's bounding box.
	RectEpsilon = 1e-4
	// ConstantMediumEpsilon offsets the boundary re-entry search for volumetric media.
	ConstantMediumEpsilon = 1e-4
)

// OrderedInterval returns the interval [min(a,b), max(a,b)].
func OrderedInterval(a, b float64) Interval {
	if a <= b {
		return Interval{Start: a, End: b}
	}
	return Interval{Start: b, End: a}
}

// RandomVec3 generates a vector with each component uniform in [0,1) using r.
func RandomVec3(r Rand) Vec3 { return Vec3{r.Float64(), r.Float64(), r.Float64()} }

// RandomVec3Range generates a vector with each component uniform in [lo,hi) using r.
func RandomVec3Range(r Rand, lo, hi float64) Vec3 {
	l := hi - lo
	return Vec3{lo + l*r.Float64(), lo + l*r.Float64(), lo + l*r.Float64()}
}

// RandomUnitVector generates a uniformly distributed unit vector using r.
// Uses the normal-distribution method: fastest of the common approaches and
// avoids both rejection-sampling retries and trig calls.
func RandomUnitVector(r Rand) Vec3 {
	for {
		x, y, z := r.NormFloat64(), r.NormFloat64(), r.NormFloat64()
		radius := math.Sqrt(x*x + y*y + z*z)
		if radius > 1e-24 {
			return Vec3{x / radius, y / radius, z / radius}
		}
	}
}

// RandomInUnitSphere generates a vector uniformly inside the unit ball via rejection sampling.
func RandomInUnitSphere(r Rand) Vec3 {
	for {
		v := RandomVec3Range(r, -1, 1)
		if LengthSquared(v) < 1 {
			return v
		}
	}
}

// RandomCosineDirection samples a cosine-weighted direction on the hemisphere
// around local +Z (caller transforms into world space via an ONB).
func RandomCosineDirection(r Rand) Vec3 {
	r1, r2 := r.Float64(), r.Float64()
	phi := 2 * math.Pi * r1
	sq := math.Sqrt(r2)
	x := math.Cos(phi) * sq
	y := math.Sin(phi) * sq
	z := math.Sqrt(1 - r2)
	return Vec3{x, y, z}
}

// ONB is an orthonormal basis built from a single vector.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis with W aligned to n. The basis is not
// right-handed: U × V = -W.
func NewONB(n Vec3) ONB {
	w := Unit(n)
	var a Vec3
	if math.Abs(w.X()) > 0.9 {
		a = Vec3{0, 1, 0}
	} else {
		a = Vec3{1, 0, 0}
	}
	v := Unit(Cross(w, a))
	u := Cross(w, v)
	return ONB{U: u, V: v, W: w}
}

// Local transforms a local-space vector into world space via this basis.
func (o ONB) Local(a Vec3) Vec3 {
	return Add(Add(SMul(o.U, a.X()), SMul(o.V, a.Y())), SMul(o.W, a.Z()))
}

// fastRand exposes package-level randomness for call sites that do not carry
// a per-goroutine Rand (e.g. package-level defaults); render hot paths must
// always use a goroutine-local Rand instead.
var fastRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not crypto use.
