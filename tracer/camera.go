package tracer

import "math"

// Camera is a thin-lens, optionally motion-blurred camera, adapted from the
// teacher's ray/camera.go with the addition of a shutter time interval
// (Time0/Time1) for motion blur (§4.8), which the teacher's version omits.
type Camera struct {
	// Position is where the camera is located in 3D space.
	Position Vec3
	// LookAt is the point in 3D space the camera is looking at.
	LookAt Vec3
	// Up is the upward direction for the camera, controlling roll.
	Up Vec3
	// VerticalFoV is the vertical field of view in degrees. Defaults to 90.
	VerticalFoV float64
	// FocalLength is the distance from the camera to the image plane. Defaults to 1.0.
	FocalLength float64
	// FocusDistance is the distance to the plane in sharp focus. Defaults to FocalLength.
	FocusDistance float64
	// Aperture is the lens diameter; zero means pinhole (no depth-of-field blur).
	Aperture float64
	// Time0, Time1 bound the shutter interval each GetRay's Time is sampled
	// from uniformly, producing motion blur against MovingSphere. Equal
	// values (including the zero value) disable motion blur.
	Time0, Time1 float64

	pixel00      Vec3
	pixelXVector Vec3
	pixelYVector Vec3
	defocusDiskU Vec3
	defocusDiskV Vec3
}

// Initialize computes the viewport parameters for the given image dimensions,
// filling in defaults for any zero-valued fields. Must be called before
// GetRay.
func (c *Camera) Initialize(width, height int) {
	var zero Vec3
	if c.FocalLength == 0 {
		c.FocalLength = 1.0
	}
	if c.VerticalFoV == 0 {
		c.VerticalFoV = 90.0
	}
	if c.Up == zero {
		c.Up = Vec3{0, 1, 0}
	}
	if c.FocusDistance == 0 {
		c.FocusDistance = c.FocalLength
	}
	if c.Position == zero && c.LookAt == zero {
		c.LookAt = Vec3{0, 0, -1}
	}

	viewDirection := Sub(c.Position, c.LookAt)
	if NearZero(viewDirection) {
		viewDirection = Vec3{0, 0, 1}
	}

	w := Unit(viewDirection)
	u := Unit(Cross(c.Up, w))
	v := Cross(w, u)

	defocusRadius := c.Aperture / 2
	c.defocusDiskU = SMul(u, defocusRadius)
	c.defocusDiskV = SMul(v, defocusRadius)

	theta := c.VerticalFoV * (math.Pi / 180.0)
	viewportHeight := 2.0 * c.FocalLength * math.Tan(theta/2.0)
	aspectRatio := float64(width) / float64(height)
	viewportWidth := aspectRatio * viewportHeight

	horizontal := SMul(u, viewportWidth)
	vertical := SMul(v, -viewportHeight)
	c.pixelXVector = SDiv(horizontal, float64(width))
	c.pixelYVector = SDiv(vertical, float64(height))
	upperLeftCorner := c.Position.Minus(SMul(w, c.FocalLength), horizontal.Times(0.5), vertical.Times(0.5))
	c.pixel00 = upperLeftCorner
}

// GetRay generates a ray through pixel (pixelX,pixelY) with a sub-pixel
// (offsetX,offsetY) offset, optional depth-of-field lens sampling, and a
// shutter time sampled uniformly from [Time0,Time1].
func (c *Camera) GetRay(rng Rand, pixelX, pixelY, offsetX, offsetY float64) Ray {
	pixelSample := c.pixel00.Plus(
		c.pixelXVector.Times(pixelX+0.5+offsetX),
		c.pixelYVector.Times(pixelY+0.5+offsetY),
	)

	rayOrigin := c.Position
	rayDirection := Sub(pixelSample, c.Position)

	if c.Aperture > 0 {
		dx, dy := rng.SampleDisc(1.0)
		offset := Add(SMul(c.defocusDiskU, dx), SMul(c.defocusDiskV, dy))

		focusTime := c.FocusDistance / c.FocalLength
		focusPoint := Add(c.Position, SMul(rayDirection, focusTime))

		rayOrigin = Add(c.Position, offset)
		rayDirection = Sub(focusPoint, rayOrigin)
	}

	time := c.Time0
	if c.Time1 > c.Time0 {
		time = c.Time0 + rng.Float64()*(c.Time1-c.Time0)
	}

	return Ray{Origin: rayOrigin, Direction: rayDirection, Time: time}
}
