package tracer

import "math"

// Colorize is the recursive multiple-importance-sampling path integrator,
// ported from original_source/src/colorize.rs (§4.7). It traces ray through
// scene up to maxDepth bounces, combining a light-importance PDF with each
// material's own PDF via a 50/50 mixture at every diffuse bounce. When the
// priority list is empty, the material's own PDF is used alone.
func Colorize(r Ray, scene *Scene, depth, maxDepth int, rng Rand) ColorF {
	if depth > maxDepth {
		return scene.Background
	}

	hit, ok := scene.World.Hit(r, ShadowEpsilon, math.Inf(1), rng)
	if !ok {
		return scene.Background
	}

	emitted := hit.Mat.Emit(r, hit, hit.U, hit.V, hit.Point)

	scatterRec, scattered := hit.Mat.Scatter(r, hit, rng)
	if !scattered {
		return emitted
	}

	switch scatterRec.Kind {
	case Specular:
		recurse := Colorize(scatterRec.SpecularRay, scene, depth+1, maxDepth, rng)
		return Add(emitted, Mul(scatterRec.Attenuation, recurse))

	default: // Diffuse
		var samplePDF PDF = scatterRec.PDF
		if l, ok := scene.Priority.(*HitableList); !ok || len(l.Objects) > 0 {
			lightPDF := NewHitablePDF(scene.Priority, hit.Point)
			samplePDF = NewMixturePDF(lightPDF, scatterRec.PDF)
		}

		scatteredRay := Ray{Origin: hit.Point, Direction: samplePDF.Generate(rng), Time: r.Time}
		pdfVal := samplePDF.Value(scatteredRay.Direction, r.Time, rng)
		if pdfVal <= 0 {
			return emitted
		}

		scatteringPDF := hit.Mat.ScatteringPDF(r, hit, scatteredRay, rng)
		recurse := Colorize(scatteredRay, scene, depth+1, maxDepth, rng)

		weighted := SMul(Mul(scatterRec.Attenuation, recurse), scatteringPDF/pdfVal)
		return Add(emitted, weighted)
	}
}
