package physics

import (
	"math"
)

// TimeOfImpact solves for the earliest t >= 0 at which the bounding
// circles of a and b touch, assuming both keep their current velocity.
// The distance between centers equals the sum of radii when
//
//	|dp + dv*t| = rA + rB
//
// which expands to the quadratic a*t^2 + b*t + c = 0 solved below.
//
// Returns NoImpact when the circles can never touch. Returns 0 when the
// circles already overlap and are approaching. May return a negative
// root when the only contact lies in the past; callers filter on the
// tick window.
func TimeOfImpact(a, b *Body) float64 {
	ca := a.BoundingCircle()
	cb := b.BoundingCircle()

	dp := ca.Center.Sub(cb.Center)
	dv := a.Velocity().Sub(b.Velocity())
	rsum := ca.Radius + cb.Radius

	qa := dv.Dot(dv)
	qb := 2 * dp.Dot(dv)
	qc := dp.Dot(dp) - rsum*rsum

	if qa == 0 {
		// No relative motion. The gap never changes, so there is no
		// future impact unless the circles already overlap.
		if qc < 0 {
			return 0
		}
		return NoImpact
	}

	delta := qb*qb - 4*qa*qc
	if delta < 0 {
		return NoImpact
	}

	d := math.Sqrt(delta)
	t1 := (-qb - d) / (2 * qa)
	t2 := (-qb + d) / (2 * qa)
	if t1 < 0 && t2 > 0 && qb <= 0 {
		// Already overlapping and approaching: immediate contact.
		return 0
	}
	return t1
}
