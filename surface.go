package main

import "math"

// kleinPoint evaluates the parametric Klein bottle at (u, v), both in [0,1],
// and returns the corresponding point on the surface. u is rescaled to
// [0, pi] and then doubled, v is rescaled to [0, 2*pi]. The mapping is
// piecewise in u: the first half of the doubled domain sweeps the handle,
// the second half the body, which is what gives the surface its
// self-intersecting, non-orientable character. A sample at exactly u = pi
// belongs to the body branch. z follows a single formula across both
// branches and is continuous at the seam, with range exactly
// [surfaceZMin, surfaceZMax].
//
// The function is pure: both the mesh triangulation and the per-cell depth
// compositor call it, at their own independent resolutions.
func kleinPoint(u, v float64) (x, y, z float64) {
	pu := u * math.Pi
	pu *= 2
	pv := v * 2 * math.Pi
	cu, su := math.Cos(pu), math.Sin(pu)
	cv, sv := math.Cos(pv), math.Sin(pv)
	r := 2 * (1 - cu/2)
	if pu < math.Pi {
		x = 3*cu*(1+su) + r*cu*cv
		y = -8*su - r*su*cv
	} else {
		x = 3*cu*(1+su) + r*math.Cos(pv+math.Pi)
		y = -8 * su
	}
	z = -r * sv
	return x, y, z
}
