package wolter

import "math"

type surfaceHit struct {
	t      Real
	point  Vector3
	normal Vector3 // inward, unit
}

// nearestRoot solves the quadratic and returns the smallest root beyond EpsT that accept allows.
func nearestRoot(a, b, c Real, accept func(t Real) bool) (Real, bool) {
	t0, t1, ok := SolveQuadratic(a, b, c)
	if !ok {
		return 0, false
	}
	for _, t := range [2]Real{t0, t1} {
		if t > EpsT && accept(t) {
			// roots are ascending, the first accepted one is the nearest
			return t, true
		}
	}
	return 0, false
}

// shellHit is the nearest mirror candidate of one step.
type shellHit struct {
	surfaceHit
	kind  Kind
	shell int
}

// nearestShellHit visits every paraboloid then every hyperboloid and keeps the strictly nearest hit
// no farther than tMax. Earlier shells win exact ties.
func nearestShellHit(scene *Scene, O, D Vector3, tMax Real, cull bool, obs Observer) (shellHit, bool) {
	best := shellHit{}
	okAny := false
	bestT := 1e300
	if isFinite(tMax) {
		bestT = math.Nextafter(tMax, math.Inf(1))
	}
	var rr rayRecips
	if cull {
		rr = newRayRecips(D)
	}

	for _, s := range scene.Paraboloids {
		if cull {
			if ok, tNear := rayAABB(O, s.AABBMin, s.AABBMax, rr); !ok || tNear > bestT {
				continue
			}
		}
		if hit, ok := intersectParaboloid(O, D, s, obs); ok && hit.t < bestT {
			bestT, okAny = hit.t, true
			best = shellHit{surfaceHit: hit, kind: KindParaboloid, shell: s.Shell}
		}
	}

	for _, s := range scene.Hyperboloids {
		if cull {
			if ok, tNear := rayAABB(O, s.AABBMin, s.AABBMax, rr); !ok || tNear > bestT {
				continue
			}
		}
		if hit, ok := intersectHyperboloid(O, D, s, obs); ok && hit.t < bestT {
			bestT, okAny = hit.t, true
			best = shellHit{surfaceHit: hit, kind: KindHyperboloid, shell: s.Shell}
		}
	}

	return best, okAny
}

// planeHit is the sensor distance or +Inf.
func planeHit(scene *Scene, O, D Vector3) (Real, Vector3) {
	t, p, ok := scene.Sensor.Intersect(O, D)
	if !ok {
		return math.Inf(1), Vector3{}
	}
	return t, p
}
