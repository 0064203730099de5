package wolter

import "math"

type rayRecips struct {
	invX, invY, invZ Real
	parX, parY, parZ bool // parallel flags (|D| < eps)
}

func newRayRecips(D Vector3) rayRecips {
	const eps = 1e-12
	rr := rayRecips{
		parX: math.Abs(D.X) < eps,
		parY: math.Abs(D.Y) < eps,
		parZ: math.Abs(D.Z) < eps,
	}
	if !rr.parX {
		rr.invX = 1 / D.X
	}
	if !rr.parY {
		rr.invY = 1 / D.Y
	}
	if !rr.parZ {
		rr.invZ = 1 / D.Z
	}
	return rr
}

// slab clips [tmin, tmax] against one axis; ok is false when the ray misses the slab.
func slab(o, lo, hi, inv Real, par bool, tmin, tmax Real) (Real, Real, bool) {
	if par {
		if o < lo || o > hi {
			return tmin, tmax, false
		}
		return tmin, tmax, true
	}
	t1 := (lo - o) * inv
	t2 := (hi - o) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tmin {
		tmin = t1
	}
	if t2 < tmax {
		tmax = t2
	}
	return tmin, tmax, true
}

// rayAABB returns whether the ray touches the box at t >= 0, and the entry distance.
func rayAABB(O Vector3, minP, maxP Vector3, rr rayRecips) (bool, Real) {
	tmin, tmax := -1e300, 1e300
	var ok bool
	if tmin, tmax, ok = slab(O.X, minP.X, maxP.X, rr.invX, rr.parX, tmin, tmax); !ok {
		return false, 0
	}
	if tmin, tmax, ok = slab(O.Y, minP.Y, maxP.Y, rr.invY, rr.parY, tmin, tmax); !ok {
		return false, 0
	}
	if tmin, tmax, ok = slab(O.Z, minP.Z, maxP.Z, rr.invZ, rr.parZ, tmin, tmax); !ok {
		return false, 0
	}
	if tmax < 0 || tmin > tmax {
		return false, 0
	}
	return true, tmin
}

// cylinderBox bounds a z-bounded surface of revolution with maximum radius r, padded,
// and carries the box through the pose by its eight corners.
func cylinderBox(r, zmin, zmax Real, pose Pose) (Vector3, Vector3) {
	lo := Vector3{-r - aabbPad, -r - aabbPad, zmin - aabbPad}
	hi := Vector3{r + aabbPad, r + aabbPad, zmax + aabbPad}
	if !pose.tilted {
		return lo, hi
	}
	wmin := Vector3{math.Inf(1), math.Inf(1), math.Inf(1)}
	wmax := Vector3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i < 8; i++ {
		c := lo
		if i&1 != 0 {
			c.X = hi.X
		}
		if i&2 != 0 {
			c.Y = hi.Y
		}
		if i&4 != 0 {
			c.Z = hi.Z
		}
		w := pose.pointToWorld(c)
		wmin = Vector3{math.Min(wmin.X, w.X), math.Min(wmin.Y, w.Y), math.Min(wmin.Z, w.Z)}
		wmax = Vector3{math.Max(wmax.X, w.X), math.Max(wmax.Y, w.Y), math.Max(wmax.Z, w.Z)}
	}
	return wmin, wmax
}
