package wolter

// Reference telescope and tracer defaults.
const (
	FocalLength      = 1600.0 // mm
	MirrorHeight     = 150.0  // mm
	SensorDefocus    = 10.4   // mm past the focal point, sensor plane at z = F + defocus
	SensorPixelSize  = 7.5
	SensorResolution = 1024 // square
	MaxSteps         = 8
	SourceHalfWidth  = 200.0 // mm, half side of the square source aperture
	SourceLift       = 200.0 // mm above 2F
	Rays             = 100_000
	GIFDelay         = 50 // 100ths of a second per frame
	Gamma            = 0.75
	ThumbnailSize    = 256
	OutputDir        = "out"
	// hot-loop constants reused across bounces
	EpsT        = 1e-4  // minimum accepted hit distance
	bumpShift   = 1e-4  // origin offset along the reflected direction
	epsQuad     = 1e-16 // |A| (and |B|) below this degrade the quadratic
	epsParallel = 1e-9  // |n·d| below this is parallel to the sensor
	aabbPad     = 0.5   // mm
)

// ReferenceRadii are the minimum aperture radii (Yp_min, mm) of the 54 reference shells, outermost first.
var ReferenceRadii = []Real{
	174.2, 169.19, 164.39, 159.60, 155.04, 150.61, 146.32, 142.12, 138.07, 134.15, 130.28, 126.55,
	122.98, 119.45, 116.02, 112.72, 109.46, 106.34, 103.36, 100.41, 97.52, 94.69, 91.95, 89.36,
	86.80, 84.34, 81.96, 79.59, 77.30, 75.07, 72.93, 70.87, 68.85, 66.85, 64.92, 63.07,
	61.32, 59.53, 57.83, 56.15, 54.58, 53.00, 51.52, 50.05, 48.59, 47.22, 45.84, 44.56,
	43.30, 42.09, 40.87, 39.67, 38.47, 37.24,
}
