package wolter

var (
	Debug = false // set to true to keep a per-trace ray log in Stats
	PNG   = false // set to true to save the sensor image as a 16-bit PNG
	RAW   = false // set to true to save the raw sensor histogram
	CSV   = false // set to true to write per-ray CSV rows
	PLOT  = false // set to true to save the PSF scatter plot
	GIF   = false // set to true to save the off-axis sweep as an animated GIF
	Cull  = true  // set to false to skip the bounding-box pre-cull
)
