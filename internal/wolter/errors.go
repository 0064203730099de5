package wolter

import "errors"

var (
	ErrInvalidShell  = errors.New("invalid shell")
	ErrInvalidSensor = errors.New("invalid sensor")
	ErrInvalidLayout = errors.New("invalid shell layout")
	ErrDegenerateRay = errors.New("degenerate ray")
)
