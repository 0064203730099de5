package wolter

import "fmt"

// Scene is the mirror assembly plus the focal-plane sensor.
// It is never mutated while tracing, so one Scene can serve any number of traces.
type Scene struct {
	Paraboloids  []*Paraboloid
	Hyperboloids []*Hyperboloid
	Sensor       SensorPlane
}

// NewScene assembles already validated surfaces.
func NewScene(paras []*Paraboloid, hypers []*Hyperboloid, sensor SensorPlane) *Scene {
	s := &Scene{
		Paraboloids:  paras,
		Hyperboloids: hypers,
		Sensor:       sensor,
	}
	DebugLog("Created scene: %d paraboloids, %d hyperboloids, sensor n=%+v d=%.4f", len(paras), len(hypers), sensor.Normal, sensor.Offset)
	return s
}

// BuildScene builds the shells of a design in front of the given sensor.
func BuildScene(d ShellDesign, sensor SensorPlane) (*Scene, error) {
	paras, hypers, err := BuildShells(d)
	if err != nil {
		return nil, err
	}
	return NewScene(paras, hypers, sensor), nil
}

// ReferenceScene is the 54-shell telescope with the sensor at z = F + 10.4 mm.
func ReferenceScene() (*Scene, error) {
	sensor, err := NewFocalSensor(FocalLength+SensorDefocus, SensorPixelSize, SensorResolution)
	if err != nil {
		return nil, err
	}
	return BuildScene(ReferenceDesign(), sensor)
}

// Shells is the number of paraboloid/hyperboloid pairs.
func (s *Scene) Shells() int { return len(s.Paraboloids) }

// String is a one-line summary used by the CLI header.
func (s *Scene) String() string {
	n := s.Sensor.Normal
	return fmt.Sprintf("%d paraboloids + %d hyperboloids, sensor %.3fx + %.3fy + %.3fz + %.3f = 0", len(s.Paraboloids), len(s.Hyperboloids), n.X, n.Y, n.Z, s.Sensor.Offset)
}
