package state

import (
	"time"

	"github.com/Pi3th0n/robocup-software/internal/geometry"
)

// VisionRobot is one robot detection in team space.
type VisionRobot struct {
	Shell int
	Pos   geometry.Point
	// Angle is in degrees.
	Angle float64
}

// VisionBall is one ball detection in team space.
type VisionBall struct {
	Pos geometry.Point
}

// VisionFrame is the latest detection set from one camera.
type VisionFrame struct {
	Camera int
	// Timestamp is the capture time in microseconds on the vision clock.
	Timestamp int64
	// Received is the local time the datagram was read.
	Received time.Time
	Blue     []VisionRobot
	Yellow   []VisionRobot
	Balls    []VisionBall
}

// Reset empties the frame but keeps its slice capacity.
func (f *VisionFrame) Reset(camera int) {
	f.Camera = camera
	f.Timestamp = 0
	f.Received = time.Time{}
	f.Blue = f.Blue[:0]
	f.Yellow = f.Yellow[:0]
	f.Balls = f.Balls[:0]
}

// Ours returns the detections for our team given the colour assignment.
func (f *VisionFrame) Ours(blue bool) []VisionRobot {
	if blue {
		return f.Blue
	}
	return f.Yellow
}

// Theirs returns the detections for the opponent.
func (f *VisionFrame) Theirs(blue bool) []VisionRobot {
	if blue {
		return f.Yellow
	}
	return f.Blue
}
