// Package state holds the per-process SystemState that the control loop
// mutates once per cycle and the pipeline modules read and write.
package state

import (
	"time"

	"github.com/Pi3th0n/robocup-software/internal/config"
	"github.com/Pi3th0n/robocup-software/internal/geometry"
	"github.com/Pi3th0n/robocup-software/internal/packet"
)

// RobotsPerTeam is the fixed roster size for each side.
const RobotsPerTeam = 5

// Robot is one roster slot.
type Robot struct {
	// Shell is the hardware identifier of the robot occupying this slot.
	Shell   int
	Valid   bool
	Pos     geometry.Point
	Angle   float64
	HasBall bool
	Rev     config.Revision
	Config  config.Robot
	// Command points into the cycle's CommandBuffer. It is nil at the start of
	// every cycle and is only set for valid robots of our team.
	Command *packet.RadioRobot
	// Feedback is a copy of the latest RadioRx for this shell.
	Feedback packet.RadioRx
}

// Team is a fixed-size roster.
type Team [RobotsPerTeam]Robot

// Each calls fn for every valid robot in slot order.
func (t *Team) Each(fn func(slot int, r *Robot)) {
	for i := range t {
		if t[i].Valid {
			fn(i, &t[i])
		}
	}
}

// ByShell returns the slot holding shell, or -1.
func (t *Team) ByShell(shell int) int {
	for i := range t {
		if t[i].Shell == shell {
			return i
		}
	}
	return -1
}

// ValidCount returns the number of valid robots.
func (t *Team) ValidCount() int {
	n := 0
	for i := range t {
		if t[i].Valid {
			n++
		}
	}
	return n
}

// Ball is the filtered ball state in team space.
type Ball struct {
	Pos   geometry.Point
	Vel   geometry.Point
	Valid bool
}

// SystemState is everything the pipeline knows about the world this cycle.
type SystemState struct {
	// Timestamp is the start of the current cycle.
	Timestamp time.Time
	// BlueTeam and ManualID are copied from the shared configuration at the
	// start of the locked phase of each cycle.
	BlueTeam bool
	ManualID int

	Self Team
	Opp  Team
	Ball Ball

	// RawVision is indexed by camera id and only ever grows.
	RawVision []VisionFrame

	GameState GameState

	debugLayers []string
}

// New returns an empty SystemState with every slot invalid.
func New() *SystemState {
	s := &SystemState{ManualID: -1}
	for i := range s.Self {
		s.Self[i].Shell = i
		s.Opp[i].Shell = i
	}
	return s
}

// ClearCommands drops every robot's reference into last cycle's commands.
func (s *SystemState) ClearCommands() {
	for i := range s.Self {
		s.Self[i].Command = nil
	}
}

// Vision returns the frame slot for camera, growing RawVision as needed.
func (s *SystemState) Vision(camera int) *VisionFrame {
	if camera >= len(s.RawVision) {
		grown := make([]VisionFrame, camera+1)
		copy(grown, s.RawVision)
		s.RawVision = grown
	}
	return &s.RawVision[camera]
}

// AddDebugLayer records a named debug layer for this cycle's log.
func (s *SystemState) AddDebugLayer(name string) {
	for _, l := range s.debugLayers {
		if l == name {
			return
		}
	}
	s.debugLayers = append(s.debugLayers, name)
}

// ClearDebugLayers forgets the layers of the previous cycle.
func (s *SystemState) ClearDebugLayers() {
	s.debugLayers = s.debugLayers[:0]
}

// DebugLayers returns the debug layers registered so far.
func (s *SystemState) DebugLayers() []string {
	return s.debugLayers
}
