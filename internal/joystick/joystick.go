// Package joystick implements the operator's manual control. Input arrives
// from the supervisory API and is latched once per cycle by the control loop.
package joystick

import (
	"math"
	"sync"
	"time"

	"github.com/Pi3th0n/robocup-software/internal/packet"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

// MaxMotor is the largest motor command magnitude.
const MaxMotor = 127

// DefaultTimeout is how long operator input stays valid without an update.
const DefaultTimeout = 500 * time.Millisecond

// wheelAngles are the omni wheel mounting angles in radians, front right
// first, counter-clockwise.
var wheelAngles = [packet.NumMotors]float64{
	math.Pi / 4, 3 * math.Pi / 4, 5 * math.Pi / 4, 7 * math.Pi / 4,
}

// Input is one operator sample. Axes are in [-1, 1].
type Input struct {
	Forward float64 `json:"forward"`
	Strafe  float64 `json:"strafe"`
	Rotate  float64 `json:"rotate"`
	Roller  float64 `json:"roller"`
	Kick    bool    `json:"kick"`
	// Autonomous lets robots other than the manual one follow gameplay.
	Autonomous bool `json:"autonomous"`
}

// Remote is a joystick driven over the network.
type Remote struct {
	clock   timeutil.Clock
	timeout time.Duration

	mu      sync.Mutex
	pending Input
	updated time.Time
	seen    bool

	// Loop-owned copies latched by Update.
	cur   Input
	valid bool
}

// NewRemote returns a disconnected remote joystick.
func NewRemote(clock timeutil.Clock, timeout time.Duration) *Remote {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Remote{clock: clock, timeout: timeout}
}

// Set records new operator input. Safe for concurrent use.
func (r *Remote) Set(in Input) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = in
	r.updated = r.clock.Now()
	r.seen = true
}

// Update latches the latest input for this cycle. Input older than the
// timeout disconnects the joystick.
func (r *Remote) Update() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valid = r.seen && r.clock.Since(r.updated) < r.timeout
	if r.valid {
		r.cur = r.pending
	} else {
		r.cur = Input{}
	}
}

// Valid reports whether operator input is live.
func (r *Remote) Valid() bool {
	return r.valid
}

// Autonomous is true unless a live operator has switched it off.
func (r *Remote) Autonomous() bool {
	return !r.valid || r.cur.Autonomous
}

// Drive writes the latched input into cmd. A disconnected joystick stops the
// robot.
func (r *Remote) Drive(cmd *packet.RadioRobot) {
	cmd.StopMotors()
	cmd.Roller = 0
	cmd.Kick = 0
	if !r.valid {
		return
	}
	in := r.cur
	for i, a := range wheelAngles {
		v := -math.Sin(a)*in.Strafe + math.Cos(a)*in.Forward + in.Rotate
		cmd.Motors[i] = scale(v)
	}
	cmd.Roller = scale(in.Roller)
	if in.Kick {
		cmd.Kick = MaxMotor
	}
}

func scale(v float64) int32 {
	return int32(math.Round(math.Max(-1, math.Min(1, v)) * MaxMotor))
}
