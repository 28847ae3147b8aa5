package state

// Period is the coarse game phase driven by the referee.
type Period int

const (
	Halt Period = iota
	Stop
	Setup
	Ready
	Playing
)

var periodNames = [...]string{"halt", "stop", "setup", "ready", "playing"}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return "unknown"
	}
	return periodNames[p]
}

// GameState is the referee-facing state of the match.
type GameState struct {
	Period     Period
	OurScore   int
	TheirScore int
	// OurRestart is true when the pending restart belongs to us.
	OurRestart bool
	// TimeRemaining is the referee clock in seconds.
	TimeRemaining int
}

// Halted reports whether all motors must stop.
func (g GameState) Halted() bool {
	return g.Period == Halt
}

// Stopped reports whether robots must keep clear of the ball.
func (g GameState) Stopped() bool {
	return g.Period == Stop
}

// Playing reports whether normal play is running.
func (g GameState) Playing() bool {
	return g.Period == Playing
}
