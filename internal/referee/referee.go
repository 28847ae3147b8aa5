package referee

import (
	"github.com/rs/zerolog"

	"github.com/Pi3th0n/robocup-software/internal/geometry"
	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

// kickedDistance is how far the ball must move after a restart before play
// is considered running.
const kickedDistance = 0.05

// Referee is the pipeline's referee module. Packet and Command queue input;
// Run applies it to the state. All methods are called with the loop lock
// held.
type Referee struct {
	log zerolog.Logger

	pending []byte

	haveFrame     bool
	lastCounter   uint8
	blueGoals     int
	yellowGoals   int
	timeRemaining int

	period     state.Period
	restart    byte
	ballAtKick geometry.Point
	armed      bool
}

// New returns a referee in the halted state.
func New() *Referee {
	return &Referee{log: monitoring.Component("referee"), period: state.Halt}
}

// Packet queues an external referee datagram. Repeats of the previous
// command counter are ignored.
func (r *Referee) Packet(b []byte) {
	f, err := Decode(b)
	if err != nil {
		r.log.Warn().Err(err).Msg("ignoring referee frame")
		return
	}
	r.blueGoals = int(f.BlueGoals)
	r.yellowGoals = int(f.YellowGoals)
	r.timeRemaining = int(f.TimeRemaining)
	repeat := r.haveFrame && f.Counter == r.lastCounter
	r.haveFrame = true
	r.lastCounter = f.Counter
	if repeat {
		return
	}
	r.pending = append(r.pending, f.Command)
}

// Command queues a command issued by the operator.
func (r *Referee) Command(c byte) {
	r.pending = append(r.pending, c)
}

// Period returns the current game period.
func (r *Referee) Period() state.Period {
	return r.period
}

// Run applies queued commands and writes the game state.
func (r *Referee) Run(s *state.SystemState) {
	for _, c := range r.pending {
		r.apply(c, s)
	}
	r.pending = r.pending[:0]

	if r.period == state.Ready && r.armed && s.Ball.Valid &&
		!geometry.Near(s.Ball.Pos, r.ballAtKick, kickedDistance) {
		r.log.Debug().Msg("ball kicked, play running")
		r.period = state.Playing
		r.armed = false
	}

	g := &s.GameState
	g.Period = r.period
	g.OurRestart = r.restart != 0 && isBlue(r.restart) == s.BlueTeam
	if r.haveFrame {
		g.TimeRemaining = r.timeRemaining
		if s.BlueTeam {
			g.OurScore, g.TheirScore = r.blueGoals, r.yellowGoals
		} else {
			g.OurScore, g.TheirScore = r.yellowGoals, r.blueGoals
		}
	}
}

func (r *Referee) apply(c byte, s *state.SystemState) {
	prev := r.period
	switch c {
	case Halt, TimeoutBlue, TimeoutYellow:
		r.period = state.Halt
		r.restart = 0
	case Stop, TimeoutEnd, Cancel, FirstHalf, HalfTime, SecondHalf, Overtime1, Overtime2, Shootout:
		r.period = state.Stop
		r.restart = 0
	case KickoffBlue, KickoffYellow, PenaltyBlue, PenaltyYellow:
		r.period = state.Setup
		r.restart = c
	case Ready:
		if r.period == state.Setup {
			r.arm(s)
		} else {
			r.period = state.Playing
		}
	case DirectBlue, DirectYellow, IndirectBlue, IndirectYellow:
		r.restart = c
		r.arm(s)
	case Start:
		r.period = state.Playing
		r.restart = 0
		r.armed = false
	case GoalBlue, GoalYellow, SubtractGoalBlue, SubtractGoalYellow:
		// Score changes are handled by whoever issued the command.
	default:
		r.log.Warn().Str("command", string(c)).Msg("unknown referee command")
	}
	if r.period != prev {
		r.log.Info().Str("command", string(c)).Stringer("from", prev).Stringer("to", r.period).
			Msg("game period changed")
	}
}

// arm enters Ready and waits for the ball to move.
func (r *Referee) arm(s *state.SystemState) {
	r.period = state.Ready
	r.armed = s.Ball.Valid
	r.ballAtKick = s.Ball.Pos
	if !r.armed {
		// Without a ball there is nothing to wait for.
		r.period = state.Playing
	}
}
