// Package modeling is a minimal world model: it takes the freshest camera
// detections as truth without filtering.
package modeling

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Pi3th0n/robocup-software/internal/state"
)

// DefaultTimeout is how old a camera frame may be before it is ignored.
const DefaultTimeout = 250 * time.Millisecond

// PassThrough fills the rosters and ball from the latest vision frames.
type PassThrough struct {
	Timeout time.Duration

	lastBall     r2.Vec
	lastBallTime int64
	haveBall     bool
}

// New returns a PassThrough with the given frame timeout.
func New(timeout time.Duration) *PassThrough {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &PassThrough{Timeout: timeout}
}

type sighting struct {
	robot state.VisionRobot
	ts    int64
}

// Run recomputes every slot's Valid flag and pose.
func (m *PassThrough) Run(s *state.SystemState) {
	var ours, theirs []sighting
	var ball *state.VisionBall
	var ballTS int64
	for i := range s.RawVision {
		f := &s.RawVision[i]
		if f.Received.IsZero() || s.Timestamp.Sub(f.Received) > m.Timeout {
			continue
		}
		ours = collect(ours, f.Ours(s.BlueTeam), f.Timestamp)
		theirs = collect(theirs, f.Theirs(s.BlueTeam), f.Timestamp)
		if len(f.Balls) > 0 && (ball == nil || f.Timestamp > ballTS) {
			ball = &f.Balls[0]
			ballTS = f.Timestamp
		}
	}
	assign(&s.Self, ours)
	assign(&s.Opp, theirs)
	s.Self.Each(func(_ int, r *state.Robot) {
		r.HasBall = r.Feedback.BoardID == int32(r.Shell) && r.Feedback.Ball
	})
	m.updateBall(&s.Ball, ball, ballTS)
}

// collect keeps the newest sighting per shell.
func collect(dst []sighting, robots []state.VisionRobot, ts int64) []sighting {
outer:
	for _, r := range robots {
		for i := range dst {
			if dst[i].robot.Shell == r.Shell {
				if ts > dst[i].ts {
					dst[i] = sighting{r, ts}
				}
				continue outer
			}
		}
		dst = append(dst, sighting{r, ts})
	}
	return dst
}

// assign keeps a shell in the slot it held last cycle when possible and
// places new shells in free slots. Sightings beyond the roster size are
// ignored.
func assign(team *state.Team, seen []sighting) {
	placed := make([]bool, len(seen))
	for i := range team {
		team[i].Valid = false
	}
	for i := range seen {
		if slot := team.ByShell(seen[i].robot.Shell); slot >= 0 {
			place(&team[slot], seen[i].robot)
			placed[i] = true
		}
	}
	for i := range seen {
		if placed[i] {
			continue
		}
		for slot := range team {
			if !team[slot].Valid {
				team[slot].Shell = seen[i].robot.Shell
				place(&team[slot], seen[i].robot)
				break
			}
		}
	}
}

func place(r *state.Robot, v state.VisionRobot) {
	r.Valid = true
	r.Pos = v.Pos
	r.Angle = v.Angle
}

func (m *PassThrough) updateBall(b *state.Ball, seen *state.VisionBall, ts int64) {
	if seen == nil {
		b.Valid = false
		return
	}
	b.Valid = true
	if m.haveBall && ts > m.lastBallTime {
		dt := float64(ts-m.lastBallTime) / 1e6
		b.Vel = r2.Scale(1/dt, r2.Sub(seen.Pos, m.lastBall))
	} else if !m.haveBall {
		b.Vel = r2.Vec{}
	}
	b.Pos = seen.Pos
	m.lastBall = seen.Pos
	m.lastBallTime = ts
	m.haveBall = true
}
