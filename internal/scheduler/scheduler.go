// Package scheduler paces the control loop to a fixed frame period.
package scheduler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

// DefaultPeriod is one frame at 60 Hz.
const DefaultPeriod = time.Second / 60

// Result describes how one cycle was paced.
type Result struct {
	Elapsed time.Duration
	Slept   time.Duration
	Overrun bool
}

// FrameScheduler measures cycle duration and sleeps off the remainder of the
// frame period.
type FrameScheduler struct {
	period time.Duration
	clock  timeutil.Clock
	log    zerolog.Logger
}

// New creates a scheduler. A non-positive period selects DefaultPeriod.
func New(period time.Duration, clock timeutil.Clock) *FrameScheduler {
	if period <= 0 {
		period = DefaultPeriod
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &FrameScheduler{period: period, clock: clock, log: monitoring.Component("scheduler")}
}

// Period returns the frame period.
func (f *FrameScheduler) Period() time.Duration {
	return f.period
}

// Now returns the scheduler clock's current time.
func (f *FrameScheduler) Now() time.Time {
	return f.clock.Now()
}

// Remaining returns the part of the frame period left since start, never
// negative.
func (f *FrameScheduler) Remaining(start time.Time) time.Duration {
	if r := f.period - f.clock.Since(start); r > 0 {
		return r
	}
	return 0
}

// Pace ends the cycle that began at start. Under budget it sleeps the
// remainder unless syncToVision is set, in which case the next perception
// wait does the pacing. Over budget it logs and counts an overrun.
func (f *FrameScheduler) Pace(start time.Time, syncToVision bool) Result {
	res := f.Measure(start)
	f.Wait(&res, syncToVision)
	return res
}

// Measure records how long the cycle that began at start took, counting an
// overrun when it exceeded the period. It does not sleep.
func (f *FrameScheduler) Measure(start time.Time) Result {
	res := Result{Elapsed: f.clock.Since(start)}
	monitoring.RecordCycle(res.Elapsed)
	if res.Elapsed >= f.period {
		res.Overrun = true
		monitoring.CountOverrun()
		f.log.Warn().Dur("elapsed", res.Elapsed).Dur("period", f.period).Msg("cycle took too long")
	}
	return res
}

// Wait sleeps off the rest of the frame measured in res and stores the sleep
// in res.Slept. Overrun cycles and syncToVision cycles do not sleep.
func (f *FrameScheduler) Wait(res *Result, syncToVision bool) {
	if res.Overrun || syncToVision {
		return
	}
	res.Slept = f.period - res.Elapsed
	f.clock.Sleep(res.Slept)
}
