package scheduler

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

func TestMain(m *testing.M) {
	monitoring.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestNew_DefaultPeriod(t *testing.T) {
	f := New(0, nil)
	assert.Equal(t, DefaultPeriod, f.Period())
	assert.InDelta(t, 16.667, float64(DefaultPeriod)/float64(time.Millisecond), 0.001)
}

func TestPace(t *testing.T) {
	tests := []struct {
		name    string
		work    time.Duration
		sync    bool
		slept   time.Duration
		overrun bool
	}{
		{name: "under budget sleeps remainder", work: 10 * time.Millisecond, slept: DefaultPeriod - 10*time.Millisecond},
		{name: "synced to vision does not sleep", work: 10 * time.Millisecond, sync: true},
		{name: "over budget", work: 20 * time.Millisecond, overrun: true},
		{name: "over budget synced", work: 20 * time.Millisecond, sync: true, overrun: true},
		{name: "exactly on budget", work: DefaultPeriod, overrun: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := timeutil.NewMockClock(time.Unix(0, 0))
			f := New(DefaultPeriod, clock)
			start := clock.Now()
			clock.Advance(tt.work)

			res := f.Pace(start, tt.sync)
			assert.Equal(t, tt.work, res.Elapsed)
			assert.Equal(t, tt.slept, res.Slept)
			assert.Equal(t, tt.overrun, res.Overrun)
			if tt.slept > 0 {
				assert.Equal(t, []time.Duration{tt.slept}, clock.Sleeps())
			} else {
				assert.Empty(t, clock.Sleeps())
			}
		})
	}
}

func TestPace_TenMillisecondsSleepsAboutSix(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(0, 0))
	f := New(DefaultPeriod, clock)
	start := clock.Now()
	clock.Advance(10 * time.Millisecond)

	res := f.Pace(start, false)
	assert.InDelta(t, 6.67, float64(res.Slept)/float64(time.Millisecond), 0.01)
	assert.Equal(t, start.Add(DefaultPeriod), clock.Now(), "sleep advances the mock clock")
}

func TestMeasure_DoesNotSleep(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(0, 0))
	f := New(DefaultPeriod, clock)
	start := clock.Now()
	clock.Advance(4 * time.Millisecond)

	res := f.Measure(start)
	assert.Equal(t, 4*time.Millisecond, res.Elapsed)
	assert.Empty(t, clock.Sleeps())

	f.Wait(&res, false)
	assert.Equal(t, DefaultPeriod-4*time.Millisecond, res.Slept)
	assert.Equal(t, []time.Duration{res.Slept}, clock.Sleeps())
}

func TestRemaining(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(0, 0))
	f := New(10*time.Millisecond, clock)
	start := clock.Now()

	clock.Advance(4 * time.Millisecond)
	assert.Equal(t, 6*time.Millisecond, f.Remaining(start))

	clock.Advance(10 * time.Millisecond)
	assert.Zero(t, f.Remaining(start))
}
