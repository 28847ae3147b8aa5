package processor

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Pi3th0n/robocup-software/internal/ingest"
	"github.com/Pi3th0n/robocup-software/internal/scheduler"
)

// statsWindow is the number of recent cycles summarised in Status.
const statsWindow = 120

// Status is a snapshot of loop health.
type Status struct {
	LastLoop    time.Time `json:"last_loop"`
	LastVision  time.Time `json:"last_vision"`
	LastReferee time.Time `json:"last_referee"`
	LastRadio   time.Time `json:"last_radio"`

	LastCycle time.Duration `json:"last_cycle"`
	Cycles    uint64        `json:"cycles"`
	Overruns  uint64        `json:"overruns"`

	// Cycle time statistics over the last statsWindow cycles.
	CycleMean   time.Duration `json:"cycle_mean"`
	CycleStdDev time.Duration `json:"cycle_stddev"`
	CycleMax    time.Duration `json:"cycle_max"`

	RadioChannel int          `json:"radio_channel"`
	Ingest       ingest.Stats `json:"ingest"`
}

// cycleStats is a ring of recent cycle durations in milliseconds.
type cycleStats struct {
	buf  []float64
	next int
	full bool
}

func newCycleStats(n int) cycleStats {
	return cycleStats{buf: make([]float64, n)}
}

func (c *cycleStats) add(d time.Duration) {
	c.buf[c.next] = float64(d) / float64(time.Millisecond)
	c.next++
	if c.next == len(c.buf) {
		c.next = 0
		c.full = true
	}
}

func (c *cycleStats) window() []float64 {
	if c.full {
		return c.buf
	}
	return c.buf[:c.next]
}

// summary returns mean, standard deviation and maximum of the window.
func (c *cycleStats) summary() (mean, std, peak time.Duration) {
	w := c.window()
	if len(w) == 0 {
		return 0, 0, 0
	}
	m, s := stat.MeanStdDev(w, nil)
	if len(w) < 2 || math.IsNaN(s) {
		s = 0
	}
	return ms(m), ms(s), ms(floats.Max(w))
}

func ms(v float64) time.Duration {
	return time.Duration(v * float64(time.Millisecond))
}

// recordStatus builds the new status off-lock and swaps it in.
func (p *Processor) recordStatus(start time.Time, res scheduler.Result) {
	p.stats.add(res.Elapsed)

	p.statusMu.Lock()
	next := p.status
	p.statusMu.Unlock()

	next.LastLoop = start
	next.LastVision, next.LastReferee, next.LastRadio = p.ingest.LastReceive()
	next.LastCycle = res.Elapsed
	next.Cycles++
	if res.Overrun {
		next.Overruns++
	}
	next.CycleMean, next.CycleStdDev, next.CycleMax = p.stats.summary()
	next.RadioChannel = p.ingest.RadioChannel()
	next.Ingest = p.ingest.Stats()

	p.statusMu.Lock()
	p.status = next
	p.statusMu.Unlock()
}

// Status returns the latest loop status.
func (p *Processor) Status() Status {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	return p.status
}
