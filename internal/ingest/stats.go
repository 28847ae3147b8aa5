package ingest

import (
	"sync/atomic"

	"github.com/Pi3th0n/robocup-software/internal/monitoring"
)

// Stats is a snapshot of the per-stream datagram counters.
type Stats struct {
	VisionDatagrams  uint64
	VisionDropped    uint64
	RefereeDatagrams uint64
	RefereeDropped   uint64
	RadioDatagrams   uint64
	RadioDropped     uint64
}

type counters struct {
	visionDatagrams  atomic.Uint64
	visionDropped    atomic.Uint64
	refereeDatagrams atomic.Uint64
	refereeDropped   atomic.Uint64
	radioDatagrams   atomic.Uint64
	radioDropped     atomic.Uint64
}

func (c *counters) datagram(stream string) {
	monitoring.CountDatagram(stream)
	switch stream {
	case StreamVision:
		c.visionDatagrams.Add(1)
	case StreamReferee:
		c.refereeDatagrams.Add(1)
	case StreamRadio:
		c.radioDatagrams.Add(1)
	}
}

func (c *counters) dropped(stream string) {
	monitoring.CountDropped(stream)
	switch stream {
	case StreamVision:
		c.visionDropped.Add(1)
	case StreamReferee:
		c.refereeDropped.Add(1)
	case StreamRadio:
		c.radioDropped.Add(1)
	}
}

// Stats returns the counters. Safe to call from any goroutine.
func (in *Ingest) Stats() Stats {
	c := &in.stats
	return Stats{
		VisionDatagrams:  c.visionDatagrams.Load(),
		VisionDropped:    c.visionDropped.Load(),
		RefereeDatagrams: c.refereeDatagrams.Load(),
		RefereeDropped:   c.refereeDropped.Load(),
		RadioDatagrams:   c.radioDatagrams.Load(),
		RadioDropped:     c.radioDropped.Load(),
	}
}
