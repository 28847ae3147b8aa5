package monitoring

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Pi3th0n/robocup-software/internal/monitoring"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Instruments are created lazily from the global meter provider so an
// embedding process can install an SDK before the first cycle.
type Instruments struct {
	Datagrams     metric.Int64Counter
	Dropped       metric.Int64Counter
	Overruns      metric.Int64Counter
	SendFailures  metric.Int64Counter
	CycleDuration metric.Float64Histogram
}

var (
	instOnce sync.Once
	inst     *Instruments
)

// Metrics returns the shared instruments.
func Metrics() *Instruments {
	instOnce.Do(func() {
		m := meter()
		i := &Instruments{}
		var err error
		if i.Datagrams, err = m.Int64Counter(
			"soccer.ingest.datagrams",
			metric.WithDescription("Datagrams received per input stream"),
		); err != nil {
			Logf("failed to create datagram counter: %v", err)
		}
		if i.Dropped, err = m.Int64Counter(
			"soccer.ingest.dropped",
			metric.WithDescription("Datagrams dropped as malformed per input stream"),
		); err != nil {
			Logf("failed to create drop counter: %v", err)
		}
		if i.Overruns, err = m.Int64Counter(
			"soccer.cycle.overruns",
			metric.WithDescription("Cycles that exceeded the frame period"),
		); err != nil {
			Logf("failed to create overrun counter: %v", err)
		}
		if i.SendFailures, err = m.Int64Counter(
			"soccer.radio.send_failures",
			metric.WithDescription("Radio packets that could not be written"),
		); err != nil {
			Logf("failed to create send failure counter: %v", err)
		}
		if i.CycleDuration, err = m.Float64Histogram(
			"soccer.cycle.duration",
			metric.WithDescription("Control cycle duration"),
			metric.WithUnit("ms"),
		); err != nil {
			Logf("failed to create cycle histogram: %v", err)
		}
		inst = i
	})
	return inst
}

// CountDatagram records one received datagram on stream.
func CountDatagram(stream string) {
	if c := Metrics().Datagrams; c != nil {
		c.Add(context.Background(), 1, metric.WithAttributes(attribute.String("stream", stream)))
	}
}

// CountDropped records one dropped datagram on stream.
func CountDropped(stream string) {
	if c := Metrics().Dropped; c != nil {
		c.Add(context.Background(), 1, metric.WithAttributes(attribute.String("stream", stream)))
	}
}

// CountOverrun records a cycle that ran past its period.
func CountOverrun() {
	if c := Metrics().Overruns; c != nil {
		c.Add(context.Background(), 1)
	}
}

// CountSendFailure records a failed radio write.
func CountSendFailure() {
	if c := Metrics().SendFailures; c != nil {
		c.Add(context.Background(), 1)
	}
}

// RecordCycle records the duration of one control cycle.
func RecordCycle(d time.Duration) {
	if h := Metrics().CycleDuration; h != nil {
		h.Record(context.Background(), float64(d)/float64(time.Millisecond))
	}
}
