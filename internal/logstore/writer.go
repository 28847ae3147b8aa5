package logstore

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/packet"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

// Writer defaults.
const (
	DefaultQueueSize     = 1024
	DefaultBatchSize     = 120
	DefaultFlushInterval = time.Second
)

// WriterConfig configures a Writer.
type WriterConfig struct {
	Store         *Store
	Session       uuid.UUID
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	// Clock drives the flush ticker. Nil uses the real clock.
	Clock timeutil.Clock
}

// Writer is the control loop's log sink. AddFrame encodes the frame and
// queues it without blocking; Run stores queued frames in batches.
type Writer struct {
	store    *Store
	session  uuid.UUID
	queue    chan Record
	batch    int
	interval time.Duration
	clock    timeutil.Clock
	log      zerolog.Logger

	written atomic.Uint64
	dropped atomic.Uint64
}

// NewWriter creates a writer for one session.
func NewWriter(cfg WriterConfig) *Writer {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.RealClock{}
	}
	return &Writer{
		store:    cfg.Store,
		session:  cfg.Session,
		queue:    make(chan Record, cfg.QueueSize),
		batch:    cfg.BatchSize,
		interval: cfg.FlushInterval,
		clock:    cfg.Clock,
		log:      monitoring.Component("logstore"),
	}
}

// AddFrame encodes f and queues it. The frame is not retained. When the
// queue is full the frame is dropped and counted.
func (w *Writer) AddFrame(f *packet.LogFrame) {
	data, err := f.Marshal()
	if err != nil {
		w.log.Error().Err(err).Int64("start_time", f.StartTime).Msg("failed to encode log frame")
		return
	}
	rec := Record{
		Session:   w.session,
		StartTime: f.StartTime,
		ManualID:  int(f.ManualID),
		Data:      data,
	}
	if f.RadioTx != nil {
		rec.Robots = len(f.RadioTx.Robots)
	}
	select {
	case w.queue <- rec:
	default:
		if w.dropped.Add(1)%100 == 1 {
			w.log.Warn().Uint64("dropped", w.dropped.Load()).Msg("log queue full, dropping frames")
		}
	}
}

// Written returns the number of frames stored.
func (w *Writer) Written() uint64 {
	return w.written.Load()
}

// Dropped returns the number of frames discarded because the queue was full.
func (w *Writer) Dropped() uint64 {
	return w.dropped.Load()
}

// Run stores queued frames until ctx is done, then flushes what is left.
func (w *Writer) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	pending := make([]Record, 0, w.batch)
	for {
		select {
		case rec := <-w.queue:
			pending = append(pending, rec)
			if len(pending) >= w.batch {
				pending = w.flush(context.Background(), pending)
			}
		case <-ticker.C():
			pending = w.flush(context.Background(), pending)
		case <-ctx.Done():
			for {
				select {
				case rec := <-w.queue:
					pending = append(pending, rec)
				default:
					w.flush(context.Background(), pending)
					return nil
				}
			}
		}
	}
}

func (w *Writer) flush(ctx context.Context, pending []Record) []Record {
	if len(pending) == 0 {
		return pending
	}
	if err := w.store.InsertFrames(ctx, pending); err != nil {
		w.log.Error().Err(err).Int("frames", len(pending)).Msg("failed to store cycle logs")
	} else {
		w.written.Add(uint64(len(pending)))
	}
	return pending[:0]
}
