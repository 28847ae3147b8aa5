// Package processor runs the control loop: each cycle it drains the input
// sockets, runs the pipeline under the loop lock, sends the radio packet,
// hands the cycle log to the sink and paces to the frame period.
package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Pi3th0n/robocup-software/internal/config"
	"github.com/Pi3th0n/robocup-software/internal/ingest"
	"github.com/Pi3th0n/robocup-software/internal/joystick"
	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/network"
	"github.com/Pi3th0n/robocup-software/internal/packet"
	"github.com/Pi3th0n/robocup-software/internal/pipeline"
	"github.com/Pi3th0n/robocup-software/internal/radio"
	"github.com/Pi3th0n/robocup-software/internal/scheduler"
	"github.com/Pi3th0n/robocup-software/internal/state"
	"github.com/Pi3th0n/robocup-software/internal/teamspace"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

// LogSink receives the cycle log. AddFrame is called with the loop lock held
// and must not retain frame after returning.
type LogSink interface {
	AddFrame(frame *packet.LogFrame)
}

// Joystick is the operator input consumed by the loop.
type Joystick interface {
	radio.Joystick
	// Update latches the latest input. Called once per cycle.
	Update()
}

// Config configures a Processor.
type Config struct {
	File *config.File
	// Simulation reads vision from the simulator's unicast port.
	Simulation bool
	// RadioChannel is the radio channel, negative to probe 0 then 1.
	RadioChannel int

	BlueTeam        bool
	DefendPlusX     bool
	ExternalReferee bool
	SyncToVision    bool

	Modeling pipeline.Module
	Referee  pipeline.RefereeModule
	StateID  pipeline.Module
	Gameplay pipeline.Module
	Motion   pipeline.Module
	Joystick Joystick
	Sink     LogSink
	// Trace records pipeline stages as debug layers in the cycle log.
	Trace bool

	Factory network.UDPSocketFactory
	Clock   timeutil.Clock
}

// Processor owns the control loop and the state it shares with the
// supervisory goroutine.
type Processor struct {
	log      zerolog.Logger
	ingest   *ingest.Ingest
	txSock   network.UDPSocket
	encoder  *radio.Encoder
	sched    *scheduler.FrameScheduler
	holder   *teamspace.Holder
	pipeline pipeline.Pipeline
	joystick Joystick
	referee  pipeline.RefereeModule
	sink     LogSink

	// loopMu is held for the locked phase of every cycle and by every
	// supervisory operation below.
	loopMu          sync.Mutex
	state           *state.SystemState
	manualID        int
	blueTeam        bool
	defendPlusX     bool
	externalReferee bool

	// Loop-owned.
	cmds  state.CommandBuffer
	frame packet.LogFrame
	stats cycleStats

	syncToVision atomic.Bool
	running      atomic.Bool
	runMu        sync.Mutex // serializes Start and Stop
	done         chan struct{}

	statusMu sync.Mutex
	status   Status
}

// New binds the sockets and assembles the loop. Bind failures wrap
// ingest.ErrBind.
func New(cfg Config) (*Processor, error) {
	if cfg.File == nil {
		cfg.File = config.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.RealClock{}
	}
	if cfg.Factory == nil {
		return nil, errors.New("processor: socket factory is required")
	}
	if cfg.Joystick == nil {
		cfg.Joystick = joystick.NewRemote(cfg.Clock, 0)
	}

	holder := teamspace.NewHolder(cfg.DefendPlusX, cfg.File.Field.Length)
	in, err := ingest.New(ingest.Config{
		Network:      cfg.File.Network,
		Simulation:   cfg.Simulation,
		RadioChannel: cfg.RadioChannel,
		Factory:      cfg.Factory,
		Clock:        cfg.Clock,
		Transform:    holder,
	})
	if err != nil {
		return nil, err
	}
	txSock, err := cfg.Factory.ListenUDP("udp4", network.AnyAddr(0))
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("%w: radio tx: %v", ingest.ErrBind, err)
	}

	p := &Processor{
		log:     monitoring.Component("processor"),
		ingest:  in,
		txSock:  txSock,
		encoder: radio.NewEncoder(txSock, cfg.File.Network.RadioTxPort, in.RadioChannel()),
		sched:   scheduler.New(cfg.File.Loop.FramePeriod(), cfg.Clock),
		holder:  holder,
		pipeline: pipeline.Pipeline{
			Modeling: cfg.Modeling,
			Referee:  cfg.Referee,
			Config:   cfg.File,
			StateID:  cfg.StateID,
			Gameplay: cfg.Gameplay,
			Motion:   cfg.Motion,
			Trace:    cfg.Trace,
		},
		joystick:        cfg.Joystick,
		referee:         cfg.Referee,
		sink:            cfg.Sink,
		state:           state.New(),
		manualID:        -1,
		blueTeam:        cfg.BlueTeam,
		defendPlusX:     cfg.DefendPlusX,
		externalReferee: cfg.ExternalReferee,
		stats:           newCycleStats(statsWindow),
	}
	p.syncToVision.Store(cfg.SyncToVision)
	p.log.Info().
		Bool("simulation", cfg.Simulation).
		Int("radio_channel", in.RadioChannel()).
		Dur("period", p.sched.Period()).
		Msg("processor ready")
	return p, nil
}

// Start runs the loop on a new goroutine.
func (p *Processor) Start() {
	p.runMu.Lock()
	defer p.runMu.Unlock()
	if p.running.Load() {
		return
	}
	done := make(chan struct{})
	p.done = done
	p.running.Store(true)
	go func() {
		defer close(done)
		for p.running.Load() {
			p.RunCycle()
		}
	}()
}

// Stop asks the loop to exit after the current cycle and waits for it.
func (p *Processor) Stop() {
	p.runMu.Lock()
	defer p.runMu.Unlock()
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	<-p.done
}

// Run runs the loop until ctx is done.
func (p *Processor) Run(ctx context.Context) error {
	p.Start()
	<-ctx.Done()
	p.Stop()
	return nil
}

// Close stops the loop and releases the sockets.
func (p *Processor) Close() error {
	p.Stop()
	return errors.Join(p.ingest.Close(), p.txSock.Close())
}

// RunCycle executes exactly one cycle on the calling goroutine. It must not
// be called while the loop is running.
func (p *Processor) RunCycle() {
	start := p.sched.Now()
	syncVision := p.syncToVision.Load()

	// Ingestion writes only vision frames and radio feedback, which the
	// supervisory operations never touch, so it runs without the loop lock.
	p.frame.Reset(start.UnixMicro())
	var wait time.Duration
	if syncVision {
		wait = p.sched.Remaining(start)
	}
	s := p.state
	p.ingest.ReadVision(s, &p.frame, wait)
	p.ingest.ReadReferee(&p.frame)
	p.ingest.ReadRadio(s, &p.frame)

	p.loopMu.Lock()
	s.Timestamp = start
	s.BlueTeam = p.blueTeam
	s.ManualID = p.manualID
	s.ClearDebugLayers()
	s.ClearCommands()
	p.cmds.Reset()

	p.joystick.Update()
	p.pipeline.Run(s, &p.cmds, p.ingest.RefereeFrames(), p.externalReferee)
	tx := p.encoder.Build(s, &p.cmds, p.manualID, p.joystick)
	_ = p.encoder.Send(tx)

	p.fillLog(s, tx)
	if p.sink != nil {
		p.sink.AddFrame(&p.frame)
	}
	p.frame.RadioTx = nil

	res := p.sched.Measure(start)
	p.recordStatus(start, res)
	p.loopMu.Unlock()

	p.sched.Wait(&res, syncVision)
}

func (p *Processor) fillLog(s *state.SystemState, tx *packet.RadioTx) {
	f := &p.frame
	f.RadioTx = tx
	f.ManualID = int32(p.manualID)
	f.BlueTeam = p.blueTeam
	f.DefendPlusX = p.defendPlusX
	f.DebugLayers = append(f.DebugLayers[:0], s.DebugLayers()...)
	f.Self = appendTeam(f.Self, &s.Self)
	f.Opp = appendTeam(f.Opp, &s.Opp)
	if s.Ball.Valid {
		f.SetBall(packet.LogBall{
			X: float32(s.Ball.Pos.X), Y: float32(s.Ball.Pos.Y),
			VX: float32(s.Ball.Vel.X), VY: float32(s.Ball.Vel.Y),
		})
	}
}

func appendTeam(dst []packet.LogRobot, team *state.Team) []packet.LogRobot {
	team.Each(func(_ int, r *state.Robot) {
		dst = append(dst, packet.LogRobot{
			Shell:   int32(r.Shell),
			X:       float32(r.Pos.X),
			Y:       float32(r.Pos.Y),
			Angle:   float32(r.Angle),
			HasBall: r.HasBall,
		})
	})
	return dst
}
