// Package ingest owns the perception, referee and radio feedback sockets and
// drains them once per control cycle.
package ingest

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/Pi3th0n/robocup-software/internal/config"
	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/network"
	"github.com/Pi3th0n/robocup-software/internal/packet/pb"
	"github.com/Pi3th0n/robocup-software/internal/teamspace"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

// ErrBind is wrapped by every socket bind failure returned from New.
var ErrBind = errors.New("failed to bind socket")

// RefereeFrameSize is the length of a legacy referee datagram.
const RefereeFrameSize = 6

// defaultMaxCameras applies when the network config leaves max_cameras unset.
const defaultMaxCameras = 16

// maxDatagram bounds a single read. Anything larger is truncated and dropped.
const maxDatagram = 64 * 1024

// Stream names used in logs and metric attributes.
const (
	StreamVision  = "vision"
	StreamReferee = "referee"
	StreamRadio   = "radio"
)

// Config configures the ingest sockets.
type Config struct {
	Network config.Network
	// Simulation binds the simulator's unicast vision port instead of joining
	// the shared vision multicast group.
	Simulation bool
	// RadioChannel selects the feedback port offset. Negative means probe
	// channel 0 then channel 1.
	RadioChannel int
	Factory      network.UDPSocketFactory
	Clock        timeutil.Clock
	Transform    *teamspace.Holder
}

// Ingest drains the input sockets. All methods except Stats must be called
// from the control loop goroutine.
type Ingest struct {
	cfg     Config
	log     zerolog.Logger
	vision  network.UDPSocket
	referee network.UDPSocket
	radio   network.UDPSocket
	channel int

	buf       []byte
	refFrames [][]byte
	wrapper   *pb.SSL_WrapperPacket
	stats     counters

	lastVision  time.Time
	lastReferee time.Time
	lastRadio   time.Time
}

// New binds every socket. A bind failure closes whatever was already bound
// and returns an error wrapping ErrBind.
func New(cfg Config) (*Ingest, error) {
	if cfg.Factory == nil {
		return nil, errors.New("ingest: socket factory is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.RealClock{}
	}
	if cfg.Transform == nil {
		return nil, errors.New("ingest: transform holder is required")
	}
	in := &Ingest{
		cfg:     cfg,
		log:     monitoring.Component("ingest"),
		buf:     make([]byte, maxDatagram),
		wrapper: &pb.SSL_WrapperPacket{},
	}
	if err := in.bind(); err != nil {
		in.Close()
		return nil, err
	}
	return in, nil
}

func (in *Ingest) bind() error {
	n := in.cfg.Network
	var ifi *net.Interface
	if n.Interface != "" {
		var err error
		ifi, err = net.InterfaceByName(n.Interface)
		if err != nil {
			return fmt.Errorf("%w: interface %s: %v", ErrBind, n.Interface, err)
		}
	}

	var err error
	if in.cfg.Simulation {
		in.vision, _, err = in.bindFirst(StreamVision, n.SimVisionPort, n.SimVisionPort+1)
	} else {
		in.vision, err = in.bindGroup(StreamVision, ifi, n.VisionAddress, n.VisionPort)
	}
	if err != nil {
		return err
	}

	in.referee, err = in.bindGroup(StreamReferee, ifi, n.RefereeAddress, n.RefereePort)
	if err != nil {
		return err
	}

	if in.cfg.RadioChannel >= 0 {
		in.radio, err = in.bindUnicast(StreamRadio, n.RadioRxPort+in.cfg.RadioChannel)
		in.channel = in.cfg.RadioChannel
	} else {
		var port int
		in.radio, port, err = in.bindFirst(StreamRadio, n.RadioRxPort, n.RadioRxPort+1)
		in.channel = port - n.RadioRxPort
	}
	return err
}

func (in *Ingest) bindUnicast(stream string, port int) (network.UDPSocket, error) {
	s, err := in.cfg.Factory.ListenUDP("udp4", network.AnyAddr(port))
	if err != nil {
		return nil, fmt.Errorf("%w: %s port %d: %v", ErrBind, stream, port, err)
	}
	in.setReadBuffer(stream, s)
	in.log.Info().Str("stream", stream).Int("port", port).Msg("socket bound")
	return s, nil
}

func (in *Ingest) bindFirst(stream string, ports ...int) (network.UDPSocket, int, error) {
	var errs []error
	for _, port := range ports {
		s, err := in.bindUnicast(stream, port)
		if err == nil {
			return s, port, nil
		}
		errs = append(errs, err)
	}
	return nil, 0, errors.Join(errs...)
}

func (in *Ingest) bindGroup(stream string, ifi *net.Interface, address string, port int) (network.UDPSocket, error) {
	ip := net.ParseIP(address)
	if ip == nil {
		return nil, fmt.Errorf("%w: %s: invalid group address %q", ErrBind, stream, address)
	}
	group := &net.UDPAddr{IP: ip, Port: port}
	s, err := in.cfg.Factory.ListenMulticastUDP("udp4", ifi, group)
	if err != nil {
		return nil, fmt.Errorf("%w: %s group %s: %v", ErrBind, stream, group, err)
	}
	in.setReadBuffer(stream, s)
	in.log.Info().Str("stream", stream).Stringer("group", group).Msg("joined multicast group")
	return s, nil
}

func (in *Ingest) setReadBuffer(stream string, s network.UDPSocket) {
	if in.cfg.Network.RcvBuf <= 0 {
		return
	}
	if err := s.SetReadBuffer(in.cfg.Network.RcvBuf); err != nil {
		in.log.Warn().Err(err).Str("stream", stream).Int("bytes", in.cfg.Network.RcvBuf).
			Msg("failed to set receive buffer size")
	}
}

// RadioChannel returns the radio channel in use, 0 or 1 when probed.
func (in *Ingest) RadioChannel() int {
	return in.channel
}

// LastReceive returns the local receive time of the latest accepted datagram
// on each stream. Zero means nothing has arrived yet.
func (in *Ingest) LastReceive() (vision, referee, radio time.Time) {
	return in.lastVision, in.lastReferee, in.lastRadio
}

// Close closes every bound socket.
func (in *Ingest) Close() error {
	var errs []error
	for _, s := range []network.UDPSocket{in.vision, in.referee, in.radio} {
		if s != nil {
			if err := s.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// next reads one pending datagram from s. ok is false once the queue is empty
// or the read failed.
func (in *Ingest) next(stream string, s network.UDPSocket) ([]byte, bool) {
	n, ok, err := s.ReadPending(in.buf)
	if err != nil {
		in.log.Error().Err(err).Str("stream", stream).Msg("socket read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	in.stats.datagram(stream)
	if n > len(in.buf) {
		in.drop(stream, n, errTruncated)
		return nil, true
	}
	return in.buf[:n], true
}

var errTruncated = errors.New("datagram truncated")

func (in *Ingest) drop(stream string, n int, err error) {
	in.stats.dropped(stream)
	in.log.Warn().Err(err).Str("stream", stream).Int("bytes", n).Msg("dropped datagram")
}
