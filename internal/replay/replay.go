// Package replay plays recorded perception traffic from a pcap capture back
// onto a UDP socket, keeping the original inter-packet timing.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/rs/zerolog"

	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/network"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

// Config controls a replay.
type Config struct {
	// Port keeps only UDP datagrams sent to this destination port. Zero keeps
	// every UDP datagram.
	Port int
	// Speed scales playback (2 plays twice as fast). Values <= 0 mean 1.
	Speed float64
	// Loop restarts the capture at EOF until ctx is done.
	Loop bool
	// Clock paces playback. Nil uses the real clock.
	Clock timeutil.Clock
}

// Stats summarises one replay.
type Stats struct {
	Packets  int           // packets read from the capture
	Sent     int           // datagrams written
	Skipped  int           // non-UDP or filtered packets
	Failed   int           // send errors
	Duration time.Duration // capture time covered
}

// Player writes the UDP payloads of a capture to one destination, pausing
// between packets for the gap recorded in the capture scaled by Config.Speed.
// A Player is not safe for concurrent use.
type Player struct {
	sock network.UDPSocket
	dest *net.UDPAddr
	cfg  Config
	log  zerolog.Logger
}

// NewPlayer returns a Player that writes payloads to dest through sock.
func NewPlayer(sock network.UDPSocket, dest *net.UDPAddr, cfg Config) *Player {
	if cfg.Speed <= 0 {
		cfg.Speed = 1
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.RealClock{}
	}
	return &Player{sock: sock, dest: dest, cfg: cfg, log: monitoring.Component("replay")}
}

// PlayFile replays the capture at path.
func (p *Player) PlayFile(ctx context.Context, path string) (Stats, error) {
	var total Stats
	for {
		f, err := os.Open(path)
		if err != nil {
			return total, fmt.Errorf("failed to open capture %s: %w", path, err)
		}
		st, err := p.Play(ctx, f)
		f.Close()
		total.add(st)
		if err != nil || !p.cfg.Loop {
			return total, err
		}
		p.log.Info().Int("packets", st.Packets).Msg("capture finished, looping")
	}
}

// Play replays one capture read from r. It returns ctx.Err() if ctx is done
// before the capture ends.
func (p *Player) Play(ctx context.Context, r io.Reader) (Stats, error) {
	var st Stats
	reader, err := pcapgo.NewReader(r)
	if err != nil {
		return st, fmt.Errorf("failed to read capture header: %w", err)
	}
	source := gopacket.NewPacketSource(reader, reader.LinkType())
	source.NoCopy = true

	var first, last time.Time
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		pkt, err := source.NextPacket()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, fmt.Errorf("failed to read packet %d: %w", st.Packets+1, err)
		}
		st.Packets++

		captured := pkt.Metadata().Timestamp
		if first.IsZero() {
			first, last = captured, captured
		}
		if delay := captured.Sub(last); delay > 0 {
			select {
			case <-ctx.Done():
				return st, ctx.Err()
			case <-p.cfg.Clock.After(time.Duration(float64(delay) / p.cfg.Speed)):
			}
		}
		last = captured

		payload, ok := p.payload(pkt)
		if !ok {
			st.Skipped++
			continue
		}
		if _, err := p.sock.WriteToUDP(payload, p.dest); err != nil {
			st.Failed++
			p.log.Warn().Err(err).Int("packet", st.Packets).Msg("replay send failed")
			continue
		}
		st.Sent++
	}
	st.Duration = last.Sub(first)
	p.log.Info().
		Int("packets", st.Packets).
		Int("sent", st.Sent).
		Int("skipped", st.Skipped).
		Dur("duration", st.Duration).
		Msg("replay complete")
	return st, nil
}

func (p *Player) payload(pkt gopacket.Packet) ([]byte, bool) {
	udp, ok := pkt.Layer(layers.LayerTypeUDP).(*layers.UDP)
	if !ok || len(udp.Payload) == 0 {
		return nil, false
	}
	if p.cfg.Port != 0 && int(udp.DstPort) != p.cfg.Port {
		return nil, false
	}
	return udp.Payload, true
}

func (s *Stats) add(o Stats) {
	s.Packets += o.Packets
	s.Sent += o.Sent
	s.Skipped += o.Skipped
	s.Failed += o.Failed
	s.Duration += o.Duration
}
