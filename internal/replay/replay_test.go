package replay

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pi3th0n/robocup-software/internal/network"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

type capturedPacket struct {
	at      time.Duration
	dstPort uint16
	payload []byte
	tcp     bool
}

var epoch = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

func writeCapture(t *testing.T, pkts []capturedPacket) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := pcapgo.NewWriter(&buf)
	require.NoError(t, w.WriteFileHeader(65536, layers.LinkTypeEthernet))

	for _, p := range pkts {
		eth := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0, 1, 2, 3, 4, 5},
			DstMAC:       net.HardwareAddr{1, 0, 0x5e, 0, 0, 1},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ip := &layers.IPv4{
			Version: 4,
			TTL:     64,
			SrcIP:   net.IPv4(192, 168, 1, 10),
			DstIP:   net.IPv4(224, 5, 23, 2),
		}
		var transport gopacket.SerializableLayer
		if p.tcp {
			ip.Protocol = layers.IPProtocolTCP
			tcp := &layers.TCP{SrcPort: 40000, DstPort: layers.TCPPort(p.dstPort)}
			require.NoError(t, tcp.SetNetworkLayerForChecksum(ip))
			transport = tcp
		} else {
			ip.Protocol = layers.IPProtocolUDP
			udp := &layers.UDP{SrcPort: 40000, DstPort: layers.UDPPort(p.dstPort)}
			require.NoError(t, udp.SetNetworkLayerForChecksum(ip))
			transport = udp
		}
		sb := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
		require.NoError(t, gopacket.SerializeLayers(sb, opts, eth, ip, transport, gopacket.Payload(p.payload)))
		data := sb.Bytes()
		require.NoError(t, w.WritePacket(gopacket.CaptureInfo{
			Timestamp:     epoch.Add(p.at),
			CaptureLength: len(data),
			Length:        len(data),
		}, data))
	}
	return buf.Bytes()
}

func TestPlay_TimingAndFilter(t *testing.T) {
	capture := writeCapture(t, []capturedPacket{
		{at: 0, dstPort: 10002, payload: []byte("one")},
		{at: 16 * time.Millisecond, dstPort: 10003, payload: []byte("referee")},
		{at: 20 * time.Millisecond, dstPort: 10002, payload: []byte("two")},
		{at: 40 * time.Millisecond, dstPort: 10002, payload: []byte("tcp"), tcp: true},
		{at: 50 * time.Millisecond, dstPort: 10002, payload: []byte("three")},
	})

	tests := []struct {
		name   string
		speed  float64
		sleeps []time.Duration
	}{
		{"real time", 1, []time.Duration{16 * time.Millisecond, 4 * time.Millisecond, 20 * time.Millisecond, 10 * time.Millisecond}},
		{"double", 2, []time.Duration{8 * time.Millisecond, 2 * time.Millisecond, 10 * time.Millisecond, 5 * time.Millisecond}},
		{"default speed", 0, []time.Duration{16 * time.Millisecond, 4 * time.Millisecond, 20 * time.Millisecond, 10 * time.Millisecond}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sock := network.NewMockUDPSocket()
			clock := timeutil.NewMockClock(epoch)
			dest := network.LoopbackAddr(10020)
			p := NewPlayer(sock, dest, Config{Port: 10002, Speed: tt.speed, Clock: clock})

			st, err := p.Play(context.Background(), bytes.NewReader(capture))
			require.NoError(t, err)
			assert.Equal(t, Stats{Packets: 5, Sent: 3, Skipped: 2, Duration: 50 * time.Millisecond}, st)
			assert.Equal(t, tt.sleeps, clock.Sleeps())

			writes := sock.Writes()
			require.Len(t, writes, 3)
			assert.Equal(t, []byte("one"), writes[0].Data)
			assert.Equal(t, []byte("two"), writes[1].Data)
			assert.Equal(t, []byte("three"), writes[2].Data)
			assert.Equal(t, dest, writes[0].Addr)
		})
	}
}

func TestPlay_NoPortFilter(t *testing.T) {
	capture := writeCapture(t, []capturedPacket{
		{dstPort: 10002, payload: []byte("vision")},
		{dstPort: 10003, payload: []byte("referee")},
	})
	sock := network.NewMockUDPSocket()
	p := NewPlayer(sock, network.LoopbackAddr(1), Config{Clock: timeutil.NewMockClock(epoch)})

	st, err := p.Play(context.Background(), bytes.NewReader(capture))
	require.NoError(t, err)
	assert.Equal(t, 2, st.Sent)
}

func TestPlay_SendFailureCounted(t *testing.T) {
	capture := writeCapture(t, []capturedPacket{{dstPort: 10002, payload: []byte("x")}})
	sock := network.NewMockUDPSocket()
	sock.WriteError = errors.New("network unreachable")
	p := NewPlayer(sock, network.LoopbackAddr(1), Config{Clock: timeutil.NewMockClock(epoch)})

	st, err := p.Play(context.Background(), bytes.NewReader(capture))
	require.NoError(t, err)
	assert.Equal(t, 1, st.Failed)
	assert.Equal(t, 0, st.Sent)
}

func TestPlay_Errors(t *testing.T) {
	p := NewPlayer(network.NewMockUDPSocket(), network.LoopbackAddr(1), Config{Clock: timeutil.NewMockClock(epoch)})

	_, err := p.Play(context.Background(), bytes.NewReader([]byte("not a capture")))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	capture := writeCapture(t, []capturedPacket{{dstPort: 10002, payload: []byte("x")}})
	_, err = p.Play(ctx, bytes.NewReader(capture))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = p.PlayFile(context.Background(), filepath.Join(t.TempDir(), "missing.pcap"))
	assert.Error(t, err)
}

func TestPlay_CancelDuringGap(t *testing.T) {
	sock := network.NewMockUDPSocket()
	p := NewPlayer(sock, network.LoopbackAddr(1), Config{Clock: timeutil.RealClock{}})
	capture := writeCapture(t, []capturedPacket{
		{at: 0, dstPort: 10002, payload: []byte("a")},
		{at: 3 * time.Second, dstPort: 10002, payload: []byte("b")},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	st, err := p.Play(ctx, bytes.NewReader(capture))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "cancellation must interrupt the inter-packet wait")
	assert.Equal(t, 1, st.Sent)
	assert.Len(t, sock.Writes(), 1)
}

func TestPlayFile_Loop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vision.pcap")
	require.NoError(t, os.WriteFile(path, writeCapture(t, []capturedPacket{
		{dstPort: 10002, payload: []byte("a")},
	}), 0o644))

	sock := network.NewMockUDPSocket()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := timeutil.NewMockClock(epoch)
	p := NewPlayer(sock, network.LoopbackAddr(1), Config{Loop: true, Clock: clock})

	// Cancel once three passes have been written.
	go func() {
		for len(sock.Writes()) < 3 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()
	st, err := p.PlayFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, st.Sent, 3)
}
