package ingest

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/Pi3th0n/robocup-software/internal/config"
	"github.com/Pi3th0n/robocup-software/internal/geometry"
	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/network"
	"github.com/Pi3th0n/robocup-software/internal/packet"
	"github.com/Pi3th0n/robocup-software/internal/packet/pb"
	"github.com/Pi3th0n/robocup-software/internal/state"
	"github.com/Pi3th0n/robocup-software/internal/teamspace"
	"github.com/Pi3th0n/robocup-software/internal/timeutil"
)

func TestMain(m *testing.M) {
	monitoring.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fixture struct {
	in      *Ingest
	factory *network.MockUDPSocketFactory
	net     config.Network
	holder  *teamspace.Holder
	clock   *timeutil.MockClock
}

func (f *fixture) vision() *network.MockUDPSocket  { return f.factory.Socket(f.net.SimVisionPort) }
func (f *fixture) referee() *network.MockUDPSocket { return f.factory.Socket(f.net.RefereePort) }
func (f *fixture) radio() *network.MockUDPSocket {
	return f.factory.Socket(f.net.RadioRxPort + f.in.RadioChannel())
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	f := &fixture{
		factory: network.NewMockUDPSocketFactory(),
		net:     cfg.Network,
		holder:  teamspace.NewHolder(false, cfg.Field.Length),
		clock:   timeutil.NewMockClock(time.Unix(1000, 0)),
	}
	in, err := New(Config{
		Network:      f.net,
		Simulation:   true,
		RadioChannel: -1,
		Factory:      f.factory,
		Clock:        f.clock,
		Transform:    f.holder,
	})
	require.NoError(t, err)
	t.Cleanup(func() { in.Close() })
	f.in = in
	return f
}

func marshal(m proto.Message) []byte {
	b, err := proto.Marshal(m)
	if err != nil {
		panic(err)
	}
	return b
}

func visionRobot(id uint32, confidence, x, y, orientation float32) *pb.SSL_DetectionRobot {
	return &pb.SSL_DetectionRobot{
		Confidence:  proto.Float32(confidence),
		RobotId:     proto.Uint32(id),
		X:           proto.Float32(x),
		Y:           proto.Float32(y),
		Orientation: proto.Float32(orientation),
		PixelX:      proto.Float32(1),
		PixelY:      proto.Float32(1),
	}
}

func detection(camera uint32, blue ...*pb.SSL_DetectionRobot) []byte {
	return marshal(&pb.SSL_WrapperPacket{Detection: &pb.SSL_DetectionFrame{
		FrameNumber: proto.Uint32(1),
		TCapture:    proto.Float64(12.5),
		TSent:       proto.Float64(12.51),
		CameraId:    proto.Uint32(camera),
		RobotsBlue:  blue,
		Balls: []*pb.SSL_DetectionBall{{
			Confidence: proto.Float32(0.9),
			X:          proto.Float32(0),
			Y:          proto.Float32(0),
			PixelX:     proto.Float32(1),
			PixelY:     proto.Float32(1),
		}},
	}})
}

func radioRx(rx packet.RadioRx) []byte {
	b, err := rx.Marshal()
	if err != nil {
		panic(err)
	}
	return b
}

func TestNew_SimulationBindsFirstFreePort(t *testing.T) {
	cfg := config.Default()
	factory := network.NewMockUDPSocketFactory()
	factory.Refuse[cfg.Network.SimVisionPort] = true
	factory.Refuse[cfg.Network.RadioRxPort] = true

	in, err := New(Config{
		Network:      cfg.Network,
		Simulation:   true,
		RadioChannel: -1,
		Factory:      factory,
		Transform:    teamspace.NewHolder(false, cfg.Field.Length),
	})
	require.NoError(t, err)
	defer in.Close()

	assert.Equal(t, 1, in.RadioChannel())
	var ports []int
	for _, c := range factory.ListenCalls {
		ports = append(ports, c.Port)
	}
	assert.Equal(t, []int{10012, 10013, 10001, 10010, 10011}, ports)
}

func TestNew_LiveVisionJoinsGroup(t *testing.T) {
	cfg := config.Default()
	factory := network.NewMockUDPSocketFactory()
	in, err := New(Config{
		Network:      cfg.Network,
		RadioChannel: 1,
		Factory:      factory,
		Transform:    teamspace.NewHolder(false, cfg.Field.Length),
	})
	require.NoError(t, err)
	defer in.Close()

	want := []network.MockListenCall{
		{Network: "udp4", Port: 10002, Multicast: true},
		{Network: "udp4", Port: 10001, Multicast: true},
		{Network: "udp4", Port: 10011},
	}
	assert.Empty(t, cmp.Diff(want, factory.ListenCalls))
	assert.Equal(t, 1, in.RadioChannel())
	assert.Equal(t, cfg.Network.RcvBuf, factory.Socket(10002).ReadBufferSize)
}

func TestNew_BindFailure(t *testing.T) {
	tests := []struct {
		name   string
		refuse []int
		radio  int
	}{
		{name: "both sim ports", refuse: []int{10012, 10013}, radio: -1},
		{name: "referee", refuse: []int{10001}, radio: -1},
		{name: "both radio ports", refuse: []int{10010, 10011}, radio: -1},
		{name: "explicit radio channel", refuse: []int{10010}, radio: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			factory := network.NewMockUDPSocketFactory()
			for _, p := range tt.refuse {
				factory.Refuse[p] = true
			}
			_, err := New(Config{
				Network:      cfg.Network,
				Simulation:   true,
				RadioChannel: tt.radio,
				Factory:      factory,
				Transform:    teamspace.NewHolder(false, cfg.Field.Length),
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBind), "got %v", err)
			for port, s := range factory.Sockets {
				assert.True(t, s.Closed, "socket on %d left open", port)
			}
		})
	}
}

func TestReadVision_AppliesTeamSpace(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	var log packet.LogFrame
	log.Reset(0)

	raw := detection(1, visionRobot(4, 1, 1000, 0, 0))
	f.vision().Push(raw)

	n := f.in.ReadVision(s, &log, 0)
	require.Equal(t, 1, n)
	require.Len(t, s.RawVision, 2)

	frame := s.RawVision[1]
	assert.Equal(t, 1, frame.Camera)
	assert.Equal(t, int64(12_500_000), frame.Timestamp)
	assert.Equal(t, f.clock.Now(), frame.Received)
	require.Len(t, frame.Blue, 1)
	assert.Equal(t, 4, frame.Blue[0].Shell)
	assert.True(t, geometry.Near(frame.Blue[0].Pos, geometry.Point{X: 0, Y: 1 + 6.05/2}, 1e-6), "%v", frame.Blue[0].Pos)
	assert.InDelta(t, 90, frame.Blue[0].Angle, 1e-6)
	require.Len(t, frame.Balls, 1)
	assert.True(t, geometry.Near(frame.Balls[0].Pos, geometry.Point{X: 0, Y: 6.05 / 2}, 1e-6))

	assert.Equal(t, [][]byte{raw}, log.RawVision)
	vision, _, _ := f.in.LastReceive()
	assert.False(t, vision.IsZero())
}

func TestReadVision_SkipsZeroConfidence(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	var log packet.LogFrame

	f.vision().Push(detection(0,
		visionRobot(1, 0, 0, 0, 0),
		visionRobot(2, 0.5, 0, 0, 0),
	))
	f.in.ReadVision(s, &log, 0)

	require.Len(t, s.RawVision[0].Blue, 1)
	assert.Equal(t, 2, s.RawVision[0].Blue[0].Shell)
}

func TestReadVision_MalformedLeavesFrameUntouched(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	var log packet.LogFrame

	f.vision().Push(detection(0, visionRobot(3, 1, 500, 0, 0)))
	f.in.ReadVision(s, &log, 0)
	before := s.RawVision[0]
	before.Blue = append([]state.VisionRobot(nil), before.Blue...)
	before.Balls = append([]state.VisionBall(nil), before.Balls...)
	dropped := f.in.Stats().VisionDropped

	// Declares a 5-byte detection but carries one byte.
	f.vision().Push([]byte{0x0a, 0x05, 0x01})
	n := f.in.ReadVision(s, &log, 0)

	assert.Zero(t, n)
	assert.Equal(t, dropped+1, f.in.Stats().VisionDropped)
	assert.Empty(t, cmp.Diff(before, s.RawVision[0]))
	assert.Len(t, log.RawVision, 2, "malformed datagrams are still logged raw")
}

func TestReadVision_IgnoresGeometryOnly(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	var log packet.LogFrame

	f.vision().Push(marshal(&pb.SSL_WrapperPacket{Geometry: []byte{0x01}}))

	assert.Zero(t, f.in.ReadVision(s, &log, 0))
	assert.Empty(t, s.RawVision)
	assert.Zero(t, f.in.Stats().VisionDropped)
}

func TestReadVision_RejectsCameraOutOfRange(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	var log packet.LogFrame

	f.vision().Push(detection(3_000_000, visionRobot(1, 1, 0, 0, 0)))
	f.vision().Push(detection(uint32(config.Default().Network.MaxCameras)))
	f.vision().Push(detection(2))

	assert.Equal(t, 1, f.in.ReadVision(s, &log, 0))
	assert.Len(t, s.RawVision, 3)
	assert.Equal(t, uint64(2), f.in.Stats().VisionDropped)
	assert.Len(t, log.RawVision, 3, "rejected datagrams are still logged raw")
}

func TestReadVision_WaitsThenDrains(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	var log packet.LogFrame

	sock := f.vision()
	sock.OnWait = func(m *network.MockUDPSocket) {
		m.Push(detection(0))
		m.Push(detection(2))
	}
	n := f.in.ReadVision(s, &log, 5*time.Millisecond)

	assert.Equal(t, 2, n)
	assert.Equal(t, []time.Duration{5 * time.Millisecond}, sock.Waits)
}

func TestReadVision_TransformSnapshotPerCycle(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	var log packet.LogFrame
	robot := visionRobot(1, 1, 1000, 0, 0)

	f.vision().Push(detection(0, robot))
	f.in.ReadVision(s, &log, 0)
	first := s.RawVision[0].Blue[0].Pos

	f.holder.Set(true)
	f.vision().Push(detection(0, robot))
	f.in.ReadVision(s, &log, 0)
	second := s.RawVision[0].Blue[0].Pos

	assert.True(t, geometry.Near(geometry.Point{X: first.X + second.X, Y: first.Y + second.Y},
		geometry.Point{X: 0, Y: 6.05}, 1e-6))
}

func TestReadVision_TruncatedDatagram(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	var log packet.LogFrame

	f.vision().Push(make([]byte, maxDatagram+1))
	f.in.ReadVision(s, &log, 0)

	assert.Equal(t, uint64(1), f.in.Stats().VisionDropped)
	assert.Empty(t, log.RawVision)
}

func TestReadReferee_SizeCheck(t *testing.T) {
	f := newFixture(t)
	var log packet.LogFrame

	sock := f.referee()
	sock.Push([]byte("H0001"))
	sock.Push([]byte{'s', 1, 0, 0, 0, 10})
	sock.Push([]byte("H000000"))

	n := f.in.ReadReferee(&log)
	assert.Equal(t, 1, n)
	assert.Equal(t, [][]byte{{'s', 1, 0, 0, 0, 10}}, f.in.RefereeFrames())
	assert.Equal(t, [][]byte{{'s', 1, 0, 0, 0, 10}}, log.RawReferee)

	st := f.in.Stats()
	assert.Equal(t, uint64(3), st.RefereeDatagrams)
	assert.Equal(t, uint64(2), st.RefereeDropped)

	// Frames do not carry over to the next cycle.
	assert.Zero(t, f.in.ReadReferee(&log))
	assert.Empty(t, f.in.RefereeFrames())
}

func TestReadRadio_CopiesFeedbackByShell(t *testing.T) {
	f := newFixture(t)
	s := state.New()
	s.Self[2].Shell = 7
	var log packet.LogFrame

	sock := f.radio()
	sock.Push(radioRx(packet.RadioRx{BoardID: 7, Battery: 14.8, Ball: true}))
	sock.Push(radioRx(packet.RadioRx{BoardID: 42, Battery: 1}))
	sock.Push([]byte{0xff})

	n := f.in.ReadRadio(s, &log)
	assert.Equal(t, 2, n)
	assert.Equal(t, int32(7), s.Self[2].Feedback.BoardID)
	assert.InDelta(t, 14.8, s.Self[2].Feedback.Battery, 1e-5)
	assert.True(t, s.Self[2].Feedback.Ball)
	for i := range s.Self {
		if i != 2 {
			assert.Zero(t, s.Self[i].Feedback.BoardID)
		}
	}
	assert.Len(t, log.RadioRx, 2)
	assert.Equal(t, uint64(1), f.in.Stats().RadioDropped)
}

func TestRead_SocketErrorStopsDrain(t *testing.T) {
	f := newFixture(t)
	var log packet.LogFrame
	sock := f.referee()
	sock.Push([]byte{'s', 1, 0, 0, 0, 10})
	sock.ReadError = errors.New("boom")

	assert.Zero(t, f.in.ReadReferee(&log))
	assert.Equal(t, 1, f.in.ReadReferee(&log))
}
