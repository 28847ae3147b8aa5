package packet

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/Pi3th0n/robocup-software/internal/packet/pb"
)

// LogRobot is a filtered robot pose recorded in the cycle log.
type LogRobot struct {
	Shell   int32
	X, Y    float32
	Angle   float32
	HasBall bool
}

// LogBall is the filtered ball state recorded in the cycle log.
type LogBall struct {
	X, Y   float32
	VX, VY float32
}

// LogFrame is a complete record of one control cycle. A single LogFrame is
// reused every cycle; Reset keeps the capacity of its slices.
type LogFrame struct {
	// StartTime is the cycle start in microseconds since the Unix epoch.
	StartTime   int64
	RawVision   [][]byte
	RawReferee  [][]byte
	RadioRx     []RadioRx
	RadioTx     *RadioTx
	DebugLayers []string
	ManualID    int32
	BlueTeam    bool
	DefendPlusX bool
	Self        []LogRobot
	Opp         []LogRobot
	Ball        *LogBall

	ball LogBall
}

// Reset clears the frame for a new cycle starting at startMicros.
func (f *LogFrame) Reset(startMicros int64) {
	f.StartTime = startMicros
	f.RawVision = f.RawVision[:0]
	f.RawReferee = f.RawReferee[:0]
	f.RadioRx = f.RadioRx[:0]
	f.RadioTx = nil
	f.DebugLayers = f.DebugLayers[:0]
	f.ManualID = -1
	f.BlueTeam = false
	f.DefendPlusX = false
	f.Self = f.Self[:0]
	f.Opp = f.Opp[:0]
	f.Ball = nil
}

// AddRawVision records a copy of a vision datagram.
func (f *LogFrame) AddRawVision(data []byte) {
	f.RawVision = appendRaw(f.RawVision, data)
}

// AddRawReferee records a copy of a referee datagram.
func (f *LogFrame) AddRawReferee(data []byte) {
	f.RawReferee = appendRaw(f.RawReferee, data)
}

// SetBall records the ball state without allocating.
func (f *LogFrame) SetBall(b LogBall) {
	f.ball = b
	f.Ball = &f.ball
}

// Marshal encodes the frame.
func (f *LogFrame) Marshal() ([]byte, error) {
	m := &pb.LogFrame{
		StartTime:   proto.Int64(f.StartTime),
		RawVision:   f.RawVision,
		RawReferee:  f.RawReferee,
		RadioRx:     make([]*pb.RadioRx, len(f.RadioRx)),
		DebugLayers: f.DebugLayers,
		ManualId:    proto.Int32(f.ManualID),
		BlueTeam:    proto.Bool(f.BlueTeam),
		DefendPlusX: proto.Bool(f.DefendPlusX),
		Self:        logRobots(f.Self),
		Opp:         logRobots(f.Opp),
	}
	for i := range f.RadioRx {
		m.RadioRx[i] = f.RadioRx[i].toPB()
	}
	if f.RadioTx != nil {
		m.RadioTx = f.RadioTx.toPB()
	}
	if f.Ball != nil {
		m.Ball = &pb.LogBall{
			X:  proto.Float32(f.Ball.X),
			Y:  proto.Float32(f.Ball.Y),
			Vx: proto.Float32(f.Ball.VX),
			Vy: proto.Float32(f.Ball.VY),
		}
	}
	return encodeOpts.Marshal(m)
}

func logRobots(rs []LogRobot) []*pb.LogRobot {
	out := make([]*pb.LogRobot, len(rs))
	for i, r := range rs {
		out[i] = &pb.LogRobot{
			Shell:   proto.Int32(r.Shell),
			X:       proto.Float32(r.X),
			Y:       proto.Float32(r.Y),
			Angle:   proto.Float32(r.Angle),
			HasBall: proto.Bool(r.HasBall),
		}
	}
	return out
}

// Unmarshal decodes b into f, replacing its contents.
func (f *LogFrame) Unmarshal(b []byte) error {
	var m pb.LogFrame
	if err := Decode(b, &m); err != nil {
		return err
	}
	f.Reset(m.GetStartTime())
	for _, raw := range m.GetRawVision() {
		f.AddRawVision(raw)
	}
	for _, raw := range m.GetRawReferee() {
		f.AddRawReferee(raw)
	}
	for _, rm := range m.GetRadioRx() {
		var rx RadioRx
		rx.fromPB(rm)
		f.RadioRx = append(f.RadioRx, rx)
	}
	if m.RadioTx != nil {
		tx := &RadioTx{}
		if err := tx.fromPB(m.RadioTx); err != nil {
			return fmt.Errorf("radio_tx: %w", err)
		}
		f.RadioTx = tx
	}
	f.DebugLayers = append(f.DebugLayers, m.GetDebugLayers()...)
	if m.ManualId != nil {
		f.ManualID = m.GetManualId()
	}
	f.BlueTeam = m.GetBlueTeam()
	f.DefendPlusX = m.GetDefendPlusX()
	f.Self = appendLogRobots(f.Self, m.GetSelf())
	f.Opp = appendLogRobots(f.Opp, m.GetOpp())
	if bm := m.GetBall(); bm != nil {
		f.SetBall(LogBall{X: bm.GetX(), Y: bm.GetY(), VX: bm.GetVx(), VY: bm.GetVy()})
	}
	return nil
}

func appendLogRobots(dst []LogRobot, ms []*pb.LogRobot) []LogRobot {
	for _, m := range ms {
		dst = append(dst, LogRobot{
			Shell:   m.GetShell(),
			X:       m.GetX(),
			Y:       m.GetY(),
			Angle:   m.GetAngle(),
			HasBall: m.GetHasBall(),
		})
	}
	return dst
}
