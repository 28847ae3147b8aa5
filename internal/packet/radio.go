package packet

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/Pi3th0n/robocup-software/internal/packet/pb"
)

// NumMotors is the number of drive motors on every robot.
const NumMotors = 4

// RadioRobot is the command for one robot in a RadioTx packet.
type RadioRobot struct {
	BoardID int32
	Motors  [NumMotors]int32
	Roller  int32
	Kick    int32
}

// StopMotors forces every motor set-point to zero.
func (r *RadioRobot) StopMotors() {
	r.Motors = [NumMotors]int32{}
}

func (r *RadioRobot) toPB() *pb.RadioRobot {
	return &pb.RadioRobot{
		BoardId: proto.Int32(r.BoardID),
		Motors:  append([]int32(nil), r.Motors[:]...),
		Roller:  proto.Int32(r.Roller),
		Kick:    proto.Int32(r.Kick),
	}
}

func (r *RadioRobot) fromPB(m *pb.RadioRobot) error {
	if len(m.GetMotors()) > NumMotors {
		return fmt.Errorf("%w: %d motor values", ErrMalformed, len(m.GetMotors()))
	}
	*r = RadioRobot{BoardID: m.GetBoardId(), Roller: m.GetRoller(), Kick: m.GetKick()}
	copy(r.Motors[:], m.GetMotors())
	return nil
}

// Unmarshal decodes a single robot command.
func (r *RadioRobot) Unmarshal(b []byte) error {
	var m pb.RadioRobot
	if err := Decode(b, &m); err != nil {
		return err
	}
	return r.fromPB(&m)
}

// RadioTx is the outbound packet handed to the radio bridge.
type RadioTx struct {
	Robots         []RadioRobot
	ReverseBoardID int32
}

func (t *RadioTx) toPB() *pb.RadioTx {
	m := &pb.RadioTx{
		Robots:         make([]*pb.RadioRobot, len(t.Robots)),
		ReverseBoardId: proto.Int32(t.ReverseBoardID),
	}
	for i := range t.Robots {
		m.Robots[i] = t.Robots[i].toPB()
	}
	return m
}

func (t *RadioTx) fromPB(m *pb.RadioTx) error {
	t.Robots = t.Robots[:0]
	t.ReverseBoardID = m.GetReverseBoardId()
	for i, rm := range m.GetRobots() {
		var r RadioRobot
		if err := r.fromPB(rm); err != nil {
			return fmt.Errorf("robot %d: %w", i, err)
		}
		t.Robots = append(t.Robots, r)
	}
	return nil
}

// Marshal encodes the packet.
func (t *RadioTx) Marshal() ([]byte, error) {
	return t.AppendTo(nil)
}

// AppendTo appends the encoded packet to b.
func (t *RadioTx) AppendTo(b []byte) ([]byte, error) {
	return encodeOpts.MarshalAppend(b, t.toPB())
}

// Unmarshal decodes b into t, replacing its contents.
func (t *RadioTx) Unmarshal(b []byte) error {
	var m pb.RadioTx
	if err := Decode(b, &m); err != nil {
		return err
	}
	return t.fromPB(&m)
}

// RadioRx is a feedback packet from one robot, relayed by the radio bridge.
type RadioRx struct {
	BoardID    int32
	RSSI       float32
	Battery    float32
	Ball       bool
	Charged    bool
	MotorFault uint32
}

func (r *RadioRx) toPB() *pb.RadioRx {
	m := &pb.RadioRx{
		BoardId: proto.Int32(r.BoardID),
		Rssi:    proto.Float32(r.RSSI),
		Battery: proto.Float32(r.Battery),
		Ball:    proto.Bool(r.Ball),
		Charged: proto.Bool(r.Charged),
	}
	if r.MotorFault != 0 {
		m.MotorFault = proto.Uint32(r.MotorFault)
	}
	return m
}

func (r *RadioRx) fromPB(m *pb.RadioRx) {
	*r = RadioRx{
		BoardID:    m.GetBoardId(),
		RSSI:       m.GetRssi(),
		Battery:    m.GetBattery(),
		Ball:       m.GetBall(),
		Charged:    m.GetCharged(),
		MotorFault: m.GetMotorFault(),
	}
}

// Marshal encodes the packet.
func (r *RadioRx) Marshal() ([]byte, error) {
	return encodeOpts.Marshal(r.toPB())
}

// Unmarshal decodes b into r, replacing its contents.
func (r *RadioRx) Unmarshal(b []byte) error {
	var m pb.RadioRx
	if err := Decode(b, &m); err != nil {
		return err
	}
	r.fromPB(&m)
	return nil
}
