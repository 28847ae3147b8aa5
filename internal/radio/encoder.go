// Package radio builds the per-cycle RadioTx packet, applies the operator and
// safety overrides, and sends it to the radio bridge.
package radio

import (
	"net"

	"github.com/rs/zerolog"

	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/network"
	"github.com/Pi3th0n/robocup-software/internal/packet"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

// Joystick is the operator's manual control.
type Joystick interface {
	// Autonomous reports whether robots not under manual control may move.
	Autonomous() bool
	// Valid reports whether the joystick is connected.
	Valid() bool
	// Drive writes the manual command into cmd.
	Drive(cmd *packet.RadioRobot)
}

// Encoder builds and sends RadioTx packets. It is used only from the control
// loop goroutine.
type Encoder struct {
	sock    network.UDPSocket
	dest    *net.UDPAddr
	log     zerolog.Logger
	reverse int
	out     []byte
}

// NewEncoder sends on sock to the radio bridge at 127.0.0.1:txPort+channel.
func NewEncoder(sock network.UDPSocket, txPort, channel int) *Encoder {
	return &Encoder{
		sock: sock,
		dest: network.LoopbackAddr(txPort + channel),
		log:  monitoring.Component("radio"),
	}
}

// Destination returns the address packets are sent to.
func (e *Encoder) Destination() *net.UDPAddr {
	return e.dest
}

// Build finalizes this cycle's packet in cmds:
//   - the reverse-channel board id walks the roster one slot per cycle
//   - when autonomous and halted, every motor is zeroed
//   - the robot whose shell is manualID is driven by the joystick; others are
//     stopped when not autonomous
//   - if manualID is not in the packet and there is room, a command for it is
//     appended and driven
func (e *Encoder) Build(s *state.SystemState, cmds *state.CommandBuffer, manualID int, joy Joystick) *packet.RadioTx {
	tx := cmds.Packet()
	tx.ReverseBoardID = int32(s.Self[e.reverse].Shell)
	e.reverse = (e.reverse + 1) % state.RobotsPerTeam

	autonomous := joy.Autonomous()
	if autonomous && s.GameState.Halted() {
		for i := range tx.Robots {
			tx.Robots[i].StopMotors()
		}
	}

	manualDone := false
	s.Self.Each(func(_ int, r *state.Robot) {
		if r.Command == nil {
			return
		}
		if manualID >= 0 && r.Shell == manualID {
			joy.Drive(r.Command)
			manualDone = true
		} else if !autonomous {
			r.Command.StopMotors()
		}
	})

	if manualID >= 0 && !manualDone {
		// The manual robot is not on the field but can still be driven, e.g.
		// back onto it. Shell id is the uniqueness key.
		cmd := cmds.Find(manualID)
		if cmd == nil {
			cmd = cmds.Allocate(manualID)
		}
		if cmd != nil {
			joy.Drive(cmd)
		}
	}
	return tx
}

// Send serializes tx and writes it as one datagram. Failures are logged and
// counted; they never stop the loop.
func (e *Encoder) Send(tx *packet.RadioTx) error {
	out, err := tx.AppendTo(e.out[:0])
	if err != nil {
		monitoring.CountSendFailure()
		e.log.Error().Err(err).Msg("failed to encode radio packet")
		return err
	}
	e.out = out
	if _, err := e.sock.WriteToUDP(e.out, e.dest); err != nil {
		monitoring.CountSendFailure()
		e.log.Error().Err(err).Stringer("dest", e.dest).Msg("failed to send radio packet")
		return err
	}
	return nil
}
