// Package referee decodes the legacy 6-byte referee box protocol and tracks
// the game period and score from it.
package referee

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// FrameSize is the length of a referee datagram.
const FrameSize = 6

// ErrFrameSize is returned for datagrams that are not FrameSize bytes long.
var ErrFrameSize = errors.New("referee frame has wrong size")

// Legacy referee box commands. Lower case is blue, upper case is yellow.
const (
	Halt       byte = 'H'
	Stop       byte = 'S'
	Ready      byte = ' '
	Start      byte = 's'
	FirstHalf  byte = '1'
	HalfTime   byte = 'h'
	SecondHalf byte = '2'
	Overtime1  byte = 'o'
	Overtime2  byte = 'O'
	Shootout   byte = 'a'
	Cancel     byte = 'c'

	TimeoutBlue   byte = 't'
	TimeoutYellow byte = 'T'
	TimeoutEnd    byte = 'z'

	KickoffBlue    byte = 'k'
	KickoffYellow  byte = 'K'
	PenaltyBlue    byte = 'p'
	PenaltyYellow  byte = 'P'
	DirectBlue     byte = 'f'
	DirectYellow   byte = 'F'
	IndirectBlue   byte = 'i'
	IndirectYellow byte = 'I'

	GoalBlue           byte = 'g'
	GoalYellow         byte = 'G'
	SubtractGoalBlue   byte = 'd'
	SubtractGoalYellow byte = 'D'
)

// Frame is one decoded referee datagram.
type Frame struct {
	Command     byte
	Counter     uint8
	BlueGoals   uint8
	YellowGoals uint8
	// TimeRemaining is in seconds.
	TimeRemaining uint16
}

// Decode parses a 6-byte referee datagram.
func Decode(b []byte) (Frame, error) {
	if len(b) != FrameSize {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrFrameSize, len(b))
	}
	return Frame{
		Command:       b[0],
		Counter:       b[1],
		BlueGoals:     b[2],
		YellowGoals:   b[3],
		TimeRemaining: binary.BigEndian.Uint16(b[4:6]),
	}, nil
}

// Encode writes f in wire format.
func (f Frame) Encode() []byte {
	b := make([]byte, FrameSize)
	b[0] = f.Command
	b[1] = f.Counter
	b[2] = f.BlueGoals
	b[3] = f.YellowGoals
	binary.BigEndian.PutUint16(b[4:6], f.TimeRemaining)
	return b
}

// isBlue reports whether a team-specific command belongs to blue.
func isBlue(c byte) bool {
	return c >= 'a' && c <= 'z'
}
