package state

import "github.com/Pi3th0n/robocup-software/internal/packet"

// CommandBuffer owns the outbound RadioTx for one cycle. Its backing array
// never grows, so pointers handed to roster slots stay valid for the whole
// cycle and are invalidated together by Reset.
type CommandBuffer struct {
	buf [RobotsPerTeam]packet.RadioRobot
	tx  packet.RadioTx
}

// Reset empties the packet for a new cycle.
func (c *CommandBuffer) Reset() {
	c.tx.Robots = c.buf[:0]
	c.tx.ReverseBoardID = 0
}

// Allocate appends a zeroed command for boardID. It returns nil when the
// packet already holds RobotsPerTeam commands.
func (c *CommandBuffer) Allocate(boardID int) *packet.RadioRobot {
	if c.tx.Robots == nil {
		c.Reset()
	}
	n := len(c.tx.Robots)
	if n >= RobotsPerTeam {
		return nil
	}
	c.tx.Robots = c.tx.Robots[:n+1]
	r := &c.tx.Robots[n]
	*r = packet.RadioRobot{BoardID: int32(boardID)}
	return r
}

// Find returns the command already allocated for boardID, or nil.
func (c *CommandBuffer) Find(boardID int) *packet.RadioRobot {
	for i := range c.tx.Robots {
		if c.tx.Robots[i].BoardID == int32(boardID) {
			return &c.tx.Robots[i]
		}
	}
	return nil
}

// Len returns the number of allocated commands.
func (c *CommandBuffer) Len() int {
	return len(c.tx.Robots)
}

// Full reports whether no further command can be allocated.
func (c *CommandBuffer) Full() bool {
	return len(c.tx.Robots) >= RobotsPerTeam
}

// Packet returns the packet being built. The caller must not retain it past
// the end of the cycle.
func (c *CommandBuffer) Packet() *packet.RadioTx {
	if c.tx.Robots == nil {
		c.Reset()
	}
	return &c.tx
}
