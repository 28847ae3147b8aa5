// Package pipeline runs the per-cycle modules in their fixed order.
package pipeline

import (
	"github.com/Pi3th0n/robocup-software/internal/config"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

// Module is one pipeline stage. Run is called once per cycle with the loop
// lock held.
type Module interface {
	Run(s *state.SystemState)
}

// RefereeModule tracks the game state from referee input.
type RefereeModule interface {
	Module
	// Packet handles one 6-byte frame from the external referee.
	Packet(frame []byte)
	// Command injects a referee command issued by the operator.
	Command(c byte)
}

// RobotConfigSource looks up the hardware configuration of a shell.
type RobotConfigSource interface {
	Robot(shell int) (*config.Robot, bool)
}

// Debug layer names recorded when Trace is set.
const (
	LayerModeling = "pipeline/modeling"
	LayerCommands = "pipeline/commands"
	LayerReferee  = "pipeline/referee"
	LayerConfig   = "pipeline/config"
	LayerStateID  = "pipeline/state_id"
	LayerGameplay = "pipeline/gameplay"
	LayerMotion   = "pipeline/motion"
)

// Pipeline holds the optional stages. A nil stage is skipped.
type Pipeline struct {
	Modeling Module
	Referee  RefereeModule
	Config   RobotConfigSource
	StateID  Module
	Gameplay Module
	Motion   Module

	// Trace records every executed stage as a debug layer on the state.
	Trace bool
}

// Run executes one cycle of the pipeline:
//
//  1. modeling
//  2. command allocation for every valid robot of ours
//  3. referee, fed the buffered frames when external is set
//  4. per-robot hardware configuration refresh
//  5. state identification
//  6. gameplay
//  7. motion
//
// cmds must have been reset for this cycle.
func (p *Pipeline) Run(s *state.SystemState, cmds *state.CommandBuffer, refFrames [][]byte, external bool) {
	if p.Modeling != nil {
		p.trace(s, LayerModeling)
		p.Modeling.Run(s)
	}

	p.trace(s, LayerCommands)
	s.Self.Each(func(_ int, r *state.Robot) {
		r.Command = cmds.Allocate(r.Shell)
	})

	if p.Referee != nil {
		p.trace(s, LayerReferee)
		if external {
			for _, f := range refFrames {
				p.Referee.Packet(f)
			}
		}
		p.Referee.Run(s)
	}

	if p.Config != nil {
		p.trace(s, LayerConfig)
		s.Self.Each(func(_ int, r *state.Robot) {
			if c, ok := p.Config.Robot(r.Shell); ok {
				r.Config = *c
				r.Rev = c.Rev
			}
		})
	}

	for _, st := range []struct {
		m     Module
		layer string
	}{
		{p.StateID, LayerStateID},
		{p.Gameplay, LayerGameplay},
		{p.Motion, LayerMotion},
	} {
		if st.m != nil {
			p.trace(s, st.layer)
			st.m.Run(s)
		}
	}
}

func (p *Pipeline) trace(s *state.SystemState, layer string) {
	if p.Trace {
		s.AddDebugLayer(layer)
	}
}
