package processor

import (
	"github.com/Pi3th0n/robocup-software/internal/referee"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

// SetManualID selects the shell driven by the joystick, -1 for none. Takes
// effect at the start of the next cycle.
func (p *Processor) SetManualID(id int) {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	p.manualID = id
}

// ManualID returns the manually driven shell or -1.
func (p *Processor) ManualID() int {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	return p.manualID
}

// SetBlueTeam sets our team colour.
func (p *Processor) SetBlueTeam(blue bool) {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	p.blueTeam = blue
}

// BlueTeam reports whether we play as blue.
func (p *Processor) BlueTeam() bool {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	return p.blueTeam
}

// SetDefendPlusX selects which goal we defend and republishes the
// coordinate transform.
func (p *Processor) SetDefendPlusX(v bool) {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	p.defendPlusX = v
	p.holder.Set(v)
}

// DefendPlusX reports whether we defend the +X goal.
func (p *Processor) DefendPlusX() bool {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	return p.defendPlusX
}

// SetExternalReferee selects whether referee datagrams drive the game state.
func (p *Processor) SetExternalReferee(v bool) {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	p.externalReferee = v
}

// ExternalReferee reports whether referee datagrams drive the game state.
func (p *Processor) ExternalReferee() bool {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	return p.externalReferee
}

// InternalRefCommand applies an operator referee command. Goal commands
// adjust the score for the team of that colour; scores never go below zero.
// The command is then passed to the referee module.
func (p *Processor) InternalRefCommand(c byte) {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()

	g := &p.state.GameState
	ours := func(blue bool) *int {
		if blue == p.blueTeam {
			return &g.OurScore
		}
		return &g.TheirScore
	}
	switch c {
	case referee.GoalBlue:
		*ours(true)++
	case referee.GoalYellow:
		*ours(false)++
	case referee.SubtractGoalBlue:
		if sc := ours(true); *sc > 0 {
			*sc--
		}
	case referee.SubtractGoalYellow:
		if sc := ours(false); *sc > 0 {
			*sc--
		}
	}
	if p.referee != nil {
		p.referee.Command(c)
	}
}

// GameState returns a copy of the current game state.
func (p *Processor) GameState() state.GameState {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	return p.state.GameState
}

// Autonomous reports whether robots not under manual control may move.
func (p *Processor) Autonomous() bool {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	return p.joystick.Autonomous()
}

// JoystickValid reports whether operator input is live.
func (p *Processor) JoystickValid() bool {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	return p.joystick.Valid()
}

// SetSyncToVision selects vision-synchronized pacing. Read at the start of
// every cycle.
func (p *Processor) SetSyncToVision(v bool) {
	p.syncToVision.Store(v)
}

// SyncToVision reports whether pacing is synchronized to vision.
func (p *Processor) SyncToVision() bool {
	return p.syncToVision.Load()
}

// RadioChannel returns the radio channel in use.
func (p *Processor) RadioChannel() int {
	return p.ingest.RadioChannel()
}

// SetSink replaces the cycle log sink. Nil disables logging.
func (p *Processor) SetSink(s LogSink) {
	p.loopMu.Lock()
	defer p.loopMu.Unlock()
	p.sink = s
}
