package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pi3th0n/robocup-software/internal/config"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

type recorder struct {
	name  string
	calls *[]string
	check func(s *state.SystemState)
}

func (r *recorder) Run(s *state.SystemState) {
	*r.calls = append(*r.calls, r.name)
	if r.check != nil {
		r.check(s)
	}
}

type fakeReferee struct {
	recorder
	frames   [][]byte
	commands []byte
}

func (f *fakeReferee) Packet(frame []byte) { f.frames = append(f.frames, frame) }
func (f *fakeReferee) Command(c byte)      { f.commands = append(f.commands, c) }

type fakeConfig map[int]*config.Robot

func (f fakeConfig) Robot(shell int) (*config.Robot, bool) {
	r, ok := f[shell]
	return r, ok
}

func newState(valid ...int) *state.SystemState {
	s := state.New()
	for _, slot := range valid {
		s.Self[slot].Valid = true
	}
	return s
}

func TestRun_FixedOrder(t *testing.T) {
	var calls []string
	ref := &fakeReferee{recorder: recorder{name: "referee", calls: &calls}}
	p := &Pipeline{
		Modeling: &recorder{name: "modeling", calls: &calls},
		Referee:  ref,
		StateID:  &recorder{name: "state_id", calls: &calls},
		Gameplay: &recorder{name: "gameplay", calls: &calls},
		Motion:   &recorder{name: "motion", calls: &calls},
	}
	var cmds state.CommandBuffer
	cmds.Reset()
	p.Run(newState(0), &cmds, nil, true)

	assert.Equal(t, []string{"modeling", "referee", "state_id", "gameplay", "motion"}, calls)
}

func TestRun_NilStagesSkipped(t *testing.T) {
	var calls []string
	p := &Pipeline{Gameplay: &recorder{name: "gameplay", calls: &calls}, Trace: true}
	var cmds state.CommandBuffer
	cmds.Reset()
	s := newState(1, 3)
	p.Run(s, &cmds, [][]byte{{1, 2, 3, 4, 5, 6}}, true)

	assert.Equal(t, []string{"gameplay"}, calls)
	assert.Equal(t, []string{LayerCommands, LayerGameplay}, s.DebugLayers())
	assert.Equal(t, 2, cmds.Len())
}

func TestRun_CommandsAllocatedBeforeReferee(t *testing.T) {
	var calls []string
	s := newState(0, 2)
	s.Self[2].Shell = 9
	ref := &fakeReferee{recorder: recorder{name: "referee", calls: &calls, check: func(s *state.SystemState) {
		require.NotNil(t, s.Self[0].Command)
		require.NotNil(t, s.Self[2].Command)
		assert.Nil(t, s.Self[1].Command)
		assert.Equal(t, int32(9), s.Self[2].Command.BoardID)
		assert.Equal(t, [4]int32{}, s.Self[2].Command.Motors)
	}}}
	p := &Pipeline{Referee: ref}
	var cmds state.CommandBuffer
	cmds.Reset()
	p.Run(s, &cmds, nil, false)

	assert.Equal(t, []string{"referee"}, calls)
	assert.Same(t, cmds.Find(9), s.Self[2].Command)
}

func TestRun_RefereeFramesOnlyWhenExternal(t *testing.T) {
	frames := [][]byte{{'H', 0, 0, 0, 0, 0}, {'s', 1, 0, 0, 0, 0}}
	for _, external := range []bool{false, true} {
		var calls []string
		ref := &fakeReferee{recorder: recorder{name: "referee", calls: &calls}}
		p := &Pipeline{Referee: ref}
		var cmds state.CommandBuffer
		cmds.Reset()
		p.Run(newState(), &cmds, frames, external)

		if external {
			assert.Equal(t, frames, ref.frames)
		} else {
			assert.Empty(t, ref.frames)
		}
		assert.Equal(t, []string{"referee"}, calls, "referee runs either way")
	}
}

func TestRun_ConfigRefresh(t *testing.T) {
	s := newState(0, 1)
	s.Self[1].Shell = 6
	p := &Pipeline{Config: fakeConfig{
		0: {Shell: 0, Rev: config.Rev2008, Kick: 0.5},
		4: {Shell: 4, Rev: config.Rev2010},
	}}
	var cmds state.CommandBuffer
	cmds.Reset()
	p.Run(s, &cmds, nil, false)

	assert.Equal(t, config.Rev2008, s.Self[0].Rev)
	assert.InDelta(t, 0.5, s.Self[0].Config.Kick, 1e-9)
	assert.Equal(t, config.RevUnknown, s.Self[1].Rev, "shell without config keeps its previous data")
	assert.Equal(t, config.RevUnknown, s.Self[4].Rev, "invalid robots are not refreshed")
}
