package ingest

import (
	"github.com/Pi3th0n/robocup-software/internal/packet"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

// ReadRadio drains the radio feedback socket. Every decoded RadioRx is
// appended to log and copied into the roster slot of the matching shell.
func (in *Ingest) ReadRadio(s *state.SystemState, log *packet.LogFrame) int {
	applied := 0
	for {
		data, ok := in.next(StreamRadio, in.radio)
		if !ok {
			return applied
		}
		if data == nil {
			continue
		}
		var rx packet.RadioRx
		if err := rx.Unmarshal(data); err != nil {
			in.drop(StreamRadio, len(data), err)
			continue
		}
		log.RadioRx = append(log.RadioRx, rx)
		in.lastRadio = in.cfg.Clock.Now()
		applied++

		if slot := s.Self.ByShell(int(rx.BoardID)); slot >= 0 {
			s.Self[slot].Feedback = rx
		} else {
			in.log.Debug().Int32("shell", rx.BoardID).Msg("radio feedback for unknown shell")
		}
	}
}
