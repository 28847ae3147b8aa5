package ingest

import (
	"fmt"

	"github.com/Pi3th0n/robocup-software/internal/packet"
)

// ReadReferee drains the referee socket. Frames of the right size are
// appended to log and buffered until the next call; RefereeFrames returns
// them. Everything else is counted as dropped.
func (in *Ingest) ReadReferee(log *packet.LogFrame) int {
	in.refFrames = in.refFrames[:0]
	for {
		data, ok := in.next(StreamReferee, in.referee)
		if !ok {
			return len(in.refFrames)
		}
		if data == nil {
			continue
		}
		if len(data) != RefereeFrameSize {
			in.drop(StreamReferee, len(data), fmt.Errorf("want %d bytes", RefereeFrameSize))
			continue
		}
		log.AddRawReferee(data)
		in.refFrames = appendFrame(in.refFrames, data)
		in.lastReferee = in.cfg.Clock.Now()
	}
}

// RefereeFrames returns the frames read by the last ReadReferee. They are
// valid until the next call.
func (in *Ingest) RefereeFrames() [][]byte {
	return in.refFrames
}

func appendFrame(list [][]byte, data []byte) [][]byte {
	n := len(list)
	if n < cap(list) {
		list = list[:n+1]
		list[n] = append(list[n][:0], data...)
		return list
	}
	return append(list, append([]byte(nil), data...))
}
