package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/Pi3th0n/robocup-software/internal/geometry"
	"github.com/Pi3th0n/robocup-software/internal/packet"
	"github.com/Pi3th0n/robocup-software/internal/packet/pb"
	"github.com/Pi3th0n/robocup-software/internal/state"
	"github.com/Pi3th0n/robocup-software/internal/teamspace"
)

// ReadVision drains the perception socket into s and appends every datagram
// to log. With wait > 0 it first blocks up to wait for a datagram to arrive.
// It returns the number of frames applied.
func (in *Ingest) ReadVision(s *state.SystemState, log *packet.LogFrame, wait time.Duration) int {
	if wait > 0 {
		if _, err := in.vision.WaitReadable(wait); err != nil {
			in.log.Error().Err(err).Str("stream", StreamVision).Msg("wait for vision failed")
		}
	}

	// One transform for the whole cycle even if the defend side flips mid-drain.
	tr := in.cfg.Transform.Load()
	applied := 0
	for {
		data, ok := in.next(StreamVision, in.vision)
		if !ok {
			return applied
		}
		if data == nil {
			continue
		}
		log.AddRawVision(data)

		if err := packet.DecodeVision(data, in.wrapper); err != nil {
			in.drop(StreamVision, len(data), err)
			continue
		}
		d := in.wrapper.GetDetection()
		if d == nil {
			continue
		}
		if cam := d.GetCameraId(); int64(cam) >= int64(in.maxCameras()) {
			in.drop(StreamVision, len(data), fmt.Errorf("%w: %d", errCameraID, cam))
			continue
		}
		in.applyDetection(s, d, tr)
		in.lastVision = in.cfg.Clock.Now()
		applied++
	}
}

var errCameraID = errors.New("camera id out of range")

func (in *Ingest) maxCameras() int {
	if in.cfg.Network.MaxCameras > 0 {
		return in.cfg.Network.MaxCameras
	}
	return defaultMaxCameras
}

func (in *Ingest) applyDetection(s *state.SystemState, d *pb.SSL_DetectionFrame, tr *teamspace.Transform) {
	cam := int(d.GetCameraId())
	f := s.Vision(cam)
	f.Reset(cam)
	f.Timestamp = int64(d.GetTCapture() * 1e6)
	f.Received = in.cfg.Clock.Now()

	f.Blue = appendRobots(f.Blue, d.GetRobotsBlue())
	f.Yellow = appendRobots(f.Yellow, d.GetRobotsYellow())
	for _, b := range d.GetBalls() {
		if b.GetConfidence() == 0 {
			continue
		}
		f.Balls = append(f.Balls, state.VisionBall{Pos: millimetres(b.GetX(), b.GetY())})
	}
	tr.Apply(f)
}

func appendRobots(dst []state.VisionRobot, src []*pb.SSL_DetectionRobot) []state.VisionRobot {
	for _, r := range src {
		if r.GetConfidence() == 0 {
			continue
		}
		dst = append(dst, state.VisionRobot{
			Shell: int(r.GetRobotId()),
			Pos:   millimetres(r.GetX(), r.GetY()),
			Angle: float64(r.GetOrientation()) * geometry.RadiansToDegrees,
		})
	}
	return dst
}

func millimetres(x, y float32) geometry.Point {
	return geometry.Point{X: float64(x) / 1000, Y: float64(y) / 1000}
}
