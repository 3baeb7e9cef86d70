package rpc

import (
	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/robot"
	"github.com/gwillem/armus/pkg/rpc/pb"
	"github.com/gwillem/armus/pkg/teleop"
)

func frameToProto(f teleop.Frame) *pb.Frame {
	out := &pb.Frame{}
	if c := f.Command; c != nil {
		names := make([]string, len(c.Names))
		for i, n := range c.Names {
			names[i] = string(n)
		}
		out.Command = &pb.VelocityCommand{
			Names:      names,
			Velocities: c.Velocities.Slice(),
			Stop:       c.Stop,
		}
	}
	if t := f.Telemetry; t != nil {
		out.Telemetry = &pb.Telemetry{
			Position:     t.Position.Slice(),
			Velocity:     t.Velocity.Slice(),
			Connected:    append([]bool(nil), t.Connected[:]...),
			LimitReached: append([]bool(nil), t.LimitReached[:]...),
			Mode:         t.Mode,
			ActiveJoint:  int32(t.ActiveJoint),
		}
	}
	if g := f.Graph; g != nil {
		out.Graph = &pb.Graph{Angles: g.Angles.Slice()}
	}
	return out
}

// frameFromProto is lenient: short slots stay zero and extra values are
// dropped, so a watcher still shows what arrived.
func frameFromProto(f *pb.Frame) teleop.Frame {
	var out teleop.Frame
	if c := f.GetCommand(); c != nil {
		cmd := &teleop.Command{Stop: c.GetStop()}
		for _, n := range c.GetNames() {
			cmd.Names = append(cmd.Names, robot.MotorName(n))
		}
		copy(cmd.Velocities[:], c.GetVelocities())
		out.Command = cmd
	}
	if t := f.GetTelemetry(); t != nil {
		tel := &teleop.Telemetry{
			Mode:        t.GetMode(),
			ActiveJoint: int(t.GetActiveJoint()),
		}
		copy(tel.Position[:], t.GetPosition())
		copy(tel.Velocity[:], t.GetVelocity())
		copy(tel.Connected[:], t.GetConnected())
		copy(tel.LimitReached[:], t.GetLimitReached())
		out.Telemetry = tel
	}
	if g := f.GetGraph(); g != nil {
		var angles motion.Vector5
		copy(angles[:], g.GetAngles())
		out.Graph = &teleop.Graph{Angles: angles}
	}
	return out
}
