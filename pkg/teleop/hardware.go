package teleop

import (
	"context"
	"fmt"

	"github.com/gwillem/armus/pkg/motion"
)

// ServoArm is a position-controlled arm, such as robot.Arm.
type ServoArm interface {
	ReadPositions(ctx context.Context) (motion.Vector5, error)
	WritePositions(ctx context.Context, positions motion.Vector5) error
}

// HardwareLink drives a position-controlled arm from velocity commands.
// Velocities are in position units per tick: each command reads the arm,
// posts the reading back as feedback and moves every target by one tick of
// velocity. The stop command holds the current position.
//
// The feedback velocity is the commanded one, zero after a stop. Motion the
// servos make on their own shows up in the positions only, so it is never
// commanded again on the next tick.
type HardwareLink struct {
	arm      ServoArm
	limits   motion.Range
	feedback func(motion.Feedback)
}

// NewHardwareLink returns a link to arm. feedback receives every reading and
// is typically Controller.SubmitFeedback.
func NewHardwareLink(arm ServoArm, limits motion.Range, feedback func(motion.Feedback)) *HardwareLink {
	return &HardwareLink{
		arm:      arm,
		limits:   limits,
		feedback: feedback,
	}
}

// PublishCommand implements Publisher.
func (h *HardwareLink) PublishCommand(ctx context.Context, cmd Command) error {
	pos, err := h.arm.ReadPositions(ctx)
	if err != nil {
		return fmt.Errorf("hardware: %w", err)
	}

	target := pos
	var vel motion.Vector5
	if !cmd.Stop {
		vel = cmd.Velocities
		for i := range target {
			target[i] = h.limits.Wrap(pos[i] + vel[i])
		}
	}

	if h.feedback != nil {
		h.feedback(motion.Feedback{Position: pos, Velocity: vel})
	}

	if err := h.arm.WritePositions(ctx, target); err != nil {
		return fmt.Errorf("hardware: %w", err)
	}
	return nil
}

// PublishTelemetry implements Publisher.
func (h *HardwareLink) PublishTelemetry(context.Context, Telemetry) error { return nil }

// PublishGraph implements Publisher.
func (h *HardwareLink) PublishGraph(context.Context, Graph) error { return nil }
