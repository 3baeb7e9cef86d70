// Package teleop runs the fixed-rate control loop that turns operator input
// into arm commands.
package teleop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/gwillem/armus/pkg/motion"
)

// DefaultHz is the control frequency used when none is configured.
const DefaultHz = 50

// Config holds configuration for the controller.
type Config struct {
	Hz int
	// FeedbackTimeout is how long a feedback sample keeps a real arm
	// reported as connected.
	FeedbackTimeout time.Duration
	Clock           clock.Clock
	Logger          *zap.SugaredLogger
}

// inbox holds the latest inbound events. Later events of the same kind
// replace earlier ones.
type inbox struct {
	joy      *motion.Input
	feedback *motion.Feedback
	override *motion.Override
}

// Controller manages the control loop. Inbound events may be submitted from
// any goroutine; everything else runs on the goroutine that called Start.
type Controller struct {
	arm       *motion.ArmState
	kin       *motion.KinematicsClient
	publisher Publisher

	hz              int
	feedbackTimeout time.Duration
	clock           clock.Clock
	logger          *zap.SugaredLogger

	mu      sync.Mutex
	inbox   inbox
	running bool

	logCh chan string

	joy          motion.Input
	lastFeedback time.Time
	solverDown   bool
	stopped      bool
}

// NewController creates a new controller for arm.
func NewController(arm *motion.ArmState, kin *motion.KinematicsClient, pub Publisher, cfg Config) *Controller {
	if cfg.Hz <= 0 {
		cfg.Hz = DefaultHz
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	return &Controller{
		arm:             arm,
		kin:             kin,
		publisher:       pub,
		hz:              cfg.Hz,
		feedbackTimeout: cfg.FeedbackTimeout,
		clock:           cfg.Clock,
		logger:          cfg.Logger,
		logCh:           make(chan string, 10),
	}
}

// Logs returns a channel that receives log messages.
func (c *Controller) Logs() <-chan string {
	return c.logCh
}

// Hz returns the control frequency.
func (c *Controller) Hz() int {
	return c.hz
}

func (c *Controller) log(format string, args ...any) {
	msg := fmt.Sprintf("[%s] %s", c.clock.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	select {
	case c.logCh <- msg:
	default:
		// Drop if channel full
	}
}

// SubmitJoy posts an operator sample. The latest sample is applied on every
// tick until a new one arrives.
func (c *Controller) SubmitJoy(in motion.Input) {
	c.mu.Lock()
	c.inbox.joy = &in
	c.mu.Unlock()
}

// SubmitFeedback posts a joint-state sample for the next tick.
func (c *Controller) SubmitFeedback(f motion.Feedback) {
	c.mu.Lock()
	c.inbox.feedback = &f
	c.mu.Unlock()
}

// SubmitOverride posts a GUI override for the next tick.
func (c *Controller) SubmitOverride(o motion.Override) {
	c.mu.Lock()
	c.inbox.override = &o
	c.mu.Unlock()
}

// Start runs the control loop until ctx is cancelled. The last command it
// publishes is always the all-zero stop command.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("already running")
	}
	c.running = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	mode := "real"
	if c.arm.Simulated() {
		mode = "simulation"
	}
	c.logger.Infow("control loop started", "hz", c.hz, "mode", mode)
	c.log("Control loop started at %d Hz (%s)", c.hz, mode)

	ticker := c.clock.Ticker(time.Second / time.Duration(c.hz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.stop(ctx)
			return ctx.Err()
		case <-ticker.C:
			if !c.step(ctx) {
				return ctx.Err()
			}
		}
	}
}

// step runs one tick. It returns false once the stop command has been sent.
// The status of the final tick still goes out after the stop command.
func (c *Controller) step(ctx context.Context) bool {
	c.drainInbox()
	c.refreshConnected()

	c.arm.CalculateVelocities()
	c.updateKinematics(ctx)
	c.arm.CalculateJointAngles()

	if ctx.Err() != nil {
		c.stop(ctx)
		c.publishStatus(context.WithoutCancel(ctx))
		return false
	}

	if err := c.publisher.PublishCommand(ctx, NewCommand(c.arm.Velocities)); err != nil {
		c.logger.Errorw("publish command", "error", err)
	}

	c.publishStatus(ctx)
	return true
}

func (c *Controller) drainInbox() {
	c.mu.Lock()
	in := c.inbox
	c.inbox = inbox{}
	c.mu.Unlock()

	if in.override != nil {
		if !c.arm.ApplyOverride(*in.override) {
			c.logger.Warnw("ignoring override joint", "joint", in.override.JointControlled)
		}
	}

	if in.feedback != nil {
		if c.arm.Simulated() {
			c.logger.Debug("ignoring feedback in simulation")
		} else {
			c.arm.ApplyFeedback(*in.feedback)
			c.lastFeedback = c.clock.Now()
		}
	}

	if in.joy != nil {
		c.joy = *in.joy
	}
	t := c.arm.Motion.Apply(c.joy)
	if t.ModeChanged {
		c.logger.Warnw("mode changed", "mode", c.arm.Motion.Mode())
		c.log("%s", c.arm.Motion.Mode())
	}
	if t.JointChanged {
		c.logger.Warnw("joint changed", "joint", c.arm.Motion.ActiveJoint())
		c.log("Joint controlled : %d", c.arm.Motion.ActiveJoint())
	}
}

func (c *Controller) refreshConnected() {
	if c.arm.Simulated() {
		c.arm.Connected.SetAll(true)
		return
	}
	fresh := !c.lastFeedback.IsZero() && c.clock.Since(c.lastFeedback) <= c.feedbackTimeout
	c.arm.Connected.SetAll(fresh)
}

func (c *Controller) updateKinematics(ctx context.Context) {
	res, err := c.kin.Update(ctx, c.arm)
	switch res {
	case motion.Failed:
		if !c.solverDown {
			c.solverDown = true
			c.logger.Warnw("kinematics solver unreachable", "error", err)
			c.log("Kinematics solver unreachable: %v", err)
		}
		return
	case motion.Singular:
		c.logger.Warn("Singular Matrix")
		c.log("Singular Matrix")
	}
	if c.solverDown {
		c.solverDown = false
		c.logger.Info("kinematics solver reachable again")
		c.log("Kinematics solver reachable again")
	}
}

func (c *Controller) publishStatus(ctx context.Context) {
	a := c.arm
	t := Telemetry{
		Position:     a.Positions.Values(),
		Velocity:     a.Velocities,
		Connected:    a.Connected,
		LimitReached: a.LimitReached,
		Mode:         a.Motion.Mode().String(),
		ActiveJoint:  a.Motion.ActiveJoint(),
	}
	if err := c.publisher.PublishTelemetry(ctx, t); err != nil {
		c.logger.Errorw("publish telemetry", "error", err)
	}
	if err := c.publisher.PublishGraph(ctx, Graph{Angles: a.Angles}); err != nil {
		c.logger.Errorw("publish graph", "error", err)
	}
}

// stop publishes the all-zero command once. It still goes out after ctx is
// cancelled.
func (c *Controller) stop(ctx context.Context) {
	if c.stopped {
		return
	}
	c.stopped = true

	if err := c.publisher.PublishCommand(context.WithoutCancel(ctx), StopCommand()); err != nil {
		c.logger.Errorw("publish stop command", "error", err)
	}
	c.logger.Warn("All motors stopped")
	c.log("All motors stopped")
}
