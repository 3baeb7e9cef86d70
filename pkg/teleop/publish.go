package teleop

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/robot"
)

// Command is a velocity command for every motor.
type Command struct {
	Names      []robot.MotorName `json:"names"`
	Velocities motion.Vector5    `json:"velocities"`
	Stop       bool              `json:"stop,omitempty"`
}

// NewCommand returns a velocity command for all motors.
func NewCommand(v motion.Vector5) Command {
	return Command{Names: robot.AllMotors(), Velocities: v}
}

// StopCommand returns the all-zero command sent on shutdown.
func StopCommand() Command {
	return Command{Names: robot.AllMotors(), Stop: true}
}

// Telemetry is the per-tick status of the arm.
type Telemetry struct {
	Position     motion.Vector5 `json:"position"`
	Velocity     motion.Vector5 `json:"velocity"`
	Connected    motion.Flags5  `json:"connected"`
	LimitReached motion.Flags5  `json:"limit_reached"`
	Mode         string         `json:"mode"`
	ActiveJoint  int            `json:"active_joint"`
}

// Graph carries the joint angles, in degrees.
type Graph struct {
	Angles motion.Vector5 `json:"angles"`
}

// Publisher receives everything the control loop emits.
type Publisher interface {
	PublishCommand(ctx context.Context, cmd Command) error
	PublishTelemetry(ctx context.Context, t Telemetry) error
	PublishGraph(ctx context.Context, g Graph) error
}

// Publishers fans out to several publishers and combines their errors.
type Publishers []Publisher

// PublishCommand implements Publisher.
func (ps Publishers) PublishCommand(ctx context.Context, cmd Command) error {
	var err error
	for _, p := range ps {
		err = multierr.Append(err, p.PublishCommand(ctx, cmd))
	}
	return err
}

// PublishTelemetry implements Publisher.
func (ps Publishers) PublishTelemetry(ctx context.Context, t Telemetry) error {
	var err error
	for _, p := range ps {
		err = multierr.Append(err, p.PublishTelemetry(ctx, t))
	}
	return err
}

// PublishGraph implements Publisher.
func (ps Publishers) PublishGraph(ctx context.Context, g Graph) error {
	var err error
	for _, p := range ps {
		err = multierr.Append(err, p.PublishGraph(ctx, g))
	}
	return err
}

// Frame is one published message. Exactly one field is set.
type Frame struct {
	Command   *Command   `json:"command,omitempty"`
	Telemetry *Telemetry `json:"telemetry,omitempty"`
	Graph     *Graph     `json:"graph,omitempty"`
}

// Feed is a Publisher that broadcasts frames to subscribers. A subscriber
// that falls behind loses its oldest frame.
type Feed struct {
	mu   sync.Mutex
	subs map[int]chan Frame
	next int
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan Frame)}
}

// Subscribe returns a channel of frames and a function that ends the
// subscription and closes the channel.
func (f *Feed) Subscribe(buffer int) (<-chan Frame, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Frame, buffer)

	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = ch
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
			close(ch)
		})
	}
}

func (f *Feed) broadcast(fr Frame) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- fr:
		default:
			// Drop oldest frame if channel full, replace with new
			select {
			case <-ch:
			default:
			}
			ch <- fr
		}
	}
}

// PublishCommand implements Publisher.
func (f *Feed) PublishCommand(_ context.Context, cmd Command) error {
	f.broadcast(Frame{Command: &cmd})
	return nil
}

// PublishTelemetry implements Publisher.
func (f *Feed) PublishTelemetry(_ context.Context, t Telemetry) error {
	f.broadcast(Frame{Telemetry: &t})
	return nil
}

// PublishGraph implements Publisher.
func (f *Feed) PublishGraph(_ context.Context, g Graph) error {
	f.broadcast(Frame{Graph: &g})
	return nil
}
