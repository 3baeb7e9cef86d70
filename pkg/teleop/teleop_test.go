package teleop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gwillem/armus/pkg/ik"
	"github.com/gwillem/armus/pkg/motion"
)

const period = 20 * time.Millisecond

// recorder is a Publisher that keeps everything it receives.
type recorder struct {
	mu        sync.Mutex
	commands  []Command
	telemetry []Telemetry
	graphs    []Graph
}

func (r *recorder) PublishCommand(_ context.Context, cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	return nil
}

func (r *recorder) PublishTelemetry(_ context.Context, t Telemetry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.telemetry = append(r.telemetry, t)
	return nil
}

func (r *recorder) PublishGraph(_ context.Context, g Graph) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graphs = append(r.graphs, g)
	return nil
}

func (r *recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Command(nil), r.commands...)
}

func (r *recorder) stops() int {
	n := 0
	for _, c := range r.Commands() {
		if c.Stop {
			n++
		}
	}
	return n
}

type fixture struct {
	ctrl  *Controller
	arm   *motion.ArmState
	rec   *recorder
	clock *clock.Mock
	logs  *observer.ObservedLogs
}

func newFixture(t *testing.T, simulated bool, solver motion.Solver) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	mock := clock.NewMock()
	arm := motion.NewArmState(motion.Params{
		MaxVel:    4.8,
		Limits:    motion.Range{Min: 0, Max: 4096},
		Converter: motion.DefaultAngleConverter(),
		Simulated: simulated,
	})
	if solver == nil {
		solver = singular()
	}
	rec := &recorder{}
	ctrl := NewController(arm, motion.NewKinematicsClient(solver), rec, Config{
		Hz:              50,
		FeedbackTimeout: 100 * time.Millisecond,
		Clock:           mock,
		Logger:          zap.New(core).Sugar(),
	})
	return &fixture{ctrl: ctrl, arm: arm, rec: rec, clock: mock, logs: logs}
}

func singular() motion.Solver {
	return motion.SolverFunc(func(context.Context, motion.KinematicsRequest) (motion.KinematicsResponse, error) {
		return motion.KinematicsResponse{SingularMatrix: true}, nil
	})
}

func TestController_JointScenario(t *testing.T) {
	f := newFixture(t, false, nil)
	ctx := context.Background()

	f.ctrl.SubmitFeedback(motion.Feedback{
		Position: motion.Vector5{10, 20, 30, 40, 50},
		Velocity: motion.Vector5{1, 2, 0, 4, 5},
	})
	f.ctrl.SubmitOverride(motion.Override{Joint: true, JointControlled: 3})
	f.ctrl.SubmitJoy(motion.Input{LeftVertical: 1.0})

	require.True(t, f.ctrl.step(ctx))

	cmds := f.rec.Commands()
	require.Len(t, cmds, 1)
	assert.False(t, cmds[0].Stop)
	assert.Len(t, cmds[0].Names, motion.NumSlots)
	assert.Equal(t, motion.Vector5{1, 2, 4.8, 4, 5}, cmds[0].Velocities)

	require.Len(t, f.rec.telemetry, 1)
	tel := f.rec.telemetry[0]
	assert.Equal(t, "Joint", tel.Mode)
	assert.Equal(t, 3, tel.ActiveJoint)
	assert.Equal(t, motion.Flags5{true, true, true, true, true}, tel.Connected)

	require.Len(t, f.rec.graphs, 1)
	assert.Equal(t, f.arm.Angles, f.rec.graphs[0].Angles)
}

func TestController_JoyIsReappliedEveryTick(t *testing.T) {
	var requests []motion.KinematicsRequest
	solver := motion.SolverFunc(func(_ context.Context, req motion.KinematicsRequest) (motion.KinematicsResponse, error) {
		requests = append(requests, req)
		return motion.KinematicsResponse{SingularMatrix: true}, nil
	})
	f := newFixture(t, true, solver)
	ctx := context.Background()

	f.ctrl.SubmitJoy(motion.Input{SwitchMode: true, LeftVertical: 0.5})
	for i := 0; i < 4; i++ {
		require.True(t, f.ctrl.step(ctx))
	}

	assert.Equal(t, motion.Cartesian, f.arm.Motion.Mode(), "held switch toggles once")
	assert.InDelta(t, 4*2.4, f.arm.Motion.CartesianCommand().X, 1e-9)
	require.Len(t, requests, 4)
	assert.InDelta(t, 2.4, requests[0].Commands[0], 1e-9)
	assert.InDelta(t, 9.6, requests[3].Commands[0], 1e-9)

	assert.Equal(t, 1, f.logs.FilterMessage("mode changed").Len())
}

func TestController_KinematicsEveryTickInJointMode(t *testing.T) {
	var calls int
	solver := motion.SolverFunc(func(context.Context, motion.KinematicsRequest) (motion.KinematicsResponse, error) {
		calls++
		return motion.KinematicsResponse{SingularMatrix: true}, nil
	})
	f := newFixture(t, true, solver)
	for i := 0; i < 3; i++ {
		f.ctrl.step(context.Background())
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, motion.Joint, f.arm.Motion.Mode())
}

func TestController_SingularIsWarned(t *testing.T) {
	f := newFixture(t, true, nil)
	f.arm.Positions.Set(motion.Vector5{1, 2, 3, 4, 5})

	f.ctrl.step(context.Background())
	f.ctrl.step(context.Background())

	warned := f.logs.FilterMessage("Singular Matrix").FilterLevelExact(zapcore.WarnLevel)
	assert.Equal(t, 2, warned.Len())
	assert.Equal(t, motion.Vector5{1, 2, 3, 4, 5}, f.arm.Positions.Values())
}

func TestController_AppliedSolutionBecomesPosition(t *testing.T) {
	solver := motion.SolverFunc(func(context.Context, motion.KinematicsRequest) (motion.KinematicsResponse, error) {
		return motion.KinematicsResponse{Velocities: [motion.NumSlots]float64{5, 4, 3, 2, 1}}, nil
	})
	f := newFixture(t, true, solver)
	f.ctrl.step(context.Background())

	assert.Equal(t, motion.Vector5{5, 4, 3, 2, 1}, f.rec.telemetry[0].Position)
	assert.Equal(t, f.arm.Converter().JointAngles(motion.Vector5{5, 4, 3, 2, 1}), f.rec.graphs[0].Angles)
}

func TestController_SolverFailureLoggedOnTransition(t *testing.T) {
	var down atomic.Bool
	down.Store(true)
	solver := motion.SolverFunc(func(context.Context, motion.KinematicsRequest) (motion.KinematicsResponse, error) {
		if down.Load() {
			return motion.KinematicsResponse{}, errors.New("connection refused")
		}
		return motion.KinematicsResponse{SingularMatrix: true}, nil
	})
	f := newFixture(t, true, solver)
	f.arm.Positions.Set(motion.Vector5{7, 7, 7, 7, 7})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.True(t, f.ctrl.step(ctx))
	}
	assert.Equal(t, 1, f.logs.FilterMessage("kinematics solver unreachable").Len())
	assert.Len(t, f.rec.Commands(), 5, "failed solves still emit commands")
	assert.Equal(t, motion.Vector5{7, 7, 7, 7, 7}, f.arm.Positions.Values())

	down.Store(false)
	f.ctrl.step(ctx)
	assert.Equal(t, 1, f.logs.FilterMessage("kinematics solver reachable again").Len())
}

func TestController_StopDuringTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	solver := motion.SolverFunc(func(ctx context.Context, _ motion.KinematicsRequest) (motion.KinematicsResponse, error) {
		cancel()
		return motion.KinematicsResponse{}, ctx.Err()
	})
	f := newFixture(t, true, solver)
	f.ctrl.SubmitJoy(motion.Input{LeftVertical: 1})

	assert.False(t, f.ctrl.step(ctx))
	f.ctrl.stop(ctx)

	cmds := f.rec.Commands()
	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].Stop)
	assert.Equal(t, motion.Vector5{}, cmds[0].Velocities)

	require.Len(t, f.rec.telemetry, 1, "status of the last tick follows the stop")
	assert.Equal(t, "Joint", f.rec.telemetry[0].Mode)
	require.Len(t, f.rec.graphs, 1)
	assert.Equal(t, f.arm.Angles, f.rec.graphs[0].Angles)
}

func TestController_JointModeWithReferenceSolver(t *testing.T) {
	f := newFixture(t, true, ik.NewSolver(motion.DefaultAngleConverter()))
	start := motion.Vector5{500, 300, 600, 700, 100}
	f.arm.Positions.Set(start)
	ctx := context.Background()

	f.ctrl.SubmitOverride(motion.Override{Joint: true, JointControlled: 3})
	f.ctrl.SubmitJoy(motion.Input{LeftVertical: 1.0})
	for i := 0; i < 50; i++ {
		require.True(t, f.ctrl.step(ctx))
	}

	want := start
	want[2] += 50 * 4.8
	assert.InDeltaSlice(t, want[:], f.arm.Positions.Values().Slice(), 1e-6)
	assert.InDelta(t, 4.8, f.arm.Velocities.Get(3), 1e-9)
	assert.Zero(t, f.logs.FilterMessage("Singular Matrix").Len())
	assert.Zero(t, f.logs.FilterMessage("kinematics solver unreachable").Len())
}

func TestController_StartSendsStopOnCancel(t *testing.T) {
	f := newFixture(t, true, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.ctrl.Start(ctx) }()

	require.Eventually(t, func() bool {
		f.clock.Add(period)
		return len(f.rec.Commands()) >= 3
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Start did not return")
	}

	cmds := f.rec.Commands()
	assert.Equal(t, 1, f.rec.stops())
	assert.True(t, cmds[len(cmds)-1].Stop)
	assert.Equal(t, 1, f.logs.FilterMessage("All motors stopped").Len())
}

func TestController_StartStopsOnceWhenCancelledMidTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	solver := motion.SolverFunc(func(ctx context.Context, _ motion.KinematicsRequest) (motion.KinematicsResponse, error) {
		cancel()
		return motion.KinematicsResponse{}, ctx.Err()
	})
	f := newFixture(t, true, solver)

	done := make(chan error, 1)
	go func() { done <- f.ctrl.Start(ctx) }()

	require.Eventually(t, func() bool {
		f.clock.Add(period)
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)

	cmds := f.rec.Commands()
	require.Len(t, cmds, 1)
	assert.True(t, cmds[0].Stop)
}

func TestController_StartAlreadyRunning(t *testing.T) {
	f := newFixture(t, true, nil)
	f.ctrl.running = true
	err := f.ctrl.Start(context.Background())
	assert.EqualError(t, err, "already running")
}

func TestController_ConnectedFollowsFeedback(t *testing.T) {
	f := newFixture(t, false, nil)
	ctx := context.Background()

	f.ctrl.step(ctx)
	assert.Equal(t, motion.Flags5{}, f.arm.Connected)

	f.ctrl.SubmitFeedback(motion.Feedback{Position: motion.Vector5{1, 2, 3, 4, 5}})
	f.ctrl.step(ctx)
	assert.Equal(t, motion.Flags5{true, true, true, true, true}, f.arm.Connected)
	assert.Equal(t, motion.Vector5{1, 2, 3, 4, 5}, f.arm.Positions.Values())

	f.clock.Add(200 * time.Millisecond)
	f.ctrl.step(ctx)
	assert.Equal(t, motion.Flags5{}, f.arm.Connected)
}

func TestController_SimulationIgnoresFeedback(t *testing.T) {
	f := newFixture(t, true, nil)
	f.ctrl.SubmitFeedback(motion.Feedback{Position: motion.Vector5{1, 2, 3, 4, 5}})
	f.ctrl.step(context.Background())

	assert.Equal(t, motion.Vector5{}, f.arm.Positions.Values())
	assert.Equal(t, motion.Flags5{true, true, true, true, true}, f.arm.Connected)
}

func TestController_BadOverrideIgnored(t *testing.T) {
	f := newFixture(t, true, nil)
	f.ctrl.SubmitOverride(motion.Override{Cartesian: true, JointControlled: 9})
	f.ctrl.step(context.Background())

	assert.Equal(t, motion.Cartesian, f.arm.Motion.Mode())
	assert.Equal(t, 1, f.arm.Motion.ActiveJoint())
	assert.Equal(t, 1, f.logs.FilterMessage("ignoring override joint").Len())
}

func TestController_LogsChannel(t *testing.T) {
	f := newFixture(t, true, nil)
	f.ctrl.SubmitJoy(motion.Input{PrevJoint: true})
	f.ctrl.step(context.Background())

	select {
	case msg := <-f.ctrl.Logs():
		assert.Contains(t, msg, "Joint controlled : 5")
	default:
		t.Fatal("expected a log message")
	}
	assert.Equal(t, 50, f.ctrl.Hz())
}
