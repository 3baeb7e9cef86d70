package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/gwillem/armus/pkg/ik"
	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/robot"
	"github.com/gwillem/armus/pkg/rpc"
	"github.com/gwillem/armus/pkg/teleop"
)

type RunCommand struct {
	Hz  int    `long:"hz" description:"Control loop frequency (default: rate_hz from the config)"`
	TUI bool   `long:"tui" description:"Show the telemetry dashboard"`
	Log string `long:"log" default:"armus.log" description:"Log file used with --tui"`
}

func loadConfig() (*robot.Config, error) {
	cfg, err := robot.LoadConfigFrom(opts.Config)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no configuration at %s, run 'armus setup' first", opts.Config)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *RunCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if c.Hz > 0 {
		cfg.RateHz = c.Hz
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration %s: %w", opts.Config, err)
	}

	logFile := ""
	if c.TUI {
		logFile = c.Log
	}
	logger, err := newLogger(opts.Verbose, logFile)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	solver, closeSolver, err := openSolver(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSolver()

	arm := motion.NewArmState(cfg.Params())
	feed := teleop.NewFeed()
	pubs := teleop.Publishers{feed}

	var ctrl *teleop.Controller
	if !cfg.Simulated() {
		link, closeArm, err := openHardware(ctx, cfg, func(f motion.Feedback) { ctrl.SubmitFeedback(f) }, logger)
		if err != nil {
			return err
		}
		defer closeArm()
		if link != nil {
			pubs = append(pubs, link)
		}
	}

	ctrl = teleop.NewController(arm, motion.NewKinematicsClient(solver), pubs, teleop.Config{
		Hz:              cfg.RateHz,
		FeedbackTimeout: cfg.FeedbackTimeout(),
		Logger:          logger.Named("teleop"),
	})

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
	}
	srv := grpc.NewServer()
	rpc.RegisterTeleopServer(srv, rpc.NewTeleopServer(ctrl, cfg.Mapping, feed, logger.Named("rpc")))
	go func() {
		if err := srv.Serve(lis); err != nil {
			logger.Errorw("serve", "error", err)
		}
	}()
	defer srv.Stop()
	logger.Infow("serving operator input", "addr", lis.Addr().String())

	if !c.TUI {
		if err := ctrl.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	frames, unsubscribe := feed.Subscribe(64)
	defer unsubscribe()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := ctrl.Start(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Errorw("control loop", "error", err)
		}
	}()

	p := tea.NewProgram(newMonitorModel(cfg.Listen, ctrl.Hz(), frames, ctrl.Logs()), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	cancel()
	<-done
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// openSolver returns the configured kinematics solver: the remote service
// at cfg.Solver, or the reference solver in-process.
func openSolver(cfg *robot.Config, logger *zap.SugaredLogger) (motion.Solver, func(), error) {
	if cfg.Solver == "" {
		logger.Infow("using in-process kinematics solver")
		return ik.NewSolver(cfg.Angles), func() {}, nil
	}

	conn, err := rpc.Dial(cfg.Solver)
	if err != nil {
		return nil, nil, fmt.Errorf("dial solver %s: %w", cfg.Solver, err)
	}
	logger.Infow("using remote kinematics solver", "addr", cfg.Solver)
	return rpc.NewKinematicsClient(conn), func() {
		if err := conn.Close(); err != nil {
			logger.Warnw("close solver connection", "error", err)
		}
	}, nil
}

// openHardware connects the servo bus. Without a configured port it returns
// a nil link and joint states are expected over rpc.
func openHardware(ctx context.Context, cfg *robot.Config, feedback func(motion.Feedback), logger *zap.SugaredLogger) (*teleop.HardwareLink, func(), error) {
	if cfg.Hardware.Port == "" {
		logger.Infow("no serial port configured, expecting joint states over rpc")
		return nil, func() {}, nil
	}

	cal := cfg.Hardware.Calibration
	if !cfg.Hardware.IsCalibrated() {
		logger.Warnw("arm not calibrated, using default servo IDs", "port", cfg.Hardware.Port)
		cal = robot.DefaultCalibration()
	}

	arm, err := robot.NewArm(cfg.Hardware.Port, cal)
	if err != nil {
		return nil, nil, fmt.Errorf("connect arm on %s: %w", cfg.Hardware.Port, err)
	}
	if err := arm.Enable(ctx); err != nil {
		return nil, nil, multierr.Append(fmt.Errorf("enable torque: %w", err), arm.Close())
	}
	logger.Infow("arm connected", "port", cfg.Hardware.Port)

	closeArm := func() {
		disableCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := multierr.Combine(arm.Disable(disableCtx), arm.Close()); err != nil {
			logger.Errorw("close arm", "error", err)
		}
	}

	return teleop.NewHardwareLink(arm, cfg.Positions, feedback), closeArm, nil
}
