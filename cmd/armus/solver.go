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

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/gwillem/armus/pkg/ik"
	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/robot"
	"github.com/gwillem/armus/pkg/rpc"
	"github.com/gwillem/armus/pkg/rpc/pb"
)

type SolverCommand struct {
	Listen    string  `long:"listen" default:"127.0.0.1:50052" description:"Address to serve the kinematics service on"`
	Gain      float64 `long:"gain" description:"Step gain (default: 0.01)"`
	Tolerance float64 `long:"tolerance" description:"Smallest singular value accepted (default: 0.001)"`
}

func (c *SolverCommand) Execute(args []string) error {
	logger, err := newLogger(opts.Verbose, "")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	conv, err := solverConverter(opts.Config)
	if err != nil {
		return err
	}

	solver := ik.NewSolver(conv)
	if c.Gain > 0 {
		solver.Gain = c.Gain
	}
	if c.Tolerance > 0 {
		solver.Tolerance = c.Tolerance
	}

	lis, err := net.Listen("tcp", c.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", c.Listen, err)
	}

	srv := grpc.NewServer(grpc.UnaryInterceptor(logCalls(logger.Named("solver"))))
	rpc.RegisterKinematicsServer(srv, solver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	logger.Infow("serving kinematics", "addr", lis.Addr().String(), "gain", solver.Gain, "tolerance", solver.Tolerance)
	return srv.Serve(lis)
}

// solverConverter returns the angle converter of the config at path. Without
// a config file the solver runs with the default converter.
func solverConverter(path string) (motion.AngleConverter, error) {
	cfg, err := robot.LoadConfigFrom(path)
	if errors.Is(err, os.ErrNotExist) {
		return motion.DefaultAngleConverter(), nil
	}
	if err != nil {
		return motion.AngleConverter{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.Angles.In.Span() == 0 || cfg.Angles.Out.Span() == 0 {
		return motion.AngleConverter{}, fmt.Errorf("invalid configuration %s: empty angle range", path)
	}
	return cfg.Angles, nil
}

// logCalls logs every unary call at debug level, and failures and singular
// solutions as warnings.
func logCalls(logger *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warnw("call failed", "method", info.FullMethod, "error", err)
			return resp, err
		}
		if r, ok := resp.(*pb.KinematicsResponse); ok && r.GetSingularMatrix() {
			logger.Warnw("Singular Matrix", "method", info.FullMethod)
		}
		logger.Debugw("call", "method", info.FullMethod, "took", time.Since(start))
		return resp, nil
	}
}
