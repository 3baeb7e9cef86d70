package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"

	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/robot"
	"github.com/gwillem/armus/pkg/rpc/pb"
)

func TestSolverConverter_MissingConfig(t *testing.T) {
	conv, err := solverConverter(filepath.Join(t.TempDir(), "armus.json"))
	require.NoError(t, err)
	assert.Equal(t, motion.DefaultAngleConverter(), conv)
}

func TestSolverConverter_FromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armus.json")
	cfg := robot.DefaultConfig()
	cfg.Angles.Out = motion.Range{Min: -180, Max: 180}
	require.NoError(t, cfg.SaveTo(path))

	conv, err := solverConverter(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Angles, conv)
}

func TestSolverConverter_BrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"angles": {"in": `), 0o644))

	_, err := solverConverter(path)
	assert.ErrorContains(t, err, "load config")
}

func TestSolverConverter_EmptyAngleRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armus.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"angles": {"in": {"min": 0, "max": 0}}}`), 0o644))

	_, err := solverConverter(path)
	assert.ErrorContains(t, err, "empty angle range")
}

func TestLogCalls(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	intercept := logCalls(zap.New(core).Sugar())
	info := &grpc.UnaryServerInfo{FullMethod: pb.Kinematics_InverseKinematicCalc_FullMethodName}
	ctx := context.Background()

	reply := func(resp *pb.KinematicsResponse, err error) grpc.UnaryHandler {
		return func(context.Context, any) (any, error) { return resp, err }
	}

	_, err := intercept(ctx, &pb.KinematicsRequest{}, info, reply(&pb.KinematicsResponse{SingularMatrix: true}, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("Singular Matrix").Len())

	_, err = intercept(ctx, &pb.KinematicsRequest{}, info, reply(nil, errors.New("boom")))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, logs.FilterMessage("call failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("call").Len())
}
