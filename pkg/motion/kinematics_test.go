package motion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartesianArm() *ArmState {
	a := newTestArm(false)
	a.ApplyFeedback(Feedback{Position: Vector5{100, 200, 300, 400, 500}})
	a.CalculateJointAngles()
	a.Motion.SetMode(Cartesian)
	a.Motion.Apply(Input{LeftVertical: 1, LeftHorizontal: 0.5, RightVertical: -1})
	return a
}

func TestKinematicsClient_Request(t *testing.T) {
	a := cartesianArm()

	var got KinematicsRequest
	k := NewKinematicsClient(SolverFunc(func(_ context.Context, req KinematicsRequest) (KinematicsResponse, error) {
		got = req
		return KinematicsResponse{SingularMatrix: true}, nil
	}))

	_, err := k.Update(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, [NumSlots]float64(a.Angles), got.Angles)
	assert.InDeltaSlice(t, []float64{4.8, 2.4, -4.8}, got.Commands[:], 1e-9)
}

func TestRequest_UsesCurrentPositions(t *testing.T) {
	a := newTestArm(true)
	a.Positions.Set(Vector5{100, 200, 300, 400, 500})
	a.CalculateJointAngles()

	a.Motion.SetActiveJoint(3)
	a.Motion.Apply(Input{LeftVertical: 1})
	a.CalculateVelocities()

	req := Request(a)
	want := a.Converter().JointAngles(Vector5{100, 200, 304.8, 400, 500})
	assert.InDeltaSlice(t, want[:], req.Angles[:], 1e-9)
	assert.NotEqual(t, [NumSlots]float64(a.Angles), req.Angles, "stale angles from the previous tick")
}

func TestKinematicsClient_Applied(t *testing.T) {
	a := cartesianArm()
	want := [NumSlots]float64{1, 2, 3, 4, 5}
	k := NewKinematicsClient(SolverFunc(func(context.Context, KinematicsRequest) (KinematicsResponse, error) {
		return KinematicsResponse{Velocities: want}, nil
	}))

	res, err := k.Update(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, Applied, res)
	assert.Equal(t, Vector5(want), a.Positions.Values())
}

func TestKinematicsClient_SingularLeavesState(t *testing.T) {
	a := cartesianArm()
	before := a.Positions.Values()
	k := NewKinematicsClient(SolverFunc(func(context.Context, KinematicsRequest) (KinematicsResponse, error) {
		return KinematicsResponse{Velocities: [NumSlots]float64{9, 9, 9, 9, 9}, SingularMatrix: true}, nil
	}))

	res, err := k.Update(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, Singular, res)
	assert.Equal(t, before, a.Positions.Values())
}

func TestKinematicsClient_FailureLeavesState(t *testing.T) {
	a := cartesianArm()
	before := a.Positions.Values()
	velBefore := a.Velocities
	cause := errors.New("connection refused")
	k := NewKinematicsClient(SolverFunc(func(context.Context, KinematicsRequest) (KinematicsResponse, error) {
		return KinematicsResponse{}, cause
	}))

	res, err := k.Update(context.Background(), a)
	assert.Equal(t, Failed, res)
	assert.ErrorIs(t, err, ErrSolverUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, before, a.Positions.Values())
	assert.Equal(t, velBefore, a.Velocities)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "applied", Applied.String())
	assert.Equal(t, "singular", Singular.String())
	assert.Equal(t, "failed", Failed.String())
}
