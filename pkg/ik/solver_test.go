package ik

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwillem/armus/pkg/motion"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func TestModel_Forward(t *testing.T) {
	m := DefaultModel()

	p := m.Forward([]float64{0, 0, 0, 0, 0})
	assert.InDeltaSlice(t, []float64{530, 0, 100}, p[:], 1e-9)

	p = m.Forward([]float64{deg(90), deg(90), 0, 0, 0})
	assert.InDeltaSlice(t, []float64{0, 0, 630}, p[:], 1e-9)

	// wrist roll does not move the point
	assert.Equal(t, m.Forward([]float64{0.1, 0.2, 0.3, 0.4, 0}), m.Forward([]float64{0.1, 0.2, 0.3, 0.4, 1}))
}

func TestModel_Jacobian(t *testing.T) {
	m := DefaultModel()
	jac := m.Jacobian([]float64{0, 0, 0, 0, 0})

	r, c := jac.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 5, c)

	// at the stretched pose, base yaw moves y by the reach
	assert.InDelta(t, 530, jac.At(1, 0), 1e-3)
	// shoulder moves z by the reach
	assert.InDelta(t, 530, jac.At(2, 1), 1e-3)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, jac.At(i, 4), 1e-9)
	}
}

func TestSolver_SingularWhenStretched(t *testing.T) {
	s := NewSolver(motion.DefaultAngleConverter())

	resp, err := s.Solve(context.Background(), motion.KinematicsRequest{
		Commands: [3]float64{10, 0, 0},
	})
	require.NoError(t, err)
	assert.True(t, resp.SingularMatrix)
}

func TestSolver_StepsTowardTarget(t *testing.T) {
	conv := motion.DefaultAngleConverter()
	s := NewSolver(conv)
	angles := [motion.NumSlots]float64{20, 30, 60, -30, 0}
	cmd := [3]float64{5, -3, 2}

	resp, err := s.Solve(context.Background(), motion.KinematicsRequest{Angles: angles, Commands: cmd})
	require.NoError(t, err)
	require.False(t, resp.SingularMatrix)

	newAngles := conv.JointAngles(motion.Vector5(resp.Velocities))
	q0 := make([]float64, motion.NumSlots)
	q1 := make([]float64, motion.NumSlots)
	for i := range q0 {
		q0[i] = deg(angles[i])
		q1[i] = deg(newAngles[i])
	}

	p0 := s.Model.Forward(q0)
	p1 := s.Model.Forward(q1)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, cmd[i]*s.Gain, p1[i]-p0[i], 1e-3, "axis %d", i)
	}
	assert.InDelta(t, 0, newAngles[4]-angles[4], 1e-6, "wrist roll is not used")
}

func TestSolver_ZeroCommandKeepsPose(t *testing.T) {
	conv := motion.DefaultAngleConverter()
	s := NewSolver(conv)
	angles := motion.Vector5{20, 30, 60, -30, 10}

	resp, err := s.Solve(context.Background(), motion.KinematicsRequest{Angles: angles})
	require.NoError(t, err)
	require.False(t, resp.SingularMatrix)

	assert.InDeltaSlice(t, conv.Positions(angles).Slice(), motion.Vector5(resp.Velocities).Slice(), 1e-9)
}

func TestSolver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSolver(motion.DefaultAngleConverter()).Solve(ctx, motion.KinematicsRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
