// Package ik is a reference inverse-kinematics solver for a five-joint arm:
// base yaw, shoulder, elbow, wrist pitch and wrist roll.
//
// Each request moves the end effector by a small Cartesian step using the
// pseudo-inverse of the position Jacobian. A Jacobian whose smallest singular
// value falls under Tolerance is reported as singular.
package ik

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gwillem/armus/pkg/motion"
)

// Model describes the arm geometry, in millimetres.
type Model struct {
	BaseHeight float64 `json:"base_height"`
	UpperArm   float64 `json:"upper_arm"`
	Forearm    float64 `json:"forearm"`
	Hand       float64 `json:"hand"`
}

// DefaultModel is a desk-sized arm.
func DefaultModel() Model {
	return Model{
		BaseHeight: 100,
		UpperArm:   250,
		Forearm:    200,
		Hand:       80,
	}
}

// Forward returns the end-effector position for joint angles in radians.
// The wrist roll (joint 5) does not move the end-effector point.
func (m Model) Forward(q []float64) [3]float64 {
	a2 := q[1]
	a3 := a2 + q[2]
	a4 := a3 + q[3]
	r := m.UpperArm*math.Cos(a2) + m.Forearm*math.Cos(a3) + m.Hand*math.Cos(a4)
	z := m.BaseHeight + m.UpperArm*math.Sin(a2) + m.Forearm*math.Sin(a3) + m.Hand*math.Sin(a4)
	return [3]float64{r * math.Cos(q[0]), r * math.Sin(q[0]), z}
}

// Jacobian returns the 3x5 position Jacobian at q by central differences.
func (m Model) Jacobian(q []float64) *mat.Dense {
	const h = 1e-6
	jac := mat.NewDense(3, motion.NumSlots, nil)
	qq := make([]float64, len(q))
	for j := range q {
		copy(qq, q)
		qq[j] = q[j] + h
		plus := m.Forward(qq)
		qq[j] = q[j] - h
		minus := m.Forward(qq)
		for i := 0; i < 3; i++ {
			jac.Set(i, j, (plus[i]-minus[i])/(2*h))
		}
	}
	return jac
}

// Solver answers kinematics requests in-process.
type Solver struct {
	Model     Model
	Converter motion.AngleConverter
	// Gain scales the requested displacement before solving.
	Gain float64
	// Tolerance is the smallest singular value accepted.
	Tolerance float64
}

// NewSolver returns a solver for the default model.
func NewSolver(conv motion.AngleConverter) *Solver {
	return &Solver{
		Model:     DefaultModel(),
		Converter: conv,
		Gain:      0.01,
		Tolerance: 1e-3,
	}
}

// Solve implements motion.Solver. The returned values are actuator positions
// for the solved joint angles.
func (s *Solver) Solve(ctx context.Context, req motion.KinematicsRequest) (motion.KinematicsResponse, error) {
	if err := ctx.Err(); err != nil {
		return motion.KinematicsResponse{}, err
	}

	q := make([]float64, motion.NumSlots)
	for i, deg := range req.Angles {
		q[i] = deg * math.Pi / 180
	}

	dq, ok := s.step(q, req.Commands)
	if !ok {
		return motion.KinematicsResponse{SingularMatrix: true}, nil
	}

	var angles motion.Vector5
	for i := range angles {
		angles[i] = req.Angles[i] + dq[i]*180/math.Pi
	}
	return motion.KinematicsResponse{Velocities: s.Converter.Positions(angles)}, nil
}

// step solves J·dq = gain·dx with the SVD pseudo-inverse.
func (s *Solver) step(q []float64, dx [3]float64) ([]float64, bool) {
	jac := s.Model.Jacobian(q)

	var svd mat.SVD
	if !svd.Factorize(jac, mat.SVDThin) {
		return nil, false
	}
	values := svd.Values(nil)
	for _, v := range values {
		if v < s.Tolerance {
			return nil, false
		}
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	b := mat.NewVecDense(3, []float64{dx[0] * s.Gain, dx[1] * s.Gain, dx[2] * s.Gain})

	// dq = V · Σ⁻¹ · Uᵀ · b
	var utb mat.VecDense
	utb.MulVec(u.T(), b)
	for i, sv := range values {
		utb.SetVec(i, utb.AtVec(i)/sv)
	}
	var dq mat.VecDense
	dq.MulVec(&v, &utb)

	return dq.RawVector().Data, true
}
