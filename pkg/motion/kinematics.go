package motion

import (
	"context"
	"errors"
	"fmt"
)

// ErrSolverUnavailable wraps transport failures talking to the solver.
var ErrSolverUnavailable = errors.New("kinematics solver unavailable")

// KinematicsRequest asks the solver to move the end effector by Commands
// starting from the joint Angles (degrees).
type KinematicsRequest struct {
	Angles   [NumSlots]float64 `json:"angles"`
	Commands [3]float64        `json:"commands"`
}

// KinematicsResponse is the solver's answer. When SingularMatrix is set the
// motion cannot be achieved and Velocities must be ignored.
type KinematicsResponse struct {
	Velocities     [NumSlots]float64 `json:"velocities"`
	SingularMatrix bool              `json:"singular_matrix"`
}

// Solver resolves Cartesian motion into actuator values. Solve blocks until
// the solver answers; an error means no answer arrived.
type Solver interface {
	Solve(ctx context.Context, req KinematicsRequest) (KinematicsResponse, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, req KinematicsRequest) (KinematicsResponse, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, req KinematicsRequest) (KinematicsResponse, error) {
	return f(ctx, req)
}

// Result is the outcome of one kinematics update.
type Result int

const (
	// Applied means the solver answered and positions were updated.
	Applied Result = iota
	// Singular means the solver found no solution; nothing changed.
	Singular
	// Failed means the solver could not be reached; nothing changed.
	Failed
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case Singular:
		return "singular"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// KinematicsClient bridges an ArmState and a Solver.
type KinematicsClient struct {
	solver Solver
}

// NewKinematicsClient returns a client using solver.
func NewKinematicsClient(solver Solver) *KinematicsClient {
	return &KinematicsClient{solver: solver}
}

// Request builds the solver request for the arm's Cartesian command and the
// joint angles of its current positions. The angles are derived afresh so a
// Joint-mode step integrated earlier in the tick is part of the request.
func Request(a *ArmState) KinematicsRequest {
	cmd := a.Motion.CartesianCommand()
	return KinematicsRequest{
		Angles:   a.params.Converter.JointAngles(a.Positions.Values()),
		Commands: [3]float64{cmd.X, cmd.Y, cmd.Z},
	}
}

// Update sends one request and applies the answer. On success the returned
// values become the arm's positions. Singular answers and transport failures
// leave the arm untouched; only Failed comes with an error.
func (k *KinematicsClient) Update(ctx context.Context, a *ArmState) (Result, error) {
	resp, err := k.solver.Solve(ctx, Request(a))
	if err != nil {
		return Failed, fmt.Errorf("%w: %w", ErrSolverUnavailable, err)
	}
	if resp.SingularMatrix {
		return Singular, nil
	}
	a.Positions.Set(Vector5(resp.Velocities))
	return Applied, nil
}
