package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/rpc/pb"
)

type kinematicsServer struct {
	pb.UnimplementedKinematicsServer
	solver motion.Solver
}

// RegisterKinematicsServer serves solver as the armus.Kinematics service.
func RegisterKinematicsServer(s grpc.ServiceRegistrar, solver motion.Solver) {
	pb.RegisterKinematicsServer(s, &kinematicsServer{solver: solver})
}

func (s *kinematicsServer) InverseKinematicCalc(ctx context.Context, req *pb.KinematicsRequest) (*pb.KinematicsResponse, error) {
	angles, err := vector5("angles", req.GetAngles())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if n := len(req.GetCommands()); n != 3 {
		return nil, status.Errorf(codes.InvalidArgument, "commands needs 3 values, got %d", n)
	}

	var in motion.KinematicsRequest
	in.Angles = angles
	copy(in.Commands[:], req.GetCommands())

	resp, err := s.solver.Solve(ctx, in)
	if err != nil {
		return nil, err
	}
	return &pb.KinematicsResponse{
		Velocities:     resp.Velocities[:],
		SingularMatrix: resp.SingularMatrix,
	}, nil
}

// KinematicsClient is a motion.Solver backed by a remote armus.Kinematics
// service.
type KinematicsClient struct {
	client pb.KinematicsClient
}

// Ensure KinematicsClient implements motion.Solver.
var _ motion.Solver = (*KinematicsClient)(nil)

// NewKinematicsClient returns a client on an existing connection.
func NewKinematicsClient(cc grpc.ClientConnInterface) *KinematicsClient {
	return &KinematicsClient{client: pb.NewKinematicsClient(cc)}
}

// Solve sends one request and blocks until the solver answers. A reply
// without one value per joint is an error unless it is singular.
func (c *KinematicsClient) Solve(ctx context.Context, req motion.KinematicsRequest) (motion.KinematicsResponse, error) {
	resp, err := c.client.InverseKinematicCalc(ctx, &pb.KinematicsRequest{
		Angles:   req.Angles[:],
		Commands: req.Commands[:],
	})
	if err != nil {
		return motion.KinematicsResponse{}, err
	}
	if resp.GetSingularMatrix() {
		return motion.KinematicsResponse{SingularMatrix: true}, nil
	}
	v, err := vector5("velocities", resp.GetVelocities())
	if err != nil {
		return motion.KinematicsResponse{}, fmt.Errorf("kinematics reply: %w", err)
	}
	return motion.KinematicsResponse{Velocities: v}, nil
}
