package rpc

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gwillem/armus/pkg/motion"
	"github.com/gwillem/armus/pkg/rpc/pb"
	"github.com/gwillem/armus/pkg/teleop"
)

// Inputs receives decoded events. teleop.Controller implements it.
type Inputs interface {
	SubmitJoy(in motion.Input)
	SubmitFeedback(f motion.Feedback)
	SubmitOverride(o motion.Override)
}

// RegisterTeleopServer serves srv as the armus.Teleop service.
func RegisterTeleopServer(s grpc.ServiceRegistrar, srv *TeleopServer) {
	pb.RegisterTeleopServer(s, srv)
}

// Ensure TeleopServer implements the gRPC interface.
var _ pb.TeleopServer = (*TeleopServer)(nil)

// TeleopServer decodes inbound events for the control loop and streams its
// published frames to watchers.
type TeleopServer struct {
	pb.UnimplementedTeleopServer

	inputs  Inputs
	mapping motion.Mapping
	feed    *teleop.Feed
	logger  *zap.SugaredLogger
}

// NewTeleopServer creates a new teleop server.
func NewTeleopServer(inputs Inputs, mapping motion.Mapping, feed *teleop.Feed, logger *zap.SugaredLogger) *TeleopServer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &TeleopServer{
		inputs:  inputs,
		mapping: mapping,
		feed:    feed,
		logger:  logger,
	}
}

// Joy implements pb.TeleopServer.
func (s *TeleopServer) Joy(_ context.Context, req *pb.JoyRequest) (*pb.Ack, error) {
	buttons := make([]int, len(req.GetButtons()))
	for i, b := range req.GetButtons() {
		buttons[i] = int(b)
	}
	in, err := s.mapping.Input(req.GetAxes(), buttons)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.inputs.SubmitJoy(in)
	return &pb.Ack{}, nil
}

// JointStates implements pb.TeleopServer.
func (s *TeleopServer) JointStates(_ context.Context, req *pb.JointStateRequest) (*pb.Ack, error) {
	pos, err := vector5("position", req.GetPosition())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	vel, err := vector5("velocity", req.GetVelocity())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.inputs.SubmitFeedback(motion.Feedback{Position: pos, Velocity: vel})
	return &pb.Ack{}, nil
}

// GuiFeedback implements pb.TeleopServer.
func (s *TeleopServer) GuiFeedback(_ context.Context, req *pb.GuiFeedbackRequest) (*pb.Ack, error) {
	joint := int(req.GetJointControlled())
	if joint < 1 || joint > motion.NumSlots {
		return nil, status.Errorf(codes.InvalidArgument,
			"joint_controlled must be in 1-%d, got %d", motion.NumSlots, joint)
	}
	s.inputs.SubmitOverride(motion.Override{
		Joint:           req.GetJoint(),
		Cartesian:       req.GetCartesian(),
		JointControlled: joint,
	})
	return &pb.Ack{}, nil
}

// Watch implements pb.TeleopServer.
func (s *TeleopServer) Watch(_ *pb.WatchRequest, stream pb.Teleop_WatchServer) error {
	ctx := stream.Context()
	frames, cancel := s.feed.Subscribe(64)
	defer cancel()

	s.logger.Infow("watcher connected")
	defer s.logger.Infow("watcher disconnected")

	for {
		select {
		case <-ctx.Done():
			return nil
		case fr, ok := <-frames:
			if !ok {
				return nil
			}
			if err := stream.Send(frameToProto(fr)); err != nil {
				return fmt.Errorf("send frame: %w", err)
			}
		}
	}
}

// TeleopClient talks to a remote armus.Teleop service.
type TeleopClient struct {
	client pb.TeleopClient
}

// NewTeleopClient returns a client on an existing connection.
func NewTeleopClient(cc grpc.ClientConnInterface) *TeleopClient {
	return &TeleopClient{client: pb.NewTeleopClient(cc)}
}

// Joy sends a raw joystick sample.
func (c *TeleopClient) Joy(ctx context.Context, req *pb.JoyRequest) error {
	_, err := c.client.Joy(ctx, req)
	return err
}

// JointStates sends a joint-state sample.
func (c *TeleopClient) JointStates(ctx context.Context, req *pb.JointStateRequest) error {
	_, err := c.client.JointStates(ctx, req)
	return err
}

// GuiFeedback sends an operator override.
func (c *TeleopClient) GuiFeedback(ctx context.Context, req *pb.GuiFeedbackRequest) error {
	_, err := c.client.GuiFeedback(ctx, req)
	return err
}

// Watch streams published frames until ctx is cancelled or the stream ends,
// then closes the returned channel.
func (c *TeleopClient) Watch(ctx context.Context) (<-chan teleop.Frame, error) {
	stream, err := c.client.Watch(ctx, &pb.WatchRequest{})
	if err != nil {
		return nil, fmt.Errorf("open watch stream: %w", err)
	}

	out := make(chan teleop.Frame, 16)
	go func() {
		defer close(out)
		for {
			fr, err := stream.Recv()
			if err != nil {
				return
			}
			select {
			case out <- frameFromProto(fr):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
