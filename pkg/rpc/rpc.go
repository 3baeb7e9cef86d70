// Package rpc carries the arm's inputs, telemetry and kinematics requests
// over gRPC. The wire messages are the protobuf types of package pb; this
// package converts them to and from the motion and teleop types.
package rpc

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gwillem/armus/pkg/motion"
)

// Dial opens a plaintext client connection to addr.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	return grpc.NewClient(addr, opts...)
}

// vector5 copies one value per slot out of a wire field.
func vector5(field string, values []float64) (motion.Vector5, error) {
	var v motion.Vector5
	if len(values) != motion.NumSlots {
		return v, fmt.Errorf("%s needs %d values, got %d", field, motion.NumSlots, len(values))
	}
	copy(v[:], values)
	return v, nil
}
