// Package armus drives a five-joint robot arm from a joystick.
//
// Joystick axes become per-joint velocity commands in Joint mode, or
// Cartesian displacement requests resolved by an inverse-kinematics solver
// in Cartesian mode. A fixed-rate control loop publishes velocity commands,
// telemetry and joint angles, and always ends with an all-zero command.
//
// # Installation
//
//	go install github.com/gwillem/armus/cmd/armus@latest
//
// # Usage
//
// Create a configuration file, choosing simulation or a real arm:
//
//	armus setup
//
// Then start the control loop with its dashboard:
//
//	armus run --tui
//
// Joystick samples, joint states and GUI overrides are sent to the
// armus.Teleop gRPC service. Another terminal can watch a running loop:
//
//	armus monitor
//
// The kinematics solver runs in-process unless the config names a remote
// one, which can be served with:
//
//	armus solver
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/armus: CLI with run, monitor, solver and setup commands
//   - pkg/motion: Positions, joint angles, the Joint/Cartesian state machine and the kinematics client
//   - pkg/robot: Configuration, calibration and the servo bus
//   - pkg/teleop: Control loop and publishers
//   - pkg/ik: Reference inverse-kinematics solver
//   - pkg/rpc: gRPC services and clients
package armus
