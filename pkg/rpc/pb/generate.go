// Package pb holds the generated protobuf messages and gRPC stubs of the
// armus.Kinematics and armus.Teleop services.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative armus.proto
