// Package robot provides the arm's motor naming, configuration file and the
// feetech servo bus adapter.
package robot

// MotorName identifies a motor in the arm.
type MotorName string

// Motor names, in slot order.
const (
	Motor1 MotorName = "motor1"
	Motor2 MotorName = "motor2"
	Motor3 MotorName = "motor3"
	Motor4 MotorName = "motor4"
	Motor5 MotorName = "motor5"
)

// AllMotors returns all motor names in slot order (matching servo IDs 1-5).
func AllMotors() []MotorName {
	return []MotorName{
		Motor1,
		Motor2,
		Motor3,
		Motor4,
		Motor5,
	}
}
