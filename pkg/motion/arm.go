package motion

// Params configures an ArmState.
type Params struct {
	MaxVel    float64
	Limits    Range
	Converter AngleConverter

	// Simulated arms integrate joint commands into their own positions
	// instead of waiting for feedback.
	Simulated bool

	// DiffLimit bounds the position difference of the coupled pair
	// (actuator 1 minus actuator 2). Nil disables the check.
	DiffLimit *Range
}

// Feedback is one joint-state sample from the arm.
type Feedback struct {
	Position Vector5
	Velocity Vector5
}

// ArmState is the motion-state aggregate of one arm. It is owned by a single
// control goroutine and is not safe for concurrent use.
type ArmState struct {
	Positions    PositionVector
	Velocities   Vector5
	Connected    Flags5
	LimitReached Flags5
	Angles       Vector5
	Motion       *State

	// PositionDifference is actuator 1 minus actuator 2 from the last feedback.
	PositionDifference float64

	params Params
}

// NewArmState returns an arm at rest in Joint mode.
func NewArmState(p Params) *ArmState {
	return &ArmState{
		Positions: NewPositionVector(p.Limits),
		Motion:    NewState(p.MaxVel),
		params:    p,
	}
}

// Simulated reports whether the arm integrates its own positions.
func (a *ArmState) Simulated() bool {
	return a.params.Simulated
}

// Converter returns the joint-angle converter.
func (a *ArmState) Converter() AngleConverter {
	return a.params.Converter
}

// ApplyFeedback overwrites positions and velocities with measured values.
func (a *ArmState) ApplyFeedback(f Feedback) {
	a.Positions.Set(f.Position)
	a.Velocities = f.Velocity
	a.PositionDifference = f.Position[0] - f.Position[1]
}

// ApplyOverride forwards a GUI override to the state machine.
func (a *ArmState) ApplyOverride(o Override) bool {
	return a.Motion.ApplyOverride(o)
}

// CalculateVelocities turns the Joint-mode command into an actuator velocity.
// Cartesian motion is resolved by the KinematicsClient instead. Slots not
// under control keep their last value.
func (a *ArmState) CalculateVelocities() {
	if a.Motion.Mode() == Joint {
		joint := a.Motion.ActiveJoint()
		cmd := a.Motion.JointCommand()
		a.Velocities.Set(cmd, joint)
		if a.params.Simulated {
			a.Positions.Add(cmd, joint)
		}
	}

	a.checkDiffLimit()
}

func (a *ArmState) checkDiffLimit() {
	lim := a.params.DiffLimit
	if lim == nil {
		return
	}
	v1 := a.Velocities.Get(1)
	hit := (v1 > 0 && a.PositionDifference < lim.Min) ||
		(v1 < 0 && a.PositionDifference > lim.Max)
	a.LimitReached[0] = hit
	a.LimitReached[1] = hit
	if hit {
		a.Velocities.Set(0, 1)
		a.Velocities.Set(0, 2)
	}
}

// CalculateJointAngles refreshes Angles from the current positions.
func (a *ArmState) CalculateJointAngles() {
	a.Angles = a.params.Converter.JointAngles(a.Positions.Values())
}
