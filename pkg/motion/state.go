package motion

// Mode selects how operator input drives the arm.
type Mode int

const (
	// Joint drives a single actuator directly from the stick.
	Joint Mode = iota
	// Cartesian accumulates an end-effector displacement for the solver.
	Cartesian
)

func (m Mode) String() string {
	switch m {
	case Joint:
		return "Joint"
	case Cartesian:
		return "Cartesian"
	default:
		return "Unknown"
	}
}

// Transition reports what a call to Apply changed.
type Transition struct {
	ModeChanged  bool
	JointChanged bool
}

// State is the operator-facing state machine: the active mode, the joint
// under control and the pending commands.
//
// In Joint mode the stick sets JointCommand directly. In Cartesian mode the
// sticks add to CartesianCommand on every application, so a held stick keeps
// growing the command until the solver consumes it.
type State struct {
	maxVel float64

	mode         Mode
	joint        int
	jointCommand float64
	cartesian    Vector3

	last Input
}

// NewState returns a state in Joint mode controlling joint 1.
func NewState(maxVel float64) *State {
	return &State{
		maxVel: maxVel,
		mode:   Joint,
		joint:  1,
	}
}

// Mode returns the active mode.
func (s *State) Mode() Mode { return s.mode }

// ActiveJoint returns the 1-based joint under control.
func (s *State) ActiveJoint() int { return s.joint }

// JointCommand returns the velocity requested for the active joint.
func (s *State) JointCommand() float64 { return s.jointCommand }

// CartesianCommand returns the accumulated Cartesian displacement.
func (s *State) CartesianCommand() Vector3 { return s.cartesian }

// ToggleMode flips between Joint and Cartesian and returns the new mode.
func (s *State) ToggleMode() Mode {
	if s.mode == Cartesian {
		s.mode = Joint
	} else {
		s.mode = Cartesian
	}
	return s.mode
}

// SetMode forces the mode.
func (s *State) SetMode(m Mode) {
	s.mode = m
}

// NextJoint moves control to the next joint, wrapping 5 to 1.
func (s *State) NextJoint() int {
	s.joint++
	if s.joint > NumSlots {
		s.joint = 1
	}
	return s.joint
}

// PrevJoint moves control to the previous joint, wrapping 1 to 5.
func (s *State) PrevJoint() int {
	s.joint--
	if s.joint < 1 {
		s.joint = NumSlots
	}
	return s.joint
}

// SetActiveJoint selects a joint directly. It returns false and leaves the
// state alone if joint is outside 1-5.
func (s *State) SetActiveJoint(joint int) bool {
	if !validSlot(joint) {
		return false
	}
	s.joint = joint
	return true
}

// Apply feeds one operator input sample through the state machine. Buttons
// act on their rising edge only; holding a button changes nothing after the
// first application.
func (s *State) Apply(in Input) Transition {
	var t Transition

	if in.SwitchMode && !s.last.SwitchMode {
		s.ToggleMode()
		t.ModeChanged = true
	}

	switch s.mode {
	case Joint:
		if in.NextJoint && !s.last.NextJoint {
			s.NextJoint()
			t.JointChanged = true
		}
		if in.PrevJoint && !s.last.PrevJoint {
			s.PrevJoint()
			t.JointChanged = true
		}
		s.jointCommand = in.LeftVertical * s.maxVel

	case Cartesian:
		s.cartesian.X += in.LeftVertical * s.maxVel
		s.cartesian.Y += in.LeftHorizontal * s.maxVel
		s.cartesian.Z += in.RightVertical * s.maxVel
	}

	s.last = in
	return t
}

// Override is a mode and joint selection pushed by the operator GUI.
type Override struct {
	Joint           bool
	Cartesian       bool
	JointControlled int
}

// ApplyOverride applies a GUI override. Joint takes precedence over
// Cartesian; an out-of-range joint is ignored. It reports whether the
// joint selection was accepted.
func (s *State) ApplyOverride(o Override) bool {
	if o.Joint {
		s.mode = Joint
	} else if o.Cartesian {
		s.mode = Cartesian
	}
	return s.SetActiveJoint(o.JointControlled)
}
