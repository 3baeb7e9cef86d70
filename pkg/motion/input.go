package motion

import (
	"errors"
	"fmt"
)

// ErrMapping is returned when a joystick sample is too short for the
// configured axis or button indices.
var ErrMapping = errors.New("joystick mapping out of range")

// Input is one operator sample: two 2-axis sticks and the three buttons the
// state machine reacts to. Axes are expected in [-1, 1].
type Input struct {
	LeftVertical    float64
	LeftHorizontal  float64
	RightVertical   float64
	RightHorizontal float64

	SwitchMode bool
	NextJoint  bool
	PrevJoint  bool
}

// Mapping holds the joystick indices of each control.
type Mapping struct {
	LeftJoyHori  int `json:"left_joy_hori"`
	LeftJoyVert  int `json:"left_joy_vert"`
	RightJoyHori int `json:"right_joy_hori"`
	RightJoyVert int `json:"right_joy_vert"`

	PrevJoint  int `json:"prev_joint"`
	SwitchMode int `json:"switch_mode"`
	NextJoint  int `json:"next_joint"`
}

// DefaultMapping matches a standard gamepad as reported by the Linux joystick
// driver.
func DefaultMapping() Mapping {
	return Mapping{
		LeftJoyHori:  0,
		LeftJoyVert:  1,
		RightJoyHori: 2,
		RightJoyVert: 3,
		PrevJoint:    1,
		SwitchMode:   2,
		NextJoint:    3,
	}
}

// Input builds an Input from raw axes and buttons. A button counts as
// pressed when its value is 1.
func (m Mapping) Input(axes []float64, buttons []int) (Input, error) {
	axis := func(i int) (float64, error) {
		if i < 0 || i >= len(axes) {
			return 0, fmt.Errorf("%w: axis %d of %d", ErrMapping, i, len(axes))
		}
		return axes[i], nil
	}
	button := func(i int) (bool, error) {
		if i < 0 || i >= len(buttons) {
			return false, fmt.Errorf("%w: button %d of %d", ErrMapping, i, len(buttons))
		}
		return buttons[i] == 1, nil
	}

	var (
		in  Input
		err error
	)
	if in.LeftVertical, err = axis(m.LeftJoyVert); err != nil {
		return Input{}, err
	}
	if in.LeftHorizontal, err = axis(m.LeftJoyHori); err != nil {
		return Input{}, err
	}
	if in.RightVertical, err = axis(m.RightJoyVert); err != nil {
		return Input{}, err
	}
	if in.RightHorizontal, err = axis(m.RightJoyHori); err != nil {
		return Input{}, err
	}
	if in.SwitchMode, err = button(m.SwitchMode); err != nil {
		return Input{}, err
	}
	if in.NextJoint, err = button(m.NextJoint); err != nil {
		return Input{}, err
	}
	if in.PrevJoint, err = button(m.PrevJoint); err != nil {
		return Input{}, err
	}
	return in, nil
}
