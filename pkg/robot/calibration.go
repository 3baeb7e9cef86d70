package robot

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// TicksPerRevolution is the encoder resolution of the STS servos.
const TicksPerRevolution = 4096

// MotorCalibration maps one servo's raw encoder ticks onto the arm's
// position units.
type MotorCalibration struct {
	ID           int `json:"id"`
	DriveMode    int `json:"drive_mode"`
	HomingOffset int `json:"homing_offset"`
}

// Calibration holds calibration data for all motors, keyed by motor name.
type Calibration map[MotorName]MotorCalibration

// DefaultCalibration assigns servo IDs 1-5 to motors 1-5 with no offset.
func DefaultCalibration() Calibration {
	cal := make(Calibration, len(AllMotors()))
	for i, name := range AllMotors() {
		cal[name] = MotorCalibration{ID: i + 1}
	}
	return cal
}

// LoadCalibration loads calibration data from a JSON file.
func LoadCalibration(path string) (Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calibration file: %w", err)
	}

	var raw map[string]MotorCalibration
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse calibration JSON: %w", err)
	}

	cal := make(Calibration, len(raw))
	for name, mc := range raw {
		cal[MotorName(name)] = mc
	}

	return cal, nil
}

// ToPosition converts raw servo ticks to a position in [0, TicksPerRevolution).
// Drive mode 1 reverses the direction of rotation.
func (c MotorCalibration) ToPosition(raw int) float64 {
	pos := raw - c.HomingOffset
	if c.DriveMode == 1 {
		pos = -pos
	}
	pos %= TicksPerRevolution
	if pos < 0 {
		pos += TicksPerRevolution
	}
	return float64(pos)
}

// ToRaw converts a position back to raw servo ticks.
func (c MotorCalibration) ToRaw(pos float64) int {
	p := int(math.Round(pos))
	if c.DriveMode == 1 {
		p = -p
	}
	raw := (p + c.HomingOffset) % TicksPerRevolution
	if raw < 0 {
		raw += TicksPerRevolution
	}
	return raw
}

// MotorIDs returns the servo IDs for all motors in the calibration.
func (c Calibration) MotorIDs() []int {
	ids := make([]int, 0, len(c))
	// Use AllMotors() to ensure consistent ordering
	for _, name := range AllMotors() {
		if mc, ok := c[name]; ok {
			ids = append(ids, mc.ID)
		}
	}
	return ids
}

// ByID returns motor name and calibration for a given servo ID.
func (c Calibration) ByID(id int) (MotorName, MotorCalibration, bool) {
	for name, mc := range c {
		if mc.ID == id {
			return name, mc, true
		}
	}
	return "", MotorCalibration{}, false
}

// Slot returns the 1-based slot of a motor, or 0 if the name is unknown.
func Slot(name MotorName) int {
	for i, n := range AllMotors() {
		if n == name {
			return i + 1
		}
	}
	return 0
}
