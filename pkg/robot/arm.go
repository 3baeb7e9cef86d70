package robot

import (
	"context"
	"fmt"

	"github.com/hipsterbrown/feetech-servo/feetech"

	"github.com/gwillem/armus/pkg/motion"
)

// Arm is the servo bus of a physical arm.
type Arm struct {
	bus         *feetech.Bus
	group       *feetech.ServoGroup
	calibration Calibration
}

// NewArm opens the servo bus on port.
func NewArm(port string, cal Calibration) (*Arm, error) {
	bus, err := feetech.NewBus(feetech.BusConfig{
		Port:     port,
		BaudRate: 1_000_000,
		Protocol: feetech.ProtocolSTS,
	})
	if err != nil {
		return nil, fmt.Errorf("open bus: %w", err)
	}

	group := feetech.NewServoGroupByIDs(bus, cal.MotorIDs()...)

	return &Arm{
		bus:         bus,
		group:       group,
		calibration: cal,
	}, nil
}

// Close closes the arm's bus connection.
func (a *Arm) Close() error {
	return a.bus.Close()
}

// Enable enables torque on all servos.
func (a *Arm) Enable(ctx context.Context) error {
	return a.group.EnableAll(ctx)
}

// Disable disables torque on all servos.
func (a *Arm) Disable(ctx context.Context) error {
	return a.group.DisableAll(ctx)
}

// ReadPositions reads the position of every motor, in slot order.
func (a *Arm) ReadPositions(ctx context.Context) (motion.Vector5, error) {
	var out motion.Vector5

	rawPositions, err := a.group.Positions(ctx)
	if err != nil {
		return out, fmt.Errorf("read positions: %w", err)
	}

	for id, raw := range rawPositions {
		name, cal, ok := a.calibration.ByID(id)
		if !ok {
			continue
		}
		out.Set(cal.ToPosition(raw), Slot(name))
	}

	return out, nil
}

// WritePositions sends target positions to every motor using sync write.
func (a *Arm) WritePositions(ctx context.Context, positions motion.Vector5) error {
	rawPositions := make(feetech.PositionMap, motion.NumSlots)
	for i, name := range AllMotors() {
		cal, ok := a.calibration[name]
		if !ok {
			continue
		}
		rawPositions[cal.ID] = cal.ToRaw(positions[i])
	}

	if err := a.group.SetPositions(ctx, rawPositions); err != nil {
		return fmt.Errorf("write positions: %w", err)
	}

	return nil
}
