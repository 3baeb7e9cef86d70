package motion

// AngleConverter maps raw actuator positions to joint angles in degrees.
//
// Actuators 1 and 2 drive one differential joint: joint 1 follows their sum
// and joint 2 their difference. Joints 3 to 5 map straight through.
//
// In.Max must differ from In.Min and Out.Max from Out.Min; Config.Validate
// rejects degenerate ranges, nothing here checks again.
type AngleConverter struct {
	In  Range `json:"in"`
	Out Range `json:"out"`
}

// DefaultAngleConverter maps one revolution of encoder ticks to 0-360 degrees.
func DefaultAngleConverter() AngleConverter {
	return AngleConverter{
		In:  Range{Min: 0, Max: 4096},
		Out: Range{Min: 0, Max: 360},
	}
}

// Convert remaps x from the input range to the output range.
func (c AngleConverter) Convert(x float64) float64 {
	return (x-c.In.Min)/c.In.Span()*c.Out.Span() + c.Out.Min
}

// Invert maps an angle back to raw units.
func (c AngleConverter) Invert(deg float64) float64 {
	return (deg-c.Out.Min)/c.Out.Span()*c.In.Span() + c.In.Min
}

// JointAngles returns the joint angles for the given actuator positions.
func (c AngleConverter) JointAngles(pos Vector5) Vector5 {
	return Vector5{
		c.Convert(pos[0] + pos[1]),
		c.Convert(pos[0] - pos[1]),
		c.Convert(pos[2]),
		c.Convert(pos[3]),
		c.Convert(pos[4]),
	}
}

// Positions is the inverse of JointAngles.
func (c AngleConverter) Positions(angles Vector5) Vector5 {
	sum := c.Invert(angles[0])
	diff := c.Invert(angles[1])
	return Vector5{
		(sum + diff) / 2,
		(sum - diff) / 2,
		c.Invert(angles[2]),
		c.Invert(angles[3]),
		c.Invert(angles[4]),
	}
}
