// Package motion holds the arm's motion state: positions, the Joint/Cartesian
// state machine, joint-angle conversion and the inverse-kinematics client.
//
// Slots and joints are numbered 1 to 5 at the package boundary; storage is a
// plain zero-based array.
package motion

// NumSlots is the number of actuator slots on the arm.
const NumSlots = 5

// Vector5 holds one value per actuator slot.
type Vector5 [NumSlots]float64

func validSlot(slot int) bool {
	return slot >= 1 && slot <= NumSlots
}

// Get returns the value at a 1-based slot, or -1 if the slot is invalid.
func (v Vector5) Get(slot int) float64 {
	if !validSlot(slot) {
		return -1
	}
	return v[slot-1]
}

// Set stores f at a 1-based slot. Invalid slots are ignored.
func (v *Vector5) Set(f float64, slot int) {
	if !validSlot(slot) {
		return
	}
	v[slot-1] = f
}

// Slice returns the values as a slice, in slot order.
func (v Vector5) Slice() []float64 {
	out := make([]float64, NumSlots)
	copy(out, v[:])
	return out
}

// Flags5 holds one flag per actuator slot.
type Flags5 [NumSlots]bool

// SetAll sets every flag to b.
func (f *Flags5) SetAll(b bool) {
	for i := range f {
		f[i] = b
	}
}

// Vector3 is a Cartesian x/y/z triple.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Range is a half-open value range [Min, Max).
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Wrap adds or subtracts one span when v lies outside the range. A value
// within one span of the range comes back inside it. Anything further out
// moves one span closer and stays outside.
func (r Range) Wrap(v float64) float64 {
	if v >= r.Max {
		v -= r.Span()
	} else if v < r.Min {
		v += r.Span()
	}
	// float rounding can land exactly on Max after adding a span
	if v == r.Max {
		return r.Min
	}
	return v
}

// PositionVector is the cumulative position of each actuator. Values written
// by Add wrap around the position range like a continuously rotating shaft.
type PositionVector struct {
	values Vector5
	limits Range
}

// NewPositionVector returns a zeroed position vector with the given range.
func NewPositionVector(limits Range) PositionVector {
	return PositionVector{limits: limits}
}

// Set overwrites every slot. Feedback is trusted, so no range check is made.
func (p *PositionVector) Set(values Vector5) {
	p.values = values
}

// Add adds delta to a 1-based slot and wraps the result into the range.
// Invalid slots are ignored.
func (p *PositionVector) Add(delta float64, slot int) {
	if !validSlot(slot) {
		return
	}
	p.values[slot-1] = p.limits.Wrap(p.values[slot-1] + delta)
}

// Get returns the position at a 1-based slot, or -1 if the slot is invalid.
func (p PositionVector) Get(slot int) float64 {
	return p.values.Get(slot)
}

// Values returns a copy of all positions.
func (p PositionVector) Values() Vector5 {
	return p.values
}

// Limits returns the position range.
func (p PositionVector) Limits() Range {
	return p.limits
}
