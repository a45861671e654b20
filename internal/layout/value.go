package layout

import "math"

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // No value; resolves to nothing
	UnitAuto                  // Size determined by content/flex
	UnitPoints                // Absolute points
	UnitPercent               // Percentage of the parent's size
)

// String returns the schema literal for the unit.
func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitPoints:
		return "points"
	case UnitPercent:
		return "percent"
	default:
		return "undefined"
	}
}

// Dimension is a layout length: Undefined, Auto, Points or Percent.
type Dimension struct {
	Value float32
	Unit  Unit
}

// Undefined returns a Dimension with no value.
func Undefined() Dimension {
	return Dimension{Unit: UnitUndefined}
}

// Auto returns a Dimension that should be computed from content/flex.
func Auto() Dimension {
	return Dimension{Unit: UnitAuto}
}

// Points returns a Dimension of an absolute number of points.
func Points(v float32) Dimension {
	return Dimension{Value: v, Unit: UnitPoints}
}

// Percent returns a Dimension relative to the parent's size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Dimension {
	return Dimension{Value: p, Unit: UnitPercent}
}

// Resolve computes the length against the parent's size.
// Undefined and Auto resolve to Undef, as does a percentage of an undefined parent.
func (d Dimension) Resolve(parent float32) float32 {
	switch d.Unit {
	case UnitPoints:
		return d.Value
	case UnitPercent:
		if IsUndef(parent) {
			return Undef
		}
		return parent * d.Value / 100.0
	default:
		return Undef
	}
}

// IsDefined returns true for Points and Percent.
func (d Dimension) IsDefined() bool {
	return d.Unit == UnitPoints || d.Unit == UnitPercent
}

// IsAuto returns true if this value should be computed from content/flex.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// Undef marks an unconstrained axis or unresolved length.
var Undef = float32(math.NaN())

// IsUndef reports whether v is the undefined marker.
func IsUndef(v float32) bool {
	return v != v
}

// orElse returns v, or fallback when v is undefined.
func orElse(v, fallback float32) float32 {
	if IsUndef(v) {
		return fallback
	}
	return v
}

// maybeMin returns min(v, limit), ignoring an undefined limit.
func maybeMin(v, limit float32) float32 {
	if IsUndef(v) || IsUndef(limit) {
		return v
	}
	if limit < v {
		return limit
	}
	return v
}

// maybeMax returns max(v, limit), ignoring an undefined limit.
func maybeMax(v, limit float32) float32 {
	if IsUndef(v) || IsUndef(limit) {
		return v
	}
	if limit > v {
		return limit
	}
	return v
}

// clamp restricts v to [minVal, maxVal]. If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float32) float32 {
	return maybeMax(maybeMin(v, maxVal), minVal)
}

// sub returns a - b, keeping undefined.
func sub(a, b float32) float32 {
	if IsUndef(a) {
		return Undef
	}
	return a - b
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
