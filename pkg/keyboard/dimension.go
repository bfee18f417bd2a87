package keyboard

import "math"

// DimensionKind discriminates how a declared size attribute is expressed.
type DimensionKind int

const (
	// DimensionAbsent marks an attribute that was not declared.
	DimensionAbsent DimensionKind = iota
	// DimensionAbsolute is a size in pixels.
	DimensionAbsolute
	// DimensionFraction is a size proportional to a base measurement.
	DimensionFraction
)

// Dimension is a declared size attribute before resolution.
type Dimension struct {
	Kind  DimensionKind
	Value float64
}

// Pixels returns an absolute Dimension.
func Pixels(px int) Dimension {
	return Dimension{Kind: DimensionAbsolute, Value: float64(px)}
}

// Fraction returns a proportional Dimension; 0.10 means 10% of the base.
func Fraction(f float64) Dimension {
	return Dimension{Kind: DimensionFraction, Value: f}
}

// Resolve turns a declared dimension into pixels. Absent attributes and
// unknown kinds resolve to fallback; fractions round against base.
func (d Dimension) Resolve(base, fallback int) int {
	switch d.Kind {
	case DimensionAbsolute:
		return int(d.Value)
	case DimensionFraction:
		return int(math.Round(d.Value * float64(base)))
	default:
		return fallback
	}
}
