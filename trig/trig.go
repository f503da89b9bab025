// SPDX-License-Identifier: MIT

// Package trig provides angle units and unit-aware trigonometric helpers.
//
// Rotation and projection builders accept angles in either degrees or
// radians; the unit is an explicit parameter here and an option at the
// transform level, defaulting to DefaultUnit.
package trig

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Unit selects how an angle value is interpreted.
type Unit uint8

const (
	// Degrees interprets angles as degrees (full turn = 360).
	Degrees Unit = iota
	// Radians interprets angles as radians (full turn = 2π).
	Radians
)

// DefaultUnit is the library-wide default angle unit.
const DefaultUnit = Degrees

// ErrUnknownUnit reports a Unit value outside {Degrees, Radians}.
var ErrUnknownUnit = errors.New("trig: unknown angle unit")

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool { return u == Degrees || u == Radians }

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// ParseUnit maps "deg"/"degrees"/"rad"/"radians" (and "") to a Unit.
// The empty string resolves to DefaultUnit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "":
		return DefaultUnit, nil
	case "deg", "degrees":
		return Degrees, nil
	case "rad", "radians":
		return Radians, nil
	default:
		return 0, fmt.Errorf("ParseUnit(%q): %w", s, ErrUnknownUnit)
	}
}

// DegToRad converts degrees to radians.
func DegToRad[T constraints.Float](deg T) T { return deg * math.Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg[T constraints.Float](rad T) T { return rad * 180 / math.Pi }

// ToRadians converts an angle expressed in unit u into radians.
// An invalid unit is a programming error and panics with ErrUnknownUnit.
func ToRadians[T constraints.Float](u Unit, angle T) T {
	switch u {
	case Degrees:
		return DegToRad(angle)
	case Radians:
		return angle
	default:
		panic(fmt.Errorf("ToRadians(%s): %w", u, ErrUnknownUnit))
	}
}

// Sin returns the sine of angle interpreted in unit u.
func Sin[T constraints.Float](u Unit, angle T) T {
	return T(math.Sin(float64(ToRadians(u, angle))))
}

// Cos returns the cosine of angle interpreted in unit u.
func Cos[T constraints.Float](u Unit, angle T) T {
	return T(math.Cos(float64(ToRadians(u, angle))))
}

// Tan returns the tangent of angle interpreted in unit u.
func Tan[T constraints.Float](u Unit, angle T) T {
	return T(math.Tan(float64(ToRadians(u, angle))))
}

// SinCos returns Sin and Cos of the same angle with one unit conversion.
func SinCos[T constraints.Float](u Unit, angle T) (sin, cos T) {
	s, c := math.Sincos(float64(ToRadians(u, angle)))

	return T(s), T(c)
}
