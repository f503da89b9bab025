// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Axis names one of the three elementary coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Valid reports whether a is AxisX, AxisY or AxisZ.
func (a Axis) Valid() bool { return a <= AxisZ }

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}
