// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Callers match with errors.Is; call sites wrap with "Type.Method(args): %w".

package vector

import "errors"

var (
	// ErrOutOfRange indicates an element index outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrBadLength indicates a requested length outside [1, MaxLen].
	ErrBadLength = errors.New("vector: invalid length")

	// ErrLengthMismatch indicates operands of different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrInvalidAxis indicates an Axis value other than AxisX, AxisY or AxisZ.
	ErrInvalidAxis = errors.New("vector: invalid elementary axis")

	// ErrIteratorEnd indicates a dereference of an iterator sitting at End.
	ErrIteratorEnd = errors.New("vector: iterator at end")
)
