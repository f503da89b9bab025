// SPDX-License-Identifier: MIT

// Package transform: functional configuration for the angle-taking builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options only affect how angle arguments are read. Builders that take
//     no angle (Translate, Scale, LookAt, Orthographic) take no options.

package transform

import "github.com/katalvlaran/dmath/trig"

// DefaultUnit is the angle unit used when no WithUnit option is given.
const DefaultUnit = trig.DefaultUnit

// ---------- Internal panic messages (no magic strings) ----------

const panicUnitInvalid = "transform: WithUnit: unit must be trig.Degrees or trig.Radians"

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; read them
// through the accessor methods.
type Options struct {
	unit trig.Unit
}

// Unit returns the configured angle unit.
func (o Options) Unit() trig.Unit { return o.unit }

// WithUnit selects how angle arguments are interpreted.
// Panics if u is not a valid trig.Unit.
func WithUnit(u trig.Unit) Option {
	if !u.Valid() {
		panic(panicUnitInvalid)
	}

	return func(o *Options) { o.unit = u }
}

// WithRadians is shorthand for WithUnit(trig.Radians).
func WithRadians() Option { return WithUnit(trig.Radians) }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies opts in order over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{unit: DefaultUnit}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
