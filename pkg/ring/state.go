package ring

import (
	"fmt"

	"github.com/go-drift/circulargraph/pkg/errors"
)

// Default values used when a configuration leaves them unset.
const (
	DefaultMaxValue     = 100
	DefaultCurrentValue = 100
)

// FullSweep is the sweep angle of a complete ring, in degrees.
const FullSweep = 360.0

// MaxPolicy decides what SetMaxValue does when the new maximum is below
// the current value.
type MaxPolicy int

const (
	// MaxPolicyClamp lowers the current value to the new maximum.
	MaxPolicyClamp MaxPolicy = iota
	// MaxPolicyOverflow keeps the current value, so the sweep may exceed
	// a full turn until the value is set again.
	MaxPolicyOverflow
	// MaxPolicyReject refuses the new maximum and leaves the state as is.
	MaxPolicyReject
)

func (p MaxPolicy) String() string {
	switch p {
	case MaxPolicyClamp:
		return "clamp"
	case MaxPolicyOverflow:
		return "overflow"
	case MaxPolicyReject:
		return "reject"
	default:
		return fmt.Sprintf("MaxPolicy(%d)", int(p))
	}
}

// ParseMaxPolicy parses the names returned by MaxPolicy.String.
// The empty string selects MaxPolicyClamp.
func ParseMaxPolicy(s string) (MaxPolicy, error) {
	switch s {
	case "", "clamp":
		return MaxPolicyClamp, nil
	case "overflow":
		return MaxPolicyOverflow, nil
	case "reject":
		return MaxPolicyReject, nil
	default:
		return MaxPolicyClamp, fmt.Errorf("unknown max policy %q", s)
	}
}

// SweepAngle returns current/max as degrees of a full turn.
// A non-positive max yields 0 rather than NaN or Inf.
func SweepAngle(current, max int) float64 {
	if max <= 0 {
		return 0
	}
	return float64(current) / float64(max) * FullSweep
}

// State is the value model of a ring.
//
// The zero State is not valid; use NewState. Outside MaxPolicyOverflow,
// 0 <= CurrentValue <= MaxValue holds after every mutation.
type State struct {
	maxValue     int
	currentValue int
}

// NewState validates max and clamps current into [0, max].
func NewState(max, current int) (State, error) {
	if max < 1 {
		return State{}, errors.Invalid("ring.NewState", "max_value", max, errors.ErrInvalidMax)
	}
	return State{maxValue: max, currentValue: clamp(current, max)}, nil
}

// MaxValue returns the upper bound.
func (s State) MaxValue() int {
	return s.maxValue
}

// CurrentValue returns the stored progress value.
func (s State) CurrentValue() int {
	return s.currentValue
}

// SweepAngle returns the fill arc extent in degrees.
func (s State) SweepAngle() float64 {
	return SweepAngle(s.currentValue, s.maxValue)
}

// Fraction returns current/max.
func (s State) Fraction() float64 {
	return s.SweepAngle() / FullSweep
}

// SetCurrentValue stores v clamped into [0, max]. It reports whether the
// stored value changed.
func (s *State) SetCurrentValue(v int) bool {
	v = clamp(v, s.maxValue)
	if v == s.currentValue {
		return false
	}
	s.currentValue = v
	return true
}

// SetMaxValue stores a new maximum, applying policy when it falls below the
// current value. It reports whether anything changed.
func (s *State) SetMaxValue(v int, policy MaxPolicy) (bool, error) {
	if v < 1 {
		return false, errors.Invalid("ring.SetMaxValue", "max_value", v, errors.ErrInvalidMax)
	}
	if v == s.maxValue {
		return false, nil
	}
	if v < s.currentValue {
		switch policy {
		case MaxPolicyReject:
			return false, errors.Invalid("ring.SetMaxValue", "max_value", v, errors.ErrMaxBelowValue)
		case MaxPolicyClamp:
			s.currentValue = v
		}
	}
	s.maxValue = v
	return true, nil
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
