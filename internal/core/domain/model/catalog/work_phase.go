package catalog

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// WorkPhase is the coarse execution stage of a work order. Each phase owns a
// progress-percentage range; a work order's progress percentage must always
// lie within the range of its current phase.
//
// Phase ranges:
//
//	PLANNING     0–10
//	PREPARATION 11–20
//	EXECUTION   21–80
//	TESTING     81–95
//	COMPLETION  96–99
//	CLOSURE    100
type WorkPhase int

const (
	// WorkPhaseUnknown represents an invalid or undefined phase.
	WorkPhaseUnknown WorkPhase = iota

	// Planning is the initial phase while the work is being planned.
	Planning

	// Preparation covers staging of workers, materials, and site access.
	Preparation

	// Execution is the main phase in which the work is performed.
	Execution

	// Testing covers verification of the performed work.
	Testing

	// Completion covers finishing touches before closure.
	Completion

	// Closure is the final phase; it owns exactly 100 percent.
	Closure
)

type progressRange struct {
	min int
	max int
}

func getWorkPhaseStrings() map[WorkPhase]string {
	return map[WorkPhase]string{
		WorkPhaseUnknown: "UNKNOWN",
		Planning:         "PLANNING",
		Preparation:      "PREPARATION",
		Execution:        "EXECUTION",
		Testing:          "TESTING",
		Completion:       "COMPLETION",
		Closure:          "CLOSURE",
	}
}

func getWorkPhaseRanges() map[WorkPhase]progressRange {
	return map[WorkPhase]progressRange{
		Planning:    {min: 0, max: 10},
		Preparation: {min: 11, max: 20},
		Execution:   {min: 21, max: 80},
		Testing:     {min: 81, max: 95},
		Completion:  {min: 96, max: 99},
		Closure:     {min: 100, max: 100},
	}
}

// WorkPhaseFromString parses the persisted string form of a phase.
func WorkPhaseFromString(s string) (WorkPhase, error) {
	for phase, str := range getWorkPhaseStrings() {
		if str == s && phase != WorkPhaseUnknown {
			return phase, nil
		}
	}
	return WorkPhaseUnknown, errs.NewValueIsInvalidErrorWithCause(
		"workPhase", fmt.Errorf("%q is not a valid work phase", s))
}

// PhaseForProgress returns the phase that owns the given progress percentage.
func PhaseForProgress(percentage int) (WorkPhase, error) {
	if percentage < 0 || percentage > 100 {
		return WorkPhaseUnknown, errs.NewValueIsOutOfRangeError("progressPercentage", percentage, 0, 100)
	}
	for phase, r := range getWorkPhaseRanges() {
		if percentage >= r.min && percentage <= r.max {
			return phase, nil
		}
	}
	// Unreachable: the ranges cover 0..100 without gaps.
	return WorkPhaseUnknown, errs.NewValueIsInvalidError("progressPercentage")
}

// Validate checks if the WorkPhase value is valid.
func (p WorkPhase) Validate() error {
	if _, ok := getWorkPhaseRanges()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"workPhase", fmt.Errorf("%d is not a valid work phase", p))
	}
	return nil
}

// String returns the persisted name of the phase.
func (p WorkPhase) String() string {
	if str, ok := getWorkPhaseStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// ContainsProgress reports whether the percentage lies inside the phase's range.
func (p WorkPhase) ContainsProgress(percentage int) bool {
	r, ok := getWorkPhaseRanges()[p]
	return ok && percentage >= r.min && percentage <= r.max
}

// ProgressBounds returns the inclusive percentage range owned by the phase.
func (p WorkPhase) ProgressBounds() (minPct, maxPct int) {
	r := getWorkPhaseRanges()[p]
	return r.min, r.max
}

// Next returns the phase following p, or (WorkPhaseUnknown, false) for Closure.
func (p WorkPhase) Next() (WorkPhase, bool) {
	if p >= Planning && p < Closure {
		return p + 1, true
	}
	return WorkPhaseUnknown, false
}

// Previous returns the phase preceding p, or (WorkPhaseUnknown, false) for Planning.
func (p WorkPhase) Previous() (WorkPhase, bool) {
	if p > Planning && p <= Closure {
		return p - 1, true
	}
	return WorkPhaseUnknown, false
}
