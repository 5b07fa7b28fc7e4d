package catalog

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// DeductionType classifies why warehouse stock was deducted.
type DeductionType int

const (
	// DeductionTypeUnknown represents an invalid or undefined type.
	DeductionTypeUnknown DeductionType = iota

	// DeductionWorkOrder is consumption by a work order.
	DeductionWorkOrder

	// DeductionMaintenance is consumption by routine maintenance.
	DeductionMaintenance

	// DeductionEmergency is consumption during an emergency response.
	DeductionEmergency

	// DeductionAdjustment is a manual stock correction.
	DeductionAdjustment

	// DeductionTransfer is a move between storage locations.
	DeductionTransfer
)

func getDeductionTypeStrings() map[DeductionType]string {
	return map[DeductionType]string{
		DeductionTypeUnknown: "UNKNOWN",
		DeductionWorkOrder:   "WORK_ORDER",
		DeductionMaintenance: "MAINTENANCE",
		DeductionEmergency:   "EMERGENCY",
		DeductionAdjustment:  "ADJUSTMENT",
		DeductionTransfer:    "TRANSFER",
	}
}

// DeductionTypeFromString parses the persisted string form.
func DeductionTypeFromString(s string) (DeductionType, error) {
	for deductionType, str := range getDeductionTypeStrings() {
		if str == s && deductionType != DeductionTypeUnknown {
			return deductionType, nil
		}
	}
	return DeductionTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deductionType", fmt.Errorf("%q is not a valid deduction type", s))
}

// Validate checks if the DeductionType value is valid.
func (t DeductionType) Validate() error {
	if _, ok := getDeductionTypeStrings()[t]; !ok || t == DeductionTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"deductionType", fmt.Errorf("%d is not a valid deduction type", t))
	}
	return nil
}

// String returns the persisted name of the type.
func (t DeductionType) String() string {
	if str, ok := getDeductionTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// DeductionStatus is the state of a stock-deduction record. Records are
// append-only; a reversal is expressed as a new compensating record, so
// the only in-place change ever made is the original record moving to
// REVERSED when its compensation is written.
type DeductionStatus int

const (
	// DeductionStatusUnknown represents an invalid or undefined status.
	DeductionStatusUnknown DeductionStatus = iota

	// DeductionPending means the deduction was recorded but not yet settled
	// against the stock store.
	DeductionPending

	// DeductionCompleted means the deduction settled successfully.
	DeductionCompleted

	// DeductionFailed means the deduction could not be settled.
	DeductionFailed

	// DeductionReversed means a compensating record undid this deduction.
	DeductionReversed
)

func getDeductionStatusStrings() map[DeductionStatus]string {
	return map[DeductionStatus]string{
		DeductionStatusUnknown: "UNKNOWN",
		DeductionPending:       "PENDING",
		DeductionCompleted:     "COMPLETED",
		DeductionFailed:        "FAILED",
		DeductionReversed:      "REVERSED",
	}
}

// DeductionStatusFromString parses the persisted string form.
func DeductionStatusFromString(s string) (DeductionStatus, error) {
	for status, str := range getDeductionStatusStrings() {
		if str == s && status != DeductionStatusUnknown {
			return status, nil
		}
	}
	return DeductionStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deductionStatus", fmt.Errorf("%q is not a valid deduction status", s))
}

// Validate checks if the DeductionStatus value is valid.
func (s DeductionStatus) Validate() error {
	if _, ok := getDeductionStatusStrings()[s]; !ok || s == DeductionStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"deductionStatus", fmt.Errorf("%d is not a valid deduction status", s))
	}
	return nil
}

// String returns the persisted name of the status.
func (s DeductionStatus) String() string {
	if str, ok := getDeductionStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
