package catalog

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// ApprovalStatus tracks the approval progress of a work order, independently
// of its work status. Approve and reject decisions are only allowed while the
// approval status is ApprovalPending or RequiresRevision.
type ApprovalStatus int

const (
	// ApprovalStatusUnknown represents an invalid or undefined approval status.
	ApprovalStatusUnknown ApprovalStatus = iota

	// ApprovalPending means the work order awaits an approval decision.
	ApprovalPending

	// ApprovalApproved means the work order was approved.
	ApprovalApproved

	// ApprovalRejected means the work order was rejected.
	ApprovalRejected

	// RequiresRevision means the work order must be revised and resubmitted
	// before a decision can be made.
	RequiresRevision
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalStatusUnknown: "UNKNOWN",
		ApprovalPending:       "PENDING",
		ApprovalApproved:      "APPROVED",
		ApprovalRejected:      "REJECTED",
		RequiresRevision:      "REQUIRES_REVISION",
	}
}

// ApprovalStatusFromString parses the persisted string form.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, str := range getApprovalStatusStrings() {
		if str == s && status != ApprovalStatusUnknown {
			return status, nil
		}
	}
	return ApprovalStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"approvalStatus", fmt.Errorf("%q is not a valid approval status", s))
}

// Validate checks if the ApprovalStatus value is valid.
func (s ApprovalStatus) Validate() error {
	if _, ok := getApprovalStatusStrings()[s]; !ok || s == ApprovalStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"approvalStatus", fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the persisted name of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsDecidable reports whether an approve or reject decision may be recorded.
func (s ApprovalStatus) IsDecidable() bool {
	return s == ApprovalPending || s == RequiresRevision
}
