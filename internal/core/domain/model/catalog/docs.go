// Package catalog holds the static vocabulary of the work-order domain:
// work status, work phase, priority, urgency, category, type, approval status,
// material and procurement statuses, assignment roles and statuses, and the
// transition tables that relate them.
//
// The package has no state of its own. Every state machine is expressed as an
// explicit transition table (from -> allowed to's) checked by one guard method
// per machine, so call sites never reimplement transition rules inline.
package catalog
