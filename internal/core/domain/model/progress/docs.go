// Package progress implements the append-only progress journal of a work
// order: timestamped snapshots of percentage, phase, hours and quality
// checkpoints, plus the typed photo/document/tool references attached to
// each snapshot.
//
// The percentage never decreases across successive entries and cumulative
// hours is the running sum of hoursWorked; both are enforced at entry
// construction against the latest recorded entry.
package progress
