// Package material implements the material ledger of a work order: per-line
// quantity tracking (required, allocated, used, returned, waste), procurement
// progress, and the append-only stock deduction log.
//
// The central invariant, checked by every mutating operation before any field
// changes, is
//
//	used + returned + waste <= allocated <= required
//
// and quantities only grow; the sole way to hand stock back is an explicit
// return or waste operation. Every use() emits exactly one DeductionRecord
// snapshotting warehouse stock before and after, and records are never edited
// afterwards: a reversal writes a new compensating record.
package material
