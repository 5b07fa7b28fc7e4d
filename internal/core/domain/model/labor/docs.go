// Package labor implements the labor ledger of a work order: worker
// assignments with their acceptance and performance lifecycle, immutable
// per-day labor entries, and the derived cost rollup.
//
// Labor entries are append-only; each one carries its computed line cost
// (regular*hourlyRate + overtime*overtimeRate) fixed at creation. The rollup
// is a pure function of the entry set and is recomputed rather than
// maintained, so totalLaborCost == sum(entry costs) holds by construction.
package labor
