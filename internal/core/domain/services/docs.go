// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the work-order core. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - StockDeductor: pairs material consumption with its immutable stock
//     audit record, and builds compensating records for reversals
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
