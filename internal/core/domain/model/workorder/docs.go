// Package workorder contains the WorkOrder aggregate root.
//
// A WorkOrder tracks a maintenance or repair job from draft through approval,
// scheduling, execution, and closure. The aggregate owns its status machine,
// the phase/progress binding, approval metadata, schedule and cost fields,
// and closure bookkeeping. Worker assignments, material lines, and progress
// entries are owned child entities managed by their respective packages and
// reference the work order by id.
//
// The aggregate never mutates its status directly; every change goes through
// the catalog.WorkStatus transition table, so an illegal move surfaces as a
// StateTransitionError before any field is touched.
package workorder
