// Package order contains the Order aggregate root. An order groups customer
// details (name, address, creation date) with the line items purchased.
// Orders are created through NewOrder for fresh instances or RestoreOrder
// when loading persisted state; both enforce the aggregate's invariants.
package order
