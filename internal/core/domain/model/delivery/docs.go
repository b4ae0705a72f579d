// Package delivery provides the central aggregate of the marketplace: the
// delivery record and its lifecycle state machine.
//
// The package includes:
//   - Delivery: the aggregate root created by a commerce and fulfilled by a courier
//   - Status: the lifecycle state machine (pending → collected → in_progress → completed)
//   - ID: the delivery identifier value object (DEL-<ms epoch>)
//
// Key business rules:
//   - The courier earning is fixed at creation as 70% of the delivery value
//     and is never recomputed
//   - Courier identity fields stay unset until a successful collection
//   - Status transitions are strictly forward; every transition method
//     validates the current status before mutating anything
//
// A cancelled status exists for display purposes only; no operation in this
// package produces it.
package delivery
