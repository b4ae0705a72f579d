package delivery

import (
	"deliveryconnect/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with strictly forward transitions:
//
//	Pending ──> Collected ──> InProgress ──> Completed
//
// Cancelled is a displayable terminal value referenced by dashboards but no
// transition in this package produces it.
//
// Status is a value object that validates state transitions and provides the
// wire/string representation used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created delivery,
	// waiting for a courier to scan its handoff code.
	Pending

	// Collected indicates a courier has scanned the handoff code and is
	// authorized to carry the delivery, but is not yet en route.
	Collected

	// InProgress indicates the courier is en route to the destination.
	InProgress

	// Completed indicates the delivery reached its destination.
	// This is a final state with no further transitions.
	Completed

	// Cancelled is display-only; no operation transitions into it.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Collected:  "collected",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Collected:  "collected",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status ("pending", "collected",
// "in_progress", "completed", "cancelled"). Implements fmt.Stringer and is
// safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a Status.
// Used when reconstructing deliveries from storage and decoded payloads.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Collect transitions the status to Collected.
//
// The only valid source status is Pending; anything else means the delivery
// was already claimed (or never claimable) and the transition is rejected,
// which is what prevents double collection of the same handoff code.
func (s Status) Collect() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("collect delivery", s.String())
	}

	return Collected, nil
}

// StartTransit transitions the status to InProgress.
//
// Valid only from Collected. Fired by the deferred follow-up that separates
// "authorized to collect" from "physically moving".
func (s Status) StartTransit() (Status, error) {
	if s != Collected {
		return 0, errs.NewInvalidStateError("start transit", s.String())
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid only from InProgress: a delivery must have been actively en route to
// be completed. Completing a still-pending, merely collected, or already
// completed delivery is rejected.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateError("complete delivery", s.String())
	}

	return Completed, nil
}
