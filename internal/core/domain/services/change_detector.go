package services

import (
	"tableside/internal/core/domain/model/order"
)

// Observation is what a tracking client last saw for one order: the order's
// identifier and its status at that read. Clients hold their own observations;
// the detector keeps no per-client state.
type Observation struct {
	OrderID int64
	Status  order.Status
}

// StatusChanged is emitted when an order's status differs from the client's
// last observation. The UI collaborator turns this into a toast or a sound.
type StatusChanged struct {
	OrderID int64
	From    order.Status
	To      order.Status
}

// NewOrdersArrived is emitted when the total number of orders grew since the
// client's last observed count. Drives the staff dashboard's new-order cue.
type NewOrdersArrived struct {
	Count int
}

// ChangeDetector is a domain service that diffs a client's previous
// observation against a current order store read. It is a pure function over
// two snapshots: all state lives with the caller, which makes the detector
// trivially testable and safe to share across sessions.
//
// Example usage:
//
//	detector := services.NewChangeDetector(stages)
//	event, err := detector.DetectStatusChange(prev, current.ID(), current.Status())
//	if err != nil {
//	    return err
//	}
//	if event != nil {
//	    // notify the guest that the kitchen moved their order along
//	}
type ChangeDetector struct {
	stages order.StageSequence
}

// NewChangeDetector creates a ChangeDetector for the configured stage sequence.
func NewChangeDetector(stages order.StageSequence) (ChangeDetector, error) {
	if err := stages.Validate(); err != nil {
		return ChangeDetector{}, err
	}

	return ChangeDetector{stages: stages}, nil
}

// DetectStatusChange compares the client's previous observation with the
// current read of the same order.
//
// Returns at most one StatusChanged event:
//   - nil event when there is no previous observation (first poll)
//   - nil event when the observation belongs to a different order
//   - nil event when the status is unchanged
//
// The current status must belong to the configured stage sequence; an
// unknown label is a configuration mismatch, not a change.
func (d ChangeDetector) DetectStatusChange(prev *Observation, orderID int64, current order.Status) (*StatusChanged, error) {
	if _, err := d.stages.Index(current); err != nil {
		return nil, err
	}

	if prev == nil || prev.OrderID != orderID {
		return nil, nil
	}

	if prev.Status == current {
		return nil, nil
	}

	return &StatusChanged{
		OrderID: orderID,
		From:    prev.Status,
		To:      current,
	}, nil
}

// DetectNewOrders compares the previously observed order count with the
// current one. Returns a NewOrdersArrived event carrying the number of
// arrivals when the count grew, nil otherwise. A shrinking count (orders
// cleared) is not an arrival.
func (d ChangeDetector) DetectNewOrders(prevCount, currentCount int) *NewOrdersArrived {
	if currentCount <= prevCount {
		return nil
	}

	return &NewOrdersArrived{Count: currentCount - prevCount}
}
