package order

import (
	"fmt"
	"strings"

	"tableside/internal/pkg/errs"
)

// Status represents one stage in the order fulfillment workflow. Statuses are
// persisted and displayed by their label, so the type is a string rather than
// an opaque enum.
//
// Ordering between statuses is not a property of the Status itself: it is
// defined by the StageSequence the kitchen is configured with. This keeps the
// workflow a single state machine even though deployments label the third
// stage differently (Served vs Ready).
type Status string

const (
	// Pending is the initial status of every placed order.
	Pending Status = "Pending"

	// Preparing indicates the kitchen has started working on the order.
	Preparing Status = "Preparing"

	// Served indicates the order has been brought to the table.
	// This is the default label for the third stage.
	Served Status = "Served"

	// Ready is the alternative label for the third stage, used by
	// deployments where guests pick orders up at the counter.
	Ready Status = "Ready"

	// Completed is the terminal status. Completed orders leave the system
	// only through the bulk clear operation, never through a transition.
	Completed Status = "Completed"
)

// String returns the status label.
func (s Status) String() string {
	return string(s)
}

// ErrStageSequenceIsNotConstructed indicates that a StageSequence was not
// created through NewStageSequence or DefaultStageSequence.
var ErrStageSequenceIsNotConstructed = errs.NewValueIsRequiredError(
	"stage sequence must be created via NewStageSequence",
)

// StageSequence is the ordered list of statuses an order passes through.
// It is a value object configured once at startup and shared by every
// component that reasons about status ordering: transitions, progress
// reporting, and change detection.
//
// StageSequence follows these invariants:
//   - At least two stages
//   - No duplicate or empty stage labels
//   - The last stage is terminal
//
// Transitions move forward only. Skipping stages is allowed (a busy kitchen
// may mark a Pending order Completed directly), repeating the current stage
// is an idempotent no-op, and moving backward is always rejected.
//
// Example:
//
//	stages, err := order.NewStageSequence(order.Pending, order.Preparing, order.Ready, order.Completed)
//	if err != nil {
//	    // handle configuration error
//	}
//	allowed, _ := stages.TransitionAllowed(order.Pending, order.Preparing) // true
type StageSequence struct {
	stages []Status
}

// NewStageSequence creates a StageSequence from the given ordered labels.
// Returns an error if fewer than two stages are given, or if any label is
// empty or repeated.
func NewStageSequence(stages ...Status) (StageSequence, error) {
	if len(stages) < 2 {
		return StageSequence{}, errs.NewValueIsInvalidErrorWithCause("stage sequence",
			fmt.Errorf("%d stages is fewer than 2", len(stages)))
	}

	seen := make(map[Status]struct{}, len(stages))
	for _, stage := range stages {
		if strings.TrimSpace(string(stage)) == "" {
			return StageSequence{}, errs.NewValueIsRequiredError("stage label")
		}
		if _, ok := seen[stage]; ok {
			return StageSequence{}, errs.NewValueIsInvalidErrorWithCause("stage sequence",
				fmt.Errorf("stage %s appears more than once", stage))
		}
		seen[stage] = struct{}{}
	}

	copied := make([]Status, len(stages))
	copy(copied, stages)
	return StageSequence{stages: copied}, nil
}

// DefaultStageSequence returns the standard four-stage workflow:
// Pending, Preparing, Served, Completed.
func DefaultStageSequence() StageSequence {
	stages, err := NewStageSequence(Pending, Preparing, Served, Completed)
	if err != nil {
		panic(err)
	}
	return stages
}

// Validate ensures the StageSequence was created through a constructor.
func (s StageSequence) Validate() error {
	if len(s.stages) == 0 {
		return ErrStageSequenceIsNotConstructed
	}
	return nil
}

// Stages returns the ordered stage labels.
func (s StageSequence) Stages() []Status {
	stages := make([]Status, len(s.stages))
	copy(stages, s.stages)
	return stages
}

// First returns the initial stage every new order starts in.
func (s StageSequence) First() Status {
	return s.stages[0]
}

// Terminal returns the final stage of the sequence.
func (s StageSequence) Terminal() Status {
	return s.stages[len(s.stages)-1]
}

// Contains reports whether the status is part of this sequence.
func (s StageSequence) Contains(status Status) bool {
	_, err := s.Index(status)
	return err == nil
}

// Index returns the zero-based position of the status within the sequence.
// Returns a ValueIsInvalidError for statuses outside the sequence.
func (s StageSequence) Index(status Status) (int, error) {
	for i, stage := range s.stages {
		if stage == status {
			return i, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%s is not a configured stage", status))
}

// TransitionAllowed reports whether an order may move from current to next.
// A transition is allowed iff next is strictly forward of current, or equal
// to it (idempotent repeat). Returns an error if either status is outside
// the sequence.
func (s StageSequence) TransitionAllowed(current, next Status) (bool, error) {
	currentIdx, err := s.Index(current)
	if err != nil {
		return false, err
	}

	nextIdx, err := s.Index(next)
	if err != nil {
		return false, err
	}

	return nextIdx >= currentIdx, nil
}

// ProgressFraction returns how far through the workflow the status is, as a
// fraction in (0, 1]. The first stage of a four-stage sequence reports 0.25
// and the terminal stage reports 1.0. Returns an error for statuses outside
// the sequence.
func (s StageSequence) ProgressFraction(status Status) (float64, error) {
	idx, err := s.Index(status)
	if err != nil {
		return 0, err
	}

	return float64(idx+1) / float64(len(s.stages)), nil
}
