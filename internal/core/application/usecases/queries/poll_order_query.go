package queries

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrPollOrderQueryIsNotConstructed = errors.New(
		"PollOrderQuery must be created via NewPollOrderQuery constructor",
	)
)

// PollOrderQuery checks one order for a status change since the caller's last
// look. The guest's device keeps the previously seen status and sends it with
// every poll; the store itself stays stateless about who is watching.
//
// Example:
//
//	query, err := NewPollOrderQuery(1001, order.Pending)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	if resp.Changed != nil {
//	    fmt.Printf("order #%d moved from %s to %s\n",
//	        resp.ID, resp.Changed.From, resp.Changed.To)
//	}
type PollOrderQuery struct { //nolint:recvcheck //using for validation
	orderID  int64
	lastSeen order.Status

	guard guard.ConstructorGuard
}

// NewPollOrderQuery creates a poll for one order.
// lastSeen may be empty on the first poll, when the caller has seen nothing
// yet; an empty lastSeen never reports a change.
func NewPollOrderQuery(orderID int64, lastSeen order.Status) (PollOrderQuery, error) {
	pollQuery := PollOrderQuery{
		lastSeen: lastSeen,
		guard:    guard.NewConstructorGuard(),
	}

	if err := pollQuery.setOrderID(orderID); err != nil {
		return PollOrderQuery{}, err
	}

	return pollQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrPollOrderQueryIsNotConstructed if validation fails.
func (q PollOrderQuery) Validate() error {
	return q.guard.Validate(ErrPollOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the polled order.
func (q PollOrderQuery) OrderID() int64 {
	return q.orderID
}

// LastSeen returns the status the caller saw on the previous poll.
func (q PollOrderQuery) LastSeen() order.Status {
	return q.lastSeen
}

func (q *PollOrderQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	q.orderID = orderID
	return nil
}

// PollOrderQueryResponse represents the poll outcome. Changed is nil when the
// status is the same one the caller already saw.
type PollOrderQueryResponse struct {
	ID       int64
	Status   order.Status
	Progress float64
	Changed  *services.StatusChanged
}
