package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotCancellable = errors.New("order cannot be cancelled in its current status")
	ErrMissingReason  = errors.New("cancellation reason is required")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Order carries only the slice of the order document this service reads:
// status gating and the financial side effects recorded at checkout.
type Order struct {
	ID           string
	UserID       uuid.UUID
	Status       Status
	FinalAmount  int64
	UsedPoints   int64
	UserCouponID *uuid.UUID
	CancelReason *string
	CancelledAt  *time.Time
}

// CanCancel reports whether automatic cancellation is permitted. Orders in
// preparation or later must go through the manual support path.
func (o *Order) CanCancel() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}

func (o *Order) Cancel(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrMissingReason
	}
	if !o.CanCancel() {
		return ErrNotCancellable
	}
	o.Status = StatusCancelled
	o.CancelReason = &reason
	o.CancelledAt = &now
	return nil
}
