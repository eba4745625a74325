package queries

import (
	"time"

	"github.com/google/uuid"
)

type BalanceView struct {
	UserID  uuid.UUID
	Balance int64
}

type HistoryEntryView struct {
	ID           uuid.UUID
	Type         string
	Amount       int64
	Description  string
	OrderID      *string
	BalanceAfter int64
	OccurredAt   time.Time
}

// HistoryPage is one reverse-chronological page. HasMore uses the
// page-size-equality heuristic: a full page implies more may exist, so the
// final page of an exactly-divisible history reports one extra empty page.
type HistoryPage struct {
	Entries    []HistoryEntryView
	NextCursor string
	HasMore    bool
}

type UserCouponView struct {
	ID             uuid.UUID
	CouponID       uuid.UUID
	Name           string
	Type           string
	Value          float64
	MinOrderAmount *float64
	Status         string
	IssuedDate     time.Time
	UsedDate       *time.Time
	ExpiredDate    *time.Time
	OrderID        *string
	ExpiryDate     time.Time
}

type OrderView struct {
	ID           string
	UserID       uuid.UUID
	Status       string
	FinalAmount  int64
	UsedPoints   int64
	UserCouponID *uuid.UUID
	CancelReason *string
	CancelledAt  *time.Time
}
