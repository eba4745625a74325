package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotAvailable     = errors.New("user coupon is not in an available state")
	ErrNotUsed          = errors.New("user coupon is not in a used state")
	ErrOrderMismatch    = errors.New("user coupon was not used for this order")
	ErrMissingOrderID   = errors.New("order id is required to use a coupon")
	ErrAlreadyAvailable = errors.New("user coupon is already available")
)

// Instance is one user's redemption of one coupon master. There is at most
// one instance per (user, coupon); the store enforces this with a unique
// constraint and the service maps violations to AlreadyRegistered.
//
// State machine (one-way):
//
//	(none) --register/issue--> 사용가능
//	사용가능 --Use--> 사용완료        [terminal]
//	사용가능 --Expire--> 기간만료     [terminal]
type Instance struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CouponID    uuid.UUID
	Status      Status
	IssuedDate  time.Time
	UsedDate    *time.Time
	ExpiredDate *time.Time
	OrderID     *string
}

func NewInstance(userID, couponID uuid.UUID, issuedAt time.Time) *Instance {
	return &Instance{
		ID:         uuid.New(),
		UserID:     userID,
		CouponID:   couponID,
		Status:     StatusAvailable,
		IssuedDate: issuedAt,
	}
}

func (i *Instance) BelongsTo(userID uuid.UUID) bool {
	return i.UserID == userID
}

// Use transitions 사용가능 → 사용완료, stamping the consuming order.
func (i *Instance) Use(orderID string, now time.Time) error {
	if orderID == "" {
		return ErrMissingOrderID
	}
	if i.Status != StatusAvailable {
		return ErrNotAvailable
	}
	i.Status = StatusUsed
	i.UsedDate = &now
	i.OrderID = &orderID
	return nil
}

// Restore is the compensating inverse of Use. It only succeeds when the
// instance is 사용완료 and was consumed by exactly the order being cancelled;
// anything else means the usage was already compensated or the coupon was
// reused, and reverting would corrupt the ledger.
func (i *Instance) Restore(orderID string) error {
	if i.Status != StatusUsed {
		return ErrNotUsed
	}
	if i.OrderID == nil || *i.OrderID != orderID {
		return ErrOrderMismatch
	}
	i.Status = StatusAvailable
	i.UsedDate = nil
	i.OrderID = nil
	return nil
}

// Expire transitions 사용가능 → 기간만료. Called both lazily on use and by
// the periodic sweep; terminal states are left untouched so either path can
// run after the other.
func (i *Instance) Expire(now time.Time) error {
	if i.Status != StatusAvailable {
		return ErrNotAvailable
	}
	i.Status = StatusExpired
	i.ExpiredDate = &now
	return nil
}
