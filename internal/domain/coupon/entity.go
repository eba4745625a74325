package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponInactive     = errors.New("coupon is not active")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrUsageLimitExceeded = errors.New("coupon usage limit exceeded")
	ErrDirectAssignOnly   = errors.New("coupon can only be issued directly")
)

// Coupon is a coupon master definition. UsedCount counts successful code
// registrations, not uses; UsageLimit is enforced at registration time.
type Coupon struct {
	ID             uuid.UUID
	Code           *Code
	Name           string
	Type           Type
	Value          float64
	MinOrderAmount *float64
	UsageLimit     *int32
	UsedCount      int32
	IsActive       bool
	IsDirectAssign bool
	ExpiryDate     time.Time
}

// ExpiredAt reports whether the coupon is past its expiry date. The expiry
// date is inclusive: a coupon expiring 2026-01-31 is usable through the end
// of that day (UTC).
func (c *Coupon) ExpiredAt(now time.Time) bool {
	endOfDay := time.Date(
		c.ExpiryDate.Year(), c.ExpiryDate.Month(), c.ExpiryDate.Day(),
		23, 59, 59, int(time.Second-time.Nanosecond), time.UTC,
	)
	return now.After(endOfDay)
}

// ValidateRegistration checks whether a code redemption may proceed.
// Check order matters for the caller-facing error: limit before expiry.
func (c *Coupon) ValidateRegistration(now time.Time) error {
	if !c.IsActive || c.IsDirectAssign {
		return ErrCouponInactive
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return ErrUsageLimitExceeded
	}
	if c.ExpiredAt(now) {
		return ErrCouponExpired
	}
	return nil
}

// ValidateDirectIssue checks whether an id-addressed issuance may proceed.
// Direct issuance does not consume the shared registration counter.
func (c *Coupon) ValidateDirectIssue(now time.Time) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	if c.ExpiredAt(now) {
		return ErrCouponExpired
	}
	return nil
}
