package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers translate these to
// the HTTP contract; only ErrConflict and ErrStoreUnavailable are ever safe
// to retry verbatim.
var (
	// Point ledger errors
	ErrUserNotFound        = errors.New("user point account not found")
	ErrInsufficientBalance = errors.New("insufficient point balance")

	// Coupon errors
	ErrCouponNotFound          = errors.New("coupon not found")
	ErrUserCouponNotFound      = errors.New("user coupon not found")
	ErrCouponLimitExceeded     = errors.New("coupon usage limit exceeded")
	ErrCouponExpired           = errors.New("coupon expired")
	ErrCouponAlreadyRegistered = errors.New("coupon already registered")
	ErrCouponForbidden         = errors.New("coupon not available to this user")
	ErrCouponInvalidState      = errors.New("user coupon is in the wrong state")

	// Order errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderForbidden    = errors.New("order does not belong to this user")
	ErrOrderInvalidState = errors.New("order cannot be cancelled in its current status")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Store errors
	ErrConflict         = errors.New("transaction conflict, retries exhausted")
	ErrStoreUnavailable = errors.New("ledger store unavailable")
)
