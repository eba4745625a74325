package point

import "errors"

var (
	ErrInvalidAmount       = errors.New("point amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient point balance")
	ErrInvalidEntryType    = errors.New("invalid point entry type")
)

// EntryType values are stored verbatim; existing history documents depend on
// these exact literals.
type EntryType string

const (
	EntryEarn   EntryType = "earn"
	EntryUse    EntryType = "use"
	EntryRefund EntryType = "refund"
)

func NewEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case EntryEarn, EntryUse, EntryRefund:
		return EntryType(s), nil
	default:
		return "", ErrInvalidEntryType
	}
}

func (t EntryType) String() string {
	return string(t)
}

// Signed returns the contribution of an entry of this type to a balance.
func (t EntryType) Signed(amount int64) int64 {
	if t == EntryUse {
		return -amount
	}
	return amount
}

// Balance is a user's current point total. It is never negative; every
// mutation goes through Credit/Debit so the invariant cannot be bypassed.
type Balance int64

func (b Balance) Int64() int64 {
	return int64(b)
}

func (b Balance) Credit(amount int64) (Balance, error) {
	if amount <= 0 {
		return b, ErrInvalidAmount
	}
	return b + Balance(amount), nil
}

func (b Balance) Debit(amount int64) (Balance, error) {
	if amount <= 0 {
		return b, ErrInvalidAmount
	}
	if amount > int64(b) {
		return b, ErrInsufficientBalance
	}
	return b - Balance(amount), nil
}
