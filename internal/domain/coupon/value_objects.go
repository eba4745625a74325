package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode = errors.New("invalid coupon code format")
	ErrInvalidCouponType = errors.New("invalid coupon type")
	ErrInvalidStatus     = errors.New("invalid user coupon status")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is a normalized (upper-cased) redemption code. Lookups are
// case-insensitive because codes are typed by hand.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Type string

const (
	TypeAmount       Type = "amount"
	TypePercent      Type = "percent"
	TypeFreeShipping Type = "free-shipping"
)

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypeAmount, TypePercent, TypeFreeShipping:
		return Type(s), nil
	default:
		return "", ErrInvalidCouponType
	}
}

// Status literals are the exact strings persisted by the storefront since
// launch. Do not translate them; stored instances would stop matching.
type Status string

const (
	StatusAvailable Status = "사용가능"
	StatusUsed      Status = "사용완료"
	StatusExpired   Status = "기간만료"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusUsed, StatusExpired:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Terminal reports whether any further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusUsed || s == StatusExpired
}
