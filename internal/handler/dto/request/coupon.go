package request

import (
	"loyalty-core/internal/domain/coupon"

	"github.com/google/uuid"
)

type CouponActionRequest struct {
	Action       string     `json:"action" binding:"required,oneof=register issue use list cleanup"`
	Code         string     `json:"code,omitempty"`
	CouponID     *uuid.UUID `json:"couponId,omitempty"`
	UserCouponID *uuid.UUID `json:"userCouponId,omitempty"`
	OrderID      string     `json:"orderId,omitempty"`
	// Status filters the list action by the stored literal
	// (사용가능/사용완료/기간만료); empty means all.
	Status *string `json:"status,omitempty"`
}

func (r CouponActionRequest) Validate() error {
	switch r.Action {
	case "register":
		if r.Code == "" {
			return validationErr("code is required")
		}
	case "issue":
		if r.CouponID == nil {
			return validationErr("couponId is required")
		}
	case "use":
		if r.UserCouponID == nil {
			return validationErr("userCouponId is required")
		}
		if r.OrderID == "" {
			return validationErr("orderId is required")
		}
	}
	return nil
}

func (r CouponActionRequest) StatusFilter() (*coupon.Status, error) {
	if r.Status == nil || *r.Status == "" {
		return nil, nil
	}
	s, err := coupon.NewStatus(*r.Status)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
