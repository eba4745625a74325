package response

import (
	"time"

	"loyalty-core/internal/domain/coupon"
	"loyalty-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserCouponResponse struct {
	ID          uuid.UUID  `json:"id"`
	CouponID    uuid.UUID  `json:"couponId"`
	Status      string     `json:"status"`
	IssuedDate  time.Time  `json:"issuedDate"`
	UsedDate    *time.Time `json:"usedDate,omitempty"`
	ExpiredDate *time.Time `json:"expiredDate,omitempty"`
	OrderID     *string    `json:"orderId,omitempty"`
}

type UserCouponListItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	CouponID       uuid.UUID  `json:"couponId"`
	Name           string     `json:"name"`
	Type           string     `json:"type"`
	Value          float64    `json:"value"`
	MinOrderAmount *float64   `json:"minOrderAmount,omitempty"`
	Status         string     `json:"status"`
	IssuedDate     time.Time  `json:"issuedDate"`
	UsedDate       *time.Time `json:"usedDate,omitempty"`
	ExpiredDate    *time.Time `json:"expiredDate,omitempty"`
	OrderID        *string    `json:"orderId,omitempty"`
	ExpiryDate     time.Time  `json:"expiryDate"`
}

type UseCouponResponse struct {
	UserCouponID uuid.UUID `json:"userCouponId"`
	OrderID      string    `json:"orderId"`
	Status       string    `json:"status"`
}

type SweepResponse struct {
	ExpiredCount int64 `json:"expiredCount"`
}

func FromInstance(inst *coupon.Instance) *UserCouponResponse {
	return &UserCouponResponse{
		ID:          inst.ID,
		CouponID:    inst.CouponID,
		Status:      inst.Status.String(),
		IssuedDate:  inst.IssuedDate,
		UsedDate:    inst.UsedDate,
		ExpiredDate: inst.ExpiredDate,
		OrderID:     inst.OrderID,
	}
}

func FromUserCouponView(v *queries.UserCouponView) *UserCouponListItemResponse {
	return &UserCouponListItemResponse{
		ID:             v.ID,
		CouponID:       v.CouponID,
		Name:           v.Name,
		Type:           v.Type,
		Value:          v.Value,
		MinOrderAmount: v.MinOrderAmount,
		Status:         v.Status,
		IssuedDate:     v.IssuedDate,
		UsedDate:       v.UsedDate,
		ExpiredDate:    v.ExpiredDate,
		OrderID:        v.OrderID,
		ExpiryDate:     v.ExpiryDate,
	}
}
