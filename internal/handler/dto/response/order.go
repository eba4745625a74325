package response

import (
	"time"

	"loyalty-core/internal/usecase/commands"
	"loyalty-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID           string     `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Status       string     `json:"status"`
	FinalAmount  int64      `json:"finalAmount"`
	UsedPoints   int64      `json:"usedPoints"`
	UserCouponID *uuid.UUID `json:"userCouponId,omitempty"`
	CancelReason *string    `json:"cancelReason,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
}

type CancelOrderResponse struct {
	OrderID        string `json:"orderId"`
	Status         string `json:"status"`
	RefundedPoints int64  `json:"refundedPoints"`
	CouponRestored bool   `json:"couponRestored"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		Status:       v.Status,
		FinalAmount:  v.FinalAmount,
		UsedPoints:   v.UsedPoints,
		UserCouponID: v.UserCouponID,
		CancelReason: v.CancelReason,
		CancelledAt:  v.CancelledAt,
	}
}

func FromCancelResult(r *commands.CancelOrderResult) *CancelOrderResponse {
	return &CancelOrderResponse{
		OrderID:        r.OrderID,
		Status:         r.Status,
		RefundedPoints: r.RefundedPoints,
		CouponRestored: r.CouponRestored,
	}
}
