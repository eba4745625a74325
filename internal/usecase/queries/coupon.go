package queries

import (
	"context"

	"loyalty-core/internal/domain/coupon"
	"loyalty-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type CouponReadStore interface {
	ListUserCoupons(ctx context.Context, userID uuid.UUID, status *coupon.Status) ([]UserCouponView, error)
}

type CouponQueries interface {
	// ListUserCoupons backs the storefront "my coupons" tabs; a nil status
	// returns every instance regardless of state.
	ListUserCoupons(ctx context.Context, userID uuid.UUID, status *coupon.Status) ([]UserCouponView, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
}

func NewCouponQueries(store CouponReadStore) CouponQueries {
	return &couponQueriesImpl{store: store}
}

func (q *couponQueriesImpl) ListUserCoupons(ctx context.Context, userID uuid.UUID, status *coupon.Status) ([]UserCouponView, error) {
	views, err := q.store.ListUserCoupons(ctx, userID, status)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user coupons")
	}
	return views, nil
}
