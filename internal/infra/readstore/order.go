package readstore

import (
	"context"

	"loyalty-core/internal/infra"
	"loyalty-core/internal/infra/db"
	"loyalty-core/internal/pkg/pgconv"
	"loyalty-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, orderID string) (*queries.OrderView, error) {
	var (
		v            queries.OrderView
		userCouponID pgtype.UUID
		cancelReason pgtype.Text
		cancelledAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, status, final_amount, used_points,
		        user_coupon_id, cancel_reason, cancelled_at
		 FROM orders WHERE id = $1`,
		orderID,
	).Scan(
		&v.ID, &v.UserID, &v.Status, &v.FinalAmount, &v.UsedPoints,
		&userCouponID, &cancelReason, &cancelledAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read order", err)
	}

	v.UserCouponID = pgconv.UUIDPtrFromPgtype(userCouponID)
	v.CancelReason = pgconv.StringPtrFromPgtype(cancelReason)
	v.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)

	return &v, nil
}
