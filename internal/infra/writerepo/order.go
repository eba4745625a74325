package writerepo

import (
	"context"

	"loyalty-core/internal/domain/order"
	"loyalty-core/internal/infra"
	"loyalty-core/internal/infra/db"
	"loyalty-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

// FindForUpdate locks the order row. The status check in the workflow and
// the later status flip happen under this lock, which is what makes a
// duplicate cancellation request fail InvalidState instead of re-running the
// compensation.
func (r *OrderRepository) FindForUpdate(ctx context.Context, orderID string) (*order.Order, error) {
	var (
		o            order.Order
		status       string
		userCouponID pgtype.UUID
		cancelReason pgtype.Text
		cancelledAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, status, final_amount, used_points,
		        user_coupon_id, cancel_reason, cancelled_at
		 FROM orders WHERE id = $1 FOR UPDATE`,
		orderID,
	).Scan(
		&o.ID, &o.UserID, &status, &o.FinalAmount, &o.UsedPoints,
		&userCouponID, &cancelReason, &cancelledAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	o.Status = order.Status(status)
	o.UserCouponID = pgconv.UUIDPtrFromPgtype(userCouponID)
	o.CancelReason = pgconv.StringPtrFromPgtype(cancelReason)
	o.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)

	return &o, nil
}

func (r *OrderRepository) MarkCancelled(ctx context.Context, o *order.Order) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $2, cancel_reason = $3, cancelled_at = $4, updated_at = $4
		 WHERE id = $1`,
		o.ID,
		o.Status.String(),
		pgconv.StringPtrToPgtype(o.CancelReason),
		pgconv.TimePtrToPgtype(o.CancelledAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order cancelled", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
