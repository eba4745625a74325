package readstore

import (
	"context"

	"loyalty-core/internal/domain/coupon"
	"loyalty-core/internal/infra"
	"loyalty-core/internal/infra/db"
	"loyalty-core/internal/pkg/pgconv"
	"loyalty-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

func (r *CouponReadStore) ListUserCoupons(ctx context.Context, userID uuid.UUID, status *coupon.Status) ([]queries.UserCouponView, error) {
	const baseQuery = `
		SELECT uc.id, uc.coupon_id, c.name, c.type, c.value, c.min_order_amount,
		       uc.status, uc.issued_date, uc.used_date, uc.expired_date,
		       uc.order_id, c.expiry_date
		FROM user_coupons uc
		JOIN coupons c ON c.id = uc.coupon_id
		WHERE uc.user_id = $1`

	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = r.db.Query(ctx,
			baseQuery+` AND uc.status = $2 ORDER BY uc.issued_date DESC`,
			userID, status.String(),
		)
	} else {
		rows, err = r.db.Query(ctx,
			baseQuery+` ORDER BY uc.issued_date DESC`,
			userID,
		)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query user coupons", err)
	}
	defer rows.Close()

	var views []queries.UserCouponView
	for rows.Next() {
		var (
			v              queries.UserCouponView
			minOrderAmount pgtype.Numeric
			usedDate       pgtype.Timestamptz
			expiredDate    pgtype.Timestamptz
			orderID        pgtype.Text
		)
		err := rows.Scan(
			&v.ID, &v.CouponID, &v.Name, &v.Type, &v.Value, &minOrderAmount,
			&v.Status, &v.IssuedDate, &usedDate, &expiredDate,
			&orderID, &v.ExpiryDate,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user coupon", err)
		}

		v.MinOrderAmount, err = pgconv.Float64PtrFromNumeric(minOrderAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert min order amount", err)
		}
		v.UsedDate = pgconv.TimePtrFromPgtype(usedDate)
		v.ExpiredDate = pgconv.TimePtrFromPgtype(expiredDate)
		v.OrderID = pgconv.StringPtrFromPgtype(orderID)

		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user coupons", err)
	}

	return views, nil
}
